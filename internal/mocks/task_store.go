package mocks

import (
	"context"
	"sort"
	"sync"

	"github.com/tasknest/tasknest-api/internal/domain"
	"github.com/tasknest/tasknest-api/internal/store"
)

// MockTaskStore implements store.TaskStore for testing.
// The default implementation is an in-memory owner-scoped table with
// per-method call counters so tests can observe cache hits as the absence
// of extra store queries.
type MockTaskStore struct {
	// Function fields for customizable behavior
	CreateFn      func(ctx context.Context, task *domain.Task) (int64, error)
	ListByOwnerFn func(ctx context.Context, ownerEmail string) ([]domain.Task, error)
	GetByIDFn     func(ctx context.Context, id int64, ownerEmail string) (*domain.Task, error)
	UpdateFn      func(ctx context.Context, task *domain.Task) error
	DeleteFn      func(ctx context.Context, id int64, ownerEmail string) error

	// Call counters for the default implementation
	ListCalls int
	GetCalls  int

	mu     sync.Mutex
	tasks  map[int64]*domain.Task
	nextID int64
}

// Ensure MockTaskStore implements store.TaskStore interface
var _ store.TaskStore = (*MockTaskStore)(nil)

// NewMockTaskStore creates a new mock store with initialized defaults.
func NewMockTaskStore() *MockTaskStore {
	return &MockTaskStore{
		tasks:  make(map[int64]*domain.Task),
		nextID: 1,
	}
}

// Create implements the TaskStore interface.
func (m *MockTaskStore) Create(ctx context.Context, task *domain.Task) (int64, error) {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, task)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	id := m.nextID
	m.nextID++

	stored := *task
	stored.ID = id
	m.tasks[id] = &stored
	task.ID = id
	return id, nil
}

// ListByOwner implements the TaskStore interface.
func (m *MockTaskStore) ListByOwner(
	ctx context.Context,
	ownerEmail string,
) ([]domain.Task, error) {
	if m.ListByOwnerFn != nil {
		return m.ListByOwnerFn(ctx, ownerEmail)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.ListCalls++

	tasks := make([]domain.Task, 0)
	for _, t := range m.tasks {
		if t.OwnerEmail == ownerEmail {
			tasks = append(tasks, *t)
		}
	}
	sort.Slice(tasks, func(i, j int) bool { return tasks[i].ID < tasks[j].ID })
	return tasks, nil
}

// GetByID implements the TaskStore interface.
func (m *MockTaskStore) GetByID(
	ctx context.Context,
	id int64,
	ownerEmail string,
) (*domain.Task, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id, ownerEmail)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.GetCalls++

	t, exists := m.tasks[id]
	if !exists || t.OwnerEmail != ownerEmail {
		return nil, store.ErrTaskNotFound
	}

	result := *t
	return &result, nil
}

// Update implements the TaskStore interface.
func (m *MockTaskStore) Update(ctx context.Context, task *domain.Task) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, task)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	t, exists := m.tasks[task.ID]
	if !exists || t.OwnerEmail != task.OwnerEmail {
		return store.ErrTaskNotFound
	}

	t.Title = task.Title
	t.Description = task.Description
	t.Completed = task.Completed
	return nil
}

// Delete implements the TaskStore interface.
func (m *MockTaskStore) Delete(ctx context.Context, id int64, ownerEmail string) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id, ownerEmail)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	t, exists := m.tasks[id]
	if !exists || t.OwnerEmail != ownerEmail {
		return store.ErrTaskNotFound
	}

	delete(m.tasks, id)
	return nil
}
