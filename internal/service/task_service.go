package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/tasknest/tasknest-api/internal/cache"
	"github.com/tasknest/tasknest-api/internal/domain"
	"github.com/tasknest/tasknest-api/internal/store"
)

// TaskService provides task CRUD operations scoped to an authenticated
// identity, with a cache-aside read path and write-path invalidation.
//
// Read paths consult the response cache first and populate it on a miss.
// Write paths invalidate the owner's list key and, where a specific task is
// touched, its detail key. Invalidation only happens after the store
// confirmed the mutation, so a 404 leaves the cache untouched.
type TaskService interface {
	// Create inserts a task owned by ownerEmail and returns its ID.
	Create(ctx context.Context, ownerEmail, title, description string, completed bool) (int64, error)

	// List returns all tasks owned by ownerEmail, from cache when possible.
	List(ctx context.Context, ownerEmail string) ([]domain.Task, error)

	// Get returns the task with the given ID owned by ownerEmail, from
	// cache when possible. Returns store.ErrTaskNotFound when no row
	// matches both, including rows owned by a different identity.
	Get(ctx context.Context, ownerEmail string, id int64) (*domain.Task, error)

	// Update rewrites title, description and completed of the owner's task.
	// Returns store.ErrTaskNotFound when no row matches.
	Update(ctx context.Context, ownerEmail string, id int64, title, description string, completed bool) error

	// Delete removes the owner's task.
	// Returns store.ErrTaskNotFound when no row matches.
	Delete(ctx context.Context, ownerEmail string, id int64) error
}

// taskServiceImpl implements the TaskService interface.
type taskServiceImpl struct {
	taskStore store.TaskStore
	cache     *cache.Cache
	logger    *slog.Logger
}

// NewTaskService creates a new TaskService.
// It returns an error if any of the required dependencies are nil.
func NewTaskService(
	taskStore store.TaskStore,
	responseCache *cache.Cache,
	logger *slog.Logger,
) (TaskService, error) {
	if taskStore == nil {
		return nil, fmt.Errorf("%w: taskStore cannot be nil", domain.ErrValidation)
	}
	if responseCache == nil {
		return nil, fmt.Errorf("%w: responseCache cannot be nil", domain.ErrValidation)
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &taskServiceImpl{
		taskStore: taskStore,
		cache:     responseCache,
		logger:    logger.With(slog.String("component", "task_service")),
	}, nil
}

// Create implements TaskService.Create.
func (s *taskServiceImpl) Create(
	ctx context.Context,
	ownerEmail, title, description string,
	completed bool,
) (int64, error) {
	task, err := domain.NewTask(ownerEmail, title, description, completed)
	if err != nil {
		return 0, err
	}

	id, err := s.taskStore.Create(ctx, task)
	if err != nil {
		return 0, fmt.Errorf("failed to create task: %w", err)
	}

	// The owner's cached list no longer reflects the store.
	s.cache.Invalidate(cache.TaskListKey(ownerEmail))

	s.logger.Debug("task created", "task_id", id)
	return id, nil
}

// List implements TaskService.List.
func (s *taskServiceImpl) List(ctx context.Context, ownerEmail string) ([]domain.Task, error) {
	key := cache.TaskListKey(ownerEmail)
	if cached, ok := s.cache.Get(key); ok {
		if tasks, ok := cached.([]domain.Task); ok {
			s.logger.Debug("task list served from cache")
			return tasks, nil
		}
		// A foreign value under our key means the cache was misused; drop it.
		s.cache.Invalidate(key)
	}

	tasks, err := s.taskStore.ListByOwner(ctx, ownerEmail)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	s.cache.Set(key, tasks)
	return tasks, nil
}

// Get implements TaskService.Get.
func (s *taskServiceImpl) Get(
	ctx context.Context,
	ownerEmail string,
	id int64,
) (*domain.Task, error) {
	key := cache.TaskKey(ownerEmail, id)
	if cached, ok := s.cache.Get(key); ok {
		if task, ok := cached.(*domain.Task); ok {
			s.logger.Debug("task served from cache", "task_id", id)
			return task, nil
		}
		s.cache.Invalidate(key)
	}

	task, err := s.taskStore.GetByID(ctx, id, ownerEmail)
	if err != nil {
		if store.IsNotFoundError(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get task: %w", err)
	}

	s.cache.Set(key, task)
	return task, nil
}

// Update implements TaskService.Update.
func (s *taskServiceImpl) Update(
	ctx context.Context,
	ownerEmail string,
	id int64,
	title, description string,
	completed bool,
) error {
	task := &domain.Task{
		ID:          id,
		Title:       title,
		Description: description,
		Completed:   completed,
		OwnerEmail:  ownerEmail,
	}
	if err := task.Validate(); err != nil {
		return err
	}

	if err := s.taskStore.Update(ctx, task); err != nil {
		if store.IsNotFoundError(err) {
			return err
		}
		return fmt.Errorf("failed to update task: %w", err)
	}

	s.cache.Invalidate(cache.TaskListKey(ownerEmail), cache.TaskKey(ownerEmail, id))

	s.logger.Debug("task updated", "task_id", id)
	return nil
}

// Delete implements TaskService.Delete.
func (s *taskServiceImpl) Delete(ctx context.Context, ownerEmail string, id int64) error {
	if err := s.taskStore.Delete(ctx, id, ownerEmail); err != nil {
		if store.IsNotFoundError(err) {
			return err
		}
		return fmt.Errorf("failed to delete task: %w", err)
	}

	s.cache.Invalidate(cache.TaskListKey(ownerEmail), cache.TaskKey(ownerEmail, id))

	s.logger.Debug("task deleted", "task_id", id)
	return nil
}
