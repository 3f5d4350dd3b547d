package store

import (
	"context"

	"github.com/tasknest/tasknest-api/internal/domain"
)

// TaskStore defines the interface for task data persistence.
// Every operation is scoped by owner email: a task belonging to a different
// identity behaves exactly like a nonexistent one.
type TaskStore interface {
	// Create inserts a new task and returns the store-assigned ID.
	// Returns validation errors from the domain Task if data is invalid.
	Create(ctx context.Context, task *domain.Task) (int64, error)

	// ListByOwner retrieves all tasks owned by the given email,
	// ordered by ID. Returns an empty slice when the owner has no tasks.
	ListByOwner(ctx context.Context, ownerEmail string) ([]domain.Task, error)

	// GetByID retrieves the task with the given ID owned by the given email.
	// Returns ErrTaskNotFound if no row matches both.
	GetByID(ctx context.Context, id int64, ownerEmail string) (*domain.Task, error)

	// Update modifies the title, description and completed flag of the task
	// matching ID and owner. Returns ErrTaskNotFound if no row was affected.
	Update(ctx context.Context, task *domain.Task) error

	// Delete removes the task matching ID and owner.
	// Returns ErrTaskNotFound if no row was affected.
	Delete(ctx context.Context, id int64, ownerEmail string) error
}
