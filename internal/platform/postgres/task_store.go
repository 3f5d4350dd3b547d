package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/tasknest/tasknest-api/internal/domain"
	"github.com/tasknest/tasknest-api/internal/store"
)

// PostgresTaskStore implements the store.TaskStore interface
// using a PostgreSQL database as the storage backend.
// Every query is constrained by owner email; a task owned by another
// identity is indistinguishable from a missing one.
type PostgresTaskStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresTaskStore creates a new PostgreSQL implementation of the
// TaskStore interface. It accepts a database connection or transaction that
// should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresTaskStore(db store.DBTX, logger *slog.Logger) *PostgresTaskStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresTaskStore{
		db:     db,
		logger: logger.With(slog.String("component", "task_store")),
	}
}

// Ensure PostgresTaskStore implements store.TaskStore interface
var _ store.TaskStore = (*PostgresTaskStore)(nil)

// Create implements store.TaskStore.Create.
// It inserts the row and returns the store-assigned ID.
func (s *PostgresTaskStore) Create(ctx context.Context, task *domain.Task) (int64, error) {
	if err := task.Validate(); err != nil {
		return 0, fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	query := `
		INSERT INTO tasks (title, description, completed, owner_email, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`

	var id int64
	err := s.db.QueryRowContext(ctx, query,
		task.Title, task.Description, task.Completed, task.OwnerEmail,
		task.CreatedAt, task.UpdatedAt).Scan(&id)
	if err != nil {
		return 0, MapError(err)
	}

	task.ID = id
	return id, nil
}

// ListByOwner implements store.TaskStore.ListByOwner.
func (s *PostgresTaskStore) ListByOwner(
	ctx context.Context,
	ownerEmail string,
) ([]domain.Task, error) {
	query := `
		SELECT id, title, description, completed, owner_email, created_at, updated_at
		FROM tasks
		WHERE owner_email = $1
		ORDER BY id`

	rows, err := s.db.QueryContext(ctx, query, ownerEmail)
	if err != nil {
		return nil, MapError(err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			s.logger.Warn("failed to close rows", "error", cerr)
		}
	}()

	tasks := make([]domain.Task, 0)
	for rows.Next() {
		var t domain.Task
		if err := rows.Scan(
			&t.ID, &t.Title, &t.Description, &t.Completed, &t.OwnerEmail,
			&t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, MapError(err)
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	return tasks, nil
}

// GetByID implements store.TaskStore.GetByID.
// Returns store.ErrTaskNotFound if no row matches both id and owner.
func (s *PostgresTaskStore) GetByID(
	ctx context.Context,
	id int64,
	ownerEmail string,
) (*domain.Task, error) {
	query := `
		SELECT id, title, description, completed, owner_email, created_at, updated_at
		FROM tasks
		WHERE id = $1 AND owner_email = $2`

	var t domain.Task
	err := s.db.QueryRowContext(ctx, query, id, ownerEmail).Scan(
		&t.ID, &t.Title, &t.Description, &t.Completed, &t.OwnerEmail,
		&t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrTaskNotFound
		}
		return nil, MapError(err)
	}

	return &t, nil
}

// Update implements store.TaskStore.Update.
// Returns store.ErrTaskNotFound if no row matched id and owner.
func (s *PostgresTaskStore) Update(ctx context.Context, task *domain.Task) error {
	if err := task.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	query := `
		UPDATE tasks
		SET title = $1, description = $2, completed = $3, updated_at = NOW()
		WHERE id = $4 AND owner_email = $5`

	result, err := s.db.ExecContext(ctx, query,
		task.Title, task.Description, task.Completed, task.ID, task.OwnerEmail)
	if err != nil {
		return MapError(err)
	}

	return CheckRowsAffected(result, store.ErrTaskNotFound)
}

// Delete implements store.TaskStore.Delete.
// Returns store.ErrTaskNotFound if no row matched id and owner.
func (s *PostgresTaskStore) Delete(ctx context.Context, id int64, ownerEmail string) error {
	query := `DELETE FROM tasks WHERE id = $1 AND owner_email = $2`

	result, err := s.db.ExecContext(ctx, query, id, ownerEmail)
	if err != nil {
		return MapError(err)
	}

	return CheckRowsAffected(result, store.ErrTaskNotFound)
}
