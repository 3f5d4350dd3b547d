package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/tasknest/tasknest-api/internal/store"
)

func TestMapError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		wantIs   error
		passthru bool
	}{
		{
			name: "nil error",
			err:  nil,
		},
		{
			name:   "no rows",
			err:    sql.ErrNoRows,
			wantIs: store.ErrNotFound,
		},
		{
			name:   "wrapped no rows",
			err:    fmt.Errorf("query users: %w", sql.ErrNoRows),
			wantIs: store.ErrNotFound,
		},
		{
			name:   "unique violation",
			err:    &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"},
			wantIs: store.ErrDuplicate,
		},
		{
			name:   "foreign key violation",
			err:    &pgconn.PgError{Code: "23503", ConstraintName: "tasks_owner_email_fkey"},
			wantIs: store.ErrInvalidEntity,
		},
		{
			name:   "not null violation",
			err:    &pgconn.PgError{Code: "23502", ColumnName: "title"},
			wantIs: store.ErrInvalidEntity,
		},
		{
			name:     "unrelated pg error passes through",
			err:      &pgconn.PgError{Code: "57014"},
			passthru: true,
		},
		{
			name:     "plain error passes through",
			err:      errors.New("connection reset"),
			passthru: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := MapError(tt.err)

			switch {
			case tt.err == nil:
				assert.NoError(t, got)
			case tt.passthru:
				assert.Equal(t, tt.err, got)
			default:
				assert.ErrorIs(t, got, tt.wantIs)
				// The original error stays in the chain for debugging.
				assert.Contains(t, got.Error(), tt.err.Error())
			}
		})
	}
}

func TestIsUniqueViolation(t *testing.T) {
	t.Parallel()

	assert.True(t, IsUniqueViolation(&pgconn.PgError{Code: "23505"}))
	assert.True(t, IsUniqueViolation(fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"})))
	assert.False(t, IsUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, IsUniqueViolation(errors.New("not a pg error")))
	assert.False(t, IsUniqueViolation(nil))
}

type fakeResult struct {
	rows int64
	err  error
}

func (r fakeResult) LastInsertId() (int64, error) { return 0, nil }
func (r fakeResult) RowsAffected() (int64, error) { return r.rows, r.err }

func TestCheckRowsAffected(t *testing.T) {
	t.Parallel()

	assert.NoError(t, CheckRowsAffected(fakeResult{rows: 1}, store.ErrTaskNotFound))

	err := CheckRowsAffected(fakeResult{rows: 0}, store.ErrTaskNotFound)
	assert.ErrorIs(t, err, store.ErrTaskNotFound)

	err = CheckRowsAffected(fakeResult{err: errors.New("driver broke")}, store.ErrTaskNotFound)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, store.ErrTaskNotFound)

	assert.Error(t, CheckRowsAffected(nil, store.ErrTaskNotFound))
}
