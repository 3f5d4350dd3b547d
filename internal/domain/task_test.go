package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTask(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		owner   string
		title   string
		wantErr error
	}{
		{"valid", "user@example.com", "buy milk", nil},
		{"empty title", "user@example.com", "", ErrEmptyTaskTitle},
		{"empty owner", "", "buy milk", ErrEmptyTaskOwner},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			task, err := NewTask(tt.owner, tt.title, "desc", true)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Zero(t, task.ID, "ID is assigned by the store, not the constructor")
			assert.Equal(t, tt.title, task.Title)
			assert.Equal(t, tt.owner, task.OwnerEmail)
			assert.True(t, task.Completed)
		})
	}
}

func TestTaskJSONOmitsOwner(t *testing.T) {
	t.Parallel()

	task, err := NewTask("user@example.com", "buy milk", "", false)
	require.NoError(t, err)

	raw, err := json.Marshal(task)
	require.NoError(t, err)

	assert.NotContains(t, string(raw), "user@example.com")
	assert.Contains(t, string(raw), `"title":"buy milk"`)
}
