package domain

import (
	"errors"
	"time"
)

// Common task validation errors
var (
	ErrEmptyTaskTitle = errors.New("task title cannot be empty")
	ErrEmptyTaskOwner = errors.New("task owner cannot be empty")
)

// Task is a single to-do item. The ID is assigned by the store on insert;
// OwnerEmail ties the row to the account that created it, and every query
// that touches a task is constrained by it.
type Task struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Completed   bool      `json:"completed"`
	OwnerEmail  string    `json:"-"` // Implied by the authenticated request, never echoed back
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewTask creates a Task owned by the given email. The ID stays zero until
// the store assigns one. Returns an error if validation fails.
func NewTask(ownerEmail, title, description string, completed bool) (*Task, error) {
	now := time.Now().UTC()
	task := &Task{
		Title:       title,
		Description: description,
		Completed:   completed,
		OwnerEmail:  ownerEmail,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := task.Validate(); err != nil {
		return nil, err
	}

	return task, nil
}

// Validate checks if the Task has valid data.
func (t *Task) Validate() error {
	if t.Title == "" {
		return ErrEmptyTaskTitle
	}
	if t.OwnerEmail == "" {
		return ErrEmptyTaskOwner
	}
	return nil
}
