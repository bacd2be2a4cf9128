// Package domain contains core business entities and interfaces.
package domain

import "time"

// Task represents a single tracked unit of work.
// Field order is the on-disk field order.
type Task struct {
	ID          int       `json:"id" yaml:"id"`                   // Positive, unique within the store
	Description string    `json:"description" yaml:"description"` // Free text, never validated
	Status      Status    `json:"status" yaml:"status"`           // Current status
	CreatedAt   LocalTime `json:"createdAt" yaml:"createdAt"`     // Fixed at creation
	UpdatedAt   LocalTime `json:"updatedAt" yaml:"updatedAt"`     // Last description or status change
}

// NewTask creates a task in StatusTodo with both timestamps set to now.
func NewTask(id int, description string, now time.Time) *Task {
	ts := NewLocalTime(now)
	return &Task{
		ID:          id,
		Description: description,
		Status:      StatusTodo,
		CreatedAt:   ts,
		UpdatedAt:   ts,
	}
}

// SetDescription replaces the description and touches UpdatedAt.
func (t *Task) SetDescription(description string, now time.Time) {
	t.Description = description
	t.touch(now)
}

// SetStatus replaces the status and touches UpdatedAt.
// Any status may follow any other.
func (t *Task) SetStatus(status Status, now time.Time) {
	t.Status = status
	t.touch(now)
}

// touch sets UpdatedAt, never earlier than CreatedAt.
func (t *Task) touch(now time.Time) {
	ts := NewLocalTime(now)
	if ts.Before(t.CreatedAt.Time) {
		ts = t.CreatedAt
	}
	t.UpdatedAt = ts
}

// Clone returns a copy of the task.
func (t *Task) Clone() *Task {
	c := *t
	return &c
}
