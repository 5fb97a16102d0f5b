package domain

import (
	"errors"
	"time"
)

var (
	ErrTaskNotFound    = errors.New("task not found")
	ErrEmptyTitle      = errors.New("title must not be empty")
	ErrInvalidStatus   = errors.New("unknown task status")
	ErrNothingToUpdate = errors.New("nothing to update")
)

type TaskStatus string

const (
	StatusPending   TaskStatus = "pending"
	StatusCompleted TaskStatus = "completed"
)

// ValidStatus reports whether s is one of the known task statuses.
func ValidStatus(s TaskStatus) bool {
	return s == StatusPending || s == StatusCompleted
}

type Task struct {
	ID        string
	UserID    string
	Title     string
	Status    TaskStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}
