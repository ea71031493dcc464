package models

import (
	"time"

	"github.com/google/uuid"
)

type TaskStatus string

const (
	TaskStatusPending   TaskStatus = "Pending"
	TaskStatusCompleted TaskStatus = "Completed"
)

func (s TaskStatus) Valid() bool {
	return s == TaskStatusPending || s == TaskStatusCompleted
}

type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "Low"
	TaskPriorityMedium TaskPriority = "Medium"
	TaskPriorityHigh   TaskPriority = "High"
)

func (p TaskPriority) Valid() bool {
	return p == TaskPriorityLow || p == TaskPriorityMedium || p == TaskPriorityHigh
}

// Rank orders priorities for display sorting: High=1, Medium=2, Low=3.
func (p TaskPriority) Rank() int {
	switch p {
	case TaskPriorityHigh:
		return 1
	case TaskPriorityMedium:
		return 2
	default:
		return 3
	}
}

type Task struct {
	ID        uuid.UUID    `json:"id"`
	UserID    uuid.UUID    `json:"-"`
	Title     string       `json:"title"`
	Status    TaskStatus   `json:"status"`
	Priority  TaskPriority `json:"priority"`
	CreatedAt time.Time    `json:"createdAt"`
	UpdatedAt time.Time    `json:"updatedAt"`
}
