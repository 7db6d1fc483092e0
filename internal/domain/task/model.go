// Package task provides assignable tasks and the push job that reminds
// assignees about pending work.
package task

import (
	"time"

	"officex/internal/core/id"
)

// Status of a task.
type Status string

const (
	StatusPending Status = "pending"
	StatusPushed  Status = "pushed"
	StatusDone    Status = "done"
)

// Task is a unit of assigned work.
type Task struct {
	ID         id.ID     `db:"id" json:"id"`
	Title      string    `db:"title" json:"title"`
	Status     Status    `db:"status" json:"status"`
	AssigneeID id.ID     `db:"assignee_id" json:"assigneeId"`
	DueAt      time.Time `db:"due_at" json:"dueAt"`
	CreatedAt  time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt  time.Time `db:"updated_at" json:"updatedAt"`
}

// PushResult is what the job trigger endpoint returns.
type PushResult struct {
	Status  bool   `json:"status"`
	Pushed  int    `json:"pushed"`
	Message string `json:"message,omitempty"`
}
