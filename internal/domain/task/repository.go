package task

import (
	"context"
	"time"

	"officex/internal/core/id"
)

// Repository defines the interface for task persistence.
type Repository interface {
	// ListPendingDueBefore returns pending tasks with due_at before the cutoff.
	ListPendingDueBefore(ctx context.Context, cutoff time.Time) ([]Task, error)

	// MarkPushed transitions the given tasks from pending to pushed.
	MarkPushed(ctx context.Context, taskIDs []id.ID) error

	// AssigneePhone returns the phone number for a user, empty when unset.
	AssigneePhone(ctx context.Context, userID id.ID) (string, error)
}
