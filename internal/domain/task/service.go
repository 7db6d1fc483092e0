package task

import (
	"context"
	"fmt"
	"time"

	"officex/internal/core/id"
	"officex/internal/infrastructure/sms"
	"officex/pkg/logger"
	"officex/pkg/timeunit"
)

// DefaultPushWindowHours is how far ahead the push job looks for due tasks.
const DefaultPushWindowHours = 24

// Service runs the pending-task push job.
// The job executes synchronously within the caller's request; idempotency
// comes from the pending -> pushed transition, not from this layer.
type Service struct {
	repo       Repository
	sender     sms.Sender
	pushWindow time.Duration
}

// NewService creates a task service with the default push window.
func NewService(repo Repository, sender sms.Sender) *Service {
	return &Service{
		repo:       repo,
		sender:     sender,
		pushWindow: timeunit.Hours(DefaultPushWindowHours),
	}
}

// WithPushWindow overrides the push window (tests, ops tuning).
func (s *Service) WithPushWindow(window time.Duration) *Service {
	s.pushWindow = window
	return s
}

// PushPending notifies assignees about pending tasks due within the push
// window and marks those tasks pushed. Returns a summary result.
func (s *Service) PushPending(ctx context.Context) (PushResult, error) {
	cutoff := time.Now().UTC().Add(s.pushWindow)

	tasks, err := s.repo.ListPendingDueBefore(ctx, cutoff)
	if err != nil {
		return PushResult{}, fmt.Errorf("list pending tasks: %w", err)
	}
	if len(tasks) == 0 {
		return PushResult{Status: true, Pushed: 0, Message: "no pending tasks"}, nil
	}

	var pushedIDs []id.ID
	for _, t := range tasks {
		phone, err := s.repo.AssigneePhone(ctx, t.AssigneeID)
		if err != nil {
			return PushResult{}, fmt.Errorf("resolve assignee phone: %w", err)
		}
		if phone == "" {
			logger.Warn(ctx, "task assignee has no phone, skipping",
				"task_id", t.ID,
				"assignee_id", t.AssigneeID,
			)
			continue
		}

		body := fmt.Sprintf("Task %q is due %s", t.Title, t.DueAt.Format("Jan 2 15:04"))
		if err := s.sender.Send(ctx, phone, body); err != nil {
			return PushResult{}, fmt.Errorf("send task notification: %w", err)
		}
		pushedIDs = append(pushedIDs, t.ID)
	}

	if len(pushedIDs) > 0 {
		if err := s.repo.MarkPushed(ctx, pushedIDs); err != nil {
			return PushResult{}, fmt.Errorf("mark tasks pushed: %w", err)
		}
	}

	logger.Info(ctx, "pending tasks pushed",
		"candidates", len(tasks),
		"pushed", len(pushedIDs),
	)

	return PushResult{
		Status:  true,
		Pushed:  len(pushedIDs),
		Message: fmt.Sprintf("pushed %d of %d pending tasks", len(pushedIDs), len(tasks)),
	}, nil
}
