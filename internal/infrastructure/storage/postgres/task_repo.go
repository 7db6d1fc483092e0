package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"officex/internal/core/id"
	"officex/internal/domain/task"
)

const tasksTable = "tasks"

var taskColumns = []string{
	"id", "title", "status", "assignee_id", "due_at", "created_at", "updated_at",
}

// TaskRepo implements task.Repository.
type TaskRepo struct {
	txManager *TxManager
	builder   squirrel.StatementBuilderType
}

// NewTaskRepo creates a new task repository.
func NewTaskRepo(txManager *TxManager) *TaskRepo {
	return &TaskRepo{
		txManager: txManager,
		builder:   squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// ListPendingDueBefore returns pending tasks due before the cutoff,
// earliest due first.
func (r *TaskRepo) ListPendingDueBefore(ctx context.Context, cutoff time.Time) ([]task.Task, error) {
	sql, args, err := r.builder.Select(taskColumns...).From(tasksTable).
		Where(squirrel.Eq{"status": string(task.StatusPending)}).
		Where(squirrel.Lt{"due_at": cutoff}).
		OrderBy("due_at").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var tasks []task.Task
	querier := r.txManager.GetQuerier(ctx)
	if err := pgxscan.Select(ctx, querier, &tasks, sql, args...); err != nil {
		return nil, fmt.Errorf("select pending tasks: %w", err)
	}
	return tasks, nil
}

// MarkPushed transitions tasks from pending to pushed.
func (r *TaskRepo) MarkPushed(ctx context.Context, taskIDs []id.ID) error {
	if len(taskIDs) == 0 {
		return nil
	}

	sql, args, err := r.builder.Update(tasksTable).
		Set("status", string(task.StatusPushed)).
		Set("updated_at", time.Now().UTC()).
		Where(squirrel.Eq{"id": taskIDs}).
		Where(squirrel.Eq{"status": string(task.StatusPending)}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update: %w", err)
	}

	querier := r.txManager.GetQuerier(ctx)
	if _, err := querier.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("mark tasks pushed: %w", err)
	}
	return nil
}

// AssigneePhone returns the phone number on file for a user.
func (r *TaskRepo) AssigneePhone(ctx context.Context, userID id.ID) (string, error) {
	sql, args, err := r.builder.Select("COALESCE(phone, '')").From(usersTable).
		Where(squirrel.Eq{"id": userID}).Limit(1).ToSql()
	if err != nil {
		return "", fmt.Errorf("build query: %w", err)
	}

	var phone string
	querier := r.txManager.GetQuerier(ctx)
	if err := pgxscan.Get(ctx, querier, &phone, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return "", nil
		}
		return "", fmt.Errorf("get assignee phone: %w", err)
	}
	return phone, nil
}

var _ task.Repository = (*TaskRepo)(nil)
