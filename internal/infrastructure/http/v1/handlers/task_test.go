package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"officex/internal/core/id"
	"officex/internal/domain/task"
	"officex/internal/infrastructure/http/v1/middleware"
)

type mockTaskRepo struct {
	tasks   []task.Task
	listErr error
	pushed  []id.ID
}

func (m *mockTaskRepo) ListPendingDueBefore(ctx context.Context, cutoff time.Time) ([]task.Task, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.tasks, nil
}

func (m *mockTaskRepo) MarkPushed(ctx context.Context, taskIDs []id.ID) error {
	m.pushed = append(m.pushed, taskIDs...)
	return nil
}

func (m *mockTaskRepo) AssigneePhone(ctx context.Context, userID id.ID) (string, error) {
	return "+15550100", nil
}

type noopSender struct{}

func (noopSender) Send(ctx context.Context, to, body string) error { return nil }

func newTaskRouter(repo task.Repository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.ErrorHandler())

	handler := NewTaskHandler(NewBaseHandler(), task.NewService(repo, noopSender{}))
	handler.RegisterRoutes(router.Group("/api/v1/tasks"))
	return router
}

func TestPushTasks_OK(t *testing.T) {
	repo := &mockTaskRepo{
		tasks: []task.Task{
			{ID: id.New(), Title: "Restock shelves", Status: task.StatusPending,
				AssigneeID: id.New(), DueAt: time.Now().Add(time.Hour)},
		},
	}
	router := newTaskRouter(repo)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/tasks/push", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body task.PushResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Status)
	assert.Equal(t, 1, body.Pushed)
	assert.Len(t, repo.pushed, 1)
}

func TestPushTasks_FailureReturnsJobStatusShape(t *testing.T) {
	repo := &mockTaskRepo{listErr: errors.New("relation tasks does not exist")}
	router := newTaskRouter(repo)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/tasks/push", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusInternalServerError, w.Code)

	var body task.PushResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.False(t, body.Status)
	assert.Contains(t, body.Message, "Error: ")
	assert.Contains(t, body.Message, "relation tasks does not exist")
}
