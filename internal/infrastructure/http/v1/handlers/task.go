package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"officex/internal/domain/task"
)

// TaskHandler triggers the pending-task push job.
type TaskHandler struct {
	*BaseHandler
	service *task.Service
}

// NewTaskHandler creates a new task handler.
func NewTaskHandler(base *BaseHandler, service *task.Service) *TaskHandler {
	return &TaskHandler{BaseHandler: base, service: service}
}

// Push handles POST /tasks/push
// The job runs synchronously; the response always carries the job status
// shape, including on failure.
func (h *TaskHandler) Push(c *gin.Context) {
	result, err := h.service.PushPending(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, task.PushResult{
			Status:  false,
			Message: "Error: " + err.Error(),
		})
		return
	}

	h.OK(c, result)
}

// RegisterRoutes registers task routes.
func (h *TaskHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/push", h.Push)
}
