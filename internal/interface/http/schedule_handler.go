package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Prakash-Banjade/smart-tutor/internal/schedule"
	"github.com/Prakash-Banjade/smart-tutor/pkg/response"
)

// ScheduleHandler serves the session calendar and the tutor's student roster.
type ScheduleHandler struct {
	Book *schedule.Book
}

func NewScheduleHandler(book *schedule.Book) *ScheduleHandler {
	return &ScheduleHandler{Book: book}
}

// Sessions GET /api/schedule?status=upcoming|completed
func (h *ScheduleHandler) Sessions(c *gin.Context) {
	status := schedule.SessionStatus(c.Query("status"))
	switch status {
	case "", schedule.StatusUpcoming, schedule.StatusCompleted:
	default:
		response.Error[any](c, http.StatusBadRequest, "invalid status", nil)
		return
	}
	out := h.Book.Sessions(status)
	response.Success(c, http.StatusOK, out, "sessions", map[string]any{"count": len(out)})
}

// Students GET /api/students
func (h *ScheduleHandler) Students(c *gin.Context) {
	out := h.Book.Students()
	response.Success(c, http.StatusOK, out, "students", map[string]any{"count": len(out)})
}
