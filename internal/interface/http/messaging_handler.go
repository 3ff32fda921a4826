package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Prakash-Banjade/smart-tutor/internal/interface/middleware"
	"github.com/Prakash-Banjade/smart-tutor/internal/messaging"
	"github.com/Prakash-Banjade/smart-tutor/pkg/response"
	"github.com/Prakash-Banjade/smart-tutor/pkg/validation"
)

// MessagingHandler serves the chat inbox and threads.
type MessagingHandler struct {
	Svc *messaging.Service
}

func NewMessagingHandler(svc *messaging.Service) *MessagingHandler {
	return &MessagingHandler{Svc: svc}
}

// Conversations GET /api/conversations
func (h *MessagingHandler) Conversations(c *gin.Context) {
	out := h.Svc.Conversations()
	response.Success(c, http.StatusOK, out, "conversations", map[string]any{"count": len(out)})
}

// Messages GET /api/conversations/:id/messages
func (h *MessagingHandler) Messages(c *gin.Context) {
	msgs, err := h.Svc.Messages(c.Param("id"))
	if err != nil {
		if errors.Is(err, messaging.ErrConversationNotFound) {
			response.Error[any](c, http.StatusNotFound, "conversation not found", nil)
			return
		}
		response.Error[any](c, http.StatusInternalServerError, "failed to load messages", nil)
		return
	}
	response.Success(c, http.StatusOK, msgs, "messages", map[string]any{"count": len(msgs)})
}

type sendMessageRequest struct {
	Text string `json:"text" binding:"required"`
}

// Send POST /api/conversations/:id/messages
func (h *MessagingHandler) Send(c *gin.Context) {
	var req sendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	msg, err := h.Svc.Send(c.Param("id"), c.GetString(middleware.CtxUserIDKey), req.Text)
	if err != nil {
		if errors.Is(err, messaging.ErrConversationNotFound) {
			response.Error[any](c, http.StatusNotFound, "conversation not found", nil)
			return
		}
		response.Error[any](c, http.StatusInternalServerError, "failed to send message", nil)
		return
	}
	response.Success(c, http.StatusCreated, msg, "message sent", nil)
}
