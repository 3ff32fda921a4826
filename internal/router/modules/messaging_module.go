package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Prakash-Banjade/smart-tutor/internal/container"
	handlers "github.com/Prakash-Banjade/smart-tutor/internal/interface/http"
	"github.com/Prakash-Banjade/smart-tutor/internal/interface/middleware"
	"github.com/Prakash-Banjade/smart-tutor/pkg/helpers"
)

// MessagingModule wires the chat routes, all behind auth.

type MessagingModule struct {
	Handler *handlers.MessagingHandler
	JWT     *helpers.JWTManager
}

func NewMessagingModule(h *handlers.MessagingHandler, jwt *helpers.JWTManager) *MessagingModule {
	return &MessagingModule{Handler: h, JWT: jwt}
}

func (m *MessagingModule) Register(rg *gin.RouterGroup) {
	sendLimiter := middleware.RateLimit(container.GetRedis(), 60, time.Minute, middleware.KeyByUserID(), nil)

	auth := rg.Group("/")
	auth.Use(middleware.Auth(container.GetSessions(), m.JWT))
	{
		auth.GET("/conversations", m.Handler.Conversations)
		auth.GET("/conversations/:id/messages", m.Handler.Messages)
		auth.POST("/conversations/:id/messages", sendLimiter, m.Handler.Send)
	}
}
