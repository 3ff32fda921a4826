package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Prakash-Banjade/smart-tutor/internal/container"
	handlers "github.com/Prakash-Banjade/smart-tutor/internal/interface/http"
	"github.com/Prakash-Banjade/smart-tutor/internal/interface/middleware"
	"github.com/Prakash-Banjade/smart-tutor/pkg/helpers"
)

// SessionModule wires the auth and profile routes.
// Public: POST /api/login, POST /api/register, POST /api/refresh
// Protected: GET /api/session, POST /api/logout, GET/PUT /api/profile,
// POST /api/profile/avatar

type SessionModule struct {
	Handler *handlers.SessionHandler
	JWT     *helpers.JWTManager
}

func NewSessionModule(h *handlers.SessionHandler, jwt *helpers.JWTManager) *SessionModule {
	return &SessionModule{Handler: h, JWT: jwt}
}

func (m *SessionModule) Register(rg *gin.RouterGroup) {
	loginLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIP(), nil)   // 10 req/min per IP
	refreshLimiter := middleware.RateLimit(container.GetRedis(), 60, time.Minute, middleware.KeyByIP(), nil) // 60 req/min per IP

	rg.POST("/login", loginLimiter, m.Handler.Login)
	rg.POST("/register", loginLimiter, m.Handler.Register)
	rg.POST("/refresh", refreshLimiter, m.Handler.Refresh)

	auth := rg.Group("/")
	auth.Use(middleware.Auth(container.GetSessions(), m.JWT))
	auth.Use(
		middleware.RateLimit(container.GetRedis(), 300, time.Minute, middleware.KeyByIP(), nil),
		middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), nil),
	)
	{
		auth.GET("/session", m.Handler.Session)
		auth.POST("/logout", m.Handler.Logout)
		auth.GET("/profile", m.Handler.GetProfile)
		auth.PUT("/profile", m.Handler.UpdateProfile)
		auth.POST("/profile/avatar", m.Handler.UploadAvatar)
	}
}
