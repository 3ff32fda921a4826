package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Prakash-Banjade/smart-tutor/internal/container"
	handlers "github.com/Prakash-Banjade/smart-tutor/internal/interface/http"
	"github.com/Prakash-Banjade/smart-tutor/internal/interface/middleware"
	"github.com/Prakash-Banjade/smart-tutor/pkg/helpers"
)

// DiscoveryModule wires the marketplace browse routes.
// Public: GET /api/tutors, GET /api/groups, GET /api/subjects, GET /api/search
// Protected: POST /api/groups

type DiscoveryModule struct {
	Handler *handlers.DiscoveryHandler
	JWT     *helpers.JWTManager
}

func NewDiscoveryModule(h *handlers.DiscoveryHandler, jwt *helpers.JWTManager) *DiscoveryModule {
	return &DiscoveryModule{Handler: h, JWT: jwt}
}

func (m *DiscoveryModule) Register(rg *gin.RouterGroup) {
	browseLimiter := middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByIP(), middleware.AllowPrivateIP())

	rg.GET("/tutors", browseLimiter, m.Handler.Tutors)
	rg.GET("/groups", browseLimiter, m.Handler.Groups)
	rg.GET("/subjects", browseLimiter, m.Handler.Subjects)
	rg.GET("/search", browseLimiter, m.Handler.Search)

	auth := rg.Group("/")
	auth.Use(middleware.Auth(container.GetSessions(), m.JWT))
	auth.POST("/groups", m.Handler.CreateGroup)
}
