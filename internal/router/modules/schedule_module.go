package modules

import (
	"github.com/gin-gonic/gin"

	"github.com/Prakash-Banjade/smart-tutor/internal/container"
	handlers "github.com/Prakash-Banjade/smart-tutor/internal/interface/http"
	"github.com/Prakash-Banjade/smart-tutor/internal/interface/middleware"
	"github.com/Prakash-Banjade/smart-tutor/pkg/helpers"
)

// ScheduleModule wires the calendar and student roster routes, all behind auth.

type ScheduleModule struct {
	Handler *handlers.ScheduleHandler
	JWT     *helpers.JWTManager
}

func NewScheduleModule(h *handlers.ScheduleHandler, jwt *helpers.JWTManager) *ScheduleModule {
	return &ScheduleModule{Handler: h, JWT: jwt}
}

func (m *ScheduleModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/")
	auth.Use(middleware.Auth(container.GetSessions(), m.JWT))
	{
		auth.GET("/schedule", m.Handler.Sessions)
		auth.GET("/students", middleware.RequireRole("tutor"), m.Handler.Students)
	}
}
