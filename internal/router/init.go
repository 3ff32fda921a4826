package router

import (
	"github.com/Prakash-Banjade/smart-tutor/internal/container"
	handlers "github.com/Prakash-Banjade/smart-tutor/internal/interface/http"
	"github.com/Prakash-Banjade/smart-tutor/internal/router/modules"
)

// InitModules initializes all application modules and registers them with the
// router registry. Called once during application startup; the container must
// hold the shared singletons by then.
func InitModules(r *Registry) {
	cfg := container.GetConfig()
	jwt := container.GetJWT()
	logger := container.GetLogger()

	sessionHandler := handlers.NewSessionHandler(
		container.GetSessions(),
		jwt,
		logger,
		cfg,
		container.GetRabbitPub(),
		container.GetGCS(),
	)
	discoveryHandler := handlers.NewDiscoveryHandler(
		container.GetCatalog(),
		container.GetSearchMirror(),
		logger,
		container.GetRabbitPub(),
		cfg.MailSendEnabled,
	)
	scheduleHandler := handlers.NewScheduleHandler(container.GetSchedule())
	messagingHandler := handlers.NewMessagingHandler(container.GetMessaging())

	r.Add(modules.NewSessionModule(sessionHandler, jwt))
	r.Add(modules.NewDiscoveryModule(discoveryHandler, jwt))
	r.Add(modules.NewScheduleModule(scheduleHandler, jwt))
	r.Add(modules.NewMessagingModule(messagingHandler, jwt))
	if cfg.DebugMetricsEnabled {
		r.Add(modules.NewDebugModule())
	}
}
