package session

import "github.com/sirupsen/logrus"

// Service hands out a Manager per session id. Managers are cheap views over
// the shared store and gateway; the persisted record is the source of truth
// between requests.
type Service struct {
	provider  StoreProvider
	gateway   Gateway
	keyPrefix string
	logger    *logrus.Logger
}

func NewService(provider StoreProvider, gw Gateway, keyPrefix string, logger *logrus.Logger) *Service {
	return &Service{provider: provider, gateway: gw, keyPrefix: keyPrefix, logger: logger}
}

func (s *Service) ManagerFor(sessionID string) *Manager {
	return NewManager(s.provider.Store(s.keyPrefix+sessionID), s.gateway, s.logger)
}
