package session

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"
)

// Manager owns the current-user value for one session and mirrors it to a
// single-key Store. Mutating operations are deliberately not re-entrant
// safe: overlapping calls (a login racing a logout) have no ordering
// guarantee and the last store write wins. The mutex below only keeps the
// in-memory value race-free for readers; it does not serialize operations
// end to end.
type Manager struct {
	store   Store
	gateway Gateway
	logger  *logrus.Logger

	mu      sync.RWMutex
	current *User
}

func NewManager(store Store, gw Gateway, logger *logrus.Logger) *Manager {
	return &Manager{store: store, gateway: gw, logger: logger}
}

// Current returns a copy of the logged-in user, or nil.
func (m *Manager) Current() *User {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current.Clone()
}

// Restore loads the persisted session record, if any. A malformed record is
// treated as no session rather than an error. Restore is idempotent.
func (m *Manager) Restore(ctx context.Context) (*User, error) {
	b, ok, err := m.store.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	if !ok {
		m.setCurrent(nil)
		return nil, nil
	}
	var u User
	if err := json.Unmarshal(b, &u); err != nil || u.ID == "" {
		if m.logger != nil {
			m.logger.WithError(err).Warn("stored session record malformed, treating as absent")
		}
		m.setCurrent(nil)
		return nil, nil
	}
	m.setCurrent(&u)
	return u.Clone(), nil
}

// Login authenticates through the gateway and persists the resulting user.
// With the mock gateway this resolves after the simulated delay and never
// rejects credentials; it fails only if persisting the record fails, in
// which case the current user is left unchanged.
func (m *Manager) Login(ctx context.Context, email, password string, role Role) (*User, error) {
	u, err := m.gateway.Login(ctx, email, password, role)
	if err != nil {
		return nil, err
	}
	if err := m.persist(ctx, u); err != nil {
		return nil, err
	}
	m.setCurrent(u)
	return u.Clone(), nil
}

// Register creates a fresh account through the gateway. New users start
// with onboarding pending.
func (m *Manager) Register(ctx context.Context, name, email, password string, role Role) (*User, error) {
	u, err := m.gateway.Register(ctx, name, email, password, role)
	if err != nil {
		return nil, err
	}
	if err := m.persist(ctx, u); err != nil {
		return nil, err
	}
	m.setCurrent(u)
	return u.Clone(), nil
}

// UpdateProfile merges the supplied fields into the current user, persists
// the result, and returns the merged record. Fails with ErrNoSession when
// nobody is logged in; on a persistence failure the current user is left
// unchanged.
func (m *Manager) UpdateProfile(ctx context.Context, up ProfileUpdate) (*User, error) {
	cur := m.Current()
	if cur == nil {
		return nil, ErrNoSession
	}
	up.apply(cur)
	if err := m.persist(ctx, cur); err != nil {
		return nil, err
	}
	m.setCurrent(cur)
	return cur.Clone(), nil
}

// Logout clears the current user and removes the persisted record. It
// always succeeds; a store removal failure is only logged.
func (m *Manager) Logout(ctx context.Context) {
	m.setCurrent(nil)
	if err := m.store.Remove(ctx); err != nil && m.logger != nil {
		m.logger.WithError(err).Warn("session record removal failed")
	}
}

func (m *Manager) persist(ctx context.Context, u *User) error {
	b, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	if err := m.store.Set(ctx, b); err != nil {
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return nil
}

func (m *Manager) setCurrent(u *User) {
	m.mu.Lock()
	m.current = u
	m.mu.Unlock()
}
