package session

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/Prakash-Banjade/smart-tutor/pkg/helpers"
)

func newUserID() string { return uuid.NewString() }

const defaultAvatarURL = "https://images.pexels.com/photos/415829/pexels-photo-415829.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2"

// Gateway is the authentication backend boundary. The mock implementation
// fabricates successful responses after a fixed delay; a real auth service
// can replace it without touching the Manager.
type Gateway interface {
	Login(ctx context.Context, email, password string, role Role) (*User, error)
	Register(ctx context.Context, name, email, password string, role Role) (*User, error)
}

// CredentialRecorder mirrors a bcrypt credential hash so a future real
// check at the gateway has something to verify against.
type CredentialRecorder interface {
	Record(ctx context.Context, email, passwordHash string) error
}

// MockGateway stands in for the auth service. It never validates
// credentials: every login and registration succeeds after Latency elapses.
// ErrAuthRejected stays unreachable until a real gateway takes over.
type MockGateway struct {
	Latency time.Duration
	Creds   CredentialRecorder // optional
	Logger  *logrus.Logger
}

func NewMockGateway(latency time.Duration, creds CredentialRecorder, logger *logrus.Logger) *MockGateway {
	return &MockGateway{Latency: latency, Creds: creds, Logger: logger}
}

func (g *MockGateway) Login(ctx context.Context, email, password string, role Role) (*User, error) {
	if err := g.wait(ctx); err != nil {
		return nil, err
	}
	g.recordCredential(ctx, email, password)
	return &User{
		ID:        newUserID(),
		Name:      displayNameFor(role),
		Email:     email,
		Role:      role,
		AvatarURL: defaultAvatarURL,
		// Existing accounts are past onboarding.
		Onboarding: OnboardingComplete,
	}, nil
}

func (g *MockGateway) Register(ctx context.Context, name, email, password string, role Role) (*User, error) {
	if err := g.wait(ctx); err != nil {
		return nil, err
	}
	g.recordCredential(ctx, email, password)
	return &User{
		ID:         newUserID(),
		Name:       name,
		Email:      email,
		Role:       role,
		AvatarURL:  defaultAvatarURL,
		Onboarding: OnboardingNotStarted,
	}, nil
}

// wait simulates the network round trip to the auth service.
func (g *MockGateway) wait(ctx context.Context) error {
	if g.Latency <= 0 {
		return nil
	}
	t := time.NewTimer(g.Latency)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (g *MockGateway) recordCredential(ctx context.Context, email, password string) {
	if g.Creds == nil {
		return
	}
	hash, err := helpers.HashPassword(password)
	if err != nil {
		if g.Logger != nil {
			g.Logger.WithError(err).Warn("credential hash failed")
		}
		return
	}
	if err := g.Creds.Record(ctx, email, hash); err != nil && g.Logger != nil {
		g.Logger.WithError(err).WithField("email", email).Warn("credential record failed")
	}
}

func displayNameFor(role Role) string {
	if role == RoleTutor {
		return "Tutor Name"
	}
	return "Student Name"
}

// RedisCredentialRecorder keeps credential hashes under user:cred:<email>.
type RedisCredentialRecorder struct {
	rdb *redis.Client
}

func NewRedisCredentialRecorder(rdb *redis.Client) *RedisCredentialRecorder {
	return &RedisCredentialRecorder{rdb: rdb}
}

func (r *RedisCredentialRecorder) Record(ctx context.Context, email, passwordHash string) error {
	return r.rdb.Set(ctx, "user:cred:"+email, passwordHash, 0).Err()
}
