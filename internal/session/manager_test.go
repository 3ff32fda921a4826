package session

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func newTestManager() (*Manager, Store) {
	store := NewMemoryProvider().Store("user:session:test")
	gw := NewMockGateway(0, nil, testLogger())
	return NewManager(store, gw, testLogger()), store
}

func TestRestoreEmptyStore(t *testing.T) {
	m, _ := newTestManager()

	u, err := m.Restore(context.Background())
	require.NoError(t, err)
	assert.Nil(t, u)
	assert.Nil(t, m.Current())
}

func TestLoginPersistsAndSurvivesRestart(t *testing.T) {
	m, store := newTestManager()
	ctx := context.Background()

	u, err := m.Login(ctx, "jane@example.com", "password123", RoleStudent)
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.NotEmpty(t, u.ID)
	assert.Equal(t, "jane@example.com", u.Email)
	assert.Equal(t, RoleStudent, u.Role)
	assert.Equal(t, "Student Name", u.Name)
	assert.True(t, u.OnboardingCompleted())

	// A fresh manager over the same store sees the persisted record.
	m2 := NewManager(store, NewMockGateway(0, nil, testLogger()), testLogger())
	restored, err := m2.Restore(ctx)
	require.NoError(t, err)
	require.NotNil(t, restored)
	assert.Equal(t, u.ID, restored.ID)
	assert.Equal(t, u.Email, restored.Email)
	assert.Equal(t, u.Role, restored.Role)
}

func TestLoginFabricatesDistinctIdentities(t *testing.T) {
	m, _ := newTestManager()
	ctx := context.Background()

	u1, err := m.Login(ctx, "same@example.com", "password123", RoleStudent)
	require.NoError(t, err)
	u2, err := m.Login(ctx, "same@example.com", "password123", RoleStudent)
	require.NoError(t, err)
	assert.NotEqual(t, u1.ID, u2.ID)
}

func TestLoginTutorDisplayName(t *testing.T) {
	m, _ := newTestManager()

	u, err := m.Login(context.Background(), "t@example.com", "password123", RoleTutor)
	require.NoError(t, err)
	assert.Equal(t, "Tutor Name", u.Name)
	assert.Equal(t, RoleTutor, u.Role)
}

func TestRegisterStartsOnboarding(t *testing.T) {
	m, _ := newTestManager()

	u, err := m.Register(context.Background(), "Nabin Karki", "nabin@example.com", "password123", RoleTutor)
	require.NoError(t, err)
	assert.Equal(t, "Nabin Karki", u.Name)
	assert.Equal(t, OnboardingNotStarted, u.Onboarding)
	assert.True(t, u.NeedsOnboarding())
	assert.False(t, u.OnboardingCompleted())
}

func TestRestoreIsIdempotent(t *testing.T) {
	m, _ := newTestManager()
	ctx := context.Background()

	_, err := m.Login(ctx, "jane@example.com", "password123", RoleStudent)
	require.NoError(t, err)

	first, err := m.Restore(ctx)
	require.NoError(t, err)
	second, err := m.Restore(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestRestoreMalformedRecordTreatedAsAbsent(t *testing.T) {
	m, store := newTestManager()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, []byte("{not json")))
	u, err := m.Restore(ctx)
	require.NoError(t, err)
	assert.Nil(t, u)

	// A record without an id is equally unusable.
	require.NoError(t, store.Set(ctx, []byte(`{"name":"ghost"}`)))
	u, err = m.Restore(ctx)
	require.NoError(t, err)
	assert.Nil(t, u)
}

func TestUpdateProfileWithoutSession(t *testing.T) {
	m, _ := newTestManager()

	_, err := m.UpdateProfile(context.Background(), ProfileUpdate{})
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestUpdateProfileMergesAndPersists(t *testing.T) {
	m, store := newTestManager()
	ctx := context.Background()

	_, err := m.Login(ctx, "jane@example.com", "password123", RoleStudent)
	require.NoError(t, err)

	age := 21
	bio := "Physics undergrad"
	done := true
	u, err := m.UpdateProfile(ctx, ProfileUpdate{
		Age:                 &age,
		Subjects:            []string{"Physics", "Mathematics"},
		Bio:                 &bio,
		OnboardingCompleted: &done,
	})
	require.NoError(t, err)
	assert.Equal(t, 21, u.Age)
	assert.Equal(t, []string{"Physics", "Mathematics"}, u.Subjects)
	assert.Equal(t, "Physics undergrad", u.Bio)
	assert.Equal(t, OnboardingComplete, u.Onboarding)

	// Untouched fields survive the merge.
	assert.Equal(t, "jane@example.com", u.Email)

	m2 := NewManager(store, NewMockGateway(0, nil, testLogger()), testLogger())
	restored, err := m2.Restore(ctx)
	require.NoError(t, err)
	require.NotNil(t, restored)
	assert.Equal(t, 21, restored.Age)
	assert.Equal(t, []string{"Physics", "Mathematics"}, restored.Subjects)
}

func TestUpdateProfilePartialLeavesRestUntouched(t *testing.T) {
	m, _ := newTestManager()
	ctx := context.Background()

	_, err := m.Login(ctx, "jane@example.com", "password123", RoleStudent)
	require.NoError(t, err)

	age := 19
	_, err = m.UpdateProfile(ctx, ProfileUpdate{Age: &age})
	require.NoError(t, err)

	bio := "later"
	u, err := m.UpdateProfile(ctx, ProfileUpdate{Bio: &bio})
	require.NoError(t, err)
	assert.Equal(t, 19, u.Age)
	assert.Equal(t, "later", u.Bio)
}

func TestLogoutClearsSession(t *testing.T) {
	m, store := newTestManager()
	ctx := context.Background()

	_, err := m.Login(ctx, "jane@example.com", "password123", RoleStudent)
	require.NoError(t, err)

	m.Logout(ctx)
	assert.Nil(t, m.Current())

	_, ok, err := store.Get(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	// Logging out twice is harmless.
	m.Logout(ctx)
	assert.Nil(t, m.Current())
}

func TestGatewayLatencyHonorsContext(t *testing.T) {
	store := NewMemoryProvider().Store("user:session:test")
	gw := NewMockGateway(5*time.Second, nil, testLogger())
	m := NewManager(store, gw, testLogger())

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := m.Login(ctx, "jane@example.com", "password123", RoleStudent)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Nil(t, m.Current())
}

type failingStore struct{}

func (failingStore) Get(context.Context) ([]byte, bool, error) { return nil, false, errors.New("down") }
func (failingStore) Set(context.Context, []byte) error         { return errors.New("down") }
func (failingStore) Remove(context.Context) error              { return errors.New("down") }

func TestPersistFailureWrapsErrPersistence(t *testing.T) {
	m := NewManager(failingStore{}, NewMockGateway(0, nil, testLogger()), testLogger())
	ctx := context.Background()

	_, err := m.Login(ctx, "jane@example.com", "password123", RoleStudent)
	assert.ErrorIs(t, err, ErrPersistence)
	assert.Nil(t, m.Current())

	_, err = m.Restore(ctx)
	assert.ErrorIs(t, err, ErrPersistence)
}

func TestCurrentReturnsCopy(t *testing.T) {
	m, _ := newTestManager()
	ctx := context.Background()

	_, err := m.Login(ctx, "jane@example.com", "password123", RoleStudent)
	require.NoError(t, err)

	u := m.Current()
	require.NotNil(t, u)
	u.Name = "mutated"
	u.Subjects = append(u.Subjects, "oops")

	again := m.Current()
	assert.NotEqual(t, "mutated", again.Name)
	assert.NotContains(t, again.Subjects, "oops")
}
