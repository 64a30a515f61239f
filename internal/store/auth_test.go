package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/ticketapp/internal/config"
	"github.com/spec-kit/ticketapp/internal/events"
	"github.com/spec-kit/ticketapp/internal/observability"
	"github.com/spec-kit/ticketapp/internal/persistence"
	"github.com/spec-kit/ticketapp/internal/repository"
	"github.com/spec-kit/ticketapp/pkg/util"
)

func newAuthFixture() (*AuthStore, *persistence.MemoryStore) {
	storage := persistence.NewMemoryStore()
	auth := NewAuthStore(config.AppConfig{SimulatedLatencyMS: 0}, AuthDependencies{
		SessionRepo: repository.NewSessionRepository(storage),
		UserRepo:    repository.NewUserRepository(storage),
		Dispatcher:  events.NewInMemoryDispatcher(),
		Metrics:     observability.NewMetrics(),
		Logger:      zap.NewNop(),
	})
	return auth, storage
}

func TestHandleRegisterInstallsSession(t *testing.T) {
	ctx := context.Background()
	auth, storage := newAuthFixture()

	session, err := auth.HandleRegister(ctx, "Alice", "alice@x.com", "Abcdef1")
	require.NoError(t, err)
	require.NotNil(t, session)
	assert.Equal(t, "Alice", session.Name)
	assert.Equal(t, "alice@x.com", session.Email)
	assert.True(t, auth.IsAuthenticated())
	assert.True(t, auth.SessionPresent(ctx))

	users, err := repository.NewUserRepository(storage).List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, session.ID, users[0].ID)
	assert.Equal(t, "Abcdef1", users[0].Password)
}

func TestHandleRegisterTrimsName(t *testing.T) {
	ctx := context.Background()
	auth, _ := newAuthFixture()

	session, err := auth.HandleRegister(ctx, "  Alice  ", "alice@x.com", "Abcdef1")
	require.NoError(t, err)
	assert.Equal(t, "Alice", session.Name)
}

func TestHandleRegisterDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	auth, storage := newAuthFixture()

	_, err := auth.HandleRegister(ctx, "Alice", "alice@x.com", "Abcdef1")
	require.NoError(t, err)

	_, err = auth.HandleRegister(ctx, "Impostor", "alice@x.com", "Ghijkl2")
	require.Error(t, err)
	assert.Equal(t, "An account with this email already exists", util.UserMessage(err))

	users, err := repository.NewUserRepository(storage).List(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestHandleLoginMatchesRegistryRecord(t *testing.T) {
	ctx := context.Background()
	auth, _ := newAuthFixture()

	registered, err := auth.HandleRegister(ctx, "Alice", "alice@x.com", "Abcdef1")
	require.NoError(t, err)
	require.NoError(t, auth.Logout(ctx))

	session, err := auth.HandleLogin(ctx, "alice@x.com", "Abcdef1")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, session.ID)
	assert.Equal(t, "alice@x.com", session.Email)
	assert.Equal(t, "Alice", session.Name)
	assert.True(t, auth.IsAuthenticated())
}

func TestHandleLoginRejectsBadCredentials(t *testing.T) {
	ctx := context.Background()
	auth, _ := newAuthFixture()

	existing, err := auth.HandleRegister(ctx, "Alice", "alice@x.com", "Abcdef1")
	require.NoError(t, err)

	tests := []struct {
		name     string
		email    string
		password string
	}{
		{name: "wrong password", email: "alice@x.com", password: "Wrong99"},
		{name: "unknown email", email: "nobody@x.com", password: "Abcdef1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := auth.HandleLogin(ctx, tt.email, tt.password)
			require.Error(t, err)
			assert.Equal(t, "Invalid email or password", util.UserMessage(err))

			// the failed attempt must not disturb the existing session
			current := auth.Session()
			require.NotNil(t, current)
			assert.Equal(t, existing.ID, current.ID)
		})
	}
}

func TestLogoutKeepsRegistry(t *testing.T) {
	ctx := context.Background()
	auth, storage := newAuthFixture()

	_, err := auth.HandleRegister(ctx, "Alice", "alice@x.com", "Abcdef1")
	require.NoError(t, err)
	require.NoError(t, auth.Logout(ctx))

	assert.False(t, auth.IsAuthenticated())
	assert.False(t, auth.SessionPresent(ctx))

	users, err := repository.NewUserRepository(storage).List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "Alice", users[0].Name)
}

func TestCheckAuthAdoptsPersistedSession(t *testing.T) {
	ctx := context.Background()
	auth, storage := newAuthFixture()

	_, err := auth.HandleRegister(ctx, "Alice", "alice@x.com", "Abcdef1")
	require.NoError(t, err)

	// a second store over the same storage picks the session up
	fresh := NewAuthStore(config.AppConfig{}, AuthDependencies{
		SessionRepo: repository.NewSessionRepository(storage),
		UserRepo:    repository.NewUserRepository(storage),
		Dispatcher:  events.NewInMemoryDispatcher(),
		Metrics:     observability.NewMetrics(),
		Logger:      zap.NewNop(),
	})
	assert.True(t, fresh.Loading())
	fresh.CheckAuth(ctx)
	assert.False(t, fresh.Loading())
	require.NotNil(t, fresh.Session())
	assert.Equal(t, "alice@x.com", fresh.Session().Email)
}

func TestCheckAuthClearsCorruptSession(t *testing.T) {
	ctx := context.Background()
	auth, storage := newAuthFixture()

	require.NoError(t, storage.Set(ctx, repository.SessionKey, []byte("{corrupt")))

	auth.CheckAuth(ctx)

	assert.False(t, auth.Loading())
	assert.Nil(t, auth.Session())
	assert.False(t, auth.SessionPresent(ctx))
}

func TestCheckAuthMissingSession(t *testing.T) {
	ctx := context.Background()
	auth, _ := newAuthFixture()

	auth.CheckAuth(ctx)

	assert.False(t, auth.Loading())
	assert.Nil(t, auth.Session())
}

func TestSubscribeNotifiesOnLoginAndLogout(t *testing.T) {
	ctx := context.Background()
	auth, _ := newAuthFixture()

	calls := 0
	token := auth.Subscribe(func() { calls++ })

	_, err := auth.HandleRegister(ctx, "Alice", "alice@x.com", "Abcdef1")
	require.NoError(t, err)
	require.NoError(t, auth.Logout(ctx))
	assert.Equal(t, 2, calls)

	auth.Unsubscribe(token)
	_, err = auth.HandleLogin(ctx, "alice@x.com", "Abcdef1")
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestSessionReturnsCopy(t *testing.T) {
	ctx := context.Background()
	auth, _ := newAuthFixture()

	_, err := auth.HandleRegister(ctx, "Alice", "alice@x.com", "Abcdef1")
	require.NoError(t, err)

	first := auth.Session()
	first.Name = "Mallory"
	assert.Equal(t, "Alice", auth.Session().Name)
}

func TestSessionIsSnapshotOfRegistry(t *testing.T) {
	ctx := context.Background()
	auth, storage := newAuthFixture()

	_, err := auth.HandleRegister(ctx, "Alice", "alice@x.com", "Abcdef1")
	require.NoError(t, err)

	// edit the registry record behind the store's back
	repo := repository.NewUserRepository(storage)
	users, err := repo.List(ctx)
	require.NoError(t, err)
	users[0].Name = "Alicia"
	require.NoError(t, repo.Save(ctx, users))

	// the active session keeps the fields captured at registration time
	assert.Equal(t, "Alice", auth.Session().Name)
	auth.CheckAuth(ctx)
	assert.Equal(t, "Alice", auth.Session().Name)
}

func TestHandleLoginStampsLoginTime(t *testing.T) {
	ctx := context.Background()
	auth, _ := newAuthFixture()

	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	auth.now = func() time.Time { return base }

	_, err := auth.HandleRegister(ctx, "Alice", "alice@x.com", "Abcdef1")
	require.NoError(t, err)
	require.NoError(t, auth.Logout(ctx))

	later := base.Add(45 * time.Minute)
	auth.now = func() time.Time { return later }
	session, err := auth.HandleLogin(ctx, "alice@x.com", "Abcdef1")
	require.NoError(t, err)
	assert.Equal(t, later, session.LoginTime)
}
