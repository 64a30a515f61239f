package store

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/ticketapp/internal/config"
	"github.com/spec-kit/ticketapp/internal/domain"
	"github.com/spec-kit/ticketapp/internal/events"
	"github.com/spec-kit/ticketapp/internal/observability"
	"github.com/spec-kit/ticketapp/internal/persistence"
	"github.com/spec-kit/ticketapp/internal/repository"
	"github.com/spec-kit/ticketapp/pkg/util"
)

// AuthStore owns the current-session state and the login/register/logout
// flows. All state access is mutex-guarded; callers may share one instance.
type AuthStore struct {
	mu      sync.RWMutex
	session *domain.Session
	loading bool

	sessions   repository.SessionRepository
	users      repository.UserRepository
	dispatcher events.Dispatcher
	metrics    *observability.Metrics
	logger     *zap.Logger
	latency    time.Duration
	now        func() time.Time
}

// AuthDependencies bundles collaborator requirements for the auth store.
type AuthDependencies struct {
	SessionRepo repository.SessionRepository
	UserRepo    repository.UserRepository
	Dispatcher  events.Dispatcher
	Metrics     *observability.Metrics
	Logger      *zap.Logger
}

// NewAuthStore builds the store. The loading flag starts set and stays set
// until the first CheckAuth completes.
func NewAuthStore(cfg config.AppConfig, deps AuthDependencies) *AuthStore {
	return &AuthStore{
		loading:    true,
		sessions:   deps.SessionRepo,
		users:      deps.UserRepo,
		dispatcher: deps.Dispatcher,
		metrics:    deps.Metrics,
		logger:     deps.Logger,
		latency:    cfg.SimulatedLatency(),
		now:        time.Now,
	}
}

// Session returns a copy of the current session, or nil when logged out.
func (s *AuthStore) Session() *domain.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.session == nil {
		return nil
	}
	session := *s.session
	return &session
}

// IsAuthenticated reports whether a session is currently installed.
func (s *AuthStore) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session != nil
}

// Loading reports whether the initial session check is still pending.
func (s *AuthStore) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// CheckAuth adopts the persisted session when it parses, and clears both the
// in-memory and persisted record otherwise. Corrupt persisted data never
// propagates to the caller. The loading flag is cleared on every path.
func (s *AuthStore) CheckAuth(ctx context.Context) {
	defer s.setLoading(false)
	s.metrics.RecordOperation("check_auth")

	session, err := s.sessions.Get(ctx)
	if err != nil {
		if !errors.Is(err, persistence.ErrKeyNotFound) {
			s.logger.Error("error parsing session record", zap.Error(err))
			s.metrics.RecordError("check_auth", "STORAGE_FAILURE")
			_ = s.sessions.Clear(ctx)
		}
		s.setSession(nil)
		return
	}
	s.setSession(session)
}

// Login persists the session record, installs it, and notifies subscribers.
func (s *AuthStore) Login(ctx context.Context, session *domain.Session) error {
	if err := s.sessions.Set(ctx, session); err != nil {
		return err
	}
	s.setSession(session)
	s.publishAuthChanged(ctx)
	return nil
}

// Logout clears the persisted and in-memory session and notifies subscribers.
func (s *AuthStore) Logout(ctx context.Context) error {
	s.metrics.RecordOperation("logout")
	err := s.sessions.Clear(ctx)
	s.setSession(nil)
	s.publishAuthChanged(ctx)
	if err != nil {
		s.logger.Error("error clearing session record", zap.Error(err))
	}
	return err
}

// HandleLogin authenticates against the user registry after the simulated
// network delay. A non-matching email/password pair fails with the exact
// user-facing message; unexpected faults degrade to the generic message and
// leave any existing session untouched.
func (s *AuthStore) HandleLogin(ctx context.Context, email, password string) (*domain.Session, error) {
	s.metrics.RecordOperation("handle_login")
	s.simulateLatency()

	users, err := s.users.List(ctx)
	if err != nil {
		s.logger.Error("error loading user registry", zap.Error(err))
		s.metrics.RecordError("handle_login", "INTERNAL_ERROR")
		return nil, util.NewInternalError(err)
	}

	var found *domain.User
	for i := range users {
		if users[i].Email == email && users[i].Password == password {
			found = &users[i]
			break
		}
	}
	if found == nil {
		s.metrics.RecordError("handle_login", "INVALID_CREDENTIALS")
		return nil, util.NewInvalidCredentials()
	}

	session := &domain.Session{
		ID:        found.ID,
		Email:     found.Email,
		Name:      found.Name,
		LoginTime: s.now(),
	}
	if err := s.Login(ctx, session); err != nil {
		s.logger.Error("error persisting session record", zap.Error(err))
		s.metrics.RecordError("handle_login", "INTERNAL_ERROR")
		return nil, util.NewInternalError(err)
	}
	return session, nil
}

// HandleRegister creates a registry record and installs a session for it
// after the simulated network delay. A duplicate email fails without
// appending to the registry.
func (s *AuthStore) HandleRegister(ctx context.Context, name, email, password string) (*domain.Session, error) {
	s.metrics.RecordOperation("handle_register")
	s.simulateLatency()

	users, err := s.users.List(ctx)
	if err != nil {
		s.logger.Error("error loading user registry", zap.Error(err))
		s.metrics.RecordError("handle_register", "INTERNAL_ERROR")
		return nil, util.NewInternalError(err)
	}

	for i := range users {
		if users[i].Email == email {
			s.metrics.RecordError("handle_register", "EMAIL_EXISTS")
			return nil, util.NewEmailExists()
		}
	}

	user := domain.User{
		ID:        domain.NewID(),
		Name:      strings.TrimSpace(name),
		Email:     email,
		Password:  password,
		CreatedAt: s.now(),
	}
	users = append(users, user)
	if err := s.users.Save(ctx, users); err != nil {
		s.logger.Error("error persisting user registry", zap.Error(err))
		s.metrics.RecordError("handle_register", "INTERNAL_ERROR")
		return nil, util.NewInternalError(err)
	}

	session := &domain.Session{
		ID:        user.ID,
		Email:     user.Email,
		Name:      user.Name,
		LoginTime: s.now(),
	}
	if err := s.Login(ctx, session); err != nil {
		s.logger.Error("error persisting session record", zap.Error(err))
		s.metrics.RecordError("handle_register", "INTERNAL_ERROR")
		return nil, util.NewInternalError(err)
	}
	return session, nil
}

// Subscribe registers a callback invoked after every login/logout and returns
// a token for Unsubscribe.
func (s *AuthStore) Subscribe(fn func()) string {
	if s.dispatcher == nil {
		return ""
	}
	return s.dispatcher.Subscribe(events.EventAuthChanged, func(context.Context, events.Event) error {
		fn()
		return nil
	})
}

// Unsubscribe detaches a callback registered via Subscribe.
func (s *AuthStore) Unsubscribe(token string) {
	if s.dispatcher == nil {
		return
	}
	s.dispatcher.Unsubscribe(events.EventAuthChanged, token)
}

// SessionPresent checks for the persisted session key without parsing it.
// Navigation guards gate on presence only.
func (s *AuthStore) SessionPresent(ctx context.Context) bool {
	present, err := s.sessions.Present(ctx)
	if err != nil {
		s.logger.Error("error probing session record", zap.Error(err))
		return false
	}
	return present
}

func (s *AuthStore) setSession(session *domain.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = session
}

func (s *AuthStore) setLoading(v bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = v
}

// simulateLatency models a remote-call delay. The wait is not cancellable;
// an abandoned handler still runs to completion.
func (s *AuthStore) simulateLatency() {
	if s.latency > 0 {
		time.Sleep(s.latency)
	}
}

func (s *AuthStore) publishAuthChanged(ctx context.Context) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventAuthChanged,
		Timestamp: s.now(),
	})
}
