package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"vetcare-web/internal/core/domain"
	"vetcare-web/internal/pkg/jwt"
	"vetcare-web/internal/pkg/metrics"

	"github.com/sirupsen/logrus"
)

// Session errors
var (
	ErrOperationInProgress = errors.New("another session operation is in progress")
	ErrNotAuthenticated    = errors.New("not authenticated")
	ErrRoleMismatch        = errors.New("profile role does not match the session")
)

// Session is a snapshot of a browser's authentication state.
// While Loading is true, Authenticated is meaningless and consumers must wait.
type Session struct {
	User          domain.Profile
	Authenticated bool
	Loading       bool
}

// SessionService owns the authentication state of one browser
type SessionService struct {
	store SessionStore
	auth  AuthGateway
	log   *logrus.Entry
	now   func() time.Time

	mu      sync.RWMutex
	user    domain.Profile
	loading bool

	startOnce sync.Once
	ready     chan struct{}

	// op serializes everything that writes the store
	op sync.Mutex
}

// NewSessionService creates a session in the initializing state
func NewSessionService(store SessionStore, auth AuthGateway, log *logrus.Entry) *SessionService {
	return &SessionService{
		store:   store,
		auth:    auth,
		log:     log,
		now:     time.Now,
		loading: true,
		ready:   make(chan struct{}),
	}
}

// Start runs the startup token check. Only the first call does any work;
// later calls return immediately, even while the first is still running.
func (s *SessionService) Start(ctx context.Context) {
	s.startOnce.Do(func() {
		// ready closes only after the lock is released
		defer close(s.ready)
		s.op.Lock()
		defer s.op.Unlock()

		user, cause := s.restore(ctx)

		s.mu.Lock()
		s.user = user
		s.loading = false
		s.mu.Unlock()

		s.recordTransition(cause)
	})
}

// restore returns the verified user, or nil plus the reason for staying anonymous
func (s *SessionService) restore(ctx context.Context) (domain.Profile, string) {
	token, hasToken := s.store.Token(ctx)
	_, hasUser := s.store.User(ctx)
	if !hasToken || !hasUser {
		return nil, "no_session"
	}

	if jwt.Expired(token, s.now()) {
		s.log.Info("stored token expired, clearing session")
		s.clearStore(ctx)
		return nil, "expired"
	}

	res, err := s.auth.Verify(ctx)
	if err != nil {
		s.log.WithError(err).Warn("token verification failed, clearing session")
		s.clearStore(ctx)
		return nil, "verify_error"
	}
	if !res.Valid || res.User == nil {
		s.log.Info("token rejected by backend, clearing session")
		s.clearStore(ctx)
		return nil, "verify_invalid"
	}

	if err := s.store.SaveUser(ctx, res.User); err != nil {
		s.log.WithError(err).Warn("refresh cached user failed")
	}
	return res.User, "verify"
}

// Ready is closed once the startup check has finished
func (s *SessionService) Ready() <-chan struct{} {
	return s.ready
}

// Snapshot returns the current state
func (s *SessionService) Snapshot() Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Session{
		User:          s.user,
		Authenticated: !s.loading && s.user != nil,
		Loading:       s.loading,
	}
}

// Login authenticates against the backend and persists the session.
// On failure nothing is stored and the error is returned unchanged.
func (s *SessionService) Login(ctx context.Context, email, password string, role domain.UserType) (domain.Profile, error) {
	creds := domain.Credentials{Email: strings.TrimSpace(email), Senha: password, Tipo: role}
	if err := creds.Validate(); err != nil {
		return nil, err
	}
	return s.authenticate(ctx, "login", func(ctx context.Context) (domain.AuthResult, error) {
		return s.auth.Login(ctx, creds)
	})
}

// RegisterTutor creates a tutor account and logs it in
func (s *SessionService) RegisterTutor(ctx context.Context, reg domain.TutorRegistration) (domain.Profile, error) {
	if err := reg.Validate(); err != nil {
		return nil, err
	}
	return s.authenticate(ctx, "register", func(ctx context.Context) (domain.AuthResult, error) {
		return s.auth.RegisterTutor(ctx, reg)
	})
}

// RegisterClinica creates a clinic account and logs it in
func (s *SessionService) RegisterClinica(ctx context.Context, reg domain.ClinicaRegistration) (domain.Profile, error) {
	if err := reg.Validate(); err != nil {
		return nil, err
	}
	return s.authenticate(ctx, "register", func(ctx context.Context) (domain.AuthResult, error) {
		return s.auth.RegisterClinica(ctx, reg)
	})
}

func (s *SessionService) authenticate(ctx context.Context, cause string, call func(context.Context) (domain.AuthResult, error)) (domain.Profile, error) {
	if !s.op.TryLock() {
		return nil, ErrOperationInProgress
	}
	defer s.op.Unlock()

	res, err := call(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.store.SaveToken(ctx, res.Token); err != nil {
		s.clearStore(ctx)
		return nil, fmt.Errorf("save token: %w", err)
	}
	if err := s.store.SaveUser(ctx, res.User); err != nil {
		s.clearStore(ctx)
		return nil, fmt.Errorf("save user: %w", err)
	}

	s.mu.Lock()
	s.user = res.User
	s.mu.Unlock()

	s.recordTransition(cause)
	s.log.WithField("type", res.User.Type()).Info("session authenticated")
	return res.User, nil
}

// Logout always ends anonymous with an empty store. The backend call is
// best effort and its failure is only logged.
func (s *SessionService) Logout(ctx context.Context) {
	s.op.Lock()
	defer s.op.Unlock()

	defer func() {
		s.clearStore(ctx)
		s.mu.Lock()
		s.user = nil
		s.mu.Unlock()
		s.recordTransition("logout")
	}()

	if err := s.auth.Logout(ctx); err != nil {
		s.log.WithError(err).Warn("backend logout failed")
	}
}

// UpdateUser replaces the cached profile with one returned by the backend
func (s *SessionService) UpdateUser(ctx context.Context, user domain.Profile) error {
	if user == nil {
		return ErrNotAuthenticated
	}
	if !s.op.TryLock() {
		return ErrOperationInProgress
	}
	defer s.op.Unlock()

	current := s.Snapshot()
	if !current.Authenticated {
		return ErrNotAuthenticated
	}
	if current.User.Type() != user.Type() {
		return ErrRoleMismatch
	}
	if err := s.store.SaveUser(ctx, user); err != nil {
		return fmt.Errorf("save user: %w", err)
	}

	s.mu.Lock()
	s.user = user
	s.mu.Unlock()
	return nil
}

// IsTutor reports whether the logged-in user is a tutor
func (s *SessionService) IsTutor() bool {
	_, ok := s.Snapshot().User.(*domain.Tutor)
	return ok
}

// IsClinica reports whether the logged-in user is a clinic
func (s *SessionService) IsClinica() bool {
	_, ok := s.Snapshot().User.(*domain.Clinica)
	return ok
}

func (s *SessionService) clearStore(ctx context.Context) {
	ctx = context.WithoutCancel(ctx)
	if err := s.store.Clear(ctx); err != nil {
		s.log.WithError(err).Error("clear session store failed")
	}
}

func (s *SessionService) recordTransition(cause string) {
	state := "anonymous"
	if s.Snapshot().Authenticated {
		state = "authenticated"
	}
	metrics.SessionTransitions.WithLabelValues(state, cause).Inc()
}
