package sessionservice

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"mealdash/internal/api"
	"mealdash/internal/models"
	serviceerrors "mealdash/internal/service"
	storageerrors "mealdash/internal/storage"
	"mealdash/pkg/lib/logger/sl"
)

type AuthAPI interface {
	Login(ctx context.Context, email, password string) (api.AuthResult, error)
	Register(ctx context.Context, req api.RegisterRequest) error
}

type SessionStorage interface {
	SaveSession(ctx context.Context, token string, user models.Session) error
	LoadSession(ctx context.Context) (string, models.Session, error)
	ClearSession(ctx context.Context) error
}

// TokenSink receives the bearer token for outgoing API calls.
type TokenSink interface {
	SetToken(token string)
	ClearToken()
}

// Store holds the current authenticated identity. The persisted session
// is restored synchronously at construction; no token-expiry check is
// performed locally, an expired token only shows up as a failing call.
type Store struct {
	log     *slog.Logger
	api     AuthAPI
	storage SessionStorage
	tokens  TokenSink

	mu    sync.RWMutex
	token string
	user  *models.Session
}

func New(log *slog.Logger, authAPI AuthAPI, storage SessionStorage, tokens TokenSink) *Store {
	const op = "service.session.New"

	s := &Store{
		log:     log,
		api:     authAPI,
		storage: storage,
		tokens:  tokens,
	}

	token, user, err := storage.LoadSession(context.Background())
	if err != nil {
		if !errors.Is(err, storageerrors.ErrNotFound) {
			log.With("op", op).Warn("Failed to restore session", sl.Err(err))
		}
		return s
	}

	if token != "" {
		s.token = token
		s.user = &user
		s.tokens.SetToken(token)
	}

	return s
}

// Login authenticates against the remote API and persists the returned
// token and user. On rejection the server message is surfaced.
func (s *Store) Login(ctx context.Context, email, password string) error {
	const op = "service.session.Login"
	log := s.log.With("op", op)

	select {
	case <-ctx.Done():
		return s.ctxErr(log, op, ctx.Err())
	default:
	}

	result, err := s.api.Login(ctx, email, password)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			log.Warn("context canceled", sl.Err(err))
			return fmt.Errorf("%s: %w", op, serviceerrors.ErrContextCanceled)
		}
		if errors.Is(err, context.DeadlineExceeded) {
			log.Warn("deadline exceeded", sl.Err(err))
			return fmt.Errorf("%s: %w", op, serviceerrors.ErrDeadlineExceeded)
		}

		log.Warn("Login rejected", sl.Err(err))
		return fmt.Errorf("%s: %w", op, &serviceerrors.AuthError{
			Message: api.ServerMessage(err, "Login failed", "detail"),
		})
	}

	s.mu.Lock()
	s.token = result.Token
	s.user = &result.User
	s.mu.Unlock()
	s.tokens.SetToken(result.Token)

	// a failed write only costs persistence across restarts, the
	// in-memory session is already established
	if err := s.storage.SaveSession(ctx, result.Token, result.User); err != nil {
		log.Error("Failed to persist session", sl.Err(err))
	}

	return nil
}

// Register creates an account. It does not establish a session, the
// server issues no token at registration.
func (s *Store) Register(ctx context.Context, name, email, password, confirmPassword, role string) error {
	const op = "service.session.Register"
	log := s.log.With("op", op)

	select {
	case <-ctx.Done():
		return s.ctxErr(log, op, ctx.Err())
	default:
	}

	err := s.api.Register(ctx, api.RegisterRequest{
		Name:      name,
		Email:     email,
		Password:  password,
		Password2: confirmPassword,
		Role:      role,
	})
	if err != nil {
		if errors.Is(err, context.Canceled) {
			log.Warn("context canceled", sl.Err(err))
			return fmt.Errorf("%s: %w", op, serviceerrors.ErrContextCanceled)
		}
		if errors.Is(err, context.DeadlineExceeded) {
			log.Warn("deadline exceeded", sl.Err(err))
			return fmt.Errorf("%s: %w", op, serviceerrors.ErrDeadlineExceeded)
		}

		log.Warn("Registration rejected", sl.Err(err))
		return fmt.Errorf("%s: %w", op, &serviceerrors.AuthError{
			Message: api.ServerMessage(err, "Registration failed", "password", "email", "detail"),
		})
	}

	return nil
}

// Logout clears the persisted and in-memory session. No server call.
func (s *Store) Logout() {
	const op = "service.session.Logout"
	log := s.log.With("op", op)

	if err := s.storage.ClearSession(context.Background()); err != nil {
		log.Error("Failed to clear persisted session", sl.Err(err))
	}

	s.mu.Lock()
	s.token = ""
	s.user = nil
	s.mu.Unlock()
	s.tokens.ClearToken()
}

func (s *Store) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user != nil
}

func (s *Store) IsAdmin() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user != nil && s.user.IsAdmin()
}

func (s *Store) Current() (models.Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return models.Session{}, false
	}
	return *s.user, true
}

func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *Store) ctxErr(log *slog.Logger, op string, err error) error {
	if errors.Is(err, context.Canceled) {
		log.Warn("context canceled", sl.Err(err))
		return fmt.Errorf("%s: %w", op, serviceerrors.ErrContextCanceled)
	}
	if errors.Is(err, context.DeadlineExceeded) {
		log.Warn("deadline exceeded", sl.Err(err))
		return fmt.Errorf("%s: %w", op, serviceerrors.ErrDeadlineExceeded)
	}
	log.Error("unexpected error", sl.Err(err))
	return fmt.Errorf("%s: %w", op, err)
}
