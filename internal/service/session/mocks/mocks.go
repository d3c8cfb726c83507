package mocks

import (
	"context"
	"sync"

	"mealdash/internal/api"
	"mealdash/internal/models"

	"github.com/stretchr/testify/mock"
)

type AuthAPI struct {
	mock.Mock
}

func (m *AuthAPI) Login(ctx context.Context, email, password string) (api.AuthResult, error) {
	args := m.Called(ctx, email, password)
	return args.Get(0).(api.AuthResult), args.Error(1)
}

func (m *AuthAPI) Register(ctx context.Context, req api.RegisterRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

type SessionStorage struct {
	mock.Mock
}

func (m *SessionStorage) SaveSession(ctx context.Context, token string, user models.Session) error {
	args := m.Called(ctx, token, user)
	return args.Error(0)
}

func (m *SessionStorage) LoadSession(ctx context.Context) (string, models.Session, error) {
	args := m.Called(ctx)
	return args.String(0), args.Get(1).(models.Session), args.Error(2)
}

func (m *SessionStorage) ClearSession(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// TokenSink records the tokens pushed into the API client.
type TokenSink struct {
	mu      sync.Mutex
	Tokens  []string
	Cleared int
}

func (s *TokenSink) SetToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Tokens = append(s.Tokens, token)
}

func (s *TokenSink) ClearToken() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Cleared++
}
