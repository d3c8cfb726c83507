package mocks

import (
	"context"
	"sync"

	"mealdash/internal/models"

	"github.com/stretchr/testify/mock"
)

type CartAPI struct {
	mock.Mock
}

func (m *CartAPI) FetchCart(ctx context.Context) ([]models.CartLine, error) {
	args := m.Called(ctx)
	var lines []models.CartLine
	if v := args.Get(0); v != nil {
		lines = v.([]models.CartLine)
	}
	return lines, args.Error(1)
}

func (m *CartAPI) AddToCart(ctx context.Context, menuItemId, quantity int) error {
	args := m.Called(ctx, menuItemId, quantity)
	return args.Error(0)
}

func (m *CartAPI) UpdateQuantity(ctx context.Context, cartItemId, quantity int) error {
	args := m.Called(ctx, cartItemId, quantity)
	return args.Error(0)
}

func (m *CartAPI) RemoveFromCart(ctx context.Context, cartItemId int) error {
	args := m.Called(ctx, cartItemId)
	return args.Error(0)
}

// Session is a fixed-answer session checker.
type Session struct {
	Authed bool
}

func (s *Session) IsAuthenticated() bool {
	return s.Authed
}

// Notices records every notice for later assertions.
type Notices struct {
	mu        sync.Mutex
	Successes []string
	Errors    []string
}

func (n *Notices) Success(msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.Successes = append(n.Successes, msg)
}

func (n *Notices) Error(msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.Errors = append(n.Errors, msg)
}
