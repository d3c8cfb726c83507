package cartservice

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"

	"mealdash/internal/api"
	"mealdash/internal/models"
	"mealdash/pkg/lib/logger/sl"
	"mealdash/pkg/lib/notice"
)

type CartAPI interface {
	FetchCart(ctx context.Context) ([]models.CartLine, error)
	AddToCart(ctx context.Context, menuItemId, quantity int) error
	UpdateQuantity(ctx context.Context, cartItemId, quantity int) error
	RemoveFromCart(ctx context.Context, cartItemId int) error
}

type SessionChecker interface {
	IsAuthenticated() bool
}

// Store mirrors the server-side cart for the current session. Every
// mutation sends the command and then refetches the full cart; local
// state is replaced wholesale, never reconciled. Outcomes reach the
// user through notices, read failures are only logged.
type Store struct {
	log     *slog.Logger
	api     CartAPI
	session SessionChecker
	notices notice.Notifier

	mu      sync.RWMutex
	lines   []models.CartLine
	loading atomic.Bool
}

func New(log *slog.Logger, cartAPI CartAPI, session SessionChecker, notices notice.Notifier) *Store {
	return &Store{
		log:     log,
		api:     cartAPI,
		session: session,
		notices: notices,
	}
}

// FetchCart resyncs the line list from the server. Without a session it
// is a no-op; on failure the previous lines stay in place.
func (s *Store) FetchCart(ctx context.Context) {
	const op = "service.cart.FetchCart"
	log := s.log.With("op", op)

	if !s.session.IsAuthenticated() {
		return
	}

	s.loading.Store(true)
	defer s.loading.Store(false)

	lines, err := s.api.FetchCart(ctx)
	if err != nil {
		log.Error("Cart fetch failed", sl.Err(err))
		return
	}

	s.mu.Lock()
	s.lines = lines
	s.mu.Unlock()
}

func (s *Store) AddToCart(ctx context.Context, menuItemId, quantity int) {
	const op = "service.cart.AddToCart"
	log := s.log.With("op", op)

	if !s.session.IsAuthenticated() {
		s.notices.Error("Please login to add items")
		return
	}

	s.loading.Store(true)
	defer s.loading.Store(false)

	if err := s.api.AddToCart(ctx, menuItemId, quantity); err != nil {
		log.Error("Failed to add item to cart", sl.Err(err))
		s.notices.Error(api.ServerMessage(err, "Failed to add item", "error"))
		return
	}

	s.refetch(ctx, log)
	s.notices.Success("Added to cart")
}

func (s *Store) UpdateQuantity(ctx context.Context, cartItemId, quantity int) {
	const op = "service.cart.UpdateQuantity"
	log := s.log.With("op", op)

	s.loading.Store(true)
	defer s.loading.Store(false)

	if err := s.api.UpdateQuantity(ctx, cartItemId, quantity); err != nil {
		log.Error("Failed to update cart item", sl.Err(err))
		s.notices.Error(api.ServerMessage(err, "Failed to update cart", "error"))
		return
	}

	s.refetch(ctx, log)
	s.notices.Success("Updated cart")
}

func (s *Store) RemoveFromCart(ctx context.Context, cartItemId int) {
	const op = "service.cart.RemoveFromCart"
	log := s.log.With("op", op)

	s.loading.Store(true)
	defer s.loading.Store(false)

	if err := s.api.RemoveFromCart(ctx, cartItemId); err != nil {
		log.Error("Failed to remove cart item", sl.Err(err))
		s.notices.Error(api.ServerMessage(err, "Failed to remove item", "error"))
		return
	}

	s.refetch(ctx, log)
	s.notices.Success("Item removed")
}

// Clear resets the local line list only. The server cart is not
// touched; it is expected to be emptied by order placement. A later
// FetchCart repopulates whatever the server still holds.
func (s *Store) Clear() {
	s.mu.Lock()
	s.lines = nil
	s.mu.Unlock()
}

// refetch runs the post-mutation resync. Its failures follow the read
// policy: logged, previous lines kept, no notice.
func (s *Store) refetch(ctx context.Context, log *slog.Logger) {
	lines, err := s.api.FetchCart(ctx)
	if err != nil {
		log.Error("Cart refetch failed", sl.Err(err))
		return
	}

	s.mu.Lock()
	s.lines = lines
	s.mu.Unlock()
}

func (s *Store) Lines() []models.CartLine {
	s.mu.RLock()
	defer s.mu.RUnlock()
	lines := make([]models.CartLine, len(s.lines))
	copy(lines, s.lines)
	return lines
}

func (s *Store) TotalAmount() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var sum float64
	for _, line := range s.lines {
		sum += line.Subtotal()
	}
	return sum
}

func (s *Store) ItemCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var count int
	for _, line := range s.lines {
		count += line.Quantity
	}
	return count
}

func (s *Store) Loading() bool {
	return s.loading.Load()
}
