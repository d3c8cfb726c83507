package authhandler

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"mealdash/internal/models"
	serviceerrors "mealdash/internal/service"
	"mealdash/pkg/lib/logger/sl"
	"mealdash/pkg/lib/notice"
)

type SessionStore interface {
	Login(ctx context.Context, email, password string) error
	Register(ctx context.Context, name, email, password, confirmPassword, role string) error
	Logout()
	Current() (models.Session, bool)
}

type CartStore interface {
	FetchCart(ctx context.Context)
	Clear()
}

type Handler struct {
	log     *slog.Logger
	session SessionStore
	cart    CartStore
	notices notice.Notifier
	out     io.Writer
}

func New(log *slog.Logger, session SessionStore, cart CartStore, notices notice.Notifier, out io.Writer) *Handler {
	return &Handler{
		log:     log,
		session: session,
		cart:    cart,
		notices: notices,
		out:     out,
	}
}

// Login authenticates and, like the page transition after a successful
// login, pulls the server cart for the fresh session.
func (h *Handler) Login(ctx context.Context, email, password string) {
	const op = "handlers.auth.Login"
	log := h.log.With("op", op)

	if err := h.session.Login(ctx, email, password); err != nil {
		log.Warn("Login failed", sl.Err(err))

		var authErr *serviceerrors.AuthError
		if errors.As(err, &authErr) {
			h.notices.Error(authErr.Message)
			return
		}
		h.notices.Error("Login failed")
		return
	}

	h.cart.FetchCart(ctx)

	if user, ok := h.session.Current(); ok {
		fmt.Fprintf(h.out, "Logged in as %s (%s)\n", user.Name, user.Role)
	}
	h.notices.Success("Login successful")
}

// Register creates an account; the session stays untouched because the
// server issues no token at registration.
func (h *Handler) Register(ctx context.Context, name, email, password, confirmPassword, role string) {
	const op = "handlers.auth.Register"
	log := h.log.With("op", op)

	if err := h.session.Register(ctx, name, email, password, confirmPassword, role); err != nil {
		log.Warn("Registration failed", sl.Err(err))

		var authErr *serviceerrors.AuthError
		if errors.As(err, &authErr) {
			h.notices.Error(authErr.Message)
			return
		}
		h.notices.Error("Registration failed")
		return
	}

	h.notices.Success("Registration successful. Please login.")
}

func (h *Handler) Logout(_ context.Context) {
	h.session.Logout()
	h.cart.Clear()
	h.notices.Success("Logged out")
}
