package api

import (
	"context"
	"fmt"

	"mealdash/internal/models"
)

type AuthResult struct {
	Token string
	User  models.Session
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	// the server requires the confirmation under password2
	Password2 string `json:"password2"`
	Role      string `json:"role"`
}

// Login exchanges credentials for a bearer token and the user record.
func (c *Client) Login(ctx context.Context, email, password string) (AuthResult, error) {
	const op = "api.Client.Login"

	body := map[string]string{
		"email":    email,
		"password": password,
	}

	var resp struct {
		Access string         `json:"access"`
		User   models.Session `json:"user"`
	}
	if err := c.post(ctx, "/auth/login/", body, &resp); err != nil {
		return AuthResult{}, fmt.Errorf("%s: %w", op, err)
	}

	return AuthResult{Token: resp.Access, User: resp.User}, nil
}

// Register creates an account. The server does not issue a token here,
// so there is nothing to return on success.
func (c *Client) Register(ctx context.Context, req RegisterRequest) error {
	const op = "api.Client.Register"

	if req.Role == "" {
		req.Role = models.RoleCustomer
	}

	if err := c.post(ctx, "/auth/register/", req, nil); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
