package api_test

import (
	"mealdash/internal/api"

	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestServerMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		fallback string
		keys     []string
		want     string
	}{
		{
			name:     "plain error falls back",
			err:      errors.New("connection refused"),
			fallback: "Login failed",
			keys:     []string{"detail"},
			want:     "Login failed",
		},
		{
			name: "server message wins",
			err: &api.ResponseError{
				StatusCode: 400,
				Fields:     map[string]string{"detail": "Invalid credentials"},
			},
			fallback: "Login failed",
			keys:     []string{"detail"},
			want:     "Invalid credentials",
		},
		{
			name: "key priority is respected",
			err: &api.ResponseError{
				StatusCode: 400,
				Fields: map[string]string{
					"email":    "Enter a valid email address",
					"password": "Passwords do not match",
				},
			},
			fallback: "Registration failed",
			keys:     []string{"password", "email", "detail"},
			want:     "Passwords do not match",
		},
		{
			name: "wrapped response error is unwrapped",
			err: fmt.Errorf("service.cart.AddToCart: %w", &api.ResponseError{
				StatusCode: 400,
				Fields:     map[string]string{"error": "Item is not available"},
			}),
			fallback: "Failed to add item",
			keys:     []string{"error"},
			want:     "Item is not available",
		},
		{
			name: "no matching key falls back",
			err: &api.ResponseError{
				StatusCode: 500,
				Fields:     map[string]string{},
			},
			fallback: "Something went wrong",
			keys:     []string{"error"},
			want:     "Something went wrong",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := api.ServerMessage(tt.err, tt.fallback, tt.keys...)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResponseError_Error(t *testing.T) {
	withMessage := &api.ResponseError{
		StatusCode: 404,
		Fields:     map[string]string{"detail": "Not found."},
	}
	assert.Equal(t, "api: 404: Not found.", withMessage.Error())
	assert.True(t, withMessage.IsNotFound())

	bare := &api.ResponseError{StatusCode: 502}
	assert.Equal(t, "api: request failed with status 502", bare.Error())
}
