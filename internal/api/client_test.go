package api_test

import (
	"mealdash/internal/api"
	"mealdash/internal/models"
	"mealdash/pkg/lib/logger/slogdiscard"

	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newTestClient(handler http.HandlerFunc) (*api.Client, *httptest.Server) {
	server := httptest.NewServer(handler)
	client := api.NewClient(slogdiscard.NewDiscardLogger(), server.URL, 5*time.Second)
	return client, server
}

func TestLogin_Success(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/auth/login/", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]string
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("failed to decode request body: %v", err)
		}
		assert.Equal(t, "asha@example.com", body["email"])
		assert.Equal(t, "secret", body["password"])

		w.Write([]byte(`{"access":"tok-123","user":{"id":1,"name":"Asha","email":"asha@example.com","role":"customer"}}`))
	})
	defer server.Close()

	result, err := client.Login(context.Background(), "asha@example.com", "secret")
	assert.NoError(t, err)
	assert.Equal(t, "tok-123", result.Token)
	assert.Equal(t, "Asha", result.User.Name)
	assert.Equal(t, models.RoleCustomer, result.User.Role)
}

func TestLogin_Rejected(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"detail":"Invalid credentials"}`))
	})
	defer server.Close()

	_, err := client.Login(context.Background(), "asha@example.com", "wrong")

	var respErr *api.ResponseError
	assert.ErrorAs(t, err, &respErr)
	assert.True(t, respErr.IsUnauthorized())
	assert.Equal(t, "Invalid credentials", respErr.Field("detail"))
}

func TestRegister_DefaultsRoleAndSendsConfirmation(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/register/", r.URL.Path)

		var body map[string]string
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("failed to decode request body: %v", err)
		}
		assert.Equal(t, "customer", body["role"])
		assert.Equal(t, "secret", body["password2"])

		w.WriteHeader(http.StatusCreated)
	})
	defer server.Close()

	err := client.Register(context.Background(), api.RegisterRequest{
		Name:      "Asha",
		Email:     "asha@example.com",
		Password:  "secret",
		Password2: "secret",
	})
	assert.NoError(t, err)
}

func TestBearerToken(t *testing.T) {
	var gotAuth string
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"id":1,"items":[]}`))
	})
	defer server.Close()

	client.SetToken("tok-123")
	_, err := client.FetchCart(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, "Bearer tok-123", gotAuth)

	client.ClearToken()
	_, err = client.FetchCart(context.Background())
	assert.NoError(t, err)
	assert.Empty(t, gotAuth)
}

func TestFetchCart_NormalizesLines(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/cart/", r.URL.Path)
		w.Write([]byte(`{
			"id": 7,
			"items": [
				{
					"id": 1,
					"menu_item": 12,
					"price_snapshot": "399.00",
					"quantity": 2,
					"menu_item_details": {
						"id": 12,
						"name": "Margherita Pizza",
						"restaurant": 3,
						"restaurant_name": "Pizza Palace",
						"price": "399.00"
					}
				},
				{
					"id": 2,
					"menu_item": 15,
					"price_snapshot": 99.5,
					"quantity": 1,
					"menu_item_details": null
				}
			]
		}`))
	})
	defer server.Close()

	lines, err := client.FetchCart(context.Background())
	assert.NoError(t, err)
	assert.Len(t, lines, 2)

	assert.Equal(t, "Margherita Pizza", lines[0].Name)
	assert.Equal(t, 12, lines[0].MenuItemId)
	assert.Equal(t, "Pizza Palace", lines[0].RestaurantName)
	assert.InDelta(t, 399.00, lines[0].Price, 0.001)

	// missing details fall back to a placeholder name
	assert.Equal(t, "Unnamed Item", lines[1].Name)
	assert.Equal(t, 15, lines[1].MenuItemId)
	assert.InDelta(t, 99.5, lines[1].Price, 0.001)
}

func TestRestaurants_PaginatedEnvelope(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"count": 1,
			"next": null,
			"previous": null,
			"results": [
				{"id": 3, "name": "Pizza Palace", "address": "12 MG Road", "rating": "4.5", "is_active": true}
			]
		}`))
	})
	defer server.Close()

	restaurants, err := client.Restaurants(context.Background())
	assert.NoError(t, err)
	assert.Len(t, restaurants, 1)
	assert.Equal(t, "Pizza Palace", restaurants[0].Name)
	assert.InDelta(t, 4.5, restaurants[0].Rating, 0.001)
}

func TestRestaurants_BareArray(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[
			{"id": 3, "name": "Pizza Palace", "address": "12 MG Road", "rating": 4.5, "is_active": true},
			{"id": 4, "name": "Biryani House", "address": "5 Park St", "rating": 4.2, "is_active": false}
		]`))
	})
	defer server.Close()

	restaurants, err := client.Restaurants(context.Background())
	assert.NoError(t, err)
	assert.Len(t, restaurants, 2)
	assert.False(t, restaurants[1].IsActive)
}

func TestAddToCart_SendsPayload(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/cart/add/", r.URL.Path)

		var body map[string]int
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("failed to decode request body: %v", err)
		}
		assert.Equal(t, 12, body["menu_item_id"])
		assert.Equal(t, 2, body["quantity"])

		w.WriteHeader(http.StatusCreated)
	})
	defer server.Close()

	err := client.AddToCart(context.Background(), 12, 2)
	assert.NoError(t, err)
}

func TestUpdateOrderStatus(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/orders/9/status/", r.URL.Path)

		var body map[string]string
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("failed to decode request body: %v", err)
		}
		assert.Equal(t, "cooking", body["status"])

		w.Write([]byte(`{"id": 9, "status": "cooking", "total_amount": "877.90", "created_at": "2026-08-30T12:30:00Z"}`))
	})
	defer server.Close()

	order, err := client.UpdateOrderStatus(context.Background(), 9, "cooking")
	assert.NoError(t, err)
	assert.Equal(t, "cooking", order.Status)
	assert.InDelta(t, 877.90, order.TotalAmount, 0.001)
	assert.Equal(t, 2026, order.CreatedAt.Year())
}

func TestErrorBody_ArrayValues(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"password": ["Passwords do not match", "This password is too short"]}`))
	})
	defer server.Close()

	err := client.Register(context.Background(), api.RegisterRequest{Name: "Asha"})

	var respErr *api.ResponseError
	assert.ErrorAs(t, err, &respErr)
	assert.Equal(t, "Passwords do not match", respErr.Field("password"))
}
