package mocks

import (
	"context"

	"mealdash/internal/api"
	"mealdash/internal/models"

	"github.com/stretchr/testify/mock"
)

type OrdersAPI struct {
	mock.Mock
}

func (m *OrdersAPI) CreateOrder(ctx context.Context, payload api.OrderPayload) (models.Order, error) {
	args := m.Called(ctx, payload)
	return args.Get(0).(models.Order), args.Error(1)
}

func (m *OrdersAPI) Orders(ctx context.Context) ([]models.Order, error) {
	args := m.Called(ctx)
	var orders []models.Order
	if v := args.Get(0); v != nil {
		orders = v.([]models.Order)
	}
	return orders, args.Error(1)
}

func (m *OrdersAPI) AdminOrders(ctx context.Context) ([]models.Order, error) {
	args := m.Called(ctx)
	var orders []models.Order
	if v := args.Get(0); v != nil {
		orders = v.([]models.Order)
	}
	return orders, args.Error(1)
}

func (m *OrdersAPI) UpdateOrderStatus(ctx context.Context, id int, status string) (models.Order, error) {
	args := m.Called(ctx, id, status)
	return args.Get(0).(models.Order), args.Error(1)
}
