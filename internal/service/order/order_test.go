package orderservice_test

import (
	"mealdash/internal/api"
	"mealdash/internal/models"
	orderservice "mealdash/internal/service/order"
	"mealdash/internal/service/order/mocks"
	"mealdash/pkg/lib/logger/slogdiscard"

	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newTestService(ordersAPI *mocks.OrdersAPI) *orderservice.Service {
	return orderservice.New(slogdiscard.NewDiscardLogger(), ordersAPI)
}

func TestQuote(t *testing.T) {
	tests := []struct {
		name      string
		itemTotal float64
		wantTax   float64
		wantTotal float64
	}{
		{
			name:      "two pizzas",
			itemTotal: 798.00,
			wantTax:   39.90,
			wantTotal: 877.90,
		},
		{
			name:      "tax rounds to the paisa",
			itemTotal: 99.50,
			wantTax:   4.98,
			wantTotal: 144.48,
		},
		{
			name:      "zero total still carries the fee",
			itemTotal: 0,
			wantTax:   0,
			wantTotal: 40.00,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bill := orderservice.Quote(tt.itemTotal)
			assert.InDelta(t, tt.itemTotal, bill.ItemTotal, 0.001)
			assert.InDelta(t, orderservice.DeliveryFee, bill.DeliveryFee, 0.001)
			assert.InDelta(t, tt.wantTax, bill.TaxAmount, 0.001)
			assert.InDelta(t, tt.wantTotal, bill.Total, 0.001)
		})
	}
}

func TestPlace(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockAPI := new(mocks.OrdersAPI)
		mockAPI.On("CreateOrder", mock.Anything, api.OrderPayload{
			PaymentMethod:   models.PaymentCOD,
			DeliveryAddress: "Home",
		}).Return(models.Order{Id: 42, Status: models.StatusPlaced}, nil)

		svc := newTestService(mockAPI)

		order, err := svc.Place(context.Background(), orderservice.PlaceOrderForm{
			PaymentMethod:   models.PaymentCOD,
			DeliveryAddress: "Home",
		})
		assert.NoError(t, err)
		assert.Equal(t, 42, order.Id)
		assert.Equal(t, models.StatusPlaced, order.Status)
		mockAPI.AssertExpectations(t)
	})

	t.Run("Invalid payment method", func(t *testing.T) {
		mockAPI := new(mocks.OrdersAPI)
		svc := newTestService(mockAPI)

		_, err := svc.Place(context.Background(), orderservice.PlaceOrderForm{
			PaymentMethod:   "crypto",
			DeliveryAddress: "Home",
		})
		assert.Error(t, err)
		mockAPI.AssertNotCalled(t, "CreateOrder")
	})

	t.Run("Missing address", func(t *testing.T) {
		mockAPI := new(mocks.OrdersAPI)
		svc := newTestService(mockAPI)

		_, err := svc.Place(context.Background(), orderservice.PlaceOrderForm{
			PaymentMethod: models.PaymentOnline,
		})
		assert.Error(t, err)
		mockAPI.AssertNotCalled(t, "CreateOrder")
	})

	t.Run("API failure propagates", func(t *testing.T) {
		mockAPI := new(mocks.OrdersAPI)
		mockAPI.On("CreateOrder", mock.Anything, mock.Anything).
			Return(models.Order{}, errors.New("boom"))

		svc := newTestService(mockAPI)

		_, err := svc.Place(context.Background(), orderservice.PlaceOrderForm{
			PaymentMethod:   models.PaymentCOD,
			DeliveryAddress: "Home",
		})
		assert.Error(t, err)
	})
}

func TestUpdateStatus(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockAPI := new(mocks.OrdersAPI)
		mockAPI.On("UpdateOrderStatus", mock.Anything, 9, models.StatusCooking).
			Return(models.Order{Id: 9, Status: models.StatusCooking}, nil)

		svc := newTestService(mockAPI)

		order, err := svc.UpdateStatus(context.Background(), 9, models.StatusCooking)
		assert.NoError(t, err)
		assert.Equal(t, models.StatusCooking, order.Status)
		mockAPI.AssertExpectations(t)
	})

	t.Run("Unknown status is rejected locally", func(t *testing.T) {
		mockAPI := new(mocks.OrdersAPI)
		svc := newTestService(mockAPI)

		_, err := svc.UpdateStatus(context.Background(), 9, "teleported")
		assert.Error(t, err)
		mockAPI.AssertNotCalled(t, "UpdateOrderStatus")
	})
}

func TestHistory(t *testing.T) {
	mockAPI := new(mocks.OrdersAPI)
	mockAPI.On("Orders", mock.Anything).Return([]models.Order{
		{Id: 1, Status: models.StatusDelivered},
		{Id: 2, Status: models.StatusPlaced},
	}, nil)

	svc := newTestService(mockAPI)

	orders, err := svc.History(context.Background())
	assert.NoError(t, err)
	assert.Len(t, orders, 2)
	mockAPI.AssertExpectations(t)
}

func TestAdminList(t *testing.T) {
	mockAPI := new(mocks.OrdersAPI)
	mockAPI.On("AdminOrders", mock.Anything).Return(nil, errors.New("forbidden"))

	svc := newTestService(mockAPI)

	_, err := svc.AdminList(context.Background())
	assert.Error(t, err)
}
