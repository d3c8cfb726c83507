package orderservice

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/go-playground/validator/v10"

	"mealdash/internal/api"
	"mealdash/internal/models"
	"mealdash/pkg/lib/logger/sl"
)

const (
	DeliveryFee = 40.00
	TaxRate     = 0.05
)

type OrdersAPI interface {
	CreateOrder(ctx context.Context, payload api.OrderPayload) (models.Order, error)
	Orders(ctx context.Context) ([]models.Order, error)
	AdminOrders(ctx context.Context) ([]models.Order, error)
	UpdateOrderStatus(ctx context.Context, id int, status string) (models.Order, error)
}

// Bill is the checkout breakdown over the current cart total.
type Bill struct {
	ItemTotal   float64
	DeliveryFee float64
	TaxAmount   float64
	Total       float64
}

// Quote computes the bill: fixed delivery fee plus 5% tax, both
// quantized to 2 decimals like the server does.
func Quote(itemTotal float64) Bill {
	tax := models.RoundMoney(itemTotal * TaxRate)
	return Bill{
		ItemTotal:   itemTotal,
		DeliveryFee: DeliveryFee,
		TaxAmount:   tax,
		Total:       models.RoundMoney(itemTotal + DeliveryFee + tax),
	}
}

type PlaceOrderForm struct {
	PaymentMethod   string `validate:"required,oneof=cod online"`
	DeliveryAddress string `validate:"required"`
	Notes           string
}

type Service struct {
	log      *slog.Logger
	api      OrdersAPI
	validate *validator.Validate
}

func New(log *slog.Logger, ordersAPI OrdersAPI) *Service {
	return &Service{
		log:      log,
		api:      ordersAPI,
		validate: validator.New(),
	}
}

// Place submits the order. Clearing the local cart afterwards is the
// caller's job, mirroring the checkout flow.
func (s *Service) Place(ctx context.Context, form PlaceOrderForm) (models.Order, error) {
	const op = "service.order.Place"
	log := s.log.With("op", op)

	if err := s.validate.Struct(form); err != nil {
		log.Warn("Invalid order form", sl.Err(err))
		return models.Order{}, fmt.Errorf("%s: %w", op, err)
	}

	order, err := s.api.CreateOrder(ctx, api.OrderPayload{
		PaymentMethod:   form.PaymentMethod,
		DeliveryAddress: form.DeliveryAddress,
		Notes:           form.Notes,
	})
	if err != nil {
		log.Error("Failed to place order", sl.Err(err))
		return models.Order{}, fmt.Errorf("%s: %w", op, err)
	}

	return order, nil
}

func (s *Service) History(ctx context.Context) ([]models.Order, error) {
	const op = "service.order.History"
	log := s.log.With("op", op)

	orders, err := s.api.Orders(ctx)
	if err != nil {
		log.Error("Failed to fetch orders", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return orders, nil
}

func (s *Service) AdminList(ctx context.Context) ([]models.Order, error) {
	const op = "service.order.AdminList"
	log := s.log.With("op", op)

	orders, err := s.api.AdminOrders(ctx)
	if err != nil {
		log.Error("Failed to fetch admin orders", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return orders, nil
}

func (s *Service) UpdateStatus(ctx context.Context, id int, status string) (models.Order, error) {
	const op = "service.order.UpdateStatus"
	log := s.log.With("op", op)

	if !models.ValidStatus(status) {
		return models.Order{}, fmt.Errorf("%s: invalid status %q", op, status)
	}

	order, err := s.api.UpdateOrderStatus(ctx, id, status)
	if err != nil {
		log.Error("Failed to update order status", sl.Err(err))
		return models.Order{}, fmt.Errorf("%s: %w", op, err)
	}
	return order, nil
}
