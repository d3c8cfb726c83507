package api

import (
	"context"
	"fmt"
	"time"

	"mealdash/internal/models"
)

type orderItemDTO struct {
	Id       int     `json:"id"`
	Quantity int     `json:"quantity"`
	Price    decimal `json:"price"`
	Subtotal decimal `json:"subtotal"`
	Details  *struct {
		Name string `json:"name"`
	} `json:"menu_item_details"`
}

type orderDTO struct {
	Id             int            `json:"id"`
	UserName       string         `json:"user_name"`
	RestaurantName string         `json:"restaurant_name"`
	TotalAmount    decimal        `json:"total_amount"`
	PaymentMethod  string         `json:"payment_method"`
	Status         string         `json:"status"`
	CreatedAt      string         `json:"created_at"`
	Items          []orderItemDTO `json:"items"`
}

func (o orderDTO) toModel() models.Order {
	order := models.Order{
		Id:             o.Id,
		UserName:       o.UserName,
		RestaurantName: o.RestaurantName,
		TotalAmount:    float64(o.TotalAmount),
		PaymentMethod:  o.PaymentMethod,
		Status:         o.Status,
	}

	if t, err := time.Parse(time.RFC3339Nano, o.CreatedAt); err == nil {
		order.CreatedAt = t
	}

	order.Items = make([]models.OrderItem, 0, len(o.Items))
	for _, it := range o.Items {
		item := models.OrderItem{
			Id:       it.Id,
			Quantity: it.Quantity,
			Price:    float64(it.Price),
			Subtotal: float64(it.Subtotal),
		}
		if it.Details != nil {
			item.Name = it.Details.Name
		}
		order.Items = append(order.Items, item)
	}

	return order
}

type OrderPayload struct {
	PaymentMethod   string `json:"payment_method"`
	DeliveryAddress string `json:"delivery_address"`
	Notes           string `json:"notes"`
}

func (c *Client) CreateOrder(ctx context.Context, payload OrderPayload) (models.Order, error) {
	const op = "api.Client.CreateOrder"

	var o orderDTO
	if err := c.post(ctx, "/orders/create_order/", payload, &o); err != nil {
		return models.Order{}, fmt.Errorf("%s: %w", op, err)
	}

	return o.toModel(), nil
}

func (c *Client) Orders(ctx context.Context) ([]models.Order, error) {
	const op = "api.Client.Orders"

	var list []orderDTO
	if err := c.getList(ctx, "/orders/", &list); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	orders := make([]models.Order, 0, len(list))
	for _, o := range list {
		orders = append(orders, o.toModel())
	}
	return orders, nil
}

func (c *Client) AdminOrders(ctx context.Context) ([]models.Order, error) {
	const op = "api.Client.AdminOrders"

	var list []orderDTO
	if err := c.getList(ctx, "/admin/orders/", &list); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	orders := make([]models.Order, 0, len(list))
	for _, o := range list {
		orders = append(orders, o.toModel())
	}
	return orders, nil
}

func (c *Client) UpdateOrderStatus(ctx context.Context, id int, status string) (models.Order, error) {
	const op = "api.Client.UpdateOrderStatus"

	body := map[string]string{"status": status}

	var o orderDTO
	if err := c.post(ctx, fmt.Sprintf("/orders/%d/status/", id), body, &o); err != nil {
		return models.Order{}, fmt.Errorf("%s: %w", op, err)
	}

	return o.toModel(), nil
}
