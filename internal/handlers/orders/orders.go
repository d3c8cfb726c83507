package orderhandler

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"mealdash/internal/api"
	"mealdash/internal/models"
	orderservice "mealdash/internal/service/order"
	"mealdash/pkg/lib/logger/sl"
	"mealdash/pkg/lib/notice"
)

type OrderService interface {
	Place(ctx context.Context, form orderservice.PlaceOrderForm) (models.Order, error)
	History(ctx context.Context) ([]models.Order, error)
}

type CartStore interface {
	FetchCart(ctx context.Context)
	Lines() []models.CartLine
	TotalAmount() float64
	Clear()
}

type Handler struct {
	log     *slog.Logger
	orders  OrderService
	cart    CartStore
	notices notice.Notifier
	out     io.Writer
}

func New(log *slog.Logger, orders OrderService, cart CartStore, notices notice.Notifier, out io.Writer) *Handler {
	return &Handler{
		log:     log,
		orders:  orders,
		cart:    cart,
		notices: notices,
		out:     out,
	}
}

// Checkout places an order over the current cart and clears the local
// line list on success. The server empties its cart as a side effect of
// order placement, so no clear command is sent.
func (h *Handler) Checkout(ctx context.Context, paymentMethod, deliveryAddress, notes string) {
	const op = "handlers.orders.Checkout"
	log := h.log.With("op", op)

	h.cart.FetchCart(ctx)
	if len(h.cart.Lines()) == 0 {
		fmt.Fprintln(h.out, "Your cart is empty")
		return
	}

	if deliveryAddress == "" {
		deliveryAddress = "Home"
	}

	bill := orderservice.Quote(h.cart.TotalAmount())
	fmt.Fprintf(h.out, "Item Total\t₹%.2f\n", bill.ItemTotal)
	fmt.Fprintf(h.out, "Delivery Fee\t₹%.2f\n", bill.DeliveryFee)
	fmt.Fprintf(h.out, "Taxes & Charges (5%%)\t₹%.2f\n", bill.TaxAmount)
	fmt.Fprintf(h.out, "Total Amount\t₹%.2f\n", bill.Total)

	order, err := h.orders.Place(ctx, orderservice.PlaceOrderForm{
		PaymentMethod:   paymentMethod,
		DeliveryAddress: deliveryAddress,
		Notes:           notes,
	})
	if err != nil {
		log.Error("Failed to place order", sl.Err(err))
		h.notices.Error(api.ServerMessage(err, "Failed to place order", "error", "message"))
		return
	}

	h.notices.Success("Order placed successfully!")
	h.cart.Clear()
	fmt.Fprintf(h.out, "Order #%d placed\n", order.Id)
}

func (h *Handler) History(ctx context.Context) {
	const op = "handlers.orders.History"
	log := h.log.With("op", op)

	orders, err := h.orders.History(ctx)
	if err != nil {
		log.Error("Error fetching orders", sl.Err(err))
	}

	if len(orders) == 0 {
		fmt.Fprintln(h.out, "No orders yet")
		fmt.Fprintln(h.out, "Start ordering your favourite food!")
		return
	}

	for _, order := range orders {
		fmt.Fprintf(h.out, "%s — Order #%d • %s • %s\n",
			order.RestaurantName, order.Id,
			order.CreatedAt.Format("02 Jan 2006"),
			models.StatusLabel(order.Status))
		for _, item := range order.Items {
			fmt.Fprintf(h.out, "  %s × %d\t₹%.2f\n", item.Name, item.Quantity, item.Subtotal)
		}
		fmt.Fprintf(h.out, "  Payment: %s • Total: ₹%.2f\n\n", order.PaymentMethod, order.TotalAmount)
	}
}
