package carthandler

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"text/tabwriter"

	"mealdash/internal/models"
	orderservice "mealdash/internal/service/order"
	"mealdash/pkg/lib/notice"
)

type CartStore interface {
	FetchCart(ctx context.Context)
	AddToCart(ctx context.Context, menuItemId, quantity int)
	UpdateQuantity(ctx context.Context, cartItemId, quantity int)
	RemoveFromCart(ctx context.Context, cartItemId int)
	Lines() []models.CartLine
	TotalAmount() float64
	ItemCount() int
}

// Handler renders the cart page and drives cart mutations. The page
// caps quantities at 1-10; the store itself does not validate.
type Handler struct {
	log     *slog.Logger
	cart    CartStore
	notices notice.Notifier
	out     io.Writer
}

func New(log *slog.Logger, cart CartStore, notices notice.Notifier, out io.Writer) *Handler {
	return &Handler{
		log:     log,
		cart:    cart,
		notices: notices,
		out:     out,
	}
}

func (h *Handler) Show(ctx context.Context) {
	h.cart.FetchCart(ctx)

	lines := h.cart.Lines()
	if len(lines) == 0 {
		fmt.Fprintln(h.out, "Your cart is empty")
		fmt.Fprintln(h.out, "Add some delicious items to get started!")
		return
	}

	fmt.Fprintf(h.out, "Your Cart (%d items)\n\n", h.cart.ItemCount())

	w := tabwriter.NewWriter(h.out, 0, 0, 2, ' ', 0)
	for _, line := range lines {
		fmt.Fprintf(w, "[%d]\t%s\t%s\t₹%.2f x %d\t₹%.2f\n",
			line.Id, line.Name, line.RestaurantName, line.Price, line.Quantity, line.Subtotal())
	}
	w.Flush()

	bill := orderservice.Quote(h.cart.TotalAmount())
	fmt.Fprintf(h.out, "\nItem Total\t₹%.2f\n", bill.ItemTotal)
	fmt.Fprintf(h.out, "Delivery Fee\t₹%.2f\n", bill.DeliveryFee)
	fmt.Fprintf(h.out, "Taxes & Charges (5%%)\t₹%.2f\n", bill.TaxAmount)
	fmt.Fprintf(h.out, "Total\t₹%.2f\n", bill.Total)
}

func (h *Handler) Add(ctx context.Context, menuItemId, quantity int) {
	if quantity < 1 || quantity > 10 {
		h.notices.Error("Quantity must be between 1 and 10")
		return
	}
	h.cart.AddToCart(ctx, menuItemId, quantity)
}

func (h *Handler) Update(ctx context.Context, cartItemId, quantity int) {
	if quantity < 1 || quantity > 10 {
		h.notices.Error("Quantity must be between 1 and 10")
		return
	}
	h.cart.UpdateQuantity(ctx, cartItemId, quantity)
}

func (h *Handler) Remove(ctx context.Context, cartItemId int) {
	h.cart.RemoveFromCart(ctx, cartItemId)
}
