package adminhandler

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"text/tabwriter"

	"mealdash/internal/api"
	"mealdash/internal/models"
	adminservice "mealdash/internal/service/admin"
	"mealdash/pkg/lib/logger/sl"
	"mealdash/pkg/lib/notice"
)

type OrderService interface {
	AdminList(ctx context.Context) ([]models.Order, error)
	UpdateStatus(ctx context.Context, id int, status string) (models.Order, error)
}

type AdminService interface {
	CreateRestaurant(ctx context.Context, form adminservice.RestaurantForm) (models.Restaurant, error)
	UpdateRestaurant(ctx context.Context, id int, form adminservice.RestaurantForm) (models.Restaurant, error)
	DeleteRestaurant(ctx context.Context, id int) error
	CreateMenuItem(ctx context.Context, form adminservice.MenuItemForm) (models.MenuItem, error)
	UpdateMenuItem(ctx context.Context, id int, form adminservice.MenuItemForm) (models.MenuItem, error)
	DeleteMenuItem(ctx context.Context, id int) error
}

type CatalogService interface {
	Restaurants(ctx context.Context, search string) ([]models.Restaurant, error)
	MenuItems(ctx context.Context) ([]models.MenuItem, error)
	Categories(ctx context.Context) ([]models.Category, error)
}

// Handler backs the admin panel views. Unlike the customer pages,
// fetch failures here surface as notices.
type Handler struct {
	log     *slog.Logger
	orders  OrderService
	admin   AdminService
	catalog CatalogService
	notices notice.Notifier
	out     io.Writer
}

func New(log *slog.Logger, orders OrderService, admin AdminService, catalog CatalogService, notices notice.Notifier, out io.Writer) *Handler {
	return &Handler{
		log:     log,
		orders:  orders,
		admin:   admin,
		catalog: catalog,
		notices: notices,
		out:     out,
	}
}

func (h *Handler) Orders(ctx context.Context) {
	const op = "handlers.admin.Orders"
	log := h.log.With("op", op)

	orders, err := h.orders.AdminList(ctx)
	if err != nil {
		log.Error("Failed to fetch orders", sl.Err(err))
		h.notices.Error("Failed to fetch orders")
		return
	}

	if len(orders) == 0 {
		fmt.Fprintln(h.out, "No orders")
		return
	}

	w := tabwriter.NewWriter(h.out, 0, 0, 2, ' ', 0)
	for _, order := range orders {
		fmt.Fprintf(w, "#%d\t%s\t%s\t%s\t₹%.2f\t%s\n",
			order.Id, order.UserName, order.RestaurantName,
			order.PaymentMethod, order.TotalAmount, order.Status)
	}
	w.Flush()
}

func (h *Handler) UpdateOrderStatus(ctx context.Context, id int, status string) {
	const op = "handlers.admin.UpdateOrderStatus"
	log := h.log.With("op", op)

	if _, err := h.orders.UpdateStatus(ctx, id, status); err != nil {
		log.Error("Failed to update order status", sl.Err(err))
		h.notices.Error("Failed to update order status")
		return
	}

	h.notices.Success("Order status updated successfully")
}

func (h *Handler) Restaurants(ctx context.Context) {
	const op = "handlers.admin.Restaurants"
	log := h.log.With("op", op)

	restaurants, err := h.catalog.Restaurants(ctx, "")
	if err != nil {
		log.Error("Failed to fetch restaurants", sl.Err(err))
		h.notices.Error("Failed to fetch restaurants")
		return
	}

	w := tabwriter.NewWriter(h.out, 0, 0, 2, ' ', 0)
	for _, r := range restaurants {
		fmt.Fprintf(w, "[%d]\t%s\t%s\t★ %.1f\n", r.Id, r.Name, r.Address, r.Rating)
	}
	w.Flush()
}

func (h *Handler) CreateRestaurant(ctx context.Context, form adminservice.RestaurantForm) {
	const op = "handlers.admin.CreateRestaurant"
	log := h.log.With("op", op)

	restaurant, err := h.admin.CreateRestaurant(ctx, form)
	if err != nil {
		log.Error("Failed to create restaurant", sl.Err(err))
		h.notices.Error(api.ServerMessage(err, "Operation failed", "message"))
		return
	}

	h.notices.Success("Restaurant created successfully")
	fmt.Fprintf(h.out, "[%d] %s\n", restaurant.Id, restaurant.Name)
}

func (h *Handler) UpdateRestaurant(ctx context.Context, id int, form adminservice.RestaurantForm) {
	const op = "handlers.admin.UpdateRestaurant"
	log := h.log.With("op", op)

	if _, err := h.admin.UpdateRestaurant(ctx, id, form); err != nil {
		log.Error("Failed to update restaurant", sl.Err(err))
		h.notices.Error(api.ServerMessage(err, "Operation failed", "message"))
		return
	}

	h.notices.Success("Restaurant updated successfully")
}

func (h *Handler) DeleteRestaurant(ctx context.Context, id int) {
	const op = "handlers.admin.DeleteRestaurant"
	log := h.log.With("op", op)

	if err := h.admin.DeleteRestaurant(ctx, id); err != nil {
		log.Error("Failed to delete restaurant", sl.Err(err))
		h.notices.Error("Failed to delete restaurant")
		return
	}

	h.notices.Success("Restaurant deleted successfully")
}

func (h *Handler) MenuItems(ctx context.Context) {
	const op = "handlers.admin.MenuItems"
	log := h.log.With("op", op)

	items, err := h.catalog.MenuItems(ctx)
	if err != nil {
		log.Error("Failed to fetch menu items", sl.Err(err))
		h.notices.Error("Failed to fetch menu items")
		return
	}

	w := tabwriter.NewWriter(h.out, 0, 0, 2, ' ', 0)
	for _, item := range items {
		fmt.Fprintf(w, "[%d]\t%s\t%s\t₹%.2f\t%s\n",
			item.Id, item.Name, item.RestaurantName, item.Price, item.CategoryName)
	}
	w.Flush()
}

func (h *Handler) CreateMenuItem(ctx context.Context, form adminservice.MenuItemForm) {
	const op = "handlers.admin.CreateMenuItem"
	log := h.log.With("op", op)

	item, err := h.admin.CreateMenuItem(ctx, form)
	if err != nil {
		log.Error("Failed to create menu item", sl.Err(err))
		h.notices.Error(api.ServerMessage(err, "Operation failed", "message"))
		return
	}

	h.notices.Success("Menu item created successfully")
	fmt.Fprintf(h.out, "[%d] %s\n", item.Id, item.Name)
}

func (h *Handler) UpdateMenuItem(ctx context.Context, id int, form adminservice.MenuItemForm) {
	const op = "handlers.admin.UpdateMenuItem"
	log := h.log.With("op", op)

	if _, err := h.admin.UpdateMenuItem(ctx, id, form); err != nil {
		log.Error("Failed to update menu item", sl.Err(err))
		h.notices.Error(api.ServerMessage(err, "Operation failed", "message"))
		return
	}

	h.notices.Success("Menu item updated successfully")
}

func (h *Handler) DeleteMenuItem(ctx context.Context, id int) {
	const op = "handlers.admin.DeleteMenuItem"
	log := h.log.With("op", op)

	if err := h.admin.DeleteMenuItem(ctx, id); err != nil {
		log.Error("Failed to delete menu item", sl.Err(err))
		h.notices.Error("Failed to delete menu item")
		return
	}

	h.notices.Success("Menu item deleted successfully")
}
