package browsehandler

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"text/tabwriter"

	"mealdash/internal/models"
	catalogservice "mealdash/internal/service/catalog"
	"mealdash/pkg/lib/logger/sl"
)

type CatalogService interface {
	Restaurants(ctx context.Context, search string) ([]models.Restaurant, error)
	RestaurantDetails(ctx context.Context, id int) (models.Restaurant, []models.MenuItem, error)
	CategoryMenu(ctx context.Context, categoryId int) ([]models.MenuItem, error)
	MenuCategories(ctx context.Context) ([]models.Category, error)
}

// Handler renders the customer-facing catalog pages. Fetch failures
// follow the silent-read policy: logged, then an empty state.
type Handler struct {
	log     *slog.Logger
	catalog CatalogService
	out     io.Writer
}

func New(log *slog.Logger, catalog CatalogService, out io.Writer) *Handler {
	return &Handler{
		log:     log,
		catalog: catalog,
		out:     out,
	}
}

func (h *Handler) Home(ctx context.Context) {
	const op = "handlers.browse.Home"
	log := h.log.With("op", op)

	restaurants, err := h.catalog.Restaurants(ctx, "")
	if err != nil {
		log.Error("Error fetching restaurants", sl.Err(err))
	}
	categories, err := h.catalog.MenuCategories(ctx)
	if err != nil {
		log.Error("Error fetching categories", sl.Err(err))
	}

	if len(categories) > 0 {
		fmt.Fprintln(h.out, "Categories:")
		for _, c := range categories {
			fmt.Fprintf(h.out, "  [%d] %s\n", c.Id, c.Name)
		}
		fmt.Fprintln(h.out)
	}

	if len(restaurants) == 0 {
		fmt.Fprintln(h.out, "No restaurants found")
		return
	}

	fmt.Fprintln(h.out, "Restaurants:")
	h.printRestaurants(restaurants)
}

func (h *Handler) Restaurants(ctx context.Context, search string) {
	const op = "handlers.browse.Restaurants"
	log := h.log.With("op", op)

	restaurants, err := h.catalog.Restaurants(ctx, search)
	if err != nil {
		log.Error("Error fetching restaurants", sl.Err(err))
	}

	if len(restaurants) == 0 {
		fmt.Fprintln(h.out, "No restaurants found")
		return
	}

	h.printRestaurants(restaurants)
}

func (h *Handler) RestaurantDetails(ctx context.Context, id int, category string) {
	const op = "handlers.browse.RestaurantDetails"
	log := h.log.With("op", op)

	restaurant, menu, err := h.catalog.RestaurantDetails(ctx, id)
	if err != nil {
		log.Error("Error fetching restaurant details", sl.Err(err))
		fmt.Fprintln(h.out, "Restaurant not found")
		return
	}

	fmt.Fprintf(h.out, "%s — %s (rating %s)\n",
		restaurant.Name, restaurant.Address, catalogservice.FormatRating(restaurant.Rating))
	if !restaurant.IsActive {
		fmt.Fprintln(h.out, "Currently closed")
	}

	fmt.Fprintf(h.out, "Categories: %v\n\n", catalogservice.CategoryNames(menu))

	items := catalogservice.FilterByCategory(menu, category)
	if len(items) == 0 {
		fmt.Fprintln(h.out, "No items in this category")
		return
	}

	w := tabwriter.NewWriter(h.out, 0, 0, 2, ' ', 0)
	for _, item := range items {
		availability := ""
		if !item.IsAvailable {
			availability = "(unavailable)"
		}
		fmt.Fprintf(w, "[%d]\t%s\t₹%.2f\t%s\t%s\n",
			item.Id, item.Name, item.Price, item.CategoryName, availability)
	}
	w.Flush()
}

func (h *Handler) Category(ctx context.Context, categoryId int) {
	const op = "handlers.browse.Category"
	log := h.log.With("op", op)

	items, err := h.catalog.CategoryMenu(ctx, categoryId)
	if err != nil {
		log.Error("Error fetching category menu", sl.Err(err))
	}

	if len(items) == 0 {
		fmt.Fprintln(h.out, "No items found")
		return
	}

	w := tabwriter.NewWriter(h.out, 0, 0, 2, ' ', 0)
	for _, item := range items {
		fmt.Fprintf(w, "[%d]\t%s\t₹%.2f\t%s\n", item.Id, item.Name, item.Price, item.RestaurantName)
	}
	w.Flush()
}

func (h *Handler) printRestaurants(restaurants []models.Restaurant) {
	w := tabwriter.NewWriter(h.out, 0, 0, 2, ' ', 0)
	for _, r := range restaurants {
		status := ""
		if !r.IsActive {
			status = "(closed)"
		}
		fmt.Fprintf(w, "[%d]\t%s\t%s\t★ %s\t%s\n",
			r.Id, r.Name, r.Address, catalogservice.FormatRating(r.Rating), status)
	}
	w.Flush()
}
