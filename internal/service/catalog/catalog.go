package catalogservice

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"mealdash/internal/models"
	"mealdash/pkg/lib/logger/sl"
)

type CatalogAPI interface {
	Restaurants(ctx context.Context) ([]models.Restaurant, error)
	Restaurant(ctx context.Context, id int) (models.Restaurant, error)
	RestaurantMenu(ctx context.Context, id int) ([]models.MenuItem, error)
	MenuItems(ctx context.Context) ([]models.MenuItem, error)
	MenuItemsByCategory(ctx context.Context, categoryId int) ([]models.MenuItem, error)
	MenuCategories(ctx context.Context) ([]models.Category, error)
	Categories(ctx context.Context) ([]models.Category, error)
}

// Service exposes read-only projections of the catalog. No catalog data
// is ever mutated locally; everything here is fetch, filter, format.
type Service struct {
	log *slog.Logger
	api CatalogAPI
}

func New(log *slog.Logger, catalogAPI CatalogAPI) *Service {
	return &Service{
		log: log,
		api: catalogAPI,
	}
}

// Restaurants lists restaurants, optionally filtered by a
// case-insensitive match on name or address.
func (s *Service) Restaurants(ctx context.Context, search string) ([]models.Restaurant, error) {
	const op = "service.catalog.Restaurants"
	log := s.log.With("op", op)

	restaurants, err := s.api.Restaurants(ctx)
	if err != nil {
		log.Error("Failed to fetch restaurants", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if search == "" {
		return restaurants, nil
	}

	term := strings.ToLower(search)
	filtered := make([]models.Restaurant, 0, len(restaurants))
	for _, r := range restaurants {
		if strings.Contains(strings.ToLower(r.Name), term) ||
			strings.Contains(strings.ToLower(r.Address), term) {
			filtered = append(filtered, r)
		}
	}
	return filtered, nil
}

// RestaurantDetails fetches a restaurant and its menu.
func (s *Service) RestaurantDetails(ctx context.Context, id int) (models.Restaurant, []models.MenuItem, error) {
	const op = "service.catalog.RestaurantDetails"
	log := s.log.With("op", op)

	restaurant, err := s.api.Restaurant(ctx, id)
	if err != nil {
		log.Error("Failed to fetch restaurant", sl.Err(err))
		return models.Restaurant{}, nil, fmt.Errorf("%s: %w", op, err)
	}
	restaurant.Image = RestaurantImage(restaurant)

	menu, err := s.api.RestaurantMenu(ctx, id)
	if err != nil {
		log.Error("Failed to fetch menu", sl.Err(err))
		return models.Restaurant{}, nil, fmt.Errorf("%s: %w", op, err)
	}

	return restaurant, menu, nil
}

func (s *Service) MenuItems(ctx context.Context) ([]models.MenuItem, error) {
	const op = "service.catalog.MenuItems"
	log := s.log.With("op", op)

	items, err := s.api.MenuItems(ctx)
	if err != nil {
		log.Error("Failed to fetch menu items", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return items, nil
}

// CategoryMenu lists the menu items of one category across restaurants.
func (s *Service) CategoryMenu(ctx context.Context, categoryId int) ([]models.MenuItem, error) {
	const op = "service.catalog.CategoryMenu"
	log := s.log.With("op", op)

	items, err := s.api.MenuItemsByCategory(ctx, categoryId)
	if err != nil {
		log.Error("Failed to fetch category menu", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return items, nil
}

// MenuCategories backs the storefront home page category strip.
func (s *Service) MenuCategories(ctx context.Context) ([]models.Category, error) {
	const op = "service.catalog.MenuCategories"
	log := s.log.With("op", op)

	categories, err := s.api.MenuCategories(ctx)
	if err != nil {
		log.Error("Failed to fetch menu categories", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return categories, nil
}

func (s *Service) Categories(ctx context.Context) ([]models.Category, error) {
	const op = "service.catalog.Categories"
	log := s.log.With("op", op)

	categories, err := s.api.Categories(ctx)
	if err != nil {
		log.Error("Failed to fetch categories", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return categories, nil
}

// CategoryNames returns "all" plus the distinct category names of the
// items, preserving first-seen order.
func CategoryNames(items []models.MenuItem) []string {
	names := []string{"all"}
	seen := make(map[string]bool)
	for _, item := range items {
		if item.CategoryName == "" || seen[item.CategoryName] {
			continue
		}
		seen[item.CategoryName] = true
		names = append(names, item.CategoryName)
	}
	return names
}

// FilterByCategory keeps the items of one category; "all" (or empty)
// passes everything through.
func FilterByCategory(items []models.MenuItem, category string) []models.MenuItem {
	if category == "" || category == "all" {
		return items
	}
	filtered := make([]models.MenuItem, 0, len(items))
	for _, item := range items {
		if item.CategoryName == category {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

// RestaurantImage falls back to the bundled asset path when the server
// has no image for the restaurant.
func RestaurantImage(r models.Restaurant) string {
	if r.Image != "" {
		return r.Image
	}
	return "/assets/restaurants/" + r.Name + ".png"
}

func FormatRating(rating float64) string {
	return fmt.Sprintf("%.1f", rating)
}
