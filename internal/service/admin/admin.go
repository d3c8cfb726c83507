package adminservice

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/go-playground/validator/v10"

	"mealdash/internal/api"
	"mealdash/internal/models"
	"mealdash/pkg/lib/logger/sl"
)

type CatalogAdminAPI interface {
	CreateRestaurant(ctx context.Context, payload api.RestaurantPayload) (models.Restaurant, error)
	UpdateRestaurant(ctx context.Context, id int, payload api.RestaurantPayload) (models.Restaurant, error)
	DeleteRestaurant(ctx context.Context, id int) error
	CreateMenuItem(ctx context.Context, payload api.MenuItemPayload) (models.MenuItem, error)
	UpdateMenuItem(ctx context.Context, id int, payload api.MenuItemPayload) (models.MenuItem, error)
	DeleteMenuItem(ctx context.Context, id int) error
}

type RestaurantForm struct {
	Name    string  `validate:"required"`
	Address string  `validate:"required"`
	Rating  float64 `validate:"gte=0,lte=5"`
}

type MenuItemForm struct {
	Name         string  `validate:"required"`
	Price        float64 `validate:"gt=0"`
	Description  string
	RestaurantId int `validate:"required"`
	CategoryId   int `validate:"required"`
}

// Service backs the admin panel: restaurant and menu CRUD over the
// remote API. Forms are checked locally before the network call.
type Service struct {
	log      *slog.Logger
	api      CatalogAdminAPI
	validate *validator.Validate
}

func New(log *slog.Logger, adminAPI CatalogAdminAPI) *Service {
	return &Service{
		log:      log,
		api:      adminAPI,
		validate: validator.New(),
	}
}

func (s *Service) CreateRestaurant(ctx context.Context, form RestaurantForm) (models.Restaurant, error) {
	const op = "service.admin.CreateRestaurant"
	log := s.log.With("op", op)

	if err := s.validate.Struct(form); err != nil {
		log.Warn("Invalid restaurant form", sl.Err(err))
		return models.Restaurant{}, fmt.Errorf("%s: %w", op, err)
	}

	restaurant, err := s.api.CreateRestaurant(ctx, api.RestaurantPayload{
		Name:    form.Name,
		Address: form.Address,
		Rating:  form.Rating,
	})
	if err != nil {
		log.Error("Failed to create restaurant", sl.Err(err))
		return models.Restaurant{}, fmt.Errorf("%s: %w", op, err)
	}
	return restaurant, nil
}

func (s *Service) UpdateRestaurant(ctx context.Context, id int, form RestaurantForm) (models.Restaurant, error) {
	const op = "service.admin.UpdateRestaurant"
	log := s.log.With("op", op)

	if err := s.validate.Struct(form); err != nil {
		log.Warn("Invalid restaurant form", sl.Err(err))
		return models.Restaurant{}, fmt.Errorf("%s: %w", op, err)
	}

	restaurant, err := s.api.UpdateRestaurant(ctx, id, api.RestaurantPayload{
		Name:    form.Name,
		Address: form.Address,
		Rating:  form.Rating,
	})
	if err != nil {
		log.Error("Failed to update restaurant", sl.Err(err))
		return models.Restaurant{}, fmt.Errorf("%s: %w", op, err)
	}
	return restaurant, nil
}

func (s *Service) DeleteRestaurant(ctx context.Context, id int) error {
	const op = "service.admin.DeleteRestaurant"
	log := s.log.With("op", op)

	if err := s.api.DeleteRestaurant(ctx, id); err != nil {
		log.Error("Failed to delete restaurant", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (s *Service) CreateMenuItem(ctx context.Context, form MenuItemForm) (models.MenuItem, error) {
	const op = "service.admin.CreateMenuItem"
	log := s.log.With("op", op)

	if err := s.validate.Struct(form); err != nil {
		log.Warn("Invalid menu item form", sl.Err(err))
		return models.MenuItem{}, fmt.Errorf("%s: %w", op, err)
	}

	item, err := s.api.CreateMenuItem(ctx, api.MenuItemPayload{
		Name:         form.Name,
		Price:        form.Price,
		Description:  form.Description,
		RestaurantId: form.RestaurantId,
		CategoryId:   form.CategoryId,
	})
	if err != nil {
		log.Error("Failed to create menu item", sl.Err(err))
		return models.MenuItem{}, fmt.Errorf("%s: %w", op, err)
	}
	return item, nil
}

func (s *Service) UpdateMenuItem(ctx context.Context, id int, form MenuItemForm) (models.MenuItem, error) {
	const op = "service.admin.UpdateMenuItem"
	log := s.log.With("op", op)

	if err := s.validate.Struct(form); err != nil {
		log.Warn("Invalid menu item form", sl.Err(err))
		return models.MenuItem{}, fmt.Errorf("%s: %w", op, err)
	}

	item, err := s.api.UpdateMenuItem(ctx, id, api.MenuItemPayload{
		Name:         form.Name,
		Price:        form.Price,
		Description:  form.Description,
		RestaurantId: form.RestaurantId,
		CategoryId:   form.CategoryId,
	})
	if err != nil {
		log.Error("Failed to update menu item", sl.Err(err))
		return models.MenuItem{}, fmt.Errorf("%s: %w", op, err)
	}
	return item, nil
}

func (s *Service) DeleteMenuItem(ctx context.Context, id int) error {
	const op = "service.admin.DeleteMenuItem"
	log := s.log.With("op", op)

	if err := s.api.DeleteMenuItem(ctx, id); err != nil {
		log.Error("Failed to delete menu item", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
