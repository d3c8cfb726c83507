package mocks

import (
	"context"

	"mealdash/internal/api"
	"mealdash/internal/models"

	"github.com/stretchr/testify/mock"
)

type CatalogAdminAPI struct {
	mock.Mock
}

func (m *CatalogAdminAPI) CreateRestaurant(ctx context.Context, payload api.RestaurantPayload) (models.Restaurant, error) {
	args := m.Called(ctx, payload)
	return args.Get(0).(models.Restaurant), args.Error(1)
}

func (m *CatalogAdminAPI) UpdateRestaurant(ctx context.Context, id int, payload api.RestaurantPayload) (models.Restaurant, error) {
	args := m.Called(ctx, id, payload)
	return args.Get(0).(models.Restaurant), args.Error(1)
}

func (m *CatalogAdminAPI) DeleteRestaurant(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *CatalogAdminAPI) CreateMenuItem(ctx context.Context, payload api.MenuItemPayload) (models.MenuItem, error) {
	args := m.Called(ctx, payload)
	return args.Get(0).(models.MenuItem), args.Error(1)
}

func (m *CatalogAdminAPI) UpdateMenuItem(ctx context.Context, id int, payload api.MenuItemPayload) (models.MenuItem, error) {
	args := m.Called(ctx, id, payload)
	return args.Get(0).(models.MenuItem), args.Error(1)
}

func (m *CatalogAdminAPI) DeleteMenuItem(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
