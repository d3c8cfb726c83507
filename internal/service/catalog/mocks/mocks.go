package mocks

import (
	"context"

	"mealdash/internal/models"

	"github.com/stretchr/testify/mock"
)

type CatalogAPI struct {
	mock.Mock
}

func (m *CatalogAPI) Restaurants(ctx context.Context) ([]models.Restaurant, error) {
	args := m.Called(ctx)
	var restaurants []models.Restaurant
	if v := args.Get(0); v != nil {
		restaurants = v.([]models.Restaurant)
	}
	return restaurants, args.Error(1)
}

func (m *CatalogAPI) Restaurant(ctx context.Context, id int) (models.Restaurant, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.Restaurant), args.Error(1)
}

func (m *CatalogAPI) RestaurantMenu(ctx context.Context, id int) ([]models.MenuItem, error) {
	args := m.Called(ctx, id)
	var items []models.MenuItem
	if v := args.Get(0); v != nil {
		items = v.([]models.MenuItem)
	}
	return items, args.Error(1)
}

func (m *CatalogAPI) MenuItems(ctx context.Context) ([]models.MenuItem, error) {
	args := m.Called(ctx)
	var items []models.MenuItem
	if v := args.Get(0); v != nil {
		items = v.([]models.MenuItem)
	}
	return items, args.Error(1)
}

func (m *CatalogAPI) MenuItemsByCategory(ctx context.Context, categoryId int) ([]models.MenuItem, error) {
	args := m.Called(ctx, categoryId)
	var items []models.MenuItem
	if v := args.Get(0); v != nil {
		items = v.([]models.MenuItem)
	}
	return items, args.Error(1)
}

func (m *CatalogAPI) MenuCategories(ctx context.Context) ([]models.Category, error) {
	args := m.Called(ctx)
	var categories []models.Category
	if v := args.Get(0); v != nil {
		categories = v.([]models.Category)
	}
	return categories, args.Error(1)
}

func (m *CatalogAPI) Categories(ctx context.Context) ([]models.Category, error) {
	args := m.Called(ctx)
	var categories []models.Category
	if v := args.Get(0); v != nil {
		categories = v.([]models.Category)
	}
	return categories, args.Error(1)
}
