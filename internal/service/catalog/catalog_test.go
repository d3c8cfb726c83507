package catalogservice_test

import (
	"mealdash/internal/models"
	catalogservice "mealdash/internal/service/catalog"
	"mealdash/internal/service/catalog/mocks"
	"mealdash/pkg/lib/logger/slogdiscard"

	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newTestService(catalogAPI *mocks.CatalogAPI) *catalogservice.Service {
	return catalogservice.New(slogdiscard.NewDiscardLogger(), catalogAPI)
}

func sampleRestaurants() []models.Restaurant {
	return []models.Restaurant{
		{Id: 3, Name: "Pizza Palace", Address: "12 MG Road", Rating: 4.5, IsActive: true},
		{Id: 4, Name: "Biryani House", Address: "5 Park Street", Rating: 4.2, IsActive: true},
		{Id: 5, Name: "Wok Express", Address: "Market Road", Rating: 3.9, IsActive: false},
	}
}

func sampleMenu() []models.MenuItem {
	return []models.MenuItem{
		{Id: 12, Name: "Margherita Pizza", CategoryName: "Pizza", Price: 399, IsAvailable: true},
		{Id: 13, Name: "Farmhouse Pizza", CategoryName: "Pizza", Price: 499, IsAvailable: true},
		{Id: 14, Name: "Garlic Bread", CategoryName: "Sides", Price: 99.5, IsAvailable: true},
		{Id: 15, Name: "Cold Coffee", CategoryName: "", Price: 120, IsAvailable: false},
	}
}

func TestRestaurants(t *testing.T) {
	t.Run("no search returns everything", func(t *testing.T) {
		mockAPI := new(mocks.CatalogAPI)
		mockAPI.On("Restaurants", mock.Anything).Return(sampleRestaurants(), nil)

		svc := newTestService(mockAPI)

		restaurants, err := svc.Restaurants(context.Background(), "")
		assert.NoError(t, err)
		assert.Len(t, restaurants, 3)
	})

	t.Run("search matches name case-insensitively", func(t *testing.T) {
		mockAPI := new(mocks.CatalogAPI)
		mockAPI.On("Restaurants", mock.Anything).Return(sampleRestaurants(), nil)

		svc := newTestService(mockAPI)

		restaurants, err := svc.Restaurants(context.Background(), "pizza")
		assert.NoError(t, err)
		assert.Len(t, restaurants, 1)
		assert.Equal(t, "Pizza Palace", restaurants[0].Name)
	})

	t.Run("search matches address", func(t *testing.T) {
		mockAPI := new(mocks.CatalogAPI)
		mockAPI.On("Restaurants", mock.Anything).Return(sampleRestaurants(), nil)

		svc := newTestService(mockAPI)

		restaurants, err := svc.Restaurants(context.Background(), "park")
		assert.NoError(t, err)
		assert.Len(t, restaurants, 1)
		assert.Equal(t, "Biryani House", restaurants[0].Name)
	})

	t.Run("fetch failure propagates", func(t *testing.T) {
		mockAPI := new(mocks.CatalogAPI)
		mockAPI.On("Restaurants", mock.Anything).Return(nil, errors.New("boom"))

		svc := newTestService(mockAPI)

		_, err := svc.Restaurants(context.Background(), "")
		assert.Error(t, err)
	})
}

func TestRestaurantDetails(t *testing.T) {
	t.Run("returns restaurant with menu", func(t *testing.T) {
		mockAPI := new(mocks.CatalogAPI)
		mockAPI.On("Restaurant", mock.Anything, 3).Return(sampleRestaurants()[0], nil)
		mockAPI.On("RestaurantMenu", mock.Anything, 3).Return(sampleMenu(), nil)

		svc := newTestService(mockAPI)

		restaurant, menu, err := svc.RestaurantDetails(context.Background(), 3)
		assert.NoError(t, err)
		assert.Equal(t, "Pizza Palace", restaurant.Name)
		assert.Len(t, menu, 4)
		mockAPI.AssertExpectations(t)
	})

	t.Run("missing image falls back to the bundled asset", func(t *testing.T) {
		mockAPI := new(mocks.CatalogAPI)
		mockAPI.On("Restaurant", mock.Anything, 3).Return(sampleRestaurants()[0], nil)
		mockAPI.On("RestaurantMenu", mock.Anything, 3).Return(sampleMenu(), nil)

		svc := newTestService(mockAPI)

		restaurant, _, err := svc.RestaurantDetails(context.Background(), 3)
		assert.NoError(t, err)
		assert.Equal(t, "/assets/restaurants/Pizza Palace.png", restaurant.Image)
	})

	t.Run("not found propagates", func(t *testing.T) {
		mockAPI := new(mocks.CatalogAPI)
		mockAPI.On("Restaurant", mock.Anything, 99).Return(models.Restaurant{}, errors.New("not found"))

		svc := newTestService(mockAPI)

		_, _, err := svc.RestaurantDetails(context.Background(), 99)
		assert.Error(t, err)
		mockAPI.AssertNotCalled(t, "RestaurantMenu")
	})
}

func TestCategoryNames(t *testing.T) {
	names := catalogservice.CategoryNames(sampleMenu())
	assert.Equal(t, []string{"all", "Pizza", "Sides"}, names)
}

func TestFilterByCategory(t *testing.T) {
	tests := []struct {
		name     string
		category string
		wantLen  int
	}{
		{name: "all passes everything", category: "all", wantLen: 4},
		{name: "empty passes everything", category: "", wantLen: 4},
		{name: "single category", category: "Pizza", wantLen: 2},
		{name: "unknown category", category: "Desserts", wantLen: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items := catalogservice.FilterByCategory(sampleMenu(), tt.category)
			assert.Len(t, items, tt.wantLen)
		})
	}
}

func TestRestaurantImage(t *testing.T) {
	withImage := models.Restaurant{Name: "Pizza Palace", Image: "https://cdn.example.com/pp.png"}
	assert.Equal(t, "https://cdn.example.com/pp.png", catalogservice.RestaurantImage(withImage))

	withoutImage := models.Restaurant{Name: "Biryani House"}
	assert.Equal(t, "/assets/restaurants/Biryani House.png", catalogservice.RestaurantImage(withoutImage))
}

func TestFormatRating(t *testing.T) {
	assert.Equal(t, "4.5", catalogservice.FormatRating(4.5))
	assert.Equal(t, "4.0", catalogservice.FormatRating(4))
}

func TestCategoryMenu(t *testing.T) {
	mockAPI := new(mocks.CatalogAPI)
	mockAPI.On("MenuItemsByCategory", mock.Anything, 2).Return(sampleMenu()[:2], nil)

	svc := newTestService(mockAPI)

	items, err := svc.CategoryMenu(context.Background(), 2)
	assert.NoError(t, err)
	assert.Len(t, items, 2)
	mockAPI.AssertExpectations(t)
}
