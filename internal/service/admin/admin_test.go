package adminservice_test

import (
	"mealdash/internal/api"
	"mealdash/internal/models"
	adminservice "mealdash/internal/service/admin"
	"mealdash/internal/service/admin/mocks"
	"mealdash/pkg/lib/logger/slogdiscard"

	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newTestService(adminAPI *mocks.CatalogAdminAPI) *adminservice.Service {
	return adminservice.New(slogdiscard.NewDiscardLogger(), adminAPI)
}

func TestCreateRestaurant(t *testing.T) {
	tests := []struct {
		name       string
		form       adminservice.RestaurantForm
		mockReturn func(*mocks.CatalogAdminAPI)
		wantErr    bool
	}{
		{
			name: "Success",
			form: adminservice.RestaurantForm{Name: "Pizza Palace", Address: "12 MG Road", Rating: 4.5},
			mockReturn: func(m *mocks.CatalogAdminAPI) {
				m.On("CreateRestaurant", mock.Anything, api.RestaurantPayload{
					Name:    "Pizza Palace",
					Address: "12 MG Road",
					Rating:  4.5,
				}).Return(models.Restaurant{Id: 3, Name: "Pizza Palace"}, nil)
			},
		},
		{
			name:       "Missing name",
			form:       adminservice.RestaurantForm{Address: "12 MG Road", Rating: 4.5},
			mockReturn: func(m *mocks.CatalogAdminAPI) {},
			wantErr:    true,
		},
		{
			name:       "Rating out of range",
			form:       adminservice.RestaurantForm{Name: "Pizza Palace", Address: "12 MG Road", Rating: 5.5},
			mockReturn: func(m *mocks.CatalogAdminAPI) {},
			wantErr:    true,
		},
		{
			name: "API failure",
			form: adminservice.RestaurantForm{Name: "Pizza Palace", Address: "12 MG Road", Rating: 4.5},
			mockReturn: func(m *mocks.CatalogAdminAPI) {
				m.On("CreateRestaurant", mock.Anything, mock.Anything).
					Return(models.Restaurant{}, errors.New("boom"))
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockAPI := new(mocks.CatalogAdminAPI)
			tt.mockReturn(mockAPI)
			svc := newTestService(mockAPI)

			restaurant, err := svc.CreateRestaurant(context.Background(), tt.form)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 3, restaurant.Id)
			}
			mockAPI.AssertExpectations(t)
		})
	}
}

func TestCreateMenuItem(t *testing.T) {
	tests := []struct {
		name       string
		form       adminservice.MenuItemForm
		mockReturn func(*mocks.CatalogAdminAPI)
		wantErr    bool
	}{
		{
			name: "Success",
			form: adminservice.MenuItemForm{Name: "Margherita Pizza", Price: 399, RestaurantId: 3, CategoryId: 2},
			mockReturn: func(m *mocks.CatalogAdminAPI) {
				m.On("CreateMenuItem", mock.Anything, api.MenuItemPayload{
					Name:         "Margherita Pizza",
					Price:        399,
					RestaurantId: 3,
					CategoryId:   2,
				}).Return(models.MenuItem{Id: 12, Name: "Margherita Pizza"}, nil)
			},
		},
		{
			name:       "Zero price",
			form:       adminservice.MenuItemForm{Name: "Margherita Pizza", RestaurantId: 3, CategoryId: 2},
			mockReturn: func(m *mocks.CatalogAdminAPI) {},
			wantErr:    true,
		},
		{
			name:       "Missing restaurant",
			form:       adminservice.MenuItemForm{Name: "Margherita Pizza", Price: 399, CategoryId: 2},
			mockReturn: func(m *mocks.CatalogAdminAPI) {},
			wantErr:    true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockAPI := new(mocks.CatalogAdminAPI)
			tt.mockReturn(mockAPI)
			svc := newTestService(mockAPI)

			item, err := svc.CreateMenuItem(context.Background(), tt.form)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 12, item.Id)
			}
			mockAPI.AssertExpectations(t)
		})
	}
}

func TestUpdateRestaurant_PassesId(t *testing.T) {
	mockAPI := new(mocks.CatalogAdminAPI)
	mockAPI.On("UpdateRestaurant", mock.Anything, 3, mock.Anything).
		Return(models.Restaurant{Id: 3, Name: "Pizza Palace"}, nil)

	svc := newTestService(mockAPI)

	_, err := svc.UpdateRestaurant(context.Background(), 3, adminservice.RestaurantForm{
		Name:    "Pizza Palace",
		Address: "12 MG Road",
		Rating:  4.6,
	})
	assert.NoError(t, err)
	mockAPI.AssertExpectations(t)
}

func TestDeleteMenuItem(t *testing.T) {
	mockAPI := new(mocks.CatalogAdminAPI)
	mockAPI.On("DeleteMenuItem", mock.Anything, 12).Return(nil)

	svc := newTestService(mockAPI)

	err := svc.DeleteMenuItem(context.Background(), 12)
	assert.NoError(t, err)
	mockAPI.AssertExpectations(t)
}
