package api

import (
	"context"
	"fmt"

	"mealdash/internal/models"
)

type restaurantDTO struct {
	Id       int     `json:"id"`
	Name     string  `json:"name"`
	Address  string  `json:"address"`
	Rating   decimal `json:"rating"`
	Image    string  `json:"image"`
	IsActive bool    `json:"is_active"`
}

func (r restaurantDTO) toModel() models.Restaurant {
	return models.Restaurant{
		Id:       r.Id,
		Name:     r.Name,
		Address:  r.Address,
		Rating:   float64(r.Rating),
		Image:    r.Image,
		IsActive: r.IsActive,
	}
}

type menuItemDTO struct {
	Id             int     `json:"id"`
	Restaurant     int     `json:"restaurant"`
	RestaurantName string  `json:"restaurant_name"`
	Category       int     `json:"category"`
	CategoryName   string  `json:"category_name"`
	Name           string  `json:"name"`
	Description    string  `json:"description"`
	Price          decimal `json:"price"`
	Image          string  `json:"image"`
	IsAvailable    bool    `json:"is_available"`
}

func (m menuItemDTO) toModel() models.MenuItem {
	return models.MenuItem{
		Id:             m.Id,
		RestaurantId:   m.Restaurant,
		RestaurantName: m.RestaurantName,
		CategoryId:     m.Category,
		CategoryName:   m.CategoryName,
		Name:           m.Name,
		Description:    m.Description,
		Price:          float64(m.Price),
		Image:          m.Image,
		IsAvailable:    m.IsAvailable,
	}
}

func (c *Client) Restaurants(ctx context.Context) ([]models.Restaurant, error) {
	const op = "api.Client.Restaurants"

	var list []restaurantDTO
	if err := c.getList(ctx, "/restaurants/", &list); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	restaurants := make([]models.Restaurant, 0, len(list))
	for _, r := range list {
		restaurants = append(restaurants, r.toModel())
	}
	return restaurants, nil
}

func (c *Client) Restaurant(ctx context.Context, id int) (models.Restaurant, error) {
	const op = "api.Client.Restaurant"

	var r restaurantDTO
	if err := c.get(ctx, fmt.Sprintf("/restaurants/%d/", id), &r); err != nil {
		return models.Restaurant{}, fmt.Errorf("%s: %w", op, err)
	}

	return r.toModel(), nil
}

func (c *Client) RestaurantMenu(ctx context.Context, id int) ([]models.MenuItem, error) {
	const op = "api.Client.RestaurantMenu"

	var list []menuItemDTO
	if err := c.getList(ctx, fmt.Sprintf("/restaurants/%d/menu/", id), &list); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	items := make([]models.MenuItem, 0, len(list))
	for _, m := range list {
		items = append(items, m.toModel())
	}
	return items, nil
}

func (c *Client) MenuItems(ctx context.Context) ([]models.MenuItem, error) {
	const op = "api.Client.MenuItems"

	var list []menuItemDTO
	if err := c.getList(ctx, "/menu/", &list); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	items := make([]models.MenuItem, 0, len(list))
	for _, m := range list {
		items = append(items, m.toModel())
	}
	return items, nil
}

func (c *Client) MenuItemsByCategory(ctx context.Context, categoryId int) ([]models.MenuItem, error) {
	const op = "api.Client.MenuItemsByCategory"

	var list []menuItemDTO
	if err := c.getList(ctx, fmt.Sprintf("/menu/?category=%d", categoryId), &list); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	items := make([]models.MenuItem, 0, len(list))
	for _, m := range list {
		items = append(items, m.toModel())
	}
	return items, nil
}

// MenuCategories is the storefront variant of the category listing.
func (c *Client) MenuCategories(ctx context.Context) ([]models.Category, error) {
	const op = "api.Client.MenuCategories"

	var list []models.Category
	if err := c.getList(ctx, "/menu/categories/", &list); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return list, nil
}

func (c *Client) Categories(ctx context.Context) ([]models.Category, error) {
	const op = "api.Client.Categories"

	var list []models.Category
	if err := c.getList(ctx, "/categories/", &list); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return list, nil
}

type RestaurantPayload struct {
	Name    string  `json:"name"`
	Address string  `json:"address"`
	Rating  float64 `json:"rating"`
}

func (c *Client) CreateRestaurant(ctx context.Context, payload RestaurantPayload) (models.Restaurant, error) {
	const op = "api.Client.CreateRestaurant"

	var r restaurantDTO
	if err := c.post(ctx, "/restaurants/", payload, &r); err != nil {
		return models.Restaurant{}, fmt.Errorf("%s: %w", op, err)
	}

	return r.toModel(), nil
}

func (c *Client) UpdateRestaurant(ctx context.Context, id int, payload RestaurantPayload) (models.Restaurant, error) {
	const op = "api.Client.UpdateRestaurant"

	var r restaurantDTO
	if err := c.put(ctx, fmt.Sprintf("/restaurants/%d/", id), payload, &r); err != nil {
		return models.Restaurant{}, fmt.Errorf("%s: %w", op, err)
	}

	return r.toModel(), nil
}

func (c *Client) DeleteRestaurant(ctx context.Context, id int) error {
	const op = "api.Client.DeleteRestaurant"

	if err := c.delete(ctx, fmt.Sprintf("/restaurants/%d/", id)); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

type MenuItemPayload struct {
	Name         string  `json:"name"`
	Price        float64 `json:"price"`
	Description  string  `json:"description"`
	RestaurantId int     `json:"restaurant_id"`
	CategoryId   int     `json:"category_id"`
}

func (c *Client) CreateMenuItem(ctx context.Context, payload MenuItemPayload) (models.MenuItem, error) {
	const op = "api.Client.CreateMenuItem"

	var m menuItemDTO
	if err := c.post(ctx, "/menu/", payload, &m); err != nil {
		return models.MenuItem{}, fmt.Errorf("%s: %w", op, err)
	}

	return m.toModel(), nil
}

func (c *Client) UpdateMenuItem(ctx context.Context, id int, payload MenuItemPayload) (models.MenuItem, error) {
	const op = "api.Client.UpdateMenuItem"

	var m menuItemDTO
	if err := c.put(ctx, fmt.Sprintf("/menu/%d/", id), payload, &m); err != nil {
		return models.MenuItem{}, fmt.Errorf("%s: %w", op, err)
	}

	return m.toModel(), nil
}

func (c *Client) DeleteMenuItem(ctx context.Context, id int) error {
	const op = "api.Client.DeleteMenuItem"

	if err := c.delete(ctx, fmt.Sprintf("/menu/%d/", id)); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
