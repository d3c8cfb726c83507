package api

import (
	"context"
	"fmt"

	"mealdash/internal/models"
)

type cartItemDTO struct {
	Id            int          `json:"id"`
	MenuItem      int          `json:"menu_item"`
	Details       *menuItemDTO `json:"menu_item_details"`
	PriceSnapshot decimal      `json:"price_snapshot"`
	Quantity      int          `json:"quantity"`
}

type cartDTO struct {
	Id    int           `json:"id"`
	Items []cartItemDTO `json:"items"`
}

// FetchCart returns the normalized line list for the current session's
// server-side cart. The caller replaces its state wholesale.
func (c *Client) FetchCart(ctx context.Context) ([]models.CartLine, error) {
	const op = "api.Client.FetchCart"

	var cart cartDTO
	if err := c.get(ctx, "/cart/", &cart); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	lines := make([]models.CartLine, 0, len(cart.Items))
	for _, item := range cart.Items {
		lines = append(lines, item.toLine())
	}
	return lines, nil
}

func (it cartItemDTO) toLine() models.CartLine {
	line := models.CartLine{
		Id:         it.Id,
		MenuItemId: it.MenuItem,
		Name:       "Unnamed Item",
		Price:      float64(it.PriceSnapshot),
		Quantity:   it.Quantity,
	}

	if d := it.Details; d != nil {
		if d.Id != 0 {
			line.MenuItemId = d.Id
		}
		if d.Name != "" {
			line.Name = d.Name
		}
		line.RestaurantId = d.Restaurant
		line.RestaurantName = d.RestaurantName
		line.Image = d.Image
	}

	return line
}

func (c *Client) AddToCart(ctx context.Context, menuItemId, quantity int) error {
	const op = "api.Client.AddToCart"

	body := map[string]int{
		"menu_item_id": menuItemId,
		"quantity":     quantity,
	}
	if err := c.post(ctx, "/cart/add/", body, nil); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (c *Client) UpdateQuantity(ctx context.Context, cartItemId, quantity int) error {
	const op = "api.Client.UpdateQuantity"

	body := map[string]int{
		"cart_item_id": cartItemId,
		"quantity":     quantity,
	}
	if err := c.post(ctx, "/cart/update_quantity/", body, nil); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (c *Client) RemoveFromCart(ctx context.Context, cartItemId int) error {
	const op = "api.Client.RemoveFromCart"

	body := map[string]int{
		"cart_item_id": cartItemId,
	}
	if err := c.post(ctx, "/cart/remove/", body, nil); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
