package models_test

import (
	"mealdash/internal/models"

	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundMoney(t *testing.T) {
	assert.InDelta(t, 39.90, models.RoundMoney(798*0.05), 0.0001)
	assert.InDelta(t, 4.98, models.RoundMoney(99.50*0.05), 0.0001)
	assert.InDelta(t, 0.1, models.RoundMoney(0.1+0.2-0.2), 0.0001)
}

func TestSubtotal(t *testing.T) {
	line := models.CartLine{Price: 399.00, Quantity: 2}
	assert.InDelta(t, 798.00, line.Subtotal(), 0.0001)
}

func TestStatusLabel(t *testing.T) {
	assert.Equal(t, "Out for Delivery", models.StatusLabel(models.StatusOutForDelivery))
	// unknown statuses render as freshly placed
	assert.Equal(t, "Order Placed", models.StatusLabel("refunded"))
}

func TestValidStatus(t *testing.T) {
	for _, status := range models.OrderStatuses {
		assert.True(t, models.ValidStatus(status))
	}
	assert.False(t, models.ValidStatus("teleported"))
}

func TestIsAdmin(t *testing.T) {
	assert.True(t, models.Session{Role: models.RoleAdmin}.IsAdmin())
	assert.False(t, models.Session{Role: models.RoleCustomer}.IsAdmin())
}
