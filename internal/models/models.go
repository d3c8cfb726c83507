package models

import "time"

const (
	RoleCustomer = "customer"
	RoleOwner    = "owner"
	RoleAgent    = "agent"
	RoleAdmin    = "admin"
)

// Session is the authenticated identity persisted across restarts.
type Session struct {
	Id    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func (s Session) IsAdmin() bool {
	return s.Role == RoleAdmin
}

// CartLine is one server-tracked cart entry. Price is the snapshot taken
// at add-time, not the live menu price. Line ids are server-assigned.
type CartLine struct {
	Id             int     `json:"id"`
	MenuItemId     int     `json:"menu_item_id"`
	Name           string  `json:"name"`
	Price          float64 `json:"price"`
	Quantity       int     `json:"qty"`
	RestaurantId   int     `json:"restaurant_id"`
	RestaurantName string  `json:"restaurant_name"`
	Image          string  `json:"image,omitempty"`
}

func (l CartLine) Subtotal() float64 {
	return l.Price * float64(l.Quantity)
}

type Restaurant struct {
	Id       int     `json:"id"`
	Name     string  `json:"name"`
	Address  string  `json:"address"`
	Rating   float64 `json:"rating"`
	Image    string  `json:"image,omitempty"`
	IsActive bool    `json:"is_active"`
}

type Category struct {
	Id   int    `json:"id"`
	Name string `json:"name"`
}

type MenuItem struct {
	Id             int     `json:"id"`
	RestaurantId   int     `json:"restaurant_id"`
	RestaurantName string  `json:"restaurant_name"`
	CategoryId     int     `json:"category_id"`
	CategoryName   string  `json:"category_name"`
	Name           string  `json:"name"`
	Description    string  `json:"description"`
	Price          float64 `json:"price"`
	Image          string  `json:"image,omitempty"`
	IsAvailable    bool    `json:"is_available"`
}

const (
	StatusPlaced         = "placed"
	StatusAccepted       = "accepted"
	StatusCooking        = "cooking"
	StatusOutForDelivery = "out_for_delivery"
	StatusDelivered      = "delivered"
)

// OrderStatuses lists the valid statuses in lifecycle order.
var OrderStatuses = []string{
	StatusPlaced,
	StatusAccepted,
	StatusCooking,
	StatusOutForDelivery,
	StatusDelivered,
}

var statusLabels = map[string]string{
	StatusPlaced:         "Order Placed",
	StatusAccepted:       "Accepted",
	StatusCooking:        "Cooking",
	StatusOutForDelivery: "Out for Delivery",
	StatusDelivered:      "Delivered",
}

func StatusLabel(status string) string {
	if label, ok := statusLabels[status]; ok {
		return label
	}
	return statusLabels[StatusPlaced]
}

func ValidStatus(status string) bool {
	for _, s := range OrderStatuses {
		if s == status {
			return true
		}
	}
	return false
}

const (
	PaymentCOD    = "cod"
	PaymentOnline = "online"
)

type OrderItem struct {
	Id       int     `json:"id"`
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
	Subtotal float64 `json:"subtotal"`
}

type Order struct {
	Id             int         `json:"id"`
	UserName       string      `json:"user_name,omitempty"`
	RestaurantName string      `json:"restaurant_name"`
	TotalAmount    float64     `json:"total_amount"`
	PaymentMethod  string      `json:"payment_method"`
	Status         string      `json:"status"`
	CreatedAt      time.Time   `json:"created_at"`
	Items          []OrderItem `json:"items"`
}
