package domain

import "time"

const (
	OrderPending   = "pending"
	OrderCompleted = "completed"
)

type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Price       float64   `json:"price"`
	Image       string    `json:"image"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt,omitempty"`
	UpdatedAt   time.Time `json:"updatedAt,omitempty"`
}

// CartItem carries a copy of the product fields at add time. CartID is a
// fresh token per add; ProductID is the merge key.
type CartItem struct {
	CartID    string  `json:"cartId"`
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Image     string  `json:"image"`
	Quantity  int     `json:"quantity"`
}

type OrderItem struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	Image    string  `json:"image"`
}

// Order totals are fixed at creation time: Total = Subtotal + DeliveryFee.
// Later changes to the configured delivery fee never touch stored orders.
type Order struct {
	ID           string      `json:"id"`
	Date         time.Time   `json:"date"`
	CustomerName string      `json:"customerName"`
	Phone        string      `json:"phone"`
	Address      string      `json:"address,omitempty"`
	Items        []OrderItem `json:"items"`
	Subtotal     float64     `json:"subtotal"`
	DeliveryFee  float64     `json:"deliveryFee"`
	Total        float64     `json:"total"`
	Status       string      `json:"status"`
}

// AdminCredentials is the single mutable admin record. The password is
// stored as a bcrypt hash, never plaintext.
type AdminCredentials struct {
	Email        string `json:"email"`
	PasswordHash string `json:"passwordHash"`
}
