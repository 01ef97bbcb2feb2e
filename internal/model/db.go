package model

import "time"

type User struct {
	ID            string     `gorm:"primaryKey;size:36" json:"id"`
	Name          string     `gorm:"size:255" json:"name"`
	Email         string     `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Role          Role       `gorm:"size:16;not null" json:"role"`
	Status        UserStatus `gorm:"size:16;index;not null" json:"status"`
	SuspendReason string     `gorm:"size:255" json:"suspendReason,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
}

type Product struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	Description string    `gorm:"size:2048" json:"description"`
	Category    string    `gorm:"size:64;index" json:"category"`
	Price       float64   `gorm:"not null" json:"price"`
	ImageURL    string    `gorm:"size:512" json:"imageUrl"`
	ShowOnHome  bool      `gorm:"index" json:"showOnHome"`
	CreatedAt   time.Time `json:"createdAt"`
}

type Order struct {
	ID         string      `gorm:"primaryKey;size:36" json:"id"`
	ProductID  string      `gorm:"size:36;index;not null" json:"productId"`
	Email      string      `gorm:"size:255;index;not null" json:"email"` // buyer
	Quantity   int         `gorm:"not null" json:"quantity"`
	OrderTotal float64     `gorm:"not null" json:"orderTotal"`
	Status     OrderStatus `gorm:"size:16;index;not null" json:"status"`
	// "Paid" when the order was materialized from a completed checkout session.
	PaymentStatus string `gorm:"size:16" json:"paymentStatus,omitempty"`
	// Checkout session the order was derived from. Unique so a session can
	// never produce two orders, NULL for orders placed without payment.
	CheckoutSessionID *string   `gorm:"size:255;uniqueIndex" json:"checkoutSessionId,omitempty"`
	CreatedAt         time.Time `json:"createdAt"`
}

type TrackingStep struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	OrderID   string    `gorm:"size:36;index;not null" json:"orderId"`
	Stage     string    `gorm:"size:64;not null" json:"stage"` // e.g. CUTTING, SEWING, SHIPPED
	Location  string    `gorm:"size:255" json:"location"`
	Note      string    `gorm:"size:1024" json:"note,omitempty"`
	Timestamp time.Time `gorm:"index;not null" json:"timestamp"`
}
