package models

import (
	"time"
)

// User - The person logging into the till
type User struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Username     string `gorm:"uniqueIndex;size:50" json:"username"`
	PasswordHash string `json:"-"` // Never return this in JSON
	Role         string `gorm:"default:staff" json:"role"`
}

// Product - A sellable item (cakes, pastries, drinks)
// StockQuantity is a REAL, not an int: some items sell by weight (kg).
type Product struct {
	ID            uint    `gorm:"primaryKey" json:"id"`
	Name          string  `gorm:"not null" json:"name"`
	Unit          string  `gorm:"default:pcs" json:"unit"`
	Price         float64 `gorm:"not null" json:"price"`
	ImageURL      string  `json:"image_url"`
	Description   string  `json:"description"`
	StockQuantity float64 `gorm:"default:0" json:"stock_quantity"`
}

// Ingredient - Raw stock tracked by hand (flour, sugar, eggs).
// Not linked to products or orders; there is no recipe model.
type Ingredient struct {
	ID                uint    `gorm:"primaryKey" json:"id"`
	Name              string  `gorm:"uniqueIndex;not null" json:"name"`
	Unit              string  `gorm:"not null" json:"unit"`
	CurrentStock      float64 `gorm:"default:0" json:"current_stock"`
	LowStockThreshold float64 `gorm:"default:5" json:"low_stock_threshold"`
}

// Order - The Transaction Header
// Type is 'immediate', 'advance' or 'delivery'. Advance orders carry a
// pickup time, delivery orders a fee; neither drives any scheduling.
type Order struct {
	ID              uint        `gorm:"primaryKey" json:"id"`
	CustomerName    string      `json:"customer_name"`
	CustomerContact string      `json:"customer_contact"`
	TotalAmount     float64     `gorm:"not null" json:"total_amount"`
	PaymentMethod   string      `json:"payment_method"`
	Status          string      `gorm:"default:completed" json:"status"`
	Type            string      `gorm:"default:immediate" json:"type"`
	PickupDatetime  string      `json:"pickup_datetime"`
	DeliveryFee     float64     `gorm:"default:0" json:"delivery_fee"`
	CreatedAt       time.Time   `json:"created_at"`
	Items           []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"`
}

// OrderItem - One line of an order.
// PriceAtSale and UnitAtSale are snapshots: editing the product later
// must not rewrite history.
type OrderItem struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	OrderID     uint    `gorm:"index" json:"order_id"`
	ProductID   uint    `json:"product_id"`
	Quantity    float64 `gorm:"not null" json:"quantity"`
	PriceAtSale float64 `gorm:"not null" json:"price_at_sale"`
	UnitAtSale  string  `gorm:"default:pcs" json:"unit_at_sale"`
}
