package models

import (
	"time"
)

type ShippingAddress struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	Zip     string `json:"zip"`
	Country string `json:"country"`
}

type Order struct {
	ID              uint            `gorm:"primaryKey" json:"id"`
	UserID          uint            `json:"user_id"`
	OrderNumber     string          `gorm:"uniqueIndex" json:"order_number"`
	Status          string          `json:"status"`
	Subtotal        float64         `json:"subtotal"`
	Tax             float64         `json:"tax"`
	Shipping        float64         `json:"shipping"`
	Insurance       float64         `json:"insurance"`
	Total           float64         `json:"total"`
	ShippingAddress ShippingAddress `gorm:"type:text;serializer:json" json:"shipping_address"`
	CreatedAt       time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
	OrderItems      []OrderItem     `gorm:"foreignKey:OrderID" json:"order_items"`
}

type OrderItem struct {
	ID           uint    `gorm:"primaryKey" json:"id"`
	OrderID      uint    `json:"order_id"`
	ProductID    uint    `json:"product_id"`
	Quantity     int     `json:"quantity" validate:"required,min=1"`
	Price        float64 `json:"price"` // unit price snapshot taken at order time
	SelectedSize string  `json:"selected_size"`
	Product      Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}
