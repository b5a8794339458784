package models

import "time"

type CartItem struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	UserID       uint      `gorm:"uniqueIndex:idx_cart_user_product" json:"user_id"`
	ProductID    uint      `gorm:"uniqueIndex:idx_cart_user_product" json:"product_id" validate:"required"`
	Quantity     int       `json:"quantity" validate:"gte=1"`
	SelectedSize string    `json:"selected_size"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	Product      Product   `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}
