package models

import "time"

type WishlistItem struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"uniqueIndex:idx_wishlist_user_product" json:"user_id"`
	ProductID uint      `gorm:"uniqueIndex:idx_wishlist_user_product" json:"product_id" validate:"required"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	Product   Product   `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}
