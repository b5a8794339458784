package models

import "time"

type Category struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Name         string    `json:"name" validate:"required"`
	Slug         string    `gorm:"uniqueIndex" json:"slug" validate:"required"`
	Description  string    `json:"description"`
	ImageURL     string    `json:"image_url"`
	ProductCount int       `gorm:"-" json:"product_count"` // computed per read, in-stock products only
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`
	Products     []Product `gorm:"foreignKey:CategoryID" json:"products,omitempty"` // One-to-many relationship
}
