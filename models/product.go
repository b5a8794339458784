package models

import "time"

type Product struct {
	ID            uint       `gorm:"primaryKey" json:"id"`
	Title         string     `json:"title" validate:"required"`
	Description   string     `json:"description"`
	Price         float64    `json:"price" validate:"gte=0"`
	OriginalPrice float64    `json:"original_price"`
	Condition     string     `json:"condition" validate:"required"`
	Authenticated bool       `json:"authenticated"`
	CategoryID    uint       `json:"category_id"`
	BrandID       uint       `json:"brand_id"`
	EraID         uint       `json:"era_id"`
	Size          string     `json:"size"`
	Resizable     bool       `json:"resizable"`
	MainImageURL  string     `json:"main_image_url" validate:"required"`
	ImageURLs     []string   `json:"image_urls" gorm:"type:text;serializer:json"`
	Featured      bool       `json:"featured"`
	InStock       bool       `json:"in_stock"`
	CreatedAt     time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
	Category      Category   `gorm:"foreignKey:CategoryID" json:"category"` // Belongs to one Category
	Brand         Brand      `gorm:"foreignKey:BrandID" json:"brand"`
	Era           Era        `gorm:"foreignKey:EraID" json:"era"`
	Materials     []Material `gorm:"many2many:product_materials" json:"materials,omitempty"`
}
