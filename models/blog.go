package models

import "time"

type BlogPost struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Title         string    `json:"title" validate:"required"`
	Slug          string    `gorm:"uniqueIndex" json:"slug" validate:"required"`
	Excerpt       string    `json:"excerpt"`
	Content       string    `json:"content" validate:"required"`
	CoverImageURL string    `json:"cover_image_url"`
	PublishedAt   time.Time `json:"published_at"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
