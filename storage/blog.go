package storage

import (
	"heirloom/db"
	"heirloom/models"
)

func GetBlogPosts() ([]models.BlogPost, error) {
	var posts []models.BlogPost
	err := db.DB.Order("published_at DESC, id DESC").Find(&posts).Error
	return posts, err
}

func GetBlogPostBySlug(slug string) (*models.BlogPost, error) {
	var post models.BlogPost
	if err := db.DB.Where("slug = ?", slug).First(&post).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

func CreateBlogPost(post *models.BlogPost) error {
	return db.DB.Create(post).Error
}

func UpdateBlogPost(id uint, updates *models.BlogPost) (*models.BlogPost, error) {
	var existing models.BlogPost
	if err := db.DB.First(&existing, id).Error; err != nil {
		return nil, err
	}
	if err := db.DB.Model(&existing).Updates(updates).Error; err != nil {
		return nil, err
	}
	return &existing, nil
}

func DeleteBlogPost(id uint) error {
	return db.DB.Delete(&models.BlogPost{}, id).Error
}
