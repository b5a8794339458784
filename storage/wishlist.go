package storage

import (
	"heirloom/db"
	"heirloom/models"

	"gorm.io/gorm/clause"
)

func GetWishlistItems(userID uint) ([]models.WishlistItem, error) {
	var items []models.WishlistItem
	err := db.DB.Preload("Product").
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&items).Error
	return items, err
}

// AddToWishlist saves the (user, product) pair; saving a pair that is
// already on the list is a no-op rather than a duplicate row.
func AddToWishlist(item *models.WishlistItem) (*models.WishlistItem, error) {
	err := db.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "product_id"}},
		DoNothing: true,
	}).Create(item).Error
	if err != nil {
		return nil, err
	}

	var saved models.WishlistItem
	err = db.DB.Preload("Product").
		Where("user_id = ? AND product_id = ?", item.UserID, item.ProductID).
		First(&saved).Error
	if err != nil {
		return nil, err
	}
	return &saved, nil
}

// RemoveFromWishlist is idempotent; removing an absent product succeeds.
func RemoveFromWishlist(userID, productID uint) error {
	return db.DB.Where("user_id = ? AND product_id = ?", userID, productID).
		Delete(&models.WishlistItem{}).Error
}
