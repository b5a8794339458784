package storage

import (
	"errors"

	"heirloom/db"
	"heirloom/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrInvalidQuantity is returned when a cart mutation asks for a quantity
// below the minimum of 1.
var ErrInvalidQuantity = errors.New("quantity must be at least 1")

func GetCartItems(userID uint) ([]models.CartItem, error) {
	var items []models.CartItem
	err := db.DB.Preload("Product").
		Where("user_id = ?", userID).
		Order("created_at, id").
		Find(&items).Error
	return items, err
}

// AddToCart inserts the (user, product) pair or increments the existing
// row's quantity. The increment happens server-side in a single upsert so
// concurrent adds for the same pair cannot lose updates.
func AddToCart(item *models.CartItem) (*models.CartItem, error) {
	if item.Quantity <= 0 {
		item.Quantity = 1
	}

	err := db.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "product_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"quantity": gorm.Expr("quantity + ?", item.Quantity),
		}),
	}).Create(item).Error
	if err != nil {
		return nil, err
	}

	var saved models.CartItem
	err = db.DB.Preload("Product").
		Where("user_id = ? AND product_id = ?", item.UserID, item.ProductID).
		First(&saved).Error
	if err != nil {
		return nil, err
	}
	return &saved, nil
}

func UpdateCartItemQuantity(userID, itemID uint, quantity int) (*models.CartItem, error) {
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}

	result := db.DB.Model(&models.CartItem{}).
		Where("id = ? AND user_id = ?", itemID, userID).
		Update("quantity", quantity)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}

	var item models.CartItem
	if err := db.DB.Preload("Product").First(&item, itemID).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// RemoveFromCart deletes a cart line. Removing a line that no longer
// exists is a no-op.
func RemoveFromCart(userID, itemID uint) error {
	return db.DB.Where("id = ? AND user_id = ?", itemID, userID).
		Delete(&models.CartItem{}).Error
}

func ClearCart(userID uint) error {
	return db.DB.Where("user_id = ?", userID).Delete(&models.CartItem{}).Error
}
