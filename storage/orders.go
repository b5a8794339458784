package storage

import (
	"errors"
	"fmt"
	"strings"

	"heirloom/checkout"
	"heirloom/db"
	"heirloom/models"

	"github.com/google/uuid"
)

// ErrEmptyCart is returned when an order is placed with nothing in the cart.
var ErrEmptyCart = errors.New("cart is empty")

func newOrderNumber() string {
	return fmt.Sprintf("ORD-%s", strings.ToUpper(uuid.New().String()[:8]))
}

func GetOrders(userID uint) ([]models.Order, error) {
	var orders []models.Order
	err := db.DB.Preload("OrderItems.Product").
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&orders).Error
	return orders, err
}

func GetOrder(userID, orderID uint) (*models.Order, error) {
	var order models.Order
	err := db.DB.Preload("OrderItems.Product").
		Where("id = ? AND user_id = ?", orderID, userID).
		First(&order).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// CreateOrder turns the user's cart into an order. Each order item
// snapshots the product price at order time, so later catalog price edits
// never change order history. The cart is cleared in the same transaction.
func CreateOrder(userID uint, address models.ShippingAddress, taxRate float64) (*models.Order, error) {
	var items []models.CartItem
	if err := db.DB.Preload("Product").
		Where("user_id = ?", userID).
		Order("created_at, id").
		Find(&items).Error; err != nil {
		return nil, err
	}

	lines := make([]checkout.Line, 0, len(items))
	for _, item := range items {
		if item.Product.ID == 0 {
			continue // product no longer resolvable, skip the line
		}
		lines = append(lines, checkout.Line{Price: item.Product.Price, Quantity: item.Quantity})
	}
	if len(lines) == 0 {
		return nil, ErrEmptyCart
	}

	summary := checkout.Summarize(lines, taxRate)

	order := models.Order{
		UserID:          userID,
		OrderNumber:     newOrderNumber(),
		Status:          "pending",
		Subtotal:        summary.Subtotal,
		Tax:             summary.Tax,
		Shipping:        summary.Shipping,
		Insurance:       summary.Insurance,
		Total:           summary.Total,
		ShippingAddress: address,
	}

	tx := db.DB.Begin()
	if err := tx.Create(&order).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	var orderItems []models.OrderItem
	for _, item := range items {
		if item.Product.ID == 0 {
			continue
		}
		orderItems = append(orderItems, models.OrderItem{
			OrderID:      order.ID,
			ProductID:    item.ProductID,
			Quantity:     item.Quantity,
			Price:        item.Product.Price,
			SelectedSize: item.SelectedSize,
		})
	}
	if err := tx.Create(&orderItems).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Where("user_id = ?", userID).Delete(&models.CartItem{}).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	var full models.Order
	if err := db.DB.Preload("OrderItems.Product").First(&full, order.ID).Error; err != nil {
		return nil, err
	}
	return &full, nil
}

func UpdateOrderStatus(orderID uint, status string) (*models.Order, error) {
	var order models.Order
	if err := db.DB.First(&order, orderID).Error; err != nil {
		return nil, err
	}
	if err := db.DB.Model(&order).Update("status", status).Error; err != nil {
		return nil, err
	}
	return &order, nil
}
