package routes

import (
	"errors"

	"heirloom/models"
	"heirloom/storage"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func getCart(c *fiber.Ctx) error {
	items, err := storage.GetCartItems(currentUserID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to fetch cart",
		})
	}
	return c.JSON(items)
}

type AddToCartRequest struct {
	ProductID    uint   `json:"product_id" validate:"required"`
	Quantity     int    `json:"quantity" validate:"omitempty,gte=1"`
	SelectedSize string `json:"selected_size"`
}

func addToCart(c *fiber.Ctx) error {
	var req AddToCartRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Failed to parse request body",
		})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed: " + err.Error(),
		})
	}

	if _, err := storage.GetProduct(req.ProductID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Product not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to add to cart",
		})
	}

	item, err := storage.AddToCart(&models.CartItem{
		UserID:       currentUserID(c),
		ProductID:    req.ProductID,
		Quantity:     req.Quantity,
		SelectedSize: req.SelectedSize,
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to add to cart",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(item)
}

type UpdateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

func updateCartItem(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid cart item id",
		})
	}

	var req UpdateCartItemRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Failed to parse request body",
		})
	}

	item, err := storage.UpdateCartItemQuantity(currentUserID(c), uint(id), req.Quantity)
	if err != nil {
		if errors.Is(err, storage.ErrInvalidQuantity) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": err.Error(),
			})
		}
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Cart item not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to update cart item",
		})
	}
	return c.JSON(item)
}

func removeFromCart(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid cart item id",
		})
	}

	if err := storage.RemoveFromCart(currentUserID(c), uint(id)); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to remove from cart",
		})
	}
	return c.JSON(fiber.Map{"message": "Item removed from cart"})
}

func clearCart(c *fiber.Ctx) error {
	if err := storage.ClearCart(currentUserID(c)); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to clear cart",
		})
	}
	return c.JSON(fiber.Map{"message": "Cart cleared"})
}
