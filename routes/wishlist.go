package routes

import (
	"errors"

	"heirloom/models"
	"heirloom/storage"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func getWishlist(c *fiber.Ctx) error {
	items, err := storage.GetWishlistItems(currentUserID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to fetch wishlist",
		})
	}
	return c.JSON(items)
}

type AddToWishlistRequest struct {
	ProductID uint `json:"product_id" validate:"required"`
}

func addToWishlist(c *fiber.Ctx) error {
	var req AddToWishlistRequest
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
			"message": "Failed to add to wishlist",
		})
	}

	item, err := storage.AddToWishlist(&models.WishlistItem{
		UserID:    currentUserID(c),
		ProductID: req.ProductID,
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to add to wishlist",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(item)
}

func removeFromWishlist(c *fiber.Ctx) error {
	productID, err := c.ParamsInt("productId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid product id",
		})
	}

	if err := storage.RemoveFromWishlist(currentUserID(c), uint(productID)); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to remove from wishlist",
		})
	}
	return c.JSON(fiber.Map{"message": "Item removed from wishlist"})
}
