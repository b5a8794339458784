package routes

import (
	"errors"
	"log"

	"heirloom/config"
	"heirloom/email"
	"heirloom/models"
	"heirloom/storage"
	"heirloom/ws"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func getAllOrders(c *fiber.Ctx) error {
	orders, err := storage.GetOrders(currentUserID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to fetch orders",
		})
	}
	return c.JSON(orders)
}

func getOrder(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid order id",
		})
	}

	order, err := storage.GetOrder(currentUserID(c), uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Order not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to fetch order",
		})
	}
	return c.JSON(order)
}

type CreateOrderRequest struct {
	ShippingAddress models.ShippingAddress `json:"shipping_address"`
}

func createOrder(c *fiber.Ctx) error {
	userID := currentUserID(c)

	var req CreateOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Failed to parse request body",
		})
	}

	order, err := storage.CreateOrder(userID, req.ShippingAddress, config.TaxRate)
	if err != nil {
		if errors.Is(err, storage.ErrEmptyCart) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Cart is empty",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to create order",
		})
	}

	ws.PublishOrder(order)

	// Confirmation email is best effort and never blocks the response.
	go func(userID uint) {
		user, err := storage.GetUser(userID)
		if err != nil {
			log.Println("Failed to load user for confirmation email:", err)
			return
		}
		if err := email.SendOrderConfirmation(user, order); err != nil {
			log.Println("Failed to send order confirmation:", err)
		}
	}(userID)

	return c.Status(fiber.StatusCreated).JSON(order)
}
