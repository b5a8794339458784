package routes

import (
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type PaymentIntentRequest struct {
	Amount  float64 `json:"amount"`
	OrderID uint    `json:"order_id"`
}

// createPaymentIntent is a stub until the payment processor is
// configured; it returns a mock client secret in the processor's shape.
func createPaymentIntent(c *fiber.Ctx) error {
	var req PaymentIntentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Failed to parse request body",
		})
	}
	if req.Amount < 50 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid amount",
		})
	}

	clientSecret := fmt.Sprintf("pi_mock_%d_secret_%s",
		time.Now().UnixMilli(),
		strings.ReplaceAll(uuid.New().String(), "-", "")[:12])

	return c.JSON(fiber.Map{
		"clientSecret": clientSecret,
		"amount":       req.Amount,
	})
}
