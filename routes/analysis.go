package routes

import (
	"errors"

	"heirloom/models"
	"heirloom/storage"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type AnalysisRequest struct {
	JewelryType    string   `json:"jewelry_type"`
	EstimatedEra   string   `json:"estimated_era"`
	AdditionalInfo string   `json:"additional_info"`
	ImageURLs      []string `json:"image_urls" validate:"required,min=1"`
}

// createAnalysis accepts the submission and hands the work to the
// background worker. The response carries status "pending"; clients poll
// GET /api/ai-analysis/:id until they observe a terminal status.
func createAnalysis(c *fiber.Ctx) error {
	var req AnalysisRequest
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

	analysis := models.AiAnalysis{
		UserID:         currentUserID(c),
		JewelryType:    req.JewelryType,
		EstimatedEra:   req.EstimatedEra,
		AdditionalInfo: req.AdditionalInfo,
		ImageURLs:      req.ImageURLs,
	}
	if err := storage.CreateAnalysis(&analysis); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to create analysis",
		})
	}

	analysisWorker.Enqueue(analysis.ID)

	return c.Status(fiber.StatusCreated).JSON(analysis)
}

func getAllAnalyses(c *fiber.Ctx) error {
	analyses, err := storage.GetUserAnalyses(currentUserID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to fetch analyses",
		})
	}
	return c.JSON(analyses)
}

func getAnalysis(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid analysis id",
		})
	}

	analysis, err := storage.GetAnalysis(currentUserID(c), uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Analysis not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to fetch analysis",
		})
	}
	return c.JSON(analysis)
}
