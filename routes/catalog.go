package routes

import (
	"heirloom/cache"
	"heirloom/models"
	"heirloom/storage"

	"github.com/gofiber/fiber/v2"
)

// Lookup lists are small and read-heavy; serve them through the catalog
// cache and invalidate on create.

func getAllCategories(c *fiber.Ctx) error {
	key := cache.Key("categories")
	if cached, ok := catalogCache.Get(key); ok {
		return c.JSON(cached)
	}
	categories, err := storage.GetCategories()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to fetch categories",
		})
	}
	catalogCache.Set(key, categories)
	return c.JSON(categories)
}

func createCategory(c *fiber.Ctx) error {
	category := new(models.Category)
	if err := c.BodyParser(category); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Failed to parse request body",
		})
	}
	if err := validate.Struct(category); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed: " + err.Error(),
		})
	}
	if err := storage.CreateCategory(category); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to create category",
		})
	}
	catalogCache.InvalidatePrefix("categories")
	return c.Status(fiber.StatusCreated).JSON(category)
}

func getAllMaterials(c *fiber.Ctx) error {
	key := cache.Key("materials")
	if cached, ok := catalogCache.Get(key); ok {
		return c.JSON(cached)
	}
	materials, err := storage.GetMaterials()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to fetch materials",
		})
	}
	catalogCache.Set(key, materials)
	return c.JSON(materials)
}

func createMaterial(c *fiber.Ctx) error {
	material := new(models.Material)
	if err := c.BodyParser(material); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Failed to parse request body",
		})
	}
	if err := validate.Struct(material); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed: " + err.Error(),
		})
	}
	if err := storage.CreateMaterial(material); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to create material",
		})
	}
	catalogCache.InvalidatePrefix("materials")
	return c.Status(fiber.StatusCreated).JSON(material)
}

func getAllEras(c *fiber.Ctx) error {
	key := cache.Key("eras")
	if cached, ok := catalogCache.Get(key); ok {
		return c.JSON(cached)
	}
	eras, err := storage.GetEras()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to fetch eras",
		})
	}
	catalogCache.Set(key, eras)
	return c.JSON(eras)
}

func createEra(c *fiber.Ctx) error {
	era := new(models.Era)
	if err := c.BodyParser(era); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Failed to parse request body",
		})
	}
	if err := validate.Struct(era); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed: " + err.Error(),
		})
	}
	if err := storage.CreateEra(era); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to create era",
		})
	}
	catalogCache.InvalidatePrefix("eras")
	return c.Status(fiber.StatusCreated).JSON(era)
}

func getAllBrands(c *fiber.Ctx) error {
	key := cache.Key("brands")
	if cached, ok := catalogCache.Get(key); ok {
		return c.JSON(cached)
	}
	brands, err := storage.GetBrands()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to fetch brands",
		})
	}
	catalogCache.Set(key, brands)
	return c.JSON(brands)
}

func createBrand(c *fiber.Ctx) error {
	brand := new(models.Brand)
	if err := c.BodyParser(brand); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Failed to parse request body",
		})
	}
	if err := validate.Struct(brand); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed: " + err.Error(),
		})
	}
	if err := storage.CreateBrand(brand); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to create brand",
		})
	}
	catalogCache.InvalidatePrefix("brands")
	return c.Status(fiber.StatusCreated).JSON(brand)
}
