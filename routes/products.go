package routes

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"heirloom/cache"
	"heirloom/models"
	"heirloom/storage"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type ProductListResponse struct {
	Products []models.Product `json:"products"`
	Total    int              `json:"total"`
	Limit    int              `json:"limit"`
	Offset   int              `json:"offset"`
}

func parseProductFilter(c *fiber.Ctx) (storage.ProductFilter, error) {
	filter := storage.ProductFilter{
		CategoryID: uint(c.QueryInt("categoryId", 0)),
		BrandID:    uint(c.QueryInt("brandId", 0)),
		EraID:      uint(c.QueryInt("eraId", 0)),
		Search:     c.Query("search"),
		Limit:      c.QueryInt("limit", 0),
		Offset:     c.QueryInt("offset", 0),
	}
	if filter.Limit < 0 || filter.Offset < 0 {
		return filter, errors.New("limit and offset must not be negative")
	}

	if raw := c.Query("priceMin"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return filter, errors.New("invalid priceMin parameter")
		}
		filter.PriceMin = &v
	}
	if raw := c.Query("priceMax"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return filter, errors.New("invalid priceMax parameter")
		}
		filter.PriceMax = &v
	}
	if raw := c.Query("featured"); raw != "" {
		featured := raw == "true"
		filter.Featured = &featured
	}
	if raw := c.Query("materialIds"); raw != "" {
		for _, part := range strings.Split(raw, ",") {
			id, err := strconv.ParseUint(strings.TrimSpace(part), 10, 32)
			if err != nil {
				return filter, errors.New("invalid materialIds parameter")
			}
			filter.MaterialIDs = append(filter.MaterialIDs, uint(id))
		}
	}

	// Clamp to the effective page so the response and cache key reflect
	// what the query returns.
	filter.Limit, filter.Offset = storage.NormalizePage(filter.Limit, filter.Offset)
	return filter, nil
}

func filterCacheKey(f storage.ProductFilter) string {
	priceMin, priceMax, featured := "", "", ""
	if f.PriceMin != nil {
		priceMin = strconv.FormatFloat(*f.PriceMin, 'f', -1, 64)
	}
	if f.PriceMax != nil {
		priceMax = strconv.FormatFloat(*f.PriceMax, 'f', -1, 64)
	}
	if f.Featured != nil {
		featured = strconv.FormatBool(*f.Featured)
	}
	materialIDs := make([]string, len(f.MaterialIDs))
	for i, id := range f.MaterialIDs {
		materialIDs[i] = strconv.FormatUint(uint64(id), 10)
	}
	return cache.Key("products",
		fmt.Sprintf("category=%d", f.CategoryID),
		fmt.Sprintf("brand=%d", f.BrandID),
		fmt.Sprintf("era=%d", f.EraID),
		"materials="+strings.Join(materialIDs, ","),
		"priceMin="+priceMin,
		"priceMax="+priceMax,
		"search="+f.Search,
		"featured="+featured,
		fmt.Sprintf("limit=%d", f.Limit),
		fmt.Sprintf("offset=%d", f.Offset),
	)
}

func getAllProducts(c *fiber.Ctx) error {
	filter, err := parseProductFilter(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": err.Error(),
		})
	}

	key := filterCacheKey(filter)
	if cached, ok := catalogCache.Get(key); ok {
		return c.JSON(cached)
	}

	products, total, err := storage.GetProducts(filter)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to fetch products",
		})
	}

	response := ProductListResponse{
		Products: products,
		Total:    int(total),
		Limit:    filter.Limit,
		Offset:   filter.Offset,
	}
	catalogCache.Set(key, response)
	return c.JSON(response)
}

func getProduct(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid product id",
		})
	}

	product, err := storage.GetProduct(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Product not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to fetch product",
		})
	}
	return c.JSON(product)
}

type ProductRequest struct {
	Title         string   `json:"title" validate:"required"`
	Description   string   `json:"description"`
	Price         float64  `json:"price" validate:"gte=0"`
	OriginalPrice float64  `json:"original_price"`
	Condition     string   `json:"condition" validate:"required"`
	Authenticated *bool    `json:"authenticated"`
	CategoryID    uint     `json:"category_id"`
	BrandID       uint     `json:"brand_id"`
	EraID         uint     `json:"era_id"`
	Size          string   `json:"size"`
	Resizable     bool     `json:"resizable"`
	MainImageURL  string   `json:"main_image_url" validate:"required"`
	ImageURLs     []string `json:"image_urls"`
	Featured      bool     `json:"featured"`
	InStock       *bool    `json:"in_stock"`
}

func (r *ProductRequest) toModel() models.Product {
	// New listings are authenticated and in stock unless told otherwise.
	authenticated, inStock := true, true
	if r.Authenticated != nil {
		authenticated = *r.Authenticated
	}
	if r.InStock != nil {
		inStock = *r.InStock
	}
	imageURLs := r.ImageURLs
	if imageURLs == nil {
		imageURLs = []string{}
	}
	return models.Product{
		Title:         r.Title,
		Description:   r.Description,
		Price:         r.Price,
		OriginalPrice: r.OriginalPrice,
		Condition:     r.Condition,
		Authenticated: authenticated,
		CategoryID:    r.CategoryID,
		BrandID:       r.BrandID,
		EraID:         r.EraID,
		Size:          r.Size,
		Resizable:     r.Resizable,
		MainImageURL:  r.MainImageURL,
		ImageURLs:     imageURLs,
		Featured:      r.Featured,
		InStock:       inStock,
	}
}

func createProduct(c *fiber.Ctx) error {
	var req ProductRequest
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

	product := req.toModel()
	if err := storage.CreateProduct(&product); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to create product",
		})
	}

	catalogCache.InvalidatePrefix("products")
	return c.Status(fiber.StatusCreated).JSON(product)
}

func updateProduct(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid product id",
		})
	}

	var req ProductRequest
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

	updates := req.toModel()
	product, err := storage.UpdateProduct(uint(id), &updates)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Product not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to update product",
		})
	}

	catalogCache.InvalidatePrefix("products")
	return c.JSON(product)
}

func deleteProduct(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid product id",
		})
	}

	if err := storage.DeleteProduct(uint(id)); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to delete product",
		})
	}

	catalogCache.InvalidatePrefix("products")
	return c.JSON(fiber.Map{"message": "Product deleted"})
}
