package storage

import (
	"strings"

	"heirloom/db"
	"heirloom/models"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// ProductFilter narrows the catalog query. Zero-value fields are ignored;
// pointer fields distinguish "absent" from a legitimate zero.
type ProductFilter struct {
	CategoryID  uint
	BrandID     uint
	EraID       uint
	MaterialIDs []uint
	PriceMin    *float64
	PriceMax    *float64
	Search      string
	Featured    *bool
	Limit       int
	Offset      int
}

func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}

// NormalizePage clamps a requested page to the values a query will
// actually use: the default page size when unset, the cap when above it.
// Handlers echo these back so clients see the effective page, not the
// requested one.
func NormalizePage(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

// GetProducts returns one page of the catalog plus the total match count
// before pagination. Only in-stock products are ever returned. Results are
// newest-first; ties on created_at keep insertion order.
func GetProducts(filter ProductFilter) ([]models.Product, int64, error) {
	q := db.DB.Model(&models.Product{}).Where("in_stock = ?", true)

	if filter.CategoryID != 0 {
		q = q.Where("category_id = ?", filter.CategoryID)
	}
	if filter.BrandID != 0 {
		q = q.Where("brand_id = ?", filter.BrandID)
	}
	if filter.EraID != 0 {
		q = q.Where("era_id = ?", filter.EraID)
	}
	if filter.PriceMin != nil {
		q = q.Where("price >= ?", *filter.PriceMin)
	}
	if filter.PriceMax != nil {
		q = q.Where("price <= ?", *filter.PriceMax)
	}
	if filter.Featured != nil {
		q = q.Where("featured = ?", *filter.Featured)
	}
	if filter.Search != "" {
		// Wildcards in the search string must match literally.
		pattern := "%" + escapeLike(strings.ToLower(filter.Search)) + "%"
		q = q.Where(
			db.DB.Where("LOWER(title) LIKE ? ESCAPE '\\'", pattern).
				Or("LOWER(description) LIKE ? ESCAPE '\\'", pattern),
		)
	}
	// TODO: apply MaterialIDs through the product_materials join once the
	// storefront exposes material facets; the join table already exists.

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	limit, offset := NormalizePage(filter.Limit, filter.Offset)

	var products []models.Product
	if err := q.Preload("Category").Preload("Brand").Preload("Era").
		Order("created_at DESC, id").
		Limit(limit).Offset(offset).
		Find(&products).Error; err != nil {
		return nil, 0, err
	}

	return products, total, nil
}

// GetProduct returns a single product with its lookups preloaded.
// Returns gorm.ErrRecordNotFound if the id does not exist.
func GetProduct(id uint) (*models.Product, error) {
	var product models.Product
	if err := db.DB.Preload("Category").Preload("Brand").Preload("Era").
		Preload("Materials").First(&product, id).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func CreateProduct(product *models.Product) error {
	return db.DB.Create(product).Error
}

func UpdateProduct(id uint, updates *models.Product) (*models.Product, error) {
	var existing models.Product
	if err := db.DB.First(&existing, id).Error; err != nil {
		return nil, err
	}
	// Select forces zero values through, so in_stock=false (item sold)
	// and cleared prices persist.
	err := db.DB.Model(&existing).
		Select("Title", "Description", "Price", "OriginalPrice", "Condition",
			"Authenticated", "CategoryID", "BrandID", "EraID", "Size", "Resizable",
			"MainImageURL", "ImageURLs", "Featured", "InStock").
		Updates(updates).Error
	if err != nil {
		return nil, err
	}
	return GetProduct(id)
}

func DeleteProduct(id uint) error {
	return db.DB.Delete(&models.Product{}, id).Error
}
