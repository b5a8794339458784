package storage

import (
	"heirloom/db"
	"heirloom/models"
)

// Lookup entities backing the catalog filters.

// GetCategories lists every category with its count of in-stock
// products.
func GetCategories() ([]models.Category, error) {
	var categories []models.Category
	if err := db.DB.Find(&categories).Error; err != nil {
		return nil, err
	}

	var counts []struct {
		CategoryID uint
		N          int
	}
	err := db.DB.Model(&models.Product{}).
		Select("category_id, COUNT(*) AS n").
		Where("in_stock = ?", true).
		Group("category_id").
		Scan(&counts).Error
	if err != nil {
		return nil, err
	}

	byCategory := make(map[uint]int, len(counts))
	for _, c := range counts {
		byCategory[c.CategoryID] = c.N
	}
	for i := range categories {
		categories[i].ProductCount = byCategory[categories[i].ID]
	}
	return categories, nil
}

func CreateCategory(category *models.Category) error {
	category.Products = nil
	return db.DB.Create(category).Error
}

func GetBrands() ([]models.Brand, error) {
	var brands []models.Brand
	err := db.DB.Find(&brands).Error
	return brands, err
}

func CreateBrand(brand *models.Brand) error {
	brand.Products = nil
	return db.DB.Create(brand).Error
}

func GetEras() ([]models.Era, error) {
	var eras []models.Era
	err := db.DB.Find(&eras).Error
	return eras, err
}

func CreateEra(era *models.Era) error {
	era.Products = nil
	return db.DB.Create(era).Error
}

func GetMaterials() ([]models.Material, error) {
	var materials []models.Material
	err := db.DB.Find(&materials).Error
	return materials, err
}

func CreateMaterial(material *models.Material) error {
	return db.DB.Create(material).Error
}
