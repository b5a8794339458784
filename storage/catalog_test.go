package storage

import (
	"testing"

	"heirloom/db"
	"heirloom/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedCategory(t *testing.T, name, slug string) models.Category {
	t.Helper()
	category := models.Category{Name: name, Slug: slug}
	require.NoError(t, db.DB.Create(&category).Error)
	return category
}

// TestGetCategories_ProductCount: the count reflects the in-stock
// catalog at read time; sold items drop out of it.
func TestGetCategories_ProductCount(t *testing.T) {
	setupTestDB(t)

	rings := seedCategory(t, "Rings", "rings")
	brooches := seedCategory(t, "Brooches", "brooches")
	seedCategory(t, "Watches", "watches")

	seedProduct(t, models.Product{Title: "Ring A", Price: 100, InStock: true, CategoryID: rings.ID})
	seedProduct(t, models.Product{Title: "Ring B", Price: 100, InStock: true, CategoryID: rings.ID})
	seedProduct(t, models.Product{Title: "Sold Ring", Price: 100, InStock: false, CategoryID: rings.ID})
	seedProduct(t, models.Product{Title: "Brooch", Price: 100, InStock: true, CategoryID: brooches.ID})

	categories, err := GetCategories()
	require.NoError(t, err)
	require.Len(t, categories, 3)

	byName := make(map[string]int, len(categories))
	for _, c := range categories {
		byName[c.Name] = c.ProductCount
	}
	assert.Equal(t, 2, byName["Rings"], "sold ring is not counted")
	assert.Equal(t, 1, byName["Brooches"])
	assert.Equal(t, 0, byName["Watches"])
}
