package storage

import (
	"testing"
	"time"

	"heirloom/db"
	"heirloom/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedProduct(t *testing.T, product models.Product) models.Product {
	t.Helper()
	if product.Condition == "" {
		product.Condition = "Excellent"
	}
	if product.MainImageURL == "" {
		product.MainImageURL = "https://example.com/image.jpg"
	}
	require.NoError(t, db.DB.Create(&product).Error)
	return product
}

func floatPtr(v float64) *float64 { return &v }
func boolPtr(v bool) *bool        { return &v }

func TestGetProducts_NeverReturnsOutOfStock(t *testing.T) {
	setupTestDB(t)

	seedProduct(t, models.Product{Title: "In Stock Ring", Price: 100, InStock: true})
	seedProduct(t, models.Product{Title: "Sold Ring", Price: 100, InStock: false})

	products, total, err := GetProducts(ProductFilter{})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, products, 1)
	assert.Equal(t, "In Stock Ring", products[0].Title)

	// Still excluded when filters would otherwise match it.
	products, _, err = GetProducts(ProductFilter{Search: "Sold"})
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestGetProducts_ScalarFilters(t *testing.T) {
	setupTestDB(t)

	seedProduct(t, models.Product{Title: "Cartier Ring", Price: 100, InStock: true, CategoryID: 1, BrandID: 2, EraID: 3})
	seedProduct(t, models.Product{Title: "Tiffany Ring", Price: 100, InStock: true, CategoryID: 1, BrandID: 5, EraID: 3})
	seedProduct(t, models.Product{Title: "Tiffany Brooch", Price: 100, InStock: true, CategoryID: 4, BrandID: 5, EraID: 6, Featured: true})

	products, total, err := GetProducts(ProductFilter{CategoryID: 1})
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	assert.Len(t, products, 2)

	products, _, err = GetProducts(ProductFilter{CategoryID: 1, BrandID: 5})
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Tiffany Ring", products[0].Title)

	featured := true
	products, _, err = GetProducts(ProductFilter{Featured: &featured})
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Tiffany Brooch", products[0].Title)
}

func TestGetProducts_PriceRangeInclusive(t *testing.T) {
	setupTestDB(t)

	seedProduct(t, models.Product{Title: "Cheap", Price: 100, InStock: true})
	seedProduct(t, models.Product{Title: "Mid", Price: 500, InStock: true})
	seedProduct(t, models.Product{Title: "Dear", Price: 900, InStock: true})

	products, total, err := GetProducts(ProductFilter{PriceMin: floatPtr(100), PriceMax: floatPtr(500)})
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	assert.Len(t, products, 2)

	products, _, err = GetProducts(ProductFilter{PriceMin: floatPtr(500.01)})
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Dear", products[0].Title)
}

func TestGetProducts_InvertedPriceRangeIsEmptyNotError(t *testing.T) {
	setupTestDB(t)

	seedProduct(t, models.Product{Title: "Ring", Price: 300, InStock: true})

	products, total, err := GetProducts(ProductFilter{PriceMin: floatPtr(400), PriceMax: floatPtr(100)})
	require.NoError(t, err)
	assert.EqualValues(t, 0, total)
	assert.Empty(t, products)
}

func TestGetProducts_SearchTitleOrDescription(t *testing.T) {
	setupTestDB(t)

	seedProduct(t, models.Product{Title: "Diamond Solitaire Ring", Price: 100, InStock: true})
	seedProduct(t, models.Product{
		Title:       "Estate Band",
		Description: "White gold band with a hidden diamond accent",
		Price:       100, InStock: true,
	})
	seedProduct(t, models.Product{Title: "Pearl Necklace", Price: 100, InStock: true})

	products, total, err := GetProducts(ProductFilter{Search: "diamond"})
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	titles := []string{products[0].Title, products[1].Title}
	assert.Contains(t, titles, "Diamond Solitaire Ring")
	assert.Contains(t, titles, "Estate Band")
}

func TestGetProducts_SearchTreatsWildcardsLiterally(t *testing.T) {
	setupTestDB(t)

	seedProduct(t, models.Product{Title: "50% Off Vintage Brooch", Price: 100, InStock: true})
	seedProduct(t, models.Product{Title: "509 Limited Brooch", Price: 100, InStock: true})
	seedProduct(t, models.Product{Title: "gold_band", Price: 100, InStock: true})
	seedProduct(t, models.Product{Title: "goldXband", Price: 100, InStock: true})

	products, _, err := GetProducts(ProductFilter{Search: "50%"})
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "50% Off Vintage Brooch", products[0].Title)

	products, _, err = GetProducts(ProductFilter{Search: "gold_"})
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "gold_band", products[0].Title)
}

func TestGetProducts_NewestFirstStableOrder(t *testing.T) {
	setupTestDB(t)

	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	old := seedProduct(t, models.Product{Title: "Oldest", Price: 100, InStock: true, CreatedAt: base})
	tieA := seedProduct(t, models.Product{Title: "Tie A", Price: 100, InStock: true, CreatedAt: base.Add(time.Hour)})
	tieB := seedProduct(t, models.Product{Title: "Tie B", Price: 100, InStock: true, CreatedAt: base.Add(time.Hour)})
	newest := seedProduct(t, models.Product{Title: "Newest", Price: 100, InStock: true, CreatedAt: base.Add(2 * time.Hour)})

	products, _, err := GetProducts(ProductFilter{})
	require.NoError(t, err)
	require.Len(t, products, 4)

	assert.Equal(t, newest.ID, products[0].ID)
	// Equal timestamps keep insertion order.
	assert.Equal(t, tieA.ID, products[1].ID)
	assert.Equal(t, tieB.ID, products[2].ID)
	assert.Equal(t, old.ID, products[3].ID)
}

// TestGetProducts_PaginationWalk concatenates pages until the offset
// passes the total and checks every product appears exactly once, in
// order.
func TestGetProducts_PaginationWalk(t *testing.T) {
	setupTestDB(t)

	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 7; i++ {
		seedProduct(t, models.Product{
			Title:     "Piece",
			Price:     100,
			InStock:   true,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		})
	}

	const limit = 3
	var seen []uint
	for offset := 0; ; offset += limit {
		products, total, err := GetProducts(ProductFilter{Limit: limit, Offset: offset})
		require.NoError(t, err)
		require.EqualValues(t, 7, total)
		for _, p := range products {
			seen = append(seen, p.ID)
		}
		if offset+limit >= int(total) {
			break
		}
	}

	require.Len(t, seen, 7)
	unique := make(map[uint]bool)
	for i, id := range seen {
		assert.False(t, unique[id], "product %d appeared twice", id)
		unique[id] = true
		if i > 0 {
			assert.Less(t, id, seen[i-1], "newest-first means descending ids for ascending timestamps")
		}
	}
}

func TestGetProducts_LimitDefaultsAndCap(t *testing.T) {
	setupTestDB(t)

	for i := 0; i < 25; i++ {
		seedProduct(t, models.Product{Title: "Piece", Price: 100, InStock: true})
	}

	products, total, err := GetProducts(ProductFilter{})
	require.NoError(t, err)
	assert.EqualValues(t, 25, total)
	assert.Len(t, products, 20, "default page size")

	products, _, err = GetProducts(ProductFilter{Limit: 1000})
	require.NoError(t, err)
	assert.Len(t, products, 25, "cap still returns everything when fewer rows than cap")
}

func TestGetProduct_NotFound(t *testing.T) {
	setupTestDB(t)

	_, err := GetProduct(9999)
	assert.Error(t, err)
}
