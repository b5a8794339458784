package storage

import (
	"errors"
	"sync"
	"testing"

	"heirloom/db"
	"heirloom/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// TestAddToCart_UpsertLaw: adding the same (user, product) pair twice
// yields one row with the summed quantity, never a duplicate row.
func TestAddToCart_UpsertLaw(t *testing.T) {
	setupTestDB(t)
	product := seedProduct(t, models.Product{Title: "Ring", Price: 100, InStock: true})

	_, err := AddToCart(&models.CartItem{UserID: 1, ProductID: product.ID, Quantity: 1})
	require.NoError(t, err)
	item, err := AddToCart(&models.CartItem{UserID: 1, ProductID: product.ID, Quantity: 1})
	require.NoError(t, err)

	assert.Equal(t, 2, item.Quantity)

	var count int64
	require.NoError(t, db.DB.Model(&models.CartItem{}).Where("user_id = ?", 1).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestAddToCart_SeparateUsersKeepSeparateRows(t *testing.T) {
	setupTestDB(t)
	product := seedProduct(t, models.Product{Title: "Ring", Price: 100, InStock: true})

	_, err := AddToCart(&models.CartItem{UserID: 1, ProductID: product.ID, Quantity: 1})
	require.NoError(t, err)
	item, err := AddToCart(&models.CartItem{UserID: 2, ProductID: product.ID, Quantity: 3})
	require.NoError(t, err)

	assert.Equal(t, 3, item.Quantity)

	var count int64
	require.NoError(t, db.DB.Model(&models.CartItem{}).Count(&count).Error)
	assert.EqualValues(t, 2, count)
}

func TestAddToCart_DefaultsQuantityToOne(t *testing.T) {
	setupTestDB(t)
	product := seedProduct(t, models.Product{Title: "Ring", Price: 100, InStock: true})

	item, err := AddToCart(&models.CartItem{UserID: 1, ProductID: product.ID})
	require.NoError(t, err)
	assert.Equal(t, 1, item.Quantity)
}

// TestAddToCart_ConcurrentAddsDoNotLoseUpdates hammers the upsert from
// several goroutines; the single-statement increment must account for
// every add.
func TestAddToCart_ConcurrentAddsDoNotLoseUpdates(t *testing.T) {
	setupTestDB(t)
	product := seedProduct(t, models.Product{Title: "Ring", Price: 100, InStock: true})

	const adds = 10
	var wg sync.WaitGroup
	for i := 0; i < adds; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := AddToCart(&models.CartItem{UserID: 1, ProductID: product.ID, Quantity: 1})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	items, err := GetCartItems(1)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, adds, items[0].Quantity)
}

func TestUpdateCartItemQuantity_RejectsBelowOne(t *testing.T) {
	setupTestDB(t)
	product := seedProduct(t, models.Product{Title: "Ring", Price: 100, InStock: true})
	item, err := AddToCart(&models.CartItem{UserID: 1, ProductID: product.ID, Quantity: 2})
	require.NoError(t, err)

	_, err = UpdateCartItemQuantity(1, item.ID, 0)
	assert.ErrorIs(t, err, ErrInvalidQuantity)
	_, err = UpdateCartItemQuantity(1, item.ID, -4)
	assert.ErrorIs(t, err, ErrInvalidQuantity)

	// Quantity untouched after the rejections.
	items, err := GetCartItems(1)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
}

func TestUpdateCartItemQuantity_UnknownItem(t *testing.T) {
	setupTestDB(t)

	_, err := UpdateCartItemQuantity(1, 12345, 2)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestUpdateCartItemQuantity_OtherUsersItemIsNotFound(t *testing.T) {
	setupTestDB(t)
	product := seedProduct(t, models.Product{Title: "Ring", Price: 100, InStock: true})
	item, err := AddToCart(&models.CartItem{UserID: 1, ProductID: product.ID, Quantity: 1})
	require.NoError(t, err)

	_, err = UpdateCartItemQuantity(2, item.ID, 5)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

// TestRemoveFromCart_Idempotent: removing the same line twice succeeds
// both times.
func TestRemoveFromCart_Idempotent(t *testing.T) {
	setupTestDB(t)
	product := seedProduct(t, models.Product{Title: "Ring", Price: 100, InStock: true})
	item, err := AddToCart(&models.CartItem{UserID: 1, ProductID: product.ID, Quantity: 1})
	require.NoError(t, err)

	require.NoError(t, RemoveFromCart(1, item.ID))
	require.NoError(t, RemoveFromCart(1, item.ID))

	items, err := GetCartItems(1)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestClearCart(t *testing.T) {
	setupTestDB(t)
	ring := seedProduct(t, models.Product{Title: "Ring", Price: 100, InStock: true})
	band := seedProduct(t, models.Product{Title: "Band", Price: 50, InStock: true})

	_, err := AddToCart(&models.CartItem{UserID: 1, ProductID: ring.ID, Quantity: 1})
	require.NoError(t, err)
	_, err = AddToCart(&models.CartItem{UserID: 1, ProductID: band.ID, Quantity: 1})
	require.NoError(t, err)
	_, err = AddToCart(&models.CartItem{UserID: 2, ProductID: ring.ID, Quantity: 1})
	require.NoError(t, err)

	require.NoError(t, ClearCart(1))

	items, err := GetCartItems(1)
	require.NoError(t, err)
	assert.Empty(t, items)

	// Other carts untouched.
	items, err = GetCartItems(2)
	require.NoError(t, err)
	assert.Len(t, items, 1)
}
