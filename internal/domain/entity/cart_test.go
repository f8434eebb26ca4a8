package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProduct(name string, wholesale, retail int64, quantity int) *Product {
	return &Product{
		ID:             uuid.New(),
		Name:           name,
		Category:       "Bats",
		WholesalePrice: wholesale,
		RetailPrice:    retail,
		Quantity:       quantity,
	}
}

func TestCartAddProduct(t *testing.T) {
	cart := NewCart(uuid.New())
	bat := newTestProduct("Cricket Bat", 80000, 120000, 10)

	cart.AddProduct(bat)

	require.Len(t, cart.Items, 1)
	assert.Equal(t, 1, cart.Items[0].CartQuantity)
	assert.Equal(t, bat.RetailPrice, cart.Items[0].RetailPrice)
	assert.Equal(t, 10, cart.Items[0].Available)

	cart.AddProduct(bat)

	require.Len(t, cart.Items, 1)
	assert.Equal(t, 2, cart.Items[0].CartQuantity)
}

func TestCartAddProductOutOfStock(t *testing.T) {
	cart := NewCart(uuid.New())
	soldOut := newTestProduct("Football", 40000, 65000, 0)

	cart.AddProduct(soldOut)

	assert.True(t, cart.IsEmpty())
}

func TestCartAddProductCapsAtStock(t *testing.T) {
	cart := NewCart(uuid.New())
	racket := newTestProduct("Tennis Racket", 150000, 220000, 2)

	cart.AddProduct(racket)
	cart.AddProduct(racket)
	// Third add is a silent no-op
	cart.AddProduct(racket)

	require.Len(t, cart.Items, 1)
	assert.Equal(t, 2, cart.Items[0].CartQuantity)
}

func TestCartSetQuantity(t *testing.T) {
	cart := NewCart(uuid.New())
	bat := newTestProduct("Cricket Bat", 80000, 120000, 10)
	cart.AddProduct(bat)

	cart.SetQuantity(bat.ID, 5, bat.Quantity)
	assert.Equal(t, 5, cart.Items[0].CartQuantity)

	// Requests above available stock clamp rather than error
	cart.SetQuantity(bat.ID, 50, bat.Quantity)
	assert.Equal(t, 10, cart.Items[0].CartQuantity)
}

func TestCartSetQuantityZeroRemovesLine(t *testing.T) {
	cart := NewCart(uuid.New())
	bat := newTestProduct("Cricket Bat", 80000, 120000, 10)
	cart.AddProduct(bat)

	cart.SetQuantity(bat.ID, 0, bat.Quantity)

	assert.True(t, cart.IsEmpty())
}

func TestCartSetQuantityUnknownProduct(t *testing.T) {
	cart := NewCart(uuid.New())
	bat := newTestProduct("Cricket Bat", 80000, 120000, 10)
	cart.AddProduct(bat)

	cart.SetQuantity(uuid.New(), 3, 10)

	require.Len(t, cart.Items, 1)
	assert.Equal(t, 1, cart.Items[0].CartQuantity)
}

func TestCartRemove(t *testing.T) {
	cart := NewCart(uuid.New())
	bat := newTestProduct("Cricket Bat", 80000, 120000, 10)
	ball := newTestProduct("Football", 40000, 65000, 15)
	cart.AddProduct(bat)
	cart.AddProduct(ball)

	cart.Remove(bat.ID)

	require.Len(t, cart.Items, 1)
	assert.Equal(t, ball.ID, cart.Items[0].ProductID)

	// Removing an absent line is a no-op
	cart.Remove(bat.ID)
	assert.Len(t, cart.Items, 1)
}

func TestCartTotals(t *testing.T) {
	cart := NewCart(uuid.New())
	// Wholesale 100.00, retail 200.00, two units
	item := newTestProduct("Basketball", 10000, 20000, 5)
	cart.AddProduct(item)
	cart.SetQuantity(item.ID, 2, item.Quantity)

	assert.Equal(t, int64(40000), cart.Total())
	assert.Equal(t, int64(20000), cart.Profit())
	assert.Equal(t, 2, cart.ItemCount())
}

func TestCartPricesAreSnapshots(t *testing.T) {
	cart := NewCart(uuid.New())
	bat := newTestProduct("Cricket Bat", 80000, 120000, 10)
	cart.AddProduct(bat)

	// A later catalog price change must not move the in-progress checkout
	bat.RetailPrice = 999999

	assert.Equal(t, int64(120000), cart.Total())
}

func TestCartClear(t *testing.T) {
	cart := NewCart(uuid.New())
	cart.AddProduct(newTestProduct("Cricket Bat", 80000, 120000, 10))
	cart.AddProduct(newTestProduct("Football", 40000, 65000, 15))

	cart.Clear()

	assert.True(t, cart.IsEmpty())
	assert.Equal(t, int64(0), cart.Total())
}
