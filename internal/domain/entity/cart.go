package entity

import (
	"time"

	"github.com/google/uuid"
)

// CartItem is a product snapshot plus the quantity requested for checkout.
// Prices are captured at the time the line is added so a later catalog
// price change does not move an in-progress checkout.
type CartItem struct {
	ProductID      uuid.UUID `json:"product_id"`
	Name           string    `json:"name"`
	Category       string    `json:"category"`
	WholesalePrice int64     `json:"wholesale_price"` // Cents
	RetailPrice    int64     `json:"retail_price"`    // Cents
	Available      int       `json:"available"`       // Catalog quantity at snapshot time
	CartQuantity   int       `json:"cart_quantity"`
}

// LineTotal returns the extended retail price for the line in cents
func (i *CartItem) LineTotal() int64 {
	return i.RetailPrice * int64(i.CartQuantity)
}

// LineProfit returns the margin for the line in cents
func (i *CartItem) LineProfit() int64 {
	return (i.RetailPrice - i.WholesalePrice) * int64(i.CartQuantity)
}

// Cart is the in-progress checkout for a single user. It is stored as one
// blob per user, so every mutation rewrites the whole cart. All operations
// mutate in place and never fail; invalid requests degrade to no-ops.
type Cart struct {
	UserID    uuid.UUID  `json:"user_id"`
	Items     []CartItem `json:"items"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// NewCart creates an empty cart for a user
func NewCart(userID uuid.UUID) *Cart {
	return &Cart{UserID: userID, Items: []CartItem{}}
}

// AddProduct adds one unit of a product to the cart. Out-of-stock products
// are ignored. An existing line increments only while the requested
// quantity is below the available stock; the cap is silent.
func (c *Cart) AddProduct(p *Product) {
	if p.Quantity == 0 {
		return
	}

	for i := range c.Items {
		if c.Items[i].ProductID == p.ID {
			if c.Items[i].CartQuantity < p.Quantity {
				c.Items[i].CartQuantity++
				c.Items[i].Available = p.Quantity
				c.touch()
			}
			return
		}
	}

	c.Items = append(c.Items, CartItem{
		ProductID:      p.ID,
		Name:           p.Name,
		Category:       p.Category,
		WholesalePrice: p.WholesalePrice,
		RetailPrice:    p.RetailPrice,
		Available:      p.Quantity,
		CartQuantity:   1,
	})
	c.touch()
}

// SetQuantity sets the requested quantity for a line. Zero or negative
// removes the line. Requests above the available stock are clamped so a
// stale cart cannot ask for more than the catalog holds.
func (c *Cart) SetQuantity(productID uuid.UUID, quantity int, available int) {
	if quantity <= 0 {
		c.Remove(productID)
		return
	}

	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			if quantity > available {
				quantity = available
			}
			c.Items[i].CartQuantity = quantity
			c.Items[i].Available = available
			c.touch()
			return
		}
	}
}

// Remove deletes a line from the cart, no-op when absent
func (c *Cart) Remove(productID uuid.UUID) {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			c.touch()
			return
		}
	}
}

// IsEmpty reports whether the cart has no lines
func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// Clear removes all lines
func (c *Cart) Clear() {
	c.Items = []CartItem{}
	c.touch()
}

// ItemCount returns the total number of units across all lines
func (c *Cart) ItemCount() int {
	count := 0
	for i := range c.Items {
		count += c.Items[i].CartQuantity
	}
	return count
}

// Total returns the cart total in cents
func (c *Cart) Total() int64 {
	var total int64
	for i := range c.Items {
		total += c.Items[i].LineTotal()
	}
	return total
}

// Profit returns the cart margin in cents
func (c *Cart) Profit() int64 {
	var profit int64
	for i := range c.Items {
		profit += c.Items[i].LineProfit()
	}
	return profit
}

func (c *Cart) touch() {
	c.UpdatedAt = time.Now()
}
