package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Product represents a sellable item in the catalog
type Product struct {
	ID             uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Name           string         `gorm:"size:255;not null" json:"name"`
	Category       string         `gorm:"size:255;not null;index" json:"category"`
	WholesalePrice int64          `gorm:"default:0" json:"wholesale_price"` // Stored in cents
	RetailPrice    int64          `gorm:"default:0" json:"retail_price"`    // Stored in cents
	Quantity       int            `gorm:"default:0" json:"quantity"`
	Brand          *string        `gorm:"size:255" json:"brand,omitempty"`
	Barcode        *string        `gorm:"size:100;index" json:"barcode,omitempty"`
	Description    *string        `gorm:"type:text" json:"description,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Sizes []ProductSize `gorm:"foreignKey:ProductID" json:"sizes,omitempty"`
}

// BeforeCreate generates a UUID before creating a new product
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Product model
func (Product) TableName() string {
	return "products"
}

// GetWholesalePriceDecimal returns the wholesale price as a decimal (for display)
func (p *Product) GetWholesalePriceDecimal() float64 {
	return float64(p.WholesalePrice) / 100
}

// GetRetailPriceDecimal returns the retail price as a decimal (for display)
func (p *Product) GetRetailPriceDecimal() float64 {
	return float64(p.RetailPrice) / 100
}

// SetWholesalePriceFromDecimal sets the wholesale price from a decimal value
func (p *Product) SetWholesalePriceFromDecimal(price float64) {
	p.WholesalePrice = int64(price * 100)
}

// SetRetailPriceFromDecimal sets the retail price from a decimal value
func (p *Product) SetRetailPriceFromDecimal(price float64) {
	p.RetailPrice = int64(price * 100)
}

// ProductJSON is a helper struct for JSON marshaling with decimal prices
type ProductJSON struct {
	ID             uuid.UUID     `json:"id"`
	Name           string        `json:"name"`
	Category       string        `json:"category"`
	WholesalePrice float64       `json:"wholesale_price"` // Decimal value for JSON
	RetailPrice    float64       `json:"retail_price"`    // Decimal value for JSON
	Quantity       int           `json:"quantity"`
	Brand          *string       `json:"brand,omitempty"`
	Barcode        *string       `json:"barcode,omitempty"`
	Description    *string       `json:"description,omitempty"`
	Sizes          []ProductSize `json:"sizes,omitempty"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
}

// MarshalJSON converts Product to JSON with decimal prices
func (p Product) MarshalJSON() ([]byte, error) {
	return json.Marshal(ProductJSON{
		ID:             p.ID,
		Name:           p.Name,
		Category:       p.Category,
		WholesalePrice: p.GetWholesalePriceDecimal(),
		RetailPrice:    p.GetRetailPriceDecimal(),
		Quantity:       p.Quantity,
		Brand:          p.Brand,
		Barcode:        p.Barcode,
		Description:    p.Description,
		Sizes:          p.Sizes,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	})
}

// ProductSize tracks per-size stock for a product
type ProductSize struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"-"`
	ProductID uuid.UUID `gorm:"type:uuid;not null;index" json:"-"`
	Size      string    `gorm:"size:50;not null" json:"size"`
	Quantity  int       `gorm:"default:0" json:"quantity"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`

	// Relationships
	Product Product `gorm:"foreignKey:ProductID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new product size
func (s *ProductSize) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the ProductSize model
func (ProductSize) TableName() string {
	return "product_sizes"
}
