package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Order represents a completed sale. Orders are immutable once created:
// totals and profit are captured from the cart at confirmation time and
// never recomputed.
type Order struct {
	ID            uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	Number        int        `gorm:"uniqueIndex;not null" json:"number"`
	UserID        uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	OrderDate     time.Time  `gorm:"type:date;not null" json:"-"`
	CustomerPhone *string    `gorm:"size:50" json:"customer_phone,omitempty"`
	Total         int64      `gorm:"not null" json:"-"` // Stored in cents, excluded from JSON
	Profit        int64      `gorm:"not null" json:"-"` // Stored in cents, excluded from JSON
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"-"`

	// Relationships
	User  User        `gorm:"foreignKey:UserID" json:"-"`
	Items []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"`
}

// MarshalJSON custom marshaler to convert cents to decimal and emit the
// order date at day granularity
func (o Order) MarshalJSON() ([]byte, error) {
	type Alias Order
	return json.Marshal(&struct {
		Alias
		OrderDate string  `json:"date"`
		Total     float64 `json:"total"`
		Profit    float64 `json:"profit"`
	}{
		Alias:     Alias(o),
		OrderDate: o.OrderDate.Format("2006-01-02"),
		Total:     float64(o.Total) / 100,
		Profit:    float64(o.Profit) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new order
func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Order model
func (Order) TableName() string {
	return "orders"
}

// GetTotalDecimal returns the total as a decimal
func (o *Order) GetTotalDecimal() float64 {
	return float64(o.Total) / 100
}

// GetProfitDecimal returns the profit as a decimal
func (o *Order) GetProfitDecimal() float64 {
	return float64(o.Profit) / 100
}

// OrderItem is a denormalized snapshot of a sold line. Price is the
// extended line price (unit retail price times quantity), not unit price.
type OrderItem struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"-"`
	OrderID   uuid.UUID `gorm:"type:uuid;not null;index" json:"-"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Qty       int       `gorm:"not null" json:"qty"`
	Price     int64     `gorm:"not null" json:"-"` // Extended line price in cents
	CreatedAt time.Time `json:"-"`

	// Relationships
	Order Order `gorm:"foreignKey:OrderID" json:"-"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (i OrderItem) MarshalJSON() ([]byte, error) {
	type Alias OrderItem
	return json.Marshal(&struct {
		Alias
		Price float64 `json:"price"`
	}{
		Alias: Alias(i),
		Price: float64(i.Price) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new order item
func (i *OrderItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the OrderItem model
func (OrderItem) TableName() string {
	return "order_items"
}
