package request

// ProductSizeRequest is one per-size stock entry
type ProductSizeRequest struct {
	Size     string `json:"size" binding:"required,max=50"`
	Quantity int    `json:"quantity" binding:"min=0"`
}

// CreateProductRequest represents a product creation request. Prices are
// decimals; the API stores cents internally.
type CreateProductRequest struct {
	Name           string               `json:"name" binding:"required,min=2,max=255"`
	Category       string               `json:"category" binding:"required,min=2,max=100"`
	WholesalePrice float64              `json:"wholesale_price" binding:"min=0"`
	RetailPrice    float64              `json:"retail_price" binding:"min=0"`
	Quantity       int                  `json:"quantity" binding:"min=0"`
	Brand          *string              `json:"brand" binding:"omitempty,max=100"`
	Barcode        *string              `json:"barcode" binding:"omitempty,max=100"`
	Description    *string              `json:"description"`
	Sizes          []ProductSizeRequest `json:"sizes" binding:"omitempty,dive"`
}

// UpdateProductRequest represents a product update request; omitted fields
// are left unchanged
type UpdateProductRequest struct {
	Name           *string  `json:"name" binding:"omitempty,min=2,max=255"`
	Category       *string  `json:"category" binding:"omitempty,min=2,max=100"`
	WholesalePrice *float64 `json:"wholesale_price" binding:"omitempty,min=0"`
	RetailPrice    *float64 `json:"retail_price" binding:"omitempty,min=0"`
	Quantity       *int     `json:"quantity" binding:"omitempty,min=0"`
	Brand          *string  `json:"brand" binding:"omitempty,max=100"`
	Barcode        *string  `json:"barcode" binding:"omitempty,max=100"`
	Description    *string  `json:"description"`
}

// ProductFilterRequest represents product filter parameters
type ProductFilterRequest struct {
	Search    string `form:"search"`
	Category  string `form:"category"`
	InStock   bool   `form:"in_stock"`
	SortBy    string `form:"sort_by"`
	SortOrder string `form:"sort_order"`
	Page      int    `form:"page"`
	PerPage   int    `form:"per_page"`
}
