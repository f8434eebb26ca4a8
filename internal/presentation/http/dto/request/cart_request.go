package request

// AddToCartRequest adds one unit of a product to the cart
type AddToCartRequest struct {
	ProductID string `json:"product_id" binding:"required,uuid"`
}

// UpdateQuantityRequest sets the quantity of a cart line. Zero removes it.
type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// ConfirmSaleRequest confirms the cart into an order
type ConfirmSaleRequest struct {
	CustomerPhone *string `json:"customer_phone" binding:"omitempty,max=50"`
}
