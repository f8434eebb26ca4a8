package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/elitesports/pos-api/internal/application/service"
	"github.com/elitesports/pos-api/internal/presentation/http/dto/request"
	"github.com/elitesports/pos-api/internal/presentation/http/dto/response"
)

// CartHandler handles cart HTTP requests. Every cart operation responds
// with the full updated cart so the register UI can redraw from it.
type CartHandler struct {
	cartService *service.CartService
	saleService *service.SaleService
}

// NewCartHandler creates a new cart handler
func NewCartHandler(cartService *service.CartService, saleService *service.SaleService) *CartHandler {
	return &CartHandler{
		cartService: cartService,
		saleService: saleService,
	}
}

// Get handles retrieving the current cart
func (h *CartHandler) Get(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	cart, err := h.cartService.GetCart(c.Request.Context(), *userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Cart retrieved successfully", cart)
}

// AddItem handles adding one unit of a product to the cart
func (h *CartHandler) AddItem(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		response.BadRequest(c, "Invalid product ID")
		return
	}

	cart, err := h.cartService.AddToCart(c.Request.Context(), *userID, productID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Item added to cart", cart)
}

// UpdateQuantity handles setting the quantity of a cart line
func (h *CartHandler) UpdateQuantity(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	productID, err := uuid.Parse(c.Param("productId"))
	if err != nil {
		response.BadRequest(c, "Invalid product ID")
		return
	}

	var req request.UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	cart, err := h.cartService.UpdateQuantity(c.Request.Context(), *userID, productID, req.Quantity)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Cart updated successfully", cart)
}

// RemoveItem handles removing a line from the cart
func (h *CartHandler) RemoveItem(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	productID, err := uuid.Parse(c.Param("productId"))
	if err != nil {
		response.BadRequest(c, "Invalid product ID")
		return
	}

	cart, err := h.cartService.RemoveItem(c.Request.Context(), *userID, productID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Item removed from cart", cart)
}

// Clear handles emptying the cart
func (h *CartHandler) Clear(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	if err := h.cartService.ClearCart(c.Request.Context(), *userID); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// Confirm handles turning the cart into an order. Confirming an empty
// cart succeeds without creating anything.
func (h *CartHandler) Confirm(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	// The body is optional; confirming without customer details is common
	var req request.ConfirmSaleRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			response.BadRequest(c, "Invalid request body: "+err.Error())
			return
		}
	}

	order, err := h.saleService.ConfirmSale(c.Request.Context(), &service.ConfirmSaleInput{
		UserID:        *userID,
		CustomerPhone: req.CustomerPhone,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	if order == nil {
		response.OK(c, "Cart is empty, nothing to confirm", nil)
		return
	}

	response.Created(c, "Sale confirmed successfully", order)
}
