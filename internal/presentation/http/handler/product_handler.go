package handler

import (
	"io"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/elitesports/pos-api/internal/application/service"
	"github.com/elitesports/pos-api/internal/domain/repository"
	"github.com/elitesports/pos-api/internal/presentation/http/dto/request"
	"github.com/elitesports/pos-api/internal/presentation/http/dto/response"
	"github.com/elitesports/pos-api/pkg/pagination"
)

// Uploaded spreadsheets larger than this are rejected outright
const maxUploadBytes = 10 << 20

// ProductHandler handles catalog HTTP requests
type ProductHandler struct {
	productService *service.ProductService
	uploadService  *service.UploadService
}

// NewProductHandler creates a new product handler
func NewProductHandler(productService *service.ProductService, uploadService *service.UploadService) *ProductHandler {
	return &ProductHandler{
		productService: productService,
		uploadService:  uploadService,
	}
}

// List handles listing products with filtering and pagination
func (h *ProductHandler) List(c *gin.Context) {
	var filter request.ProductFilterRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	params := &repository.ProductFilterParams{
		Pagination: &pagination.PaginationParams{
			Page:    filter.Page,
			PerPage: filter.PerPage,
		},
		Search:    filter.Search,
		Category:  filter.Category,
		InStock:   filter.InStock,
		SortBy:    filter.SortBy,
		SortOrder: filter.SortOrder,
	}
	params.Pagination.Validate()

	result, err := h.productService.ListProducts(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Products retrieved successfully", result)
}

// Create handles creating a product
func (h *ProductHandler) Create(c *gin.Context) {
	var req request.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	input := &service.CreateProductInput{
		Name:           req.Name,
		Category:       req.Category,
		WholesalePrice: req.WholesalePrice,
		RetailPrice:    req.RetailPrice,
		Quantity:       req.Quantity,
		Brand:          req.Brand,
		Barcode:        req.Barcode,
		Description:    req.Description,
	}
	for _, size := range req.Sizes {
		input.Sizes = append(input.Sizes, service.ProductSizeInput{
			Size:     size.Size,
			Quantity: size.Quantity,
		})
	}

	product, err := h.productService.CreateProduct(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Product created successfully", product)
}

// Get handles getting a single product
func (h *ProductHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid product ID")
		return
	}

	product, err := h.productService.GetProduct(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Product retrieved successfully", product)
}

// Update handles updating a product
func (h *ProductHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid product ID")
		return
	}

	var req request.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	product, err := h.productService.UpdateProduct(c.Request.Context(), id, &service.UpdateProductInput{
		Name:           req.Name,
		Category:       req.Category,
		WholesalePrice: req.WholesalePrice,
		RetailPrice:    req.RetailPrice,
		Quantity:       req.Quantity,
		Brand:          req.Brand,
		Barcode:        req.Barcode,
		Description:    req.Description,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Product updated successfully", product)
}

// Delete handles deleting a product
func (h *ProductHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid product ID")
		return
	}

	if err := h.productService.DeleteProduct(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// ListCategories handles listing the distinct catalog categories
func (h *ProductHandler) ListCategories(c *gin.Context) {
	categories, err := h.productService.ListCategories(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Categories retrieved successfully", categories)
}

// GetLowStock handles listing products at or below a stock threshold
func (h *ProductHandler) GetLowStock(c *gin.Context) {
	threshold := 5
	if t := c.Query("threshold"); t != "" {
		parsed, err := strconv.Atoi(t)
		if err != nil {
			response.BadRequest(c, "Invalid threshold")
			return
		}
		threshold = parsed
	}

	products, err := h.productService.GetLowStock(c.Request.Context(), threshold)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Low stock products retrieved successfully", products)
}

// BulkUpload handles importing products from an xlsx file
func (h *ProductHandler) BulkUpload(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "A spreadsheet file is required")
		return
	}
	if fileHeader.Size > maxUploadBytes {
		response.BadRequest(c, "File is too large")
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		response.BadRequest(c, "Could not open uploaded file")
		return
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		response.BadRequest(c, "Could not read uploaded file")
		return
	}

	batch, err := h.uploadService.ProcessUpload(c.Request.Context(), *userID, fileHeader.Filename, data)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Products imported successfully", batch)
}

// ListUploadBatches handles listing past bulk uploads
func (h *ProductHandler) ListUploadBatches(c *gin.Context) {
	batches, err := h.uploadService.ListBatches(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Upload batches retrieved successfully", batches)
}

// RollbackUpload handles reversing a bulk upload
func (h *ProductHandler) RollbackUpload(c *gin.Context) {
	uploadID := c.Param("uploadId")
	if uploadID == "" {
		response.BadRequest(c, "Upload ID is required")
		return
	}

	batch, err := h.uploadService.RollbackUpload(c.Request.Context(), uploadID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Upload rolled back successfully", batch)
}
