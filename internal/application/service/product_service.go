package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/elitesports/pos-api/internal/domain/entity"
	"github.com/elitesports/pos-api/internal/domain/repository"
	"github.com/elitesports/pos-api/pkg/apperror"
	"github.com/elitesports/pos-api/pkg/pagination"
)

// ProductService handles catalog management
type ProductService struct {
	productRepo repository.ProductRepository
}

// NewProductService creates a new product service
func NewProductService(productRepo repository.ProductRepository) *ProductService {
	return &ProductService{productRepo: productRepo}
}

// ProductSizeInput represents one per-size stock entry
type ProductSizeInput struct {
	Size     string
	Quantity int
}

// CreateProductInput represents the create product input
type CreateProductInput struct {
	Name           string
	Category       string
	WholesalePrice float64 // Decimal, converted to cents internally
	RetailPrice    float64
	Quantity       int
	Brand          *string
	Barcode        *string
	Description    *string
	Sizes          []ProductSizeInput
}

// CreateProduct adds a product to the catalog
func (s *ProductService) CreateProduct(ctx context.Context, input *CreateProductInput) (*entity.Product, error) {
	existing, err := s.productRepo.GetByName(ctx, input.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("A product with this name already exists")
	}

	if input.Barcode != nil && *input.Barcode != "" {
		existing, err = s.productRepo.GetByBarcode(ctx, *input.Barcode)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, apperror.NewConflictError("A product with this barcode already exists")
		}
	}

	product := &entity.Product{
		Name:        input.Name,
		Category:    input.Category,
		Quantity:    input.Quantity,
		Brand:       input.Brand,
		Barcode:     input.Barcode,
		Description: input.Description,
	}
	product.SetWholesalePriceFromDecimal(input.WholesalePrice)
	product.SetRetailPriceFromDecimal(input.RetailPrice)

	// With per-size stock the product total is the sum over sizes
	if len(input.Sizes) > 0 {
		total := 0
		for _, size := range input.Sizes {
			product.Sizes = append(product.Sizes, entity.ProductSize{
				Size:     size.Size,
				Quantity: size.Quantity,
			})
			total += size.Quantity
		}
		product.Quantity = total
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// UpdateProductInput represents the update product input; nil fields are
// left unchanged
type UpdateProductInput struct {
	Name           *string
	Category       *string
	WholesalePrice *float64
	RetailPrice    *float64
	Quantity       *int
	Brand          *string
	Barcode        *string
	Description    *string
}

// UpdateProduct updates catalog fields on a product
func (s *ProductService) UpdateProduct(ctx context.Context, id uuid.UUID, input *UpdateProductInput) (*entity.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}

	if input.Name != nil {
		product.Name = *input.Name
	}
	if input.Category != nil {
		product.Category = *input.Category
	}
	if input.WholesalePrice != nil {
		product.SetWholesalePriceFromDecimal(*input.WholesalePrice)
	}
	if input.RetailPrice != nil {
		product.SetRetailPriceFromDecimal(*input.RetailPrice)
	}
	if input.Quantity != nil {
		product.Quantity = *input.Quantity
	}
	if input.Brand != nil {
		product.Brand = input.Brand
	}
	if input.Barcode != nil {
		product.Barcode = input.Barcode
	}
	if input.Description != nil {
		product.Description = input.Description
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// GetProduct retrieves a product by ID
func (s *ProductService) GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}
	return product, nil
}

// DeleteProduct removes a product from the catalog
func (s *ProductService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if product == nil {
		return apperror.NewNotFoundError("Product")
	}
	return s.productRepo.Delete(ctx, id)
}

// ListProducts lists the catalog with filtering
func (s *ProductService) ListProducts(ctx context.Context, params *repository.ProductFilterParams) (*pagination.PaginatedResult[entity.Product], error) {
	products, total, err := s.productRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(products, pag), nil
}

// ListCategories returns the distinct categories present in the catalog
func (s *ProductService) ListCategories(ctx context.Context) ([]string, error) {
	return s.productRepo.ListCategories(ctx)
}

// GetLowStock returns products at or below the given quantity threshold
func (s *ProductService) GetLowStock(ctx context.Context, threshold int) ([]entity.Product, error) {
	if threshold < 0 {
		threshold = 0
	}
	return s.productRepo.GetLowStock(ctx, threshold)
}
