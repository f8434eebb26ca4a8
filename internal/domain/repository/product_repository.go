package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/elitesports/pos-api/internal/domain/entity"
	"github.com/elitesports/pos-api/pkg/pagination"
)

// ProductRepository defines the interface for catalog data operations
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	CreateBatch(ctx context.Context, products []entity.Product) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	// GetByIDs retrieves multiple products in a single query (prevents N+1)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Product, error)
	GetByBarcode(ctx context.Context, barcode string) (*entity.Product, error)
	GetByName(ctx context.Context, name string) (*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *ProductFilterParams) ([]entity.Product, int64, error)
	ListCategories(ctx context.Context) ([]string, error)
	GetLowStock(ctx context.Context, threshold int) ([]entity.Product, error)
	UpdateQuantity(ctx context.Context, id uuid.UUID, quantity int) error
	// AtomicDecrementBatch atomically decrements stock for multiple products.
	// Returns the product IDs that failed (insufficient stock). If any product
	// fails, the entire transaction is rolled back and no stock changes.
	AtomicDecrementBatch(ctx context.Context, decrements map[uuid.UUID]int) (failedIDs []uuid.UUID, err error)
	// AtomicIncrementBatch atomically increments stock for multiple products
	// (compensation for a failed order write).
	AtomicIncrementBatch(ctx context.Context, increments map[uuid.UUID]int) error
}

// ProductFilterParams contains filtering parameters for catalog queries
type ProductFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
	Category   string
	InStock    bool // Only products with quantity > 0
	SortBy     string
	SortOrder  string
}
