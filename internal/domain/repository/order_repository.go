package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/elitesports/pos-api/internal/domain/entity"
	"github.com/elitesports/pos-api/pkg/pagination"
)

// OrderRepository defines the interface for order history operations.
// The history is append-only: orders are created with their items and
// never updated afterwards.
type OrderRepository interface {
	// Create persists an order together with its line items
	Create(ctx context.Context, order *entity.Order) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	GetByNumber(ctx context.Context, number int) (*entity.Order, error)
	// NextNumber returns the next order number: one above the highest
	// existing number, never below 101.
	NextNumber(ctx context.Context) (int, error)
	// List returns orders most-recent-first (highest number first)
	List(ctx context.Context, params *OrderFilterParams) ([]entity.Order, int64, error)
}

// OrderFilterParams contains filtering parameters for history queries
type OrderFilterParams struct {
	Pagination    *pagination.PaginationParams
	CustomerPhone string
	StartDate     *time.Time
	EndDate       *time.Time
}
