package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/elitesports/pos-api/internal/domain/entity"
	domainRepo "github.com/elitesports/pos-api/internal/domain/repository"
)

type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository creates a new order repository
func NewOrderRepository(db *gorm.DB) domainRepo.OrderRepository {
	return &orderRepository{db: db}
}

// Create persists the order and its items in one transaction
func (r *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	return r.db.WithContext(ctx).Create(order).Error
}

func (r *orderRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var order entity.Order
	err := r.db.WithContext(ctx).
		Preload("Items").
		First(&order, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &order, err
}

func (r *orderRepository) GetByNumber(ctx context.Context, number int) (*entity.Order, error) {
	var order entity.Order
	err := r.db.WithContext(ctx).
		Preload("Items").
		First(&order, "number = ?", number).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &order, err
}

// NextNumber returns one above the highest existing order number, with a
// floor so the first order of an empty history is numbered 101.
func (r *orderRepository) NextNumber(ctx context.Context) (int, error) {
	var maxNumber int
	err := r.db.WithContext(ctx).Model(&entity.Order{}).
		Select("COALESCE(MAX(number), 100)").
		Scan(&maxNumber).Error
	if err != nil {
		return 0, err
	}
	if maxNumber < 100 {
		maxNumber = 100
	}
	return maxNumber + 1, nil
}

// List returns orders most-recent-first
func (r *orderRepository) List(ctx context.Context, params *domainRepo.OrderFilterParams) ([]entity.Order, int64, error) {
	var orders []entity.Order
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Order{})

	if params.CustomerPhone != "" {
		query = query.Where("customer_phone = ?", params.CustomerPhone)
	}

	if params.StartDate != nil {
		query = query.Where("order_date >= ?", *params.StartDate)
	}

	if params.EndDate != nil {
		query = query.Where("order_date <= ?", *params.EndDate)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Preload("Items").
		Order("number DESC").
		Find(&orders).Error

	return orders, total, err
}
