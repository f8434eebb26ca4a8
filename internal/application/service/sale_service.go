package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/elitesports/pos-api/internal/domain/entity"
	"github.com/elitesports/pos-api/internal/domain/repository"
	"github.com/elitesports/pos-api/pkg/apperror"
)

// SaleService turns a non-empty cart into an immutable order. Confirmation
// is all-or-nothing: stock is decremented with a compare-and-decrement
// transaction first, and a failed order write puts the stock back.
type SaleService struct {
	cartStore   repository.CartStore
	productRepo repository.ProductRepository
	orderRepo   repository.OrderRepository
}

// NewSaleService creates a new sale service
func NewSaleService(
	cartStore repository.CartStore,
	productRepo repository.ProductRepository,
	orderRepo repository.OrderRepository,
) *SaleService {
	return &SaleService{
		cartStore:   cartStore,
		productRepo: productRepo,
		orderRepo:   orderRepo,
	}
}

// ConfirmSaleInput represents the confirm sale input
type ConfirmSaleInput struct {
	UserID        uuid.UUID
	CustomerPhone *string
}

// ConfirmSale converts the user's cart into an order. An empty cart is a
// silent no-op returning no order. Totals and profit come from the cart's
// snapshot prices; the stock decrement is checked against live catalog
// quantities and the whole sale fails if any line is short.
func (s *SaleService) ConfirmSale(ctx context.Context, input *ConfirmSaleInput) (*entity.Order, error) {
	cart, err := s.cartStore.Get(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	if cart.IsEmpty() {
		return nil, nil
	}

	items := make([]entity.OrderItem, 0, len(cart.Items))
	stockDecrements := make(map[uuid.UUID]int, len(cart.Items))
	nameByID := make(map[uuid.UUID]string, len(cart.Items))

	for i := range cart.Items {
		line := &cart.Items[i]
		items = append(items, entity.OrderItem{
			Name:  line.Name,
			Qty:   line.CartQuantity,
			Price: line.LineTotal(),
		})
		stockDecrements[line.ProductID] = line.CartQuantity
		nameByID[line.ProductID] = line.Name
	}

	// Race-condition safe: either every line's stock is decremented or none
	failedIDs, err := s.productRepo.AtomicDecrementBatch(ctx, stockDecrements)
	if err != nil {
		return nil, err
	}
	if len(failedIDs) > 0 {
		failedNames := make([]string, 0, len(failedIDs))
		for _, id := range failedIDs {
			failedNames = append(failedNames, nameByID[id])
		}
		return nil, apperror.NewInsufficientStockError(failedNames)
	}

	number, err := s.orderRepo.NextNumber(ctx)
	if err != nil {
		_ = s.productRepo.AtomicIncrementBatch(ctx, stockDecrements)
		return nil, err
	}

	order := &entity.Order{
		Number:        number,
		UserID:        input.UserID,
		OrderDate:     time.Now().Truncate(24 * time.Hour),
		CustomerPhone: input.CustomerPhone,
		Total:         cart.Total(),
		Profit:        cart.Profit(),
		Items:         items,
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		// Stock was already decremented; restore it
		_ = s.productRepo.AtomicIncrementBatch(ctx, stockDecrements)
		return nil, err
	}

	if err := s.cartStore.Delete(ctx, input.UserID); err != nil {
		// The sale is committed at this point; a dangling cart blob is
		// recoverable, a lost order is not
		return order, nil
	}

	return order, nil
}

// GetOrder retrieves an order by its number
func (s *SaleService) GetOrder(ctx context.Context, number int) (*entity.Order, error) {
	order, err := s.orderRepo.GetByNumber(ctx, number)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}
	return order, nil
}

// ListOrders lists the sales history, most recent first
func (s *SaleService) ListOrders(ctx context.Context, params *repository.OrderFilterParams) ([]entity.Order, int64, error) {
	return s.orderRepo.List(ctx, params)
}
