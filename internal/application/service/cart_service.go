package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/elitesports/pos-api/internal/domain/entity"
	"github.com/elitesports/pos-api/internal/domain/repository"
	"github.com/elitesports/pos-api/pkg/apperror"
)

// CartService manages each user's in-progress checkout. The cart itself is
// forgiving by design: stock caps are applied silently instead of erroring,
// matching the tap-to-add flow of the register UI.
type CartService struct {
	cartStore   repository.CartStore
	productRepo repository.ProductRepository
}

// NewCartService creates a new cart service
func NewCartService(cartStore repository.CartStore, productRepo repository.ProductRepository) *CartService {
	return &CartService{
		cartStore:   cartStore,
		productRepo: productRepo,
	}
}

// GetCart returns the user's current cart
func (s *CartService) GetCart(ctx context.Context, userID uuid.UUID) (*entity.Cart, error) {
	return s.cartStore.Get(ctx, userID)
}

// AddToCart adds one unit of a product to the user's cart. An out-of-stock
// product and a line already at the stock cap are silent no-ops.
func (s *CartService) AddToCart(ctx context.Context, userID, productID uuid.UUID) (*entity.Cart, error) {
	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}

	cart, err := s.cartStore.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	cart.AddProduct(product)

	if err := s.cartStore.Save(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// UpdateQuantity sets the requested quantity for a cart line. Zero or
// negative removes the line; values above the current catalog stock are
// clamped so a stale cart cannot request an oversell.
func (s *CartService) UpdateQuantity(ctx context.Context, userID, productID uuid.UUID, quantity int) (*entity.Cart, error) {
	cart, err := s.cartStore.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	available := 0
	if quantity > 0 {
		product, err := s.productRepo.GetByID(ctx, productID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, apperror.NewNotFoundError("Product")
		}
		available = product.Quantity
	}

	cart.SetQuantity(productID, quantity, available)

	if err := s.cartStore.Save(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// RemoveItem deletes a line from the cart, no-op when absent
func (s *CartService) RemoveItem(ctx context.Context, userID, productID uuid.UUID) (*entity.Cart, error) {
	cart, err := s.cartStore.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	cart.Remove(productID)

	if err := s.cartStore.Save(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// ClearCart empties the user's cart
func (s *CartService) ClearCart(ctx context.Context, userID uuid.UUID) error {
	return s.cartStore.Delete(ctx, userID)
}
