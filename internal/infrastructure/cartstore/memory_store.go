package cartstore

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/elitesports/pos-api/internal/domain/entity"
	domainRepo "github.com/elitesports/pos-api/internal/domain/repository"
)

type memoryCartStore struct {
	mu    sync.RWMutex
	carts map[uuid.UUID]*entity.Cart
}

// NewMemoryCartStore creates an in-process cart store. Used in tests and as
// a fallback when Redis is not configured; carts do not survive a restart.
func NewMemoryCartStore() domainRepo.CartStore {
	return &memoryCartStore{carts: make(map[uuid.UUID]*entity.Cart)}
}

func (s *memoryCartStore) Get(ctx context.Context, userID uuid.UUID) (*entity.Cart, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cart, ok := s.carts[userID]
	if !ok {
		return entity.NewCart(userID), nil
	}

	// Copy so callers cannot mutate the stored cart without Save
	clone := *cart
	clone.Items = make([]entity.CartItem, len(cart.Items))
	copy(clone.Items, cart.Items)
	return &clone, nil
}

func (s *memoryCartStore) Save(ctx context.Context, cart *entity.Cart) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	clone := *cart
	clone.Items = make([]entity.CartItem, len(cart.Items))
	copy(clone.Items, cart.Items)
	s.carts[cart.UserID] = &clone
	return nil
}

func (s *memoryCartStore) Delete(ctx context.Context, userID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.carts, userID)
	return nil
}
