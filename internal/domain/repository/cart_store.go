package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/elitesports/pos-api/internal/domain/entity"
)

// CartStore holds the in-progress cart for each user. Carts are session
// state, read and rewritten wholesale on every mutation, and are expected
// to expire with the session rather than live forever.
type CartStore interface {
	// Get returns the user's cart, or an empty cart if none is stored
	Get(ctx context.Context, userID uuid.UUID) (*entity.Cart, error)
	Save(ctx context.Context, cart *entity.Cart) error
	Delete(ctx context.Context, userID uuid.UUID) error
}
