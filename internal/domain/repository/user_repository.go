package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/elitesports/pos-api/internal/domain/entity"
)

// UserRepository defines the interface for staff account operations
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
}

// LoginOTPRepository defines the interface for one-time login codes
type LoginOTPRepository interface {
	Create(ctx context.Context, otp *entity.LoginOTP) error
	// GetLatestByEmail returns the most recently issued OTP for an email
	GetLatestByEmail(ctx context.Context, email string) (*entity.LoginOTP, error)
	MarkUsed(ctx context.Context, id uuid.UUID) error
	// InvalidateForEmail marks all outstanding codes for an email as used,
	// so only the newest issued code can ever verify
	InvalidateForEmail(ctx context.Context, email string) error
	DeleteExpired(ctx context.Context) error
}
