package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/elitesports/pos-api/internal/domain/entity"
	domainRepo "github.com/elitesports/pos-api/internal/domain/repository"
)

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) domainRepo.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *entity.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var user entity.User
	err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &user, err
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	var user entity.User
	err := r.db.WithContext(ctx).First(&user, "email = ?", email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &user, err
}

func (r *userRepository) Update(ctx context.Context, user *entity.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

type loginOTPRepository struct {
	db *gorm.DB
}

// NewLoginOTPRepository creates a new login OTP repository
func NewLoginOTPRepository(db *gorm.DB) domainRepo.LoginOTPRepository {
	return &loginOTPRepository{db: db}
}

func (r *loginOTPRepository) Create(ctx context.Context, otp *entity.LoginOTP) error {
	return r.db.WithContext(ctx).Create(otp).Error
}

func (r *loginOTPRepository) GetLatestByEmail(ctx context.Context, email string) (*entity.LoginOTP, error) {
	var otp entity.LoginOTP
	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		Order("created_at DESC").
		First(&otp).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &otp, err
}

func (r *loginOTPRepository) MarkUsed(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&entity.LoginOTP{}).
		Where("id = ?", id).
		Update("used", true).Error
}

func (r *loginOTPRepository) InvalidateForEmail(ctx context.Context, email string) error {
	return r.db.WithContext(ctx).Model(&entity.LoginOTP{}).
		Where("email = ? AND used = false", email).
		Update("used", true).Error
}

func (r *loginOTPRepository) DeleteExpired(ctx context.Context) error {
	return r.db.WithContext(ctx).
		Where("expires_at < NOW()").
		Delete(&entity.LoginOTP{}).Error
}
