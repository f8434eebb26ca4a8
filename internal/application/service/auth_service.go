package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/elitesports/pos-api/internal/domain/entity"
	"github.com/elitesports/pos-api/internal/domain/repository"
	"github.com/elitesports/pos-api/pkg/apperror"
	"github.com/elitesports/pos-api/pkg/email"
	"github.com/elitesports/pos-api/pkg/utils"
)

// AuthService handles the two-step staff sign-in: a password check that
// issues an emailed one-time code, then code verification that mints the
// JWT pair. Tokens are validated server side on every request.
type AuthService struct {
	userRepo   repository.UserRepository
	otpRepo    repository.LoginOTPRepository
	emailSvc   *email.EmailService
	jwtManager *utils.JWTManager
	otpExpiry  time.Duration
}

// NewAuthService creates a new auth service
func NewAuthService(
	userRepo repository.UserRepository,
	otpRepo repository.LoginOTPRepository,
	emailSvc *email.EmailService,
	jwtManager *utils.JWTManager,
	otpExpiryMinutes int,
) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		otpRepo:    otpRepo,
		emailSvc:   emailSvc,
		jwtManager: jwtManager,
		otpExpiry:  time.Duration(otpExpiryMinutes) * time.Minute,
	}
}

// TokenPair holds a freshly issued access and refresh token
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// RegisterInput represents the register input
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Phone    *string
}

// Register creates a new staff account
func (s *AuthService) Register(ctx context.Context, input *RegisterInput) (*entity.User, error) {
	emailAddr := normalizeEmail(input.Email)

	existing, err := s.userRepo.GetByEmail(ctx, emailAddr)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("An account with this email already exists")
	}

	hashed, err := utils.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		Name:     input.Name,
		Email:    emailAddr,
		Password: hashed,
		Phone:    input.Phone,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login checks the password and mails a one-time code. Any previously
// outstanding codes for the email are invalidated so only the newest one
// can verify. The error for a wrong email and a wrong password is the
// same on purpose.
func (s *AuthService) Login(ctx context.Context, emailAddr, password string) error {
	emailAddr = normalizeEmail(emailAddr)

	user, err := s.userRepo.GetByEmail(ctx, emailAddr)
	if err != nil {
		return err
	}
	if user == nil || !utils.CheckPasswordHash(password, user.Password) {
		return apperror.ErrInvalidCredentials
	}

	code, err := utils.GenerateOTP()
	if err != nil {
		return err
	}

	if err := s.otpRepo.InvalidateForEmail(ctx, emailAddr); err != nil {
		return err
	}

	otp := &entity.LoginOTP{
		Email:     emailAddr,
		CodeHash:  utils.HashOTP(code),
		ExpiresAt: time.Now().Add(s.otpExpiry),
	}
	if err := s.otpRepo.Create(ctx, otp); err != nil {
		return err
	}

	expiryMinutes := int(s.otpExpiry / time.Minute)
	if err := s.emailSvc.SendLoginOTP(emailAddr, code, expiryMinutes); err != nil {
		return fmt.Errorf("failed to send login code: %w", err)
	}
	return nil
}

// VerifyOTP consumes a one-time code and returns the token pair. Only the
// latest issued code for the email is ever accepted.
func (s *AuthService) VerifyOTP(ctx context.Context, emailAddr, code string) (*entity.User, *TokenPair, error) {
	emailAddr = normalizeEmail(emailAddr)

	otp, err := s.otpRepo.GetLatestByEmail(ctx, emailAddr)
	if err != nil {
		return nil, nil, err
	}
	if otp == nil || !otp.IsValid() || otp.CodeHash != utils.HashOTP(code) {
		return nil, nil, apperror.ErrInvalidOTP
	}

	if err := s.otpRepo.MarkUsed(ctx, otp.ID); err != nil {
		return nil, nil, err
	}

	user, err := s.userRepo.GetByEmail(ctx, emailAddr)
	if err != nil {
		return nil, nil, err
	}
	if user == nil {
		return nil, nil, apperror.ErrInvalidOTP
	}

	tokens, err := s.issueTokens(user)
	if err != nil {
		return nil, nil, err
	}
	return user, tokens, nil
}

// Refresh exchanges a valid refresh token for a new token pair
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	userID, err := s.jwtManager.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, apperror.ErrInvalidToken
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.ErrInvalidToken
	}

	return s.issueTokens(user)
}

// GetProfile returns the account behind a validated token
func (s *AuthService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NewNotFoundError("User")
	}
	return user, nil
}

func (s *AuthService) issueTokens(user *entity.User) (*TokenPair, error) {
	accessToken, err := s.jwtManager.GenerateAccessToken(user.ID, user.Email)
	if err != nil {
		return nil, err
	}
	refreshToken, err := s.jwtManager.GenerateRefreshToken(user.ID)
	if err != nil {
		return nil, err
	}
	return &TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

func normalizeEmail(e string) string {
	return strings.ToLower(strings.TrimSpace(e))
}
