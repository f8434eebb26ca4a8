package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elitesports/pos-api/internal/domain/entity"
	"github.com/elitesports/pos-api/pkg/apperror"
	"github.com/elitesports/pos-api/pkg/email"
	"github.com/elitesports/pos-api/pkg/utils"
)

func newAuthFixture() (*AuthService, *fakeUserRepo, *fakeOTPRepo) {
	userRepo := newFakeUserRepo()
	otpRepo := &fakeOTPRepo{}
	emailSvc := email.NewEmailService(email.EmailConfig{})
	jwtManager := utils.NewJWTManager("test-secret", time.Hour, 24*time.Hour)
	return NewAuthService(userRepo, otpRepo, emailSvc, jwtManager, 10), userRepo, otpRepo
}

func TestRegisterAndDuplicateEmail(t *testing.T) {
	svc, _, _ := newAuthFixture()
	ctx := context.Background()

	user, err := svc.Register(ctx, &RegisterInput{
		Name:     "Asha",
		Email:    "Asha@Example.com",
		Password: "correct-horse",
	})
	require.NoError(t, err)
	assert.Equal(t, "asha@example.com", user.Email)
	// The stored password is a hash, never the plaintext
	assert.NotEqual(t, "correct-horse", user.Password)

	_, err = svc.Register(ctx, &RegisterInput{
		Name:     "Asha Again",
		Email:    "asha@example.com",
		Password: "another-pass",
	})
	require.Error(t, err)
	assert.Equal(t, 409, apperror.GetAppError(err).Code)
}

func TestVerifyOTP(t *testing.T) {
	svc, userRepo, otpRepo := newAuthFixture()
	ctx := context.Background()

	hashed, err := utils.HashPassword("correct-horse")
	require.NoError(t, err)
	require.NoError(t, userRepo.Create(ctx, &entity.User{
		Name:     "Asha",
		Email:    "asha@example.com",
		Password: hashed,
	}))
	require.NoError(t, otpRepo.Create(ctx, &entity.LoginOTP{
		Email:     "asha@example.com",
		CodeHash:  utils.HashOTP("123456"),
		ExpiresAt: time.Now().Add(10 * time.Minute),
	}))

	user, tokens, err := svc.VerifyOTP(ctx, "asha@example.com", "123456")

	require.NoError(t, err)
	assert.Equal(t, "asha@example.com", user.Email)
	require.NotNil(t, tokens)
	assert.NotEmpty(t, tokens.AccessToken)
	assert.NotEmpty(t, tokens.RefreshToken)

	// A consumed code cannot verify twice
	_, _, err = svc.VerifyOTP(ctx, "asha@example.com", "123456")
	require.Error(t, err)
	assert.Equal(t, 401, apperror.GetAppError(err).Code)
}

func TestVerifyOTPWrongCode(t *testing.T) {
	svc, _, otpRepo := newAuthFixture()
	ctx := context.Background()

	require.NoError(t, otpRepo.Create(ctx, &entity.LoginOTP{
		Email:     "asha@example.com",
		CodeHash:  utils.HashOTP("123456"),
		ExpiresAt: time.Now().Add(10 * time.Minute),
	}))

	_, _, err := svc.VerifyOTP(ctx, "asha@example.com", "654321")

	require.Error(t, err)
	assert.Equal(t, 401, apperror.GetAppError(err).Code)
}

func TestVerifyOTPExpiredCode(t *testing.T) {
	svc, _, otpRepo := newAuthFixture()
	ctx := context.Background()

	require.NoError(t, otpRepo.Create(ctx, &entity.LoginOTP{
		Email:     "asha@example.com",
		CodeHash:  utils.HashOTP("123456"),
		ExpiresAt: time.Now().Add(-time.Minute),
	}))

	_, _, err := svc.VerifyOTP(ctx, "asha@example.com", "123456")

	require.Error(t, err)
	assert.Equal(t, 401, apperror.GetAppError(err).Code)
}

func TestRefreshRoundTrip(t *testing.T) {
	svc, userRepo, _ := newAuthFixture()
	ctx := context.Background()

	user := &entity.User{Name: "Asha", Email: "asha@example.com", Password: "hash"}
	require.NoError(t, userRepo.Create(ctx, user))

	pair, err := svc.issueTokens(user)
	require.NoError(t, err)

	refreshed, err := svc.Refresh(ctx, pair.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)

	_, err = svc.Refresh(ctx, "not-a-token")
	require.Error(t, err)
	assert.Equal(t, 401, apperror.GetAppError(err).Code)
}
