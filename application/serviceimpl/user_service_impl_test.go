package serviceimpl

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/tanaki1609/shop-api/domain/dto"
	"github.com/tanaki1609/shop-api/domain/models"
)

const testJWTSecret = "test-secret"

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hashed)
}

func TestUserRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("new account starts deactivated", func(t *testing.T) {
		userRepo := newFakeUserRepo()
		svc := NewUserService(userRepo, newFakeTokenRepo(), testJWTSecret)

		user, err := svc.Register(ctx, &dto.RegisterRequest{Username: "alex", Password: "secret"})
		require.NoError(t, err)
		assert.False(t, user.IsActive)
		assert.NotEqual(t, "secret", user.Password, "password must be stored hashed")
	})

	t.Run("duplicate username", func(t *testing.T) {
		userRepo := newFakeUserRepo(&models.User{ID: 1, Username: "alex"})
		svc := NewUserService(userRepo, newFakeTokenRepo(), testJWTSecret)

		_, err := svc.Register(ctx, &dto.RegisterRequest{Username: "alex", Password: "secret"})
		assert.ErrorIs(t, err, models.ErrUserAlreadyExists)
	})

	t.Run("concurrent duplicate hits the unique index", func(t *testing.T) {
		// A racing registration slips past the existence check and the
		// repository reports the unique-index violation instead.
		userRepo := newFakeUserRepo()
		userRepo.createErr = models.ErrUserAlreadyExists
		svc := NewUserService(userRepo, newFakeTokenRepo(), testJWTSecret)

		_, err := svc.Register(ctx, &dto.RegisterRequest{Username: "alex", Password: "secret"})
		assert.ErrorIs(t, err, models.ErrUserAlreadyExists)
	})
}

func TestUserAuthorize(t *testing.T) {
	ctx := context.Background()

	activeUser := func(t *testing.T) *models.User {
		return &models.User{
			ID:       1,
			Username: "alex",
			Password: hashPassword(t, "secret"),
			IsActive: true,
		}
	}

	t.Run("issues and stores a key", func(t *testing.T) {
		tokenRepo := newFakeTokenRepo()
		svc := NewUserService(newFakeUserRepo(activeUser(t)), tokenRepo, testJWTSecret)

		key, err := svc.Authorize(ctx, &dto.AuthRequest{Username: "alex", Password: "secret"})
		require.NoError(t, err)
		assert.NotEmpty(t, key)
		assert.Equal(t, 1, tokenRepo.createCalls)
	})

	t.Run("same key on repeated authorization", func(t *testing.T) {
		tokenRepo := newFakeTokenRepo()
		svc := NewUserService(newFakeUserRepo(activeUser(t)), tokenRepo, testJWTSecret)

		first, err := svc.Authorize(ctx, &dto.AuthRequest{Username: "alex", Password: "secret"})
		require.NoError(t, err)
		second, err := svc.Authorize(ctx, &dto.AuthRequest{Username: "alex", Password: "secret"})
		require.NoError(t, err)

		assert.Equal(t, first, second)
		assert.Equal(t, 1, tokenRepo.createCalls)
	})

	t.Run("unknown username", func(t *testing.T) {
		svc := NewUserService(newFakeUserRepo(), newFakeTokenRepo(), testJWTSecret)

		_, err := svc.Authorize(ctx, &dto.AuthRequest{Username: "ghost", Password: "secret"})
		assert.ErrorIs(t, err, models.ErrInvalidCredentials)
	})

	t.Run("wrong password", func(t *testing.T) {
		svc := NewUserService(newFakeUserRepo(activeUser(t)), newFakeTokenRepo(), testJWTSecret)

		_, err := svc.Authorize(ctx, &dto.AuthRequest{Username: "alex", Password: "nope"})
		assert.ErrorIs(t, err, models.ErrInvalidCredentials)
	})

	t.Run("deactivated account", func(t *testing.T) {
		user := activeUser(t)
		user.IsActive = false
		svc := NewUserService(newFakeUserRepo(user), newFakeTokenRepo(), testJWTSecret)

		_, err := svc.Authorize(ctx, &dto.AuthRequest{Username: "alex", Password: "secret"})
		assert.ErrorIs(t, err, models.ErrInvalidCredentials)
	})
}

func TestUserGetProfile(t *testing.T) {
	ctx := context.Background()

	svc := NewUserService(newFakeUserRepo(&models.User{ID: 7, Username: "alex", IsActive: true}), newFakeTokenRepo(), testJWTSecret)

	user, err := svc.GetProfile(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, "alex", user.Username)

	_, err = svc.GetProfile(ctx, 99)
	assert.ErrorIs(t, err, models.ErrUserNotFound)
}
