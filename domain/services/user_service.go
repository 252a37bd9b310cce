package services

import (
	"context"

	"github.com/tanaki1609/shop-api/domain/dto"
	"github.com/tanaki1609/shop-api/domain/models"
)

type UserService interface {
	// Register creates a deactivated user. Duplicate usernames fail with
	// models.ErrUserAlreadyExists.
	Register(ctx context.Context, req *dto.RegisterRequest) (*models.User, error)

	// Authorize checks the credentials and returns the user's bearer key,
	// minting one on first authorization and reusing it afterwards.
	Authorize(ctx context.Context, req *dto.AuthRequest) (string, error)

	// GetProfile returns the user behind an authenticated request.
	GetProfile(ctx context.Context, id uint) (*models.User, error)
}
