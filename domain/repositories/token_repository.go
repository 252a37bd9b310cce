package repositories

import (
	"context"

	"github.com/tanaki1609/shop-api/domain/models"
)

type TokenRepository interface {
	Create(ctx context.Context, token *models.Token) error
	GetByUserID(ctx context.Context, userID uint) (*models.Token, error)
}
