package repositories

import (
	"context"

	"github.com/tanaki1609/shop-api/domain/models"
)

type ReviewRepository interface {
	Create(ctx context.Context, review *models.Review) error
	ListByProduct(ctx context.Context, productID uint) ([]models.Review, error)
}
