package repositories

import (
	"context"

	"github.com/tanaki1609/shop-api/domain/models"
)

type TagRepository interface {
	Create(ctx context.Context, tag *models.Tag) error
	GetByID(ctx context.Context, id uint) (*models.Tag, error)
	// GetByIDs resolves the given ids. Missing ids are simply absent from the
	// result; the caller decides whether that is an error.
	GetByIDs(ctx context.Context, ids []uint) ([]models.Tag, error)
	Update(ctx context.Context, tag *models.Tag) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, offset, limit int) ([]*models.Tag, int64, error)
}
