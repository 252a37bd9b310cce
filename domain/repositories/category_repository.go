package repositories

import (
	"context"

	"github.com/tanaki1609/shop-api/domain/models"
)

type CategoryRepository interface {
	Create(ctx context.Context, category *models.Category) error
	GetByID(ctx context.Context, id uint) (*models.Category, error)
	GetBySlug(ctx context.Context, slug string) (*models.Category, error)
	Update(ctx context.Context, category *models.Category) error
	// Delete removes the category and its descendants. Returns the ids of
	// every removed category so callers can detach referencing products.
	Delete(ctx context.Context, id uint) ([]uint, error)
	List(ctx context.Context, offset, limit int) ([]*models.Category, int64, error)
}
