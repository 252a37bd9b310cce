package repositories

import (
	"context"

	"github.com/tanaki1609/shop-api/domain/models"
)

type ProductRepository interface {
	// Create persists the product together with its tag set in one transaction.
	Create(ctx context.Context, product *models.Product) error
	// GetByID loads the product with category, tags and reviews preloaded.
	GetByID(ctx context.Context, id uint) (*models.Product, error)
	// Update replaces the product fields and its tag set in one transaction.
	Update(ctx context.Context, product *models.Product, tags []models.Tag) error
	// Delete removes the product, its reviews and its tag join rows.
	Delete(ctx context.Context, id uint) error
	// List returns a page of products whose title contains search
	// (case-insensitive), plus the total matching count.
	List(ctx context.Context, search string, offset, limit int) ([]*models.Product, int64, error)
}
