package services

import (
	"context"

	"github.com/tanaki1609/shop-api/domain/dto"
	"github.com/tanaki1609/shop-api/domain/models"
)

type ProductService interface {
	// Create validates referential integrity (category, tags) and persists a
	// new product with its tag set.
	Create(ctx context.Context, req *dto.ProductRequest) (*models.Product, error)

	// GetByID returns the product with category, tags and reviews loaded.
	GetByID(ctx context.Context, id uint) (*models.Product, error)

	// Update replaces every mutable field plus the tag set.
	Update(ctx context.Context, id uint, req *dto.ProductRequest) (*models.Product, error)

	// Delete removes the product and cascades to its reviews.
	Delete(ctx context.Context, id uint) error

	// List returns a page of products filtered by a case-insensitive title
	// substring match.
	List(ctx context.Context, search string, offset, limit int) ([]*models.Product, int64, error)

	// AddReview attaches a review to an existing product.
	AddReview(ctx context.Context, productID uint, req *dto.ReviewRequest) (*models.Review, error)
}
