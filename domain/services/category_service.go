package services

import (
	"context"

	"github.com/tanaki1609/shop-api/domain/dto"
	"github.com/tanaki1609/shop-api/domain/models"
)

type CategoryService interface {
	Create(ctx context.Context, req *dto.CategoryRequest) (*models.Category, error)
	GetByID(ctx context.Context, id uint) (*models.Category, error)
	GetBySlug(ctx context.Context, slug string) (*models.Category, error)
	Update(ctx context.Context, id uint, req *dto.CategoryRequest) (*models.Category, error)
	// Delete removes the category and its descendants; products referencing
	// any of them lose the reference instead of being removed.
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, offset, limit int) ([]*models.Category, int64, error)
}
