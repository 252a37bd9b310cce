package services

import (
	"context"

	"github.com/tanaki1609/shop-api/domain/dto"
	"github.com/tanaki1609/shop-api/domain/models"
)

type TagService interface {
	Create(ctx context.Context, req *dto.TagRequest) (*models.Tag, error)
	GetByID(ctx context.Context, id uint) (*models.Tag, error)
	Update(ctx context.Context, id uint, req *dto.TagRequest) (*models.Tag, error)
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, offset, limit int) ([]*models.Tag, int64, error)
}
