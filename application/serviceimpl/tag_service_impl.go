package serviceimpl

import (
	"context"
	"errors"

	"github.com/tanaki1609/shop-api/domain/dto"
	"github.com/tanaki1609/shop-api/domain/models"
	"github.com/tanaki1609/shop-api/domain/repositories"
	"github.com/tanaki1609/shop-api/domain/services"
	"github.com/tanaki1609/shop-api/pkg/logger"
)

type TagServiceImpl struct {
	tagRepo repositories.TagRepository
}

func NewTagService(tagRepo repositories.TagRepository) services.TagService {
	return &TagServiceImpl{
		tagRepo: tagRepo,
	}
}

func (s *TagServiceImpl) Create(ctx context.Context, req *dto.TagRequest) (*models.Tag, error) {
	tag := &models.Tag{Name: req.Name}

	if err := s.tagRepo.Create(ctx, tag); err != nil {
		logger.ErrorContext(ctx, "Failed to create tag", "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Tag created", "tag_id", tag.ID, "name", tag.Name)
	return tag, nil
}

func (s *TagServiceImpl) GetByID(ctx context.Context, id uint) (*models.Tag, error) {
	tag, err := s.tagRepo.GetByID(ctx, id)
	if err != nil {
		if !errors.Is(err, models.ErrTagNotFound) {
			logger.ErrorContext(ctx, "Failed to load tag", "tag_id", id, "error", err)
		}
		return nil, err
	}
	return tag, nil
}

func (s *TagServiceImpl) Update(ctx context.Context, id uint, req *dto.TagRequest) (*models.Tag, error) {
	tag, err := s.tagRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	tag.Name = req.Name

	if err := s.tagRepo.Update(ctx, tag); err != nil {
		logger.ErrorContext(ctx, "Failed to update tag", "tag_id", id, "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Tag updated", "tag_id", id)
	return tag, nil
}

func (s *TagServiceImpl) Delete(ctx context.Context, id uint) error {
	if _, err := s.tagRepo.GetByID(ctx, id); err != nil {
		return err
	}

	if err := s.tagRepo.Delete(ctx, id); err != nil {
		logger.ErrorContext(ctx, "Failed to delete tag", "tag_id", id, "error", err)
		return err
	}

	logger.InfoContext(ctx, "Tag deleted", "tag_id", id)
	return nil
}

func (s *TagServiceImpl) List(ctx context.Context, offset, limit int) ([]*models.Tag, int64, error) {
	tags, total, err := s.tagRepo.List(ctx, offset, limit)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to list tags", "error", err)
		return nil, 0, err
	}
	return tags, total, nil
}
