package serviceimpl

import (
	"context"
	"errors"

	"github.com/gosimple/slug"

	"github.com/tanaki1609/shop-api/domain/dto"
	"github.com/tanaki1609/shop-api/domain/models"
	"github.com/tanaki1609/shop-api/domain/repositories"
	"github.com/tanaki1609/shop-api/domain/services"
	"github.com/tanaki1609/shop-api/pkg/logger"
)

type CategoryServiceImpl struct {
	categoryRepo repositories.CategoryRepository
}

func NewCategoryService(categoryRepo repositories.CategoryRepository) services.CategoryService {
	return &CategoryServiceImpl{
		categoryRepo: categoryRepo,
	}
}

func (s *CategoryServiceImpl) Create(ctx context.Context, req *dto.CategoryRequest) (*models.Category, error) {
	if err := s.checkParent(ctx, req.ParentID, 0); err != nil {
		return nil, err
	}

	newSlug := slug.Make(req.Name)
	if existing, _ := s.categoryRepo.GetBySlug(ctx, newSlug); existing != nil {
		logger.WarnContext(ctx, "Category slug already exists", "slug", newSlug)
		return nil, errors.New("category already exists")
	}

	category := &models.Category{
		Name:     req.Name,
		Slug:     newSlug,
		ParentID: req.ParentID,
	}

	if err := s.categoryRepo.Create(ctx, category); err != nil {
		logger.ErrorContext(ctx, "Failed to create category", "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Category created", "category_id", category.ID, "name", category.Name)
	return category, nil
}

func (s *CategoryServiceImpl) GetByID(ctx context.Context, id uint) (*models.Category, error) {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		if !errors.Is(err, models.ErrCategoryNotFound) {
			logger.ErrorContext(ctx, "Failed to load category", "category_id", id, "error", err)
		}
		return nil, err
	}
	return category, nil
}

func (s *CategoryServiceImpl) GetBySlug(ctx context.Context, slugStr string) (*models.Category, error) {
	category, err := s.categoryRepo.GetBySlug(ctx, slugStr)
	if err != nil {
		if !errors.Is(err, models.ErrCategoryNotFound) {
			logger.ErrorContext(ctx, "Failed to load category", "slug", slugStr, "error", err)
		}
		return nil, err
	}
	return category, nil
}

func (s *CategoryServiceImpl) Update(ctx context.Context, id uint, req *dto.CategoryRequest) (*models.Category, error) {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.checkParent(ctx, req.ParentID, id); err != nil {
		return nil, err
	}

	if req.Name != category.Name {
		newSlug := slug.Make(req.Name)
		if existing, _ := s.categoryRepo.GetBySlug(ctx, newSlug); existing != nil && existing.ID != id {
			logger.WarnContext(ctx, "Category slug already exists", "slug", newSlug)
			return nil, errors.New("category already exists")
		}
		category.Slug = newSlug
	}

	category.Name = req.Name
	category.ParentID = req.ParentID

	if err := s.categoryRepo.Update(ctx, category); err != nil {
		logger.ErrorContext(ctx, "Failed to update category", "category_id", id, "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Category updated", "category_id", id)
	return category, nil
}

func (s *CategoryServiceImpl) Delete(ctx context.Context, id uint) error {
	if _, err := s.categoryRepo.GetByID(ctx, id); err != nil {
		return err
	}

	removed, err := s.categoryRepo.Delete(ctx, id)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to delete category", "category_id", id, "error", err)
		return err
	}

	logger.InfoContext(ctx, "Category deleted", "category_id", id, "removed", len(removed))
	return nil
}

func (s *CategoryServiceImpl) List(ctx context.Context, offset, limit int) ([]*models.Category, int64, error) {
	categories, total, err := s.categoryRepo.List(ctx, offset, limit)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to list categories", "error", err)
		return nil, 0, err
	}
	return categories, total, nil
}

// checkParent validates the optional parent reference. self is the id of the
// category being updated, zero on create.
func (s *CategoryServiceImpl) checkParent(ctx context.Context, parentID *uint, self uint) error {
	if parentID == nil {
		return nil
	}
	if self != 0 && *parentID == self {
		return models.ErrSelfParent
	}
	if _, err := s.categoryRepo.GetByID(ctx, *parentID); err != nil {
		if errors.Is(err, models.ErrCategoryNotFound) {
			return models.ErrCategoryDoesNotExist
		}
		return err
	}
	return nil
}
