package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/tanaki1609/shop-api/domain/models"
	"github.com/tanaki1609/shop-api/domain/repositories"
)

type CategoryRepositoryImpl struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) repositories.CategoryRepository {
	return &CategoryRepositoryImpl{db: db}
}

func (r *CategoryRepositoryImpl) Create(ctx context.Context, category *models.Category) error {
	return r.db.WithContext(ctx).Create(category).Error
}

func (r *CategoryRepositoryImpl) GetByID(ctx context.Context, id uint) (*models.Category, error) {
	var category models.Category
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&category).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrCategoryNotFound
		}
		return nil, err
	}
	return &category, nil
}

func (r *CategoryRepositoryImpl) GetBySlug(ctx context.Context, slug string) (*models.Category, error) {
	var category models.Category
	err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&category).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrCategoryNotFound
		}
		return nil, err
	}
	return &category, nil
}

func (r *CategoryRepositoryImpl) Update(ctx context.Context, category *models.Category) error {
	return r.db.WithContext(ctx).Save(category).Error
}

// Delete removes the category subtree. Products referencing any removed
// category keep existing with a NULL category instead of being cascaded.
func (r *CategoryRepositoryImpl) Delete(ctx context.Context, id uint) ([]uint, error) {
	ids, err := r.collectSubtree(ctx, id)
	if err != nil {
		return nil, err
	}

	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Product{}).
			Where("category_id IN ?", ids).
			Update("category_id", nil).Error; err != nil {
			return err
		}
		return tx.Where("id IN ?", ids).Delete(&models.Category{}).Error
	})
	if err != nil {
		return nil, err
	}

	return ids, nil
}

// collectSubtree walks the parent links breadth-first starting at root.
func (r *CategoryRepositoryImpl) collectSubtree(ctx context.Context, root uint) ([]uint, error) {
	ids := []uint{root}
	frontier := []uint{root}

	for len(frontier) > 0 {
		var children []uint
		err := r.db.WithContext(ctx).Model(&models.Category{}).
			Where("parent_id IN ?", frontier).
			Pluck("id", &children).Error
		if err != nil {
			return nil, err
		}
		ids = append(ids, children...)
		frontier = children
	}

	return ids, nil
}

func (r *CategoryRepositoryImpl) List(ctx context.Context, offset, limit int) ([]*models.Category, int64, error) {
	var categories []*models.Category
	var total int64

	query := r.db.WithContext(ctx).Model(&models.Category{})
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("id ASC").Offset(offset).Limit(limit).Find(&categories).Error
	if err != nil {
		return nil, 0, err
	}

	return categories, total, nil
}
