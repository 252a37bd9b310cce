package serviceimpl

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tanaki1609/shop-api/domain/dto"
	"github.com/tanaki1609/shop-api/domain/models"
	"github.com/tanaki1609/shop-api/domain/repositories"
	"github.com/tanaki1609/shop-api/domain/services"
	"github.com/tanaki1609/shop-api/infrastructure/redis"
	"github.com/tanaki1609/shop-api/pkg/logger"
)

// Placeholder stored when a payload omits the product text.
const defaultProductText = "No description yet."

// Detail lookups are cached briefly; category/tag edits may lag by this much.
const productCacheTTL = time.Minute

type ProductServiceImpl struct {
	productRepo  repositories.ProductRepository
	categoryRepo repositories.CategoryRepository
	tagRepo      repositories.TagRepository
	reviewRepo   repositories.ReviewRepository
	cache        *redis.Client // nil disables caching
}

func NewProductService(
	productRepo repositories.ProductRepository,
	categoryRepo repositories.CategoryRepository,
	tagRepo repositories.TagRepository,
	reviewRepo repositories.ReviewRepository,
	cache *redis.Client,
) services.ProductService {
	return &ProductServiceImpl{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		tagRepo:      tagRepo,
		reviewRepo:   reviewRepo,
		cache:        cache,
	}
}

func (s *ProductServiceImpl) Create(ctx context.Context, req *dto.ProductRequest) (*models.Product, error) {
	category, err := s.checkCategory(ctx, req.CategoryID)
	if err != nil {
		return nil, err
	}

	tags, err := s.resolveTags(ctx, req.Tags)
	if err != nil {
		return nil, err
	}

	text := req.Text
	if text == nil {
		placeholder := defaultProductText
		text = &placeholder
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	categoryID := req.CategoryID
	product := &models.Product{
		Title:      req.Title,
		Text:       text,
		Price:      decimal.NewFromFloat(req.Price),
		IsActive:   isActive,
		CategoryID: &categoryID,
		Tags:       tags,
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		logger.ErrorContext(ctx, "Failed to create product", "error", err)
		return nil, err
	}
	product.Category = category

	logger.InfoContext(ctx, "Product created", "product_id", product.ID, "title", product.Title)
	return product, nil
}

func (s *ProductServiceImpl) GetByID(ctx context.Context, id uint) (*models.Product, error) {
	if cached := s.cacheGet(ctx, id); cached != nil {
		return cached, nil
	}

	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		if !errors.Is(err, models.ErrProductNotFound) {
			logger.ErrorContext(ctx, "Failed to load product", "product_id", id, "error", err)
		}
		return nil, err
	}

	s.cacheSet(ctx, product)
	return product, nil
}

func (s *ProductServiceImpl) Update(ctx context.Context, id uint, req *dto.ProductRequest) (*models.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	category, err := s.checkCategory(ctx, req.CategoryID)
	if err != nil {
		return nil, err
	}

	tags, err := s.resolveTags(ctx, req.Tags)
	if err != nil {
		return nil, err
	}

	text := req.Text
	if text == nil {
		placeholder := defaultProductText
		text = &placeholder
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	categoryID := req.CategoryID
	product.Title = req.Title
	product.Text = text
	product.Price = decimal.NewFromFloat(req.Price)
	product.IsActive = isActive
	product.CategoryID = &categoryID

	if err := s.productRepo.Update(ctx, product, tags); err != nil {
		logger.ErrorContext(ctx, "Failed to update product", "product_id", id, "error", err)
		return nil, err
	}

	product.Category = category
	product.Tags = tags
	s.cacheDel(ctx, id)

	logger.InfoContext(ctx, "Product updated", "product_id", id)
	return product, nil
}

func (s *ProductServiceImpl) Delete(ctx context.Context, id uint) error {
	if _, err := s.productRepo.GetByID(ctx, id); err != nil {
		return err
	}

	if err := s.productRepo.Delete(ctx, id); err != nil {
		logger.ErrorContext(ctx, "Failed to delete product", "product_id", id, "error", err)
		return err
	}

	s.cacheDel(ctx, id)
	logger.InfoContext(ctx, "Product deleted", "product_id", id)
	return nil
}

func (s *ProductServiceImpl) List(ctx context.Context, search string, offset, limit int) ([]*models.Product, int64, error) {
	products, total, err := s.productRepo.List(ctx, search, offset, limit)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to list products", "error", err)
		return nil, 0, err
	}
	return products, total, nil
}

func (s *ProductServiceImpl) AddReview(ctx context.Context, productID uint, req *dto.ReviewRequest) (*models.Review, error) {
	if _, err := s.productRepo.GetByID(ctx, productID); err != nil {
		return nil, err
	}

	stars := 5
	if req.Stars != nil {
		stars = *req.Stars
	}

	review := &models.Review{
		Text:      req.Text,
		Stars:     stars,
		ProductID: productID,
	}

	if err := s.reviewRepo.Create(ctx, review); err != nil {
		logger.ErrorContext(ctx, "Failed to create review", "product_id", productID, "error", err)
		return nil, err
	}

	s.cacheDel(ctx, productID)
	logger.InfoContext(ctx, "Review created", "review_id", review.ID, "product_id", productID)
	return review, nil
}

// checkCategory turns a missing category into the payload-level error.
func (s *ProductServiceImpl) checkCategory(ctx context.Context, id uint) (*models.Category, error) {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, models.ErrCategoryNotFound) {
			return nil, models.ErrCategoryDoesNotExist
		}
		return nil, err
	}
	return category, nil
}

// resolveTags checks that every referenced tag exists and returns them in the
// payload order. Duplicate ids are collapsed onto their first occurrence.
func (s *ProductServiceImpl) resolveTags(ctx context.Context, ids []uint) ([]models.Tag, error) {
	seen := make(map[uint]bool, len(ids))
	unique := make([]uint, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			unique = append(unique, id)
		}
	}

	found, err := s.tagRepo.GetByIDs(ctx, unique)
	if err != nil {
		return nil, err
	}
	if len(found) != len(unique) {
		return nil, models.ErrTagsDoNotExist
	}

	byID := make(map[uint]models.Tag, len(found))
	for _, tag := range found {
		byID[tag.ID] = tag
	}

	ordered := make([]models.Tag, len(unique))
	for i, id := range unique {
		ordered[i] = byID[id]
	}
	return ordered, nil
}

// ========== Cache helpers (no-ops without a client) ==========

func productCacheKey(id uint) string {
	return fmt.Sprintf("product:%d", id)
}

func (s *ProductServiceImpl) cacheGet(ctx context.Context, id uint) *models.Product {
	if s.cache == nil {
		return nil
	}

	var product models.Product
	err := s.cache.GetJSON(ctx, productCacheKey(id), &product)
	if err != nil {
		if !redis.IsMiss(err) {
			logger.WarnContext(ctx, "Product cache read failed", "product_id", id, "error", err)
		}
		return nil
	}
	return &product
}

func (s *ProductServiceImpl) cacheSet(ctx context.Context, product *models.Product) {
	if s.cache == nil {
		return
	}
	if err := s.cache.SetJSON(ctx, productCacheKey(product.ID), product, productCacheTTL); err != nil {
		logger.WarnContext(ctx, "Product cache write failed", "product_id", product.ID, "error", err)
	}
}

func (s *ProductServiceImpl) cacheDel(ctx context.Context, id uint) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Del(ctx, productCacheKey(id)); err != nil {
		logger.WarnContext(ctx, "Product cache invalidation failed", "product_id", id, "error", err)
	}
}
