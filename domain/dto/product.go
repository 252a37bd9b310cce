package dto

import (
	"time"

	"github.com/tanaki1609/shop-api/domain/models"
)

// === Requests ===

// ProductRequest is the create/update payload. PUT replaces every mutable
// field, so the same shape serves both verbs.
type ProductRequest struct {
	Title      string  `json:"title" validate:"required,min=5,max=255"`
	Text       *string `json:"text"`
	Price      float64 `json:"price" validate:"required,min=1,max=1000000"`
	IsActive   *bool   `json:"is_active"`
	CategoryID uint    `json:"category_id" validate:"required"`
	Tags       []uint  `json:"tags" validate:"required,dive,gt=0"`
}

// === Responses ===

type ProductResponse struct {
	ID           uint              `json:"id"`
	Title        string            `json:"title"`
	Price        float64           `json:"price"`
	Created      time.Time         `json:"created"`
	Category     *CategoryResponse `json:"category"`
	CategoryName *string           `json:"category_name"`
	Tags         []TagResponse     `json:"tags"`
	TagList      []string          `json:"tag_list"`
	Reviews      []ReviewResponse  `json:"reviews"`
}

type ProductCreatedResponse struct {
	ProductID uint `json:"product_id"`
}

// === Mappers ===

func ProductToProductResponse(product *models.Product) *ProductResponse {
	if product == nil {
		return nil
	}

	resp := &ProductResponse{
		ID:      product.ID,
		Title:   product.Title,
		Price:   product.Price.InexactFloat64(),
		Created: product.CreatedAt,
		Tags:    make([]TagResponse, len(product.Tags)),
		TagList: product.TagList(),
		Reviews: make([]ReviewResponse, len(product.Reviews)),
	}

	if product.Category != nil {
		resp.Category = CategoryToCategoryResponse(product.Category)
		resp.CategoryName = &product.Category.Name
	}

	for i, tag := range product.Tags {
		t := tag
		resp.Tags[i] = *TagToTagResponse(&t)
	}
	for i, review := range product.Reviews {
		r := review
		resp.Reviews[i] = *ReviewToReviewResponse(&r)
	}

	return resp
}

func ProductsToProductResponses(products []*models.Product) []ProductResponse {
	responses := make([]ProductResponse, len(products))
	for i, product := range products {
		responses[i] = *ProductToProductResponse(product)
	}
	return responses
}
