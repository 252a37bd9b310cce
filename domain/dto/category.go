package dto

import "github.com/tanaki1609/shop-api/domain/models"

// === Requests ===

type CategoryRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=255"`
	ParentID *uint  `json:"parent_id"`
}

// === Responses ===

type CategoryResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// === Mappers ===

func CategoryToCategoryResponse(category *models.Category) *CategoryResponse {
	if category == nil {
		return nil
	}
	return &CategoryResponse{
		ID:   category.ID,
		Name: category.Name,
	}
}

func CategoriesToCategoryResponses(categories []*models.Category) []CategoryResponse {
	responses := make([]CategoryResponse, len(categories))
	for i, category := range categories {
		responses[i] = *CategoryToCategoryResponse(category)
	}
	return responses
}
