package dto

import "github.com/tanaki1609/shop-api/domain/models"

// === Requests ===

type TagRequest struct {
	Name string `json:"name" validate:"required,min=1,max=255"`
}

// === Responses ===

type TagResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// === Mappers ===

func TagToTagResponse(tag *models.Tag) *TagResponse {
	if tag == nil {
		return nil
	}
	return &TagResponse{
		ID:   tag.ID,
		Name: tag.Name,
	}
}

func TagsToTagResponses(tags []*models.Tag) []TagResponse {
	responses := make([]TagResponse, len(tags))
	for i, tag := range tags {
		responses[i] = *TagToTagResponse(tag)
	}
	return responses
}
