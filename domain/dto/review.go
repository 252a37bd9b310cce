package dto

import "github.com/tanaki1609/shop-api/domain/models"

// === Requests ===

type ReviewRequest struct {
	Text  string `json:"text" validate:"required"`
	Stars *int   `json:"stars" validate:"omitempty,min=1,max=5"`
}

// === Responses ===

type ReviewResponse struct {
	ID    uint   `json:"id"`
	Text  string `json:"text"`
	Stars int    `json:"stars"`
}

type ReviewCreatedResponse struct {
	ReviewID uint `json:"review_id"`
}

// === Mappers ===

func ReviewToReviewResponse(review *models.Review) *ReviewResponse {
	if review == nil {
		return nil
	}
	return &ReviewResponse{
		ID:    review.ID,
		Text:  review.Text,
		Stars: review.Stars,
	}
}
