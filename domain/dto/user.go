package dto

import "github.com/tanaki1609/shop-api/domain/models"

// === Requests ===

type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=1,max=150"`
	Password string `json:"password" validate:"required"`
}

type AuthRequest struct {
	Username string `json:"username" validate:"required,min=1,max=150"`
	Password string `json:"password" validate:"required"`
}

// === Responses ===

type RegisterResponse struct {
	UserID uint `json:"user_id"`
}

// TokenResponse carries the bearer key issued on authorization.
type TokenResponse struct {
	Key string `json:"key"`
}

type UserResponse struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	IsActive bool   `json:"is_active"`
}

// === Mappers ===

func UserToUserResponse(user *models.User) *UserResponse {
	if user == nil {
		return nil
	}
	return &UserResponse{
		ID:       user.ID,
		Username: user.Username,
		IsActive: user.IsActive,
	}
}
