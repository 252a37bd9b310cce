package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/tanaki1609/shop-api/domain/dto"
	"github.com/tanaki1609/shop-api/domain/models"
	"github.com/tanaki1609/shop-api/domain/services"
	"github.com/tanaki1609/shop-api/pkg/logger"
	"github.com/tanaki1609/shop-api/pkg/utils"
)

type UserHandler struct {
	userService services.UserService
}

func NewUserHandler(userService services.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// Register handles POST /users/registration.
func (h *UserHandler) Register(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		fieldErrors := utils.GetValidationErrors(err)
		logger.WarnContext(ctx, "Validation failed", "errors", fieldErrors)
		return utils.ValidationErrorResponse(c, fieldErrors)
	}

	user, err := h.userService.Register(ctx, &req)
	if err != nil {
		if errors.Is(err, models.ErrUserAlreadyExists) {
			return utils.FieldErrorResponse(c, "username", err.Error())
		}
		return utils.InternalServerErrorResponse(c)
	}

	return utils.CreatedResponse(c, dto.RegisterResponse{UserID: user.ID})
}

// Authorize handles POST /users/authorization.
func (h *UserHandler) Authorize(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req dto.AuthRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		fieldErrors := utils.GetValidationErrors(err)
		logger.WarnContext(ctx, "Validation failed", "errors", fieldErrors)
		return utils.ValidationErrorResponse(c, fieldErrors)
	}

	key, err := h.userService.Authorize(ctx, &req)
	if err != nil {
		if errors.Is(err, models.ErrInvalidCredentials) {
			return utils.UnauthorizedResponse(c)
		}
		return utils.InternalServerErrorResponse(c)
	}

	return utils.SuccessResponse(c, dto.TokenResponse{Key: key})
}

// GetProfile handles GET /users/me behind the auth middleware.
func (h *UserHandler) GetProfile(c *fiber.Ctx) error {
	ctx := c.UserContext()

	userCtx, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c)
	}

	user, err := h.userService.GetProfile(ctx, userCtx.ID)
	if err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			return utils.UnauthorizedResponse(c)
		}
		return utils.InternalServerErrorResponse(c)
	}

	return utils.SuccessResponse(c, dto.UserToUserResponse(user))
}
