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

const categoryNotFoundDetail = "Category not found!"

type CategoryHandler struct {
	categoryService services.CategoryService
	pageSize        int
}

func NewCategoryHandler(categoryService services.CategoryService, pageSize int) *CategoryHandler {
	return &CategoryHandler{
		categoryService: categoryService,
		pageSize:        pageSize,
	}
}

func (h *CategoryHandler) List(c *fiber.Ctx) error {
	ctx := c.UserContext()

	page, size := utils.ParsePagination(c, h.pageSize)

	categories, total, err := h.categoryService.List(ctx, (page-1)*size, size)
	if err != nil {
		return utils.InternalServerErrorResponse(c)
	}

	next, previous := utils.PageLinks(c, page, size, total)
	return utils.SuccessResponse(c, dto.ListEnvelope{
		Total:    total,
		Next:     next,
		Previous: previous,
		Results:  dto.CategoriesToCategoryResponses(categories),
	})
}

func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req dto.CategoryRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		fieldErrors := utils.GetValidationErrors(err)
		logger.WarnContext(ctx, "Validation failed", "errors", fieldErrors)
		return utils.ValidationErrorResponse(c, fieldErrors)
	}

	category, err := h.categoryService.Create(ctx, &req)
	if err != nil {
		return categoryPayloadError(c, err)
	}

	return utils.CreatedResponse(c, dto.CategoryToCategoryResponse(category))
}

func (h *CategoryHandler) GetByID(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return utils.NotFoundResponse(c, categoryNotFoundDetail)
	}

	category, err := h.categoryService.GetByID(ctx, uint(id))
	if err != nil {
		if errors.Is(err, models.ErrCategoryNotFound) {
			return utils.NotFoundResponse(c, categoryNotFoundDetail)
		}
		return utils.InternalServerErrorResponse(c)
	}

	return utils.SuccessResponse(c, dto.CategoryToCategoryResponse(category))
}

func (h *CategoryHandler) GetBySlug(c *fiber.Ctx) error {
	ctx := c.UserContext()

	slug := c.Params("slug")
	if slug == "" {
		return utils.NotFoundResponse(c, categoryNotFoundDetail)
	}

	category, err := h.categoryService.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, models.ErrCategoryNotFound) {
			return utils.NotFoundResponse(c, categoryNotFoundDetail)
		}
		return utils.InternalServerErrorResponse(c)
	}

	return utils.SuccessResponse(c, dto.CategoryToCategoryResponse(category))
}

func (h *CategoryHandler) Update(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return utils.NotFoundResponse(c, categoryNotFoundDetail)
	}

	var req dto.CategoryRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		fieldErrors := utils.GetValidationErrors(err)
		logger.WarnContext(ctx, "Validation failed", "errors", fieldErrors)
		return utils.ValidationErrorResponse(c, fieldErrors)
	}

	category, err := h.categoryService.Update(ctx, uint(id), &req)
	if err != nil {
		if errors.Is(err, models.ErrCategoryNotFound) {
			return utils.NotFoundResponse(c, categoryNotFoundDetail)
		}
		return categoryPayloadError(c, err)
	}

	return utils.SuccessResponse(c, dto.CategoryToCategoryResponse(category))
}

func (h *CategoryHandler) Delete(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return utils.NotFoundResponse(c, categoryNotFoundDetail)
	}

	if err := h.categoryService.Delete(ctx, uint(id)); err != nil {
		if errors.Is(err, models.ErrCategoryNotFound) {
			return utils.NotFoundResponse(c, categoryNotFoundDetail)
		}
		return utils.InternalServerErrorResponse(c)
	}

	return utils.NoContentResponse(c)
}

func categoryPayloadError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, models.ErrCategoryDoesNotExist), errors.Is(err, models.ErrSelfParent):
		return utils.FieldErrorResponse(c, "parent_id", err.Error())
	default:
		return utils.BadRequestResponse(c, err.Error())
	}
}
