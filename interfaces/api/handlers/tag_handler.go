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

const tagNotFoundDetail = "Tag not found!"

type TagHandler struct {
	tagService services.TagService
	pageSize   int
}

func NewTagHandler(tagService services.TagService, pageSize int) *TagHandler {
	return &TagHandler{
		tagService: tagService,
		pageSize:   pageSize,
	}
}

func (h *TagHandler) List(c *fiber.Ctx) error {
	ctx := c.UserContext()

	page, size := utils.ParsePagination(c, h.pageSize)

	tags, total, err := h.tagService.List(ctx, (page-1)*size, size)
	if err != nil {
		return utils.InternalServerErrorResponse(c)
	}

	next, previous := utils.PageLinks(c, page, size, total)
	return utils.SuccessResponse(c, dto.ListEnvelope{
		Total:    total,
		Next:     next,
		Previous: previous,
		Results:  dto.TagsToTagResponses(tags),
	})
}

func (h *TagHandler) Create(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req dto.TagRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		fieldErrors := utils.GetValidationErrors(err)
		logger.WarnContext(ctx, "Validation failed", "errors", fieldErrors)
		return utils.ValidationErrorResponse(c, fieldErrors)
	}

	tag, err := h.tagService.Create(ctx, &req)
	if err != nil {
		return utils.InternalServerErrorResponse(c)
	}

	return utils.CreatedResponse(c, dto.TagToTagResponse(tag))
}

func (h *TagHandler) GetByID(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return utils.NotFoundResponse(c, tagNotFoundDetail)
	}

	tag, err := h.tagService.GetByID(ctx, uint(id))
	if err != nil {
		if errors.Is(err, models.ErrTagNotFound) {
			return utils.NotFoundResponse(c, tagNotFoundDetail)
		}
		return utils.InternalServerErrorResponse(c)
	}

	return utils.SuccessResponse(c, dto.TagToTagResponse(tag))
}

func (h *TagHandler) Update(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return utils.NotFoundResponse(c, tagNotFoundDetail)
	}

	var req dto.TagRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		fieldErrors := utils.GetValidationErrors(err)
		logger.WarnContext(ctx, "Validation failed", "errors", fieldErrors)
		return utils.ValidationErrorResponse(c, fieldErrors)
	}

	tag, err := h.tagService.Update(ctx, uint(id), &req)
	if err != nil {
		if errors.Is(err, models.ErrTagNotFound) {
			return utils.NotFoundResponse(c, tagNotFoundDetail)
		}
		return utils.InternalServerErrorResponse(c)
	}

	return utils.SuccessResponse(c, dto.TagToTagResponse(tag))
}

func (h *TagHandler) Delete(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return utils.NotFoundResponse(c, tagNotFoundDetail)
	}

	if err := h.tagService.Delete(ctx, uint(id)); err != nil {
		if errors.Is(err, models.ErrTagNotFound) {
			return utils.NotFoundResponse(c, tagNotFoundDetail)
		}
		return utils.InternalServerErrorResponse(c)
	}

	return utils.NoContentResponse(c)
}
