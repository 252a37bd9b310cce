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

const productNotFoundDetail = "Product not found!"

type ProductHandler struct {
	productService services.ProductService
	pageSize       int
}

func NewProductHandler(productService services.ProductService, pageSize int) *ProductHandler {
	return &ProductHandler{
		productService: productService,
		pageSize:       pageSize,
	}
}

// List handles GET / with an optional ?search= title filter.
func (h *ProductHandler) List(c *fiber.Ctx) error {
	ctx := c.UserContext()

	search := c.Query("search")
	page, size := utils.ParsePagination(c, h.pageSize)

	products, total, err := h.productService.List(ctx, search, (page-1)*size, size)
	if err != nil {
		return utils.InternalServerErrorResponse(c)
	}

	next, previous := utils.PageLinks(c, page, size, total)
	return utils.SuccessResponse(c, dto.ListEnvelope{
		Total:    total,
		Next:     next,
		Previous: previous,
		Results:  dto.ProductsToProductResponses(products),
	})
}

// Create handles POST /.
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req dto.ProductRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		fieldErrors := utils.GetValidationErrors(err)
		logger.WarnContext(ctx, "Validation failed", "errors", fieldErrors)
		return utils.ValidationErrorResponse(c, fieldErrors)
	}

	product, err := h.productService.Create(ctx, &req)
	if err != nil {
		return productPayloadError(c, err)
	}

	return utils.CreatedResponse(c, dto.ProductCreatedResponse{ProductID: product.ID})
}

// GetByID handles GET /:id.
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return utils.NotFoundResponse(c, productNotFoundDetail)
	}

	product, err := h.productService.GetByID(ctx, uint(id))
	if err != nil {
		if errors.Is(err, models.ErrProductNotFound) {
			return utils.NotFoundResponse(c, productNotFoundDetail)
		}
		return utils.InternalServerErrorResponse(c)
	}

	return utils.SuccessResponse(c, dto.ProductToProductResponse(product))
}

// Update handles PUT /:id. The response keeps the long-standing 201 status.
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return utils.NotFoundResponse(c, productNotFoundDetail)
	}

	// Missing product wins over a malformed payload.
	if _, err := h.productService.GetByID(ctx, uint(id)); err != nil {
		if errors.Is(err, models.ErrProductNotFound) {
			return utils.NotFoundResponse(c, productNotFoundDetail)
		}
		return utils.InternalServerErrorResponse(c)
	}

	var req dto.ProductRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		fieldErrors := utils.GetValidationErrors(err)
		logger.WarnContext(ctx, "Validation failed", "errors", fieldErrors)
		return utils.ValidationErrorResponse(c, fieldErrors)
	}

	product, err := h.productService.Update(ctx, uint(id), &req)
	if err != nil {
		if errors.Is(err, models.ErrProductNotFound) {
			return utils.NotFoundResponse(c, productNotFoundDetail)
		}
		return productPayloadError(c, err)
	}

	return utils.CreatedResponse(c, dto.ProductToProductResponse(product))
}

// Delete handles DELETE /:id.
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return utils.NotFoundResponse(c, productNotFoundDetail)
	}

	if err := h.productService.Delete(ctx, uint(id)); err != nil {
		if errors.Is(err, models.ErrProductNotFound) {
			return utils.NotFoundResponse(c, productNotFoundDetail)
		}
		return utils.InternalServerErrorResponse(c)
	}

	return utils.NoContentResponse(c)
}

// AddReview handles POST /:id/reviews.
func (h *ProductHandler) AddReview(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return utils.NotFoundResponse(c, productNotFoundDetail)
	}

	var req dto.ReviewRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		fieldErrors := utils.GetValidationErrors(err)
		logger.WarnContext(ctx, "Validation failed", "errors", fieldErrors)
		return utils.ValidationErrorResponse(c, fieldErrors)
	}

	review, err := h.productService.AddReview(ctx, uint(id), &req)
	if err != nil {
		if errors.Is(err, models.ErrProductNotFound) {
			return utils.NotFoundResponse(c, productNotFoundDetail)
		}
		return utils.InternalServerErrorResponse(c)
	}

	return utils.CreatedResponse(c, dto.ReviewCreatedResponse{ReviewID: review.ID})
}

// productPayloadError maps referential failures onto their payload field.
func productPayloadError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, models.ErrCategoryDoesNotExist):
		return utils.FieldErrorResponse(c, "category_id", err.Error())
	case errors.Is(err, models.ErrTagsDoNotExist):
		return utils.FieldErrorResponse(c, "tags", err.Error())
	default:
		return utils.InternalServerErrorResponse(c)
	}
}
