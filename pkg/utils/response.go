package utils

import (
	"github.com/gofiber/fiber/v2"
)

// DetailResponse is the body shape for detail-style errors (404 and friends).
type DetailResponse struct {
	Detail string `json:"detail"`
}

// FieldErrors maps a payload field to its validation messages.
type FieldErrors map[string][]string

// ========== Success Responses ==========

func SuccessResponse(c *fiber.Ctx, data any) error {
	return c.Status(fiber.StatusOK).JSON(data)
}

func CreatedResponse(c *fiber.Ctx, data any) error {
	return c.Status(fiber.StatusCreated).JSON(data)
}

func NoContentResponse(c *fiber.Ctx) error {
	return c.SendStatus(fiber.StatusNoContent)
}

// ========== Error Responses ==========

func BadRequestResponse(c *fiber.Ctx, detail string) error {
	return c.Status(fiber.StatusBadRequest).JSON(DetailResponse{Detail: detail})
}

// ValidationErrorResponse returns the field-keyed error map as the 400 body.
func ValidationErrorResponse(c *fiber.Ctx, fields FieldErrors) error {
	return c.Status(fiber.StatusBadRequest).JSON(fields)
}

// FieldErrorResponse reports a single-field validation failure.
func FieldErrorResponse(c *fiber.Ctx, field, message string) error {
	return ValidationErrorResponse(c, FieldErrors{field: {message}})
}

// UnauthorizedResponse carries no body beyond the status.
func UnauthorizedResponse(c *fiber.Ctx) error {
	return c.SendStatus(fiber.StatusUnauthorized)
}

func NotFoundResponse(c *fiber.Ctx, detail string) error {
	if detail == "" {
		detail = "Not found."
	}
	return c.Status(fiber.StatusNotFound).JSON(DetailResponse{Detail: detail})
}

func InternalServerErrorResponse(c *fiber.Ctx) error {
	return c.Status(fiber.StatusInternalServerError).JSON(DetailResponse{Detail: "Internal server error"})
}
