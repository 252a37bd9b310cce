package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/tanaki1609/shop-api/pkg/logger"
	"github.com/tanaki1609/shop-api/pkg/utils"
)

// ErrorHandler converts uncaught errors into the detail-body error shape.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		message := "Internal server error"

		var e *fiber.Error
		if errors.As(err, &e) {
			code = e.Code
			message = e.Message
		}

		logger.ErrorContext(c.UserContext(), "Unhandled error",
			"method", c.Method(),
			"path", c.Path(),
			"status", code,
			"error", err,
		)

		return c.Status(code).JSON(utils.DetailResponse{Detail: message})
	}
}
