package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tanaki1609/shop-api/pkg/utils"
)

// Protected validates the bearer key and sets the user context.
func Protected(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return utils.UnauthorizedResponse(c)
		}

		token := utils.ExtractTokenFromHeader(authHeader)
		if token == "" {
			return utils.UnauthorizedResponse(c)
		}

		userCtx, err := utils.ValidateTokenKey(token, jwtSecret)
		if err != nil {
			return utils.UnauthorizedResponse(c)
		}

		c.Locals("user", userCtx)

		return c.Next()
	}
}
