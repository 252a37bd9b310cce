package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tanaki1609/shop-api/interfaces/api/handlers"
	"github.com/tanaki1609/shop-api/interfaces/api/middleware"
)

func SetupUserRoutes(app *fiber.App, h *handlers.Handlers) {
	users := app.Group("/users")

	users.Post("/registration", h.UserHandler.Register)
	users.Post("/authorization", h.UserHandler.Authorize)
	users.Get("/me", middleware.Protected(h.JWTSecret), h.UserHandler.GetProfile)
}
