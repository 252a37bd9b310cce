package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tanaki1609/shop-api/interfaces/api/handlers"
)

func SetupCategoryRoutes(app *fiber.App, h *handlers.Handlers) {
	categories := app.Group("/categories")

	categories.Get("/", h.CategoryHandler.List)
	categories.Post("/", h.CategoryHandler.Create)
	categories.Get("/slug/:slug", h.CategoryHandler.GetBySlug)
	categories.Get("/:id", h.CategoryHandler.GetByID)
	categories.Put("/:id", h.CategoryHandler.Update)
	categories.Delete("/:id", h.CategoryHandler.Delete)
}
