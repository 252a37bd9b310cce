package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tanaki1609/shop-api/interfaces/api/handlers"
)

func SetupTagRoutes(app *fiber.App, h *handlers.Handlers) {
	tags := app.Group("/tags")

	tags.Get("/", h.TagHandler.List)
	tags.Post("/", h.TagHandler.Create)
	tags.Get("/:id", h.TagHandler.GetByID)
	tags.Put("/:id", h.TagHandler.Update)
	tags.Delete("/:id", h.TagHandler.Delete)
}
