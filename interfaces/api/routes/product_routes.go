package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tanaki1609/shop-api/interfaces/api/handlers"
)

func SetupProductRoutes(app *fiber.App, h *handlers.Handlers) {
	app.Get("/", h.ProductHandler.List)
	app.Post("/", h.ProductHandler.Create)
	app.Get("/:id", h.ProductHandler.GetByID)
	app.Put("/:id", h.ProductHandler.Update)
	app.Delete("/:id", h.ProductHandler.Delete)
	app.Post("/:id/reviews", h.ProductHandler.AddReview)
}
