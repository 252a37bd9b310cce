package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tanaki1609/shop-api/interfaces/api/handlers"
)

// SetupRoutes registers all application routes. Product routes sit at the
// root of the API, so they are registered last to keep the named groups
// from being shadowed by the /:id parameter.
func SetupRoutes(app *fiber.App, h *handlers.Handlers) {
	SetupHealthRoutes(app)
	SetupCategoryRoutes(app, h)
	SetupTagRoutes(app, h)
	SetupUserRoutes(app, h)
	SetupProductRoutes(app, h)
}
