package collections

import (
	"github.com/Rounit002/citylibrary/app/config"
	"github.com/Rounit002/citylibrary/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

// SetupCollectionsRoutes sets up the collections routes
func SetupCollectionsRoutes(app *fiber.App) {
	api := app.Group("/api/collections")
	api.Use(auth.AuthMiddleware)

	api.Get("/", func(c *fiber.Ctx) error {
		return GetCollectionsAPI(c, config.GetDB())
	})

	api.Get("/dues", func(c *fiber.Ctx) error {
		return GetDuesAPI(c, config.GetDB())
	})

	api.Get("/:id", func(c *fiber.Ctx) error {
		return GetCollectionAPI(c, config.GetDB())
	})

	api.Post("/:id/pay", func(c *fiber.Ctx) error {
		return PayCollectionAPI(c, config.GetDB())
	})

	api.Delete("/:id", func(c *fiber.Ctx) error {
		return DeleteCollectionAPI(c, config.GetDB())
	})
}
