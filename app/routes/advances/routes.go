package advances

import (
	"github.com/Rounit002/citylibrary/app/config"
	"github.com/Rounit002/citylibrary/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

// SetupAdvancesRoutes sets up the advance payments routes
func SetupAdvancesRoutes(app *fiber.App) {
	api := app.Group("/api/advances")
	api.Use(auth.AuthMiddleware)

	api.Get("/", func(c *fiber.Ctx) error {
		return GetAdvancesAPI(c, config.GetDB())
	})

	api.Post("/", func(c *fiber.Ctx) error {
		return CreateAdvanceAPI(c, config.GetDB())
	})

	api.Delete("/:id", func(c *fiber.Ctx) error {
		return DeleteAdvanceAPI(c, config.GetDB())
	})
}
