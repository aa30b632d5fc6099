package branches

import (
	"github.com/Rounit002/citylibrary/app/config"
	"github.com/Rounit002/citylibrary/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

// SetupBranchesRoutes sets up the branches routes
func SetupBranchesRoutes(app *fiber.App) {
	api := app.Group("/api/branches")
	api.Use(auth.AuthMiddleware)

	api.Get("/", func(c *fiber.Ctx) error {
		return GetBranchesAPI(c, config.GetDB())
	})

	api.Post("/", func(c *fiber.Ctx) error {
		return CreateBranchAPI(c, config.GetDB())
	})

	api.Put("/:id", func(c *fiber.Ctx) error {
		return UpdateBranchAPI(c, config.GetDB())
	})

	api.Delete("/:id", func(c *fiber.Ctx) error {
		return DeleteBranchAPI(c, config.GetDB())
	})
}
