package lockers

import (
	"github.com/Rounit002/citylibrary/app/config"
	"github.com/Rounit002/citylibrary/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

// SetupLockersRoutes sets up the lockers routes
func SetupLockersRoutes(app *fiber.App) {
	api := app.Group("/api/lockers")
	api.Use(auth.AuthMiddleware)

	api.Get("/", func(c *fiber.Ctx) error {
		return GetLockersAPI(c, config.GetDB())
	})

	api.Post("/", func(c *fiber.Ctx) error {
		return CreateLockerAPI(c, config.GetDB())
	})

	api.Put("/:id", func(c *fiber.Ctx) error {
		return UpdateLockerAPI(c, config.GetDB())
	})

	api.Delete("/:id", func(c *fiber.Ctx) error {
		return DeleteLockerAPI(c, config.GetDB())
	})
}
