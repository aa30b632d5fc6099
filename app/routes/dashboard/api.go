package dashboard

import (
	"database/sql"

	"github.com/Rounit002/citylibrary/app/database"

	"github.com/gofiber/fiber/v2"
)

// GetStatsAPI returns the stat cards for the admin dashboard
func GetStatsAPI(c *fiber.Ctx, db *sql.DB) error {
	stats, err := database.GetDashboardStats(db)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch dashboard stats")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    stats,
	})
}
