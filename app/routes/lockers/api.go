package lockers

import (
	"database/sql"

	"github.com/Rounit002/citylibrary/app/database"
	"github.com/Rounit002/citylibrary/app/models"

	"github.com/gofiber/fiber/v2"
)

// GetLockersAPI lists lockers with their holders
func GetLockersAPI(c *fiber.Ctx, db *sql.DB) error {
	lockers, err := database.GetLockers(db, c.Query("branch_id"))
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch lockers")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    lockers,
	})
}

func CreateLockerAPI(c *fiber.Ctx, db *sql.DB) error {
	var locker models.Locker
	if err := c.BodyParser(&locker); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	if locker.BranchID == "" || locker.LockerNumber == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Branch and locker number are required")
	}
	locker.IsActive = true

	if err := database.CreateLocker(db, &locker); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create locker")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    locker,
		"message": "Locker created successfully",
	})
}

func UpdateLockerAPI(c *fiber.Ctx, db *sql.DB) error {
	var locker models.Locker
	if err := c.BodyParser(&locker); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	locker.ID = c.Params("id")
	if locker.LockerNumber == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Locker number is required")
	}

	if err := database.UpdateLocker(db, &locker); err != nil {
		if err == database.ErrFacilityNotFound {
			return fiber.NewError(fiber.StatusNotFound, "Locker not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update locker")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Locker updated successfully",
	})
}

func DeleteLockerAPI(c *fiber.Ctx, db *sql.DB) error {
	if err := database.DeleteLocker(db, c.Params("id")); err != nil {
		if err == database.ErrFacilityNotFound {
			return fiber.NewError(fiber.StatusNotFound, "Locker not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete locker")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Locker deleted successfully",
	})
}
