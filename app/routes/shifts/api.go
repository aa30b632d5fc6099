package shifts

import (
	"database/sql"
	"time"

	"github.com/Rounit002/citylibrary/app/database"
	"github.com/Rounit002/citylibrary/app/models"

	"github.com/gofiber/fiber/v2"
)

func validShiftTime(s string) bool {
	_, err := time.Parse("15:04", s)
	return err == nil
}

func GetShiftsAPI(c *fiber.Ctx, db *sql.DB) error {
	shifts, err := database.GetShifts(db, c.Query("branch_id"))
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch shifts")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    shifts,
	})
}

func CreateShiftAPI(c *fiber.Ctx, db *sql.DB) error {
	var shift models.Shift
	if err := c.BodyParser(&shift); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	if shift.BranchID == "" || shift.Name == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Branch and name are required")
	}
	if !validShiftTime(shift.StartTime) || !validShiftTime(shift.EndTime) {
		return fiber.NewError(fiber.StatusBadRequest, "Times must be in HH:MM format")
	}
	if shift.MonthlyFee < 0 {
		return fiber.NewError(fiber.StatusBadRequest, "Monthly fee cannot be negative")
	}
	shift.IsActive = true

	if err := database.CreateShift(db, &shift); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create shift")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    shift,
		"message": "Shift created successfully",
	})
}

func UpdateShiftAPI(c *fiber.Ctx, db *sql.DB) error {
	var shift models.Shift
	if err := c.BodyParser(&shift); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	shift.ID = c.Params("id")
	if shift.Name == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Name is required")
	}
	if !validShiftTime(shift.StartTime) || !validShiftTime(shift.EndTime) {
		return fiber.NewError(fiber.StatusBadRequest, "Times must be in HH:MM format")
	}

	// A shift stays in its branch; students reference branch and shift
	// independently, so moving one would desync their assignments.
	existing, err := database.GetShiftByID(db, shift.ID)
	if err != nil {
		if err == database.ErrFacilityNotFound {
			return fiber.NewError(fiber.StatusNotFound, "Shift not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch shift")
	}
	if shift.BranchID != "" && shift.BranchID != existing.BranchID {
		return fiber.NewError(fiber.StatusBadRequest, "Shift cannot be moved to another branch")
	}

	if err := database.UpdateShift(db, &shift); err != nil {
		if err == database.ErrFacilityNotFound {
			return fiber.NewError(fiber.StatusNotFound, "Shift not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update shift")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Shift updated successfully",
	})
}

func DeleteShiftAPI(c *fiber.Ctx, db *sql.DB) error {
	if err := database.DeleteShift(db, c.Params("id")); err != nil {
		if err == database.ErrFacilityNotFound {
			return fiber.NewError(fiber.StatusNotFound, "Shift not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete shift")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Shift deleted successfully",
	})
}
