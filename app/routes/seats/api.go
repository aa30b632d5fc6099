package seats

import (
	"database/sql"

	"github.com/Rounit002/citylibrary/app/database"
	"github.com/Rounit002/citylibrary/app/models"

	"github.com/gofiber/fiber/v2"
)

// GetSeatsAPI lists seats with their occupants
func GetSeatsAPI(c *fiber.Ctx, db *sql.DB) error {
	seats, err := database.GetSeats(db, c.Query("branch_id"))
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch seats")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    seats,
	})
}

func CreateSeatAPI(c *fiber.Ctx, db *sql.DB) error {
	var seat models.Seat
	if err := c.BodyParser(&seat); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	if seat.BranchID == "" || seat.SeatNumber == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Branch and seat number are required")
	}
	seat.IsActive = true

	if err := database.CreateSeat(db, &seat); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create seat")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    seat,
		"message": "Seat created successfully",
	})
}

func UpdateSeatAPI(c *fiber.Ctx, db *sql.DB) error {
	var seat models.Seat
	if err := c.BodyParser(&seat); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	seat.ID = c.Params("id")
	if seat.SeatNumber == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Seat number is required")
	}

	if err := database.UpdateSeat(db, &seat); err != nil {
		if err == database.ErrFacilityNotFound {
			return fiber.NewError(fiber.StatusNotFound, "Seat not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update seat")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Seat updated successfully",
	})
}

func DeleteSeatAPI(c *fiber.Ctx, db *sql.DB) error {
	if err := database.DeleteSeat(db, c.Params("id")); err != nil {
		if err == database.ErrFacilityNotFound {
			return fiber.NewError(fiber.StatusNotFound, "Seat not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete seat")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Seat deleted successfully",
	})
}
