package advances

import (
	"database/sql"
	"time"

	"github.com/Rounit002/citylibrary/app/database"
	"github.com/Rounit002/citylibrary/app/models"

	"github.com/gofiber/fiber/v2"
)

// GetAdvancesAPI lists advance payments, optionally for one student
func GetAdvancesAPI(c *fiber.Ctx, db *sql.DB) error {
	payments, err := database.GetAdvancePayments(db, c.Query("student_id"))
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch advance payments")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    payments,
	})
}

// CreateAdvanceAPI records an advance payment
func CreateAdvanceAPI(c *fiber.Ctx, db *sql.DB) error {
	var payment models.AdvancePayment
	if err := c.BodyParser(&payment); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	if payment.StudentID == "" {
		return fiber.NewError(fiber.StatusBadRequest, "student_id is required")
	}
	if payment.Amount <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "Amount must be greater than zero")
	}
	if payment.Method == "" {
		payment.Method = models.PaymentCash
	}
	if !payment.Method.IsValid() {
		return fiber.NewError(fiber.StatusBadRequest, "Payment method must be cash or online")
	}
	if payment.PaymentDate.IsZero() {
		payment.PaymentDate = time.Now()
	}

	if err := database.CreateAdvancePayment(db, &payment); err != nil {
		if err == database.ErrStudentNotFound {
			return fiber.NewError(fiber.StatusNotFound, "Student not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create advance payment")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    payment,
		"message": "Advance payment recorded successfully",
	})
}

// DeleteAdvanceAPI removes an advance payment
func DeleteAdvanceAPI(c *fiber.Ctx, db *sql.DB) error {
	if err := database.DeleteAdvancePayment(db, c.Params("id")); err != nil {
		if err == database.ErrAdvanceNotFound {
			return fiber.NewError(fiber.StatusNotFound, "Advance payment not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete advance payment")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Advance payment deleted successfully",
	})
}
