package collections

import (
	"database/sql"
	"time"

	"github.com/Rounit002/citylibrary/app/database"
	"github.com/Rounit002/citylibrary/app/models"

	"github.com/gofiber/fiber/v2"
)

// PayRequest is the body for applying a payment to a ledger row.
type PayRequest struct {
	Amount float64              `json:"amount"`
	Method models.PaymentMethod `json:"method"`
}

// GetCollectionsAPI returns ledger rows, filterable by month and branch
func GetCollectionsAPI(c *fiber.Ctx, db *sql.DB) error {
	filters := database.CollectionFilters{
		BranchID: c.Query("branch_id"),
	}

	if month := c.Query("month"); month != "" {
		parsed, err := time.Parse("2006-01", month)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid month format, expected YYYY-MM")
		}
		filters.Month = parsed
	}

	records, err := database.ListCollections(db, filters)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch collections")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    records,
	})
}

// GetDuesAPI returns ledger rows that still carry an outstanding due
func GetDuesAPI(c *fiber.Ctx, db *sql.DB) error {
	filters := database.CollectionFilters{
		BranchID: c.Query("branch_id"),
		DuesOnly: true,
	}

	records, err := database.ListCollections(db, filters)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch dues")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    records,
	})
}

// GetCollectionAPI returns a single ledger row
func GetCollectionAPI(c *fiber.Ctx, db *sql.DB) error {
	record, err := database.GetHistoryByID(db, c.Params("id"))
	if err != nil {
		if err == database.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "Collection record not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch collection record")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    record,
	})
}

// PayCollectionAPI applies a payment against a ledger row. Payments on the
// current month's row update it in place; payments on an older row settle
// its due through a new current-month row.
func PayCollectionAPI(c *fiber.Ctx, db *sql.DB) error {
	var req PayRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	if req.Amount <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "Payment amount must be greater than zero")
	}
	if !req.Method.IsValid() {
		return fiber.NewError(fiber.StatusBadRequest, "Payment method must be cash or online")
	}

	record, err := database.SettleDuePayment(db, c.Params("id"), req.Amount, req.Method)
	if err != nil {
		switch err {
		case database.ErrRecordNotFound:
			return fiber.NewError(fiber.StatusNotFound, "Collection record not found")
		case database.ErrStudentNotFound:
			return fiber.NewError(fiber.StatusNotFound, "Student not found")
		case database.ErrExceedsDue:
			return fiber.NewError(fiber.StatusBadRequest, "Payment amount exceeds due amount")
		default:
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to apply payment")
		}
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    record,
		"message": "Payment recorded successfully",
	})
}

// DeleteCollectionAPI soft deletes a ledger row
func DeleteCollectionAPI(c *fiber.Ctx, db *sql.DB) error {
	if err := database.DeleteHistory(db, c.Params("id")); err != nil {
		if err == database.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "Collection record not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete collection record")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Collection record deleted successfully",
	})
}
