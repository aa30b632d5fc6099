package students

import (
	"database/sql"
	"math"

	"github.com/Rounit002/citylibrary/app/database"
	"github.com/Rounit002/citylibrary/app/models"

	"github.com/gofiber/fiber/v2"
)

// Amounts arrive as JSON floats, so money checks allow a paisa of drift.
const amountTolerance = 0.01

func validateNewStudent(s *models.Student) error {
	if s.Name == "" || s.Phone == "" || s.RegistrationNo == "" ||
		s.BranchID == "" || s.ShiftID == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Missing required fields")
	}
	if s.MembershipStart.IsZero() || s.MembershipEnd.IsZero() {
		return fiber.NewError(fiber.StatusBadRequest, "Membership start and end dates are required")
	}
	if s.TotalFee < 0 || s.AmountPaid < 0 || s.AmountPaid > s.TotalFee+amountTolerance {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid fee amounts")
	}
	if math.Abs(s.Cash+s.Online-s.AmountPaid) > amountTolerance {
		return fiber.NewError(fiber.StatusBadRequest, "Cash and online must add up to amount paid")
	}
	return nil
}

// GetStudentsAPI returns students with optional filtering
func GetStudentsAPI(c *fiber.Ctx, db *sql.DB) error {
	filters := database.StudentFilters{
		Search:   c.Query("search"),
		Status:   c.Query("status"),
		BranchID: c.Query("branch_id"),
		ShiftID:  c.Query("shift_id"),
		Limit:    c.QueryInt("limit", 0),
		Offset:   c.QueryInt("offset", 0),
	}

	if filters.Status != "" &&
		filters.Status != string(models.StudentActive) &&
		filters.Status != string(models.StudentInactive) {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid status filter")
	}

	students, err := database.GetStudents(db, filters)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch students")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    students,
	})
}

// GetStudentAPI returns a single student snapshot
func GetStudentAPI(c *fiber.Ctx, db *sql.DB) error {
	student, err := database.GetStudentByID(db, c.Params("id"))
	if err != nil {
		if err == database.ErrStudentNotFound {
			return fiber.NewError(fiber.StatusNotFound, "Student not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch student")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    student,
	})
}

// CreateStudentAPI registers a student and opens their first ledger row
func CreateStudentAPI(c *fiber.Ctx, db *sql.DB) error {
	var student models.Student
	if err := c.BodyParser(&student); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	if err := validateNewStudent(&student); err != nil {
		return err
	}

	if student.Gender == "" {
		student.Gender = models.Other
	}
	student.Status = models.StudentActive

	if err := database.CreateStudent(db, &student); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create student")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    student,
		"message": "Student registered successfully",
	})
}

// UpdateStudentAPI updates identity and assignment fields
func UpdateStudentAPI(c *fiber.Ctx, db *sql.DB) error {
	var student models.Student
	if err := c.BodyParser(&student); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	student.ID = c.Params("id")
	if student.Name == "" || student.Phone == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Missing required fields")
	}

	if err := database.UpdateStudent(db, &student); err != nil {
		if err == database.ErrStudentNotFound {
			return fiber.NewError(fiber.StatusNotFound, "Student not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update student")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Student updated successfully",
	})
}

// DeleteStudentAPI soft deletes a student
func DeleteStudentAPI(c *fiber.Ctx, db *sql.DB) error {
	if err := database.DeleteStudent(db, c.Params("id")); err != nil {
		if err == database.ErrStudentNotFound {
			return fiber.NewError(fiber.StatusNotFound, "Student not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete student")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Student deleted successfully",
	})
}

// SetStudentStatusAPI activates or deactivates a student membership
func SetStudentStatusAPI(c *fiber.Ctx, db *sql.DB, activate bool) error {
	status := models.StudentInactive
	if activate {
		status = models.StudentActive
	}

	if err := database.SetStudentStatus(db, c.Params("id"), status); err != nil {
		if err == database.ErrStudentNotFound {
			return fiber.NewError(fiber.StatusNotFound, "Student not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update student status")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Student status updated successfully",
	})
}
