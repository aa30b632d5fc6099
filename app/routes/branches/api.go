package branches

import (
	"database/sql"

	"github.com/Rounit002/citylibrary/app/database"
	"github.com/Rounit002/citylibrary/app/models"

	"github.com/gofiber/fiber/v2"
)

func GetBranchesAPI(c *fiber.Ctx, db *sql.DB) error {
	branches, err := database.GetBranches(db)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch branches")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    branches,
	})
}

func CreateBranchAPI(c *fiber.Ctx, db *sql.DB) error {
	var branch models.Branch
	if err := c.BodyParser(&branch); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	if branch.Name == "" || branch.Code == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Name and code are required")
	}
	branch.IsActive = true

	if err := database.CreateBranch(db, &branch); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create branch")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    branch,
		"message": "Branch created successfully",
	})
}

func UpdateBranchAPI(c *fiber.Ctx, db *sql.DB) error {
	var branch models.Branch
	if err := c.BodyParser(&branch); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	branch.ID = c.Params("id")
	if branch.Name == "" || branch.Code == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Name and code are required")
	}

	if err := database.UpdateBranch(db, &branch); err != nil {
		if err == database.ErrFacilityNotFound {
			return fiber.NewError(fiber.StatusNotFound, "Branch not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update branch")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Branch updated successfully",
	})
}

func DeleteBranchAPI(c *fiber.Ctx, db *sql.DB) error {
	if err := database.DeleteBranch(db, c.Params("id")); err != nil {
		if err == database.ErrFacilityNotFound {
			return fiber.NewError(fiber.StatusNotFound, "Branch not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete branch")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Branch deleted successfully",
	})
}
