package main

import (
	"log"
	"os"
	"time"

	"github.com/Rounit002/citylibrary/app/config"
	"github.com/Rounit002/citylibrary/app/database"
	"github.com/Rounit002/citylibrary/app/routes/advances"
	"github.com/Rounit002/citylibrary/app/routes/auth"
	"github.com/Rounit002/citylibrary/app/routes/branches"
	"github.com/Rounit002/citylibrary/app/routes/collections"
	"github.com/Rounit002/citylibrary/app/routes/dashboard"
	"github.com/Rounit002/citylibrary/app/routes/lockers"
	"github.com/Rounit002/citylibrary/app/routes/seats"
	"github.com/Rounit002/citylibrary/app/routes/shifts"
	"github.com/Rounit002/citylibrary/app/routes/students"
	"github.com/Rounit002/citylibrary/app/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"
)

func init() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found or error loading .env file:", err)
	}
}

// apiErrorHandler renders every error as a JSON envelope
func apiErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"success": false,
		"error":   err.Error(),
		"code":    code,
	})
}

func main() {
	// Set global time zone to India Standard Time; billing months are
	// anchored to local calendar months.
	loc, err := time.LoadLocation("Asia/Kolkata")
	if err != nil {
		log.Printf("Warning: Failed to load Asia/Kolkata location, falling back to UTC+5:30: %v", err)
		time.Local = time.FixedZone("IST", 5*3600+1800)
	} else {
		time.Local = loc
	}
	log.Printf("Application time zone set to: %s", time.Local.String())

	// Initialize database
	config.InitDB()
	defer config.GetDB().Close()

	// Run database migrations
	if err := database.RunMigrations(config.GetDB()); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	// Start background scheduler
	services.StartScheduler(config.GetDB())

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: apiErrorHandler,
	})

	// Middleware
	app.Use(logger.New())
	app.Use(cors.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// Setup auth routes
	auth.SetupAuthRoutes(app)

	// Setup dashboard routes
	dashboard.SetupDashboardRoutes(app)

	// Setup students routes
	students.SetupStudentsRoutes(app)

	// Setup branches routes
	branches.SetupBranchesRoutes(app)

	// Setup shifts routes
	shifts.SetupShiftsRoutes(app)

	// Setup seats routes
	seats.SetupSeatsRoutes(app)

	// Setup lockers routes
	lockers.SetupLockersRoutes(app)

	// Setup collections routes
	collections.SetupCollectionsRoutes(app)

	// Setup advance payments routes
	advances.SetupAdvancesRoutes(app)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
