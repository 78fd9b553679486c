package FiberConfig

import (
	"fmt"
	"os"
	"time"

	"Fleet/Apis"
	"Fleet/Controllers"
	"Fleet/Models"
	"Fleet/Reports"
	"Fleet/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/template/html"
	"gorm.io/gorm"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// Initialize handlers
	tripHandler := Controllers.NewTripHandler(db)
	expenseHandler := Controllers.NewExpenseHandler(db)
	reportHandler := Reports.NewReportHandler(db)

	// API group
	api := app.Group("/api")

	// Auth routes
	api.Post("/login", Controllers.Login)
	api.Post("/register", middleware.Verify(3), Controllers.RegisterUser)
	api.Get("/user", middleware.Verify(1), Controllers.User)
	api.Post("/logout", Controllers.Logout)
	api.Get("/validate_token", middleware.Verify(1), Controllers.ValidateToken)
	api.Get("/users", middleware.Verify(3), Controllers.FetchUsers)
	api.Post("/UpdateToken", Models.UpdateToken)

	// Bus routes
	buses := api.Group("/buses", middleware.Verify(1))
	buses.Get("/", Apis.GetBuses)
	buses.Get("/:id", Apis.GetBusById)
	buses.Post("/", middleware.Verify(3), Apis.RegisterBus)
	buses.Put("/:id", middleware.Verify(3), Apis.UpdateBus)
	buses.Delete("/:id", middleware.Verify(3), Apis.DeleteBus)
	buses.Get("/:id/tax-records", middleware.Verify(3), Apis.GetBusTaxRecords)
	buses.Post("/:id/tax-payments", middleware.Verify(3), Apis.PayBusTax)

	// Route routes
	routes := api.Group("/routes", middleware.Verify(1))
	routes.Get("/", Apis.GetRoutes)
	routes.Post("/", middleware.Verify(3), Apis.CreateRoute)
	routes.Put("/:id", middleware.Verify(3), Apis.UpdateRoute)
	routes.Delete("/:id", middleware.Verify(3), Apis.DeleteRoute)

	// Schedule routes
	schedules := api.Group("/schedules", middleware.Verify(3))
	schedules.Get("/", Apis.GetSchedules)
	schedules.Post("/", Apis.CreateSchedule)
	schedules.Put("/:id", Apis.UpdateSchedule)
	schedules.Patch("/:id/active", Apis.SetScheduleActive)
	schedules.Delete("/:id", Apis.DeleteSchedule)

	// Trip routes
	trips := api.Group("/trips", middleware.Verify(1))
	trips.Get("/", tripHandler.GetAllTrips)
	trips.Get("/:id", tripHandler.GetTrip)
	trips.Post("/", middleware.Verify(3), tripHandler.CreateTrip)
	trips.Put("/:id", tripHandler.UpdateTrip)
	trips.Put("/:id/revenue", tripHandler.UpdateRevenue)
	trips.Delete("/:id", middleware.Verify(3), tripHandler.DeleteTrip)

	// Expense routes
	expenses := api.Group("/expenses", middleware.Verify(1))
	expenses.Get("/", expenseHandler.GetExpenses)
	expenses.Post("/", expenseHandler.CreateExpense)
	expenses.Put("/:id", expenseHandler.UpdateExpense)
	expenses.Patch("/:id/review", middleware.Verify(3), expenseHandler.ReviewExpense)
	expenses.Delete("/:id", expenseHandler.DeleteExpense)
	api.Post("/UploadExpenseDocument", middleware.Verify(1), Apis.UploadExpenseDocument)

	// Stock routes
	stock := api.Group("/stock", middleware.Verify(1))
	stock.Get("/items", Apis.GetStockItems)
	stock.Post("/items", middleware.Verify(3), Apis.CreateStockItem)
	stock.Put("/items/:id", middleware.Verify(3), Apis.UpdateStockItem)
	stock.Get("/transactions", Apis.GetStockTransactions)
	stock.Post("/transactions", Apis.RecordStockTransaction)

	// Notification routes
	notifications := api.Group("/notifications", middleware.Verify(1))
	notifications.Get("/", Apis.GetMyNotifications)
	notifications.Patch("/:id/read", Apis.MarkNotificationRead)
	notifications.Patch("/read-all", Apis.MarkAllNotificationsRead)

	// Settings routes
	settings := api.Group("/settings", middleware.Verify(3))
	settings.Get("/", Apis.GetSettings)
	settings.Put("/", Apis.UpdateSetting)

	// Report routes
	reports := api.Group("/reports", middleware.Verify(3))
	reports.Get("/period-trip-sheet", reportHandler.ExportPeriodTripSheet)
	reports.Get("/trips/:id/sheet", reportHandler.ExportTripSheet)
}

func FiberConfig() {
	fmt.Println("Server Up...")
	engine := html.New("./Templates", ".html")
	// Html Template engine
	app := fiber.New(fiber.Config{
		Views: engine,
	})
	app.Use(middleware.RequestLogger())
	app.Use(middleware.ErrorLogger())
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestCompression, // 2
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins:     "*",
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS,PATCH",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, X-Requested-With",
		AllowCredentials: true, // Important for cookies
		MaxAge:           300,
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	SetupRoutes(app, Models.DB)

	// Serve uploaded expense documents
	app.Static("/expense-docs", "./ExpenseDocs", fiber.Static{Compress: true, CacheDuration: time.Second * 10})

	port := os.Getenv("PORT")
	if port == "" {
		port = "3001"
	}
	app.Listen(":" + port)
}
