package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/Ishwar78/manavwelfaresevasociety.com-sub000/internal/adapters/http/middleware"
	"github.com/Ishwar78/manavwelfaresevasociety.com-sub000/internal/adapters/http/routes"
	"github.com/Ishwar78/manavwelfaresevasociety.com-sub000/internal/adapters/persistence/models"
	"github.com/Ishwar78/manavwelfaresevasociety.com-sub000/internal/config"
	"github.com/Ishwar78/manavwelfaresevasociety.com-sub000/internal/core/services"

	"github.com/gofiber/fiber/v2"
)

// @title Manav Welfare Seva Society API
// @version 1.0
// @description Backend API for the Manav Welfare Seva Society website and back office.
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.email support@manavwelfaresevasociety.com

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host api.manavwelfaresevasociety.com
// @BasePath /api/v1
// @schemes https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load configuration: %v", err)
	}

	// Connect to database
	db, err := config.ConnectDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}
	defer config.CloseDatabase()

	// Auto migrate (creates tables if not exist)
	if err := models.AutoMigrate(db); err != nil {
		log.Fatalf("❌ Failed to auto migrate: %v", err)
	}
	log.Println("✅ Database migration completed")

	// Seed default admin, fee structures, menu and site settings
	if err := config.NewSeeder(db).Run(); err != nil {
		log.Printf("⚠️ Warning: Failed to seed master data: %v", err)
	}

	// Start cron service for token purge and the stale-claim digest
	notifyService := services.NewNotificationService(cfg)
	cronService := services.NewCronService(db, notifyService)
	cronService.Start()
	defer cronService.Stop()

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Manav Welfare Seva Society API v1.0",
		ErrorHandler: middleware.CustomErrorHandler,
	})

	// Setup middlewares
	middleware.Setup(app, cfg)

	// Setup routes (pass db and cfg for dependency injection)
	routes.Setup(app, db, cfg)

	// Graceful shutdown
	go gracefulShutdown(app)

	// Start server
	log.Printf("🚀 Server starting on port %s [MODE: %s]", cfg.Port, cfg.AppMode)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// gracefulShutdown handles graceful shutdown
func gracefulShutdown(app *fiber.App) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Printf("❌ Error during shutdown: %v", err)
	}
	log.Println("✅ Server stopped gracefully")
}
