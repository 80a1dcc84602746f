package main

import (
	"log"
	"os"

	"pathfinder/config"
	"pathfinder/database"
	"pathfinder/docstore"
	applogger "pathfinder/logger"
	authRoutes "pathfinder/routers/authRoutes"
	catalogRoutes "pathfinder/routers/catalogRoutes"
	onboardingRoutes "pathfinder/routers/onboardingRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	if err := applogger.InitLogger(os.Getenv("APP_ENV") == "development"); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	database.ConnectDb()
	database.SeedCatalogs(database.Database.Db)
	docstore.ConnectDocStore()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",        // Allowed HTTP methods
		AllowHeaders: "Content-Type,Authorization", // Allowed headers
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	authRoutes.SetupAuthRoutes(app)
	onboardingRoutes.SetupOnboardingRoutes(app)
	catalogRoutes.SetupCatalogRoutes(app)

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
