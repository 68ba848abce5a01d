package main

import (
	"log"

	"quizapi/config"
	"quizapi/database"
	attemptRoutes "quizapi/routers/attemptRoutes"
	authRoutes "quizapi/routers/authRoutes"
	resultRoutes "quizapi/routers/resultRoutes"
	"quizapi/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

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

	// Serve the quiz frontend from the public folder
	app.Static("/", "./public")

	authRoutes.SetupAuthRoutes(app)
	resultRoutes.SetupResultRoutes(app, database.Database.Db)
	attemptRoutes.SetupAttemptRoutes(app, database.Database.Db)

	utils.InitializeRetentionScheduler(database.Database.Db)

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
