package authRoutes

import (
	authControllers "quizapi/controllers/auth"
	"quizapi/middleware"
	authValidators "quizapi/validators/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App) {
	api := app.Group("/api")

	api.Post("/login", authValidators.Login(), authControllers.Login)
	api.Get("/verify-token", middleware.JWTMiddleware, authControllers.VerifyToken)
}
