package resultRoutes

import (
	resultControllers "quizapi/controllers/results"
	"quizapi/middleware"
	resultValidators "quizapi/validators/results"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupResultRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := resultControllers.NewController(db)

	api := app.Group("/api")

	api.Post("/submit", resultValidators.Submit(), ctrl.Submit)
	api.Get("/check-retake/:phone", ctrl.CheckRetake)

	// Administrator-only operations
	api.Get("/results", middleware.JWTMiddleware, ctrl.List)
	api.Delete("/results/:id", middleware.JWTMiddleware, ctrl.Delete)
	api.Post("/results/:id/allow-retake", middleware.JWTMiddleware, ctrl.AllowRetake)
	api.Post("/results/:id/disallow-retake", middleware.JWTMiddleware, ctrl.DisallowRetake)
}
