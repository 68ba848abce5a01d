package attemptRoutes

import (
	attemptControllers "quizapi/controllers/attempts"
	attemptValidators "quizapi/validators/attempts"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupAttemptRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := attemptControllers.NewController(db)

	api := app.Group("/api")

	api.Post("/attempts", attemptValidators.Track(), ctrl.Track)
	api.Get("/attempts/:phone", ctrl.List)
}
