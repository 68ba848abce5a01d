package attemptController

import (
	"log"

	"quizapi/middleware"
	"quizapi/services/attempts"
	validators "quizapi/validators/attempts"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type Controller struct {
	attempts *attempts.Service
}

func NewController(db *gorm.DB) *Controller {
	return &Controller{attempts: attempts.NewService(db)}
}

// Track appends one attempt lifecycle event for a phone number
func (ctrl *Controller) Track(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedAttempt").(*validators.TrackRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	userAgent := reqData.UserAgent
	if userAgent == "" {
		userAgent = c.Get("User-Agent")
	}

	event, err := ctrl.attempts.Record(reqData.Phone, reqData.Action, userAgent)
	if err != nil {
		log.Printf("Track attempt error: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to record attempt!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Attempt recorded.", event)
}

// List returns the attempt events for a phone number, newest first
func (ctrl *Controller) List(c *fiber.Ctx) error {
	phone := c.Params("phone")

	events, err := ctrl.attempts.List(phone)
	if err != nil {
		log.Printf("List attempts error: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Server error", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Attempt list.", events)
}
