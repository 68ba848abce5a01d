package resultController

import (
	"errors"
	"log"

	"quizapi/config"
	"quizapi/middleware"
	"quizapi/models"
	"quizapi/services/attempts"
	"quizapi/services/results"
	"quizapi/utils"
	validators "quizapi/validators/results"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Controller struct {
	results  *results.Service
	attempts *attempts.Service
}

func NewController(db *gorm.DB) *Controller {
	return &Controller{
		results:  results.NewService(db),
		attempts: attempts.NewService(db),
	}
}

// Submit stores a quiz result for a phone number, unless that number already
// submitted and has no retake grant.
func (ctrl *Controller) Submit(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedSubmission").(*validators.SubmitRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	// Record the attempt no matter how the admission decision goes. A failure
	// here must never fail the submission itself.
	if _, err := ctrl.attempts.Record(reqData.Phone, models.AttemptActionSubmit, c.Get("User-Agent")); err != nil {
		log.Printf("Error recording submit attempt for %s: %v", reqData.Phone, err)
	}

	result, err := ctrl.results.Submit(results.Submission{
		Name:       reqData.Name,
		Phone:      reqData.Phone,
		Correct:    reqData.Correct,
		Wrong:      reqData.Wrong,
		Score:      reqData.Score,
		RawAnswers: datatypes.JSON(reqData.RawAnswers),
	})
	if err != nil {
		if errors.Is(err, results.ErrAlreadySubmitted) {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "You have already submitted the quiz. Contact admin to retake.", nil)
		}
		log.Printf("Submit error: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Server error", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Submitted successfully", result)
}

// List returns all stored results, newest first
func (ctrl *Controller) List(c *fiber.Ctx) error {
	resultList, err := ctrl.results.List()
	if err != nil {
		log.Printf("Results error: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Server error", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Results list.", resultList)
}

// Delete removes one result by its public id
func (ctrl *Controller) Delete(c *fiber.Ctx) error {
	id := c.Params("id")

	if err := ctrl.results.Delete(id); err != nil {
		if errors.Is(err, results.ErrResultNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Result not found", nil)
		}
		log.Printf("Delete error: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Server error", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Result deleted successfully", nil)
}

// AllowRetake grants a retake on one result and notifies the participant by SMS
func (ctrl *Controller) AllowRetake(c *fiber.Ctx) error {
	id := c.Params("id")

	result, err := ctrl.results.AllowRetake(id)
	if err != nil {
		if errors.Is(err, results.ErrResultNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Result not found", nil)
		}
		log.Printf("Allow retake error: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Server error", nil)
	}

	// Notify the participant asynchronously; the grant is already committed
	if config.AppConfig.SmsApiKey != "" {
		go func(phone, name string) {
			if err := utils.SendRetakeSMS(phone, name); err != nil {
				log.Printf("Error sending retake SMS to %s: %v", phone, err)
			}
		}(result.Phone, result.Name)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz retake allowed successfully", result)
}

// DisallowRetake revokes a retake grant on one result
func (ctrl *Controller) DisallowRetake(c *fiber.Ctx) error {
	id := c.Params("id")

	result, err := ctrl.results.DisallowRetake(id)
	if err != nil {
		if errors.Is(err, results.ErrResultNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Result not found", nil)
		}
		log.Printf("Disallow retake error: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Server error", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz retake disallowed successfully", result)
}

// CheckRetake reports whether a phone number may retake the quiz. Unknown
// numbers get the same answer shape as known numbers without a grant.
func (ctrl *Controller) CheckRetake(c *fiber.Ctx) error {
	phone := c.Params("phone")

	allowed, result, err := ctrl.results.CheckRetake(phone)
	if err != nil {
		log.Printf("Check retake error: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Server error", nil)
	}

	message := "Retake status."
	if result == nil {
		message = "No results found for this number"
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, message, fiber.Map{
		"allowedRetake": allowed,
		"result":        result,
	})
}
