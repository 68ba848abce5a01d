package attemptValidator

import (
	"quizapi/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

type TrackRequest struct {
	Phone     string `json:"phone" validate:"required,max=32"`
	Action    string `json:"action" validate:"required,oneof=start refresh submit auto-submit"`
	UserAgent string `json:"userAgent"`
}

// Track validator middleware
func Track() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(TrackRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			errors := make(map[string]string)
			for _, fieldErr := range err.(validator.ValidationErrors) {
				switch fieldErr.Field() {
				case "Phone":
					errors["phone"] = "Invalid phone number!"
				case "Action":
					errors["action"] = "Action must be one of: start, refresh, submit, auto-submit!"
				}
			}
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedAttempt", reqData)
		return c.Next()
	}
}
