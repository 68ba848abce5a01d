package resultValidator

import (
	"encoding/json"

	"quizapi/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

type SubmitRequest struct {
	Name       string          `json:"name" validate:"required"`
	Phone      string          `json:"phone" validate:"required,max=32"`
	Correct    int             `json:"correct" validate:"min=0"`
	Wrong      int             `json:"wrong" validate:"min=0"`
	Score      int             `json:"score" validate:"min=0"`
	RawAnswers json.RawMessage `json:"rawAnswers"`
}

// Submit validator middleware
func Submit() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(SubmitRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			errors := make(map[string]string)
			for _, fieldErr := range err.(validator.ValidationErrors) {
				switch fieldErr.Field() {
				case "Name":
					errors["name"] = "Name is required!"
				case "Phone":
					errors["phone"] = "Invalid phone number!"
				case "Correct":
					errors["correct"] = "Correct count cannot be negative!"
				case "Wrong":
					errors["wrong"] = "Wrong count cannot be negative!"
				case "Score":
					errors["score"] = "Score cannot be negative!"
				}
			}
			return middleware.ValidationErrorResponse(c, errors)
		}

		// Pass validated submission to the next middleware
		c.Locals("validatedSubmission", reqData)
		return c.Next()
	}
}
