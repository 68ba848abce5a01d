package authController

import (
	"log"

	"quizapi/config"
	"quizapi/middleware"
	validators "quizapi/validators/auth"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

// Login authenticates the administrator against the env-configured credentials
// and returns a signed token
func Login(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedLogin").(*validators.LoginRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if reqData.Username != config.AppConfig.AdminUsername {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid username", nil)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(config.AppConfig.AdminPasswordHash), []byte(reqData.Password)); err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid password", nil)
	}

	token, err := middleware.GenerateJWT(reqData.Username)
	if err != nil {
		log.Printf("Error generating token: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Server error during login", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Login successful.", fiber.Map{
		"token": token,
	})
}

// VerifyToken confirms a token is still valid. The JWT middleware has already
// done the work by the time this handler runs.
func VerifyToken(c *fiber.Ctx) error {
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Token is valid.", fiber.Map{
		"valid":    true,
		"username": c.Locals("username"),
	})
}
