package admin

import (
	"time"

	"travel-booking/controllers/resource"
	"travel-booking/logger"
	"travel-booking/middleware"
	"travel-booking/types"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = 12 * time.Hour

type LoginRequest struct {
	Password string `json:"password" validate:"required"`
}

// AuthController exchanges the admin password for a bearer token
type AuthController struct {
	PasswordHash string
	JWTSecret    string
}

func NewAuthController(passwordHash, jwtSecret string) *AuthController {
	return &AuthController{PasswordHash: passwordHash, JWTSecret: jwtSecret}
}

func (ac *AuthController) Login(c *fiber.Ctx) error {
	if ac.PasswordHash == "" || ac.JWTSecret == "" {
		return c.Status(fiber.StatusServiceUnavailable).JSON(types.ApiResponse{
			Message: "Admin login is not configured",
			Status:  fiber.StatusServiceUnavailable,
		})
	}

	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return resource.BadRequest(c, "Invalid request body", nil)
	}
	if fieldErrs := resource.Validate(&req); fieldErrs != nil {
		return resource.BadRequest(c, "Validation failed", fieldErrs)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(ac.PasswordHash), []byte(req.Password)); err != nil {
		logger.Warning("Rejected admin login from " + c.IP())
		return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
			Message: "Invalid credentials",
			Status:  fiber.StatusUnauthorized,
		})
	}

	token, err := middleware.IssueAdminToken(ac.JWTSecret, tokenTTL)
	if err != nil {
		logger.Error("Failed to sign admin token", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Internal server error",
			Status:  fiber.StatusInternalServerError,
		})
	}
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Login successful",
		Status:  fiber.StatusOK,
		Token:   token,
	})
}
