package middleware

import (
	"crypto/subtle"
	"fmt"
	"strings"
	"time"

	"travel-booking/constants"
	"travel-booking/logger"
	"travel-booking/types"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// AdminAuth holds the credentials admin requests are checked against.
// Either field may be empty, which disables that way in.
type AdminAuth struct {
	Token     string
	JWTSecret string
}

// IssueAdminToken signs an HS256 token carrying the admin role
func IssueAdminToken(secret string, ttl time.Duration) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("admin JWT secret is not configured")
	}
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  "admin",
		"role": constants.RoleAdmin,
		"iat":  now.Unix(),
		"exp":  now.Add(ttl).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// VerifyAdminJWT checks signature, expiry and the admin role claim
func VerifyAdminJWT(secret, tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	}, jwt.WithExpirationRequired())
	if err != nil {
		return nil, fmt.Errorf("failed to parse JWT: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid JWT token")
	}
	if role, _ := claims["role"].(string); role != constants.RoleAdmin {
		return nil, fmt.Errorf("token does not carry the admin role")
	}
	return claims, nil
}

func (a AdminAuth) allowed(c *fiber.Ctx) bool {
	if token := c.Get(constants.HeaderAdminToken); token != "" && a.Token != "" {
		return subtle.ConstantTimeCompare([]byte(token), []byte(a.Token)) == 1
	}

	authHeader := c.Get(fiber.HeaderAuthorization)
	if authHeader == "" || a.JWTSecret == "" {
		return false
	}
	tokenParts := strings.Split(authHeader, " ")
	if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
		return false
	}
	if _, err := VerifyAdminJWT(a.JWTSecret, tokenParts[1]); err != nil {
		logger.Debug("Admin JWT rejected: " + err.Error())
		return false
	}
	return true
}

// RequireAdmin lets a request through when it carries the static admin
// header token or a valid admin bearer JWT
func RequireAdmin(auth AdminAuth) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !auth.allowed(c) {
			return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
				Message: "Unauthorized",
				Status:  fiber.StatusUnauthorized,
			})
		}
		c.Locals(constants.LocalsAdmin, true)
		return c.Next()
	}
}
