package middleware

import (
	"errors"
	"strings"

	"go-hardware-demo/internal/service"

	"github.com/gofiber/fiber/v2"
)

// RequireAuth validates the operator token and sets the operator name in
// context. When no operator password is configured every request passes.
func RequireAuth(auth service.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !auth.Enabled() {
			return c.Next()
		}

		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(401).JSON(fiber.Map{"error": "Missing authorization token"})
		}

		// Extract token from "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			return c.Status(401).JSON(fiber.Map{"error": "Invalid authorization format. Use: Bearer <token>"})
		}

		session, err := auth.ValidateToken(parts[1])
		if err != nil {
			if errors.Is(err, service.ErrSessionExpired) {
				return c.Status(401).JSON(fiber.Map{"error": "Session expired (logged in on another device)"})
			}
			return c.Status(401).JSON(fiber.Map{"error": "Invalid or expired token"})
		}

		c.Locals("operator", session.Operator)
		return c.Next()
	}
}
