package middleware

import (
	"strings"

	"github.com/Abiral12/Stock-Management-system/internal/repository"
	"github.com/Abiral12/Stock-Management-system/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

// RequireAuth validates the bearer token and confirms the admin still
// exists before letting the request through. Admin identity is placed in
// the request context for downstream handlers.
func RequireAuth(tokens *jwt.Manager, adminRepo repository.AdminRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false, "message": "Not authorized, no token",
			})
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false, "message": "Invalid authorization format. Use: Bearer <token>",
			})
		}

		claims, err := tokens.ValidateToken(parts[1])
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false, "message": "Invalid or expired token",
			})
		}

		admin, err := adminRepo.FindByID(claims.AdminID)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false, "message": "Not authorized",
			})
		}

		c.Locals("admin_id", admin.ID.String())
		c.Locals("admin_username", admin.Username)

		return c.Next()
	}
}
