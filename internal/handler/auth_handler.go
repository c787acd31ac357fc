package handler

import (
	"github.com/Abiral12/Stock-Management-system/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type AuthHandler struct {
	service service.AuthService
}

func NewAuthHandler(s service.AuthService) *AuthHandler {
	return &AuthHandler{service: s}
}

// adminID reads the authenticated admin's ID set by the auth middleware.
func adminID(c *fiber.Ctx) (uuid.UUID, bool) {
	raw, ok := c.Locals("admin_id").(string)
	if !ok {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(raw)
	return id, err == nil
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid JSON")
	}

	resp, err := h.service.Login(req.Username, req.Password)
	if err != nil {
		return failFromErr(c, err)
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"username": resp.Username,
		"token":    resp.Token,
	})
}

type updateUsernameRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewUsername     string `json:"newUsername"`
}

func (h *AuthHandler) UpdateUsername(c *fiber.Ctx) error {
	id, ok := adminID(c)
	if !ok {
		return fail(c, fiber.StatusUnauthorized, "Not authorized")
	}

	var req updateUsernameRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid JSON")
	}

	resp, err := h.service.UpdateUsername(id, req.CurrentPassword, req.NewUsername)
	if err != nil {
		return failFromErr(c, err)
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"message":  "Username updated successfully",
		"username": resp.Username,
		"token":    resp.Token,
	})
}

type updatePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

func (h *AuthHandler) UpdatePassword(c *fiber.Ctx) error {
	id, ok := adminID(c)
	if !ok {
		return fail(c, fiber.StatusUnauthorized, "Not authorized")
	}

	var req updatePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid JSON")
	}

	if err := h.service.UpdatePassword(id, req.CurrentPassword, req.NewPassword); err != nil {
		return failFromErr(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Password updated successfully",
	})
}
