package handler

import (
	"errors"

	"github.com/Abiral12/Stock-Management-system/internal/repository"
	"github.com/Abiral12/Stock-Management-system/internal/service"

	"github.com/gofiber/fiber/v2"
)

// Every response carries a success flag; failures add a human-readable
// message that the dashboard surfaces verbatim to the operator.

func fail(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"success": false, "message": message})
}

func failFromErr(c *fiber.Ctx, err error) error {
	var ve service.ValidationError
	switch {
	case errors.As(err, &ve):
		return fail(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, repository.ErrProductNotFound),
		errors.Is(err, repository.ErrSaleNotFound),
		errors.Is(err, repository.ErrAdminNotFound):
		return fail(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, repository.ErrInsufficientStock):
		return fail(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrWrongPassword):
		return fail(c, fiber.StatusUnauthorized, err.Error())
	default:
		return fail(c, fiber.StatusInternalServerError, err.Error())
	}
}
