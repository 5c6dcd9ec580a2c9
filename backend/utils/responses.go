package utils

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/pairdraw/pairdraw/backend/models"
	"github.com/pairdraw/pairdraw/pairdraw/database/repositories"
)

// SendJSON sends a JSON response using Fiber.
func SendJSON(c *fiber.Ctx, statusCode int, data interface{}) error {
	return c.Status(statusCode).JSON(data)
}

// SendSuccess sends a successful JSON response.
func SendSuccess(c *fiber.Ctx, data interface{}, message string) error {
	return SendJSON(c, http.StatusOK, models.NewSuccessResponse(data, message))
}

// SendCreated sends a created resource JSON response.
func SendCreated(c *fiber.Ctx, data interface{}, message string) error {
	return SendJSON(c, http.StatusCreated, models.NewSuccessResponse(data, message))
}

// SendError sends an error JSON response.
func SendError(c *fiber.Ctx, statusCode int, code, message string, details map[string]string) error {
	return SendJSON(c, statusCode, models.NewErrorResponse(code, message, details))
}

func SendBadRequest(c *fiber.Ctx, message string, details map[string]string) error {
	return SendError(c, http.StatusBadRequest, "INVALID_ARGUMENT", message, details)
}

func SendUnauthorized(c *fiber.Ctx, message string) error {
	return SendError(c, http.StatusUnauthorized, "INVALID_CREDENTIAL", message, nil)
}

func SendForbidden(c *fiber.Ctx, message string) error {
	return SendError(c, http.StatusForbidden, "FORBIDDEN", message, nil)
}

func SendNotFound(c *fiber.Ctx, message string) error {
	return SendError(c, http.StatusNotFound, "NOT_FOUND", message, nil)
}

func SendConflict(c *fiber.Ctx, message string, details map[string]string) error {
	return SendError(c, http.StatusConflict, "CONFLICT", message, details)
}

func SendInternalServerError(c *fiber.Ctx, message string) error {
	return SendError(c, http.StatusInternalServerError, "INTERNAL_SERVER_ERROR", message, nil)
}

// SendDomainError maps the repository error taxonomy onto HTTP status
// codes. Anything untyped is a 500 with a generic message so storage
// details never leak to clients.
func SendDomainError(c *fiber.Ctx, err error) error {
	switch {
	case repositories.IsInvalidArgument(err):
		return SendBadRequest(c, err.Error(), nil)
	case repositories.IsInvalidState(err):
		return SendError(c, http.StatusBadRequest, "INVALID_STATE", err.Error(), nil)
	case repositories.IsInvalidCredential(err):
		return SendUnauthorized(c, err.Error())
	case repositories.IsForbidden(err):
		return SendForbidden(c, err.Error())
	case repositories.IsNotFound(err):
		return SendNotFound(c, err.Error())
	case repositories.IsConflict(err):
		return SendConflict(c, err.Error(), nil)
	default:
		return SendInternalServerError(c, "internal error")
	}
}

// GetIPAddress extracts the client IP address.
func GetIPAddress(c *fiber.Ctx) string {
	if xff := c.Get("X-Forwarded-For"); xff != "" {
		return xff
	}
	if xri := c.Get("X-Real-IP"); xri != "" {
		return xri
	}
	return c.IP()
}
