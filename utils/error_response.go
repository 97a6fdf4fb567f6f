package utils

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/Devxxxx/bigdealeg-backend/models"
)

// ErrorResponse is a struct for error response
type ErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// StatusForError maps a viewing workflow error to its HTTP status.
func StatusForError(err error) int {
	switch {
	case errors.Is(err, models.ErrViewingNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, models.ErrUnauthorized):
		return fiber.StatusForbidden
	case errors.Is(err, models.ErrInvalidTransition):
		return fiber.StatusConflict
	case errors.Is(err, models.ErrValidation):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}
