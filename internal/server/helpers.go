package server

import (
	"lockbox/internal/models"

	"github.com/gofiber/fiber/v2"
)

// statusForError maps application error codes to HTTP statuses.
func statusForError(err error) int {
	switch models.CodeOf(err) {
	case models.CodeDuplicateEmail:
		return fiber.StatusConflict
	case models.CodeInvalidCredentials, models.CodeUnauthorized:
		return fiber.StatusUnauthorized
	case models.CodeValidation, models.CodeMissingField:
		return fiber.StatusBadRequest
	case models.CodeNotFound:
		return fiber.StatusNotFound
	default:
		return fiber.StatusInternalServerError
	}
}

// respondError writes a standardized error response with the status derived
// from the error's code.
func respondError(c *fiber.Ctx, err error) error {
	return models.RespondWithError(c, statusForError(err), err)
}

// currentSession returns the session placed in locals by the session gate.
func currentSession(c *fiber.Ctx) *models.Session {
	session, _ := c.Locals("session").(*models.Session)
	return session
}
