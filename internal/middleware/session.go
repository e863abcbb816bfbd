package middleware

import (
	"lockbox/internal/models"
	"lockbox/internal/service"

	"github.com/gofiber/fiber/v2"
)

// SessionRequired gates a route on the presence of the current-session
// record. Presence is the only check: there is no token to verify and no
// expiry to enforce. Absence means not logged in.
func SessionRequired(sessions *service.SessionService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		session, err := sessions.Current(c.Context())
		if err != nil {
			return models.RespondWithError(c, fiber.StatusInternalServerError, err)
		}
		if session == nil {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("Not logged in"))
		}

		c.Locals("session", session)
		c.Locals("accountID", session.ID)
		return c.Next()
	}
}
