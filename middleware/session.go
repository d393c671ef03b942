package middleware

import (
	"github.com/gofiber/fiber/v2"

	"sansa-learn/session"
)

// SessionCookie is the cookie carrying the admin session id.
const SessionCookie = "session_id"

// RequireAdmin rejects requests whose session cookie does not map to a
// live authenticated session. List, delete, export, stats and reset all
// sit behind this gate.
func RequireAdmin(sessions *session.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !sessions.Authenticated(c.Cookies(SessionCookie)) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Unauthorized",
			})
		}
		return c.Next()
	}
}
