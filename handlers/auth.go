package handlers

import (
	"crypto/subtle"
	"time"

	"github.com/gofiber/fiber/v2"

	"sansa-learn/metrics"
	"sansa-learn/middleware"
	"sansa-learn/session"
)

// AuthHandler serves the admin login/logout/check endpoints. There is a
// single shared admin password for the whole system; no usernames, no
// roles.
type AuthHandler struct {
	Sessions      *session.Store
	AdminPassword string
	SessionTTL    time.Duration
	SecureCookies bool
}

type loginRequest struct {
	Password string `json:"password"`
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
	}

	if subtle.ConstantTimeCompare([]byte(req.Password), []byte(h.AdminPassword)) != 1 {
		metrics.LoginFailures.Inc()
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Invalid password"})
	}

	id := h.Sessions.Create()
	c.Cookie(&fiber.Cookie{
		Name:     middleware.SessionCookie,
		Value:    id,
		Path:     "/",
		MaxAge:   int(h.SessionTTL.Seconds()),
		HTTPOnly: true,
		Secure:   h.SecureCookies,
		SameSite: fiber.CookieSameSiteLaxMode,
	})

	return c.JSON(fiber.Map{"success": true})
}

// Logout handles POST /api/auth/logout. Logging out an anonymous
// browser still reports success.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if id := c.Cookies(middleware.SessionCookie); id != "" {
		h.Sessions.Destroy(id)
	}

	c.Cookie(&fiber.Cookie{
		Name:     middleware.SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HTTPOnly: true,
		Secure:   h.SecureCookies,
		SameSite: fiber.CookieSameSiteLaxMode,
	})

	return c.JSON(fiber.Map{"success": true})
}

// Check handles GET /api/auth/check.
func (h *AuthHandler) Check(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"authenticated": h.Sessions.Authenticated(c.Cookies(middleware.SessionCookie)),
	})
}
