package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"sansa-learn/handlers"
	"sansa-learn/middleware"
	"sansa-learn/session"
	"sansa-learn/store"
)

const testAdminPassword = "admin123"

// newTestApp wires the API exactly as main.go does, backed by the
// in-memory store so tests need no database.
func newTestApp(t *testing.T) (*fiber.App, *store.MemoryStore) {
	t.Helper()

	memory := store.NewMemoryStore()
	sessions := session.NewStore(24 * time.Hour)

	registrations := &handlers.RegistrationHandler{Store: memory}
	auth := &handlers.AuthHandler{
		Sessions:      sessions,
		AdminPassword: testAdminPassword,
		SessionTTL:    24 * time.Hour,
	}

	app := fiber.New()
	requireAdmin := middleware.RequireAdmin(sessions)

	api := app.Group("/api")

	authGroup := api.Group("/auth")
	authGroup.Post("/login", auth.Login)
	authGroup.Post("/logout", auth.Logout)
	authGroup.Get("/check", auth.Check)

	regs := api.Group("/registrations")
	regs.Post("/", registrations.Create)
	regs.Get("/", requireAdmin, registrations.List)
	regs.Get("/stats", requireAdmin, registrations.Stats)
	regs.Get("/export", requireAdmin, registrations.Export)
	regs.Get("/:id", registrations.Get)
	regs.Get("/:id/receipt", registrations.Receipt)
	regs.Delete("/:id", requireAdmin, registrations.Delete)

	return app, memory
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any, cookie string) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if cookie != "" {
		req.Header.Set("Cookie", middleware.SessionCookie+"="+cookie)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

// login authenticates against the test app and returns the session
// cookie value.
func login(t *testing.T, app *fiber.App) string {
	t.Helper()

	resp := doJSON(t, app, http.MethodPost, "/api/auth/login", fiber.Map{"password": testAdminPassword}, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	for _, c := range resp.Cookies() {
		if c.Name == middleware.SessionCookie {
			return c.Value
		}
	}
	t.Fatal("login response did not set a session cookie")
	return ""
}

func validPayload() fiber.Map {
	return fiber.Map{
		"studentName":        "Rahul Kumar",
		"gender":             "Male",
		"grade":              "Class 10th",
		"fatherName":         "Suresh Kumar",
		"motherName":         "Sunita Devi",
		"whatsappNumber":     "9876543210",
		"parentMobileNumber": "9876543210",
		"address":            "123 Main Rd",
	}
}
