package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"

	"sansa-learn/db"
)

// AdminHandler serves maintenance endpoints behind the session gate.
type AdminHandler struct {
	Pool        *pgxpool.Pool
	DatabaseURL string
}

// ResetDatabase handles POST /api/admin/reset-db.
// WARNING: This drops all tables and re-runs migrations. Used between
// enrollment seasons to clear out the previous batch.
func (h *AdminHandler) ResetDatabase(c *fiber.Ctx) error {
	if err := db.Reset(h.Pool, h.DatabaseURL); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to reset database",
		})
	}

	return c.JSON(fiber.Map{
		"message": "Database reset successfully",
		"status":  "All tables dropped and migrations re-run",
	})
}
