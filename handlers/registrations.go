package handlers

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"sansa-learn/metrics"
	"sansa-learn/models"
	"sansa-learn/store"
	"sansa-learn/validation"
)

const queryTimeout = 3 * time.Second

// RegistrationHandler serves the registration endpoints.
type RegistrationHandler struct {
	Store store.RegistrationStore
}

// Create handles POST /api/registrations. Public: this is the form the
// site visitors submit. Duplicate submissions are accepted as separate
// rows.
func (h *RegistrationHandler) Create(c *fiber.Ctx) error {
	var req models.CreateRegistrationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
	}

	if ferr := validation.Struct(req); ferr != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": ferr.Message,
			"field":   ferr.Field,
		})
	}

	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	reg, err := h.Store.Create(ctx, req)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to create registration"})
	}

	metrics.RegistrationsCreated.Inc()
	return c.Status(fiber.StatusCreated).JSON(reg)
}

// List handles GET /api/registrations (admin only). Returns every
// registration, newest first; the admin table searches client-side.
func (h *RegistrationHandler) List(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	registrations, err := h.Store.List(ctx)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to fetch registrations"})
	}
	return c.JSON(registrations)
}

// Get handles GET /api/registrations/:id. Public so the confirmation
// page can rebuild the receipt without an admin session.
func (h *RegistrationHandler) Get(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid ID"})
	}

	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	reg, err := h.Store.Get(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Registration not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to fetch registration"})
	}
	return c.JSON(reg)
}

// Delete handles DELETE /api/registrations/:id (admin only). Hard
// delete; deleting an absent id reports not found rather than success.
func (h *RegistrationHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid ID"})
	}

	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	if err := h.Store.Delete(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Registration not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to delete registration"})
	}

	metrics.RegistrationsDeleted.Inc()
	return c.SendStatus(fiber.StatusNoContent)
}

// Stats handles GET /api/registrations/stats (admin only). The 20
// students per batch cap is informational; these counts let the admin
// watch batch fill without the server enforcing anything.
func (h *RegistrationHandler) Stats(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	total, err := h.Store.Count(ctx)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to fetch stats"})
	}
	byGrade, err := h.Store.CountByGrade(ctx)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to fetch stats"})
	}

	return c.JSON(fiber.Map{
		"total":   total,
		"byGrade": byGrade,
	})
}
