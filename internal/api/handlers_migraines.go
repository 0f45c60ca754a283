package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/zivora/internal/services"
)

func (handler *Handler) ListMigraines(c *fiber.Ctx) error {
	userID, _ := currentUserID(c)
	migraines, err := handler.migraineService.List(userID)
	if err != nil {
		return handler.internalError(c, "failed to load migraines", err)
	}
	return c.JSON(migraines)
}

func (handler *Handler) CreateMigraine(c *fiber.Ctx) error {
	input := services.MigraineInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	userID, _ := currentUserID(c)
	migraine, err := handler.migraineService.Create(userID, input)
	if err != nil {
		return handler.migraineError(c, err, "failed to create migraine")
	}
	return c.Status(fiber.StatusCreated).JSON(migraine)
}

func (handler *Handler) GetMigraine(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid migraine id")
	}

	userID, _ := currentUserID(c)
	migraine, err := handler.migraineService.Get(userID, id)
	if err != nil {
		return handler.migraineError(c, err, "failed to load migraine")
	}
	return c.JSON(migraine)
}

func (handler *Handler) UpdateMigraine(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid migraine id")
	}

	input := services.MigraineInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	userID, _ := currentUserID(c)
	migraine, err := handler.migraineService.Update(userID, id, input)
	if err != nil {
		return handler.migraineError(c, err, "failed to update migraine")
	}
	return c.JSON(migraine)
}

func (handler *Handler) DeleteMigraine(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid migraine id")
	}

	userID, _ := currentUserID(c)
	if err := handler.migraineService.Delete(userID, id); err != nil {
		return handler.migraineError(c, err, "failed to delete migraine")
	}
	return c.JSON(fiber.Map{"success": true})
}

func (handler *Handler) migraineError(c *fiber.Ctx, err error, fallback string) error {
	switch {
	case errors.Is(err, services.ErrMigraineNotFound):
		return apiError(c, fiber.StatusNotFound, "migraine not found")
	case errors.Is(err, services.ErrMigraineStartDateRequired):
		return apiError(c, fiber.StatusBadRequest, "start date is required")
	case errors.Is(err, services.ErrInvalidMigraineSeverity):
		return apiError(c, fiber.StatusBadRequest, "severity must be between 1 and 10")
	case errors.Is(err, services.ErrInvalidMigraineEndDate):
		return apiError(c, fiber.StatusBadRequest, "end date must not be before start date")
	default:
		return handler.internalError(c, fallback, err)
	}
}
