package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/zivora/internal/services"
)

func (handler *Handler) ListMedications(c *fiber.Ctx) error {
	userID, _ := currentUserID(c)
	medications, err := handler.medicationService.List(userID)
	if err != nil {
		return handler.internalError(c, "failed to load medications", err)
	}
	return c.JSON(medications)
}

func (handler *Handler) CreateMedication(c *fiber.Ctx) error {
	input := services.MedicationInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	userID, _ := currentUserID(c)
	medication, err := handler.medicationService.Create(userID, input)
	if err != nil {
		return handler.medicationError(c, err, "failed to create medication")
	}
	return c.Status(fiber.StatusCreated).JSON(medication)
}

func (handler *Handler) UpdateMedication(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "medicationId")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid medication id")
	}

	input := services.MedicationInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	userID, _ := currentUserID(c)
	medication, err := handler.medicationService.Update(userID, id, input)
	if err != nil {
		return handler.medicationError(c, err, "failed to update medication")
	}
	return c.JSON(medication)
}

func (handler *Handler) DeleteMedication(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "medicationId")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid medication id")
	}

	userID, _ := currentUserID(c)
	if err := handler.medicationService.Delete(userID, id); err != nil {
		return handler.medicationError(c, err, "failed to delete medication")
	}
	return c.JSON(fiber.Map{"success": true})
}

func (handler *Handler) medicationError(c *fiber.Ctx, err error, fallback string) error {
	switch {
	case errors.Is(err, services.ErrMedicationNotFound):
		return apiError(c, fiber.StatusNotFound, "medication not found")
	case errors.Is(err, services.ErrTrackingNameRequired):
		return apiError(c, fiber.StatusBadRequest, "name is required")
	case errors.Is(err, services.ErrMedicationTypeRequired):
		return apiError(c, fiber.StatusBadRequest, "type is required")
	default:
		return handler.internalError(c, fallback, err)
	}
}
