package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/zivora/internal/services"
)

type trackingItemPayload struct {
	UserID uint `json:"userId"`
	services.TrackingItemInput
}

func (payload *trackingItemPayload) bodyUserID() uint {
	return payload.UserID
}

func (handler *Handler) ListTriggers(c *fiber.Ctx) error {
	userID, _ := currentUserID(c)
	triggers, err := handler.triggerService.List(userID)
	if err != nil {
		return handler.internalError(c, "failed to load triggers", err)
	}
	return c.JSON(triggers)
}

func (handler *Handler) CreateTrigger(c *fiber.Ctx) error {
	payload := trackingItemPayload{}
	userID, status, message := bindOwnedBody(c, &payload)
	if status != 0 {
		return apiError(c, status, message)
	}

	trigger, err := handler.triggerService.Create(userID, payload.TrackingItemInput)
	if err != nil {
		return handler.trackingItemError(c, err, "failed to create trigger")
	}
	return c.Status(fiber.StatusCreated).JSON(trigger)
}

func (handler *Handler) UpdateTrigger(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid trigger id")
	}
	payload := trackingItemPayload{}
	userID, status, message := bindOwnedBody(c, &payload)
	if status != 0 {
		return apiError(c, status, message)
	}

	trigger, err := handler.triggerService.Update(userID, id, payload.TrackingItemInput)
	if err != nil {
		return handler.trackingItemError(c, err, "failed to update trigger")
	}
	return c.JSON(trigger)
}

func (handler *Handler) DeleteTrigger(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid trigger id")
	}

	userID, _ := currentUserID(c)
	if err := handler.triggerService.Delete(userID, id); err != nil {
		return handler.trackingItemError(c, err, "failed to delete trigger")
	}
	return c.JSON(fiber.Map{"success": true})
}

func (handler *Handler) ListSymptoms(c *fiber.Ctx) error {
	userID, _ := currentUserID(c)
	symptoms, err := handler.symptomService.List(userID)
	if err != nil {
		return handler.internalError(c, "failed to load symptoms", err)
	}
	return c.JSON(symptoms)
}

func (handler *Handler) CreateSymptom(c *fiber.Ctx) error {
	payload := trackingItemPayload{}
	userID, status, message := bindOwnedBody(c, &payload)
	if status != 0 {
		return apiError(c, status, message)
	}

	symptom, err := handler.symptomService.Create(userID, payload.TrackingItemInput)
	if err != nil {
		return handler.trackingItemError(c, err, "failed to create symptom")
	}
	return c.Status(fiber.StatusCreated).JSON(symptom)
}

func (handler *Handler) UpdateSymptom(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid symptom id")
	}
	payload := trackingItemPayload{}
	userID, status, message := bindOwnedBody(c, &payload)
	if status != 0 {
		return apiError(c, status, message)
	}

	symptom, err := handler.symptomService.Update(userID, id, payload.TrackingItemInput)
	if err != nil {
		return handler.trackingItemError(c, err, "failed to update symptom")
	}
	return c.JSON(symptom)
}

func (handler *Handler) DeleteSymptom(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid symptom id")
	}

	userID, _ := currentUserID(c)
	if err := handler.symptomService.Delete(userID, id); err != nil {
		return handler.trackingItemError(c, err, "failed to delete symptom")
	}
	return c.JSON(fiber.Map{"success": true})
}

func (handler *Handler) trackingItemError(c *fiber.Ctx, err error, fallback string) error {
	switch {
	case errors.Is(err, services.ErrTriggerNotFound):
		return apiError(c, fiber.StatusNotFound, "trigger not found")
	case errors.Is(err, services.ErrSymptomNotFound):
		return apiError(c, fiber.StatusNotFound, "symptom not found")
	case errors.Is(err, services.ErrTrackingNameRequired):
		return apiError(c, fiber.StatusBadRequest, "name is required")
	case errors.Is(err, services.ErrCategoryRequired):
		return apiError(c, fiber.StatusBadRequest, "category is required")
	default:
		return handler.internalError(c, fallback, err)
	}
}
