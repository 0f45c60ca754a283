package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/zivora/internal/services"
)

type symptomLogPayload struct {
	UserID uint `json:"userId"`
	services.SymptomLogInput
}

func (payload *symptomLogPayload) bodyUserID() uint {
	return payload.UserID
}

func (handler *Handler) RecordSymptomLog(c *fiber.Ctx) error {
	payload := symptomLogPayload{}
	userID, status, message := bindOwnedBody(c, &payload)
	if status != 0 {
		return apiError(c, status, message)
	}

	entry, err := handler.symptomLogService.Record(userID, payload.SymptomLogInput, handler.now())
	if err != nil {
		switch {
		case errors.Is(err, services.ErrSymptomLogSymptomsRequired):
			return apiError(c, fiber.StatusBadRequest, "at least one symptom is required")
		case errors.Is(err, services.ErrInvalidSymptomIntensity):
			return apiError(c, fiber.StatusBadRequest, "intensity must be between 1 and 10")
		default:
			return handler.internalError(c, "failed to save symptom log", err)
		}
	}
	return c.Status(fiber.StatusCreated).JSON(entry)
}

func (handler *Handler) ListSymptomLogs(c *fiber.Ctx) error {
	userID, _ := currentUserID(c)
	logs, err := handler.symptomLogService.List(userID)
	if err != nil {
		return handler.internalError(c, "failed to load symptom logs", err)
	}
	return c.JSON(logs)
}
