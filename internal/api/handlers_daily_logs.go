package api

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/zivora/internal/models"
	"github.com/terraincognita07/zivora/internal/services"
)

func (handler *Handler) SaveDailyLog(c *fiber.Ctx) error {
	form := services.DailyLogForm{}
	if err := c.BodyParser(&form); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	userID, _ := currentUserID(c)
	entry, err := handler.dayService.SaveForm(userID, form, handler.now())
	if err != nil {
		if errors.Is(err, services.ErrInvalidDailyLogDate) {
			return apiError(c, fiber.StatusBadRequest, "invalid date")
		}
		return handler.internalError(c, "failed to save daily log", err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Daily log saved successfully",
		"log":     entry,
	})
}

func (handler *Handler) GetDailyLogForm(c *fiber.Ctx) error {
	date := strings.TrimSpace(c.Params("date"))
	if !services.IsDailyLogDate(date) {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	userID, _ := currentUserID(c)
	view, found, err := handler.dayService.FormForDate(userID, date)
	if err != nil {
		return handler.internalError(c, "failed to load daily log", err)
	}
	if !found {
		return c.JSON(fiber.Map{"exists": false, "data": nil})
	}
	return c.JSON(fiber.Map{"exists": true, "data": view})
}

func (handler *Handler) ListDailyLogs(c *fiber.Ctx) error {
	dateRange, ok := parseDailyLogRange(c.Query("start"), c.Query("end"))
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "start and end must both be YYYY-MM-DD dates")
	}

	userID, _ := currentUserID(c)
	logs, err := handler.dayService.List(userID, dateRange)
	if err != nil {
		return handler.internalError(c, "failed to load daily logs", err)
	}
	return c.JSON(logs)
}

func (handler *Handler) UpdateDailyLog(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid daily log id")
	}

	update := services.DailyLogUpdate{}
	if err := c.BodyParser(&update); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	userID, _ := currentUserID(c)
	entry, err := handler.dayService.Update(userID, id, update)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrDailyLogNotFound):
			return apiError(c, fiber.StatusNotFound, "daily log not found")
		case errors.Is(err, services.ErrInvalidDailyLogDate):
			return apiError(c, fiber.StatusBadRequest, "invalid date")
		case errors.Is(err, services.ErrDailyLogDateTaken):
			return apiError(c, fiber.StatusConflict, "daily log already exists for date")
		default:
			return handler.internalError(c, "failed to update daily log", err)
		}
	}
	return c.JSON(entry)
}

// parseDailyLogRange returns nil for an open range. A single bound is rejected.
func parseDailyLogRange(rawStart string, rawEnd string) (*models.DateRange, bool) {
	start := strings.TrimSpace(rawStart)
	end := strings.TrimSpace(rawEnd)
	if start == "" && end == "" {
		return nil, true
	}
	if !services.IsDailyLogDate(start) || !services.IsDailyLogDate(end) {
		return nil, false
	}
	return &models.DateRange{Start: start, End: end}, true
}
