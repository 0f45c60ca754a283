package api

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/zivora/internal/services"
)

type exportHealthDataPayload struct {
	UserID            uint     `json:"userId"`
	DateRange         string   `json:"dateRange"`
	CustomStartDate   string   `json:"customStartDate"`
	CustomEndDate     string   `json:"customEndDate"`
	SelectedDataTypes []string `json:"selectedDataTypes"`
	Format            string   `json:"format"`
}

func (payload *exportHealthDataPayload) bodyUserID() uint {
	return payload.UserID
}

func (handler *Handler) ExportSummary(c *fiber.Ctx) error {
	userID, _ := currentUserID(c)
	summary, err := handler.exportService.Summary(
		userID,
		c.Query("dateRange"),
		c.Query("customStartDate"),
		c.Query("customEndDate"),
		handler.now(),
	)
	if err != nil {
		return handler.exportError(c, err)
	}
	return c.JSON(summary)
}

func (handler *Handler) ExportPreferences(c *fiber.Ctx) error {
	return c.JSON(services.DefaultExportPreferences())
}

func (handler *Handler) ExportHealthData(c *fiber.Ctx) error {
	payload := exportHealthDataPayload{}
	userID, status, message := bindOwnedBody(c, &payload)
	if status != 0 {
		return apiError(c, status, message)
	}

	format := strings.ToLower(strings.TrimSpace(payload.Format))
	export, err := handler.exportService.BuildHealthData(services.ExportRequest{
		UserID:            userID,
		DateRange:         payload.DateRange,
		CustomStartDate:   payload.CustomStartDate,
		CustomEndDate:     payload.CustomEndDate,
		SelectedDataTypes: payload.SelectedDataTypes,
		Format:            format,
	}, handler.now())
	if err != nil {
		return handler.exportError(c, err)
	}

	if format != services.ExportFormatCSV {
		return c.JSON(export)
	}

	var output bytes.Buffer
	if err := export.WriteCSV(&output); err != nil {
		return handler.internalError(c, "failed to build export", err)
	}
	fileRange := strings.TrimSpace(payload.DateRange)
	if fileRange == "" {
		fileRange = services.ExportRangeLast30
	}
	setExportAttachmentHeaders(c, "text/csv", services.ExportFileName(fileRange))
	return c.Send(output.Bytes())
}

func (handler *Handler) exportError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrInvalidDateRange):
		return apiError(c, fiber.StatusBadRequest, "invalid date range")
	case errors.Is(err, services.ErrUnsupportedExportFormat):
		return apiError(c, fiber.StatusBadRequest, "PDF export is not available")
	default:
		return handler.internalError(c, "failed to export health data", err)
	}
}

func setExportAttachmentHeaders(c *fiber.Ctx, contentType string, filename string) {
	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%s", filename))
}
