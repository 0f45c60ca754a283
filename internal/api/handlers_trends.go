package api

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/zivora/internal/services"
)

func (handler *Handler) requestWindow(c *fiber.Ctx) services.PeriodWindow {
	return services.ResolvePeriod(c.Query("period", services.DefaultPeriod), handler.now())
}

func (handler *Handler) TrendsSummary(c *fiber.Ctx) error {
	userID, _ := currentUserID(c)
	summary, err := handler.trendsService.Summary(userID, handler.requestWindow(c))
	if err != nil {
		return handler.internalError(c, "failed to load trends summary", err)
	}
	return c.JSON(summary)
}

func (handler *Handler) TrendsFrequency(c *fiber.Ctx) error {
	userID, _ := currentUserID(c)
	points, err := handler.trendsService.Frequency(userID, handler.requestWindow(c))
	if err != nil {
		return handler.internalError(c, "failed to load trends frequency", err)
	}
	return c.JSON(points)
}

func (handler *Handler) TrendsRecent(c *fiber.Ctx) error {
	limit, ok := parseRecentLimit(c.Query("limit"))
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "invalid limit")
	}

	userID, _ := currentUserID(c)
	episodes, err := handler.trendsService.Recent(userID, handler.requestWindow(c), limit)
	if err != nil {
		return handler.internalError(c, "failed to load recent episodes", err)
	}
	return c.JSON(episodes)
}

func (handler *Handler) TrendsCorrelations(c *fiber.Ctx) error {
	userID, _ := currentUserID(c)
	correlations, err := handler.trendsService.Correlations(userID, handler.requestWindow(c))
	if err != nil {
		return handler.internalError(c, "failed to load health correlations", err)
	}
	return c.JSON(correlations)
}

func (handler *Handler) TrendsTriggers(c *fiber.Ctx) error {
	userID, _ := currentUserID(c)
	patterns, err := handler.trendsService.TriggerPatterns(userID, handler.requestWindow(c))
	if err != nil {
		return handler.internalError(c, "failed to load trigger patterns", err)
	}
	return c.JSON(patterns)
}

func (handler *Handler) TrendsExport(c *fiber.Ctx) error {
	userID, _ := currentUserID(c)
	export, err := handler.trendsService.Export(userID, handler.now())
	if err != nil {
		return handler.internalError(c, "failed to export trends", err)
	}
	return c.JSON(export)
}

func (handler *Handler) History(c *fiber.Ctx) error {
	userID, _ := currentUserID(c)
	severity := c.Query("severity", services.HistorySeverityAll)
	entries, err := handler.historyService.List(userID, handler.requestWindow(c), severity)
	if err != nil {
		return handler.internalError(c, "failed to load migraine history", err)
	}
	return c.JSON(entries)
}

// parseRecentLimit accepts an absent limit or a non-negative integer.
func parseRecentLimit(raw string) (int, bool) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return services.DefaultRecentLimit, true
	}
	limit, err := strconv.Atoi(trimmed)
	if err != nil || limit < 0 {
		return 0, false
	}
	return limit, true
}
