package api

import "github.com/gofiber/fiber/v2"

func (handler *Handler) HealthIndicators(c *fiber.Ctx) error {
	userID, _ := currentUserID(c)
	indicators, err := handler.insightsService.HealthIndicators(userID, handler.now())
	if err != nil {
		return handler.internalError(c, "failed to load health indicators", err)
	}
	return c.JSON(indicators)
}

func (handler *Handler) AnalysisConfidence(c *fiber.Ctx) error {
	userID, _ := currentUserID(c)
	confidence, err := handler.insightsService.AnalysisConfidence(userID)
	if err != nil {
		return handler.internalError(c, "failed to load analysis confidence", err)
	}
	return c.JSON(confidence)
}

func (handler *Handler) StressSleepInsight(c *fiber.Ctx) error {
	userID, _ := currentUserID(c)
	insight, err := handler.insightsService.StressSleep(userID)
	if err != nil {
		return handler.internalError(c, "failed to load stress and sleep insight", err)
	}
	return c.JSON(insight)
}
