package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)
	registerAPIRoutes(app, handler)
}

func registerAPIRoutes(app *fiber.App, handler *Handler) {
	api := app.Group("/api", handler.AuthRequired)

	trends := api.Group("/user/trends")
	trends.Get("/summary/:userId", handler.SameUserOnly, handler.TrendsSummary)
	trends.Get("/frequency/:userId", handler.SameUserOnly, handler.TrendsFrequency)
	trends.Get("/recent/:userId", handler.SameUserOnly, handler.TrendsRecent)
	trends.Get("/correlations/:userId", handler.SameUserOnly, handler.TrendsCorrelations)
	trends.Get("/triggers/:userId", handler.SameUserOnly, handler.TrendsTriggers)
	trends.Get("/export/:userId", handler.SameUserOnly, handler.TrendsExport)

	api.Get("/user/history/:userId", handler.SameUserOnly, handler.History)

	api.Post("/daily-log", handler.SaveDailyLog)
	api.Get("/daily-log/:date", handler.GetDailyLogForm)
	api.Get("/users/:userId/daily-logs", handler.SameUserOnly, handler.ListDailyLogs)
	api.Put("/daily-logs/:id", handler.UpdateDailyLog)

	api.Get("/users/:userId/migraines", handler.SameUserOnly, handler.ListMigraines)
	migraines := api.Group("/migraines")
	migraines.Post("", handler.CreateMigraine)
	migraines.Get("/:id", handler.GetMigraine)
	migraines.Put("/:id", handler.UpdateMigraine)
	migraines.Delete("/:id", handler.DeleteMigraine)

	api.Get("/users/:userId/triggers", handler.SameUserOnly, handler.ListTriggers)
	api.Post("/triggers", handler.CreateTrigger)
	api.Put("/triggers/:id", handler.UpdateTrigger)
	api.Delete("/triggers/:id", handler.DeleteTrigger)

	api.Get("/users/:userId/symptoms", handler.SameUserOnly, handler.ListSymptoms)
	api.Post("/symptoms", handler.CreateSymptom)
	api.Put("/symptoms/:id", handler.UpdateSymptom)
	api.Delete("/symptoms/:id", handler.DeleteSymptom)

	medications := api.Group("/users/:userId/medications")
	medications.Get("", handler.SameUserOnly, handler.ListMedications)
	medications.Post("", handler.SameUserOnly, handler.CreateMedication)
	medications.Put("/:medicationId", handler.SameUserOnly, handler.UpdateMedication)
	medications.Delete("/:medicationId", handler.SameUserOnly, handler.DeleteMedication)

	api.Post("/symptoms-log", handler.RecordSymptomLog)
	api.Get("/user/symptoms/:userId", handler.SameUserOnly, handler.ListSymptomLogs)

	insights := api.Group("/user")
	insights.Get("/health-indicators/:userId", handler.SameUserOnly, handler.HealthIndicators)
	insights.Get("/insight/analysis-confidence/:userId", handler.SameUserOnly, handler.AnalysisConfidence)
	insights.Get("/insight/stress-sleep/:userId", handler.SameUserOnly, handler.StressSleepInsight)

	export := api.Group("/export")
	export.Get("/preferences/:userId", handler.SameUserOnly, handler.ExportPreferences)
	export.Get("/summary/:userId", handler.SameUserOnly, handler.ExportSummary)
	export.Post("/health-data", handler.ExportHealthData)
}
