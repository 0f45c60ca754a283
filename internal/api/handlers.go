package api

import (
	"errors"
	"strings"
	"time"

	"github.com/terraincognita07/zivora/internal/db"
	"github.com/terraincognita07/zivora/internal/services"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Handler struct {
	secretKey []byte
	logger    *zap.Logger
	now       func() time.Time

	trendsService     *services.TrendsService
	historyService    *services.HistoryService
	dayService        *services.DayService
	migraineService   *services.MigraineService
	triggerService    *services.TriggerService
	symptomService    *services.SymptomService
	medicationService *services.MedicationService
	symptomLogService *services.SymptomLogService
	insightsService   *services.InsightsService
	exportService     *services.ExportService
}

// NewHandler wires repositories and services over the database. A nil chart
// source falls back to random correlation chart data.
func NewHandler(database *gorm.DB, secretKey string, logger *zap.Logger, chart services.ChartSeriesSource) (*Handler, error) {
	if database == nil {
		return nil, errors.New("database is required")
	}
	if strings.TrimSpace(secretKey) == "" {
		return nil, errors.New("secret key is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	repositories := db.NewRepositories(database)
	return &Handler{
		secretKey:         []byte(secretKey),
		logger:            logger.Named("api"),
		now:               time.Now,
		trendsService:     services.NewTrendsService(repositories.DailyLogs, repositories.Migraines, chart),
		historyService:    services.NewHistoryService(repositories.Migraines),
		dayService:        services.NewDayService(repositories.DailyLogs),
		migraineService:   services.NewMigraineService(repositories.Migraines),
		triggerService:    services.NewTriggerService(repositories.Triggers),
		symptomService:    services.NewSymptomService(repositories.Symptoms),
		medicationService: services.NewMedicationService(repositories.Medications),
		symptomLogService: services.NewSymptomLogService(repositories.SymptomLogs),
		insightsService:   services.NewInsightsService(repositories.DailyLogs),
		exportService:     services.NewExportService(repositories.DailyLogs, repositories.Migraines),
	}, nil
}
