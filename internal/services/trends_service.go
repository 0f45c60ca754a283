package services

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/terraincognita07/zivora/internal/models"
)

const trendsExportRecentLimit = 5

type TrendsDailyLogReader interface {
	ListByUser(userID uint, dateRange *models.DateRange) ([]models.DailyLog, error)
}

type TrendsMigraineReader interface {
	ListByUser(userID uint) ([]models.Migraine, error)
}

type TrendsService struct {
	logs      TrendsDailyLogReader
	migraines TrendsMigraineReader
	chart     ChartSeriesSource
}

type TrendsExport struct {
	GeneratedAt    time.Time             `json:"generatedAt"`
	Summary        TrendSummary          `json:"summary"`
	RecentEpisodes []TrendsExportEpisode `json:"recentEpisodes"`
}

type TrendsExportEpisode struct {
	Date     string `json:"date"`
	Severity string `json:"severity"`
	Duration string `json:"duration"`
	Triggers string `json:"triggers"`
}

func NewTrendsService(logs TrendsDailyLogReader, migraines TrendsMigraineReader, chart ChartSeriesSource) *TrendsService {
	if chart == nil {
		chart = RandomChartSeries{}
	}
	return &TrendsService{
		logs:      logs,
		migraines: migraines,
		chart:     chart,
	}
}

func (service *TrendsService) loadWindowLogs(userID uint, window PeriodWindow) ([]models.DailyLog, error) {
	dateRange := window.DateRange()
	logs, err := service.logs.ListByUser(userID, &dateRange)
	if err != nil {
		return nil, fmt.Errorf("load daily logs: %w", err)
	}
	return logs, nil
}

func (service *TrendsService) loadMigraines(userID uint) ([]models.Migraine, error) {
	migraines, err := service.migraines.ListByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("load migraines: %w", err)
	}
	return migraines, nil
}

func (service *TrendsService) Summary(userID uint, window PeriodWindow) (TrendSummary, error) {
	logs, err := service.loadWindowLogs(userID, window)
	if err != nil {
		return TrendSummary{}, err
	}
	return Summarize(logs), nil
}

func (service *TrendsService) Frequency(userID uint, window PeriodWindow) ([]FrequencyPoint, error) {
	logs, err := service.loadWindowLogs(userID, window)
	if err != nil {
		return nil, err
	}
	return Frequency(logs, window.Days, window.Start), nil
}

func (service *TrendsService) Recent(userID uint, window PeriodWindow, limit int) ([]EpisodeView, error) {
	logs, err := service.loadWindowLogs(userID, window)
	if err != nil {
		return nil, err
	}
	return RecentEpisodes(logs, limit), nil
}

// Correlations filters by the parsed log date against the exact window
// instants, so a log dated on the start day before the start time is excluded.
func (service *TrendsService) Correlations(userID uint, window PeriodWindow) (HealthCorrelations, error) {
	logs, err := service.logs.ListByUser(userID, nil)
	if err != nil {
		return HealthCorrelations{}, fmt.Errorf("load daily logs: %w", err)
	}
	migraines, err := service.loadMigraines(userID)
	if err != nil {
		return HealthCorrelations{}, err
	}

	return Correlate(
		filterLogsInWindow(logs, window),
		filterMigrainesInWindow(migraines, window),
		service.chart,
	), nil
}

func (service *TrendsService) TriggerPatterns(userID uint, window PeriodWindow) ([]TriggerPattern, error) {
	migraines, err := service.loadMigraines(userID)
	if err != nil {
		return nil, err
	}
	return TriggerPatterns(filterMigrainesInWindow(migraines, window)), nil
}

// Export summarises every stored migraine episode. Severity here is averaged
// as a free integer, unlike the daily-log summary.
func (service *TrendsService) Export(userID uint, now time.Time) (TrendsExport, error) {
	migraines, err := service.loadMigraines(userID)
	if err != nil {
		return TrendsExport{}, err
	}

	return TrendsExport{
		GeneratedAt:    now,
		Summary:        summarizeMigraines(migraines),
		RecentEpisodes: recentMigraineEpisodes(migraines, trendsExportRecentLimit),
	}, nil
}

func summarizeMigraines(migraines []models.Migraine) TrendSummary {
	if len(migraines) == 0 {
		return TrendSummary{}
	}

	severitySum := 0
	durationSum := 0.0
	for _, migraine := range migraines {
		severitySum += migraine.Severity
		durationSum += migraine.DurationHours()
	}

	count := float64(len(migraines))
	return TrendSummary{
		TotalEpisodes: len(migraines),
		AvgSeverity:   roundToTenth(float64(severitySum) / count),
		AvgDuration:   roundToTenth(durationSum / count),
	}
}

func recentMigraineEpisodes(migraines []models.Migraine, limit int) []TrendsExportEpisode {
	sorted := make([]models.Migraine, len(migraines))
	copy(sorted, migraines)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].StartDate.After(sorted[j].StartDate)
	})
	if len(sorted) > limit {
		sorted = sorted[:limit]
	}

	episodes := make([]TrendsExportEpisode, 0, len(sorted))
	for _, migraine := range sorted {
		triggers := "None"
		if migraine.Triggers != nil {
			triggers = strings.Join(migraine.Triggers, ", ")
		}
		episodes = append(episodes, TrendsExportEpisode{
			Date:     migraine.StartDate.UTC().Format(models.DailyLogDateLayout),
			Severity: MigraineSeverityLabel(migraine.Severity),
			Duration: fmt.Sprintf("%.1f hours", migraine.DurationHours()),
			Triggers: triggers,
		})
	}
	return episodes
}
