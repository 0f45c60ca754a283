package services

import (
	"strconv"
	"strings"

	"github.com/terraincognita07/zivora/internal/models"
)

const (
	HistorySeverityAll     = "all"
	defaultHistoryLocation = "Home"
	defaultHistoryWeather  = "Clear"
	defaultHistoryRating   = 5
)

type HistoryEntry struct {
	ID         uint     `json:"id"`
	Date       string   `json:"date"`
	Severity   string   `json:"severity"`
	Duration   float64  `json:"duration"`
	Triggers   []string `json:"triggers"`
	Location   string   `json:"location"`
	Weather    string   `json:"weather"`
	Medication string   `json:"medication"`
	Notes      string   `json:"notes"`
	Rating     int      `json:"rating"`
}

// BuildHistory lists migraine episodes inside the window. The severity filter
// matches the stored integer as text; "all" disables it.
func BuildHistory(migraines []models.Migraine, window PeriodWindow, severity string) []HistoryEntry {
	severityFilter := strings.TrimSpace(severity)
	if severityFilter == "" {
		severityFilter = HistorySeverityAll
	}

	entries := make([]HistoryEntry, 0, len(migraines))
	for _, migraine := range migraines {
		if !window.Contains(migraine.StartDate) {
			continue
		}
		if severityFilter != HistorySeverityAll && !strings.EqualFold(strconv.Itoa(migraine.Severity), severityFilter) {
			continue
		}
		entries = append(entries, buildHistoryEntry(migraine))
	}
	return entries
}

func buildHistoryEntry(migraine models.Migraine) HistoryEntry {
	triggers := migraine.Triggers
	if triggers == nil {
		triggers = []string{"Unknown"}
	}

	medication := "None"
	if len(migraine.Medications) > 0 {
		medication = migraine.Medications[0]
	}

	rating := migraine.Severity
	if rating == 0 {
		rating = defaultHistoryRating
	}

	return HistoryEntry{
		ID:         migraine.ID,
		Date:       migraine.StartDate.UTC().Format(models.DailyLogDateLayout),
		Severity:   MigraineSeverityLabel(migraine.Severity),
		Duration:   roundToTenth(migraine.DurationHours()),
		Triggers:   triggers,
		Location:   stringOrDefault(migraine.Location, defaultHistoryLocation),
		Weather:    stringOrDefault(migraine.Weather, defaultHistoryWeather),
		Medication: medication,
		Notes:      models.StringValue(migraine.Notes),
		Rating:     rating,
	}
}

func stringOrDefault(value *string, fallback string) string {
	if value == nil || *value == "" {
		return fallback
	}
	return *value
}
