package services

import (
	"math"

	"github.com/terraincognita07/zivora/internal/models"
)

// IsHeadacheEvent reports whether a daily log records an actual headache.
// Malformed or missing headache data counts as no event.
func IsHeadacheEvent(entry models.DailyLog) bool {
	data, ok := models.ParseHeadacheData(entry.HeadacheData)
	if !ok {
		return false
	}
	return isHeadache(data)
}

func isHeadache(data models.HeadacheData) bool {
	if !data.SeverityPresent {
		return false
	}
	return !(data.SeverityIsText && data.Severity == models.SeverityNone)
}

type headacheEvent struct {
	Log  models.DailyLog
	Data models.HeadacheData
}

func collectHeadacheEvents(logs []models.DailyLog) []headacheEvent {
	events := make([]headacheEvent, 0, len(logs))
	for _, entry := range logs {
		data, ok := models.ParseHeadacheData(entry.HeadacheData)
		if !ok || !isHeadache(data) {
			continue
		}
		events = append(events, headacheEvent{Log: entry, Data: data})
	}
	return events
}

func severityLabel(data models.HeadacheData) string {
	if !data.SeverityIsText {
		return ""
	}
	return data.Severity
}

// SeverityWeight maps a headache severity label onto the 0-3 scale.
func SeverityWeight(label string) int {
	switch label {
	case models.SeveritySevere:
		return 3
	case models.SeverityModerate:
		return 2
	case models.SeverityMild:
		return 1
	default:
		return 0
	}
}

func headacheDurationHours(data models.HeadacheData) float64 {
	if data.Duration == nil {
		return models.DefaultEpisodeDurationHours
	}
	return data.Duration.TotalHours()
}

// MigraineSeverityLabel maps the stored 1-3 episode scale onto labels.
// Anything other than 2 or 3 reads as Mild.
func MigraineSeverityLabel(severity int) string {
	switch severity {
	case 3:
		return models.SeveritySevere
	case 2:
		return models.SeverityModerate
	default:
		return models.SeverityMild
	}
}

func roundHalfUp(value float64) float64 {
	return math.Floor(value + 0.5)
}

func roundToTenth(value float64) float64 {
	return math.Floor(value*10+0.5) / 10
}
