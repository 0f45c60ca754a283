package services

import (
	"strings"
	"time"

	"github.com/terraincognita07/zivora/internal/models"
)

const (
	PeriodWeek        = "7d"
	PeriodMonth       = "30d"
	PeriodQuarter     = "3m"
	PeriodNinetyDays  = "90d"
	PeriodHalfYear    = "6m"
	PeriodYear        = "365d"
	DefaultPeriod     = PeriodMonth
	defaultPeriodDays = 30
)

var periodDays = map[string]int{
	PeriodWeek:       7,
	PeriodMonth:      30,
	PeriodQuarter:    90,
	PeriodNinetyDays: 90,
	PeriodHalfYear:   180,
	PeriodYear:       365,
}

// PeriodWindow is the closed interval [Start, End] a period token covers.
type PeriodWindow struct {
	Token string
	Start time.Time
	End   time.Time
	Days  int
}

// ResolvePeriod never fails. Unknown tokens fall back to the 30 day window.
// Day-based tokens subtract whole 24h days; 365d subtracts one calendar year.
func ResolvePeriod(token string, now time.Time) PeriodWindow {
	normalized := strings.TrimSpace(token)
	days, ok := periodDays[normalized]
	if !ok {
		normalized = DefaultPeriod
		days = defaultPeriodDays
	}

	start := now.Add(-time.Duration(days) * 24 * time.Hour)
	if normalized == PeriodYear {
		start = now.AddDate(-1, 0, 0)
	}

	return PeriodWindow{
		Token: normalized,
		Start: start,
		End:   now,
		Days:  days,
	}
}

func (window PeriodWindow) Contains(value time.Time) bool {
	return !value.Before(window.Start) && !value.After(window.End)
}

// DateRange renders the window as inclusive UTC calendar dates for store queries.
func (window PeriodWindow) DateRange() models.DateRange {
	return models.DateRange{
		Start: window.Start.UTC().Format(models.DailyLogDateLayout),
		End:   window.End.UTC().Format(models.DailyLogDateLayout),
	}
}

func filterMigrainesInWindow(migraines []models.Migraine, window PeriodWindow) []models.Migraine {
	filtered := make([]models.Migraine, 0, len(migraines))
	for _, migraine := range migraines {
		if window.Contains(migraine.StartDate) {
			filtered = append(filtered, migraine)
		}
	}
	return filtered
}

func filterLogsInWindow(logs []models.DailyLog, window PeriodWindow) []models.DailyLog {
	filtered := make([]models.DailyLog, 0, len(logs))
	for _, entry := range logs {
		day, ok := entry.Day()
		if ok && window.Contains(day) {
			filtered = append(filtered, entry)
		}
	}
	return filtered
}
