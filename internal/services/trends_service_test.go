package services

import (
	"errors"
	"testing"
	"time"

	"github.com/terraincognita07/zivora/internal/models"
)

func TestTrendsServiceSummaryUsesWindowDates(t *testing.T) {
	now := time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)
	logs := &stubDailyLogReader{logs: []models.DailyLog{
		headacheLog(1, "2026-02-01", `{"severity":"Severe"}`),
		headacheLog(2, "2026-03-10", `{"severity":"Moderate","duration":{"hours":4}}`),
	}}
	service := NewTrendsService(logs, &stubMigraineReader{}, fixedChartSeries{})

	summary, err := service.Summary(1, ResolvePeriod("30d", now))
	if err != nil {
		t.Fatalf("Summary() unexpected error: %v", err)
	}
	if summary.TotalEpisodes != 1 || summary.AvgSeverity != 2 || summary.AvgDuration != 4 {
		t.Fatalf("unexpected summary: %#v", summary)
	}
	if logs.lastRange == nil || logs.lastRange.Start != "2026-02-13" || logs.lastRange.End != "2026-03-15" {
		t.Fatalf("unexpected store range: %#v", logs.lastRange)
	}
}

func TestTrendsServicePropagatesStoreErrors(t *testing.T) {
	storeErr := errors.New("database is locked")
	window := ResolvePeriod("30d", time.Now())
	service := NewTrendsService(&stubDailyLogReader{err: storeErr}, &stubMigraineReader{err: storeErr}, nil)

	if _, err := service.Summary(1, window); !errors.Is(err, storeErr) {
		t.Fatalf("Summary(): expected wrapped store error, got %v", err)
	}
	if _, err := service.Frequency(1, window); !errors.Is(err, storeErr) {
		t.Fatalf("Frequency(): expected wrapped store error, got %v", err)
	}
	if _, err := service.Recent(1, window, 5); !errors.Is(err, storeErr) {
		t.Fatalf("Recent(): expected wrapped store error, got %v", err)
	}
	if _, err := service.Correlations(1, window); !errors.Is(err, storeErr) {
		t.Fatalf("Correlations(): expected wrapped store error, got %v", err)
	}
	if _, err := service.TriggerPatterns(1, window); !errors.Is(err, storeErr) {
		t.Fatalf("TriggerPatterns(): expected wrapped store error, got %v", err)
	}
	if _, err := service.Export(1, time.Now()); !errors.Is(err, storeErr) {
		t.Fatalf("Export(): expected wrapped store error, got %v", err)
	}
}

func TestTrendsServiceCorrelationsFilterByInstant(t *testing.T) {
	now := time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)
	window := ResolvePeriod("7d", now)
	logs := &stubDailyLogReader{logs: []models.DailyLog{
		{Date: "2026-03-08", StressLevel: intPointer(10)},
		{Date: "2026-03-09", StressLevel: intPointer(2)},
		{Date: "2026-03-16", StressLevel: intPointer(10)},
	}}
	migraines := &stubMigraineReader{migraines: []models.Migraine{
		{StartDate: now.Add(-24 * time.Hour)},
		{StartDate: now.Add(-30 * 24 * time.Hour)},
	}}
	service := NewTrendsService(logs, migraines, fixedChartSeries{})

	result, err := service.Correlations(1, window)
	if err != nil {
		t.Fatalf("Correlations() unexpected error: %v", err)
	}
	if logs.lastRange != nil {
		t.Fatalf("expected unbounded store read, got %#v", logs.lastRange)
	}
	// only 2026-03-09 is inside [03-08 12:00, 03-15 12:00]: stress 60+2*5
	if result.Stress.Correlation != 70 {
		t.Fatalf("expected stress score 70, got %d", result.Stress.Correlation)
	}
	if result.HeartRate.Correlation != 67 {
		t.Fatalf("expected one in-range migraine, got heart rate %d", result.HeartRate.Correlation)
	}
	if len(result.Sleep.Data) != 7 {
		t.Fatalf("expected chart series, got %#v", result.Sleep.Data)
	}
}

func TestTrendsServiceTriggerPatternsFilterMigraines(t *testing.T) {
	now := time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)
	migraines := &stubMigraineReader{migraines: []models.Migraine{
		{StartDate: now.Add(-2 * 24 * time.Hour), Triggers: []string{"wine"}},
		{StartDate: now.Add(-60 * 24 * time.Hour), Triggers: []string{"cheese"}},
	}}
	service := NewTrendsService(&stubDailyLogReader{}, migraines, nil)

	patterns, err := service.TriggerPatterns(1, ResolvePeriod("30d", now))
	if err != nil {
		t.Fatalf("TriggerPatterns() unexpected error: %v", err)
	}
	if patterns[0].Name != "Red Wine" || patterns[0].Percentage != 100 {
		t.Fatalf("unexpected top pattern: %#v", patterns[0])
	}
	for _, pattern := range patterns[1:] {
		if pattern.Count != 0 {
			t.Fatalf("expected out-of-range cheese to be ignored, got %#v", pattern)
		}
	}
}

func TestTrendsServiceExport(t *testing.T) {
	now := time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)
	base := time.Date(2026, time.January, 1, 9, 0, 0, 0, time.UTC)
	latestStart := base.Add(10 * 24 * time.Hour)
	end := latestStart.Add(90 * time.Minute)

	migraines := make([]models.Migraine, 0, 7)
	for index := 0; index < 6; index++ {
		migraines = append(migraines, models.Migraine{
			StartDate: base.Add(time.Duration(index) * 24 * time.Hour),
			Severity:  index + 1,
		})
	}
	migraines = append(migraines, models.Migraine{
		StartDate: latestStart,
		EndDate:   &end,
		Severity:  7,
		Triggers:  []string{"Red wine", "Stress"},
	})
	service := NewTrendsService(&stubDailyLogReader{}, &stubMigraineReader{migraines: migraines}, nil)

	report, err := service.Export(1, now)
	if err != nil {
		t.Fatalf("Export() unexpected error: %v", err)
	}
	if !report.GeneratedAt.Equal(now) {
		t.Fatalf("unexpected generatedAt %s", report.GeneratedAt)
	}
	// severities 1..7 average 4; durations (6*2 + 1.5) / 7
	if report.Summary.TotalEpisodes != 7 || report.Summary.AvgSeverity != 4 || report.Summary.AvgDuration != 1.9 {
		t.Fatalf("unexpected summary: %#v", report.Summary)
	}
	if len(report.RecentEpisodes) != 5 {
		t.Fatalf("expected 5 recent episodes, got %d", len(report.RecentEpisodes))
	}

	newest := report.RecentEpisodes[0]
	if newest.Date != "2026-01-11" || newest.Severity != "Mild" || newest.Duration != "1.5 hours" || newest.Triggers != "Red wine, Stress" {
		t.Fatalf("unexpected newest episode: %#v", newest)
	}
	second := report.RecentEpisodes[1]
	if second.Date != "2026-01-06" || second.Duration != "2.0 hours" || second.Triggers != "None" {
		t.Fatalf("unexpected second episode: %#v", second)
	}
	if report.RecentEpisodes[4].Severity != "Severe" {
		t.Fatalf("expected severity 3 to read Severe, got %#v", report.RecentEpisodes[4])
	}
}

func TestTrendsServiceExportEmpty(t *testing.T) {
	service := NewTrendsService(&stubDailyLogReader{}, &stubMigraineReader{}, nil)

	report, err := service.Export(1, time.Now())
	if err != nil {
		t.Fatalf("Export() unexpected error: %v", err)
	}
	if report.Summary != (TrendSummary{}) || report.RecentEpisodes == nil || len(report.RecentEpisodes) != 0 {
		t.Fatalf("expected empty report, got %#v", report)
	}
}

func TestHistoryServiceList(t *testing.T) {
	now := time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)
	migraines := &stubMigraineReader{migraines: []models.Migraine{
		{ID: 9, StartDate: now.Add(-time.Hour), Severity: 2},
	}}
	service := NewHistoryService(migraines)

	entries, err := service.List(1, ResolvePeriod("7d", now), "all")
	if err != nil {
		t.Fatalf("List() unexpected error: %v", err)
	}
	if len(entries) != 1 || entries[0].ID != 9 || entries[0].Severity != "Moderate" {
		t.Fatalf("unexpected history: %#v", entries)
	}

	storeErr := errors.New("boom")
	if _, err := NewHistoryService(&stubMigraineReader{err: storeErr}).List(1, ResolvePeriod("7d", now), "all"); !errors.Is(err, storeErr) {
		t.Fatalf("expected wrapped store error, got %v", err)
	}
}
