package services

import (
	"errors"
	"testing"
	"time"

	"github.com/terraincognita07/zivora/internal/models"
)

func TestBuildHealthIndicatorsDefaults(t *testing.T) {
	indicators := BuildHealthIndicators(nil)

	if indicators.SleepQuality != (IndicatorValue{Value: "7.2h", Status: "Quality"}) {
		t.Fatalf("unexpected sleep default: %#v", indicators.SleepQuality)
	}
	if indicators.StressLevel != (IndicatorValue{Value: "Low", Status: "Stable"}) {
		t.Fatalf("unexpected stress default: %#v", indicators.StressLevel)
	}
}

func TestBuildHealthIndicatorsAverages(t *testing.T) {
	logs := []models.DailyLog{
		{SleepHours: intPointer(360), StressLevel: intPointer(9)},
		{SleepHours: intPointer(366), StressLevel: intPointer(6)},
		{StressLevel: intPointer(3)},
	}

	indicators := BuildHealthIndicators(logs)
	// (360 + 366 + 420) / 3 / 60 = 6.37
	if indicators.SleepQuality.Value != "6.4h" || indicators.SleepQuality.Status != "Fair" {
		t.Fatalf("unexpected sleep indicator: %#v", indicators.SleepQuality)
	}
	if indicators.StressLevel.Value != "Moderate" {
		t.Fatalf("unexpected stress indicator: %#v", indicators.StressLevel)
	}

	poor := BuildHealthIndicators([]models.DailyLog{{SleepHours: intPointer(300), StressLevel: intPointer(8)}})
	if poor.SleepQuality.Status != "Poor" || poor.StressLevel.Value != "High" {
		t.Fatalf("unexpected poor indicators: %#v", poor)
	}
}

func TestInsightsServiceHealthIndicatorsUsesLastWeek(t *testing.T) {
	now := time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)
	logs := &stubDailyLogReader{logs: []models.DailyLog{
		{Date: "2026-03-01", SleepHours: intPointer(240)},
		{Date: "2026-03-14", SleepHours: intPointer(480)},
	}}

	indicators, err := NewInsightsService(logs).HealthIndicators(1, now)
	if err != nil {
		t.Fatalf("HealthIndicators() unexpected error: %v", err)
	}
	if logs.lastRange == nil || logs.lastRange.Start != "2026-03-08" || logs.lastRange.End != "2026-03-15" {
		t.Fatalf("unexpected store range %#v", logs.lastRange)
	}
	if indicators.SleepQuality.Value != "8.0h" {
		t.Fatalf("expected only last week's log, got %#v", indicators.SleepQuality)
	}
}

func TestConfidencePercent(t *testing.T) {
	tests := map[int64]int{0: 50, 4: 50, 5: 65, 9: 65, 10: 75, 19: 75, 20: 85, 29: 85, 30: 90, 400: 90}
	for days, want := range tests {
		if got := ConfidencePercent(days); got != want {
			t.Fatalf("ConfidencePercent(%d)=%d, want %d", days, got, want)
		}
	}
}

func TestInsightsServiceAnalysisConfidence(t *testing.T) {
	logs := &stubDailyLogReader{logs: make([]models.DailyLog, 12)}

	confidence, err := NewInsightsService(logs).AnalysisConfidence(1)
	if err != nil {
		t.Fatalf("AnalysisConfidence() unexpected error: %v", err)
	}
	if confidence != (AnalysisConfidence{ConfidencePercent: 75, DaysTracked: 12}) {
		t.Fatalf("unexpected confidence: %#v", confidence)
	}

	storeErr := errors.New("gone")
	if _, err := NewInsightsService(&stubDailyLogReader{countErr: storeErr}).AnalysisConfidence(1); !errors.Is(err, storeErr) {
		t.Fatalf("expected wrapped store error, got %v", err)
	}
}

func TestBuildStressSleepInsight(t *testing.T) {
	if got := BuildStressSleepInsight(nil); got != (StressSleepInsight{StressLevel: "Moderate", AvgSleepHours: 7.0}) {
		t.Fatalf("unexpected default insight: %#v", got)
	}

	logs := []models.DailyLog{
		{SleepHours: intPointer(400), StressLevel: intPointer(4)},
		{SleepHours: intPointer(380), StressLevel: intPointer(5)},
		{StressLevel: intPointer(9)},
	}
	// stress (4+5+9)/2 = 9, sleep (400+380)/2/60 = 6.5
	got := BuildStressSleepInsight(logs)
	if got.StressLevel != "High" || got.AvgSleepHours != 6.5 {
		t.Fatalf("unexpected insight: %#v", got)
	}
}
