package services

import (
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/terraincognita07/zivora/internal/models"
)

func TestCorrelateDefaultsWithoutData(t *testing.T) {
	result := Correlate(nil, nil, fixedChartSeries{})

	// stress 60+5*5=85, sleep 60-7*3=39, heart rate 65
	if result.Stress.Correlation != 85 || result.Stress.Strength != "Very Strong" {
		t.Fatalf("unexpected stress metric: %#v", result.Stress)
	}
	if result.Sleep.Correlation != 39 || result.Sleep.Strength != "Weak" {
		t.Fatalf("unexpected sleep metric: %#v", result.Sleep)
	}
	if result.HeartRate.Correlation != 65 || result.HeartRate.Strength != "Moderate" {
		t.Fatalf("unexpected heart rate metric: %#v", result.HeartRate)
	}

	if result.HeartRate.Description != "Episodes occur 65% more often when HRV drops below 25ms" {
		t.Fatalf("unexpected heart rate description %q", result.HeartRate.Description)
	}
	if result.Sleep.Description != "Risk increases 39% with less than 6 hours of sleep" {
		t.Fatalf("unexpected sleep description %q", result.Sleep.Description)
	}
	if result.Stress.Description != "85% of episodes occur during high stress periods" {
		t.Fatalf("unexpected stress description %q", result.Stress.Description)
	}
}

func TestScoreCorrelationsClampsAndDefaultsSleep(t *testing.T) {
	logs := []models.DailyLog{
		{StressLevel: intPointer(10), SleepHours: intPointer(120)},
		{StressLevel: intPointer(10)},
	}
	migraines := make([]models.Migraine, 20)

	scores := ScoreCorrelations(logs, migraines)
	if scores.Stress != 89 {
		t.Fatalf("expected stress clamped to 89, got %v", scores.Stress)
	}
	// (120 + 420) / 2 / 60 = 4.5h
	if scores.Sleep != 46.5 {
		t.Fatalf("expected sleep score 46.5, got %v", scores.Sleep)
	}
	if scores.HeartRate != 85 {
		t.Fatalf("expected heart rate clamped to 85, got %v", scores.HeartRate)
	}

	result := Correlate(logs, migraines, fixedChartSeries{})
	if result.Sleep.Correlation != 47 || result.Sleep.Strength != "Moderate" {
		t.Fatalf("expected half-up rounding to 47 and Moderate, got %#v", result.Sleep)
	}
	if result.HeartRate.Strength != "Strong" {
		t.Fatalf("expected Strong heart rate, got %q", result.HeartRate.Strength)
	}
}

func TestScoreCorrelationsLowerClamps(t *testing.T) {
	logs := []models.DailyLog{{SleepHours: intPointer(900)}}

	scores := ScoreCorrelations(logs, nil)
	if scores.Sleep != 25 {
		t.Fatalf("expected sleep clamped to 25, got %v", scores.Sleep)
	}
	if scores.Stress != 60 {
		t.Fatalf("expected unset stress to count as 0, got %v", scores.Stress)
	}
	if stressStrength(scores.Stress) != "Moderate" {
		t.Fatalf("expected stress of exactly 60 to be Moderate")
	}
}

func TestCorrelateIsDeterministicApartFromChartData(t *testing.T) {
	logs := []models.DailyLog{
		{StressLevel: intPointer(4), SleepHours: intPointer(380)},
		{StressLevel: intPointer(7), SleepHours: intPointer(300)},
	}
	migraines := []models.Migraine{{Severity: 2}, {Severity: 3}}

	first := Correlate(logs, migraines, RandomChartSeries{})
	second := Correlate(logs, migraines, RandomChartSeries{})
	for _, metric := range []*HealthCorrelations{&first, &second} {
		metric.HeartRate.Data = nil
		metric.Sleep.Data = nil
		metric.Stress.Data = nil
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected identical scores, got %#v and %#v", first, second)
	}
}

func TestRandomChartSeriesShape(t *testing.T) {
	points := RandomChartSeries{}.Series(25, 20)
	if len(points) != 7 {
		t.Fatalf("expected 7 points, got %d", len(points))
	}
	for index, point := range points {
		if !strings.HasPrefix(point.Day, "Day ") {
			t.Fatalf("unexpected day label %q", point.Day)
		}
		if point.Day != chartDayLabel(index) {
			t.Fatalf("expected %q, got %q", chartDayLabel(index), point.Day)
		}
		if point.Value < 25 || point.Value >= 45 {
			t.Fatalf("value %v outside [25, 45)", point.Value)
		}
	}
	if points[6].Day != "Day 30" {
		t.Fatalf("expected last label Day 30, got %q", points[6].Day)
	}
}

func TestFilterMigrainesInWindow(t *testing.T) {
	now := time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)
	window := ResolvePeriod("7d", now)
	migraines := []models.Migraine{
		{ID: 1, StartDate: now.Add(-8 * 24 * time.Hour)},
		{ID: 2, StartDate: window.Start},
		{ID: 3, StartDate: now},
		{ID: 4, StartDate: now.Add(time.Minute)},
	}

	filtered := filterMigrainesInWindow(migraines, window)
	if len(filtered) != 2 || filtered[0].ID != 2 || filtered[1].ID != 3 {
		t.Fatalf("expected inclusive bounds, got %#v", filtered)
	}
}
