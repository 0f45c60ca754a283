package services

import (
	"fmt"
	"time"

	"github.com/terraincognita07/zivora/internal/models"
)

const healthIndicatorDays = 7

type InsightsDailyLogReader interface {
	ListByUser(userID uint, dateRange *models.DateRange) ([]models.DailyLog, error)
	CountByUser(userID uint) (int64, error)
}

type InsightsService struct {
	logs InsightsDailyLogReader
}

type IndicatorValue struct {
	Value  string `json:"value"`
	Status string `json:"status"`
}

type HealthIndicators struct {
	StressLevel  IndicatorValue `json:"stressLevel"`
	SleepQuality IndicatorValue `json:"sleepQuality"`
}

type AnalysisConfidence struct {
	ConfidencePercent int   `json:"confidencePercent"`
	DaysTracked       int64 `json:"daysTracked"`
}

type StressSleepInsight struct {
	StressLevel   string  `json:"stressLevel"`
	AvgSleepHours float64 `json:"avgSleepHours"`
}

func NewInsightsService(logs InsightsDailyLogReader) *InsightsService {
	return &InsightsService{logs: logs}
}

func (service *InsightsService) HealthIndicators(userID uint, now time.Time) (HealthIndicators, error) {
	dateRange := models.DateRange{
		Start: now.Add(-healthIndicatorDays * 24 * time.Hour).UTC().Format(models.DailyLogDateLayout),
		End:   now.UTC().Format(models.DailyLogDateLayout),
	}
	logs, err := service.logs.ListByUser(userID, &dateRange)
	if err != nil {
		return HealthIndicators{}, fmt.Errorf("load daily logs: %w", err)
	}
	return BuildHealthIndicators(logs), nil
}

// BuildHealthIndicators averages recent sleep and stress. Unset sleep counts
// as seven hours and unset stress as 2.
func BuildHealthIndicators(logs []models.DailyLog) HealthIndicators {
	avgSleep := 7.2
	avgStress := 2.0
	if len(logs) > 0 {
		sleepSum := 0
		stressSum := 0
		for _, entry := range logs {
			sleep := entry.SleepMinutes()
			if sleep == 0 {
				sleep = defaultSleepMinutes
			}
			sleepSum += sleep

			stress := entry.Stress()
			if stress == 0 {
				stress = 2
			}
			stressSum += stress
		}
		count := float64(len(logs))
		avgSleep = roundToTenth(float64(sleepSum) / count / 60)
		avgStress = float64(stressSum) / count
	}

	sleepStatus := "Poor"
	switch {
	case avgSleep >= 7:
		sleepStatus = "Quality"
	case avgSleep >= 6:
		sleepStatus = "Fair"
	}

	return HealthIndicators{
		StressLevel:  IndicatorValue{Value: StressLabel(avgStress), Status: "Stable"},
		SleepQuality: IndicatorValue{Value: fmt.Sprintf("%.1fh", avgSleep), Status: sleepStatus},
	}
}

func (service *InsightsService) AnalysisConfidence(userID uint) (AnalysisConfidence, error) {
	count, err := service.logs.CountByUser(userID)
	if err != nil {
		return AnalysisConfidence{}, fmt.Errorf("count daily logs: %w", err)
	}
	return AnalysisConfidence{
		ConfidencePercent: ConfidencePercent(count),
		DaysTracked:       count,
	}, nil
}

// ConfidencePercent grows in steps with the number of tracked days.
func ConfidencePercent(daysTracked int64) int {
	switch {
	case daysTracked >= 30:
		return 90
	case daysTracked >= 20:
		return 85
	case daysTracked >= 10:
		return 75
	case daysTracked >= 5:
		return 65
	default:
		return 50
	}
}

func (service *InsightsService) StressSleep(userID uint) (StressSleepInsight, error) {
	logs, err := service.logs.ListByUser(userID, nil)
	if err != nil {
		return StressSleepInsight{}, fmt.Errorf("load daily logs: %w", err)
	}
	return BuildStressSleepInsight(logs), nil
}

// BuildStressSleepInsight averages over logs that recorded sleep. Stress is
// summed across every log but divided by the same count.
func BuildStressSleepInsight(logs []models.DailyLog) StressSleepInsight {
	sleepHoursSum := 0.0
	stressSum := 0
	sleepEntries := 0
	for _, entry := range logs {
		if sleep := entry.SleepMinutes(); sleep != 0 {
			sleepHoursSum += float64(sleep) / 60
			sleepEntries++
		}
		stressSum += entry.Stress()
	}

	if sleepEntries == 0 {
		return StressSleepInsight{StressLevel: StressLabel(5), AvgSleepHours: 7.0}
	}

	avgStress := float64(stressSum) / float64(sleepEntries)
	return StressSleepInsight{
		StressLevel:   StressLabel(avgStress),
		AvgSleepHours: roundToTenth(sleepHoursSum / float64(sleepEntries)),
	}
}
