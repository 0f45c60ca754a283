package services

import (
	"fmt"
	"math/rand"

	"github.com/terraincognita07/zivora/internal/models"
)

const (
	chartSeriesPoints   = 7
	chartSeriesDayStep  = 5
	defaultSleepMinutes = 420
	defaultAvgStress    = 5.0
	defaultAvgSleep     = 7.0
)

type ChartPoint struct {
	Day   string  `json:"day"`
	Value float64 `json:"value"`
}

type CorrelationMetric struct {
	Strength    string       `json:"strength"`
	Correlation int          `json:"correlation"`
	Description string       `json:"description"`
	Data        []ChartPoint `json:"data"`
}

type HealthCorrelations struct {
	HeartRate CorrelationMetric `json:"heartRate"`
	Sleep     CorrelationMetric `json:"sleep"`
	Stress    CorrelationMetric `json:"stress"`
}

// CorrelationScores holds the unrounded scores the labels are derived from.
type CorrelationScores struct {
	HeartRate float64
	Sleep     float64
	Stress    float64
}

// ChartSeriesSource produces the illustrative chart series attached to each
// metric. The values carry no meaning.
type ChartSeriesSource interface {
	Series(base float64, spread float64) []ChartPoint
}

type RandomChartSeries struct{}

func (RandomChartSeries) Series(base float64, spread float64) []ChartPoint {
	points := make([]ChartPoint, 0, chartSeriesPoints)
	for index := 0; index < chartSeriesPoints; index++ {
		points = append(points, ChartPoint{
			Day:   chartDayLabel(index),
			Value: base + rand.Float64()*spread,
		})
	}
	return points
}

func chartDayLabel(index int) string {
	return fmt.Sprintf("Day %d", index*chartSeriesDayStep)
}

// ScoreCorrelations applies the fixed scoring formulas to in-range data.
// These are heuristics over averages, not statistical correlations.
func ScoreCorrelations(logs []models.DailyLog, migraines []models.Migraine) CorrelationScores {
	avgStress := defaultAvgStress
	avgSleep := defaultAvgSleep
	if len(logs) > 0 {
		stressSum := 0
		sleepSum := 0
		for _, entry := range logs {
			stressSum += entry.Stress()
			sleep := entry.SleepMinutes()
			if sleep == 0 {
				sleep = defaultSleepMinutes
			}
			sleepSum += sleep
		}
		count := float64(len(logs))
		avgStress = float64(stressSum) / count
		avgSleep = float64(sleepSum) / count / 60
	}

	return CorrelationScores{
		HeartRate: clamp(65+float64(len(migraines))*2, 50, 85),
		Sleep:     clamp(60-avgSleep*3, 25, 75),
		Stress:    clamp(60+avgStress*5, 45, 89),
	}
}

func Correlate(logs []models.DailyLog, migraines []models.Migraine, chart ChartSeriesSource) HealthCorrelations {
	if chart == nil {
		chart = RandomChartSeries{}
	}
	scores := ScoreCorrelations(logs, migraines)

	heartRate := int(roundHalfUp(scores.HeartRate))
	sleep := int(roundHalfUp(scores.Sleep))
	stress := int(roundHalfUp(scores.Stress))

	return HealthCorrelations{
		HeartRate: CorrelationMetric{
			Strength:    heartRateStrength(scores.HeartRate),
			Correlation: heartRate,
			Description: fmt.Sprintf("Episodes occur %d%% more often when HRV drops below 25ms", heartRate),
			Data:        chart.Series(25, 20),
		},
		Sleep: CorrelationMetric{
			Strength:    sleepStrength(scores.Sleep),
			Correlation: sleep,
			Description: fmt.Sprintf("Risk increases %d%% with less than 6 hours of sleep", sleep),
			Data:        chart.Series(30, 15),
		},
		Stress: CorrelationMetric{
			Strength:    stressStrength(scores.Stress),
			Correlation: stress,
			Description: fmt.Sprintf("%d%% of episodes occur during high stress periods", stress),
			Data:        chart.Series(25, 25),
		},
	}
}

func heartRateStrength(score float64) string {
	switch {
	case score > 70:
		return "Strong"
	case score > 50:
		return "Moderate"
	default:
		return "Weak"
	}
}

func sleepStrength(score float64) string {
	switch {
	case score > 60:
		return "Strong"
	case score > 40:
		return "Moderate"
	default:
		return "Weak"
	}
}

func stressStrength(score float64) string {
	switch {
	case score > 80:
		return "Very Strong"
	case score > 60:
		return "Strong"
	default:
		return "Moderate"
	}
}

func clamp(value float64, low float64, high float64) float64 {
	return min(high, max(low, value))
}
