package services

import "github.com/terraincognita07/zivora/internal/models"

func stringPointer(value string) *string {
	return &value
}

func boolPointer(value bool) *bool {
	return &value
}

func intPointer(value int) *int {
	return &value
}

func headacheLog(id uint, date string, headache string) models.DailyLog {
	entry := models.DailyLog{ID: id, UserID: 1, Date: date}
	if headache != "" {
		entry.HeadacheData = stringPointer(headache)
	}
	return entry
}

type fixedChartSeries struct{}

func (fixedChartSeries) Series(base float64, spread float64) []ChartPoint {
	points := make([]ChartPoint, 0, chartSeriesPoints)
	for index := 0; index < chartSeriesPoints; index++ {
		points = append(points, ChartPoint{Day: chartDayLabel(index), Value: base + spread/2})
	}
	return points
}
