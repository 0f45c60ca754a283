package services

import (
	"sort"
	"time"

	"github.com/terraincognita07/zivora/internal/models"
)

const DefaultRecentLimit = 5

type TrendSummary struct {
	TotalEpisodes int     `json:"totalEpisodes"`
	AvgSeverity   float64 `json:"avgSeverity"`
	AvgDuration   float64 `json:"avgDuration"`
}

type FrequencyPoint struct {
	Day   int `json:"day"`
	Count int `json:"count"`
}

type EpisodeView struct {
	ID       uint     `json:"id"`
	Date     string   `json:"date"`
	Duration float64  `json:"duration"`
	Severity string   `json:"severity"`
	Triggers []string `json:"triggers"`
	Rating   int      `json:"rating"`
}

// Summarize counts headache days and averages their severity weight and
// duration, both rounded to one decimal.
func Summarize(logs []models.DailyLog) TrendSummary {
	events := collectHeadacheEvents(logs)
	if len(events) == 0 {
		return TrendSummary{}
	}

	severitySum := 0
	durationSum := 0.0
	for _, event := range events {
		severitySum += SeverityWeight(severityLabel(event.Data))
		durationSum += headacheDurationHours(event.Data)
	}

	count := float64(len(events))
	return TrendSummary{
		TotalEpisodes: len(events),
		AvgSeverity:   roundToTenth(float64(severitySum) / count),
		AvgDuration:   roundToTenth(durationSum / count),
	}
}

// FrequencyBucketWidth targets roughly eight points per window.
func FrequencyBucketWidth(windowDays int) int {
	return max(1, windowDays/8)
}

// Frequency buckets headache days into half-open windows
// [start+day, start+day+width) for day = 0, width, 2*width ... <= windowDays.
func Frequency(logs []models.DailyLog, windowDays int, start time.Time) []FrequencyPoint {
	events := collectHeadacheEvents(logs)
	eventDays := make([]time.Time, 0, len(events))
	for _, event := range events {
		if day, ok := event.Log.Day(); ok {
			eventDays = append(eventDays, day)
		}
	}

	width := FrequencyBucketWidth(windowDays)
	bucketSpan := time.Duration(width) * 24 * time.Hour
	points := make([]FrequencyPoint, 0, windowDays/width+1)
	for offset := 0; offset <= windowDays; offset += width {
		windowStart := start.Add(time.Duration(offset) * 24 * time.Hour)
		windowEnd := windowStart.Add(bucketSpan)

		count := 0
		for _, day := range eventDays {
			if !day.Before(windowStart) && day.Before(windowEnd) {
				count++
			}
		}
		points = append(points, FrequencyPoint{Day: offset, Count: count})
	}
	return points
}

// RecentEpisodes returns the newest headache days first. Ties keep store order.
func RecentEpisodes(logs []models.DailyLog, limit int) []EpisodeView {
	if limit <= 0 {
		return []EpisodeView{}
	}

	events := collectHeadacheEvents(logs)
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Log.Date > events[j].Log.Date
	})
	if len(events) > limit {
		events = events[:limit]
	}

	episodes := make([]EpisodeView, 0, len(events))
	for _, event := range events {
		severity := severityLabel(event.Data)
		if severity == "" {
			severity = models.SeverityMild
		}

		rating := SeverityWeight(severity)
		if rating == 0 {
			rating = 1
		}

		episodes = append(episodes, EpisodeView{
			ID:       event.Log.ID,
			Date:     event.Log.Date,
			Duration: roundToTenth(headacheDurationHours(event.Data)),
			Severity: severity,
			Triggers: episodeTriggers(event.Log),
			Rating:   rating,
		})
	}
	return episodes
}

func episodeTriggers(entry models.DailyLog) []string {
	data, ok := models.ParseTriggerData(entry.TriggerData)
	if !ok || !data.EmotionsPresent {
		return []string{"Unknown"}
	}
	return data.Emotions
}
