package services

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/terraincognita07/zivora/internal/models"
)

const (
	ExportRangeLast7  = "last7"
	ExportRangeLast30 = "last30"
	ExportRangeCustom = "custom"

	ExportFormatJSON = "json"
	ExportFormatCSV  = "csv"
	ExportFormatPDF  = "pdf"

	ExportDataSleepQuality = "sleepQuality"
	ExportDataStressLevels = "stressLevels"
	ExportDataFoodTriggers = "foodTriggers"

	exportKBPerRecord = 2.5
	exportMinimumKB   = 10.0
)

var (
	ErrInvalidDateRange        = errors.New("invalid export date range")
	ErrUnsupportedExportFormat = errors.New("unsupported export format")
)

var exportDailyLogCSVHeader = []string{"Date", "Sleep Hours", "Stress Level", "Mood Score", "Notes"}
var exportFoodTriggerCSVHeader = []string{"Date", "Triggers", "Severity"}

type ExportDailyLogReader interface {
	ListByUser(userID uint, dateRange *models.DateRange) ([]models.DailyLog, error)
}

type ExportMigraineReader interface {
	ListByUser(userID uint) ([]models.Migraine, error)
}

type ExportService struct {
	logs      ExportDailyLogReader
	migraines ExportMigraineReader
}

type ExportSummary struct {
	RecordCount   int    `json:"recordCount"`
	EstimatedSize string `json:"estimatedSize"`
}

type ExportRequest struct {
	UserID            uint
	DateRange         string
	CustomStartDate   string
	CustomEndDate     string
	SelectedDataTypes []string
	Format            string
}

type ExportDailyLog struct {
	Date        string
	SleepHours  *float64
	StressLevel *int
	MoodScore   *int
	Notes       *string
}

type ExportFoodTrigger struct {
	Date     string   `json:"date"`
	Triggers []string `json:"triggers"`
	Severity int      `json:"severity"`
}

// HealthDataExport holds only the sections that were selected. Daily log
// fields the caller did not ask for are left out of the JSON entirely.
type HealthDataExport struct {
	UserID              uint
	Start               time.Time
	End                 time.Time
	GeneratedAt         time.Time
	IncludeSleep        bool
	IncludeStress       bool
	IncludeFoodTriggers bool
	DailyLogs           []ExportDailyLog
	FoodTriggers        []ExportFoodTrigger
}

func NewExportService(logs ExportDailyLogReader, migraines ExportMigraineReader) *ExportService {
	return &ExportService{
		logs:      logs,
		migraines: migraines,
	}
}

// ResolveExportStart picks the first instant of an export. A custom range
// needs both bounds; otherwise the named ranges apply and anything else means
// the last 30 days.
func ResolveExportStart(dateRange string, customStart string, customEnd string, now time.Time) (time.Time, error) {
	customStart = strings.TrimSpace(customStart)
	customEnd = strings.TrimSpace(customEnd)

	switch {
	case dateRange == ExportRangeCustom && customStart != "" && customEnd != "":
		start, err := time.Parse(models.DailyLogDateLayout, customStart)
		if err != nil {
			return time.Time{}, ErrInvalidDateRange
		}
		if _, err := time.Parse(models.DailyLogDateLayout, customEnd); err != nil {
			return time.Time{}, ErrInvalidDateRange
		}
		return start, nil
	case dateRange == ExportRangeLast7:
		return now.Add(-7 * 24 * time.Hour), nil
	default:
		return now.Add(-30 * 24 * time.Hour), nil
	}
}

func (service *ExportService) Summary(userID uint, dateRange string, customStart string, customEnd string, now time.Time) (ExportSummary, error) {
	start, err := ResolveExportStart(dateRange, customStart, customEnd, now)
	if err != nil {
		return ExportSummary{}, err
	}
	window := PeriodWindow{Start: start, End: now}

	logs, migraines, err := service.loadAll(userID)
	if err != nil {
		return ExportSummary{}, err
	}

	recordCount := len(filterLogsInWindow(logs, window)) + len(filterMigrainesInWindow(migraines, window))
	return ExportSummary{
		RecordCount:   recordCount,
		EstimatedSize: EstimateExportSize(recordCount),
	}, nil
}

// EstimateExportSize guesses 2.5 KB per record with a 10 KB floor.
func EstimateExportSize(recordCount int) string {
	sizeKB := max(exportMinimumKB, float64(recordCount)*exportKBPerRecord)
	if sizeKB > 1024 {
		return fmt.Sprintf("~%.1f MB", roundToTenth(sizeKB/1024))
	}
	return fmt.Sprintf("~%d KB", int(roundHalfUp(sizeKB)))
}

func (service *ExportService) loadAll(userID uint) ([]models.DailyLog, []models.Migraine, error) {
	logs, err := service.logs.ListByUser(userID, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("load daily logs: %w", err)
	}
	migraines, err := service.migraines.ListByUser(userID)
	if err != nil {
		return nil, nil, fmt.Errorf("load migraines: %w", err)
	}
	return logs, migraines, nil
}

func (service *ExportService) BuildHealthData(request ExportRequest, now time.Time) (HealthDataExport, error) {
	if strings.EqualFold(strings.TrimSpace(request.Format), ExportFormatPDF) {
		return HealthDataExport{}, ErrUnsupportedExportFormat
	}

	start, err := ResolveExportStart(request.DateRange, request.CustomStartDate, request.CustomEndDate, now)
	if err != nil {
		return HealthDataExport{}, err
	}
	window := PeriodWindow{Start: start, End: now}

	export := HealthDataExport{
		UserID:              request.UserID,
		Start:               start,
		End:                 now,
		GeneratedAt:         now,
		IncludeSleep:        containsDataType(request.SelectedDataTypes, ExportDataSleepQuality),
		IncludeStress:       containsDataType(request.SelectedDataTypes, ExportDataStressLevels),
		IncludeFoodTriggers: containsDataType(request.SelectedDataTypes, ExportDataFoodTriggers),
	}

	if export.IncludesDailyLogs() {
		logs, err := service.logs.ListByUser(request.UserID, nil)
		if err != nil {
			return HealthDataExport{}, fmt.Errorf("load daily logs: %w", err)
		}
		export.DailyLogs = buildExportDailyLogs(filterLogsInWindow(logs, window))
	}

	if export.IncludeFoodTriggers {
		migraines, err := service.migraines.ListByUser(request.UserID)
		if err != nil {
			return HealthDataExport{}, fmt.Errorf("load migraines: %w", err)
		}
		export.FoodTriggers = buildExportFoodTriggers(filterMigrainesInWindow(migraines, window))
	}

	return export, nil
}

func containsDataType(selected []string, dataType string) bool {
	for _, value := range selected {
		if value == dataType {
			return true
		}
	}
	return false
}

func buildExportDailyLogs(logs []models.DailyLog) []ExportDailyLog {
	entries := make([]ExportDailyLog, 0, len(logs))
	for _, entry := range logs {
		exported := ExportDailyLog{
			Date:        entry.Date,
			StressLevel: entry.StressLevel,
			MoodScore:   entry.MoodScore,
			Notes:       entry.Notes,
		}
		if minutes := entry.SleepMinutes(); minutes != 0 {
			hours := float64(minutes) / 60
			exported.SleepHours = &hours
		}
		entries = append(entries, exported)
	}
	return entries
}

func buildExportFoodTriggers(migraines []models.Migraine) []ExportFoodTrigger {
	entries := make([]ExportFoodTrigger, 0, len(migraines))
	for _, migraine := range migraines {
		if len(migraine.Triggers) == 0 {
			continue
		}
		entries = append(entries, ExportFoodTrigger{
			Date:     migraine.StartDate.UTC().Format(models.DailyLogDateLayout),
			Triggers: migraine.Triggers,
			Severity: migraine.Severity,
		})
	}
	return entries
}

func (export HealthDataExport) IncludesDailyLogs() bool {
	return export.IncludeSleep || export.IncludeStress
}

func (export HealthDataExport) MarshalJSON() ([]byte, error) {
	document := map[string]any{
		"user": map[string]any{"id": export.UserID},
		"dateRange": map[string]any{
			"start": export.Start,
			"end":   export.End,
		},
		"generatedAt": export.GeneratedAt,
	}

	if export.IncludesDailyLogs() {
		logs := make([]map[string]any, 0, len(export.DailyLogs))
		for _, entry := range export.DailyLogs {
			item := map[string]any{
				"date":      entry.Date,
				"moodScore": entry.MoodScore,
				"notes":     entry.Notes,
			}
			if export.IncludeSleep {
				item["sleepHours"] = entry.SleepHours
			}
			if export.IncludeStress {
				item["stressLevel"] = entry.StressLevel
			}
			logs = append(logs, item)
		}
		document["dailyLogs"] = logs
	}

	if export.IncludeFoodTriggers {
		triggers := export.FoodTriggers
		if triggers == nil {
			triggers = []ExportFoodTrigger{}
		}
		document["foodTriggers"] = triggers
	}

	return json.Marshal(document)
}

// WriteCSV writes one section per selected dataset, each followed by a blank
// line.
func (export HealthDataExport) WriteCSV(writer io.Writer) error {
	csvWriter := csv.NewWriter(writer)

	if export.IncludesDailyLogs() {
		if err := csvWriter.Write(exportDailyLogCSVHeader); err != nil {
			return err
		}
		for _, entry := range export.DailyLogs {
			row := []string{
				entry.Date,
				csvSleepHours(entry.SleepHours, export.IncludeSleep),
				csvOptionalInt(entry.StressLevel, export.IncludeStress),
				csvOptionalInt(entry.MoodScore, true),
				models.StringValue(entry.Notes),
			}
			if err := csvWriter.Write(row); err != nil {
				return err
			}
		}
		if err := csvWriter.Write([]string{""}); err != nil {
			return err
		}
	}

	if export.IncludeFoodTriggers {
		if err := csvWriter.Write(exportFoodTriggerCSVHeader); err != nil {
			return err
		}
		for _, entry := range export.FoodTriggers {
			row := []string{
				entry.Date,
				strings.Join(entry.Triggers, ", "),
				strconv.Itoa(entry.Severity),
			}
			if err := csvWriter.Write(row); err != nil {
				return err
			}
		}
		if err := csvWriter.Write([]string{""}); err != nil {
			return err
		}
	}

	csvWriter.Flush()
	return csvWriter.Error()
}

func csvSleepHours(value *float64, included bool) string {
	if !included || value == nil || *value == 0 {
		return ""
	}
	return strconv.FormatFloat(*value, 'f', -1, 64)
}

func csvOptionalInt(value *int, included bool) string {
	if !included || value == nil || *value == 0 {
		return ""
	}
	return strconv.Itoa(*value)
}

// ExportFileName names the CSV attachment after the requested range.
func ExportFileName(dateRange string) string {
	return fmt.Sprintf("health-data-%s.csv", dateRange)
}
