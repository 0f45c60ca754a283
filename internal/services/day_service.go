package services

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/terraincognita07/zivora/internal/models"
)

var (
	ErrDailyLogNotFound    = errors.New("daily log not found")
	ErrInvalidDailyLogDate = errors.New("invalid daily log date")
	ErrDailyLogDateTaken   = errors.New("daily log already exists for date")
)

const (
	sleepQualityPoor      = "Poor"
	sleepQualityAverage   = "Average"
	sleepQualityGood      = "Good"
	sleepQualityExcellent = "Excellent"

	stressLevelLow      = "Low"
	stressLevelModerate = "Moderate"
	stressLevelHigh     = "High"

	unrecordedWeatherData = `{"recorded":false}`
)

type DayLogRepository interface {
	ListByUser(userID uint, dateRange *models.DateRange) ([]models.DailyLog, error)
	FindByUserAndDate(userID uint, date string) (models.DailyLog, bool, error)
	FindByIDForUser(id uint, userID uint) (models.DailyLog, bool, error)
	Create(entry *models.DailyLog) error
	Save(entry *models.DailyLog) error
}

type DayService struct {
	logs DayLogRepository
}

// DailyLogForm is the shape the tracking screen submits. Free-form values are
// kept raw so they are stored exactly as sent.
type DailyLogForm struct {
	Date             string          `json:"date"`
	MealImage        json.RawMessage `json:"mealImage"`
	Barcode          json.RawMessage `json:"barcode"`
	ManualFoodEntry  json.RawMessage `json:"manualFoodEntry"`
	Hydration        json.RawMessage `json:"hydration"`
	Activity         json.RawMessage `json:"activity"`
	HeadacheSeverity json.RawMessage `json:"headacheSeverity"`
	HeadacheDuration json.RawMessage `json:"headacheDuration"`
	CustomTriggers   json.RawMessage `json:"customTriggers"`
	SleepQuality     string          `json:"sleepQuality"`
	StressLevel      string          `json:"stressLevel"`
	Notes            *string         `json:"notes"`
}

type DailyLogFormView struct {
	Date             string          `json:"date"`
	MealImage        json.RawMessage `json:"mealImage,omitempty"`
	Barcode          json.RawMessage `json:"barcode,omitempty"`
	ManualFoodEntry  json.RawMessage `json:"manualFoodEntry,omitempty"`
	HeadacheSeverity json.RawMessage `json:"headacheSeverity,omitempty"`
	HeadacheDuration json.RawMessage `json:"headacheDuration"`
	SleepQuality     string          `json:"sleepQuality"`
	StressLevel      string          `json:"stressLevel"`
	Hydration        json.RawMessage `json:"hydration"`
	Activity         json.RawMessage `json:"activity"`
	CustomTriggers   json.RawMessage `json:"customTriggers"`
	Notes            *string         `json:"notes"`
}

// DailyLogUpdate carries a partial update. Sub-documents may be sent either
// as JSON text or as JSON values.
type DailyLogUpdate struct {
	Date         *string         `json:"date"`
	FoodData     json.RawMessage `json:"foodData"`
	HeadacheData json.RawMessage `json:"headacheData"`
	TriggerData  json.RawMessage `json:"triggerData"`
	WeatherData  json.RawMessage `json:"weatherData"`
	MoodScore    *int            `json:"moodScore"`
	SleepHours   *int            `json:"sleepHours"`
	StressLevel  *int            `json:"stressLevel"`
	Notes        *string         `json:"notes"`
}

type foodDocument struct {
	MealImage       json.RawMessage `json:"mealImage,omitempty"`
	Barcode         json.RawMessage `json:"barcode,omitempty"`
	ManualFoodEntry json.RawMessage `json:"manualFoodEntry,omitempty"`
	Hydration       json.RawMessage `json:"hydration,omitempty"`
	Activity        json.RawMessage `json:"activity,omitempty"`
}

type headacheDocument struct {
	Severity json.RawMessage `json:"severity,omitempty"`
	Duration json.RawMessage `json:"duration,omitempty"`
}

func NewDayService(logs DayLogRepository) *DayService {
	return &DayService{logs: logs}
}

// SaveForm upserts the log for the form date, or for today in UTC when the
// form has no date.
func (service *DayService) SaveForm(userID uint, form DailyLogForm, now time.Time) (models.DailyLog, error) {
	date := strings.TrimSpace(form.Date)
	if date == "" {
		date = now.UTC().Format(models.DailyLogDateLayout)
	}
	if !IsDailyLogDate(date) {
		return models.DailyLog{}, ErrInvalidDailyLogDate
	}

	entry, found, err := service.logs.FindByUserAndDate(userID, date)
	if err != nil {
		return models.DailyLog{}, fmt.Errorf("load daily log: %w", err)
	}

	if err := applyDailyLogForm(&entry, form); err != nil {
		return models.DailyLog{}, err
	}
	entry.UserID = userID
	entry.Date = date

	if found {
		if err := service.logs.Save(&entry); err != nil {
			return models.DailyLog{}, fmt.Errorf("update daily log: %w", err)
		}
		return entry, nil
	}
	if err := service.logs.Create(&entry); err != nil {
		return models.DailyLog{}, fmt.Errorf("create daily log: %w", err)
	}
	return entry, nil
}

func applyDailyLogForm(entry *models.DailyLog, form DailyLogForm) error {
	foodData, err := encodeDocument(foodDocument{
		MealImage:       form.MealImage,
		Barcode:         form.Barcode,
		ManualFoodEntry: form.ManualFoodEntry,
		Hydration:       form.Hydration,
		Activity:        form.Activity,
	})
	if err != nil {
		return fmt.Errorf("encode food data: %w", err)
	}
	headacheData, err := encodeDocument(headacheDocument{
		Severity: form.HeadacheSeverity,
		Duration: form.HeadacheDuration,
	})
	if err != nil {
		return fmt.Errorf("encode headache data: %w", err)
	}

	weatherData := unrecordedWeatherData
	sleepMinutes := sleepMinutesForQuality(form.SleepQuality)
	stressLevel := stressLevelForLabel(form.StressLevel)
	moodScore := moodScoreForSleepQuality(form.SleepQuality)

	entry.FoodData = &foodData
	entry.HeadacheData = &headacheData
	entry.TriggerData = compactDocument(form.CustomTriggers)
	entry.WeatherData = &weatherData
	entry.SleepHours = &sleepMinutes
	entry.StressLevel = &stressLevel
	entry.MoodScore = &moodScore
	entry.Notes = form.Notes
	return nil
}

func sleepMinutesForQuality(quality string) int {
	switch quality {
	case sleepQualityPoor:
		return 240
	case sleepQualityAverage:
		return 360
	case sleepQualityGood:
		return 420
	default:
		return 480
	}
}

func sleepQualityForMinutes(minutes *int) string {
	if minutes == nil {
		return sleepQualityExcellent
	}
	switch *minutes {
	case 240:
		return sleepQualityPoor
	case 360:
		return sleepQualityAverage
	case 420:
		return sleepQualityGood
	default:
		return sleepQualityExcellent
	}
}

func stressLevelForLabel(label string) int {
	switch label {
	case stressLevelLow:
		return 3
	case stressLevelModerate:
		return 6
	default:
		return 9
	}
}

// StressLabel buckets a 1-10 stress level for display.
func StressLabel(level float64) string {
	switch {
	case level <= 3:
		return stressLevelLow
	case level <= 6:
		return stressLevelModerate
	default:
		return stressLevelHigh
	}
}

func moodScoreForSleepQuality(quality string) int {
	switch quality {
	case sleepQualityExcellent:
		return 8
	case sleepQualityGood:
		return 7
	default:
		return 5
	}
}

// FormForDate maps a stored log back to the tracking form. Missing or
// unreadable sub-documents fall back to the form defaults.
func (service *DayService) FormForDate(userID uint, date string) (DailyLogFormView, bool, error) {
	entry, found, err := service.logs.FindByUserAndDate(userID, strings.TrimSpace(date))
	if err != nil {
		return DailyLogFormView{}, false, fmt.Errorf("load daily log: %w", err)
	}
	if !found {
		return DailyLogFormView{}, false, nil
	}
	return buildDailyLogFormView(entry), true, nil
}

func buildDailyLogFormView(entry models.DailyLog) DailyLogFormView {
	food, _ := models.DocumentFields(entry.FoodData)
	headache, _ := models.DocumentFields(entry.HeadacheData)

	view := DailyLogFormView{
		Date:             entry.Date,
		MealImage:        firstTruthy(food["mealImage"], food["image"]),
		Barcode:          food["barcode"],
		ManualFoodEntry:  firstTruthy(food["manualFoodEntry"], food["manual"]),
		HeadacheSeverity: headache["severity"],
		HeadacheDuration: truthyOr(headache["duration"], `{"hours":0,"minutes":0}`),
		SleepQuality:     sleepQualityForMinutes(entry.SleepHours),
		StressLevel:      StressLabel(float64(entry.Stress())),
		Hydration:        truthyOr(food["hydration"], `1`),
		Activity:         truthyOr(food["activity"], `""`),
		CustomTriggers:   json.RawMessage(`{}`),
		Notes:            entry.Notes,
	}
	if triggers := compactDocument(textAsRaw(entry.TriggerData)); triggers != nil {
		view.CustomTriggers = json.RawMessage(*triggers)
	}
	return view
}

func firstTruthy(primary json.RawMessage, fallback json.RawMessage) json.RawMessage {
	if models.IsTruthyJSON(primary) {
		return primary
	}
	return fallback
}

func truthyOr(value json.RawMessage, fallback string) json.RawMessage {
	if models.IsTruthyJSON(value) {
		return value
	}
	return json.RawMessage(fallback)
}

func (service *DayService) List(userID uint, dateRange *models.DateRange) ([]models.DailyLog, error) {
	logs, err := service.logs.ListByUser(userID, dateRange)
	if err != nil {
		return nil, fmt.Errorf("load daily logs: %w", err)
	}
	return logs, nil
}

func (service *DayService) Update(userID uint, id uint, update DailyLogUpdate) (models.DailyLog, error) {
	entry, found, err := service.logs.FindByIDForUser(id, userID)
	if err != nil {
		return models.DailyLog{}, fmt.Errorf("load daily log: %w", err)
	}
	if !found {
		return models.DailyLog{}, ErrDailyLogNotFound
	}

	if update.Date != nil {
		date := strings.TrimSpace(*update.Date)
		if !IsDailyLogDate(date) {
			return models.DailyLog{}, ErrInvalidDailyLogDate
		}
		if date != entry.Date {
			existing, taken, err := service.logs.FindByUserAndDate(userID, date)
			if err != nil {
				return models.DailyLog{}, fmt.Errorf("load daily log: %w", err)
			}
			if taken && existing.ID != entry.ID {
				return models.DailyLog{}, ErrDailyLogDateTaken
			}
		}
		entry.Date = date
	}
	if update.FoodData != nil {
		entry.FoodData = documentText(update.FoodData)
	}
	if update.HeadacheData != nil {
		entry.HeadacheData = documentText(update.HeadacheData)
	}
	if update.TriggerData != nil {
		entry.TriggerData = documentText(update.TriggerData)
	}
	if update.WeatherData != nil {
		entry.WeatherData = documentText(update.WeatherData)
	}
	if update.MoodScore != nil {
		entry.MoodScore = update.MoodScore
	}
	if update.SleepHours != nil {
		entry.SleepHours = update.SleepHours
	}
	if update.StressLevel != nil {
		entry.StressLevel = update.StressLevel
	}
	if update.Notes != nil {
		entry.Notes = update.Notes
	}

	if err := service.logs.Save(&entry); err != nil {
		return models.DailyLog{}, fmt.Errorf("update daily log: %w", err)
	}
	return entry, nil
}

// IsDailyLogDate reports whether value is a YYYY-MM-DD calendar date.
func IsDailyLogDate(value string) bool {
	_, err := time.Parse(models.DailyLogDateLayout, value)
	return err == nil
}

func encodeDocument(document any) (string, error) {
	encoded, err := json.Marshal(document)
	if err != nil {
		return "", err
	}
	return string(encoded), nil
}

// compactDocument returns nil for absent values and for text that is not JSON.
func compactDocument(raw json.RawMessage) *string {
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	var buffer bytes.Buffer
	if err := json.Compact(&buffer, raw); err != nil {
		return nil
	}
	text := buffer.String()
	return &text
}

// documentText stores a JSON string value as its text and any other JSON
// value in compact form. JSON null clears the column.
func documentText(raw json.RawMessage) *string {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil
	}
	var text string
	if err := json.Unmarshal(trimmed, &text); err == nil {
		return &text
	}
	return compactDocument(trimmed)
}

func textAsRaw(value *string) json.RawMessage {
	if value == nil {
		return nil
	}
	return json.RawMessage(*value)
}
