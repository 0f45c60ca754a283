package models

import "time"

const DailyLogDateLayout = "2006-01-02"

// DailyLog stores one logical entry per user and calendar date. Sub-documents
// are kept as the JSON text the client produced; SleepHours holds minutes.
type DailyLog struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	UserID       uint      `gorm:"not null;uniqueIndex:uidx_daily_logs_user_date" json:"userId"`
	Date         string    `gorm:"not null;uniqueIndex:uidx_daily_logs_user_date" json:"date"`
	FoodData     *string   `json:"foodData"`
	HeadacheData *string   `json:"headacheData"`
	TriggerData  *string   `json:"triggerData"`
	WeatherData  *string   `json:"weatherData"`
	MoodScore    *int      `json:"moodScore"`
	SleepHours   *int      `json:"sleepHours"`
	StressLevel  *int      `json:"stressLevel"`
	Notes        *string   `json:"notes"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Day parses Date as UTC midnight. Unparseable dates report false.
func (entry DailyLog) Day() (time.Time, bool) {
	day, err := time.Parse(DailyLogDateLayout, entry.Date)
	if err != nil {
		return time.Time{}, false
	}
	return day, true
}

func (entry DailyLog) SleepMinutes() int {
	if entry.SleepHours == nil {
		return 0
	}
	return *entry.SleepHours
}

func (entry DailyLog) Stress() int {
	if entry.StressLevel == nil {
		return 0
	}
	return *entry.StressLevel
}

// DateRange bounds daily logs by their stored date text, inclusive on both ends.
type DateRange struct {
	Start string
	End   string
}
