package models

import "time"

const DefaultEpisodeDurationHours = 2.0

type Migraine struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	UserID      uint       `gorm:"not null;index" json:"userId"`
	StartDate   time.Time  `gorm:"not null" json:"startDate"`
	EndDate     *time.Time `json:"endDate"`
	Severity    int        `gorm:"not null" json:"severity"`
	Triggers    []string   `gorm:"serializer:json" json:"triggers"`
	Symptoms    []string   `gorm:"serializer:json" json:"symptoms"`
	Medications []string   `gorm:"serializer:json" json:"medications"`
	Notes       *string    `json:"notes"`
	Location    *string    `json:"location"`
	Weather     *string    `json:"weather"`
	Mood        *string    `json:"mood"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// DurationHours is end minus start in hours, or the default episode length
// when the episode has no end.
func (migraine Migraine) DurationHours() float64 {
	if migraine.EndDate == nil {
		return DefaultEpisodeDurationHours
	}
	return migraine.EndDate.Sub(migraine.StartDate).Hours()
}

func StringValue(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}
