package models

import "time"

// Trigger and Symptom are the per-user lists offered when logging an episode.
type Trigger struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"userId"`
	Name      string    `gorm:"not null" json:"name"`
	Category  string    `gorm:"not null" json:"category"`
	IsActive  bool      `gorm:"not null" json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
}

type Symptom struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"userId"`
	Name      string    `gorm:"not null" json:"name"`
	Category  string    `gorm:"not null" json:"category"`
	IsActive  bool      `gorm:"not null" json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
}

// Medication types are free text; clients send preventive, abortive or rescue.
type Medication struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"userId"`
	Name      string    `gorm:"not null" json:"name"`
	Dosage    *string   `json:"dosage"`
	Type      string    `gorm:"not null" json:"type"`
	IsActive  bool      `gorm:"not null" json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
}

type SymptomLog struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     uint      `gorm:"not null;index" json:"userId"`
	Symptoms   []string  `gorm:"serializer:json;not null" json:"symptoms"`
	Intensity  int       `gorm:"not null" json:"intensity"`
	OccurredAt time.Time `gorm:"not null" json:"occurredAt"`
	Triggers   []string  `gorm:"serializer:json" json:"triggers"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}
