package services

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/terraincognita07/zivora/internal/models"
)

const (
	MinMigraineSeverity = 1
	MaxMigraineSeverity = 10
)

var (
	ErrMigraineNotFound          = errors.New("migraine not found")
	ErrInvalidMigraineSeverity   = errors.New("invalid migraine severity")
	ErrMigraineStartDateRequired = errors.New("migraine start date is required")
	ErrInvalidMigraineEndDate    = errors.New("migraine end date is before start date")
)

type MigraineRepository interface {
	ListByUser(userID uint) ([]models.Migraine, error)
	FindByIDForUser(id uint, userID uint) (models.Migraine, bool, error)
	Create(migraine *models.Migraine) error
	Save(migraine *models.Migraine) error
	DeleteByIDForUser(id uint, userID uint) (bool, error)
}

type MigraineService struct {
	migraines MigraineRepository
}

// MigraineInput is used for both create and partial update. Nil fields are
// left untouched on update. EndDate tracks presence so an explicit null
// reopens the episode.
type MigraineInput struct {
	StartDate   *time.Time   `json:"startDate"`
	EndDate     OptionalTime `json:"endDate"`
	Severity    *int       `json:"severity"`
	Triggers    []string   `json:"triggers"`
	Symptoms    []string   `json:"symptoms"`
	Medications []string   `json:"medications"`
	Notes       *string    `json:"notes"`
	Location    *string    `json:"location"`
	Weather     *string    `json:"weather"`
	Mood        *string    `json:"mood"`
}

// OptionalTime distinguishes an absent field from an explicit null.
type OptionalTime struct {
	Set   bool
	Value *time.Time
}

func SetTime(value time.Time) OptionalTime {
	return OptionalTime{Set: true, Value: &value}
}

func (optional *OptionalTime) UnmarshalJSON(raw []byte) error {
	optional.Set = true
	if bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		optional.Value = nil
		return nil
	}
	value := time.Time{}
	if err := json.Unmarshal(raw, &value); err != nil {
		return err
	}
	optional.Value = &value
	return nil
}

func NewMigraineService(migraines MigraineRepository) *MigraineService {
	return &MigraineService{migraines: migraines}
}

func (service *MigraineService) List(userID uint) ([]models.Migraine, error) {
	migraines, err := service.migraines.ListByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("load migraines: %w", err)
	}
	return migraines, nil
}

func (service *MigraineService) Get(userID uint, id uint) (models.Migraine, error) {
	migraine, found, err := service.migraines.FindByIDForUser(id, userID)
	if err != nil {
		return models.Migraine{}, fmt.Errorf("load migraine: %w", err)
	}
	if !found {
		return models.Migraine{}, ErrMigraineNotFound
	}
	return migraine, nil
}

func (service *MigraineService) Create(userID uint, input MigraineInput) (models.Migraine, error) {
	if input.StartDate == nil || input.StartDate.IsZero() {
		return models.Migraine{}, ErrMigraineStartDateRequired
	}
	if input.Severity == nil {
		return models.Migraine{}, ErrInvalidMigraineSeverity
	}

	migraine := models.Migraine{UserID: userID}
	if err := applyMigraineInput(&migraine, input); err != nil {
		return models.Migraine{}, err
	}
	if err := service.migraines.Create(&migraine); err != nil {
		return models.Migraine{}, fmt.Errorf("create migraine: %w", err)
	}
	return migraine, nil
}

func (service *MigraineService) Update(userID uint, id uint, input MigraineInput) (models.Migraine, error) {
	migraine, err := service.Get(userID, id)
	if err != nil {
		return models.Migraine{}, err
	}
	if err := applyMigraineInput(&migraine, input); err != nil {
		return models.Migraine{}, err
	}
	if err := service.migraines.Save(&migraine); err != nil {
		return models.Migraine{}, fmt.Errorf("update migraine: %w", err)
	}
	return migraine, nil
}

func (service *MigraineService) Delete(userID uint, id uint) error {
	deleted, err := service.migraines.DeleteByIDForUser(id, userID)
	if err != nil {
		return fmt.Errorf("delete migraine: %w", err)
	}
	if !deleted {
		return ErrMigraineNotFound
	}
	return nil
}

func applyMigraineInput(migraine *models.Migraine, input MigraineInput) error {
	if input.Severity != nil {
		if *input.Severity < MinMigraineSeverity || *input.Severity > MaxMigraineSeverity {
			return ErrInvalidMigraineSeverity
		}
		migraine.Severity = *input.Severity
	}
	if input.StartDate != nil {
		migraine.StartDate = input.StartDate.UTC()
	}
	if input.EndDate.Set {
		migraine.EndDate = nil
		if input.EndDate.Value != nil {
			end := input.EndDate.Value.UTC()
			migraine.EndDate = &end
		}
	}
	if migraine.EndDate != nil && migraine.EndDate.Before(migraine.StartDate) {
		return ErrInvalidMigraineEndDate
	}

	if input.Triggers != nil {
		migraine.Triggers = input.Triggers
	}
	if input.Symptoms != nil {
		migraine.Symptoms = input.Symptoms
	}
	if input.Medications != nil {
		migraine.Medications = input.Medications
	}
	if input.Notes != nil {
		migraine.Notes = input.Notes
	}
	if input.Location != nil {
		migraine.Location = input.Location
	}
	if input.Weather != nil {
		migraine.Weather = input.Weather
	}
	if input.Mood != nil {
		migraine.Mood = input.Mood
	}
	return nil
}
