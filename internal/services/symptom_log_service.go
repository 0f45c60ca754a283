package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/terraincognita07/zivora/internal/models"
)

const (
	MinSymptomIntensity = 1
	MaxSymptomIntensity = 10
)

var (
	ErrSymptomLogSymptomsRequired = errors.New("at least one symptom is required")
	ErrInvalidSymptomIntensity    = errors.New("invalid symptom intensity")
)

type SymptomLogRepository interface {
	ListByUser(userID uint) ([]models.SymptomLog, error)
	Create(entry *models.SymptomLog) error
}

type SymptomLogService struct {
	logs SymptomLogRepository
}

type SymptomLogInput struct {
	Symptoms   []string   `json:"symptoms"`
	Intensity  *int       `json:"intensity"`
	OccurredAt *time.Time `json:"occurredAt"`
	Triggers   []string   `json:"triggers"`
}

func NewSymptomLogService(logs SymptomLogRepository) *SymptomLogService {
	return &SymptomLogService{logs: logs}
}

// Record stores a symptom entry. A missing occurrence time means now and
// blank symptom names are dropped before the emptiness check.
func (service *SymptomLogService) Record(userID uint, input SymptomLogInput, now time.Time) (models.SymptomLog, error) {
	symptoms := compactNames(input.Symptoms)
	if len(symptoms) == 0 {
		return models.SymptomLog{}, ErrSymptomLogSymptomsRequired
	}
	if input.Intensity == nil || *input.Intensity < MinSymptomIntensity || *input.Intensity > MaxSymptomIntensity {
		return models.SymptomLog{}, ErrInvalidSymptomIntensity
	}

	occurredAt := now
	if input.OccurredAt != nil && !input.OccurredAt.IsZero() {
		occurredAt = *input.OccurredAt
	}

	entry := models.SymptomLog{
		UserID:     userID,
		Symptoms:   symptoms,
		Intensity:  *input.Intensity,
		OccurredAt: occurredAt.UTC(),
		Triggers:   compactNames(input.Triggers),
	}
	if err := service.logs.Create(&entry); err != nil {
		return models.SymptomLog{}, fmt.Errorf("create symptom log: %w", err)
	}
	return entry, nil
}

func (service *SymptomLogService) List(userID uint) ([]models.SymptomLog, error) {
	logs, err := service.logs.ListByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("load symptom logs: %w", err)
	}
	return logs, nil
}

func compactNames(values []string) []string {
	result := make([]string, 0, len(values))
	for _, value := range values {
		trimmed := strings.TrimSpace(value)
		if trimmed == "" {
			continue
		}
		result = append(result, trimmed)
	}
	return result
}
