package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/terraincognita07/zivora/internal/models"
)

var (
	ErrTriggerNotFound      = errors.New("trigger not found")
	ErrSymptomNotFound      = errors.New("symptom not found")
	ErrTrackingNameRequired = errors.New("name is required")
	ErrCategoryRequired     = errors.New("category is required")
)

// TrackingItemInput is shared by triggers and symptoms. Nil fields are left
// untouched on update; new items are active unless stated otherwise.
type TrackingItemInput struct {
	Name     *string `json:"name"`
	Category *string `json:"category"`
	IsActive *bool   `json:"isActive"`
}

type TriggerRepository interface {
	ListByUser(userID uint) ([]models.Trigger, error)
	FindByIDForUser(id uint, userID uint) (models.Trigger, bool, error)
	Create(trigger *models.Trigger) error
	Save(trigger *models.Trigger) error
	DeleteByIDForUser(id uint, userID uint) (bool, error)
}

type SymptomRepository interface {
	ListByUser(userID uint) ([]models.Symptom, error)
	FindByIDForUser(id uint, userID uint) (models.Symptom, bool, error)
	Create(symptom *models.Symptom) error
	Save(symptom *models.Symptom) error
	DeleteByIDForUser(id uint, userID uint) (bool, error)
}

type TriggerService struct {
	triggers TriggerRepository
}

type SymptomService struct {
	symptoms SymptomRepository
}

func NewTriggerService(triggers TriggerRepository) *TriggerService {
	return &TriggerService{triggers: triggers}
}

func NewSymptomService(symptoms SymptomRepository) *SymptomService {
	return &SymptomService{symptoms: symptoms}
}

func (service *TriggerService) List(userID uint) ([]models.Trigger, error) {
	triggers, err := service.triggers.ListByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("load triggers: %w", err)
	}
	return triggers, nil
}

func (service *TriggerService) Create(userID uint, input TrackingItemInput) (models.Trigger, error) {
	if err := requireTrackingItemFields(input); err != nil {
		return models.Trigger{}, err
	}

	trigger := models.Trigger{UserID: userID, IsActive: true}
	if err := applyTrackingItemInput(&trigger.Name, &trigger.Category, &trigger.IsActive, input); err != nil {
		return models.Trigger{}, err
	}
	if err := service.triggers.Create(&trigger); err != nil {
		return models.Trigger{}, fmt.Errorf("create trigger: %w", err)
	}
	return trigger, nil
}

func (service *TriggerService) Update(userID uint, id uint, input TrackingItemInput) (models.Trigger, error) {
	trigger, found, err := service.triggers.FindByIDForUser(id, userID)
	if err != nil {
		return models.Trigger{}, fmt.Errorf("load trigger: %w", err)
	}
	if !found {
		return models.Trigger{}, ErrTriggerNotFound
	}

	if err := applyTrackingItemInput(&trigger.Name, &trigger.Category, &trigger.IsActive, input); err != nil {
		return models.Trigger{}, err
	}
	if err := service.triggers.Save(&trigger); err != nil {
		return models.Trigger{}, fmt.Errorf("update trigger: %w", err)
	}
	return trigger, nil
}

func (service *TriggerService) Delete(userID uint, id uint) error {
	deleted, err := service.triggers.DeleteByIDForUser(id, userID)
	if err != nil {
		return fmt.Errorf("delete trigger: %w", err)
	}
	if !deleted {
		return ErrTriggerNotFound
	}
	return nil
}

func (service *SymptomService) List(userID uint) ([]models.Symptom, error) {
	symptoms, err := service.symptoms.ListByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("load symptoms: %w", err)
	}
	return symptoms, nil
}

func (service *SymptomService) Create(userID uint, input TrackingItemInput) (models.Symptom, error) {
	if err := requireTrackingItemFields(input); err != nil {
		return models.Symptom{}, err
	}

	symptom := models.Symptom{UserID: userID, IsActive: true}
	if err := applyTrackingItemInput(&symptom.Name, &symptom.Category, &symptom.IsActive, input); err != nil {
		return models.Symptom{}, err
	}
	if err := service.symptoms.Create(&symptom); err != nil {
		return models.Symptom{}, fmt.Errorf("create symptom: %w", err)
	}
	return symptom, nil
}

func (service *SymptomService) Update(userID uint, id uint, input TrackingItemInput) (models.Symptom, error) {
	symptom, found, err := service.symptoms.FindByIDForUser(id, userID)
	if err != nil {
		return models.Symptom{}, fmt.Errorf("load symptom: %w", err)
	}
	if !found {
		return models.Symptom{}, ErrSymptomNotFound
	}

	if err := applyTrackingItemInput(&symptom.Name, &symptom.Category, &symptom.IsActive, input); err != nil {
		return models.Symptom{}, err
	}
	if err := service.symptoms.Save(&symptom); err != nil {
		return models.Symptom{}, fmt.Errorf("update symptom: %w", err)
	}
	return symptom, nil
}

func (service *SymptomService) Delete(userID uint, id uint) error {
	deleted, err := service.symptoms.DeleteByIDForUser(id, userID)
	if err != nil {
		return fmt.Errorf("delete symptom: %w", err)
	}
	if !deleted {
		return ErrSymptomNotFound
	}
	return nil
}

func requireTrackingItemFields(input TrackingItemInput) error {
	if input.Name == nil {
		return ErrTrackingNameRequired
	}
	if input.Category == nil {
		return ErrCategoryRequired
	}
	return nil
}

func applyTrackingItemInput(name *string, category *string, isActive *bool, input TrackingItemInput) error {
	if input.Name != nil {
		trimmed := strings.TrimSpace(*input.Name)
		if trimmed == "" {
			return ErrTrackingNameRequired
		}
		*name = trimmed
	}
	if input.Category != nil {
		trimmed := strings.TrimSpace(*input.Category)
		if trimmed == "" {
			return ErrCategoryRequired
		}
		*category = trimmed
	}
	if input.IsActive != nil {
		*isActive = *input.IsActive
	}
	return nil
}
