package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/terraincognita07/zivora/internal/models"
)

var (
	ErrMedicationNotFound     = errors.New("medication not found")
	ErrMedicationTypeRequired = errors.New("medication type is required")
)

type MedicationRepository interface {
	ListByUser(userID uint) ([]models.Medication, error)
	FindByIDForUser(id uint, userID uint) (models.Medication, bool, error)
	Create(medication *models.Medication) error
	Save(medication *models.Medication) error
	DeleteByIDForUser(id uint, userID uint) (bool, error)
}

type MedicationService struct {
	medications MedicationRepository
}

// MedicationInput follows the same partial update rules as TrackingItemInput.
// An empty dosage clears it.
type MedicationInput struct {
	Name     *string `json:"name"`
	Dosage   *string `json:"dosage"`
	Type     *string `json:"type"`
	IsActive *bool   `json:"isActive"`
}

func NewMedicationService(medications MedicationRepository) *MedicationService {
	return &MedicationService{medications: medications}
}

func (service *MedicationService) List(userID uint) ([]models.Medication, error) {
	medications, err := service.medications.ListByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("load medications: %w", err)
	}
	return medications, nil
}

func (service *MedicationService) Create(userID uint, input MedicationInput) (models.Medication, error) {
	if input.Name == nil {
		return models.Medication{}, ErrTrackingNameRequired
	}
	if input.Type == nil {
		return models.Medication{}, ErrMedicationTypeRequired
	}

	medication := models.Medication{UserID: userID, IsActive: true}
	if err := applyMedicationInput(&medication, input); err != nil {
		return models.Medication{}, err
	}
	if err := service.medications.Create(&medication); err != nil {
		return models.Medication{}, fmt.Errorf("create medication: %w", err)
	}
	return medication, nil
}

func (service *MedicationService) Update(userID uint, id uint, input MedicationInput) (models.Medication, error) {
	medication, found, err := service.medications.FindByIDForUser(id, userID)
	if err != nil {
		return models.Medication{}, fmt.Errorf("load medication: %w", err)
	}
	if !found {
		return models.Medication{}, ErrMedicationNotFound
	}

	if err := applyMedicationInput(&medication, input); err != nil {
		return models.Medication{}, err
	}
	if err := service.medications.Save(&medication); err != nil {
		return models.Medication{}, fmt.Errorf("update medication: %w", err)
	}
	return medication, nil
}

func (service *MedicationService) Delete(userID uint, id uint) error {
	deleted, err := service.medications.DeleteByIDForUser(id, userID)
	if err != nil {
		return fmt.Errorf("delete medication: %w", err)
	}
	if !deleted {
		return ErrMedicationNotFound
	}
	return nil
}

func applyMedicationInput(medication *models.Medication, input MedicationInput) error {
	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return ErrTrackingNameRequired
		}
		medication.Name = name
	}
	if input.Type != nil {
		medicationType := strings.TrimSpace(*input.Type)
		if medicationType == "" {
			return ErrMedicationTypeRequired
		}
		medication.Type = medicationType
	}
	if input.Dosage != nil {
		dosage := strings.TrimSpace(*input.Dosage)
		medication.Dosage = nil
		if dosage != "" {
			medication.Dosage = &dosage
		}
	}
	if input.IsActive != nil {
		medication.IsActive = *input.IsActive
	}
	return nil
}
