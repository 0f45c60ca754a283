package db

import (
	"github.com/terraincognita07/zivora/internal/models"
	"gorm.io/gorm"
)

type MedicationRepository struct {
	database *gorm.DB
}

func NewMedicationRepository(database *gorm.DB) *MedicationRepository {
	return &MedicationRepository{database: database}
}

func (repo *MedicationRepository) ListByUser(userID uint) ([]models.Medication, error) {
	medications := make([]models.Medication, 0)
	if err := repo.database.Where("user_id = ?", userID).Order("id ASC").Find(&medications).Error; err != nil {
		return nil, err
	}
	return medications, nil
}

func (repo *MedicationRepository) FindByIDForUser(id uint, userID uint) (models.Medication, bool, error) {
	medication := models.Medication{}
	result := repo.database.Where("id = ? AND user_id = ?", id, userID).Limit(1).Find(&medication)
	if result.Error != nil {
		return models.Medication{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.Medication{}, false, nil
	}
	return medication, true, nil
}

func (repo *MedicationRepository) Create(medication *models.Medication) error {
	return repo.database.Create(medication).Error
}

func (repo *MedicationRepository) Save(medication *models.Medication) error {
	return repo.database.Save(medication).Error
}

func (repo *MedicationRepository) DeleteByIDForUser(id uint, userID uint) (bool, error) {
	result := repo.database.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Medication{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
