package db

import (
	"github.com/terraincognita07/zivora/internal/models"
	"gorm.io/gorm"
)

type SymptomRepository struct {
	database *gorm.DB
}

func NewSymptomRepository(database *gorm.DB) *SymptomRepository {
	return &SymptomRepository{database: database}
}

func (repo *SymptomRepository) ListByUser(userID uint) ([]models.Symptom, error) {
	symptoms := make([]models.Symptom, 0)
	if err := repo.database.Where("user_id = ?", userID).Order("id ASC").Find(&symptoms).Error; err != nil {
		return nil, err
	}
	return symptoms, nil
}

func (repo *SymptomRepository) FindByIDForUser(id uint, userID uint) (models.Symptom, bool, error) {
	symptom := models.Symptom{}
	result := repo.database.Where("id = ? AND user_id = ?", id, userID).Limit(1).Find(&symptom)
	if result.Error != nil {
		return models.Symptom{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.Symptom{}, false, nil
	}
	return symptom, true, nil
}

func (repo *SymptomRepository) Create(symptom *models.Symptom) error {
	return repo.database.Create(symptom).Error
}

func (repo *SymptomRepository) Save(symptom *models.Symptom) error {
	return repo.database.Save(symptom).Error
}

func (repo *SymptomRepository) DeleteByIDForUser(id uint, userID uint) (bool, error) {
	result := repo.database.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Symptom{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
