package db

import (
	"github.com/terraincognita07/zivora/internal/models"
	"gorm.io/gorm"
)

type TriggerRepository struct {
	database *gorm.DB
}

func NewTriggerRepository(database *gorm.DB) *TriggerRepository {
	return &TriggerRepository{database: database}
}

func (repo *TriggerRepository) ListByUser(userID uint) ([]models.Trigger, error) {
	triggers := make([]models.Trigger, 0)
	if err := repo.database.Where("user_id = ?", userID).Order("id ASC").Find(&triggers).Error; err != nil {
		return nil, err
	}
	return triggers, nil
}

func (repo *TriggerRepository) FindByIDForUser(id uint, userID uint) (models.Trigger, bool, error) {
	trigger := models.Trigger{}
	result := repo.database.Where("id = ? AND user_id = ?", id, userID).Limit(1).Find(&trigger)
	if result.Error != nil {
		return models.Trigger{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.Trigger{}, false, nil
	}
	return trigger, true, nil
}

func (repo *TriggerRepository) Create(trigger *models.Trigger) error {
	return repo.database.Create(trigger).Error
}

func (repo *TriggerRepository) Save(trigger *models.Trigger) error {
	return repo.database.Save(trigger).Error
}

func (repo *TriggerRepository) DeleteByIDForUser(id uint, userID uint) (bool, error) {
	result := repo.database.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Trigger{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
