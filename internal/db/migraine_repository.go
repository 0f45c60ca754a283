package db

import (
	"github.com/terraincognita07/zivora/internal/models"
	"gorm.io/gorm"
)

type MigraineRepository struct {
	database *gorm.DB
}

func NewMigraineRepository(database *gorm.DB) *MigraineRepository {
	return &MigraineRepository{database: database}
}

func (repo *MigraineRepository) ListByUser(userID uint) ([]models.Migraine, error) {
	migraines := make([]models.Migraine, 0)
	if err := repo.database.Where("user_id = ?", userID).Order("id ASC").Find(&migraines).Error; err != nil {
		return nil, err
	}
	return migraines, nil
}

func (repo *MigraineRepository) FindByIDForUser(id uint, userID uint) (models.Migraine, bool, error) {
	migraine := models.Migraine{}
	result := repo.database.Where("id = ? AND user_id = ?", id, userID).Limit(1).Find(&migraine)
	if result.Error != nil {
		return models.Migraine{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.Migraine{}, false, nil
	}
	return migraine, true, nil
}

func (repo *MigraineRepository) Create(migraine *models.Migraine) error {
	return repo.database.Create(migraine).Error
}

func (repo *MigraineRepository) Save(migraine *models.Migraine) error {
	return repo.database.Save(migraine).Error
}

func (repo *MigraineRepository) DeleteByIDForUser(id uint, userID uint) (bool, error) {
	result := repo.database.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Migraine{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
