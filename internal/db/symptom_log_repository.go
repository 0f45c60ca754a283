package db

import (
	"github.com/terraincognita07/zivora/internal/models"
	"gorm.io/gorm"
)

type SymptomLogRepository struct {
	database *gorm.DB
}

func NewSymptomLogRepository(database *gorm.DB) *SymptomLogRepository {
	return &SymptomLogRepository{database: database}
}

// ListByUser returns the newest entries first.
func (repo *SymptomLogRepository) ListByUser(userID uint) ([]models.SymptomLog, error) {
	logs := make([]models.SymptomLog, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("occurred_at DESC").
		Order("id DESC").
		Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

func (repo *SymptomLogRepository) Create(entry *models.SymptomLog) error {
	return repo.database.Create(entry).Error
}
