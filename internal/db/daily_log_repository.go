package db

import (
	"github.com/terraincognita07/zivora/internal/models"
	"gorm.io/gorm"
)

type DailyLogRepository struct {
	database *gorm.DB
}

func NewDailyLogRepository(database *gorm.DB) *DailyLogRepository {
	return &DailyLogRepository{database: database}
}

// ListByUser compares dates as stored text, so bounds must use the
// YYYY-MM-DD layout.
func (repo *DailyLogRepository) ListByUser(userID uint, dateRange *models.DateRange) ([]models.DailyLog, error) {
	query := repo.database.Model(&models.DailyLog{}).Where("user_id = ?", userID)
	if dateRange != nil {
		query = query.Where("date >= ? AND date <= ?", dateRange.Start, dateRange.End)
	}

	logs := make([]models.DailyLog, 0)
	if err := query.Order("date ASC, id ASC").Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

func (repo *DailyLogRepository) CountByUser(userID uint) (int64, error) {
	var count int64
	if err := repo.database.Model(&models.DailyLog{}).Where("user_id = ?", userID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (repo *DailyLogRepository) FindByUserAndDate(userID uint, date string) (models.DailyLog, bool, error) {
	entry := models.DailyLog{}
	result := repo.database.
		Where("user_id = ? AND date = ?", userID, date).
		Order("id DESC").
		Limit(1).
		Find(&entry)
	if result.Error != nil {
		return models.DailyLog{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.DailyLog{}, false, nil
	}
	return entry, true, nil
}

func (repo *DailyLogRepository) FindByIDForUser(id uint, userID uint) (models.DailyLog, bool, error) {
	entry := models.DailyLog{}
	result := repo.database.Where("id = ? AND user_id = ?", id, userID).Limit(1).Find(&entry)
	if result.Error != nil {
		return models.DailyLog{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.DailyLog{}, false, nil
	}
	return entry, true, nil
}

func (repo *DailyLogRepository) Create(entry *models.DailyLog) error {
	return repo.database.Create(entry).Error
}

func (repo *DailyLogRepository) Save(entry *models.DailyLog) error {
	return repo.database.Save(entry).Error
}
