package services

import (
	"fmt"

	"github.com/terraincognita07/zivora/internal/models"
)

type HistoryMigraineReader interface {
	ListByUser(userID uint) ([]models.Migraine, error)
}

type HistoryService struct {
	migraines HistoryMigraineReader
}

func NewHistoryService(migraines HistoryMigraineReader) *HistoryService {
	return &HistoryService{migraines: migraines}
}

func (service *HistoryService) List(userID uint, window PeriodWindow, severity string) ([]HistoryEntry, error) {
	migraines, err := service.migraines.ListByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("load migraines: %w", err)
	}
	return BuildHistory(migraines, window, severity), nil
}
