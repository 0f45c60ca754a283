package services

import (
	"github.com/terraincognita07/zivora/internal/models"
)

type stubDailyLogReader struct {
	logs       []models.DailyLog
	err        error
	countErr   error
	lastRange  *models.DateRange
	rangeCalls int
}

func (stub *stubDailyLogReader) ListByUser(_ uint, dateRange *models.DateRange) ([]models.DailyLog, error) {
	stub.rangeCalls++
	stub.lastRange = dateRange
	if stub.err != nil {
		return nil, stub.err
	}

	result := make([]models.DailyLog, 0, len(stub.logs))
	for _, entry := range stub.logs {
		if dateRange != nil && (entry.Date < dateRange.Start || entry.Date > dateRange.End) {
			continue
		}
		result = append(result, entry)
	}
	return result, nil
}

func (stub *stubDailyLogReader) CountByUser(uint) (int64, error) {
	if stub.countErr != nil {
		return 0, stub.countErr
	}
	return int64(len(stub.logs)), nil
}

type stubMigraineReader struct {
	migraines []models.Migraine
	err       error
}

func (stub *stubMigraineReader) ListByUser(uint) ([]models.Migraine, error) {
	if stub.err != nil {
		return nil, stub.err
	}
	result := make([]models.Migraine, len(stub.migraines))
	copy(result, stub.migraines)
	return result, nil
}
