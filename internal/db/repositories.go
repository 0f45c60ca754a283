package db

import "gorm.io/gorm"

type Repositories struct {
	DailyLogs   *DailyLogRepository
	Migraines   *MigraineRepository
	Triggers    *TriggerRepository
	Symptoms    *SymptomRepository
	Medications *MedicationRepository
	SymptomLogs *SymptomLogRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		DailyLogs:   NewDailyLogRepository(database),
		Migraines:   NewMigraineRepository(database),
		Triggers:    NewTriggerRepository(database),
		Symptoms:    NewSymptomRepository(database),
		Medications: NewMedicationRepository(database),
		SymptomLogs: NewSymptomLogRepository(database),
	}
}
