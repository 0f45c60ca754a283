package services

// ExportPreferences seeds the export screen. Preferences are not stored per
// user, so every caller gets the defaults.
type ExportPreferences struct {
	DateRange       string          `json:"dateRange"`
	CustomStartDate string          `json:"customStartDate"`
	CustomEndDate   string          `json:"customEndDate"`
	DataTypes       map[string]bool `json:"dataTypes"`
	Format          string          `json:"format"`
}

func DefaultExportPreferences() ExportPreferences {
	return ExportPreferences{
		DateRange: ExportRangeLast30,
		DataTypes: map[string]bool{
			ExportDataSleepQuality: true,
			ExportDataStressLevels: true,
			ExportDataFoodTriggers: false,
		},
		Format: ExportFormatCSV,
	}
}
