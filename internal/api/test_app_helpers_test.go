package api

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/zivora/internal/db"
	"github.com/terraincognita07/zivora/internal/models"
	"github.com/terraincognita07/zivora/internal/security"
	"github.com/terraincognita07/zivora/internal/services"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const testSecretKey = "0123456789abcdef0123456789abcdef"

var testNow = time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)

type flatChartSeries struct{}

func (flatChartSeries) Series(base float64, spread float64) []services.ChartPoint {
	return []services.ChartPoint{{Day: "Day 0", Value: base}}
}

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	database, err := db.OpenSQLite(filepath.Join(t.TempDir(), "zivora-api-test.db"), nil)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("open sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	handler, err := NewHandler(database, testSecretKey, zap.NewNop(), flatChartSeries{})
	if err != nil {
		t.Fatalf("init handler: %v", err)
	}
	handler.now = func() time.Time { return testNow }

	app := fiber.New()
	RegisterRoutes(app, handler)
	return app, database
}

func bearerFor(t *testing.T, userID uint) string {
	t.Helper()

	token, err := security.IssueAccessToken([]byte(testSecretKey), userID, "", time.Hour, time.Now())
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	return "Bearer " + token
}

func doRequest(t *testing.T, app *fiber.App, method string, path string, authorization string, body string) (*http.Response, []byte) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	request := httptest.NewRequest(method, path, reader)
	if body != "" {
		request.Header.Set("Content-Type", "application/json")
	}
	if authorization != "" {
		request.Header.Set("Authorization", authorization)
	}

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, path, err)
	}
	defer response.Body.Close()

	payload, err := io.ReadAll(response.Body)
	if err != nil {
		t.Fatalf("%s %s read body failed: %v", method, path, err)
	}
	return response, payload
}

func requireStatus(t *testing.T, response *http.Response, body []byte, expected int) {
	t.Helper()
	if response.StatusCode != expected {
		t.Fatalf("expected status %d, got %d: %s", expected, response.StatusCode, string(body))
	}
}

func decodeBody(t *testing.T, body []byte, target any) {
	t.Helper()
	if err := json.Unmarshal(body, target); err != nil {
		t.Fatalf("decode response body %q: %v", string(body), err)
	}
}

func readAPIError(t *testing.T, body []byte) string {
	t.Helper()

	payload := map[string]string{}
	decodeBody(t, body, &payload)
	return payload["error"]
}

func seedDailyLog(t *testing.T, database *gorm.DB, userID uint, date string, headache string, triggers string) models.DailyLog {
	t.Helper()

	entry := models.DailyLog{UserID: userID, Date: date}
	if headache != "" {
		entry.HeadacheData = &headache
	}
	if triggers != "" {
		entry.TriggerData = &triggers
	}
	if err := database.Create(&entry).Error; err != nil {
		t.Fatalf("create daily log: %v", err)
	}
	return entry
}

func seedMigraine(t *testing.T, database *gorm.DB, migraine models.Migraine) models.Migraine {
	t.Helper()

	if err := database.Create(&migraine).Error; err != nil {
		t.Fatalf("create migraine: %v", err)
	}
	return migraine
}

// seedTrendLogs stores two headache days and one quiet day inside the
// 30 day window, one headache day far outside it, and one for another user.
func seedTrendLogs(t *testing.T, database *gorm.DB) {
	t.Helper()

	seedDailyLog(t, database, 1, "2026-03-10", `{"severity":"Severe","duration":{"hours":3,"minutes":30}}`, `{"emotions":["Anxious"]}`)
	seedDailyLog(t, database, 1, "2026-03-12", `{"severity":"Mild"}`, "")
	seedDailyLog(t, database, 1, "2026-03-13", `{"severity":"None"}`, "")
	seedDailyLog(t, database, 1, "2026-01-01", `{"severity":"Severe"}`, "")
	seedDailyLog(t, database, 2, "2026-03-11", `{"severity":"Severe"}`, "")
}
