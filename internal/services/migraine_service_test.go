package services

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/terraincognita07/zivora/internal/models"
)

type memoryMigraineRepository struct {
	migraines []models.Migraine
	nextID    uint
	err       error
}

func (repo *memoryMigraineRepository) ListByUser(userID uint) ([]models.Migraine, error) {
	if repo.err != nil {
		return nil, repo.err
	}
	result := make([]models.Migraine, 0)
	for _, migraine := range repo.migraines {
		if migraine.UserID == userID {
			result = append(result, migraine)
		}
	}
	return result, nil
}

func (repo *memoryMigraineRepository) FindByIDForUser(id uint, userID uint) (models.Migraine, bool, error) {
	if repo.err != nil {
		return models.Migraine{}, false, repo.err
	}
	for _, migraine := range repo.migraines {
		if migraine.ID == id && migraine.UserID == userID {
			return migraine, true, nil
		}
	}
	return models.Migraine{}, false, nil
}

func (repo *memoryMigraineRepository) Create(migraine *models.Migraine) error {
	if repo.err != nil {
		return repo.err
	}
	repo.nextID++
	migraine.ID = repo.nextID
	repo.migraines = append(repo.migraines, *migraine)
	return nil
}

func (repo *memoryMigraineRepository) Save(migraine *models.Migraine) error {
	for index := range repo.migraines {
		if repo.migraines[index].ID == migraine.ID {
			repo.migraines[index] = *migraine
			return nil
		}
	}
	return errors.New("missing row")
}

func (repo *memoryMigraineRepository) DeleteByIDForUser(id uint, userID uint) (bool, error) {
	for index, migraine := range repo.migraines {
		if migraine.ID == id && migraine.UserID == userID {
			repo.migraines = append(repo.migraines[:index], repo.migraines[index+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func TestMigraineServiceCreateValidates(t *testing.T) {
	service := NewMigraineService(&memoryMigraineRepository{})
	start := time.Date(2026, time.March, 2, 7, 0, 0, 0, time.UTC)
	before := start.Add(-time.Hour)

	tests := []struct {
		name  string
		input MigraineInput
		want  error
	}{
		{name: "missing start", input: MigraineInput{Severity: intPointer(3)}, want: ErrMigraineStartDateRequired},
		{name: "missing severity", input: MigraineInput{StartDate: &start}, want: ErrInvalidMigraineSeverity},
		{name: "severity zero", input: MigraineInput{StartDate: &start, Severity: intPointer(0)}, want: ErrInvalidMigraineSeverity},
		{name: "severity eleven", input: MigraineInput{StartDate: &start, Severity: intPointer(11)}, want: ErrInvalidMigraineSeverity},
		{name: "end before start", input: MigraineInput{StartDate: &start, EndDate: SetTime(before), Severity: intPointer(4)}, want: ErrInvalidMigraineEndDate},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			if _, err := service.Create(1, testCase.input); !errors.Is(err, testCase.want) {
				t.Fatalf("expected %v, got %v", testCase.want, err)
			}
		})
	}
}

func TestMigraineServiceLifecycle(t *testing.T) {
	repo := &memoryMigraineRepository{}
	service := NewMigraineService(repo)
	start := time.Date(2026, time.March, 2, 7, 0, 0, 0, time.FixedZone("CET", 3600))

	created, err := service.Create(1, MigraineInput{
		StartDate: &start,
		Severity:  intPointer(8),
		Triggers:  []string{"Cheese"},
		Location:  stringPointer("Office"),
	})
	if err != nil {
		t.Fatalf("Create() unexpected error: %v", err)
	}
	if created.UserID != 1 || created.Severity != 8 || created.StartDate.Location() != time.UTC {
		t.Fatalf("unexpected created migraine: %#v", created)
	}

	end := start.Add(5 * time.Hour)
	updated, err := service.Update(1, created.ID, MigraineInput{EndDate: SetTime(end), Notes: stringPointer("better after rest")})
	if err != nil {
		t.Fatalf("Update() unexpected error: %v", err)
	}
	if updated.DurationHours() != 5 || models.StringValue(updated.Notes) != "better after rest" || len(updated.Triggers) != 1 {
		t.Fatalf("unexpected updated migraine: %#v", updated)
	}

	if _, err := service.Update(1, created.ID, MigraineInput{Severity: intPointer(-1)}); !errors.Is(err, ErrInvalidMigraineSeverity) {
		t.Fatalf("expected severity validation on update, got %v", err)
	}
	if _, err := service.Get(2, created.ID); !errors.Is(err, ErrMigraineNotFound) {
		t.Fatalf("expected ErrMigraineNotFound for another user, got %v", err)
	}
	if err := service.Delete(2, created.ID); !errors.Is(err, ErrMigraineNotFound) {
		t.Fatalf("expected foreign delete to report not found, got %v", err)
	}
	if err := service.Delete(1, created.ID); err != nil {
		t.Fatalf("Delete() unexpected error: %v", err)
	}

	listed, err := service.List(1)
	if err != nil || len(listed) != 0 {
		t.Fatalf("expected empty list after delete, got %d err=%v", len(listed), err)
	}
}

func TestMigraineServicePropagatesStoreErrors(t *testing.T) {
	storeErr := errors.New("connection reset")
	service := NewMigraineService(&memoryMigraineRepository{err: storeErr})

	if _, err := service.List(1); !errors.Is(err, storeErr) {
		t.Fatalf("List(): expected wrapped store error, got %v", err)
	}
	if _, err := service.Get(1, 1); !errors.Is(err, storeErr) {
		t.Fatalf("Get(): expected wrapped store error, got %v", err)
	}
}

func TestMigraineInputEndDatePresence(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		set     bool
		cleared bool
	}{
		{name: "omitted", raw: `{"notes":"x"}`, set: false},
		{name: "null", raw: `{"endDate":null}`, set: true, cleared: true},
		{name: "value", raw: `{"endDate":"2026-03-02T12:00:00Z"}`, set: true},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			input := MigraineInput{}
			if err := json.Unmarshal([]byte(testCase.raw), &input); err != nil {
				t.Fatalf("decode input: %v", err)
			}
			if input.EndDate.Set != testCase.set || (input.EndDate.Value == nil) != (testCase.cleared || !testCase.set) {
				t.Fatalf("unexpected end date %#v", input.EndDate)
			}
		})
	}

	if err := json.Unmarshal([]byte(`{"endDate":"yesterday"}`), &MigraineInput{}); err == nil {
		t.Fatal("expected invalid end date to fail decoding")
	}
}

func TestMigraineServiceUpdateClearsEndDate(t *testing.T) {
	repo := &memoryMigraineRepository{}
	service := NewMigraineService(repo)
	start := time.Date(2026, time.March, 2, 7, 0, 0, 0, time.UTC)

	created, err := service.Create(1, MigraineInput{StartDate: &start, EndDate: SetTime(start.Add(time.Hour)), Severity: intPointer(5)})
	if err != nil {
		t.Fatalf("Create() unexpected error: %v", err)
	}
	if created.EndDate == nil {
		t.Fatal("expected created migraine to have an end date")
	}

	reopened, err := service.Update(1, created.ID, MigraineInput{EndDate: OptionalTime{Set: true}})
	if err != nil {
		t.Fatalf("Update() unexpected error: %v", err)
	}
	if reopened.EndDate != nil {
		t.Fatalf("expected end date cleared, got %v", reopened.EndDate)
	}
}
