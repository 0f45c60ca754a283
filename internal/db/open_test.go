package db

import (
	"path/filepath"
	"testing"
)

func TestOpenRejectsUnknownDriver(t *testing.T) {
	if _, err := Open(Options{Driver: "mysql"}); err == nil {
		t.Fatal("expected unsupported driver error")
	}
}

func TestOpenPostgresRequiresURL(t *testing.T) {
	if _, err := Open(Options{Driver: DriverPostgres, URL: "  "}); err == nil {
		t.Fatal("expected missing database url error")
	}
}

func TestOpenDefaultsToSQLite(t *testing.T) {
	database, err := Open(Options{Path: filepath.Join(t.TempDir(), "zivora.db")})
	if err != nil {
		t.Fatalf("open default driver: %v", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("load sql db handle: %v", err)
	}
	defer sqlDB.Close()

	if name := database.Dialector.Name(); name != dialectSQLite {
		t.Fatalf("expected sqlite dialector, got %q", name)
	}
}
