package database

import (
	"path/filepath"
	"testing"

	"github.com/lshigami/QuizDraft/config"
)

func TestNewDatabaseSQLite(t *testing.T) {
	cfg := &config.Config{}
	cfg.Database.Driver = "sqlite"
	cfg.Database.SQLitePath = filepath.Join(t.TempDir(), "nested", "app.db")

	db, err := NewDatabase(cfg)
	if err != nil {
		t.Fatalf("NewDatabase: %v", err)
	}
	if err := db.Exec("SELECT 1").Error; err != nil {
		t.Fatalf("query: %v", err)
	}
}

func TestNewDatabaseRejectsUnknownDriver(t *testing.T) {
	cfg := &config.Config{}
	cfg.Database.Driver = "oracle"
	if _, err := NewDatabase(cfg); err == nil {
		t.Fatalf("expected error")
	}
}
