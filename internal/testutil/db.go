// Package testutil holds shared fixtures for package tests.
package testutil

import (
	"path/filepath"
	"testing"

	"gorm.io/gorm"

	config "taskflow.com/taskflow/internal/configs"
)

// NewDB opens a migrated SQLite database in a temp directory that is
// removed when the test ends.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := config.New(filepath.Join(t.TempDir(), "tasks.db"))
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	t.Cleanup(func() { _ = config.Close(db) })

	if err := config.Migrate(db); err != nil {
		t.Fatalf("failed to migrate database: %v", err)
	}

	return db
}
