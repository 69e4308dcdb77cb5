package config

import (
	"fmt"
	"strings"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	model "taskflow.com/taskflow/internal/models"
)

// sqliteParams are appended to every DSN. Foreign keys must be on for the
// task -> assignment cascade to run inside the store.
var sqliteParams = []string{
	"_foreign_keys=on",
	"_busy_timeout=5000",
}

func New(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(withSQLiteParams(dsn)), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("db open failed: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("db handle: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)

	return db, nil
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&model.Task{}, &model.TaskAssignment{}); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	return nil
}

func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func withSQLiteParams(dsn string) string {
	for _, param := range sqliteParams {
		name := param[:strings.Index(param, "=")+1]
		if strings.Contains(dsn, name) {
			continue
		}
		sep := "?"
		if strings.Contains(dsn, "?") {
			sep = "&"
		}
		dsn += sep + param
	}
	return dsn
}
