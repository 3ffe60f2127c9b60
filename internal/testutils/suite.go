package testutils

import (
	"fmt"
	"strings"
	"testing"

	"what-to-watch-backend/internal/config"
	"what-to-watch-backend/internal/database"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SetupTestDB opens a fresh in-memory SQLite database for the calling test
// and migrates the schema. The database is named after the test so parallel
// suites never share state; cache=shared keeps it alive across the pooled
// connections of a single suite.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)

	db, err := database.Initialize(dsn, &database.Options{LogLevel: logger.Silent})
	require.NoError(t, err, "failed to initialize test database")

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	return db
}

// CleanTestDB removes every opinion row between tests
func CleanTestDB(db *gorm.DB) {
	if db == nil {
		return
	}
	db.Exec(`DELETE FROM opinions`)
}

// TestConfig returns a configuration suitable for tests
func TestConfig() *config.Config {
	return &config.Config{
		Environment:    "test",
		Port:           "5000",
		LogLevel:       "error",
		DatabaseURL:    ":memory:",
		AllowedOrigins: []string{"*"},
	}
}
