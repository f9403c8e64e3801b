package testutils

import (
	"fmt"
	"testing"
	"time"

	"agrimanager-backend/internal/config"
	"agrimanager-backend/internal/database"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// TestJWTSecret signs tokens in tests; it satisfies the production length rule
const TestJWTSecret = "test-secret-key-for-agrimanager-unit-tests"

// NewSQLiteDB opens a private in-memory database with the full schema migrated.
// The connection is closed when the test ends.
func NewSQLiteDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_pragma=foreign_keys(1)", uuid.NewString())
	db, err := database.Initialize(dsn, &database.Options{
		Driver:       database.DriverSQLite,
		MaxOpenConns: 1,
		MaxIdleConns: 1,
	})
	require.NoError(t, err)

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

// NewTestConfig returns a configuration suitable for wiring the router in tests
func NewTestConfig() *config.Config {
	return &config.Config{
		Environment:    "test",
		Port:           "7008",
		LogLevel:       "error",
		DatabaseDriver: config.DriverSQLite,
		SQLitePath:     ":memory:",
		JWTSecret:      TestJWTSecret,
		JWTIssuer:      "agrimanager-api",
		JWTAudience:    "agrimanager-clients",
		JWTTTL:         2 * time.Hour,
		AllowedOrigins: []string{"http://localhost:4200"},
	}
}
