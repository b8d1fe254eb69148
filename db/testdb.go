package db

import (
	"path/filepath"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewTestDB creates a fresh sqlite database with the full schema applied,
// including the partial unique index on approved claims, so tests exercise
// the same SQL path as production.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "test.db") +
		"?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}

	sqlDB, err := conn.DB()
	if err != nil {
		t.Fatalf("getting sql.DB: %v", err)
	}
	// sqlite allows a single writer; one pooled connection queues
	// concurrent transactions instead of failing them with SQLITE_BUSY.
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := Migrate(conn); err != nil {
		t.Fatalf("migrating test database: %v", err)
	}
	return conn
}
