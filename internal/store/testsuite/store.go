package testsuite

import (
	"path/filepath"
	"testing"

	"github.com/DDeenis/url-shortener-frontend/internal/store"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewStore opens a store backed by a temporary sqlite database.
func NewStore(t testing.TB) *store.Store {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "store.sqlite")

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("%+v", err)
	}

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	return store.New(db)
}
