package db

import (
	"fmt"
	"os"
	"path/filepath"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/easymart/pos-backend/internal/config"
	"github.com/easymart/pos-backend/internal/repository/dao"
)

// OpenSQLite opens (or creates) the single-file store and migrates tables.
// SQLite supports one writer at a time, so the pool is pinned to a single
// connection to avoid SQLITE_BUSY under concurrent requests.
func OpenSQLite(conf *config.SQLiteConfig) (*gorm.DB, error) {
	if dir := filepath.Dir(conf.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("os.MkdirAll -> %w", err)
		}
	}

	dsn := conf.Path + "?_busy_timeout=5000&_journal_mode=WAL&_foreign_keys=on"
	gormDB, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("gorm.Open -> %w", err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, fmt.Errorf("gormDB.DB -> %w", err)
	}
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)

	if err = dao.InitTables(gormDB); err != nil {
		return nil, fmt.Errorf("dao.InitTables -> %w", err)
	}

	return gormDB, nil
}
