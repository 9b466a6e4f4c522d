package store

import (
	"fmt"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/timada-org/todos/internal/core"
)

// Store is the relational backing for users and todos. All mutations are
// single-statement, so no application-level locking is needed.
type Store struct {
	db *gorm.DB
}

// Open opens the sqlite database at path (":memory:" works for tests),
// enables foreign keys and migrates the schema.
func Open(path string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", core.ErrStore, err)
	}

	// sqlite allows a single writer, and the foreign_keys pragma is
	// per-connection. One pooled connection keeps both honest and makes
	// ":memory:" databases shared across statements.
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", core.ErrStore, err)
	}
	sqlDB.SetMaxOpenConns(1)

	// Cascade delete on users depends on this pragma.
	if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		return nil, fmt.Errorf("%w: %v", core.ErrStore, err)
	}

	if err := db.AutoMigrate(&core.User{}, &core.Todo{}); err != nil {
		return nil, fmt.Errorf("%w: %v", core.ErrStore, err)
	}

	return &Store{db: db}, nil
}

func storeErr(err error) error {
	return fmt.Errorf("%w: %v", core.ErrStore, err)
}
