package db

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/balkashynov/pokerlog/internal/models"
)

var DB *gorm.DB

// Initialize opens the database at dbPath, runs migrations and stores the
// connection in DB
func Initialize(dbPath string, debug bool) error {
	db, err := Open(dbPath, debug)
	if err != nil {
		return err
	}
	DB = db
	return nil
}

// Open creates the database file if needed, connects and migrates the schema
func Open(dbPath string, debug bool) (*gorm.DB, error) {
	// Ensure the directory exists
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create pokerlog directory: %w", err)
	}

	logMode := logger.Silent // Quiet by default
	if debug {
		logMode = logger.Info
	}

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logMode),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := runMigrations(db); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return db, nil
}

// runMigrations creates/updates the database schema
func runMigrations(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.PokerSession{},
	)
}

// Close closes the database connection
func Close() error {
	if DB != nil {
		sqlDB, err := DB.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	}
	return nil
}
