package database

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/narwhalmedia/marquee/pkg/interfaces"
)

// Migration records an applied migration
type Migration struct {
	ID        uint      `gorm:"primaryKey"`
	Version   string    `gorm:"uniqueIndex;not null"`
	Name      string    `gorm:"not null"`
	AppliedAt time.Time `gorm:"not null"`
}

// MigrationFunc is a function that performs a migration
type MigrationFunc func(*gorm.DB) error

// MigrationEntry represents a single migration
type MigrationEntry struct {
	Version string
	Name    string
	Up      MigrationFunc
}

// Migrator applies versioned migrations exactly once, each in its own transaction
type Migrator struct {
	db         *gorm.DB
	logger     interfaces.Logger
	migrations []MigrationEntry
}

// NewMigrator creates a new migrator for the given ordered migrations
func NewMigrator(db *gorm.DB, logger interfaces.Logger, migrations ...MigrationEntry) *Migrator {
	return &Migrator{
		db:         db,
		logger:     logger,
		migrations: migrations,
	}
}

// Migrate runs all pending migrations
func (m *Migrator) Migrate() error {
	if err := m.db.AutoMigrate(&Migration{}); err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}

	pending, err := m.GetPendingMigrations()
	if err != nil {
		return err
	}

	for _, migration := range pending {
		m.logger.Info("Running migration",
			interfaces.String("version", migration.Version),
			interfaces.String("name", migration.Name))

		err := m.db.Transaction(func(tx *gorm.DB) error {
			if err := migration.Up(tx); err != nil {
				return err
			}

			return tx.Create(&Migration{
				Version:   migration.Version,
				Name:      migration.Name,
				AppliedAt: time.Now(),
			}).Error
		})
		if err != nil {
			return fmt.Errorf("failed to run migration %s: %w", migration.Version, err)
		}
	}

	return nil
}

// GetPendingMigrations returns migrations that haven't been applied yet
func (m *Migrator) GetPendingMigrations() ([]MigrationEntry, error) {
	var appliedMigrations []Migration
	if m.db.Migrator().HasTable(&Migration{}) {
		if err := m.db.Find(&appliedMigrations).Error; err != nil {
			return nil, fmt.Errorf("failed to get applied migrations: %w", err)
		}
	}

	applied := make(map[string]bool, len(appliedMigrations))
	for _, migration := range appliedMigrations {
		applied[migration.Version] = true
	}

	var pending []MigrationEntry
	for _, migration := range m.migrations {
		if !applied[migration.Version] {
			pending = append(pending, migration)
		}
	}

	return pending, nil
}
