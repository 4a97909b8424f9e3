package reviewstore

import (
	"gorm.io/gorm"

	"github.com/narwhalmedia/marquee/pkg/database"
)

// Migrations returns the versioned schema changes for the reviews collection.
func Migrations() []database.MigrationEntry {
	return []database.MigrationEntry{
		{
			Version: "20240101000001",
			Name:    "create_reviews",
			Up: func(tx *gorm.DB) error {
				return tx.AutoMigrate(&ReviewModel{})
			},
		},
	}
}
