package database

import (
	"github.com/LucasRomanSaad/stoicChatBOT/internal/model"

	"gorm.io/gorm"
)

// Migrate enables the pgvector extension and brings the schema up to
// date. Safe to run on every startup.
func Migrate(db *gorm.DB) error {
	if err := db.Exec("CREATE EXTENSION IF NOT EXISTS vector").Error; err != nil {
		return err
	}

	return db.AutoMigrate(
		&model.DocumentChunk{},
		&model.IngestionRun{},
	)
}
