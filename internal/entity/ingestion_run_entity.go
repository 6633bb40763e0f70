package entity

import (
	"time"

	"github.com/google/uuid"
)

// IngestionRun records the outcome of one ingestion pass.
type IngestionRun struct {
	Id             uuid.UUID
	ProcessedFiles []string
	SkippedFiles   []string
	TotalChunks    int
	CreatedAt      time.Time
}
