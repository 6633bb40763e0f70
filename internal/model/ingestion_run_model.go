package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type IngestionRun struct {
	Id             uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ProcessedFiles datatypes.JSON `gorm:"type:jsonb"`
	SkippedFiles   datatypes.JSON `gorm:"type:jsonb"`
	TotalChunks    int            `gorm:"default:0"`
	CreatedAt      time.Time      `gorm:"autoCreateTime"`
}

func (IngestionRun) TableName() string {
	return "ingestion_runs"
}
