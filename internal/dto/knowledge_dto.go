package dto

import "time"

type IngestionResponse struct {
	Message        string   `json:"message"`
	ProcessedFiles []string `json:"processed_files"`
	SkippedFiles   []string `json:"skipped_files"`
	TotalChunks    int      `json:"total_chunks"`
}

type CleanupResponse struct {
	DocumentsDeleted   int64 `json:"documents_deleted"`
	DocumentsRemaining int64 `json:"documents_remaining"`
	ManifestReset      bool  `json:"manifest_reset"`
	CleanupSuccessful  bool  `json:"cleanup_successful"`
}

type IngestionRunDTO struct {
	Id             string    `json:"id"`
	ProcessedFiles []string  `json:"processed_files"`
	SkippedFiles   []string  `json:"skipped_files"`
	TotalChunks    int       `json:"total_chunks"`
	CreatedAt      time.Time `json:"created_at"`
}

type StatsResponse struct {
	TotalDocuments    int64             `json:"total_documents"`
	DocumentsBySource map[string]int64  `json:"documents_by_source"`
	RecentRuns        []IngestionRunDTO `json:"recent_runs"`
}

// IngestionCompletedMessage is the payload published after a successful
// ingestion pass.
type IngestionCompletedMessage struct {
	ProcessedFiles []string  `json:"processed_files"`
	SkippedFiles   []string  `json:"skipped_files"`
	TotalChunks    int       `json:"total_chunks"`
	CompletedAt    time.Time `json:"completed_at"`
}
