package entity

import (
	"time"

	"github.com/google/uuid"
)

// DocumentChunk is one embedded passage of a source document. ChunkId
// is the deterministic, human-traceable identifier
// ("{title}_doc{pageIndex}_{chunkIndex}"); Id is the storage key.
type DocumentChunk struct {
	Id         uuid.UUID
	ChunkId    string
	Content    string
	Title      string
	Page       *int
	SourcePath string
	Embedding  []float32
	CreatedAt  time.Time
}
