package contract

import (
	"context"

	"github.com/LucasRomanSaad/stoicChatBOT/internal/entity"
)

// ScoredDocumentChunk pairs a chunk with its cosine similarity to a
// query vector.
type ScoredDocumentChunk struct {
	Chunk      *entity.DocumentChunk
	Similarity float64
}

// ChunkRepository is the nearest-neighbor index the pipeline writes to
// and queries. Implementations own ranking; callers never re-sort.
type ChunkRepository interface {
	CreateBulk(ctx context.Context, chunks []*entity.DocumentChunk) error
	Count(ctx context.Context) (int64, error)
	CountBySource(ctx context.Context) (map[string]int64, error)
	SearchSimilarWithScore(ctx context.Context, embedding []float32, limit int, threshold float64) ([]*ScoredDocumentChunk, error)
	DeleteBySource(ctx context.Context, title string) error
	DeleteAll(ctx context.Context) (int64, error)
}
