package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/LucasRomanSaad/stoicChatBOT/internal/dto"
	"github.com/LucasRomanSaad/stoicChatBOT/internal/pkg/logger"
	"github.com/LucasRomanSaad/stoicChatBOT/internal/repository/contract"
	"github.com/LucasRomanSaad/stoicChatBOT/pkg/embedding"
	"github.com/LucasRomanSaad/stoicChatBOT/pkg/rag"

	gocache "github.com/patrickmn/go-cache"
)

const (
	queryCacheTTL     = 5 * time.Minute
	queryCacheCleanup = 10 * time.Minute
)

// RetrievalService answers "which passages are relevant to this query"
// by embedding the query and running a scored nearest-neighbor search.
// Query embeddings are cached briefly so retries and follow-ups on the
// same text skip the provider round trip.
type RetrievalService struct {
	chunkRepository contract.ChunkRepository
	runRepository   contract.IngestionRunRepository
	embedder        embedding.EmbeddingProvider
	queryCache      *gocache.Cache
	log             logger.ILogger
}

func NewRetrievalService(
	chunkRepository contract.ChunkRepository,
	runRepository contract.IngestionRunRepository,
	embedder embedding.EmbeddingProvider,
	log logger.ILogger,
) *RetrievalService {
	return &RetrievalService{
		chunkRepository: chunkRepository,
		runRepository:   runRepository,
		embedder:        embedder,
		queryCache:      gocache.New(queryCacheTTL, queryCacheCleanup),
		log:             log,
	}
}

// Retrieve returns up to topK sources with similarity >= minSimilarity,
// ordered by descending similarity. An empty index yields an empty
// result, not an error.
func (s *RetrievalService) Retrieve(ctx context.Context, query string, topK int, minSimilarity float64) ([]rag.Source, error) {
	total, err := s.chunkRepository.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count indexed chunks: %w", err)
	}
	if total == 0 {
		s.log.Warn("RetrievalService", "Vector index is empty", nil)
		return nil, nil
	}

	vector, err := s.embedQuery(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}

	scored, err := s.chunkRepository.SearchSimilarWithScore(ctx, vector, topK, minSimilarity)
	if err != nil {
		return nil, fmt.Errorf("similarity search: %w", err)
	}

	sources := make([]rag.Source, len(scored))
	for i, sc := range scored {
		sources[i] = rag.Source{
			Content:    sc.Chunk.Content,
			Title:      sc.Chunk.Title,
			ChunkId:    sc.Chunk.ChunkId,
			SourcePath: sc.Chunk.SourcePath,
			Page:       sc.Chunk.Page,
			Similarity: roundSimilarity(sc.Similarity),
		}
	}
	return sources, nil
}

func (s *RetrievalService) embedQuery(ctx context.Context, query string) ([]float32, error) {
	if cached, found := s.queryCache.Get(query); found {
		return cached.([]float32), nil
	}

	vector, err := s.embedder.EmbedQuery(ctx, query)
	if err != nil {
		return nil, err
	}

	s.queryCache.Set(query, vector, gocache.DefaultExpiration)
	return vector, nil
}

// Stats reports index size, per-source chunk counts, and recent
// ingestion runs.
func (s *RetrievalService) Stats(ctx context.Context) (*dto.StatsResponse, error) {
	total, err := s.chunkRepository.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count indexed chunks: %w", err)
	}

	bySource, err := s.chunkRepository.CountBySource(ctx)
	if err != nil {
		return nil, fmt.Errorf("count chunks by source: %w", err)
	}

	runs, err := s.runRepository.FindRecent(ctx, 10)
	if err != nil {
		return nil, fmt.Errorf("load recent ingestion runs: %w", err)
	}

	runDTOs := make([]dto.IngestionRunDTO, len(runs))
	for i, run := range runs {
		runDTOs[i] = dto.IngestionRunDTO{
			Id:             run.Id.String(),
			ProcessedFiles: emptySlice(run.ProcessedFiles),
			SkippedFiles:   emptySlice(run.SkippedFiles),
			TotalChunks:    run.TotalChunks,
			CreatedAt:      run.CreatedAt,
		}
	}

	return &dto.StatsResponse{
		TotalDocuments:    total,
		DocumentsBySource: bySource,
		RecentRuns:        runDTOs,
	}, nil
}

// roundSimilarity normalizes scores to six decimal places so equal
// matches compare equal across backends and platforms.
func roundSimilarity(sim float64) float64 {
	return math.Round(sim*1e6) / 1e6
}
