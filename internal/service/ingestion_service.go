package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/LucasRomanSaad/stoicChatBOT/internal/config"
	"github.com/LucasRomanSaad/stoicChatBOT/internal/constant"
	"github.com/LucasRomanSaad/stoicChatBOT/internal/dto"
	"github.com/LucasRomanSaad/stoicChatBOT/internal/entity"
	"github.com/LucasRomanSaad/stoicChatBOT/internal/pkg/logger"
	"github.com/LucasRomanSaad/stoicChatBOT/internal/repository/contract"
	"github.com/LucasRomanSaad/stoicChatBOT/pkg/embedding"
	"github.com/LucasRomanSaad/stoicChatBOT/pkg/events"
	"github.com/LucasRomanSaad/stoicChatBOT/pkg/manifest"
	"github.com/LucasRomanSaad/stoicChatBOT/pkg/pdfloader"
	"github.com/LucasRomanSaad/stoicChatBOT/pkg/textsplitter"
)

// IngestionService runs the PDF-to-vector pipeline: discover source
// files, skip unchanged ones via content hashes, extract and chunk the
// rest, embed in batches, and persist. One pass runs at a time; the
// mutex serializes concurrent triggers.
type IngestionService struct {
	mu sync.Mutex

	cfg             config.IngestionConfig
	chunkRepository contract.ChunkRepository
	embedder        embedding.EmbeddingProvider
	manifestStore   *manifest.Store
	splitter        *textsplitter.Splitter
	publisher       *PublisherService
	log             logger.ILogger

	// Seam for in-package tests; default to the real implementations.
	loadPages func(path string) ([]pdfloader.Page, error)
	hashFile  func(path string) (string, error)
}

func NewIngestionService(
	cfg config.IngestionConfig,
	chunkRepository contract.ChunkRepository,
	embedder embedding.EmbeddingProvider,
	manifestStore *manifest.Store,
	publisher *PublisherService,
	log logger.ILogger,
) *IngestionService {
	return &IngestionService{
		cfg:             cfg,
		chunkRepository: chunkRepository,
		embedder:        embedder,
		manifestStore:   manifestStore,
		splitter:        textsplitter.New(cfg.ChunkSize, cfg.ChunkOverlap),
		publisher:       publisher,
		log:             log,
		loadPages:       pdfloader.Load,
		hashFile:        manifest.HashFile,
	}
}

// Ingest processes every PDF under the configured directory. Unchanged
// files (same content hash as the manifest records) are skipped, so
// repeating a pass over an unchanged corpus is a no-op. A failure in
// one file never aborts the pass for the others.
func (s *IngestionService) Ingest(ctx context.Context) (*dto.IngestionResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := os.Stat(s.cfg.PdfsPath); err != nil {
		return nil, fmt.Errorf("pdf directory %s is not accessible: %w", s.cfg.PdfsPath, err)
	}

	m, err := s.manifestStore.Load()
	if err != nil {
		return nil, fmt.Errorf("load ingestion manifest: %w", err)
	}

	paths, err := filepath.Glob(filepath.Join(s.cfg.PdfsPath, "*.pdf"))
	if err != nil {
		return nil, fmt.Errorf("list pdf files: %w", err)
	}
	sort.Strings(paths)

	var processed, skipped []string
	totalChunks := 0

	for _, path := range paths {
		name := filepath.Base(path)

		hash, err := s.hashFile(path)
		if err != nil {
			s.log.Error("IngestionService", "Failed to hash file", map[string]interface{}{
				"file":  name,
				"error": err.Error(),
			})
			continue
		}

		record, known := m.Files[name]
		if known && record.Hash == hash {
			skipped = append(skipped, name)
			continue
		}

		count, err := s.processFile(ctx, path, name, known)
		if err != nil {
			s.log.Error("IngestionService", "Failed to process file", map[string]interface{}{
				"file":  name,
				"error": err.Error(),
			})
			continue
		}

		m.Files[name] = manifest.FileRecord{
			Hash:        hash,
			Title:       titleFromFilename(name),
			Chunks:      count,
			ProcessedAt: time.Now().UTC(),
		}
		processed = append(processed, name)
		totalChunks += count
	}

	if err := s.manifestStore.Save(m); err != nil {
		return nil, fmt.Errorf("save ingestion manifest: %w", err)
	}

	s.log.Info("IngestionService", "Ingestion pass finished", map[string]interface{}{
		"processed":    len(processed),
		"skipped":      len(skipped),
		"total_chunks": totalChunks,
	})

	if s.publisher != nil {
		// Run history is auxiliary; a publish failure never fails the pass.
		_ = s.publisher.Publish(events.NewBaseEvent(s.cfg.EventTopic, map[string]interface{}{
			"processed_files": emptySlice(processed),
			"skipped_files":   emptySlice(skipped),
			"total_chunks":    totalChunks,
			"completed_at":    time.Now().UTC(),
		}))
	}

	return &dto.IngestionResponse{
		Message:        fmt.Sprintf("Processed %d file(s), skipped %d unchanged", len(processed), len(skipped)),
		ProcessedFiles: emptySlice(processed),
		SkippedFiles:   emptySlice(skipped),
		TotalChunks:    totalChunks,
	}, nil
}

// processFile turns one PDF into embedded chunks. When the file was
// seen before (changed content), its previous chunks are removed first
// so the index never holds two generations of the same source.
func (s *IngestionService) processFile(ctx context.Context, path, name string, previouslyIngested bool) (int, error) {
	title := titleFromFilename(name)

	pages, err := s.loadPages(path)
	if err != nil {
		return 0, fmt.Errorf("extract text: %w", err)
	}

	chunks := s.buildChunks(pages, title, path)
	if len(chunks) == 0 {
		s.log.Warn("IngestionService", "No extractable text in file", map[string]interface{}{
			"file": name,
		})
	}

	if previouslyIngested {
		if err := s.chunkRepository.DeleteBySource(ctx, title); err != nil {
			return 0, fmt.Errorf("remove stale chunks: %w", err)
		}
	}

	if len(chunks) == 0 {
		return 0, nil
	}

	if err := s.embedChunks(ctx, chunks); err != nil {
		return 0, err
	}

	if err := s.chunkRepository.CreateBulk(ctx, chunks); err != nil {
		return 0, fmt.Errorf("store chunks: %w", err)
	}

	return len(chunks), nil
}

// buildChunks splits each page and assigns the deterministic chunk
// identifier "{title}_doc{pageIndex}_{chunkIndex}". Whitespace-only
// chunks are dropped.
func (s *IngestionService) buildChunks(pages []pdfloader.Page, title, path string) []*entity.DocumentChunk {
	var chunks []*entity.DocumentChunk
	for pageIdx, page := range pages {
		pageNumber := page.Number
		for chunkIdx, text := range s.splitter.Split(page.Text) {
			if strings.TrimSpace(text) == "" {
				continue
			}
			chunks = append(chunks, &entity.DocumentChunk{
				ChunkId:    fmt.Sprintf("%s_doc%d_%d", title, pageIdx, chunkIdx),
				Content:    text,
				Title:      title,
				Page:       &pageNumber,
				SourcePath: path,
			})
		}
	}
	return chunks
}

// embedChunks fills in embedding vectors batch by batch. A failing
// batch aborts the file with the batch offset in the error so the log
// pinpoints where the provider gave up.
func (s *IngestionService) embedChunks(ctx context.Context, chunks []*entity.DocumentChunk) error {
	for start := 0; start < len(chunks); start += constant.EmbeddingBatchSize {
		end := start + constant.EmbeddingBatchSize
		if end > len(chunks) {
			end = len(chunks)
		}

		texts := make([]string, end-start)
		for i, c := range chunks[start:end] {
			texts[i] = c.Content
		}

		vectors, err := s.embedder.EmbedDocuments(ctx, texts)
		if err != nil {
			return fmt.Errorf("embed batch starting at chunk %d: %w", start, err)
		}
		if len(vectors) != len(texts) {
			return fmt.Errorf("embed batch starting at chunk %d: got %d vectors for %d texts", start, len(vectors), len(texts))
		}

		for i, vec := range vectors {
			chunks[start+i].Embedding = vec
		}
	}
	return nil
}

// Cleanup wipes the vector index and resets the manifest, so the next
// ingestion pass rebuilds everything from scratch.
func (s *IngestionService) Cleanup(ctx context.Context) (*dto.CleanupResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	deleted, err := s.chunkRepository.DeleteAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("delete stored chunks: %w", err)
	}

	manifestReset := true
	if err := s.manifestStore.Save(manifest.NewManifest()); err != nil {
		s.log.Error("IngestionService", "Failed to reset manifest", map[string]interface{}{
			"error": err.Error(),
		})
		manifestReset = false
	}

	remaining, err := s.chunkRepository.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count remaining chunks: %w", err)
	}

	s.log.Info("IngestionService", "Cleanup finished", map[string]interface{}{
		"deleted":   deleted,
		"remaining": remaining,
	})

	return &dto.CleanupResponse{
		DocumentsDeleted:   deleted,
		DocumentsRemaining: remaining,
		ManifestReset:      manifestReset,
		CleanupSuccessful:  remaining == 0 && manifestReset,
	}, nil
}

// titleFromFilename derives the display title from a filename: strip
// the extension, turn separators into spaces, and title-case the words.
func titleFromFilename(name string) string {
	stem := strings.TrimSuffix(name, filepath.Ext(name))
	stem = strings.NewReplacer("_", " ", "-", " ").Replace(stem)

	words := strings.Fields(stem)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
	}
	return strings.Join(words, " ")
}

func emptySlice(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
