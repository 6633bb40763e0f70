package service

import (
	"context"
	"fmt"

	"github.com/LucasRomanSaad/stoicChatBOT/internal/entity"
	"github.com/LucasRomanSaad/stoicChatBOT/internal/repository/contract"
	"github.com/LucasRomanSaad/stoicChatBOT/pkg/llm"

	"github.com/google/uuid"
)

// In-memory doubles for the repository and provider contracts, shared
// by the service tests.

type nopLogger struct{}

func (nopLogger) Debug(string, string, map[string]interface{}) {}
func (nopLogger) Info(string, string, map[string]interface{})  {}
func (nopLogger) Warn(string, string, map[string]interface{})  {}
func (nopLogger) Error(string, string, map[string]interface{}) {}
func (nopLogger) Sync() error                                  { return nil }

type fakeChunkRepository struct {
	chunks         []*entity.DocumentChunk
	searchResults  []*contract.ScoredDocumentChunk
	deletedSources []string
	searchCalls    []searchCall
	createErr      error
}

type searchCall struct {
	limit     int
	threshold float64
}

func (r *fakeChunkRepository) CreateBulk(_ context.Context, chunks []*entity.DocumentChunk) error {
	if r.createErr != nil {
		return r.createErr
	}
	for _, c := range chunks {
		if c.Id == uuid.Nil {
			c.Id = uuid.New()
		}
		r.chunks = append(r.chunks, c)
	}
	return nil
}

func (r *fakeChunkRepository) Count(context.Context) (int64, error) {
	return int64(len(r.chunks)), nil
}

func (r *fakeChunkRepository) CountBySource(context.Context) (map[string]int64, error) {
	counts := map[string]int64{}
	for _, c := range r.chunks {
		counts[c.Title]++
	}
	return counts, nil
}

func (r *fakeChunkRepository) SearchSimilarWithScore(_ context.Context, _ []float32, limit int, threshold float64) ([]*contract.ScoredDocumentChunk, error) {
	r.searchCalls = append(r.searchCalls, searchCall{limit: limit, threshold: threshold})

	var matched []*contract.ScoredDocumentChunk
	for _, sc := range r.searchResults {
		if sc.Similarity >= threshold {
			matched = append(matched, sc)
		}
	}
	if limit < len(matched) {
		return matched[:limit], nil
	}
	return matched, nil
}

func (r *fakeChunkRepository) DeleteBySource(_ context.Context, title string) error {
	r.deletedSources = append(r.deletedSources, title)
	var kept []*entity.DocumentChunk
	for _, c := range r.chunks {
		if c.Title != title {
			kept = append(kept, c)
		}
	}
	r.chunks = kept
	return nil
}

func (r *fakeChunkRepository) DeleteAll(context.Context) (int64, error) {
	n := int64(len(r.chunks))
	r.chunks = nil
	return n, nil
}

type fakeRunRepository struct {
	runs []*entity.IngestionRun
}

func (r *fakeRunRepository) Create(_ context.Context, run *entity.IngestionRun) error {
	if run.Id == uuid.Nil {
		run.Id = uuid.New()
	}
	r.runs = append(r.runs, run)
	return nil
}

func (r *fakeRunRepository) FindRecent(_ context.Context, limit int) ([]*entity.IngestionRun, error) {
	if limit > len(r.runs) {
		limit = len(r.runs)
	}
	out := make([]*entity.IngestionRun, 0, limit)
	for i := len(r.runs) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, r.runs[i])
	}
	return out, nil
}

type fakeEmbedder struct {
	docBatches [][]string
	queryCalls int
	docErr     error
	queryErr   error
}

func (e *fakeEmbedder) EmbedDocuments(_ context.Context, texts []string) ([][]float32, error) {
	if e.docErr != nil {
		return nil, e.docErr
	}
	e.docBatches = append(e.docBatches, texts)
	vectors := make([][]float32, len(texts))
	for i, text := range texts {
		vectors[i] = []float32{float32(len(text)), 0.5, 1}
	}
	return vectors, nil
}

func (e *fakeEmbedder) EmbedQuery(_ context.Context, _ string) ([]float32, error) {
	e.queryCalls++
	if e.queryErr != nil {
		return nil, e.queryErr
	}
	return []float32{0.1, 0.2, 0.3}, nil
}

type fakeLLMProvider struct {
	failModels   map[string]error
	content      string
	calls        []llm.Options
	lastMessages []llm.Message
}

func (p *fakeLLMProvider) Chat(_ context.Context, messages []llm.Message, options ...llm.Option) (*llm.Completion, error) {
	opts := llm.Options{}
	for _, opt := range options {
		opt(&opts)
	}
	p.calls = append(p.calls, opts)
	p.lastMessages = messages

	if err, ok := p.failModels[opts.Model]; ok {
		return nil, fmt.Errorf("model %s: %w", opts.Model, err)
	}

	return &llm.Completion{
		Content:          p.content,
		PromptTokens:     11,
		CompletionTokens: 29,
		Model:            opts.Model,
	}, nil
}
