package service

import (
	"context"
	"testing"

	"github.com/LucasRomanSaad/stoicChatBOT/internal/entity"
	"github.com/LucasRomanSaad/stoicChatBOT/internal/repository/contract"

	"github.com/stretchr/testify/require"
)

func scoredChunk(chunkId, title, content string, page int, similarity float64) *contract.ScoredDocumentChunk {
	return &contract.ScoredDocumentChunk{
		Chunk: &entity.DocumentChunk{
			ChunkId:    chunkId,
			Title:      title,
			Content:    content,
			Page:       &page,
			SourcePath: "./data/pdfs/" + title + ".pdf",
		},
		Similarity: similarity,
	}
}

func TestRetrieveEmptyIndexReturnsNoSources(t *testing.T) {
	repo := &fakeChunkRepository{}
	embedder := &fakeEmbedder{}
	svc := NewRetrievalService(repo, &fakeRunRepository{}, embedder, nopLogger{})

	sources, err := svc.Retrieve(context.Background(), "What is virtue?", 3, 0)
	require.NoError(t, err)
	require.Empty(t, sources)

	// No point embedding a query against an empty index.
	require.Equal(t, 0, embedder.queryCalls)
}

func TestRetrieveMapsAndRoundsSimilarity(t *testing.T) {
	repo := &fakeChunkRepository{
		chunks: []*entity.DocumentChunk{{Title: "Meditations"}},
		searchResults: []*contract.ScoredDocumentChunk{
			scoredChunk("Meditations_doc0_0", "Meditations", "You have power over your mind.", 1, 0.8234567891),
			scoredChunk("Meditations_doc0_1", "Meditations", "The obstacle is the way.", 2, 0.5123400000001),
		},
	}
	svc := NewRetrievalService(repo, &fakeRunRepository{}, &fakeEmbedder{}, nopLogger{})

	sources, err := svc.Retrieve(context.Background(), "What is virtue?", 3, 0)
	require.NoError(t, err)
	require.Len(t, sources, 2)

	require.Equal(t, 0.823457, sources[0].Similarity)
	require.Equal(t, 0.51234, sources[1].Similarity)

	require.Equal(t, "Meditations_doc0_0", sources[0].ChunkId)
	require.Equal(t, "Meditations", sources[0].Title)
	require.NotNil(t, sources[0].Page)
	require.Equal(t, 1, *sources[0].Page)

	require.Len(t, repo.searchCalls, 1)
	require.Equal(t, 3, repo.searchCalls[0].limit)
	require.Equal(t, 0.0, repo.searchCalls[0].threshold)
}

func TestRetrieveHonorsMinSimilarity(t *testing.T) {
	repo := &fakeChunkRepository{
		chunks: []*entity.DocumentChunk{{Title: "Meditations"}},
		searchResults: []*contract.ScoredDocumentChunk{
			scoredChunk("a", "Meditations", "strong match", 1, 0.95),
			scoredChunk("b", "Meditations", "borderline match", 2, 0.9),
			scoredChunk("c", "Meditations", "weak match", 3, 0.89),
		},
	}
	svc := NewRetrievalService(repo, &fakeRunRepository{}, &fakeEmbedder{}, nopLogger{})

	sources, err := svc.Retrieve(context.Background(), "What is virtue?", 5, 0.9)
	require.NoError(t, err)

	// The floor is inclusive and nothing below it comes back.
	require.Len(t, sources, 2)
	for _, src := range sources {
		require.GreaterOrEqual(t, src.Similarity, 0.9)
	}

	require.Len(t, repo.searchCalls, 1)
	require.Equal(t, 0.9, repo.searchCalls[0].threshold)
}

func TestRetrieveCachesQueryEmbeddings(t *testing.T) {
	repo := &fakeChunkRepository{
		chunks:        []*entity.DocumentChunk{{Title: "Meditations"}},
		searchResults: []*contract.ScoredDocumentChunk{scoredChunk("a", "Meditations", "text", 1, 0.9)},
	}
	embedder := &fakeEmbedder{}
	svc := NewRetrievalService(repo, &fakeRunRepository{}, embedder, nopLogger{})

	_, err := svc.Retrieve(context.Background(), "same question", 3, 0)
	require.NoError(t, err)
	_, err = svc.Retrieve(context.Background(), "same question", 3, 0)
	require.NoError(t, err)

	require.Equal(t, 1, embedder.queryCalls)

	_, err = svc.Retrieve(context.Background(), "different question", 3, 0)
	require.NoError(t, err)
	require.Equal(t, 2, embedder.queryCalls)
}

func TestStats(t *testing.T) {
	repo := &fakeChunkRepository{
		chunks: []*entity.DocumentChunk{
			{Title: "Meditations"},
			{Title: "Meditations"},
			{Title: "Letters"},
		},
	}
	runRepo := &fakeRunRepository{}
	require.NoError(t, runRepo.Create(context.Background(), &entity.IngestionRun{
		ProcessedFiles: []string{"meditations.pdf"},
		TotalChunks:    2,
	}))

	svc := NewRetrievalService(repo, runRepo, &fakeEmbedder{}, nopLogger{})

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)
	require.Equal(t, int64(3), stats.TotalDocuments)
	require.Equal(t, int64(2), stats.DocumentsBySource["Meditations"])
	require.Equal(t, int64(1), stats.DocumentsBySource["Letters"])
	require.Len(t, stats.RecentRuns, 1)
	require.Equal(t, 2, stats.RecentRuns[0].TotalChunks)
	require.Equal(t, []string{"meditations.pdf"}, stats.RecentRuns[0].ProcessedFiles)
}
