package rag

import "testing"

func TestBestSimilarity(t *testing.T) {
	if got := BestSimilarity(nil); got != 0 {
		t.Errorf("BestSimilarity(nil) = %v, want 0", got)
	}

	sources := []Source{
		{ChunkId: "a", Similarity: 0.41},
		{ChunkId: "b", Similarity: 0.87},
		{ChunkId: "c", Similarity: 0.63},
	}
	if got := BestSimilarity(sources); got != 0.87 {
		t.Errorf("BestSimilarity = %v, want 0.87", got)
	}
}

func TestFilterBySimilarity(t *testing.T) {
	sources := []Source{
		{ChunkId: "a", Similarity: 0.41},
		{ChunkId: "b", Similarity: 0.7},
		{ChunkId: "c", Similarity: 0.92},
	}

	kept := FilterBySimilarity(sources, 0.7)
	if len(kept) != 2 {
		t.Fatalf("got %d sources, want 2", len(kept))
	}
	// Threshold is inclusive.
	if kept[0].ChunkId != "b" || kept[1].ChunkId != "c" {
		t.Errorf("kept wrong sources: %v", kept)
	}

	if got := FilterBySimilarity(sources, 0.99); got != nil {
		t.Errorf("expected nil when nothing passes, got %v", got)
	}
}
