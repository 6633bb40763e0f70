package rag

// Source is a retrieved passage with its provenance and similarity
// score, as handed to the grounding assembler.
type Source struct {
	Content    string
	Title      string
	ChunkId    string
	SourcePath string
	Page       *int
	Similarity float64
}

// BestSimilarity returns the highest similarity among the sources, or
// 0 when there are none.
func BestSimilarity(sources []Source) float64 {
	best := 0.0
	for _, s := range sources {
		if s.Similarity > best {
			best = s.Similarity
		}
	}
	return best
}

// FilterBySimilarity keeps only sources at or above the threshold.
func FilterBySimilarity(sources []Source, threshold float64) []Source {
	var kept []Source
	for _, s := range sources {
		if s.Similarity >= threshold {
			kept = append(kept, s)
		}
	}
	return kept
}
