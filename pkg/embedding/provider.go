package embedding

import "context"

// EmbeddingProvider defines the interface for generating text embeddings.
// EmbedDocuments embeds passages for indexing, EmbedQuery embeds a search
// query. Both return vectors of the provider's fixed dimensionality.
type EmbeddingProvider interface {
	EmbedDocuments(ctx context.Context, texts []string) ([][]float32, error)
	EmbedQuery(ctx context.Context, text string) ([]float32, error)
}
