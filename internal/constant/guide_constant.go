package constant

// Chat roles accepted on the wire. "model" is normalized to assistant
// before reaching a provider.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleModel     = "model"
	RoleSystem    = "system"
)

const (
	// DefaultTopK is the number of chunks retrieved when the request
	// does not specify one.
	DefaultTopK = 3

	// GreetingSimilarityThreshold filters which sources survive into a
	// greeting response. Greetings rarely need citations, so only very
	// strong matches are kept.
	GreetingSimilarityThreshold = 0.7

	// LowConfidenceThreshold marks a substantive answer as weakly
	// grounded when no retrieved source reaches it.
	LowConfidenceThreshold = 0.5
)

// EmbeddingBatchSize caps how many chunk texts are sent to the
// embedding provider in a single call.
const EmbeddingBatchSize = 32
