package embedding

import "context"

// EmbeddingProvider defines the interface for generating text embeddings.
// One call per expanded angle text; callers fan out and treat any single
// failure as a hard retrieval error.
type EmbeddingProvider interface {
	Generate(ctx context.Context, text string) ([]float32, error)
}
