package ai

import (
	"context"

	"github.com/poiesic/staffmatch/core"
)

// Embedder generates vector embeddings from text for semantic similarity search.
// Implementations must be thread-safe for concurrent use.
type Embedder interface {
	// EmbedText generates a vector embedding for a single text string.
	// The returned vector represents the semantic meaning of the text.
	// Returns an error if the embedding generation fails.
	EmbedText(ctx context.Context, text string) ([]float32, error)

	// EmbedTexts generates vector embeddings for multiple text strings in a batch.
	// Batch processing is more efficient than calling EmbedText multiple times.
	// The returned slice contains embeddings in the same order as the input texts.
	// Returns an error if any embedding generation fails.
	EmbedTexts(ctx context.Context, texts []string) ([][]float32, error)
}

// ResponseGenerator turns ranked staffing candidates into natural-language text.
// Implementations must be thread-safe for concurrent use.
type ResponseGenerator interface {
	// GenerateResponse produces a recommendation for the query from the ranked
	// candidate list. Implementations backed by an external model may fail
	// (timeout, quota, malformed reply); callers are expected to fall back to
	// a deterministic strategy on any error rather than surface it.
	GenerateResponse(ctx context.Context, query string, candidates []*core.SearchResult) (string, error)
}

// AIProvider aggregates AI services for convenient initialization and lifecycle management.
// A provider creates and manages Embedder and ResponseGenerator instances,
// ensuring they share configuration and resources appropriately.
type AIProvider interface {
	// Embedder returns the text embedding service.
	// The returned Embedder is safe for concurrent use.
	Embedder() Embedder

	// ResponseGenerator returns the external text generation service, or nil
	// when generation is disabled by configuration.
	ResponseGenerator() ResponseGenerator

	// Close releases resources held by the provider and its services.
	// After Close is called, the provider and its services should not be used.
	Close() error
}
