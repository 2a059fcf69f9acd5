package embedding

import (
	"context"

	"github.com/embedx/vecsearch/vector"
)

// Embedder converts free-form text into an embedding vector.
type Embedder interface {
	EmbedText(ctx context.Context, text string) (vector.Vector, error)
}

// EmbedFunc adapts a plain function to the Embedder interface.
//
// Implementations can call any embedding provider (OpenAI, a local model,
// other cloud APIs) as long as they return a finite numeric vector.
type EmbedFunc func(ctx context.Context, text string) (vector.Vector, error)

// EmbedText calls f.
func (f EmbedFunc) EmbedText(ctx context.Context, text string) (vector.Vector, error) {
	return f(ctx, text)
}
