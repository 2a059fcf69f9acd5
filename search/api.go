package search

import (
	"context"

	"github.com/embedx/vecsearch/vector"
)

// Metadata carries opaque per-record fields. Only the "id" field is consumed
// by this library; everything else passes through untouched.
type Metadata map[string]any

// MetadataKeyID is the one metadata field every record must carry.
const MetadataKeyID = "id"

// Record pairs a vector with its metadata for batch indexing.
type Record struct {
	Vector   vector.Vector
	Metadata Metadata
}

// ScoredResult is a single query match. Score semantics follow the metric
// the backend was configured with; for the default cosine metric it is a
// similarity in [-1, 1], higher is closer.
type ScoredResult struct {
	ID    string
	Score float64
}

// Search is the capability set every similarity-search backend provides.
// Implementations are stateless request/response beyond their open
// connection; thread safety of the connection is delegated to the underlying
// store client.
type Search interface {
	// IndexVector persists one (id, vector) record. It returns a
	// *ValidationError before any I/O when the vector is empty or contains a
	// non-finite value, or when metadata lacks a non-empty "id"; it returns
	// a *StorageError wrapping the underlying failure when the persistence
	// call fails. Duplicate-id semantics are backend-specific.
	IndexVector(ctx context.Context, vec vector.Vector, meta Metadata) error

	// IndexVectors indexes the batch in order, stopping at the first
	// failure. Records written before the failing element remain written;
	// no cross-batch rollback is attempted.
	IndexVectors(ctx context.Context, batch []Record) error

	// QuerySimilar returns up to topK best matches for the query vector,
	// ordered best-first by the backend's metric. Equal scores keep the
	// order in which the store returned the candidates. A topK <= 0 or an
	// empty store yields an empty result, never an error; an invalid query
	// vector yields a *ValidationError.
	QuerySimilar(ctx context.Context, vec vector.Vector, topK int) ([]ScoredResult, error)

	// Close releases the backend's connection or session.
	Close() error
}

// IndexAll applies s.IndexVector to each record in order and stops at the
// first failure. It is the shared implementation behind IndexVectors.
func IndexAll(ctx context.Context, s Search, batch []Record) error {
	for _, rec := range batch {
		if err := s.IndexVector(ctx, rec.Vector, rec.Metadata); err != nil {
			return err
		}
	}
	return nil
}
