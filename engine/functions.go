package engine

import (
	"database/sql"
	"database/sql/driver"
	"fmt"

	sqlite "modernc.org/sqlite"

	"github.com/embedx/vecsearch/metric"
	"github.com/embedx/vecsearch/vector"
)

// RegisterSimilarityFunctions registers vec_cosine and vec_l2 with the driver
// so they are available on new connections opened after this call. Both take
// two embedding BLOBs (vector.Encode layout) and delegate to the metric
// package: vec_cosine returns cosine similarity, vec_l2 the Euclidean
// distance.
// Note: existing open connections will not see new functions.
func RegisterSimilarityFunctions(_ *sql.DB) error {
	// Idempotent registration; driver rejects duplicates but we ignore errors silently here.
	_ = sqlite.RegisterDeterministicScalarFunction("vec_cosine", 2, scoreImpl("vec_cosine", metric.Cosine))
	_ = sqlite.RegisterDeterministicScalarFunction("vec_l2", 2, scoreImpl("vec_l2", metric.Euclidean))
	return nil
}

func asEmbedding(arg driver.Value) (vector.Vector, error) {
	switch v := arg.(type) {
	case nil:
		return nil, nil
	case []byte:
		return vector.Decode(v)
	default:
		return nil, fmt.Errorf("engine: unsupported argument type %T for embedding; want BLOB", arg)
	}
}

func scoreImpl(name string, m metric.Metric) func(*sqlite.FunctionContext, []driver.Value) (driver.Value, error) {
	return func(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
		if len(args) != 2 {
			return nil, fmt.Errorf("%s: expected 2 arguments, got %d", name, len(args))
		}
		a, err := asEmbedding(args[0])
		if err != nil {
			return nil, err
		}
		b, err := asEmbedding(args[1])
		if err != nil {
			return nil, err
		}
		if a == nil || b == nil {
			return nil, nil
		}
		if len(a) != len(b) {
			return nil, fmt.Errorf("%s: dimension mismatch %d vs %d", name, len(a), len(b))
		}
		return m.Score(a, b), nil
	}
}
