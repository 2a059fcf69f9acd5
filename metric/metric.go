package metric

import (
	"fmt"
	"strings"

	"github.com/viant/vec/search"

	"github.com/embedx/vecsearch/vector"
)

// Metric scores how close two vectors are.
type Metric interface {
	// Score computes the score between a and b. The vectors are assumed to
	// have the same dimensionality; zero-magnitude inputs are a caller
	// hazard for angle-based metrics and may yield NaN.
	Score(a, b vector.Vector) float64

	// Higher reports whether a higher score means closer (similarity) as
	// opposed to lower (distance). Backends sort accordingly.
	Higher() bool

	// String returns the canonical metric name accepted by Parse.
	String() string
}

// Built-in metrics.
var (
	// Cosine is cosine similarity, range [-1, 1], higher is closer. It is
	// the default metric of every backend.
	Cosine Metric = cosine{}

	// Euclidean is the L2 distance, range [0, inf), lower is closer.
	Euclidean Metric = euclidean{}

	// Dot is the raw dot product, higher is closer.
	Dot Metric = dot{}
)

// Parse resolves a metric by name: "cosine", "euclidean" (or "l2"), "dot".
func Parse(name string) (Metric, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "cosine":
		return Cosine, nil
	case "euclidean", "l2":
		return Euclidean, nil
	case "dot", "dotproduct", "dot_product":
		return Dot, nil
	default:
		return nil, fmt.Errorf("metric: unknown metric %q", name)
	}
}

type cosine struct{}

func (cosine) Score(a, b vector.Vector) float64 {
	return 1 - float64(search.Float32s(a).CosineDistance(search.Float32s(b)))
}

func (cosine) Higher() bool   { return true }
func (cosine) String() string { return "cosine" }

type euclidean struct{}

func (euclidean) Score(a, b vector.Vector) float64 {
	return float64(search.Float32s(a).EuclideanDistance(search.Float32s(b)))
}

func (euclidean) Higher() bool   { return false }
func (euclidean) String() string { return "euclidean" }

type dot struct{}

func (dot) Score(a, b vector.Vector) float64 {
	var s float64
	for i := range a {
		s += float64(a[i]) * float64(b[i])
	}
	return s
}

func (dot) Higher() bool   { return true }
func (dot) String() string { return "dot" }
