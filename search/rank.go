package search

import (
	"math"
	"sort"

	"github.com/embedx/vecsearch/metric"
	"github.com/embedx/vecsearch/vector"
)

// Candidate is a stored (id, vector) row fetched from a backing store for
// client-side scoring.
type Candidate struct {
	ID     string
	Vector vector.Vector
}

// Rank scores every candidate against the query with m, sorts best-first in
// the metric's direction, and returns at most topK results. The sort is
// stable: candidates with equal scores keep the order in which the store
// returned them. Candidates whose dimensionality differs from the query, or
// whose score is NaN (e.g. cosine against a zero-magnitude vector), are
// skipped.
func Rank(m metric.Metric, query vector.Vector, candidates []Candidate, topK int) []ScoredResult {
	if topK <= 0 || len(candidates) == 0 {
		return nil
	}
	scored := make([]ScoredResult, 0, len(candidates))
	for _, c := range candidates {
		if len(c.Vector) != len(query) {
			continue
		}
		s := m.Score(query, c.Vector)
		if math.IsNaN(s) {
			continue
		}
		scored = append(scored, ScoredResult{ID: c.ID, Score: s})
	}
	if m.Higher() {
		sort.SliceStable(scored, func(i, j int) bool { return scored[i].Score > scored[j].Score })
	} else {
		sort.SliceStable(scored, func(i, j int) bool { return scored[i].Score < scored[j].Score })
	}
	if topK < len(scored) {
		scored = scored[:topK]
	}
	return scored
}

// ScoreInOrder annotates candidates with their score against the query while
// preserving the candidate order, returning at most topK results. Backends
// use it when the store's own ordering is authoritative. The same skip rules
// as Rank apply.
func ScoreInOrder(m metric.Metric, query vector.Vector, candidates []Candidate, topK int) []ScoredResult {
	if topK <= 0 || len(candidates) == 0 {
		return nil
	}
	scored := make([]ScoredResult, 0, len(candidates))
	for _, c := range candidates {
		if len(c.Vector) != len(query) {
			continue
		}
		s := m.Score(query, c.Vector)
		if math.IsNaN(s) {
			continue
		}
		scored = append(scored, ScoredResult{ID: c.ID, Score: s})
		if len(scored) == topK {
			break
		}
	}
	return scored
}
