package search

import (
	"fmt"
	"math"

	"github.com/embedx/vecsearch/vector"
)

// ValidateVector checks that vec is a non-empty sequence of finite values.
// field names the input in the resulting error ("vector" or "query vector").
func ValidateVector(field string, vec vector.Vector) error {
	if len(vec) == 0 {
		return &ValidationError{Field: field, Reason: "must be a non-empty vector"}
	}
	for i, x := range vec {
		f := float64(x)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return &ValidationError{Field: field, Reason: fmt.Sprintf("non-finite value at index %d", i)}
		}
	}
	return nil
}

// ValidateMetadata checks that meta carries a non-empty string "id" and
// returns it.
func ValidateMetadata(meta Metadata) (string, error) {
	raw, ok := meta[MetadataKeyID]
	if !ok {
		return "", &ValidationError{Field: "metadata", Reason: `missing "id" field`}
	}
	id, ok := raw.(string)
	if !ok || id == "" {
		return "", &ValidationError{Field: "metadata", Reason: `"id" must be a non-empty string`}
	}
	return id, nil
}
