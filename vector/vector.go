package vector

import (
	"fmt"
	"math"
)

// Vector is an embedding vector. Dimensionality is implicit; it is fixed at
// use time and must match between a query vector and every stored vector it
// is compared against.
type Vector []float32

// Validate reports whether the vector is usable as a record or query payload:
// non-empty and composed entirely of finite values.
func (v Vector) Validate() error {
	if len(v) == 0 {
		return fmt.Errorf("vector: empty vector")
	}
	for i, x := range v {
		f := float64(x)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return fmt.Errorf("vector: non-finite value %v at index %d", x, i)
		}
	}
	return nil
}

// Clone returns an independent copy of the vector.
func (v Vector) Clone() Vector {
	if v == nil {
		return nil
	}
	return append(Vector(nil), v...)
}
