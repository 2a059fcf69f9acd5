package search

import (
	"errors"
	"math"
	"testing"

	"github.com/embedx/vecsearch/vector"
)

func TestValidateVector(t *testing.T) {
	if err := ValidateVector("vector", vector.Vector{0.1, 0.2}); err != nil {
		t.Fatalf("valid vector rejected: %v", err)
	}

	var verr *ValidationError
	if err := ValidateVector("vector", nil); !errors.As(err, &verr) {
		t.Fatalf("empty vector: got %v, want *ValidationError", err)
	}
	if err := ValidateVector("query vector", vector.Vector{0.1, float32(math.NaN())}); !errors.As(err, &verr) {
		t.Fatalf("NaN element: got %v, want *ValidationError", err)
	}
	if err := ValidateVector("vector", vector.Vector{float32(math.Inf(-1))}); !errors.As(err, &verr) {
		t.Fatalf("-Inf element: got %v, want *ValidationError", err)
	}
}

func TestValidateMetadata(t *testing.T) {
	id, err := ValidateMetadata(Metadata{"id": "doc-1", "source": "test"})
	if err != nil {
		t.Fatalf("valid metadata rejected: %v", err)
	}
	if id != "doc-1" {
		t.Fatalf("id = %q, want doc-1", id)
	}

	var verr *ValidationError
	if _, err := ValidateMetadata(Metadata{"name": "x"}); !errors.As(err, &verr) {
		t.Fatalf("missing id: got %v, want *ValidationError", err)
	}
	if _, err := ValidateMetadata(Metadata{"id": 42}); !errors.As(err, &verr) {
		t.Fatalf("non-string id: got %v, want *ValidationError", err)
	}
	if _, err := ValidateMetadata(Metadata{"id": ""}); !errors.As(err, &verr) {
		t.Fatalf("empty id: got %v, want *ValidationError", err)
	}
}

func TestStorageError_Unwrap(t *testing.T) {
	cause := errors.New("connection reset")
	err := &StorageError{Op: "insert into vectors", Err: cause}
	if !errors.Is(err, cause) {
		t.Fatalf("StorageError does not unwrap to its cause")
	}
}
