package vector

import (
	"math"
	"testing"
)

func TestEncodeDecode_RoundTrip(t *testing.T) {
	orig := Vector{0.0, 1.5, -2.25, 3.75}

	b, err := Encode(orig)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	decoded, err := Decode(b)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if len(decoded) != len(orig) {
		t.Fatalf("decoded length = %d, want %d", len(decoded), len(orig))
	}
	for i := range orig {
		if got, want := decoded[i], orig[i]; got != want {
			t.Fatalf("decoded[%d] = %v, want %v", i, got, want)
		}
	}
}

func TestEncodeDecode_Empty(t *testing.T) {
	b, err := Encode(nil)
	if err != nil {
		t.Fatalf("Encode(nil) failed: %v", err)
	}
	if len(b) != 0 {
		t.Fatalf("expected empty blob for nil vector, got len=%d", len(b))
	}

	vec, err := Decode(nil)
	if err != nil {
		t.Fatalf("Decode(nil) failed: %v", err)
	}
	if len(vec) != 0 {
		t.Fatalf("expected empty vector for nil blob, got len=%d", len(vec))
	}
}

func TestDecode_InvalidLength(t *testing.T) {
	if _, err := Decode([]byte{1, 2, 3}); err == nil {
		t.Fatalf("expected error for blob length not a multiple of 4")
	}
}

func TestValidate(t *testing.T) {
	if err := (Vector{1, 0}).Validate(); err != nil {
		t.Fatalf("Validate([1,0]) failed: %v", err)
	}
	if err := (Vector{}).Validate(); err == nil {
		t.Fatalf("expected error for empty vector")
	}
	if err := (Vector{0.1, float32(math.NaN())}).Validate(); err == nil {
		t.Fatalf("expected error for NaN element")
	}
	if err := (Vector{float32(math.Inf(1)), 1}).Validate(); err == nil {
		t.Fatalf("expected error for infinite element")
	}
}
