package stats

import (
	"math"
	"testing"
)

func TestClamp(t *testing.T) {
	if got := Clamp(5.0, 0, 1); got != 1 {
		t.Fatalf("Clamp(5, 0, 1) = %f, want 1", got)
	}
	if got := Clamp(-3, -2, 2); got != -2 {
		t.Fatalf("Clamp(-3, -2, 2) = %d, want -2", got)
	}
	if got := Clamp(0.25, 0, 1); got != 0.25 {
		t.Fatalf("Clamp(0.25, 0, 1) = %f, want 0.25", got)
	}
}

func TestAggregates(t *testing.T) {
	values := []float64{4, 1, 3, 2}
	if Mean(values) != 2.5 {
		t.Fatalf("Mean = %f, want 2.5", Mean(values))
	}
	if Median(values) != 2.5 {
		t.Fatalf("Median = %f, want 2.5", Median(values))
	}
	if Min(values) != 1 || Max(values) != 4 {
		t.Fatalf("Min/Max = %f/%f, want 1/4", Min(values), Max(values))
	}
	if values[0] != 4 {
		t.Fatal("Median must not reorder its input")
	}
	if Mean(nil) != 0 || Median(nil) != 0 {
		t.Fatal("empty input should aggregate to 0")
	}
}

func TestNormalizedEntropy(t *testing.T) {
	if got := NormalizedEntropy([]float64{10}, 12); got != 0 {
		t.Fatalf("single category entropy = %f, want 0", got)
	}
	got := NormalizedEntropy([]float64{1, 1, 1, 1}, 4)
	if math.Abs(got-1) > 1e-12 {
		t.Fatalf("uniform entropy = %f, want 1", got)
	}
	if NormalizedEntropy(nil, 12) != 0 {
		t.Fatal("empty histogram should have 0 entropy")
	}
}
