package recommendation

import (
	"math"
	"testing"
)

func TestCosine(t *testing.T) {
	cases := []struct {
		name string
		a, b []float64
		want float64
	}{
		{"identical", []float64{1, 2, 3}, []float64{1, 2, 3}, 1},
		{"opposite", []float64{1, 0}, []float64{-1, 0}, -1},
		{"orthogonal", []float64{1, 0}, []float64{0, 1}, 0},
		{"zero vector", []float64{0, 0}, []float64{1, 2}, 0},
		{"length mismatch", []float64{1, 2}, []float64{1, 2, 3}, 0},
		{"empty", nil, nil, 0},
	}

	for _, tc := range cases {
		if got := cosine(tc.a, tc.b); math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("%s: cosine = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestCosineScaleInvariant(t *testing.T) {
	a := []float64{0.3, -0.7, 0.2}
	b := []float64{0.6, -1.4, 0.4}

	if got := cosine(a, b); math.Abs(got-1) > 1e-9 {
		t.Errorf("parallel vectors should have similarity 1, got %v", got)
	}
}
