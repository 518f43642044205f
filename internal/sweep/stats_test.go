package sweep

import (
	"math"
	"testing"
)

func TestMeanCI95(t *testing.T) {
	cases := []struct {
		name     string
		xs       []float64
		mean     float64
		half     float64
		absEqual bool
	}{
		{"empty", nil, 0, 0, true},
		{"single sample", []float64{42}, 0, 0, true},
		{"constant samples", []float64{5, 5, 5, 5}, 5, 0, true},
		// stddev of {1,2,3,4} is sqrt(5/3); half = 1.96 * sqrt(5/3) / 2.
		{"known spread", []float64{1, 2, 3, 4}, 2.5, 1.96 * math.Sqrt(5.0/3.0) / 2, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			mean, half := MeanCI95(tc.xs)
			if tc.absEqual {
				if mean != tc.mean || half != tc.half {
					t.Fatalf("MeanCI95 = (%v, %v), want (%v, %v)", mean, half, tc.mean, tc.half)
				}
				return
			}
			if math.Abs(mean-tc.mean) > 1e-9 || math.Abs(half-tc.half) > 1e-9 {
				t.Fatalf("MeanCI95 = (%v, %v), want (%v, %v)", mean, half, tc.mean, tc.half)
			}
		})
	}
}
