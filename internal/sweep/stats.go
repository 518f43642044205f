package sweep

import "math"

// MeanCI95 returns the sample mean and the 95% confidence half-width
// (1.96 × sample stddev / √n). Fewer than two samples yield exactly (0, 0)
// so the output schema stays stable for degenerate cells.
func MeanCI95(xs []float64) (mean, half float64) {
	n := len(xs)
	if n < 2 {
		return 0, 0
	}
	var sum float64
	for _, x := range xs {
		sum += x
	}
	mean = sum / float64(n)

	var sq float64
	for _, x := range xs {
		d := x - mean
		sq += d * d
	}
	stddev := math.Sqrt(sq / float64(n-1))
	half = 1.96 * stddev / math.Sqrt(float64(n))
	return mean, half
}
