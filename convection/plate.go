package convection

import "math"

// Chevron-angle breakpoints of the Kumar plate exchanger correlation, with
// the fitted constants per angle and Reynolds range.
var (
	kumarBetas = []float64{30, 45, 50, 60, 65}

	kumarMs = [][]float64{
		{0.349, 0.663},
		{0.349, 0.598, 0.663},
		{0.333, 0.591, 0.732},
		{0.326, 0.529, 0.703},
		{0.326, 0.503, 0.718},
	}
	kumarC1s = [][]float64{
		{0.718, 0.348},
		{0.718, 0.400, 0.300},
		{0.630, 0.291, 0.130},
		{0.562, 0.306, 0.108},
		{0.562, 0.331, 0.087},
	}
	kumarNuRes = [][]float64{
		{10.0},
		{10.0, 100.0},
		{20.0, 300.0},
		{20.0, 400.0},
		{20.0, 500.0},
	}
)

// NuPlateKumar returns the Nusselt number of flow between chevron plates of a
// plate heat exchanger after Kumar (1984), selecting fitted constants by
// chevron angle (degrees from horizontal) and Reynolds range. Angles above
// the largest tabulated band use its constants.
func NuPlateKumar(re, pr, chevronAngle float64) float64 {
	idx := len(kumarBetas) - 1
	for i, beta := range kumarBetas {
		if chevronAngle <= beta {
			idx = i
			break
		}
	}
	c1s, ms, ranges := kumarC1s[idx], kumarMs[idx], kumarNuRes[idx]
	j := len(ranges) - 1
	for k, limit := range ranges {
		if re <= limit {
			j = k
			break
		}
	}
	// The constant tables hold one more entry than the Re breakpoints.
	if re > ranges[len(ranges)-1] {
		j = len(ranges)
	}
	c1, m := c1s[j], ms[j]
	return c1 * math.Pow(re, m) * math.Pow(pr, 0.33)
}
