package numerics

// Horner evaluates a polynomial with coefficients ordered highest power
// first, as the published correlation fits list them.
func Horner(coeffs []float64, x float64) float64 {
	var v float64
	for _, c := range coeffs {
		v = v*x + c
	}
	return v
}
