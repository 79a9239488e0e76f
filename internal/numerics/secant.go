package numerics

import (
	"fmt"
	"math"
)

// Secant finds a root of f starting from x0 using the secant method with an
// automatic second point. It returns an error when the derivative estimate
// degenerates or the iteration cap is reached before |f| falls below the
// absolute tolerance.
func Secant(f func(float64) float64, x0, tol float64, maxIter int) (float64, error) {
	if tol <= 0 {
		tol = 1e-10
	}
	if maxIter <= 0 {
		maxIter = 100
	}
	x1 := x0 * 1.0001
	if x1 == x0 {
		x1 = x0 + 1e-4
	}
	f0, f1 := f(x0), f(x1)
	if math.Abs(f0) < tol {
		return x0, nil
	}
	for i := 0; i < maxIter; i++ {
		if math.Abs(f1) < tol {
			return x1, nil
		}
		den := f1 - f0
		if den == 0 {
			return 0, fmt.Errorf("secant: stalled at x=%g with f=%g", x1, f1)
		}
		x2 := x1 - f1*(x1-x0)/den
		x0, f0 = x1, f1
		x1 = x2
		f1 = f(x1)
		if math.IsNaN(f1) || math.IsInf(f1, 0) {
			return 0, fmt.Errorf("secant: function not finite at x=%g", x1)
		}
	}
	return 0, fmt.Errorf("secant: no convergence within %d iterations (last x=%g, f=%g)", maxIter, x1, f1)
}
