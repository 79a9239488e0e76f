package numerics

import (
	"fmt"
	"math"
)

// DefaultBrentTol is the absolute convergence tolerance used when callers
// pass a non-positive tolerance to Brent.
const DefaultBrentTol = 1e-13

// Brent finds a root of f on the bracketing interval [a, b] using Brent's
// method (inverse quadratic interpolation guarded by bisection). f(a) and
// f(b) must have opposite signs. It returns an error when the bracket is
// invalid or the iteration cap is reached before convergence.
func Brent(f func(float64) float64, a, b, tol float64, maxIter int) (float64, error) {
	if tol <= 0 {
		tol = DefaultBrentTol
	}
	if maxIter <= 0 {
		maxIter = 100
	}
	fa, fb := f(a), f(b)
	if fa == 0 {
		return a, nil
	}
	if fb == 0 {
		return b, nil
	}
	if (fa > 0) == (fb > 0) {
		return 0, fmt.Errorf("root is not bracketed on [%g, %g]: f(a)=%g, f(b)=%g", a, b, fa, fb)
	}

	c, fc := b, fb
	var d, e float64
	for i := 0; i < maxIter; i++ {
		if (fb > 0) == (fc > 0) {
			c, fc = a, fa
			d = b - a
			e = d
		}
		if math.Abs(fc) < math.Abs(fb) {
			a, b, c = b, c, b
			fa, fb, fc = fb, fc, fb
		}
		tol1 := 2*eps*math.Abs(b) + 0.5*tol
		xm := 0.5 * (c - b)
		if math.Abs(xm) <= tol1 || fb == 0 {
			return b, nil
		}
		if math.Abs(e) >= tol1 && math.Abs(fa) > math.Abs(fb) {
			// Attempt inverse quadratic interpolation.
			s := fb / fa
			var p, q float64
			if a == c {
				p = 2 * xm * s
				q = 1 - s
			} else {
				q = fa / fc
				r := fb / fc
				p = s * (2*xm*q*(q-r) - (b-a)*(r-1))
				q = (q - 1) * (r - 1) * (s - 1)
			}
			if p > 0 {
				q = -q
			}
			p = math.Abs(p)
			min1 := 3*xm*q - math.Abs(tol1*q)
			min2 := math.Abs(e * q)
			if 2*p < math.Min(min1, min2) {
				e = d
				d = p / q
			} else {
				d = xm
				e = d
			}
		} else {
			d = xm
			e = d
		}
		a, fa = b, fb
		if math.Abs(d) > tol1 {
			b += d
		} else {
			b += math.Copysign(tol1, xm)
		}
		fb = f(b)
	}
	return 0, fmt.Errorf("brent: no convergence within %d iterations on [%g, %g]", maxIter, a, c)
}

// eps is the double-precision machine epsilon.
const eps = 2.220446049250313e-16

// Bisect finds a root of f on [a, b] by bisection. It requires a sign
// change on the interval and runs until |b-a| shrinks below xtol plus a
// relative floor, or the iteration cap is hit.
func Bisect(f func(float64) float64, a, b, xtol float64, maxIter int) (float64, error) {
	if xtol <= 0 {
		xtol = 2e-12
	}
	if maxIter <= 0 {
		maxIter = 200
	}
	const rtol = 4 * eps
	fa, fb := f(a), f(b)
	if fa == 0 {
		return a, nil
	}
	if fb == 0 {
		return b, nil
	}
	if (fa > 0) == (fb > 0) {
		return 0, fmt.Errorf("root is not bracketed on [%g, %g]: f(a)=%g, f(b)=%g", a, b, fa, fb)
	}
	dm := b - a
	xm := a
	for i := 0; i < maxIter; i++ {
		dm *= 0.5
		xm = a + dm
		fm := f(xm)
		if fm*fa >= 0 {
			a = xm
		}
		if fm == 0 || math.Abs(dm) < xtol+rtol*math.Abs(xm) {
			return xm, nil
		}
	}
	return xm, nil
}
