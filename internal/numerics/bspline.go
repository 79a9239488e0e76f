package numerics

// B-spline evaluation over fixed knot/coefficient sets. Several chart-based
// correlations embed published curve and surface fits as spline knots and
// coefficients; these evaluators reproduce those fits exactly.

// bsplineSpan locates the knot span index i with t[i] <= x < t[i+1] for a
// spline of degree k with n basis functions, clamping x into the valid
// range so evaluation at (or beyond) the boundary knots stays finite.
func bsplineSpan(t []float64, n, k int, x float64) (int, float64) {
	if x <= t[k] {
		x = t[k]
		return k, x
	}
	if x >= t[n] {
		x = t[n]
		// Rightmost non-empty span.
		i := n - 1
		for i > k && t[i] == t[n] {
			i--
		}
		return i, x
	}
	lo, hi := k, n
	for hi-lo > 1 {
		mid := (lo + hi) / 2
		if t[mid] <= x {
			lo = mid
		} else {
			hi = mid
		}
	}
	return lo, x
}

// bsplineBasis computes the k+1 non-vanishing basis functions at x for the
// span returned by bsplineSpan (the Cox-de Boor recursion).
func bsplineBasis(t []float64, span, k int, x float64) []float64 {
	ndu := make([]float64, k+1)
	left := make([]float64, k+1)
	right := make([]float64, k+1)
	ndu[0] = 1.0
	for j := 1; j <= k; j++ {
		left[j] = x - t[span+1-j]
		right[j] = t[span+j] - x
		saved := 0.0
		for r := 0; r < j; r++ {
			temp := ndu[r] / (right[r+1] + left[j-r])
			ndu[r] = saved + right[r+1]*temp
			saved = left[j-r] * temp
		}
		ndu[j] = saved
	}
	return ndu
}

// SplineEval evaluates a 1-D B-spline with knot vector t, coefficients c and
// degree k at x. Points outside the knot range evaluate at the boundary.
func SplineEval(t, c []float64, k int, x float64) float64 {
	n := len(c)
	span, xc := bsplineSpan(t, n, k, x)
	basis := bsplineBasis(t, span, k, xc)
	var v float64
	for r := 0; r <= k; r++ {
		v += c[span-k+r] * basis[r]
	}
	return v
}

// Spline2DEval evaluates a tensor-product B-spline surface with knot vectors
// tx, ty, row-major coefficients c (len (len(tx)-kx-1)*(len(ty)-ky-1)) and
// degrees kx, ky at (x, y). Points outside the knot rectangle evaluate at
// the nearest boundary.
func Spline2DEval(tx, ty, c []float64, kx, ky int, x, y float64) float64 {
	nx := len(tx) - kx - 1
	ny := len(ty) - ky - 1
	spanX, xc := bsplineSpan(tx, nx, kx, x)
	spanY, yc := bsplineSpan(ty, ny, ky, y)
	bx := bsplineBasis(tx, spanX, kx, xc)
	by := bsplineBasis(ty, spanY, ky, yc)
	var v float64
	for i := 0; i <= kx; i++ {
		ci := spanX - kx + i
		var row float64
		for j := 0; j <= ky; j++ {
			cj := spanY - ky + j
			row += c[ci*ny+cj] * by[j]
		}
		v += bx[i] * row
	}
	return v
}
