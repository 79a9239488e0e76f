package numerics

import "sort"

// Bilinear interpolates z over the rectangular grid defined by ascending xs
// and ys, with z indexed as z[i][j] = value at (xs[i], ys[j]). Points outside
// the grid clamp to the nearest edge, matching how the tabulated chart data
// is published.
func Bilinear(xs, ys []float64, z [][]float64, x, y float64) float64 {
	i := cellIndex(xs, x)
	j := cellIndex(ys, y)

	x0, x1 := xs[i], xs[i+1]
	y0, y1 := ys[j], ys[j+1]

	tx := clamp01((x - x0) / (x1 - x0))
	ty := clamp01((y - y0) / (y1 - y0))

	z00, z01 := z[i][j], z[i][j+1]
	z10, z11 := z[i+1][j], z[i+1][j+1]

	return z00*(1-tx)*(1-ty) + z10*tx*(1-ty) + z01*(1-tx)*ty + z11*tx*ty
}

// Interp mirrors one-dimensional table lookup with end clamping: values of x
// below xs[0] return ys[0], above xs[len-1] return the last entry, and
// interior points interpolate linearly.
func Interp(x float64, xs, ys []float64) float64 {
	if x <= xs[0] {
		return ys[0]
	}
	n := len(xs)
	if x >= xs[n-1] {
		return ys[n-1]
	}
	i := sort.SearchFloat64s(xs, x)
	if xs[i] == x {
		return ys[i]
	}
	t := (x - xs[i-1]) / (xs[i] - xs[i-1])
	return ys[i-1] + t*(ys[i]-ys[i-1])
}

func cellIndex(xs []float64, x float64) int {
	i := sort.SearchFloat64s(xs, x) - 1
	if i < 0 {
		i = 0
	}
	if i > len(xs)-2 {
		i = len(xs) - 2
	}
	return i
}

func clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}
