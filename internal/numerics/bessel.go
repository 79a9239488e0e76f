package numerics

import "math"

// Modified Bessel functions of the first and second kind, orders 0 and 1,
// from the Abramowitz & Stegun §9.8 rational fits. Absolute accuracy is
// better than 2e-7 over the full domain, which is well inside the accuracy
// of the correlations that consume them.

// BesselI0 returns the modified Bessel function of the first kind, order 0.
func BesselI0(x float64) float64 {
	ax := math.Abs(x)
	if ax < 3.75 {
		y := x / 3.75
		y *= y
		return 1.0 + y*(3.5156229+y*(3.0899424+y*(1.2067492+
			y*(0.2659732+y*(0.360768e-1+y*0.45813e-2)))))
	}
	y := 3.75 / ax
	return (math.Exp(ax) / math.Sqrt(ax)) * (0.39894228 + y*(0.1328592e-1+
		y*(0.225319e-2+y*(-0.157565e-2+y*(0.916281e-2+y*(-0.2057706e-1+
			y*(0.2635537e-1+y*(-0.1647633e-1+y*0.392377e-2))))))))
}

// BesselI1 returns the modified Bessel function of the first kind, order 1.
func BesselI1(x float64) float64 {
	ax := math.Abs(x)
	var ans float64
	if ax < 3.75 {
		y := x / 3.75
		y *= y
		ans = ax * (0.5 + y*(0.87890594+y*(0.51498869+y*(0.15084934+
			y*(0.2658733e-1+y*(0.301532e-2+y*0.32411e-3))))))
	} else {
		y := 3.75 / ax
		a := 0.2282967e-1 + y*(-0.2895312e-1+y*(0.1787654e-1-y*0.420059e-2))
		b := 0.39894228 + y*(-0.3988024e-1+y*(-0.362018e-2+
			y*(0.163801e-2+y*(-0.1031555e-1+y*a))))
		ans = b * math.Exp(ax) / math.Sqrt(ax)
	}
	if x < 0 {
		return -ans
	}
	return ans
}

// BesselK0 returns the modified Bessel function of the second kind, order 0.
// x must be positive.
func BesselK0(x float64) float64 {
	if x <= 2.0 {
		y := x * x / 4.0
		return (-math.Log(x/2.0))*BesselI0(x) + (-0.57721566 + y*(0.42278420+
			y*(0.23069756+y*(0.3488590e-1+y*(0.262698e-2+
				y*(0.10750e-3+y*0.74e-5))))))
	}
	y := 2.0 / x
	return (math.Exp(-x) / math.Sqrt(x)) * (1.25331414 + y*(-0.7832358e-1+
		y*(0.2189568e-1+y*(-0.1062446e-1+y*(0.587872e-2+
			y*(-0.251540e-2+y*0.53208e-3))))))
}

// BesselK1 returns the modified Bessel function of the second kind, order 1.
// x must be positive.
func BesselK1(x float64) float64 {
	if x <= 2.0 {
		y := x * x / 4.0
		return (math.Log(x/2.0))*BesselI1(x) + (1.0/x)*(1.0+y*(0.15443144+
			y*(-0.67278579+y*(-0.18156897+y*(-0.1919402e-1+
				y*(-0.110404e-2+y*(-0.4686e-4)))))))
	}
	y := 2.0 / x
	return (math.Exp(-x) / math.Sqrt(x)) * (1.25331414 + y*(0.23498619+
		y*(-0.3655620e-1+y*(0.1504268e-1+y*(-0.780353e-2+
			y*(0.325614e-2+y*(-0.68245e-3)))))))
}
