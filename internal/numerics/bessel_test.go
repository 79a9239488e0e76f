package numerics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Reference values from Abramowitz & Stegun tables 9.8 and 9.11.
func TestModifiedBessel(t *testing.T) {
	cases := []struct {
		name string
		f    func(float64) float64
		x    float64
		want float64
	}{
		{"I0(1)", BesselI0, 1, 1.2660658777520084},
		{"I0(5)", BesselI0, 5, 27.239871823604442},
		{"I0(10)", BesselI0, 10, 2815.7166284662544},
		{"I1(1)", BesselI1, 1, 0.565159103992485},
		{"I1(10)", BesselI1, 10, 2670.988303701255},
		{"K0(1)", BesselK0, 1, 0.42102443824070834},
		{"K0(5)", BesselK0, 5, 0.003691098334042594},
		{"K0(10)", BesselK0, 10, 1.778006231616765e-05},
		{"K1(1)", BesselK1, 1, 0.6019072301972346},
		{"K1(10)", BesselK1, 10, 1.8648773453825587e-05},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InEpsilon(t, tc.want, tc.f(tc.x), 5e-7)
		})
	}
}

func TestBesselI1Negative(t *testing.T) {
	assert.InEpsilon(t, -0.565159103992485, BesselI1(-1), 5e-7)
}
