package exchanger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNtubesPhadkeb(t *testing.T) {
	// The 45 degree counts are published in Phadke's paper.
	expected45 := map[float64][]int{
		0.036: {805, 782, 760, 698, 680},
		0.035: {861, 838, 816, 750, 732},
	}
	for pitch, counts := range expected45 {
		for i, ntp := range []int{1, 2, 4, 6, 8} {
			n, err := NtubesPhadkeb(1.200-0.008*2, 0.028, pitch, ntp, 45)
			require.NoError(t, err)
			assert.Equal(t, counts[i], n, "pitch=%v ntp=%d", pitch, ntp)
		}
	}

	cases := []struct {
		pitch float64
		ntp   int
		angle int
		n     int
	}{
		{0.036, 2, 30, 898},
		{0.036, 2, 60, 876},
		{0.036, 6, 60, 822},
		{0.036, 8, 60, 772},
		{0.092, 8, 60, 88},
		{0.036, 8, 30, 788},
		{0.04, 6, 30, 652},
		{0.036, 8, 90, 684},
		{0.036, 2, 90, 772},
		{0.036, 6, 90, 712},
	}
	for _, tc := range cases {
		n, err := NtubesPhadkeb(1.200-0.008*2, 0.028, tc.pitch, tc.ntp, tc.angle)
		require.NoError(t, err)
		assert.Equal(t, tc.n, n, "pitch=%v ntp=%d angle=%d", tc.pitch, tc.ntp, tc.angle)
	}

	// Large bundle.
	n, err := NtubesPhadkeb(5, 0.028, 0.036, 2, 90)
	require.NoError(t, err)
	assert.Equal(t, 14842, n)

	// Partition plates consume the whole bundle.
	n, err = NtubesPhadkeb(0.004750018463796297, 0.001, 0.0015, 8, 60)
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	// Too small for even one tube.
	n, err = NtubesPhadkeb(0.01, 0.028, 0.036, 2, 45)
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	_, err = NtubesPhadkeb(1.008, 0.028, 0.036, 11, 45)
	require.Error(t, err)
}

func TestDBundleForNtubesPhadkeb(t *testing.T) {
	d, err := DBundleForNtubesPhadkeb(782, 0.028, 0.036, 2, 45)
	require.NoError(t, err)
	assert.InDelta(t, 1.1879392959379533, d, 1e-6)

	// A hair over the solved diameter always recovers the tube count.
	for _, angle := range []int{30, 45, 60, 90} {
		for _, ntp := range []int{1, 2, 4, 6, 8} {
			d, err := DBundleForNtubesPhadkeb(500, 0.01, 0.0125, ntp, angle)
			require.NoError(t, err)
			n, err := NtubesPhadkeb(d*(1+1e-9), 0.01, 0.0125, ntp, angle)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, n, 500, "angle=%d ntp=%d", angle, ntp)
		}
	}
}

func TestNtubesPerrys(t *testing.T) {
	expected := [][]int{
		{1001, 973, 914, 886},
		{819, 803, 784, 769},
		{1001, 973, 914, 886},
		{819, 803, 784, 769},
	}
	for j, angle := range []int{30, 45, 60, 90} {
		for i, ntp := range []int{1, 2, 4, 6} {
			n, err := NtubesPerrys(1.184, 0.028, ntp, angle)
			require.NoError(t, err)
			assert.Equal(t, expected[j][i], n, "angle=%d ntp=%d", angle, ntp)
		}
	}

	_, err := NtubesPerrys(1.184, 0.028, 5, 30)
	require.Error(t, err)
	_, err = NtubesPerrys(1.184, 0.028, 5, 45)
	require.Error(t, err)
}

func TestNtubesHEDH(t *testing.T) {
	expected := []int{928, 804, 928, 804}
	for i, angle := range []int{30, 45, 60, 90} {
		n, err := NtubesHEDH(1.200-0.008*2, 0.028, 0.036, angle)
		require.NoError(t, err)
		assert.Equal(t, expected[i], n, "angle=%d", angle)
	}

	_, err := NtubesHEDH(1.200-0.008*2, 0.028, 0.036, 20)
	require.Error(t, err)
	_, err = DBundleForNtubesHEDH(100, 0.028, 0.036, 20)
	require.Error(t, err)

	d, err := DBundleForNtubesHEDH(928, 0.028, 0.036, 30)
	require.NoError(t, err)
	assert.InEpsilon(t, 1.183993079564, d, 1e-9)

	// Round trips: the closed form inverts the count exactly, up to the
	// truncation at the bundle edge.
	for _, angle := range []int{30, 45, 60, 90} {
		for _, n := range []int{10, 100, 1000, 5000} {
			d, err := DBundleForNtubesHEDH(n, 0.028, 0.035, angle)
			require.NoError(t, err)
			back, err := NtubesHEDH(d*(1+1e-12), 0.028, 0.035, angle)
			require.NoError(t, err)
			assert.Equal(t, n, back, "angle=%d n=%d", angle, n)
		}
	}
}

func TestNtubesVDI(t *testing.T) {
	expected := [][]int{
		{983, 966, 929, 914, 903},
		{832, 818, 790, 778, 769},
		{983, 966, 929, 914, 903},
		{832, 818, 790, 778, 769},
	}
	for j, angle := range []int{30, 45, 60, 90} {
		for i, ntp := range []int{1, 2, 4, 6, 8} {
			n, err := NtubesVDI(1.184, 0.028, 0.036, ntp, angle)
			require.NoError(t, err)
			assert.Equal(t, expected[j][i], n, "angle=%d ntp=%d", angle, ntp)
		}
	}
	_, err := NtubesVDI(1.184, 0.028, 0.036, 5, 30)
	require.Error(t, err)
	_, err = NtubesVDI(1.184, 0.028, 0.036, 2, 40)
	require.Error(t, err)

	expectedD := [][]float64{
		{0.489981989464919, 0.5003600119829544, 0.522287673753684, 0.5311570964003711, 0.5377131635291736},
		{0.489981989464919, 0.5003600119829544, 0.522287673753684, 0.5311570964003711, 0.5377131635291736},
		{0.5326653264480428, 0.5422270203444146, 0.5625250342473964, 0.5707695340997739, 0.5768755899087357},
		{0.5326653264480428, 0.5422270203444146, 0.5625250342473964, 0.5707695340997739, 0.5768755899087357},
	}
	for j, angle := range []int{30, 60, 45, 90} {
		for i, ntp := range []int{1, 2, 4, 6, 8} {
			d, err := DForNtubesVDI(970, 0.00735, 0.015, ntp, angle)
			require.NoError(t, err)
			assert.InEpsilon(t, expectedD[j][i], d, 1e-12, "angle=%d ntp=%d", angle, ntp)
		}
	}
	_, err = DForNtubesVDI(970, 0.00735, 0.015, 5, 30)
	require.Error(t, err)
	_, err = DForNtubesVDI(970, 0.00735, 0.015, 2, 40)
	require.Error(t, err)
}

func TestNtubesDispatch(t *testing.T) {
	expected := []int{1285, 1272, 1340, 1297}
	for i, method := range NtubesMethods {
		n, err := Ntubes(1.2, 0.025, 0.025*1.25, 1, 30, method)
		require.NoError(t, err)
		assert.Equal(t, expected[i], n, "method=%s", method)
	}

	n, err := Ntubes(1.2, 0.025, 0.025*1.25, 1, 30, "")
	require.NoError(t, err)
	assert.Equal(t, 1285, n)

	_, err = Ntubes(1.2, 0.025, 0.025*1.25, 1, 30, "failure")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "valid methods")
}

func TestSizeBundleFromTubecount(t *testing.T) {
	d, err := SizeBundleFromTubecount(1285, 0.025, 0.03125, 1, 30, "")
	require.NoError(t, err)
	assert.InDelta(t, 1.1985676402390355, d, 1e-5)

	d, err = SizeBundleFromTubecount(1285, 0.025, 0.03125, 1, 30, "HEDH")
	require.NoError(t, err)
	assert.InEpsilon(t, 1.205810838411941, d, 1e-9)

	d, err = SizeBundleFromTubecount(1285, 0.025, 0.03125, 1, 30, "VDI")
	require.NoError(t, err)
	assert.InEpsilon(t, 1.1749025890472795, d, 1e-9)

	d, err = SizeBundleFromTubecount(13252, 0.028, 0.028*1.25, 2, 45, "Perry")
	require.NoError(t, err)
	assert.InDelta(t, 3.598336054740235, d, 5e-4)

	_, err = SizeBundleFromTubecount(1285, 0.025, 0.03125, 1, 30, "BADMETHOD")
	require.Error(t, err)
}

func TestPhadkebTables(t *testing.T) {
	// Loeschian numbers, https://oeis.org/A003136.
	assert.Equal(t, []int{0, 1, 3, 4, 7, 9, 12, 13, 16, 19, 21, 25},
		phadkebTriangularNs[:12])
	// Hexagonal lattice points within a circle, https://oeis.org/A038590.
	assert.Equal(t, []int{1, 7, 13, 19, 31, 37, 43, 55, 61, 73, 85, 91},
		phadkebTriangularC1s[:12])
	// Sums of two squares, https://oeis.org/A001481.
	assert.Equal(t, []int{0, 1, 2, 4, 5, 8, 9, 10, 13, 16, 17, 18},
		phadkebSquareNs[:12])
	// Square lattice points within a circle, https://oeis.org/A057961.
	assert.Equal(t, []int{1, 5, 9, 13, 21, 25, 29, 37, 45, 49, 57, 61},
		phadkebSquareC1s[:12])

	assert.Equal(t, len(phadkebTriangularNs), len(phadkebTriangularC1s))
	assert.Equal(t, len(phadkebSquareNs), len(phadkebSquareC1s))
}
