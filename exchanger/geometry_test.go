package exchanger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckTubingTEMA(t *testing.T) {
	assert.False(t, CheckTubingTEMA(2, 22))
	assert.True(t, CheckTubingTEMA(0.375, 22))
	assert.False(t, CheckTubingTEMA(0.123, 22))
}

func TestGetTubeTEMA(t *testing.T) {
	t.Run("tabulated pairs resolve exactly", func(t *testing.T) {
		for i := range temaTubingNPS {
			tube, err := GetTubeTEMA(TEMATubeQuery{NPS: temaTubingNPS[i], BWG: temaTubingBWG[i]})
			require.NoError(t, err)
			assert.InDelta(t, temaTubingDo[i], tube.Do, 1e-12)
			assert.InDelta(t, temaTubingT[i], tube.T, 1e-12)
			assert.InDelta(t, temaTubingDi[i], tube.Di, 1e-9)
		}
	})

	t.Run("by outer diameter and gauge", func(t *testing.T) {
		tube, err := GetTubeTEMA(TEMATubeQuery{Do: 0.0254, BWG: 16})
		require.NoError(t, err)
		assert.InDelta(t, 1, tube.NPS, 1e-12)
		assert.InDelta(t, 0.001651, tube.T, 1e-12)
		assert.InDelta(t, 0.022098, tube.Di, 1e-9)
	})

	t.Run("by inner diameter and gauge", func(t *testing.T) {
		tube, err := GetTubeTEMA(TEMATubeQuery{Di: 0.022098, BWG: 16})
		require.NoError(t, err)
		assert.InDelta(t, 0.0254, tube.Do, 1e-9)
	})

	t.Run("by diameters alone", func(t *testing.T) {
		tube, err := GetTubeTEMA(TEMATubeQuery{Do: 0.0254, Di: 0.022098})
		require.NoError(t, err)
		assert.Equal(t, 16, tube.BWG)
	})

	t.Run("by minimum wall", func(t *testing.T) {
		// The thinnest listed wall at least 2 mm thick for 1 in tube
		// is BWG 12.
		tube, err := GetTubeTEMA(TEMATubeQuery{NPS: 1, Tmin: 0.002108})
		require.NoError(t, err)
		assert.Equal(t, 14, tube.BWG)

		tube, err = GetTubeTEMA(TEMATubeQuery{NPS: 1, Tmin: 0.0022})
		require.NoError(t, err)
		assert.Equal(t, 12, tube.BWG)

		_, err = GetTubeTEMA(TEMATubeQuery{NPS: 1, Tmin: 0.005})
		require.Error(t, err)
	})

	t.Run("bare size takes the thickest wall", func(t *testing.T) {
		tube, err := GetTubeTEMA(TEMATubeQuery{NPS: 1.25})
		require.NoError(t, err)
		assert.Equal(t, 10, tube.BWG)
		assert.InDelta(t, 0.003404, tube.T, 1e-12)
	})

	t.Run("errors", func(t *testing.T) {
		_, err := GetTubeTEMA(TEMATubeQuery{NPS: 2, BWG: 22})
		require.Error(t, err)

		_, err = GetTubeTEMA(TEMATubeQuery{Di: 0.02, Tmin: 0.002})
		require.Error(t, err)

		_, err = GetTubeTEMA(TEMATubeQuery{})
		require.Error(t, err)
	})
}

func TestStandardLengthTables(t *testing.T) {
	assert.Equal(t, []float64{2.438, 3.048, 3.658, 4.877, 6.096}, TEMALengths)
	assert.Len(t, HTRILengths, 19)
	assert.InDelta(t, 1.829, HTRILengths[0], 1e-12)
	assert.Len(t, HEDHShells, 50)
	assert.InDelta(t, 0.3048, HEDHShells[0], 1e-12)
	assert.InDelta(t, 3.048, HEDHShells[49], 1e-12)
	assert.Contains(t, HEDHPitches, 0.75)
}

func TestDBundleMin(t *testing.T) {
	assert.InDelta(t, 1, DBundleMin(0.0254), 1e-14)
	assert.InDelta(t, 0.1, DBundleMin(0.005), 1e-14)
	assert.InDelta(t, 0.3, DBundleMin(0.014), 1e-14)
	assert.InDelta(t, 0.5, DBundleMin(0.015), 1e-14)
	assert.InDelta(t, 1.5, DBundleMin(0.1), 1e-14)
}

func TestShellClearance(t *testing.T) {
	cases := []struct {
		dBundle, dShell float64
		clearance       float64
	}{
		{1.245, 0, 0.0064},
		{4, 0, 0.011},
		{0.2, 0, 0.0032},
		{1.778, 0, 0.0095},
		{0, 1.245, 0.0064},
		{0, 4, 0.011},
		{0, 0.2, 0.0032},
		{0, 1.778, 0.0095},
	}
	for _, tc := range cases {
		c, err := ShellClearance(tc.dBundle, tc.dShell)
		require.NoError(t, err)
		assert.InDelta(t, tc.clearance, c, 1e-14)
	}

	_, err := ShellClearance(0, 0)
	require.Error(t, err)
}

func TestBaffleThickness(t *testing.T) {
	thickness, err := BaffleThickness(0.3, 50, "R")
	require.NoError(t, err)
	assert.InDelta(t, 0.0095, thickness, 1e-14)

	thickness, err = BaffleThickness(0.3, 0.3, "B")
	require.NoError(t, err)
	assert.InDelta(t, 0.0032, thickness, 1e-14)

	thickness, err = BaffleThickness(2, 1.6, "C")
	require.NoError(t, err)
	assert.InDelta(t, 0.0191, thickness, 1e-14)

	_, err = BaffleThickness(0.3, 50, "X")
	require.Error(t, err)
}

func TestDBaffleHoles(t *testing.T) {
	assert.InDelta(t, 0.0516, DBaffleHoles(0.0508, 0.75), 1e-14)
	assert.InDelta(t, 0.01985, DBaffleHoles(0.01905, 0.3), 1e-14)
	assert.InDelta(t, 0.01945, DBaffleHoles(0.01905, 1.5), 1e-14)
}

func TestLUnsupportedMax(t *testing.T) {
	cases := []struct {
		do       float64
		material string
		l        float64
	}{
		{0.0254, "CS", 1.88},
		{0.0253, "CS", 1.753},
		{1e-5, "CS", 0.66},
		{0.00635, "CS", 0.66},
		{0.00635, "aluminium", 0.559},
	}
	for _, tc := range cases {
		l, err := LUnsupportedMax(tc.do, tc.material)
		require.NoError(t, err)
		assert.InDelta(t, tc.l, l, 1e-14)
	}

	_, err := LUnsupportedMax(0.0254, "BADMATERIAL")
	require.Error(t, err)
}

func TestTEMANomenclature(t *testing.T) {
	assert.Equal(t, "Bonnet (Integral Cover)", TEMAHeads["B"])
	assert.Contains(t, TEMAShells, "E")
	assert.Contains(t, TEMARears, "U")
	assert.NotEmpty(t, TEMAServices)
	assert.NotEmpty(t, BaffleTypes)
}
