package exchanger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPpPc(t *testing.T) {
	assert.InEpsilon(t, 0.713634370024604, Pp(5, .4), 1e-12)
	assert.InEpsilon(t, Pp(2, -1+1e-9), Pp(2, -1), 1e-7)

	assert.InEpsilon(t, 0.9206703686051108, Pc(5, .7), 1e-12)
	assert.InEpsilon(t, Pc(5, 1-1e-8), Pc(5, 1), 1e-7)
}

func TestTemperatureEffectivenessBasic(t *testing.T) {
	r1 := 3.5107078039927404
	ntu1 := 0.29786672449248663

	cases := []struct {
		subtype string
		p1      float64
		eps     float64
	}{
		{"counterflow", 0.173382601503, 1e-9},
		{"parallel", 0.163852912049, 1e-9},
		{"crossflow approximate", 0.149974594007, 1e-9},
		{"crossflow", 0.1698702121873175, 1e-6},
		{"crossflow, mixed 1", 0.168678230894, 1e-9},
		{"crossflow, mixed 2", 0.16953790774, 1e-9},
		{"crossflow, mixed 1&2", 0.168411216829, 1e-9},
	}
	for _, tc := range cases {
		t.Run(tc.subtype, func(t *testing.T) {
			p1, err := TemperatureEffectivenessBasic(r1, ntu1, tc.subtype)
			require.NoError(t, err)
			assert.InEpsilon(t, tc.p1, p1, tc.eps)
		})
	}

	_, err := TemperatureEffectivenessBasic(r1, ntu1, "FAIL")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "valid subtypes")
}

// basePNTUSpec is the worked stream pair used across the P-NTU tests.
func basePNTUSpec(subtype string) PNTUSpec {
	return PNTUSpec{
		M1: 5.2, M2: 1.45, Cp1: 1860, Cp2: 1900,
		Subtype: subtype,
	}
}

func TestPNTUMethodAgainstEffectivenessNTU(t *testing.T) {
	// The same physical exchanger solved on the stream 1 basis must
	// reproduce the Cmin-basis duty.
	pairs := [][2]string{
		{"counterflow", "counterflow"},
		{"parallel", "parallel"},
		{"crossflow, mixed Cmax", "crossflow, mixed 1"},
		{"crossflow, mixed Cmin", "crossflow, mixed 2"},
	}
	for _, pair := range pairs {
		t.Run(pair[1], func(t *testing.T) {
			eNTU, err := EffectivenessNTUMethod(EffectivenessNTUSpec{
				Mh: 5.2, Mc: 1.45, Cph: 1860, Cpc: 1900,
				Subtype: pair[0],
				Tci:     15, Tco: 85, Tho: 110.06100082712986,
			})
			require.NoError(t, err)

			spec := basePNTUSpec(pair[1])
			spec.UA = eNTU.UA
			spec.T1i, spec.T2i = 130, 15
			res, err := PNTUMethod(spec)
			require.NoError(t, err)
			assert.InEpsilon(t, eNTU.Q, res.Q, 1e-9)
		})
	}
}

func TestPNTUMethodTemperaturePairs(t *testing.T) {
	eNTU, err := EffectivenessNTUMethod(EffectivenessNTUSpec{
		Mh: 5.2, Mc: 1.45, Cph: 1860, Cpc: 1900,
		Subtype: "counterflow",
		Tci:     15, Tco: 85, Tho: 110.06100082712986,
	})
	require.NoError(t, err)

	temps := []PNTUSpec{
		{T1i: 130, T2i: 15},
		{T1o: 110.06100082712986, T2o: 85},
		{T1i: 130, T2o: 85},
		{T1o: 110.06100082712986, T2i: 15},
		{T2o: 85, T2i: 15},
		{T1o: 110.06100082712986, T1i: 130},
	}
	for i, tspec := range temps {
		spec := basePNTUSpec("counterflow")
		spec.UA = eNTU.UA
		spec.T1i, spec.T1o, spec.T2i, spec.T2o = tspec.T1i, tspec.T1o, tspec.T2i, tspec.T2o
		res, err := PNTUMethod(spec)
		require.NoError(t, err, "temperature pair %d", i)
		assert.InEpsilon(t, eNTU.Q, res.Q, 1e-9, "temperature pair %d", i)
	}

	// One temperature is not enough.
	spec := basePNTUSpec("counterflow")
	spec.UA, spec.T1i = 300, 130
	_, err = PNTUMethod(spec)
	require.Error(t, err)

	spec = basePNTUSpec("BADTYPE")
	spec.UA, spec.T1i, spec.T2i = 300, 130, 15
	_, err = PNTUMethod(spec)
	require.Error(t, err)
}

func TestPNTUMethodConfigurations(t *testing.T) {
	cases := []struct {
		name       string
		subtype    string
		ntp        int
		nonOptimal bool
		q          float64
	}{
		{"E 10 pass", "E", 10, false, 32212.185563086336},
		{"G 2 pass", "G", 2, false, 32224.88788570008},
		{"H 2 pass", "H", 2, false, 32224.888572366734},
		{"J 2 pass", "J", 2, false, 32212.185699719837},
		{"plate 3/1", "3/1", 0, false, 32214.179745602625},
		{"plate 3/1 looped", "3/1", 0, true, 32210.4190840378},
		{"plate 2/2", "2/2", 0, false, 32229.120739501937},
		{"plate 2/2 looped", "2/2", 0, true, 32203.721238671216},
		{"plate 2/2c looped", "2/2c", 0, true, 32203.721238671216},
		{"plate 2/2p looped", "2/2p", 0, true, 32195.273806845064},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			spec := basePNTUSpec(tc.subtype)
			spec.UA, spec.T1i, spec.T2i = 300, 130, 15
			spec.Ntp, spec.NonOptimal = tc.ntp, tc.nonOptimal
			res, err := PNTUMethod(spec)
			require.NoError(t, err)
			assert.InEpsilon(t, tc.q, res.Q, 1e-9)
		})
	}
}

func TestPNTUMethodBackwards(t *testing.T) {
	// Solving for UA from a known outlet reproduces the forward duty.
	cases := []struct {
		name       string
		subtype    string
		ntp        int
		nonOptimal bool
		t1o        float64
		q          float64
	}{
		{"E 10 pass", "E", 10, false, 126.66954243557834, 32212.185563086336},
		{"G 2 pass", "G", 2, false, 126.66822912678866, 32224.88788570008},
		{"H 2 pass", "H", 2, false, 126.66822905579335, 32224.888572366734},
		{"J 2 pass", "J", 2, false, 126.66954242145162, 32212.185699719837},
		{"plate 3/1", "3/1", 0, false, 126.6693362545903, 32214.179745602625},
		{"plate 3/1 looped", "3/1", 0, true, 126.66972507402421, 32210.4190840378},
		{"plate 2/2", "2/2", 0, false, 126.66779148681742, 32229.120739501937},
		{"plate 2/2 looped", "2/2", 0, true, 126.67041757251124, 32203.721238671216},
		{"plate 2/2c looped", "2/2c", 0, true, 126.67041757251124, 32203.721238671216},
		{"plate 2/2p looped", "2/2p", 0, true, 126.67129096289857, 32195.273806845064},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			spec := basePNTUSpec(tc.subtype)
			spec.T1i, spec.T1o, spec.T2i = 130, tc.t1o, 15
			spec.Ntp, spec.NonOptimal = tc.ntp, tc.nonOptimal
			res, err := PNTUMethod(spec)
			require.NoError(t, err)
			assert.InEpsilon(t, tc.q, res.Q, 1e-9)
			assert.InEpsilon(t, 300, res.UA, 1e-5)
		})
	}
}

func TestPNTUMethodErrors(t *testing.T) {
	// Mismatched two-sided heat balance.
	spec := basePNTUSpec("counterflow")
	spec.T1i, spec.T1o, spec.T2i, spec.T2o = 170, 110.06100082712986, 15, 85
	_, err := PNTUMethod(spec)
	require.Error(t, err)

	// No stream 2 temperature.
	spec = basePNTUSpec("counterflow")
	spec.T1i, spec.T1o = 130, 110.06100082712986
	_, err = PNTUMethod(spec)
	require.Error(t, err)

	// No stream 1 temperature.
	spec = basePNTUSpec("counterflow")
	spec.T2i, spec.T2o = 15, 85
	_, err = PNTUMethod(spec)
	require.Error(t, err)

	// No temperatures at all.
	spec = basePNTUSpec("counterflow")
	_, err = PNTUMethod(spec)
	require.Error(t, err)

	spec = basePNTUSpec("NOTAREALTYPEOFHEATEXCHANGER")
	spec.T1i, spec.T1o, spec.T2i = 130, 110.06100082712986, 15
	_, err = PNTUMethod(spec)
	require.Error(t, err)
}
