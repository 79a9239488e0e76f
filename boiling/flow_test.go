package boiling

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLazarekBlack(t *testing.T) {
	q := 1e7
	h1, err := LazarekBlack(10, 0.3, 1e-3, 0.6, 2e6, 0, q)
	require.NoError(t, err)
	assert.InEpsilon(t, 51009.87001967105, h1, 1e-12)

	h2, err := LazarekBlack(10, 0.3, 1e-3, 0.6, 2e6, q/h1, 0)
	require.NoError(t, err)
	assert.InEpsilon(t, h1, h2, 1e-9)

	_, err = LazarekBlack(10, 0.3, 1e-3, 0.6, 2e6, 0, 0)
	require.Error(t, err)
}

func TestLiWu(t *testing.T) {
	q := 1e5
	h, err := LiWu(1, 0.2, 0.3, 567, 18.09, 156e-6, 0.086, 9e5, 0.02, 0, q)
	require.NoError(t, err)
	assert.InEpsilon(t, 5345.409399239493, h, 1e-12)

	h2, err := LiWu(1, 0.2, 0.3, 567, 18.09, 156e-6, 0.086, 9e5, 0.02, q/h, 0)
	require.NoError(t, err)
	assert.InEpsilon(t, h, h2, 1e-9)

	_, err = LiWu(1, 0.2, 0.3, 567, 18.09, 156e-6, 0.086, 9e5, 0.02, 0, 0)
	require.Error(t, err)
}

func TestSunMishima(t *testing.T) {
	h, err := SunMishima(1, 0.3, 567, 18.09, 156e-6, 0.086, 9e5, 0.02, 10, 0)
	require.NoError(t, err)
	assert.InEpsilon(t, 507.6709168372167, h, 1e-12)

	q := 1e5
	h, err = SunMishima(1, 0.3, 567, 18.09, 156e-6, 0.086, 9e5, 0.02, 0, q)
	require.NoError(t, err)
	assert.InEpsilon(t, 2538.4455424345983, h, 1e-12)

	h2, err := SunMishima(1, 0.3, 567, 18.09, 156e-6, 0.086, 9e5, 0.02, q/h, 0)
	require.NoError(t, err)
	assert.InEpsilon(t, h, h2, 1e-9)

	_, err = SunMishima(1, 0.3, 567, 18.09, 156e-6, 0.086, 9e5, 0.02, 0, 0)
	require.Error(t, err)
}

func TestThome(t *testing.T) {
	base := ThomeFlow{
		M: 1, X: 0.4, D: 0.3,
		Rhol: 567, Rhog: 18.09,
		Mul: 156e-6, Mug: 1e-5,
		Kl: 0.086, Kg: 0.2,
		Cpl: 2300, Cpg: 1400,
		Hvap: 9e5, Sigma: 0.02,
		Psat: 1e5, Pc: 22e6,
		Q: 1e5,
	}
	h, err := Thome(base)
	require.NoError(t, err)
	assert.InEpsilon(t, 1633.008836502032, h, 1e-12)

	fast := base
	fast.M, fast.X = 10, 0.5
	h, err = Thome(fast)
	require.NoError(t, err)
	assert.InEpsilon(t, 3120.1787715124824, h, 1e-12)

	// Te form iterates the heat flux until q/h(q) matches.
	byTe := fast
	byTe.Q = 0
	byTe.Te = 32.04944566414243
	h2, err := Thome(byTe)
	require.NoError(t, err)
	assert.InEpsilon(t, h, h2, 1e-6)

	bad := base
	bad.Q, bad.Te = 0, 0
	_, err = Thome(bad)
	require.Error(t, err)
}

func TestYunHeoKim(t *testing.T) {
	q := 1e4
	h1, err := YunHeoKim(1, 0.4, 0.3, 567, 156e-6, 9e5, 0.02, 0, q)
	require.NoError(t, err)
	h2, err := YunHeoKim(1, 0.4, 0.3, 567, 156e-6, 9e5, 0.02, q/h1, 0)
	require.NoError(t, err)
	assert.InEpsilon(t, h1, h2, 1e-9)

	_, err = YunHeoKim(1, 0.4, 0.3, 567, 156e-6, 9e5, 0.02, 0, 0)
	require.Error(t, err)
}

func TestLiuWinterton(t *testing.T) {
	h, err := LiuWinterton(1, 0.4, 0.3, 567, 18.09, 156e-6, 0.086, 2300, 44.02, 1e6, 22e6, 7)
	require.NoError(t, err)
	assert.InEpsilon(t, 4747.749477190532, h, 1e-12)
}

func TestChenEdelstein(t *testing.T) {
	h, err := ChenEdelstein(0.106, 0.2, 0.0212, 567, 18.09, 156e-6, 7.11e-6, 0.086, 2730, 2e5, 0.02, 1e5, 3)
	require.NoError(t, err)
	assert.InEpsilon(t, 3289.058731974052, h, 1e-12)
}

func TestChenBennett(t *testing.T) {
	h, err := ChenBennett(0.106, 0.2, 0.0212, 567, 18.09, 156e-6, 7.11e-6, 0.086, 2730, 2e5, 0.02, 1e5, 3)
	require.NoError(t, err)
	assert.InEpsilon(t, 4938.275351219369, h, 1e-12)
}
