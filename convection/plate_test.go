package convection

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNuPlateKumar(t *testing.T) {
	assert.InEpsilon(t, 47.757818892853955, NuPlateKumar(2000, 0.7, 30), 1e-12)

	// Both sides of every chevron angle and Reynolds breakpoint.
	expected := [][][]float64{
		{{1.3741604132237337, 1.5167183720237427}, {1.3741604132237337, 1.4917469901578877}},
		{{1.3741604132237337, 1.4917469901578877, 5.550501072445418, 5.686809480248301},
			{1.1640875871334992, 1.2445337163511674, 3.9101709259523125, 3.9566649343960067}},
		{{1.4929588988864342, 1.563892674590831, 7.514446806331191, 7.535921750318442},
			{1.3046449654318206, 1.3616258463940976, 5.549244219363172, 5.568849176342506}},
		{{1.3046449654318206, 1.3616258463940976, 6.464254426666383, 6.491074633865849},
			{1.3046449654318206, 1.360776035122095, 5.9841120030888915, 5.999181017513207}},
		{{1.3046449654318206, 1.360776035122095, 6.696608679807539, 6.712512276614001},
			{1.3046449654318206, 1.360776035122095, 6.696608679807539, 6.712512276614001}},
	}
	for i, betaMain := range kumarBetas {
		for bi, beta := range []float64{betaMain - 1, betaMain + 1} {
			for ri, reMain := range kumarNuRes[i] {
				for di, re := range []float64{reMain - 1, reMain + 1} {
					want := expected[i][bi][2*ri+di]
					assert.InEpsilon(t, want, NuPlateKumar(re, 0.7, beta), 1e-12)
				}
			}
		}
	}
}
