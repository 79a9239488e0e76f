package boiling

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHBoilingAmalfi(t *testing.T) {
	// Micro scale branch, Bond number below 4.
	h := HBoilingAmalfi(3e-5, 0.4, 0.00172, 567, 18.09, 156e-6, 7.11e-6, 0.086, 9e5, 0.02, 1e5, 0.0003, 0)
	assert.InEpsilon(t, 776.0781179096225, h, 1e-12)

	// Macro scale branch.
	h = HBoilingAmalfi(3e-5, 0.4, 0.0172, 567, 18.09, 156e-6, 7.11e-6, 0.086, 9e5, 0.02, 1e5, 0.0003, 0)
	assert.InEpsilon(t, 527.4075513650002, h, 1e-12)

	// Zero chevron angle selects the 45 degree reference plates.
	h45 := HBoilingAmalfi(3e-5, 0.4, 0.0172, 567, 18.09, 156e-6, 7.11e-6, 0.086, 9e5, 0.02, 1e5, 0.0003, 45)
	assert.Equal(t, h, h45)
}
