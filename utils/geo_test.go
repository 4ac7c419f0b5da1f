package utils_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"janseva/utils"
)

// TestHaversineIdenticalPoints verifies zero distance for identical coordinates.
func TestHaversineIdenticalPoints(t *testing.T) {
	dist := utils.HaversineKm(12.9716, 77.5946, 12.9716, 77.5946)
	assert.Equal(t, 0.0, dist)
}

// TestHaversineKnownDistance verifies a ~1 km latitude offset.
// One degree of latitude is ~111.19 km, so 0.009 degrees is ~1.0007 km.
func TestHaversineKnownDistance(t *testing.T) {
	dist := utils.HaversineKm(12.9716, 77.5946, 12.9806, 77.5946)
	assert.InDelta(t, 1.0, dist, 0.01)
}

// TestHaversineSymmetry verifies that distance is direction-independent.
func TestHaversineSymmetry(t *testing.T) {
	forward := utils.HaversineKm(28.6139, 77.2090, 19.0760, 72.8777)
	backward := utils.HaversineKm(19.0760, 72.8777, 28.6139, 77.2090)
	assert.InDelta(t, forward, backward, 1e-9)

	// Delhi to Mumbai is roughly 1150 km as the crow flies
	assert.InDelta(t, 1150, forward, 20)
}

// TestHaversineDeterministic verifies repeated calls yield identical results.
func TestHaversineDeterministic(t *testing.T) {
	first := utils.HaversineKm(1.5, 2.5, 3.5, 4.5)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, utils.HaversineKm(1.5, 2.5, 3.5, 4.5))
	}
}
