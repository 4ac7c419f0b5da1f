package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"janseva/models"
	"janseva/service"
)

// TestDeterminePriorityTiers verifies representative inputs for each tier.
func TestDeterminePriorityTiers(t *testing.T) {
	assert.Equal(t, models.PriorityEmergency,
		service.DeterminePriority("Factory fire near market", "flames visible", "Industrial"))
	assert.Equal(t, models.PriorityModerate,
		service.DeterminePriority("Broken street light", "dark at night", "Infrastructure"))
	assert.Equal(t, models.PriorityModerate,
		service.DeterminePriority("Pothole on main road", "large pothole", "Roads"))
	assert.Equal(t, models.PriorityCasual,
		service.DeterminePriority("Park bench repainting", "faded paint", "Parks"))
}

// TestDeterminePriorityEmergencyDominates verifies that emergency keywords
// win even when moderate keywords co-occur in the same text.
func TestDeterminePriorityEmergencyDominates(t *testing.T) {
	priority := service.DeterminePriority("gas leak near garbage dump", "", "")
	assert.Equal(t, models.PriorityEmergency, priority,
		"emergency keyword must dominate co-occurring moderate keywords")
}

// TestDeterminePriorityMatchesCategory verifies category text participates
// in classification.
func TestDeterminePriorityMatchesCategory(t *testing.T) {
	assert.Equal(t, models.PriorityModerate,
		service.DeterminePriority("Something smells", "near the corner", "Garbage"))
}

// TestDeterminePriorityDeterministic verifies idempotence.
func TestDeterminePriorityDeterministic(t *testing.T) {
	first := service.DeterminePriority("accident on highway", "two vehicles", "Traffic")
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, service.DeterminePriority("accident on highway", "two vehicles", "Traffic"))
	}
}

// TestCalculateCreditPoints verifies the reward scoring table.
func TestCalculateCreditPoints(t *testing.T) {
	assert.Equal(t, 10, service.CalculateCreditPoints(models.PriorityCasual, false))
	assert.Equal(t, 15, service.CalculateCreditPoints(models.PriorityCasual, true))
	assert.Equal(t, 15, service.CalculateCreditPoints(models.PriorityModerate, false))
	assert.Equal(t, 20, service.CalculateCreditPoints(models.PriorityModerate, true))
	assert.Equal(t, 20, service.CalculateCreditPoints(models.PriorityEmergency, false))
	assert.Equal(t, 25, service.CalculateCreditPoints(models.PriorityEmergency, true))
}
