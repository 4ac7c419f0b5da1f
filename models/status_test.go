package models_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"janseva/models"
)

// TestParseStatusNormalizesLegacySpellings verifies that the ad hoc status
// spellings used by older clients all land on the canonical enumeration.
func TestParseStatusNormalizesLegacySpellings(t *testing.T) {
	cases := map[string]models.ComplaintStatus{
		"Submitted":      models.StatusSubmitted,
		"submitted":      models.StatusSubmitted,
		"In Progress":    models.StatusInProgress,
		"in_progress":    models.StatusInProgress,
		"IN-PROGRESS":    models.StatusInProgress,
		"Work Completed": models.StatusWorkCompleted,
		"work_completed": models.StatusWorkCompleted,
		"  resolved  ":   models.StatusResolved,
		"Delayed":        models.StatusDelayed,
	}

	for input, expected := range cases {
		status, err := models.ParseStatus(input)
		assert.NoError(t, err, "input %q should parse", input)
		assert.Equal(t, expected, status, "input %q", input)
	}
}

// TestParseStatusRejectsUnknown verifies unknown statuses are errors.
func TestParseStatusRejectsUnknown(t *testing.T) {
	for _, input := range []string{"", "closed", "escalated", "done"} {
		_, err := models.ParseStatus(input)
		assert.Error(t, err, "input %q should not parse", input)
	}
}

// TestComplaintCloneIsDeep verifies cloned records share no mutable state.
func TestComplaintCloneIsDeep(t *testing.T) {
	original := &models.Complaint{
		ComplaintID:   "CMP-1",
		CurrentStatus: models.StatusSubmitted,
		Timeline: []models.TimelineEntry{
			{Status: models.StatusSubmitted, Completed: true},
		},
	}

	clone := original.Clone()
	clone.Timeline = append(clone.Timeline, models.TimelineEntry{Status: models.StatusInProgress})
	clone.CurrentStatus = models.StatusInProgress

	assert.Len(t, original.Timeline, 1, "original timeline must be unaffected")
	assert.Equal(t, models.StatusSubmitted, original.CurrentStatus)
}
