package service

import (
	"strings"

	"janseva/models"
)

// Keyword tiers for the priority heuristic. Emergency is checked first and
// always wins, even when moderate keywords co-occur in the same text.
var emergencyKeywords = []string{
	"accident", "fire", "gas leak", "flood", "fallen tree",
	"electric shock", "sewage overflow", "road collapse",
	"water pipeline burst", "burst", "collapse", "danger",
	"hazard", "chemical spill", "factory fire", "industrial gas leak", "explosion",
	"safety risk", "unsafe",
}

var moderateKeywords = []string{
	"street light", "garbage", "drainage", "water leakage",
	"pothole", "traffic signal", "leak", "blocked",
	"pollution", "waste", "fumes", "banking", "ticket", "staff",
}

// DeterminePriority maps complaint text to a severity tier. Runs exactly
// once at creation; later edits never reclassify.
func DeterminePriority(title, description, category string) models.PriorityType {
	text := strings.ToLower(title + " " + description + " " + category)

	for _, keyword := range emergencyKeywords {
		if strings.Contains(text, keyword) {
			return models.PriorityEmergency
		}
	}
	for _, keyword := range moderateKeywords {
		if strings.Contains(text, keyword) {
			return models.PriorityModerate
		}
	}
	return models.PriorityCasual
}

// CalculateCreditPoints computes the reward score for a submission:
// base 10, +5 with evidence, +10 Emergency / +5 Moderate.
func CalculateCreditPoints(priority models.PriorityType, hasImage bool) int {
	points := 10
	if hasImage {
		points += 5
	}
	switch priority {
	case models.PriorityEmergency:
		points += 10
	case models.PriorityModerate:
		points += 5
	}
	return points
}
