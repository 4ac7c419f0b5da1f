package models

import "errors"

// Sentinel errors for the lifecycle engine. Callers test with errors.Is;
// repositories and services wrap them with context via fmt.Errorf("%w").
var (
	// ErrNotFound is returned when a complaint or worker id does not resolve
	ErrNotFound = errors.New("record not found")

	// ErrInvalidTransition is returned when a target status is not reachable
	// from the current status, or its payload is missing required fields
	ErrInvalidTransition = errors.New("invalid status transition")
)
