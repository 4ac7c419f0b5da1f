package models

import "time"

// WorkerStatus is the availability state of a field worker
type WorkerStatus string

const (
	WorkerActive            WorkerStatus = "Active"
	WorkerPendingAssignment WorkerStatus = "Pending Assignment"
)

// WorkerProfile is a registered field-worker identity. Profiles are keyed by
// contact identity; registering the same contact twice is a no-op.
type WorkerProfile struct {
	WorkerID     string       `json:"worker_id"`
	Name         string       `json:"name"`
	Contact      string       `json:"contact"`
	Status       WorkerStatus `json:"status"`
	RegisteredAt time.Time    `json:"registered_at"`
}
