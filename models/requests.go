package models

import "time"

// CreateComplaintRequest is the citizen submission payload
type CreateComplaintRequest struct {
	Title               string  `json:"title"`
	Description         string  `json:"description"`
	Category            string  `json:"category"`
	Latitude            float64 `json:"latitude"`
	Longitude           float64 `json:"longitude"`
	GovtLevel           string  `json:"govt_level,omitempty"`
	Department          string  `json:"department,omitempty"`
	IndustrialIssueType string  `json:"industrial_issue_type,omitempty"`
	ImageRef            string  `json:"image_ref,omitempty"`
}

// TransitionPayload carries the status-specific fields merged into a
// complaint during a lifecycle transition. Zero values are left untouched.
type TransitionPayload struct {
	WorkerID           string
	WorkerName         string
	WorkDeadline       *time.Time
	ProofImage         string
	ProofLocation      *GeoPoint
	WorkerRemarks      string
	StatusRemarks      string
	VerificationStatus VerificationStatus
	RejectionReason    string
	FakeReport         *FakeReport

	// Escalation fields, set only by the overdue sweep
	IsOverdue   bool
	AlertSentAt *time.Time
}

// UpdateStatusRequest is the HTTP payload for the generic transition endpoint
type UpdateStatusRequest struct {
	NewStatus      string     `json:"new_status"`
	WorkerID       string     `json:"worker_id,omitempty"`
	WorkerName     string     `json:"worker_name,omitempty"`
	WorkDeadline   *time.Time `json:"work_deadline,omitempty"`
	ProofImage     string     `json:"proof_image,omitempty"`
	ProofLatitude  *float64   `json:"proof_latitude,omitempty"`
	ProofLongitude *float64   `json:"proof_longitude,omitempty"`
	WorkerRemarks  string     `json:"worker_remarks,omitempty"`
}

// RejectWorkRequest is the officer rejection payload
type RejectWorkRequest struct {
	Reason string `json:"reason,omitempty"`
}

// FakeReportRequest is the citizen integrity-report payload
type FakeReportRequest struct {
	Reason  string `json:"reason"`
	Comment string `json:"comment,omitempty"`
}

// RegisterWorkerRequest is the worker directory registration payload
type RegisterWorkerRequest struct {
	Name    string `json:"name"`
	Contact string `json:"contact"`
}

// NotifyRequest is the direct notification dispatch payload
type NotifyRequest struct {
	RecipientRole      string `json:"recipient_role"`
	Message            string `json:"message"`
	Severity           string `json:"severity,omitempty"`
	RelatedComplaintID string `json:"related_complaint_id,omitempty"`
}
