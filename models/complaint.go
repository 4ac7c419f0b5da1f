package models

import (
	"fmt"
	"strings"
	"time"
)

// ComplaintStatus is the closed set of lifecycle states. The string values
// are the single canonical serialization; use ParseStatus at every external
// boundary to normalize legacy spellings ("work_completed" etc.).
type ComplaintStatus string

const (
	StatusSubmitted     ComplaintStatus = "Submitted"
	StatusInProgress    ComplaintStatus = "In Progress"
	StatusWorkCompleted ComplaintStatus = "Work Completed"
	StatusResolved      ComplaintStatus = "Resolved"
	StatusDelayed       ComplaintStatus = "Delayed"
)

// ParseStatus normalizes a client-supplied status string to the canonical
// enumeration. Underscores, hyphens and casing are forgiven; anything else
// is an error.
func ParseStatus(s string) (ComplaintStatus, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	normalized = strings.NewReplacer("_", " ", "-", " ").Replace(normalized)

	switch normalized {
	case "submitted":
		return StatusSubmitted, nil
	case "in progress":
		return StatusInProgress, nil
	case "work completed":
		return StatusWorkCompleted, nil
	case "resolved":
		return StatusResolved, nil
	case "delayed":
		return StatusDelayed, nil
	}
	return "", fmt.Errorf("unknown complaint status %q", s)
}

// PriorityType represents the severity tier derived from complaint text
type PriorityType string

const (
	PriorityEmergency PriorityType = "Emergency"
	PriorityModerate  PriorityType = "Moderate"
	PriorityCasual    PriorityType = "Casual"
)

// GovtLevel is the governance scope a complaint is filed under
type GovtLevel string

const (
	GovtLevelCentral GovtLevel = "Central"
	GovtLevelState   GovtLevel = "State"
	GovtLevelLocal   GovtLevel = "Local"
)

// VerificationStatus tracks officer review of submitted proof-of-work
type VerificationStatus string

const (
	VerificationPending  VerificationStatus = "Pending"
	VerificationVerified VerificationStatus = "Verified"
	VerificationRejected VerificationStatus = "Rejected"
)

// TimelineEntry is one step of a complaint's audit trail. The timeline is
// append-only; entries are never reordered or truncated.
type TimelineEntry struct {
	Status    ComplaintStatus `json:"status"`
	Date      time.Time       `json:"date"`
	Completed bool            `json:"completed"`
}

// FakeReport is a citizen-filed integrity report against a resolution
type FakeReport struct {
	ReportedBy string    `json:"reported_by"`
	Reason     string    `json:"reason"`
	Comment    string    `json:"comment"`
	Date       time.Time `json:"date"`
}

// GeoPoint is a latitude/longitude pair in degrees
type GeoPoint struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Complaint represents a single citizen-reported civic issue tracked
// through its resolution lifecycle.
type Complaint struct {
	ComplaintID         string          `json:"complaint_id"`
	Title               string          `json:"title"`
	Description         string          `json:"description"`
	Category            string          `json:"category"`
	GovtLevel           GovtLevel       `json:"govt_level,omitempty"`
	Department          string          `json:"department,omitempty"`
	IndustrialIssueType string          `json:"industrial_issue_type,omitempty"`
	ImageRef            string          `json:"image_ref,omitempty"`
	Latitude            float64         `json:"latitude"`
	Longitude           float64         `json:"longitude"`
	CurrentStatus       ComplaintStatus `json:"current_status"`

	// Derived once at creation, immutable thereafter
	Priority     PriorityType `json:"priority"`
	CreditPoints int          `json:"credit_points"`

	Timeline []TimelineEntry `json:"timeline"`

	// Assignment (set on the Submitted -> In Progress transition)
	WorkerID     string     `json:"worker_id,omitempty"`
	WorkerName   string     `json:"worker_name,omitempty"`
	AssignedAt   *time.Time `json:"assigned_at,omitempty"`
	WorkDeadline *time.Time `json:"work_deadline,omitempty"`

	// Proof-of-work (set on the In Progress -> Work Completed transition)
	ProofImage    string    `json:"proof_image,omitempty"`
	ProofLocation *GeoPoint `json:"proof_location,omitempty"`
	WorkerRemarks string    `json:"worker_remarks,omitempty"`

	// Verification
	VerificationStatus VerificationStatus `json:"verification_status,omitempty"`
	RejectionReason    string             `json:"rejection_reason,omitempty"`
	StatusRemarks      string             `json:"status_remarks,omitempty"`
	ResolvedAt         *time.Time         `json:"resolved_at,omitempty"`

	// Escalation (set once by the overdue sweep, never cleared)
	IsOverdue   bool       `json:"is_overdue"`
	AlertSentAt *time.Time `json:"alert_sent_at,omitempty"`

	FakeReports []FakeReport `json:"fake_reports,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// Clone returns a deep copy so repository callers can't alias the stored
// timeline or fake-report slices.
func (c *Complaint) Clone() *Complaint {
	dup := *c
	if c.Timeline != nil {
		dup.Timeline = append([]TimelineEntry(nil), c.Timeline...)
	}
	if c.FakeReports != nil {
		dup.FakeReports = append([]FakeReport(nil), c.FakeReports...)
	}
	if c.AssignedAt != nil {
		t := *c.AssignedAt
		dup.AssignedAt = &t
	}
	if c.WorkDeadline != nil {
		t := *c.WorkDeadline
		dup.WorkDeadline = &t
	}
	if c.ResolvedAt != nil {
		t := *c.ResolvedAt
		dup.ResolvedAt = &t
	}
	if c.AlertSentAt != nil {
		t := *c.AlertSentAt
		dup.AlertSentAt = &t
	}
	if c.ProofLocation != nil {
		p := *c.ProofLocation
		dup.ProofLocation = &p
	}
	return &dup
}
