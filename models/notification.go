package models

import (
	"fmt"
	"strings"
	"time"
)

// RecipientRole addresses a notification to one actor class
type RecipientRole string

const (
	RoleAuthority RecipientRole = "authority"
	RoleAdmin     RecipientRole = "admin"
	RoleWorker    RecipientRole = "worker"
	RoleUser      RecipientRole = "user"
)

// ParseRole normalizes a client-supplied role string
func ParseRole(s string) (RecipientRole, error) {
	switch RecipientRole(strings.ToLower(strings.TrimSpace(s))) {
	case RoleAuthority:
		return RoleAuthority, nil
	case RoleAdmin:
		return RoleAdmin, nil
	case RoleWorker:
		return RoleWorker, nil
	case RoleUser:
		return RoleUser, nil
	}
	return "", fmt.Errorf("unknown recipient role %q", s)
}

// Severity classifies a notification for display purposes
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Notification is a role-addressed message in the shared notification log.
// Records are created by the dispatcher, mutated only to flip the read flag
// and never deleted.
type Notification struct {
	NotificationID     string        `json:"notification_id"`
	RecipientRole      RecipientRole `json:"recipient_role"`
	Message            string        `json:"message"`
	Severity           Severity      `json:"severity"`
	RelatedComplaintID string        `json:"related_complaint_id,omitempty"`
	Timestamp          time.Time     `json:"timestamp"`
	Read               bool          `json:"read"`
}
