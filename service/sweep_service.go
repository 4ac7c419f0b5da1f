package service

import (
	"fmt"
	"log"
	"time"

	"janseva/models"
)

// SweepService is the batch SLA escalation engine. It is pull-driven:
// dashboard collaborators invoke SweepOverdue on load; there is no internal
// scheduler (worker.SweepWorker can optionally drive it on a timer).
type SweepService struct {
	complaintService *ComplaintService
	notifier         Notifier
}

// NewSweepService creates a new overdue sweep
func NewSweepService(complaintService *ComplaintService, notifier Notifier) *SweepService {
	return &SweepService{complaintService: complaintService, notifier: notifier}
}

// SweepResult summarizes what the sweep did to one complaint
type SweepResult struct {
	ComplaintID  string    `json:"complaint_id"`
	Transitioned bool      `json:"transitioned"`
	OldStatus    string    `json:"old_status"`
	ProcessedAt  time.Time `json:"processed_at"`
}

// SweepOverdue scans every complaint and escalates those past their work
// deadline. A complaint is a candidate when it has a deadline in the past,
// is still actionable (not Work Completed or Resolved) and its overdue flag
// is unset — the flag guard makes a second sweep a complete no-op, so the
// worker and authority alerts fire exactly once per breach.
func (s *SweepService) SweepOverdue() ([]SweepResult, error) {
	complaints, err := s.complaintService.ListComplaints()
	if err != nil {
		return nil, fmt.Errorf("failed to load complaints for sweep: %w", err)
	}

	now := time.Now().UTC()
	var results []SweepResult

	for i := range complaints {
		candidate := &complaints[i]
		if !s.isCandidate(candidate, now) {
			continue
		}

		result := SweepResult{
			ComplaintID: candidate.ComplaintID,
			OldStatus:   string(candidate.CurrentStatus),
			ProcessedAt: now,
		}

		// Submitted and In Progress breaches go through the state machine so
		// the Delayed timeline entry and admin notification fire; the flag
		// fields ride along in the same persisted update.
		if candidate.CurrentStatus == models.StatusSubmitted || candidate.CurrentStatus == models.StatusInProgress {
			alertAt := now
			_, err := s.complaintService.UpdateComplaintStatus(candidate.ComplaintID, models.StatusDelayed, &models.TransitionPayload{
				IsOverdue:   true,
				AlertSentAt: &alertAt,
			})
			if err != nil {
				log.Printf("[sweep] skipping complaint %s: %v", candidate.ComplaintID, err)
				continue
			}
			result.Transitioned = true
		} else {
			if err := s.complaintService.MarkOverdue(candidate.ComplaintID, now); err != nil {
				log.Printf("[sweep] skipping complaint %s: %v", candidate.ComplaintID, err)
				continue
			}
		}

		s.dispatchBreachAlerts(candidate)
		log.Printf("[sweep] complaint %s escalated (was %s)", candidate.ComplaintID, result.OldStatus)
		results = append(results, result)
	}

	return results, nil
}

// isCandidate applies the overdue-flag guard and actionability filter
func (s *SweepService) isCandidate(complaint *models.Complaint, now time.Time) bool {
	if complaint.WorkDeadline == nil || complaint.IsOverdue {
		return false
	}
	switch complaint.CurrentStatus {
	case models.StatusWorkCompleted, models.StatusResolved:
		return false
	}
	return now.After(*complaint.WorkDeadline)
}

// dispatchBreachAlerts sends the worker and authority escalation alerts.
// These fire regardless of whether the status itself changed; failures are
// logged only.
func (s *SweepService) dispatchBreachAlerts(complaint *models.Complaint) {
	if s.notifier == nil {
		return
	}
	id := complaint.ComplaintID

	if complaint.WorkerID != "" {
		if err := s.notifier.Send(models.RoleWorker,
			fmt.Sprintf("URGENT: Task #%s is Overdue! Please complete immediately.", id),
			models.SeverityError, id); err != nil {
			log.Printf("[sweep] worker alert failed for %s: %v", id, err)
		}
	}

	workerLabel := complaint.WorkerID
	if workerLabel == "" {
		workerLabel = "Unassigned"
	}
	if err := s.notifier.Send(models.RoleAuthority,
		fmt.Sprintf("Alert: Task #%s has breached deadline. Worker: %s", id, workerLabel),
		models.SeverityWarning, id); err != nil {
		log.Printf("[sweep] authority alert failed for %s: %v", id, err)
	}
}
