package service

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"janseva/models"
	"janseva/repository"
	"janseva/utils"
)

// proofRadiusKm is the geo-fence for worker proof-of-work. Proof submitted
// strictly more than this far from the reported location gets a mismatch
// flag appended to the remarks; exactly at the boundary is not flagged.
const proofRadiusKm = 0.5

const locationMismatchFlag = " [FLAG: Location mismatch detected]"

const officerRejectionRemark = "Work rejected by officer. Please redo with correct evidence."

// allowedTransitions defines the lifecycle state machine. Delayed is entered
// only by the overdue sweep; the Work Completed -> In Progress edge is the
// rejection cycle.
var allowedTransitions = map[models.ComplaintStatus][]models.ComplaintStatus{
	models.StatusSubmitted:     {models.StatusInProgress, models.StatusDelayed},
	models.StatusInProgress:    {models.StatusWorkCompleted, models.StatusDelayed},
	models.StatusWorkCompleted: {models.StatusResolved, models.StatusInProgress},
	models.StatusDelayed:       {models.StatusInProgress, models.StatusWorkCompleted},
	models.StatusResolved:      {}, // terminal
}

// ComplaintService is the complaint lifecycle engine. It is the sole owner
// and mutator of complaint records; the mutex serializes all mutations so
// sweep and transition calls can never interleave and break the monotonic
// timeline invariant.
type ComplaintService struct {
	mu       sync.Mutex
	repo     repository.ComplaintRepository
	notifier Notifier
}

// NewComplaintService creates a new complaint lifecycle engine
func NewComplaintService(repo repository.ComplaintRepository, notifier Notifier) *ComplaintService {
	return &ComplaintService{repo: repo, notifier: notifier}
}

// generateComplaintID generates a unique complaint id.
// Format: CMP-YYYYMMDD-{8 hex chars}
func generateComplaintID() string {
	datePrefix := time.Now().UTC().Format("20060102")
	return fmt.Sprintf("CMP-%s-%s", datePrefix, uuid.New().String()[:8])
}

// CreateComplaint registers a citizen submission.
//
// Lifecycle rules:
// 1. Priority tier and credit points are derived here, exactly once
// 2. The complaint starts as Submitted with its first timeline entry
// 3. Later edits never reclassify priority or recompute credit
func (s *ComplaintService) CreateComplaint(req *models.CreateComplaintRequest) (*models.Complaint, error) {
	now := time.Now().UTC()
	priority := DeterminePriority(req.Title, req.Description, req.Category)

	complaint := &models.Complaint{
		ComplaintID:         generateComplaintID(),
		Title:               req.Title,
		Description:         req.Description,
		Category:            req.Category,
		GovtLevel:           models.GovtLevel(req.GovtLevel),
		Department:          req.Department,
		IndustrialIssueType: req.IndustrialIssueType,
		ImageRef:            req.ImageRef,
		Latitude:            req.Latitude,
		Longitude:           req.Longitude,
		CurrentStatus:       models.StatusSubmitted,
		Priority:            priority,
		CreditPoints:        CalculateCreditPoints(priority, req.ImageRef != ""),
		Timeline: []models.TimelineEntry{
			{Status: models.StatusSubmitted, Date: now, Completed: true},
		},
		CreatedAt: now,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.repo.Insert(complaint); err != nil {
		return nil, fmt.Errorf("failed to create complaint: %w", err)
	}
	log.Printf("[complaint] created %s priority=%s credit=%d", complaint.ComplaintID, priority, complaint.CreditPoints)
	return complaint.Clone(), nil
}

// UpdateComplaintStatus performs one lifecycle transition.
//
// Side-effect ordering:
// 1. Validate the transition and its payload against the state machine
// 2. Geo-fence check on proof coordinates (annotates remarks, never blocks)
// 3. Merge payload, set status, append the timeline entry
// 4. Persist (a write failure propagates as a hard error)
// 5. Dispatch notifications for the new status; dispatch failures are
//    logged and never roll back the persisted transition
func (s *ComplaintService) UpdateComplaintStatus(
	complaintID string,
	target models.ComplaintStatus,
	payload *models.TransitionPayload,
) (*models.Complaint, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.transitionLocked(complaintID, target, payload)
}

func (s *ComplaintService) transitionLocked(
	complaintID string,
	target models.ComplaintStatus,
	payload *models.TransitionPayload,
) (*models.Complaint, error) {
	complaint, err := s.repo.GetByID(complaintID)
	if err != nil {
		return nil, err
	}

	if err := validateTransition(complaint, target, payload); err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	// Geo-fence: flag proof submitted away from the reported site. The
	// transition proceeds either way; the flag is for supervisor review.
	if target == models.StatusWorkCompleted && payload != nil && payload.ProofLocation != nil {
		dist := utils.HaversineKm(
			complaint.Latitude, complaint.Longitude,
			payload.ProofLocation.Latitude, payload.ProofLocation.Longitude,
		)
		if dist > proofRadiusKm {
			payload.WorkerRemarks += locationMismatchFlag
			log.Printf("[complaint] %s proof location %.3f km from site, flagged", complaintID, dist)
		}
	}

	applyPayload(complaint, target, payload, now)
	complaint.CurrentStatus = target
	complaint.Timeline = append(complaint.Timeline, models.TimelineEntry{
		Status:    target,
		Date:      now,
		Completed: true,
	})

	if err := s.repo.Update(complaint); err != nil {
		return nil, fmt.Errorf("failed to persist transition: %w", err)
	}

	// Fire-and-forget: dispatch happens after persistence so a notification
	// failure can never leave the record inconsistent.
	s.dispatchStatusNotifications(complaint)

	return complaint.Clone(), nil
}

// RejectWork is the officer rejection of submitted proof: the complaint
// returns to In Progress with verification Rejected and a fixed remark for
// the assigned worker.
func (s *ComplaintService) RejectWork(complaintID, reason string) (*models.Complaint, error) {
	return s.UpdateComplaintStatus(complaintID, models.StatusInProgress, &models.TransitionPayload{
		VerificationStatus: models.VerificationRejected,
		RejectionReason:    reason,
		StatusRemarks:      officerRejectionRemark,
	})
}

// FlagFakeResolution is the citizen integrity report against a completed
// resolution. Distinct from RejectWork: it appends to the fake-report list
// and records the citizen's reasoning in the worker remarks.
func (s *ComplaintService) FlagFakeResolution(complaintID, reportedBy, reason, comment string) (*models.Complaint, error) {
	return s.UpdateComplaintStatus(complaintID, models.StatusInProgress, &models.TransitionPayload{
		VerificationStatus: models.VerificationRejected,
		WorkerRemarks:      fmt.Sprintf("[CITIZEN REPORT: %s] %s", reason, comment),
		FakeReport: &models.FakeReport{
			ReportedBy: reportedBy,
			Reason:     reason,
			Comment:    comment,
			Date:       time.Now().UTC(),
		},
	})
}

// MarkOverdue sets the escalation flag and alert timestamp without a status
// change, for complaints the sweep finds past deadline in a status the state
// machine does not move (already Delayed but unflagged). Monotonic: once set
// the flag is never re-armed.
func (s *ComplaintService) MarkOverdue(complaintID string, alertAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	complaint, err := s.repo.GetByID(complaintID)
	if err != nil {
		return err
	}
	if complaint.IsOverdue {
		return nil
	}
	complaint.IsOverdue = true
	if complaint.AlertSentAt == nil {
		complaint.AlertSentAt = &alertAt
	}
	if err := s.repo.Update(complaint); err != nil {
		return fmt.Errorf("failed to persist overdue flag: %w", err)
	}
	return nil
}

// GetComplaintByID retrieves a single complaint
func (s *ComplaintService) GetComplaintByID(complaintID string) (*models.Complaint, error) {
	return s.repo.GetByID(complaintID)
}

// ListComplaints returns all complaints, newest first
func (s *ComplaintService) ListComplaints() ([]models.Complaint, error) {
	return s.repo.List()
}

// GetTimeline returns the append-only audit trail of a complaint
func (s *ComplaintService) GetTimeline(complaintID string) ([]models.TimelineEntry, error) {
	complaint, err := s.repo.GetByID(complaintID)
	if err != nil {
		return nil, err
	}
	return complaint.Timeline, nil
}

// validateTransition checks the state machine edge and the payload fields
// the target status requires.
func validateTransition(complaint *models.Complaint, target models.ComplaintStatus, payload *models.TransitionPayload) error {
	allowed, exists := allowedTransitions[complaint.CurrentStatus]
	if !exists {
		return fmt.Errorf("status %q has no outgoing transitions: %w", complaint.CurrentStatus, models.ErrInvalidTransition)
	}
	found := false
	for _, status := range allowed {
		if status == target {
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("cannot move %s from %q to %q: %w",
			complaint.ComplaintID, complaint.CurrentStatus, target, models.ErrInvalidTransition)
	}

	// Assignment happens on the Submitted -> In Progress edge and needs a
	// worker and a deadline; proof submission needs the photo evidence.
	if complaint.CurrentStatus == models.StatusSubmitted && target == models.StatusInProgress {
		if payload == nil || payload.WorkerID == "" || payload.WorkDeadline == nil {
			return fmt.Errorf("assignment requires worker id and work deadline: %w", models.ErrInvalidTransition)
		}
	}
	if target == models.StatusWorkCompleted {
		if payload == nil || payload.ProofImage == "" {
			return fmt.Errorf("work completion requires a proof image: %w", models.ErrInvalidTransition)
		}
	}
	return nil
}

// applyPayload merges status-specific fields into the record. Zero-valued
// payload fields leave existing data untouched; the overdue flag is
// monotonic and never cleared.
func applyPayload(complaint *models.Complaint, target models.ComplaintStatus, payload *models.TransitionPayload, now time.Time) {
	if payload != nil {
		if payload.WorkerID != "" {
			complaint.WorkerID = payload.WorkerID
			complaint.WorkerName = payload.WorkerName
			assignedAt := now
			complaint.AssignedAt = &assignedAt
		}
		if payload.WorkDeadline != nil {
			deadline := *payload.WorkDeadline
			complaint.WorkDeadline = &deadline
		}
		if payload.ProofImage != "" {
			complaint.ProofImage = payload.ProofImage
		}
		if payload.ProofLocation != nil {
			location := *payload.ProofLocation
			complaint.ProofLocation = &location
		}
		if payload.WorkerRemarks != "" {
			complaint.WorkerRemarks = payload.WorkerRemarks
		}
		if payload.StatusRemarks != "" {
			complaint.StatusRemarks = payload.StatusRemarks
		}
		if payload.VerificationStatus != "" {
			complaint.VerificationStatus = payload.VerificationStatus
		}
		if payload.RejectionReason != "" {
			complaint.RejectionReason = payload.RejectionReason
		}
		if payload.FakeReport != nil {
			complaint.FakeReports = append(complaint.FakeReports, *payload.FakeReport)
		}
		if payload.IsOverdue {
			complaint.IsOverdue = true
		}
		if payload.AlertSentAt != nil && complaint.AlertSentAt == nil {
			alertAt := *payload.AlertSentAt
			complaint.AlertSentAt = &alertAt
		}
	}

	switch target {
	case models.StatusWorkCompleted:
		if complaint.VerificationStatus == "" || complaint.VerificationStatus == models.VerificationRejected {
			complaint.VerificationStatus = models.VerificationPending
		}
	case models.StatusResolved:
		complaint.VerificationStatus = models.VerificationVerified
		resolvedAt := now
		complaint.ResolvedAt = &resolvedAt
	}
}

// dispatchStatusNotifications publishes the role-targeted messages for the
// complaint's new status. Failures are logged only.
func (s *ComplaintService) dispatchStatusNotifications(complaint *models.Complaint) {
	if s.notifier == nil {
		return
	}
	id := complaint.ComplaintID

	var err error
	switch complaint.CurrentStatus {
	case models.StatusResolved:
		err = s.notifier.Send(models.RoleUser,
			fmt.Sprintf("Good news! Your complaint #%s has been marked as RESOLVED.", id),
			models.SeveritySuccess, id)
	case models.StatusInProgress:
		err = s.notifier.Send(models.RoleUser,
			fmt.Sprintf("Work has started on your complaint #%s.", id),
			models.SeverityInfo, id)
		if complaint.WorkerID != "" {
			if workerErr := s.notifier.Send(models.RoleWorker,
				fmt.Sprintf("New task assigned: Complaint #%s. Please check details.", id),
				models.SeverityInfo, id); workerErr != nil && err == nil {
				err = workerErr
			}
		}
	case models.StatusWorkCompleted:
		err = s.notifier.Send(models.RoleAuthority,
			fmt.Sprintf("Work completed for #%s. Waiting for verification.", id),
			models.SeveritySuccess, id)
	case models.StatusDelayed:
		err = s.notifier.Send(models.RoleAdmin,
			fmt.Sprintf("SLA Breach: Complaint #%s is currently DELAYED.", id),
			models.SeverityError, id)
	}
	if err != nil {
		log.Printf("[complaint] notification dispatch failed for %s: %v", id, err)
	}
}
