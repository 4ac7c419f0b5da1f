package repository

import (
	"fmt"
	"sync"

	"janseva/models"
)

// In-memory adapters backing the same ports as the MySQL repositories.
// Used by the test suite and by STORAGE_DRIVER=memory demo deployments.
// All methods are mutex-guarded; records are cloned on the way in and out
// so callers never alias stored state.

// MemoryComplaintRepository keeps complaints in insertion order, newest first
type MemoryComplaintRepository struct {
	mu         sync.Mutex
	complaints map[string]*models.Complaint
	order      []string // complaint ids, newest first
}

// NewMemoryComplaintRepository creates an empty in-memory complaint store
func NewMemoryComplaintRepository() *MemoryComplaintRepository {
	return &MemoryComplaintRepository{complaints: make(map[string]*models.Complaint)}
}

func (r *MemoryComplaintRepository) Insert(complaint *models.Complaint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.complaints[complaint.ComplaintID]; exists {
		return fmt.Errorf("complaint %s already exists", complaint.ComplaintID)
	}
	r.complaints[complaint.ComplaintID] = complaint.Clone()
	r.order = append([]string{complaint.ComplaintID}, r.order...)
	return nil
}

func (r *MemoryComplaintRepository) Update(complaint *models.Complaint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.complaints[complaint.ComplaintID]; !exists {
		return fmt.Errorf("complaint %s: %w", complaint.ComplaintID, models.ErrNotFound)
	}
	r.complaints[complaint.ComplaintID] = complaint.Clone()
	return nil
}

func (r *MemoryComplaintRepository) GetByID(complaintID string) (*models.Complaint, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	complaint, exists := r.complaints[complaintID]
	if !exists {
		return nil, fmt.Errorf("complaint %s: %w", complaintID, models.ErrNotFound)
	}
	return complaint.Clone(), nil
}

func (r *MemoryComplaintRepository) List() ([]models.Complaint, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	complaints := make([]models.Complaint, 0, len(r.order))
	for _, id := range r.order {
		complaints = append(complaints, *r.complaints[id].Clone())
	}
	return complaints, nil
}

// MemoryNotificationRepository keeps the notification log newest first
type MemoryNotificationRepository struct {
	mu            sync.Mutex
	notifications []*models.Notification
}

// NewMemoryNotificationRepository creates an empty in-memory notification log
func NewMemoryNotificationRepository() *MemoryNotificationRepository {
	return &MemoryNotificationRepository{}
}

func (r *MemoryNotificationRepository) Insert(notification *models.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	dup := *notification
	r.notifications = append([]*models.Notification{&dup}, r.notifications...)
	return nil
}

func (r *MemoryNotificationRepository) MarkRead(notificationID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, notification := range r.notifications {
		if notification.NotificationID == notificationID {
			notification.Read = true
			return nil
		}
	}
	// Unknown ids are a silent no-op
	return nil
}

func (r *MemoryNotificationRepository) List(role models.RecipientRole) ([]models.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	result := make([]models.Notification, 0, len(r.notifications))
	for _, notification := range r.notifications {
		if role != "" && notification.RecipientRole != role {
			continue
		}
		result = append(result, *notification)
	}
	return result, nil
}

// MemoryWorkerRepository keys worker profiles by contact identity
type MemoryWorkerRepository struct {
	mu      sync.Mutex
	workers map[string]*models.WorkerProfile // by contact
}

// NewMemoryWorkerRepository creates an empty in-memory worker directory
func NewMemoryWorkerRepository() *MemoryWorkerRepository {
	return &MemoryWorkerRepository{workers: make(map[string]*models.WorkerProfile)}
}

func (r *MemoryWorkerRepository) Insert(worker *models.WorkerProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.workers[worker.Contact]; exists {
		return fmt.Errorf("worker %s already exists", worker.Contact)
	}
	dup := *worker
	r.workers[worker.Contact] = &dup
	return nil
}

func (r *MemoryWorkerRepository) GetByContact(contact string) (*models.WorkerProfile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	worker, exists := r.workers[contact]
	if !exists {
		return nil, fmt.Errorf("worker %s: %w", contact, models.ErrNotFound)
	}
	dup := *worker
	return &dup, nil
}

func (r *MemoryWorkerRepository) List() ([]models.WorkerProfile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	workers := make([]models.WorkerProfile, 0, len(r.workers))
	for _, worker := range r.workers {
		workers = append(workers, *worker)
	}
	return workers, nil
}
