package repository

import "janseva/models"

// ComplaintRepository is the storage port for complaint records. The
// lifecycle engine is the sole writer; implementations must return
// models.ErrNotFound (wrapped or bare) for unknown ids and must propagate
// write failures as hard errors.
type ComplaintRepository interface {
	Insert(complaint *models.Complaint) error
	Update(complaint *models.Complaint) error
	GetByID(complaintID string) (*models.Complaint, error)
	List() ([]models.Complaint, error)
}

// NotificationRepository is the storage port for the notification log.
// List returns most-recent-first; MarkRead is a silent no-op for unknown ids.
type NotificationRepository interface {
	Insert(notification *models.Notification) error
	MarkRead(notificationID string) error
	List(role models.RecipientRole) ([]models.Notification, error)
}

// WorkerRepository is the storage port for the worker directory.
// GetByContact returns models.ErrNotFound when no profile matches.
type WorkerRepository interface {
	Insert(worker *models.WorkerProfile) error
	GetByContact(contact string) (*models.WorkerProfile, error)
	List() ([]models.WorkerProfile, error)
}
