package service

import (
	"errors"
	"fmt"
	"log"
	"time"

	"janseva/models"
	"janseva/repository"
)

// WorkerService owns the field-worker directory
type WorkerService struct {
	repo repository.WorkerRepository
}

// NewWorkerService creates a new worker directory service
func NewWorkerService(repo repository.WorkerRepository) *WorkerService {
	return &WorkerService{repo: repo}
}

// Register creates an Active worker profile keyed by contact identity.
// Registering an already-known contact is a silent no-op: the existing
// profile comes back with created=false and no error.
func (s *WorkerService) Register(name, contact string) (*models.WorkerProfile, bool, error) {
	existing, err := s.repo.GetByContact(contact)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, models.ErrNotFound) {
		return nil, false, fmt.Errorf("failed to check worker registration: %w", err)
	}

	worker := &models.WorkerProfile{
		WorkerID:     contact,
		Name:         name,
		Contact:      contact,
		Status:       models.WorkerActive,
		RegisteredAt: time.Now().UTC(),
	}
	if err := s.repo.Insert(worker); err != nil {
		return nil, false, fmt.Errorf("failed to register worker: %w", err)
	}
	log.Printf("[worker] registered %s (%s)", name, contact)
	return worker, true, nil
}

// List returns all registered workers; ordering is unspecified
func (s *WorkerService) List() ([]models.WorkerProfile, error) {
	workers, err := s.repo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list workers: %w", err)
	}
	return workers, nil
}
