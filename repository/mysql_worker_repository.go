package repository

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"janseva/models"
)

// MySQLWorkerRepository persists the worker directory in MySQL
type MySQLWorkerRepository struct {
	db *sql.DB
}

// NewMySQLWorkerRepository creates a MySQL-backed worker repository
func NewMySQLWorkerRepository(db *sql.DB) *MySQLWorkerRepository {
	return &MySQLWorkerRepository{db: db}
}

// Insert creates a new worker profile
func (r *MySQLWorkerRepository) Insert(worker *models.WorkerProfile) error {
	data, err := json.Marshal(worker)
	if err != nil {
		return fmt.Errorf("failed to serialize worker: %w", err)
	}

	query := `
		INSERT INTO workers (worker_id, contact, created_at, data)
		VALUES (?, ?, ?, ?)
	`
	_, err = r.db.Exec(query, worker.WorkerID, worker.Contact, worker.RegisteredAt, data)
	if err != nil {
		return fmt.Errorf("failed to insert worker: %w", err)
	}
	return nil
}

// GetByContact retrieves a worker profile by its contact identity
func (r *MySQLWorkerRepository) GetByContact(contact string) (*models.WorkerProfile, error) {
	var data []byte
	err := r.db.QueryRow(`SELECT data FROM workers WHERE contact = ?`, contact).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("worker %s: %w", contact, models.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query worker: %w", err)
	}

	var worker models.WorkerProfile
	if err := json.Unmarshal(data, &worker); err != nil {
		log.Printf("[store] integrity warning: worker %s has malformed data: %v", contact, err)
		return nil, fmt.Errorf("worker %s: %w", contact, models.ErrNotFound)
	}
	return &worker, nil
}

// List returns all worker profiles. Ordering is unspecified; consumers must
// not rely on it.
func (r *MySQLWorkerRepository) List() ([]models.WorkerProfile, error) {
	rows, err := r.db.Query(`SELECT worker_id, data FROM workers`)
	if err != nil {
		return nil, fmt.Errorf("failed to query workers: %w", err)
	}
	defer rows.Close()

	var workers []models.WorkerProfile
	for rows.Next() {
		var id string
		var data []byte
		if err := rows.Scan(&id, &data); err != nil {
			return nil, fmt.Errorf("failed to scan worker row: %w", err)
		}
		var worker models.WorkerProfile
		if err := json.Unmarshal(data, &worker); err != nil {
			log.Printf("[store] integrity warning: skipping worker %s with malformed data: %v", id, err)
			continue
		}
		workers = append(workers, worker)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating workers: %w", err)
	}
	return workers, nil
}
