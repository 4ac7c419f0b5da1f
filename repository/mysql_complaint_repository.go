package repository

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"janseva/models"
)

// MySQLComplaintRepository persists complaint records in MySQL. Each record
// is stored as a JSON document alongside indexed key columns; the nested
// append-only arrays (timeline, fake reports) live inside the document.
type MySQLComplaintRepository struct {
	db *sql.DB
}

// NewMySQLComplaintRepository creates a MySQL-backed complaint repository
func NewMySQLComplaintRepository(db *sql.DB) *MySQLComplaintRepository {
	return &MySQLComplaintRepository{db: db}
}

// Insert creates a new complaint row
func (r *MySQLComplaintRepository) Insert(complaint *models.Complaint) error {
	data, err := json.Marshal(complaint)
	if err != nil {
		return fmt.Errorf("failed to serialize complaint: %w", err)
	}

	query := `
		INSERT INTO complaints (complaint_id, current_status, created_at, data)
		VALUES (?, ?, ?, ?)
	`
	_, err = r.db.Exec(query, complaint.ComplaintID, complaint.CurrentStatus, complaint.CreatedAt, data)
	if err != nil {
		return fmt.Errorf("failed to insert complaint: %w", err)
	}
	return nil
}

// Update rewrites the full record for an existing complaint
func (r *MySQLComplaintRepository) Update(complaint *models.Complaint) error {
	data, err := json.Marshal(complaint)
	if err != nil {
		return fmt.Errorf("failed to serialize complaint: %w", err)
	}

	query := `
		UPDATE complaints SET current_status = ?, data = ?
		WHERE complaint_id = ?
	`
	result, err := r.db.Exec(query, complaint.CurrentStatus, data, complaint.ComplaintID)
	if err != nil {
		return fmt.Errorf("failed to update complaint: %w", err)
	}
	affected, err := result.RowsAffected()
	if err == nil && affected == 0 {
		// Distinguish "row unchanged" from "row missing"
		var exists int
		if scanErr := r.db.QueryRow(`SELECT COUNT(*) FROM complaints WHERE complaint_id = ?`, complaint.ComplaintID).Scan(&exists); scanErr == nil && exists == 0 {
			return fmt.Errorf("complaint %s: %w", complaint.ComplaintID, models.ErrNotFound)
		}
	}
	return nil
}

// GetByID retrieves a single complaint
func (r *MySQLComplaintRepository) GetByID(complaintID string) (*models.Complaint, error) {
	var data []byte
	err := r.db.QueryRow(`SELECT data FROM complaints WHERE complaint_id = ?`, complaintID).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("complaint %s: %w", complaintID, models.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query complaint: %w", err)
	}

	var complaint models.Complaint
	if err := json.Unmarshal(data, &complaint); err != nil {
		// Fail closed on the read path: a corrupt row reads as absent
		log.Printf("[store] integrity warning: complaint %s has malformed data: %v", complaintID, err)
		return nil, fmt.Errorf("complaint %s: %w", complaintID, models.ErrNotFound)
	}
	return &complaint, nil
}

// List returns all complaints, newest first
func (r *MySQLComplaintRepository) List() ([]models.Complaint, error) {
	rows, err := r.db.Query(`SELECT complaint_id, data FROM complaints ORDER BY created_at DESC, complaint_id DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query complaints: %w", err)
	}
	defer rows.Close()

	var complaints []models.Complaint
	for rows.Next() {
		var id string
		var data []byte
		if err := rows.Scan(&id, &data); err != nil {
			return nil, fmt.Errorf("failed to scan complaint row: %w", err)
		}
		var complaint models.Complaint
		if err := json.Unmarshal(data, &complaint); err != nil {
			log.Printf("[store] integrity warning: skipping complaint %s with malformed data: %v", id, err)
			continue
		}
		complaints = append(complaints, complaint)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating complaints: %w", err)
	}
	return complaints, nil
}
