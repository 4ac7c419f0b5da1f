package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log"

	"janseva/models"
)

// MySQLNotificationRepository persists the notification log in MySQL
type MySQLNotificationRepository struct {
	db *sql.DB
}

// NewMySQLNotificationRepository creates a MySQL-backed notification repository
func NewMySQLNotificationRepository(db *sql.DB) *MySQLNotificationRepository {
	return &MySQLNotificationRepository{db: db}
}

// Insert appends a notification to the log
func (r *MySQLNotificationRepository) Insert(notification *models.Notification) error {
	data, err := json.Marshal(notification)
	if err != nil {
		return fmt.Errorf("failed to serialize notification: %w", err)
	}

	query := `
		INSERT INTO notifications_log (notification_id, recipient_role, is_read, created_at, data)
		VALUES (?, ?, ?, ?, ?)
	`
	_, err = r.db.Exec(query, notification.NotificationID, notification.RecipientRole,
		notification.Read, notification.Timestamp, data)
	if err != nil {
		return fmt.Errorf("failed to insert notification: %w", err)
	}
	return nil
}

// MarkRead flips the read flag. Unknown ids are a silent no-op.
func (r *MySQLNotificationRepository) MarkRead(notificationID string) error {
	query := `
		UPDATE notifications_log
		SET is_read = 1, data = JSON_SET(data, '$.read', true)
		WHERE notification_id = ?
	`
	if _, err := r.db.Exec(query, notificationID); err != nil {
		return fmt.Errorf("failed to mark notification read: %w", err)
	}
	return nil
}

// List returns notifications most-recent-first, optionally filtered by role
// (empty role means all).
func (r *MySQLNotificationRepository) List(role models.RecipientRole) ([]models.Notification, error) {
	query := `SELECT notification_id, data FROM notifications_log`
	args := []interface{}{}
	if role != "" {
		query += ` WHERE recipient_role = ?`
		args = append(args, role)
	}
	query += ` ORDER BY created_at DESC, notification_id DESC`

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query notifications: %w", err)
	}
	defer rows.Close()

	var notifications []models.Notification
	for rows.Next() {
		var id string
		var data []byte
		if err := rows.Scan(&id, &data); err != nil {
			return nil, fmt.Errorf("failed to scan notification row: %w", err)
		}
		var notification models.Notification
		if err := json.Unmarshal(data, &notification); err != nil {
			log.Printf("[store] integrity warning: skipping notification %s with malformed data: %v", id, err)
			continue
		}
		notifications = append(notifications, notification)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating notifications: %w", err)
	}
	return notifications, nil
}
