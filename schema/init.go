package schema

import (
	"database/sql"
	"fmt"
	"log"
)

// Init creates the storage tables if they do not exist. Each collection is
// one table: indexed key columns plus the full record as a JSON document.
func Init(db *sql.DB) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS complaints (
			complaint_id   VARCHAR(64)  NOT NULL PRIMARY KEY,
			current_status VARCHAR(32)  NOT NULL,
			created_at     DATETIME(6)  NOT NULL,
			data           JSON         NOT NULL,
			INDEX idx_complaints_status (current_status),
			INDEX idx_complaints_created (created_at)
		)`,
		`CREATE TABLE IF NOT EXISTS notifications_log (
			notification_id VARCHAR(64)  NOT NULL PRIMARY KEY,
			recipient_role  VARCHAR(16)  NOT NULL,
			is_read         TINYINT(1)   NOT NULL DEFAULT 0,
			created_at      DATETIME(6)  NOT NULL,
			data            JSON         NOT NULL,
			INDEX idx_notifications_role (recipient_role, created_at)
		)`,
		`CREATE TABLE IF NOT EXISTS workers (
			worker_id  VARCHAR(128) NOT NULL PRIMARY KEY,
			contact    VARCHAR(128) NOT NULL UNIQUE,
			created_at DATETIME(6)  NOT NULL,
			data       JSON         NOT NULL
		)`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to initialize schema: %w", err)
		}
	}
	log.Println("[schema] storage tables ready")
	return nil
}
