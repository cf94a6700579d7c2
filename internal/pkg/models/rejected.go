package models

import "time"

// Ingestion source tags recorded on quarantined records.
const (
	SourceCSV   = "csv"
	SourceQueue = "queue"
)

// RejectedRecord stores a raw payload that failed validation or could not be
// decoded, retained for manual remediation. Records are written once and never
// read back by the ingestion core.
type RejectedRecord struct {
	ID         string    `json:"id" db:"id"`
	ReceivedAt time.Time `json:"received_at" db:"received_at"`
	Reason     string    `json:"reason" db:"reason"`
	Payload    string    `json:"payload" db:"payload"`
	Source     string    `json:"source" db:"source"`
}
