package models

import (
	"fmt"
	"time"
)

// TransactionStatus is the closed set of states a ledger transaction can be in.
type TransactionStatus string

const (
	StatusPending   TransactionStatus = "pending"
	StatusCompleted TransactionStatus = "completed"
	StatusFailed    TransactionStatus = "failed"
)

// ParseTransactionStatus converts a raw status string into a TransactionStatus.
// Anything outside the closed set is rejected.
func ParseTransactionStatus(s string) (TransactionStatus, error) {
	switch TransactionStatus(s) {
	case StatusPending:
		return StatusPending, nil
	case StatusCompleted:
		return StatusCompleted, nil
	case StatusFailed:
		return StatusFailed, nil
	default:
		return "", fmt.Errorf("Invalid status: %s", s)
	}
}

// Transaction represents an accepted payment transaction in the ledger.
// The id doubles as the idempotency key: a second record carrying an id
// already present in the ledger is discarded, never overwritten.
type Transaction struct {
	ID         string            `json:"id" db:"id"`
	SenderID   string            `json:"sender_id" db:"sender_id"`
	ReceiverID string            `json:"receiver_id" db:"receiver_id"`
	Amount     float64           `json:"amount" db:"amount"`
	Currency   string            `json:"currency" db:"currency"`
	Timestamp  time.Time         `json:"timestamp" db:"timestamp"`
	Status     TransactionStatus `json:"status" db:"status"`
}
