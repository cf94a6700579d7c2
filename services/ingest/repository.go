package ingest

import (
	"context"
	"errors"

	"github.com/acmepay/transactions/internal/pkg/models"
)

// ErrDuplicateTransaction is returned by LedgerRepo.Insert when a transaction
// with the same id already exists. It is an outcome, not a failure: the
// pipeline maps it to a duplicate result.
var ErrDuplicateTransaction = errors.New("duplicate transaction id")

// LedgerRepo defines the interface for ledger store operations.
type LedgerRepo interface {
	// GetByID returns the transaction with the given id, or nil if absent.
	GetByID(ctx context.Context, id string) (*models.Transaction, error)
	// Insert stores a new transaction. A racing insert of the same id must
	// surface as ErrDuplicateTransaction, never as a generic failure.
	Insert(ctx context.Context, tx *models.Transaction) error
}

// QuarantineRepo defines the interface for the append-only quarantine store.
type QuarantineRepo interface {
	Append(ctx context.Context, rec *models.RejectedRecord) error
}
