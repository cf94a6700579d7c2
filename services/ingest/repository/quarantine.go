package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/acmepay/transactions/internal/pkg/models"
	"github.com/acmepay/transactions/services/ingest"
)

// QuarantineRepo implements the ingest.QuarantineRepo interface on PostgreSQL.
// The table is append-only; nothing in the system updates or deletes from it.
type QuarantineRepo struct {
	db *sqlx.DB
}

// NewQuarantineRepo creates a new quarantine repository.
func NewQuarantineRepo(db *sqlx.DB) ingest.QuarantineRepo {
	return &QuarantineRepo{db: db}
}

// Append stores a rejected record.
func (r *QuarantineRepo) Append(ctx context.Context, rec *models.RejectedRecord) error {
	query := `
		INSERT INTO rejected_records (id, received_at, reason, payload, source)
		VALUES (:id, :received_at, :reason, :payload, :source)
	`
	if _, err := r.db.NamedExecContext(ctx, query, rec); err != nil {
		return fmt.Errorf("failed to insert rejected record: %w", err)
	}
	return nil
}
