package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/acmepay/transactions/internal/pkg/database"
	"github.com/acmepay/transactions/internal/pkg/models"
	"github.com/acmepay/transactions/services/ingest"
)

// LedgerRepo implements the ingest.LedgerRepo interface on PostgreSQL, with an
// optional Redis read-through cache for the duplicate check hot path.
// Correctness does not depend on the cache; the unique constraint on the
// transactions table is what makes racing inserts safe.
type LedgerRepo struct {
	db          *sqlx.DB
	redisClient *database.RedisClient
	cacheTTL    time.Duration
}

// NewLedgerRepo creates a new ledger repository. redisClient may be nil to
// disable caching.
func NewLedgerRepo(cfg *models.Config, db *sqlx.DB, redisClient *database.RedisClient) ingest.LedgerRepo {
	ttl := time.Duration(cfg.Ingest.SeenCacheTTLSeconds) * time.Second
	return &LedgerRepo{
		db:          db,
		redisClient: redisClient,
		cacheTTL:    ttl,
	}
}

func seenKey(id string) string {
	return "tx:seen:" + id
}

// GetByID retrieves a transaction by id, returning nil when absent.
func (r *LedgerRepo) GetByID(ctx context.Context, id string) (*models.Transaction, error) {
	if tx := r.cacheGet(ctx, id); tx != nil {
		return tx, nil
	}

	query := `
		SELECT id, sender_id, receiver_id, amount, currency, timestamp, status
		FROM transactions
		WHERE id = $1
	`
	var tx models.Transaction
	err := r.db.GetContext(ctx, &tx, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}

	r.cacheSet(ctx, &tx)
	return &tx, nil
}

// Insert stores a new transaction. A conflicting id results in
// ingest.ErrDuplicateTransaction and leaves the existing row untouched.
func (r *LedgerRepo) Insert(ctx context.Context, tx *models.Transaction) error {
	query := `
		INSERT INTO transactions (id, sender_id, receiver_id, amount, currency, timestamp, status)
		VALUES (:id, :sender_id, :receiver_id, :amount, :currency, :timestamp, :status)
		ON CONFLICT (id) DO NOTHING
	`
	result, err := r.db.NamedExecContext(ctx, query, tx)
	if err != nil {
		return fmt.Errorf("failed to insert transaction: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return ingest.ErrDuplicateTransaction
	}

	r.cacheSet(ctx, tx)
	return nil
}

func (r *LedgerRepo) cacheGet(ctx context.Context, id string) *models.Transaction {
	if r.redisClient == nil {
		return nil
	}
	data, err := r.redisClient.Get(ctx, seenKey(id))
	if err != nil {
		// A miss and cache trouble both fall through to the database.
		return nil
	}
	var tx models.Transaction
	if err := json.Unmarshal([]byte(data), &tx); err != nil {
		return nil
	}
	return &tx
}

func (r *LedgerRepo) cacheSet(ctx context.Context, tx *models.Transaction) {
	if r.redisClient == nil {
		return
	}
	data, err := json.Marshal(tx)
	if err != nil {
		return
	}
	// Best effort only.
	_ = r.redisClient.Set(ctx, seenKey(tx.ID), data, r.cacheTTL)
}
