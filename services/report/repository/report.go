package repository

import (
	"context"
	"fmt"
	"strconv"

	"github.com/jmoiron/sqlx"

	"github.com/acmepay/transactions/internal/pkg/models"
	"github.com/acmepay/transactions/services/report"
)

// ReportRepo implements the report.ReportRepo interface on PostgreSQL.
type ReportRepo struct {
	db *sqlx.DB
}

// NewReportRepo creates a new report repository.
func NewReportRepo(db *sqlx.DB) report.ReportRepo {
	return &ReportRepo{db: db}
}

// TransactionsByUser returns transactions where the user is sender or
// receiver, ordered by timestamp ascending.
func (r *ReportRepo) TransactionsByUser(ctx context.Context, userID string, rng report.Range) ([]models.Transaction, error) {
	query := `
		SELECT id, sender_id, receiver_id, amount, currency, timestamp, status
		FROM transactions
		WHERE (sender_id = $1 OR receiver_id = $1)
	`
	args := []interface{}{userID}
	query, args = appendRange(query, args, rng)
	query += " ORDER BY timestamp ASC"

	var txs []models.Transaction
	if err := r.db.SelectContext(ctx, &txs, query, args...); err != nil {
		return nil, fmt.Errorf("failed to query transactions for user %s: %w", userID, err)
	}
	return txs, nil
}

// SumByDay aggregates amounts per calendar day for the user in the given role.
func (r *ReportRepo) SumByDay(ctx context.Context, userID string, role report.Role, rng report.Range) (map[string]float64, error) {
	var column string
	switch role {
	case report.RoleSender:
		column = "sender_id"
	case report.RoleReceiver:
		column = "receiver_id"
	default:
		return nil, fmt.Errorf("unknown role: %s", role)
	}

	query := fmt.Sprintf(`
		SELECT DATE(timestamp)::text AS day, SUM(amount) AS total
		FROM transactions
		WHERE %s = $1
	`, column)
	args := []interface{}{userID}
	query, args = appendRange(query, args, rng)
	query += " GROUP BY DATE(timestamp)"

	rows := []struct {
		Day   string  `db:"day"`
		Total float64 `db:"total"`
	}{}
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to sum amounts by day for user %s: %w", userID, err)
	}

	totals := make(map[string]float64, len(rows))
	for _, row := range rows {
		totals[row.Day] = row.Total
	}
	return totals, nil
}

func appendRange(query string, args []interface{}, rng report.Range) (string, []interface{}) {
	if rng.Start != nil {
		args = append(args, *rng.Start)
		query += " AND timestamp >= $" + strconv.Itoa(len(args))
	}
	if rng.EndExclusive != nil {
		args = append(args, *rng.EndExclusive)
		query += " AND timestamp < $" + strconv.Itoa(len(args))
	}
	return query, args
}
