package report

import (
	"context"
	"time"

	"github.com/acmepay/transactions/internal/pkg/models"
)

// Role selects which side of a transaction a user is on when aggregating.
type Role string

const (
	RoleSender   Role = "sender"
	RoleReceiver Role = "receiver"
)

// Range bounds a query by timestamp. Start is inclusive and EndExclusive is,
// as named, exclusive; callers working with inclusive end dates convert before
// reaching the repository.
type Range struct {
	Start        *time.Time
	EndExclusive *time.Time
}

// ReportRepo defines the read-only ledger queries the aggregation engine
// needs. Queries hold no locks beyond the store's own read consistency.
type ReportRepo interface {
	// TransactionsByUser returns transactions where the user is sender or
	// receiver, ordered by timestamp ascending.
	TransactionsByUser(ctx context.Context, userID string, rng Range) ([]models.Transaction, error)
	// SumByDay returns per-calendar-day amount sums for the user in the given
	// role, keyed by ISO date.
	SumByDay(ctx context.Context, userID string, role Role, rng Range) (map[string]float64, error)
}
