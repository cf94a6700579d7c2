package report

import (
	"context"
	"time"

	"github.com/acmepay/transactions/internal/pkg/models"
)

// ReportUseCase defines the aggregation queries exposed to the HTTP and CLI
// surfaces. start and end are calendar dates; both bounds are inclusive, and
// end covers the whole end day.
type ReportUseCase interface {
	PaymentsByUser(ctx context.Context, userID string, start, end *time.Time) ([]models.PaymentRecord, error)
	DailyTotals(ctx context.Context, userID string, start, end *time.Time) ([]models.DailyTotal, error)
}
