package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/acmepay/transactions/internal/pkg/models"
	"github.com/acmepay/transactions/services/report"
)

// ReportUC implements the report.ReportUseCase interface over the ledger
// store. All queries are read-only and safe to run concurrently with
// ingestion.
type ReportUC struct {
	repo report.ReportRepo
}

// NewReportUC creates a new report use case.
func NewReportUC(repo report.ReportRepo) report.ReportUseCase {
	return &ReportUC{repo: repo}
}

// toRange converts inclusive calendar-date bounds into the repository's
// half-open range. The end date covers its whole day.
func toRange(start, end *time.Time) report.Range {
	rng := report.Range{Start: start}
	if end != nil {
		exclusive := end.AddDate(0, 0, 1)
		rng.EndExclusive = &exclusive
	}
	return rng
}

// PaymentsByUser returns every payment the user sent or received, ordered by
// timestamp ascending. A user with no transactions yields an empty list.
func (uc *ReportUC) PaymentsByUser(ctx context.Context, userID string, start, end *time.Time) ([]models.PaymentRecord, error) {
	txs, err := uc.repo.TransactionsByUser(ctx, userID, toRange(start, end))
	if err != nil {
		return nil, fmt.Errorf("failed to get payments for user %s: %w", userID, err)
	}

	records := make([]models.PaymentRecord, 0, len(txs))
	for _, tx := range txs {
		records = append(records, models.PaymentRecord{
			ID:         tx.ID,
			SenderID:   tx.SenderID,
			ReceiverID: tx.ReceiverID,
			Amount:     tx.Amount,
			Currency:   tx.Currency,
			Timestamp:  tx.Timestamp.Format(time.RFC3339),
			Status:     string(tx.Status),
		})
	}
	return records, nil
}

// DailyTotals returns one entry per calendar day on which the user sent or
// received at least one transaction, sorted ascending by day. A day with only
// one side active reports zero for the other; inactive days are omitted.
func (uc *ReportUC) DailyTotals(ctx context.Context, userID string, start, end *time.Time) ([]models.DailyTotal, error) {
	rng := toRange(start, end)

	sent, err := uc.repo.SumByDay(ctx, userID, report.RoleSender, rng)
	if err != nil {
		return nil, fmt.Errorf("failed to get sent totals for user %s: %w", userID, err)
	}
	received, err := uc.repo.SumByDay(ctx, userID, report.RoleReceiver, rng)
	if err != nil {
		return nil, fmt.Errorf("failed to get received totals for user %s: %w", userID, err)
	}

	days := make([]string, 0, len(sent)+len(received))
	seen := map[string]bool{}
	for day := range sent {
		if !seen[day] {
			seen[day] = true
			days = append(days, day)
		}
	}
	for day := range received {
		if !seen[day] {
			seen[day] = true
			days = append(days, day)
		}
	}
	sort.Strings(days)

	totals := make([]models.DailyTotal, 0, len(days))
	for _, day := range days {
		totals = append(totals, models.DailyTotal{
			Day:           day,
			TotalSent:     sent[day],
			TotalReceived: received[day],
		})
	}
	return totals, nil
}
