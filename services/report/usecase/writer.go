package usecase

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/acmepay/transactions/internal/pkg/logger"
	"github.com/acmepay/transactions/internal/pkg/models"
	"github.com/acmepay/transactions/services/report"
)

// UserLister supplies the users to generate reports for.
type UserLister interface {
	ListUsers(ctx context.Context) ([]models.User, error)
}

// ReportWriter generates the monthly per-user report files: one JSON bundle
// plus payments and daily-totals CSVs per user.
type ReportWriter struct {
	reports report.ReportUseCase
	users   UserLister
	log     *logger.AppLogger
}

// NewReportWriter creates a new report writer.
func NewReportWriter(reports report.ReportUseCase, users UserLister, log *logger.AppLogger) *ReportWriter {
	return &ReportWriter{reports: reports, users: users, log: log}
}

// MonthRange returns the first and last day of the target month. targetMonth
// is "YYYY-MM"; empty means the current month.
func MonthRange(targetMonth string) (time.Time, time.Time, error) {
	var first time.Time
	if targetMonth == "" {
		now := time.Now()
		first = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	} else {
		parsed, err := time.Parse("2006-01", targetMonth)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid month %q: %w", targetMonth, err)
		}
		first = parsed
	}
	last := first.AddDate(0, 1, -1)
	return first, last, nil
}

// WriteMonthlyReports generates reports for every user for the target month
// into outputDir. A failure for one user is logged and does not stop the
// others.
func (w *ReportWriter) WriteMonthlyReports(ctx context.Context, outputDir, targetMonth string) error {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
	}

	start, end, err := MonthRange(targetMonth)
	if err != nil {
		return err
	}

	users, err := w.users.ListUsers(ctx)
	if err != nil {
		return fmt.Errorf("failed to list users: %w", err)
	}

	month := start.Format("2006-01-02")
	for _, user := range users {
		if err := w.writeUserReports(ctx, outputDir, user.ID, month, start, end); err != nil {
			w.log.WithError(err).WithFields(logrus.Fields{"user_id": user.ID}).
				Error("Failed to generate report")
			continue
		}
		w.log.WithFields(logrus.Fields{"user_id": user.ID, "month": month}).
			Info("Report generated")
	}
	return nil
}

func (w *ReportWriter) writeUserReports(ctx context.Context, outputDir, userID, month string, start, end time.Time) error {
	payments, err := w.reports.PaymentsByUser(ctx, userID, &start, &end)
	if err != nil {
		return err
	}
	daily, err := w.reports.DailyTotals(ctx, userID, &start, &end)
	if err != nil {
		return err
	}

	bundle := models.MonthlyReport{Payments: payments, DailyTotals: daily}
	data, err := json.MarshalIndent(bundle, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}
	jsonPath := filepath.Join(outputDir, fmt.Sprintf("%s_monthly_%s.json", userID, month))
	if err := os.WriteFile(jsonPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write JSON report: %w", err)
	}

	paymentsPath := filepath.Join(outputDir, fmt.Sprintf("%s_payments_%s.csv", userID, month))
	if err := writeCSVFile(paymentsPath, PaymentsCSV(payments)); err != nil {
		return err
	}

	dailyPath := filepath.Join(outputDir, fmt.Sprintf("%s_daily_totals_%s.csv", userID, month))
	return writeCSVFile(dailyPath, DailyTotalsCSV(daily))
}

// PaymentsCSV renders payment records as CSV rows with a header.
func PaymentsCSV(payments []models.PaymentRecord) [][]string {
	rows := [][]string{{"id", "sender_id", "receiver_id", "amount", "currency", "timestamp", "status"}}
	for _, p := range payments {
		rows = append(rows, []string{
			p.ID,
			p.SenderID,
			p.ReceiverID,
			strconv.FormatFloat(p.Amount, 'f', -1, 64),
			p.Currency,
			p.Timestamp,
			p.Status,
		})
	}
	return rows
}

// DailyTotalsCSV renders daily totals as CSV rows with a header.
func DailyTotalsCSV(totals []models.DailyTotal) [][]string {
	rows := [][]string{{"day", "total_sent", "total_received"}}
	for _, t := range totals {
		rows = append(rows, []string{
			t.Day,
			strconv.FormatFloat(t.TotalSent, 'f', -1, 64),
			strconv.FormatFloat(t.TotalReceived, 'f', -1, 64),
		})
	}
	return rows
}

func writeCSVFile(path string, rows [][]string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	writer.Flush()
	return writer.Error()
}
