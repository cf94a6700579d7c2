package usecase

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/acmepay/transactions/internal/pkg/logger"
	"github.com/acmepay/transactions/internal/pkg/models"
	"github.com/acmepay/transactions/services/report"
)

type fakeUserLister struct {
	users []models.User
}

func (f *fakeUserLister) ListUsers(ctx context.Context) ([]models.User, error) {
	return f.users, nil
}

func TestMonthRange(t *testing.T) {
	first, last, err := MonthRange("2025-05")

	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC), first)
	assert.Equal(t, time.Date(2025, 5, 31, 0, 0, 0, 0, time.UTC), last)
}

func TestMonthRangeDecemberRollover(t *testing.T) {
	first, last, err := MonthRange("2025-12")

	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC), first)
	assert.Equal(t, time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC), last)
}

func TestMonthRangeFebruary(t *testing.T) {
	_, last, err := MonthRange("2024-02")

	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), last)
}

func TestMonthRangeInvalid(t *testing.T) {
	_, _, err := MonthRange("May 2025")

	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid month "May 2025"`)
}

func TestWriteMonthlyReports(t *testing.T) {
	log, err := logger.NewAppLogger(models.LoggerConfig{Level: "panic"})
	require.NoError(t, err)

	repo := new(MockReportRepo)
	repo.On("TransactionsByUser", mock.Anything, "user1", mock.Anything).
		Return([]models.Transaction{
			{ID: "tx1", SenderID: "user1", ReceiverID: "user2", Amount: 100, Currency: "USD",
				Timestamp: time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC), Status: models.StatusCompleted},
		}, nil)
	repo.On("SumByDay", mock.Anything, "user1", report.RoleSender, mock.Anything).
		Return(map[string]float64{"2025-05-01": 100}, nil)
	repo.On("SumByDay", mock.Anything, "user1", report.RoleReceiver, mock.Anything).
		Return(map[string]float64{}, nil)

	users := &fakeUserLister{users: []models.User{{ID: "user1", Name: "Alice"}}}
	writer := NewReportWriter(NewReportUC(repo), users, log)

	dir := t.TempDir()
	require.NoError(t, writer.WriteMonthlyReports(context.Background(), dir, "2025-05"))

	data, err := os.ReadFile(filepath.Join(dir, "user1_monthly_2025-05-01.json"))
	require.NoError(t, err)
	var bundle models.MonthlyReport
	require.NoError(t, json.Unmarshal(data, &bundle))
	require.Len(t, bundle.Payments, 1)
	assert.Equal(t, "tx1", bundle.Payments[0].ID)
	require.Len(t, bundle.DailyTotals, 1)
	assert.Equal(t, 100.0, bundle.DailyTotals[0].TotalSent)

	assert.FileExists(t, filepath.Join(dir, "user1_payments_2025-05-01.csv"))
	assert.FileExists(t, filepath.Join(dir, "user1_daily_totals_2025-05-01.csv"))
}

func TestWriteMonthlyReportsCreatesOutputDir(t *testing.T) {
	log, err := logger.NewAppLogger(models.LoggerConfig{Level: "panic"})
	require.NoError(t, err)

	writer := NewReportWriter(NewReportUC(new(MockReportRepo)), &fakeUserLister{}, log)

	dir := filepath.Join(t.TempDir(), "reports", "nested")
	require.NoError(t, writer.WriteMonthlyReports(context.Background(), dir, "2025-05"))
	assert.DirExists(t, dir)
}

func TestPaymentsCSV(t *testing.T) {
	rows := PaymentsCSV([]models.PaymentRecord{
		{ID: "tx1", SenderID: "user1", ReceiverID: "user2", Amount: 100.5, Currency: "USD",
			Timestamp: "2025-05-01T10:00:00Z", Status: "completed"},
	})

	require.Len(t, rows, 2)
	assert.Equal(t, []string{"id", "sender_id", "receiver_id", "amount", "currency", "timestamp", "status"}, rows[0])
	assert.Equal(t, []string{"tx1", "user1", "user2", "100.5", "USD", "2025-05-01T10:00:00Z", "completed"}, rows[1])
}

func TestDailyTotalsCSV(t *testing.T) {
	rows := DailyTotalsCSV([]models.DailyTotal{
		{Day: "2025-05-01", TotalSent: 100, TotalReceived: 0},
	})

	require.Len(t, rows, 2)
	assert.Equal(t, []string{"day", "total_sent", "total_received"}, rows[0])
	assert.Equal(t, []string{"2025-05-01", "100", "0"}, rows[1])
}
