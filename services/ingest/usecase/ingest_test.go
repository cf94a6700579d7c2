package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/acmepay/transactions/internal/pkg/logger"
	"github.com/acmepay/transactions/internal/pkg/models"
	"github.com/acmepay/transactions/services/ingest"
)

// Mock ledger repository
type MockLedgerRepo struct {
	mock.Mock
}

func (m *MockLedgerRepo) GetByID(ctx context.Context, id string) (*models.Transaction, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Transaction), args.Error(1)
}

func (m *MockLedgerRepo) Insert(ctx context.Context, tx *models.Transaction) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

// Mock quarantine repository
type MockQuarantineRepo struct {
	mock.Mock
}

func (m *MockQuarantineRepo) Append(ctx context.Context, rec *models.RejectedRecord) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}

// Mock alert publisher
type MockAlertPublisher struct {
	mock.Mock
}

func (m *MockAlertPublisher) Publish(topic string, message interface{}) error {
	args := m.Called(topic, message)
	return args.Error(0)
}

func testConfig() *models.Config {
	return &models.Config{
		Ingest: models.IngestConfig{SuspiciousAmount: 10000},
		NSQ:    models.NSQConfig{AlertTopic: "transactions.suspicious"},
	}
}

func testLogger(t *testing.T) *logger.AppLogger {
	log, err := logger.NewAppLogger(models.LoggerConfig{Level: "panic"})
	require.NoError(t, err)
	return log
}

func TestIngestQuarantinesInvalidRecord(t *testing.T) {
	ledger := new(MockLedgerRepo)
	quarantine := new(MockQuarantineRepo)
	uc := NewIngestUC(testConfig(), ledger, quarantine, nil, testLogger(t))

	raw := validRecord()
	delete(raw, "amount")
	payload := raw.Encode()

	quarantine.On("Append", mock.Anything, mock.MatchedBy(func(rec *models.RejectedRecord) bool {
		return rec.Reason == "Missing field: amount" &&
			rec.Payload == payload &&
			rec.Source == models.SourceCSV
	})).Return(nil)

	res, err := uc.Ingest(context.Background(), raw, payload, models.SourceCSV)

	require.NoError(t, err)
	assert.Equal(t, models.OutcomeQuarantined, res.Outcome)
	assert.Equal(t, "Missing field: amount", res.Reason)
	quarantine.AssertExpectations(t)
	ledger.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestIngestQuarantinesInvalidStatus(t *testing.T) {
	ledger := new(MockLedgerRepo)
	quarantine := new(MockQuarantineRepo)
	uc := NewIngestUC(testConfig(), ledger, quarantine, nil, testLogger(t))

	raw := validRecord()
	raw["status"] = "exploded"

	quarantine.On("Append", mock.Anything, mock.Anything).Return(nil)

	res, err := uc.Ingest(context.Background(), raw, raw.Encode(), models.SourceQueue)

	require.NoError(t, err)
	assert.Equal(t, models.OutcomeQuarantined, res.Outcome)
	assert.Equal(t, "Invalid status: exploded", res.Reason)
}

func TestIngestAcceptsValidRecord(t *testing.T) {
	ledger := new(MockLedgerRepo)
	quarantine := new(MockQuarantineRepo)
	uc := NewIngestUC(testConfig(), ledger, quarantine, nil, testLogger(t))

	ledger.On("GetByID", mock.Anything, "tx1").Return(nil, nil)
	ledger.On("Insert", mock.Anything, mock.MatchedBy(func(tx *models.Transaction) bool {
		return tx.ID == "tx1" &&
			tx.SenderID == "user1" &&
			tx.ReceiverID == "user2" &&
			tx.Amount == 250.0 &&
			tx.Currency == "USD" &&
			tx.Status == models.StatusCompleted &&
			tx.Timestamp.UTC().Equal(time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC))
	})).Return(nil)

	res, err := uc.Ingest(context.Background(), validRecord(), "", models.SourceCSV)

	require.NoError(t, err)
	assert.Equal(t, models.OutcomeAccepted, res.Outcome)
	assert.Equal(t, "tx1", res.TransactionID)
	assert.False(t, res.Suspicious)
	ledger.AssertExpectations(t)
	quarantine.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
}

func TestIngestDetectsDuplicate(t *testing.T) {
	ledger := new(MockLedgerRepo)
	quarantine := new(MockQuarantineRepo)
	uc := NewIngestUC(testConfig(), ledger, quarantine, nil, testLogger(t))

	existing := &models.Transaction{ID: "tx1"}
	ledger.On("GetByID", mock.Anything, "tx1").Return(existing, nil)

	res, err := uc.Ingest(context.Background(), validRecord(), "", models.SourceCSV)

	require.NoError(t, err)
	assert.Equal(t, models.OutcomeDuplicate, res.Outcome)
	ledger.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
	quarantine.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
}

func TestIngestTreatsRacingInsertAsDuplicate(t *testing.T) {
	ledger := new(MockLedgerRepo)
	quarantine := new(MockQuarantineRepo)
	uc := NewIngestUC(testConfig(), ledger, quarantine, nil, testLogger(t))

	ledger.On("GetByID", mock.Anything, "tx1").Return(nil, nil)
	ledger.On("Insert", mock.Anything, mock.Anything).Return(ingest.ErrDuplicateTransaction)

	res, err := uc.Ingest(context.Background(), validRecord(), "", models.SourceQueue)

	require.NoError(t, err)
	assert.Equal(t, models.OutcomeDuplicate, res.Outcome)
}

func TestIngestPropagatesStoreFailure(t *testing.T) {
	ledger := new(MockLedgerRepo)
	quarantine := new(MockQuarantineRepo)
	uc := NewIngestUC(testConfig(), ledger, quarantine, nil, testLogger(t))

	storeErr := errors.New("connection refused")
	ledger.On("GetByID", mock.Anything, "tx1").Return(nil, nil)
	ledger.On("Insert", mock.Anything, mock.Anything).Return(storeErr)

	_, err := uc.Ingest(context.Background(), validRecord(), "", models.SourceCSV)

	require.Error(t, err)
	assert.ErrorIs(t, err, storeErr)
	quarantine.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
}

func TestIngestPropagatesDuplicateCheckFailure(t *testing.T) {
	ledger := new(MockLedgerRepo)
	quarantine := new(MockQuarantineRepo)
	uc := NewIngestUC(testConfig(), ledger, quarantine, nil, testLogger(t))

	storeErr := errors.New("connection refused")
	ledger.On("GetByID", mock.Anything, "tx1").Return(nil, storeErr)

	_, err := uc.Ingest(context.Background(), validRecord(), "", models.SourceCSV)

	require.Error(t, err)
	assert.ErrorIs(t, err, storeErr)
}

func TestIngestFlagsSuspiciousAmount(t *testing.T) {
	ledger := new(MockLedgerRepo)
	quarantine := new(MockQuarantineRepo)
	alerts := new(MockAlertPublisher)
	uc := NewIngestUC(testConfig(), ledger, quarantine, alerts, testLogger(t))

	raw := validRecord()
	raw["amount"] = "20000"

	ledger.On("GetByID", mock.Anything, "tx1").Return(nil, nil)
	ledger.On("Insert", mock.Anything, mock.Anything).Return(nil)
	alerts.On("Publish", "transactions.suspicious", mock.Anything).Return(nil)

	res, err := uc.Ingest(context.Background(), raw, "", models.SourceCSV)

	require.NoError(t, err)
	assert.Equal(t, models.OutcomeAccepted, res.Outcome)
	assert.True(t, res.Suspicious)
	alerts.AssertExpectations(t)
}

func TestIngestSuspiciousPublishFailureDoesNotBlock(t *testing.T) {
	ledger := new(MockLedgerRepo)
	quarantine := new(MockQuarantineRepo)
	alerts := new(MockAlertPublisher)
	uc := NewIngestUC(testConfig(), ledger, quarantine, alerts, testLogger(t))

	raw := validRecord()
	raw["amount"] = "99999"

	ledger.On("GetByID", mock.Anything, "tx1").Return(nil, nil)
	ledger.On("Insert", mock.Anything, mock.Anything).Return(nil)
	alerts.On("Publish", mock.Anything, mock.Anything).Return(errors.New("nsq down"))

	res, err := uc.Ingest(context.Background(), raw, "", models.SourceQueue)

	require.NoError(t, err)
	assert.Equal(t, models.OutcomeAccepted, res.Outcome)
	assert.True(t, res.Suspicious)
}

func TestIngestAtThresholdIsNotSuspicious(t *testing.T) {
	ledger := new(MockLedgerRepo)
	quarantine := new(MockQuarantineRepo)
	alerts := new(MockAlertPublisher)
	uc := NewIngestUC(testConfig(), ledger, quarantine, alerts, testLogger(t))

	raw := validRecord()
	raw["amount"] = "10000"

	ledger.On("GetByID", mock.Anything, "tx1").Return(nil, nil)
	ledger.On("Insert", mock.Anything, mock.Anything).Return(nil)

	res, err := uc.Ingest(context.Background(), raw, "", models.SourceCSV)

	require.NoError(t, err)
	assert.False(t, res.Suspicious)
	alerts.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestQuarantineAppendFailurePropagates(t *testing.T) {
	ledger := new(MockLedgerRepo)
	quarantine := new(MockQuarantineRepo)
	uc := NewIngestUC(testConfig(), ledger, quarantine, nil, testLogger(t))

	storeErr := errors.New("connection refused")
	quarantine.On("Append", mock.Anything, mock.Anything).Return(storeErr)

	_, err := uc.Quarantine(context.Background(), "bad payload", "{", models.SourceQueue)

	require.Error(t, err)
	assert.ErrorIs(t, err, storeErr)
}
