package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/acmepay/transactions/internal/pkg/logger"
	"github.com/acmepay/transactions/internal/pkg/models"
	"github.com/acmepay/transactions/services/ingest"
)

// IngestUC implements the ingest.IngestUseCase interface. One instance serves
// both the batch and the streaming transport; they differ only in how records
// reach Ingest.
type IngestUC struct {
	cfg        *models.Config
	ledger     ingest.LedgerRepo
	quarantine ingest.QuarantineRepo
	alerts     ingest.AlertPublisher
	log        *logger.AppLogger
}

// NewIngestUC creates the ingestion pipeline. alerts may be nil, in which case
// the suspicious signal is log-only.
func NewIngestUC(cfg *models.Config, ledger ingest.LedgerRepo, quarantine ingest.QuarantineRepo, alerts ingest.AlertPublisher, log *logger.AppLogger) ingest.IngestUseCase {
	return &IngestUC{
		cfg:        cfg,
		ledger:     ledger,
		quarantine: quarantine,
		alerts:     alerts,
		log:        log,
	}
}

// Ingest applies validation, duplicate detection and persistence to one raw
// record. Invalid records are quarantined, seen ids are dropped silently, and
// only store failures propagate as errors.
func (uc *IngestUC) Ingest(ctx context.Context, raw models.RawRecord, payload, source string) (models.IngestResult, error) {
	if err := Validate(raw); err != nil {
		return uc.Quarantine(ctx, err.Error(), payload, source)
	}

	id := raw["transaction_id"]

	existing, err := uc.ledger.GetByID(ctx, id)
	if err != nil {
		return models.IngestResult{}, fmt.Errorf("failed to check for duplicate %s: %w", id, err)
	}
	if existing != nil {
		uc.log.WithFields(logrus.Fields{"transaction_id": id, "source": source}).
			Warn("Duplicate transaction")
		return models.IngestResult{Outcome: models.OutcomeDuplicate, TransactionID: id}, nil
	}

	// Already validated, so these parses cannot fail.
	amount, _ := ParseAmount(raw["amount"])
	timestamp, _ := ParseTimestamp(raw["timestamp"])
	status, _ := models.ParseTransactionStatus(raw["status"])

	tx := &models.Transaction{
		ID:         id,
		SenderID:   raw["sender_id"],
		ReceiverID: raw["receiver_id"],
		Amount:     amount,
		Currency:   raw["currency"],
		Timestamp:  timestamp,
		Status:     status,
	}

	if err := uc.ledger.Insert(ctx, tx); err != nil {
		// A racing consumer inserted the same id first; same outcome as the
		// pre-check catching it.
		if errors.Is(err, ingest.ErrDuplicateTransaction) {
			uc.log.WithFields(logrus.Fields{"transaction_id": id, "source": source}).
				Warn("Duplicate transaction")
			return models.IngestResult{Outcome: models.OutcomeDuplicate, TransactionID: id}, nil
		}
		return models.IngestResult{}, fmt.Errorf("failed to insert transaction %s: %w", id, err)
	}

	suspicious := amount > uc.cfg.Ingest.SuspiciousAmount
	if suspicious {
		uc.signalSuspicious(tx, source)
	}

	uc.log.WithFields(logrus.Fields{"transaction_id": id, "source": source}).
		Info("Inserted transaction")
	return models.IngestResult{Outcome: models.OutcomeAccepted, TransactionID: id, Suspicious: suspicious}, nil
}

// Quarantine appends a rejected record. The only error it can return is a
// quarantine store failure.
func (uc *IngestUC) Quarantine(ctx context.Context, reason, payload, source string) (models.IngestResult, error) {
	rec := &models.RejectedRecord{
		ID:         uuid.New().String(),
		ReceivedAt: time.Now().UTC(),
		Reason:     reason,
		Payload:    payload,
		Source:     source,
	}
	if err := uc.quarantine.Append(ctx, rec); err != nil {
		return models.IngestResult{}, fmt.Errorf("failed to append rejected record: %w", err)
	}

	uc.log.WithFields(logrus.Fields{"reason": reason, "source": source}).
		Error("Invalid record")
	return models.IngestResult{Outcome: models.OutcomeQuarantined, Reason: reason}, nil
}

// signalSuspicious emits the advisory side channel for transactions above the
// configured threshold. Failures are logged and swallowed: the signal never
// blocks or alters persistence.
func (uc *IngestUC) signalSuspicious(tx *models.Transaction, source string) {
	uc.log.WithFields(logrus.Fields{
		"transaction_id": tx.ID,
		"amount":         tx.Amount,
		"source":         source,
	}).Warn("Suspicious transaction")

	if uc.alerts == nil {
		return
	}
	if err := uc.alerts.Publish(uc.cfg.NSQ.AlertTopic, tx); err != nil {
		uc.log.WithError(err).WithFields(logrus.Fields{"transaction_id": tx.ID}).
			Warn("Failed to publish suspicious transaction alert")
	}
}
