package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/acmepay/transactions/internal/pkg/logger"
	"github.com/acmepay/transactions/internal/pkg/models"
	"github.com/acmepay/transactions/services/ingest"
)

// QueueHandler consumes transaction messages from the queue transport and
// feeds them through the shared ingestion pipeline. Messages that cannot be
// decoded are quarantined with the raw bytes as payload; only store failures
// are returned, which requeues the message for redelivery.
type QueueHandler struct {
	uc  ingest.IngestUseCase
	log *logger.AppLogger
}

// NewQueueHandler creates a new queue message handler.
func NewQueueHandler(uc ingest.IngestUseCase, log *logger.AppLogger) *QueueHandler {
	return &QueueHandler{uc: uc, log: log}
}

// HandleMessage processes one raw message body. It satisfies the NSQ consumer
// contract: a nil return finishes the message, an error requeues it.
func (h *QueueHandler) HandleMessage(body []byte) error {
	ctx := context.Background()

	raw, err := decodeRawRecord(body)
	if err != nil {
		if _, qErr := h.uc.Quarantine(ctx, err.Error(), string(body), models.SourceQueue); qErr != nil {
			return qErr
		}
		return nil
	}

	res, err := h.uc.Ingest(ctx, raw, string(body), models.SourceQueue)
	if err != nil {
		return err
	}

	h.log.WithFields(logrus.Fields{
		"outcome":        res.Outcome,
		"transaction_id": res.TransactionID,
	}).Info("Processed queue message")
	return nil
}

// decodeRawRecord turns a JSON message into the flat string mapping the
// pipeline consumes. Numbers keep their literal form so the validator sees
// exactly what was sent.
func decodeRawRecord(body []byte) (models.RawRecord, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var fields map[string]interface{}
	if err := dec.Decode(&fields); err != nil {
		return nil, fmt.Errorf("failed to decode message: %w", err)
	}
	if dec.More() {
		return nil, fmt.Errorf("failed to decode message: trailing data after JSON object")
	}

	raw := models.RawRecord{}
	for k, v := range fields {
		switch val := v.(type) {
		case string:
			raw[k] = val
		case json.Number:
			raw[k] = val.String()
		case bool:
			if val {
				raw[k] = "true"
			} else {
				raw[k] = "false"
			}
		case nil:
			raw[k] = ""
		default:
			return nil, fmt.Errorf("unexpected value for field %q", k)
		}
	}
	return raw, nil
}
