package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acmepay/transactions/internal/pkg/models"
)

func TestDecodeRawRecord(t *testing.T) {
	raw, err := decodeRawRecord([]byte(`{"transaction_id":"tx1","amount":250.00,"flag":true,"note":null}`))

	require.NoError(t, err)
	assert.Equal(t, "tx1", raw["transaction_id"])
	// Numeric literals keep their wire form so the validator sees them as sent.
	assert.Equal(t, "250.00", raw["amount"])
	assert.Equal(t, "true", raw["flag"])
	assert.Equal(t, "", raw["note"])
}

func TestDecodeRawRecordRejectsNestedValues(t *testing.T) {
	_, err := decodeRawRecord([]byte(`{"transaction_id":"tx1","meta":{"a":1}}`))

	require.Error(t, err)
	assert.Contains(t, err.Error(), `unexpected value for field "meta"`)
}

func TestDecodeRawRecordRejectsTrailingData(t *testing.T) {
	_, err := decodeRawRecord([]byte(`{"transaction_id":"tx1"}garbage`))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "trailing data")

	// A second JSON value is trailing data too.
	_, err = decodeRawRecord([]byte(`{"transaction_id":"tx1"} {"transaction_id":"tx2"}`))
	require.Error(t, err)

	// Trailing whitespace alone is fine.
	_, err = decodeRawRecord([]byte(`{"transaction_id":"tx1"}` + "\n"))
	require.NoError(t, err)
}

func TestHandleMessageQuarantinesTrailingData(t *testing.T) {
	ledger, quarantine, uc, log := testPipeline(t)
	h := NewQueueHandler(uc, log)

	body := []byte(`{"transaction_id":"tx1","sender_id":"user1","receiver_id":"user2","amount":250.00,"currency":"USD","timestamp":"2025-05-01T10:00:00Z","status":"completed"}trailing`)

	err := h.HandleMessage(body)

	require.NoError(t, err)
	assert.Empty(t, ledger.rows)
	require.Len(t, quarantine.rows, 1)
	assert.Equal(t, string(body), quarantine.rows[0].Payload)
}

func TestHandleMessageAccepted(t *testing.T) {
	ledger, _, uc, log := testPipeline(t)
	h := NewQueueHandler(uc, log)

	body := []byte(`{"transaction_id":"tx1","sender_id":"user1","receiver_id":"user2","amount":250.00,"currency":"USD","timestamp":"2025-05-01T10:00:00Z","status":"completed"}`)

	err := h.HandleMessage(body)

	require.NoError(t, err)
	assert.Contains(t, ledger.rows, "tx1")
	assert.Equal(t, 250.0, ledger.rows["tx1"].Amount)
}

func TestHandleMessageQuarantinesMalformedJSON(t *testing.T) {
	ledger, quarantine, uc, log := testPipeline(t)
	h := NewQueueHandler(uc, log)

	body := []byte(`{"transaction_id": "tx1",`)

	// A poison message must be finished, not redelivered forever.
	err := h.HandleMessage(body)

	require.NoError(t, err)
	assert.Empty(t, ledger.rows)
	require.Len(t, quarantine.rows, 1)
	assert.Equal(t, models.SourceQueue, quarantine.rows[0].Source)
	assert.Equal(t, string(body), quarantine.rows[0].Payload)
	assert.Contains(t, quarantine.rows[0].Reason, "failed to decode message")
}

func TestHandleMessageQuarantinesInvalidRecord(t *testing.T) {
	_, quarantine, uc, log := testPipeline(t)
	h := NewQueueHandler(uc, log)

	body := []byte(`{"transaction_id":"tx2","sender_id":"user1","amount":100,"currency":"USD","timestamp":"2025-05-01T10:00:00Z","status":"completed"}`)

	err := h.HandleMessage(body)

	require.NoError(t, err)
	require.Len(t, quarantine.rows, 1)
	assert.Equal(t, "Missing field: receiver_id", quarantine.rows[0].Reason)
	// The quarantined payload is the message verbatim, not a re-encoding.
	assert.Equal(t, string(body), quarantine.rows[0].Payload)
}

func TestHandleMessageRequeuesOnStoreFailure(t *testing.T) {
	ledger, _, uc, log := testPipeline(t)
	h := NewQueueHandler(uc, log)
	ledger.failing = true

	body := []byte(`{"transaction_id":"tx1","sender_id":"user1","receiver_id":"user2","amount":250.00,"currency":"USD","timestamp":"2025-05-01T10:00:00Z","status":"completed"}`)

	err := h.HandleMessage(body)

	require.Error(t, err)
}

func TestHandleMessageDuplicate(t *testing.T) {
	ledger, quarantine, uc, log := testPipeline(t)
	h := NewQueueHandler(uc, log)

	body := []byte(`{"transaction_id":"tx1","sender_id":"user1","receiver_id":"user2","amount":250.00,"currency":"USD","timestamp":"2025-05-01T10:00:00Z","status":"completed"}`)

	require.NoError(t, h.HandleMessage(body))
	require.NoError(t, h.HandleMessage(body))

	assert.Len(t, ledger.rows, 1)
	assert.Empty(t, quarantine.rows)
}
