package ingest

import (
	"context"

	"github.com/acmepay/transactions/internal/pkg/models"
)

// IngestUseCase defines the ingestion pipeline shared by both transports.
type IngestUseCase interface {
	// Ingest runs one raw record through validation, duplicate detection and
	// persistence. payload is the verbatim form of the record for quarantine.
	// The returned error is reserved for store failures; validation problems
	// and duplicates are reported through the result.
	Ingest(ctx context.Context, raw models.RawRecord, payload, source string) (models.IngestResult, error)
	// Quarantine records a payload that could not even be decoded into a raw
	// record (transport-level malformation).
	Quarantine(ctx context.Context, reason, payload, source string) (models.IngestResult, error)
}

// AlertPublisher emits the advisory suspicious-transaction signal. Publishing
// is best effort and never affects persistence.
type AlertPublisher interface {
	Publish(topic string, message interface{}) error
}
