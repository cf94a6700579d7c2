package models

import "encoding/json"

// RawRecord is the flat string mapping both transports hand to the ingestion
// pipeline before any validation has happened.
type RawRecord map[string]string

// Encode serializes the record deterministically (keys sorted) so quarantined
// payloads are stable and diffable.
func (r RawRecord) Encode() string {
	b, err := json.Marshal(r)
	if err != nil {
		return ""
	}
	return string(b)
}

// IngestOutcome classifies what happened to a single ingested record.
type IngestOutcome string

const (
	OutcomeAccepted    IngestOutcome = "accepted"
	OutcomeQuarantined IngestOutcome = "quarantined"
	OutcomeDuplicate   IngestOutcome = "duplicate"
)

// IngestResult is the per-record outcome reported by the ingestion pipeline.
type IngestResult struct {
	Outcome       IngestOutcome `json:"outcome"`
	TransactionID string        `json:"transaction_id,omitempty"`
	Reason        string        `json:"reason,omitempty"`
	Suspicious    bool          `json:"suspicious,omitempty"`
}
