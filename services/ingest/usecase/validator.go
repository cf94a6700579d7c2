package usecase

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/acmepay/transactions/internal/pkg/models"
)

// requiredFields is the fixed order in which presence is checked, so the
// "Missing field" reason always names the first missing one.
var requiredFields = []string{
	"transaction_id",
	"sender_id",
	"receiver_id",
	"amount",
	"currency",
	"timestamp",
	"status",
}

// timestampLayouts are the accepted ISO-8601 shapes, tried in order after the
// trailing Z designator has been normalized to an explicit offset.
var timestampLayouts = []string{
	"2006-01-02T15:04:05.999999999-07:00",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02",
}

// Validate checks a raw record against the shared transaction schema. A nil
// return means the record is valid; otherwise the error text is the quarantine
// reason. Both transports call this with identical semantics.
func Validate(raw models.RawRecord) error {
	for _, field := range requiredFields {
		if raw[field] == "" {
			return fmt.Errorf("Missing field: %s", field)
		}
	}
	if _, err := ParseAmount(raw["amount"]); err != nil {
		return err
	}
	if _, err := ParseTimestamp(raw["timestamp"]); err != nil {
		return err
	}
	if _, err := models.ParseTransactionStatus(raw["status"]); err != nil {
		return err
	}
	return nil
}

// ParseAmount parses a raw amount into a finite float64. Sign is deliberately
// unchecked: negative amounts pass validation.
func ParseAmount(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, fmt.Errorf("invalid amount: %q is not a finite number", s)
	}
	return v, nil
}

// ParseTimestamp parses an ISO-8601 instant. A trailing literal Z is treated
// as +00:00 before parsing.
func ParseTimestamp(s string) (time.Time, error) {
	normalized := s
	if strings.HasSuffix(normalized, "Z") {
		normalized = strings.TrimSuffix(normalized, "Z") + "+00:00"
	}

	var firstErr error
	for _, layout := range timestampLayouts {
		t, err := time.Parse(layout, normalized)
		if err == nil {
			return t, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return time.Time{}, firstErr
}
