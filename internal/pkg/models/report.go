package models

// PaymentRecord is the wire shape of a ledger transaction in reporting output.
// Timestamp is rendered as an ISO-8601 string.
type PaymentRecord struct {
	ID         string  `json:"id"`
	SenderID   string  `json:"sender_id"`
	ReceiverID string  `json:"receiver_id"`
	Amount     float64 `json:"amount"`
	Currency   string  `json:"currency"`
	Timestamp  string  `json:"timestamp"`
	Status     string  `json:"status"`
}

// DailyTotal is one calendar day of aggregated activity for a user. A day
// appears only if the user sent or received at least one transaction on it;
// the inactive side reports zero.
type DailyTotal struct {
	Day           string  `json:"day"`
	TotalSent     float64 `json:"total_sent"`
	TotalReceived float64 `json:"total_received"`
}

// MonthlyReport bundles the two report types for one user, as written by the
// scheduled report job.
type MonthlyReport struct {
	Payments    []PaymentRecord `json:"payments"`
	DailyTotals []DailyTotal    `json:"daily_totals"`
}
