package models

// User represents a participant that can send or receive transactions.
// Deletion is soft: deleted users disappear from listings but their ledger
// entries are untouched.
type User struct {
	ID      string `json:"id" db:"id"`
	Name    string `json:"name" db:"name"`
	Deleted bool   `json:"-" db:"deleted"`
}

// Currency represents a supported currency code.
type Currency struct {
	Code    string `json:"code" db:"code"`
	Name    string `json:"name" db:"name"`
	Deleted bool   `json:"-" db:"deleted"`
}
