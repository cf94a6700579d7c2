package account

import (
	"context"
	"errors"

	"github.com/acmepay/transactions/internal/pkg/models"
)

// ErrNotFound is returned when the requested entity does not exist or has been
// soft-deleted.
var ErrNotFound = errors.New("not found")

// ErrAlreadyExists is returned when creating an entity whose id is taken.
var ErrAlreadyExists = errors.New("already exists")

// AccountRepo defines the interface for user and currency storage. Deletion is
// soft everywhere: rows are flagged, never removed, and ledger entries are
// untouched.
type AccountRepo interface {
	ListUsers(ctx context.Context) ([]models.User, error)
	CreateUser(ctx context.Context, user *models.User) error
	UpdateUserName(ctx context.Context, id, name string) error
	SoftDeleteUser(ctx context.Context, id string) error

	ListCurrencies(ctx context.Context) ([]models.Currency, error)
	CreateCurrency(ctx context.Context, currency *models.Currency) error
	UpdateCurrencyName(ctx context.Context, code, name string) error
	SoftDeleteCurrency(ctx context.Context, code string) error
}
