package account

import (
	"context"

	"github.com/acmepay/transactions/internal/pkg/models"
)

// AccountUseCase defines the user and currency management operations backing
// the HTTP and CLI surfaces.
type AccountUseCase interface {
	ListUsers(ctx context.Context) ([]models.User, error)
	CreateUser(ctx context.Context, user *models.User) error
	RenameUser(ctx context.Context, id, name string) error
	DeleteUser(ctx context.Context, id string) error

	ListCurrencies(ctx context.Context) ([]models.Currency, error)
	CreateCurrency(ctx context.Context, currency *models.Currency) error
	RenameCurrency(ctx context.Context, code, name string) error
	DeleteCurrency(ctx context.Context, code string) error
}
