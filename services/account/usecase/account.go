package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/acmepay/transactions/internal/pkg/models"
	"github.com/acmepay/transactions/services/account"
)

// AccountUC implements the account.AccountUseCase interface.
type AccountUC struct {
	repo account.AccountRepo
}

// NewAccountUC creates a new account use case.
func NewAccountUC(repo account.AccountRepo) account.AccountUseCase {
	return &AccountUC{repo: repo}
}

// ListUsers returns all active users.
func (uc *AccountUC) ListUsers(ctx context.Context) ([]models.User, error) {
	return uc.repo.ListUsers(ctx)
}

// CreateUser creates a new user.
func (uc *AccountUC) CreateUser(ctx context.Context, user *models.User) error {
	if user.ID == "" || user.Name == "" {
		return fmt.Errorf("user id and name are required")
	}
	return uc.repo.CreateUser(ctx, user)
}

// RenameUser changes an active user's display name.
func (uc *AccountUC) RenameUser(ctx context.Context, id, name string) error {
	if name == "" {
		return fmt.Errorf("user name is required")
	}
	return uc.repo.UpdateUserName(ctx, id, name)
}

// DeleteUser soft-deletes a user.
func (uc *AccountUC) DeleteUser(ctx context.Context, id string) error {
	return uc.repo.SoftDeleteUser(ctx, id)
}

// ListCurrencies returns all active currencies.
func (uc *AccountUC) ListCurrencies(ctx context.Context) ([]models.Currency, error) {
	return uc.repo.ListCurrencies(ctx)
}

// CreateCurrency creates a new currency. Codes are stored uppercase.
func (uc *AccountUC) CreateCurrency(ctx context.Context, currency *models.Currency) error {
	if len(currency.Code) != 3 || currency.Name == "" {
		return fmt.Errorf("currency requires a 3-letter code and a name")
	}
	currency.Code = strings.ToUpper(currency.Code)
	return uc.repo.CreateCurrency(ctx, currency)
}

// RenameCurrency changes an active currency's display name.
func (uc *AccountUC) RenameCurrency(ctx context.Context, code, name string) error {
	if name == "" {
		return fmt.Errorf("currency name is required")
	}
	return uc.repo.UpdateCurrencyName(ctx, strings.ToUpper(code), name)
}

// DeleteCurrency soft-deletes a currency.
func (uc *AccountUC) DeleteCurrency(ctx context.Context, code string) error {
	return uc.repo.SoftDeleteCurrency(ctx, strings.ToUpper(code))
}
