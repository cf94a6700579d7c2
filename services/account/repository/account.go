package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/acmepay/transactions/internal/pkg/models"
	"github.com/acmepay/transactions/services/account"
)

// AccountRepo implements the account.AccountRepo interface on PostgreSQL.
type AccountRepo struct {
	db *sqlx.DB
}

// NewAccountRepo creates a new account repository.
func NewAccountRepo(db *sqlx.DB) account.AccountRepo {
	return &AccountRepo{db: db}
}

// ListUsers returns all users that have not been soft-deleted.
func (r *AccountRepo) ListUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	query := `SELECT id, name, deleted FROM users WHERE deleted = FALSE ORDER BY id`
	if err := r.db.SelectContext(ctx, &users, query); err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// CreateUser inserts a new user. An existing id, deleted or not, is a
// conflict.
func (r *AccountRepo) CreateUser(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (id, name, deleted)
		VALUES ($1, $2, FALSE)
		ON CONFLICT (id) DO NOTHING
	`
	result, err := r.db.ExecContext(ctx, query, user.ID, user.Name)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return account.ErrAlreadyExists
	}
	return nil
}

// UpdateUserName renames an active user.
func (r *AccountRepo) UpdateUserName(ctx context.Context, id, name string) error {
	query := `UPDATE users SET name = $1 WHERE id = $2 AND deleted = FALSE`
	return r.exec(ctx, query, "failed to update user", name, id)
}

// SoftDeleteUser flags a user as deleted. Ledger entries are untouched.
func (r *AccountRepo) SoftDeleteUser(ctx context.Context, id string) error {
	query := `UPDATE users SET deleted = TRUE WHERE id = $1 AND deleted = FALSE`
	return r.exec(ctx, query, "failed to delete user", id)
}

// ListCurrencies returns all currencies that have not been soft-deleted.
func (r *AccountRepo) ListCurrencies(ctx context.Context) ([]models.Currency, error) {
	var currencies []models.Currency
	query := `SELECT code, name, deleted FROM currency WHERE deleted = FALSE ORDER BY code`
	if err := r.db.SelectContext(ctx, &currencies, query); err != nil {
		return nil, fmt.Errorf("failed to list currencies: %w", err)
	}
	return currencies, nil
}

// CreateCurrency inserts a new currency.
func (r *AccountRepo) CreateCurrency(ctx context.Context, currency *models.Currency) error {
	query := `
		INSERT INTO currency (code, name, deleted)
		VALUES ($1, $2, FALSE)
		ON CONFLICT (code) DO NOTHING
	`
	result, err := r.db.ExecContext(ctx, query, currency.Code, currency.Name)
	if err != nil {
		return fmt.Errorf("failed to create currency: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return account.ErrAlreadyExists
	}
	return nil
}

// UpdateCurrencyName renames an active currency.
func (r *AccountRepo) UpdateCurrencyName(ctx context.Context, code, name string) error {
	query := `UPDATE currency SET name = $1 WHERE code = $2 AND deleted = FALSE`
	return r.exec(ctx, query, "failed to update currency", name, code)
}

// SoftDeleteCurrency flags a currency as deleted.
func (r *AccountRepo) SoftDeleteCurrency(ctx context.Context, code string) error {
	query := `UPDATE currency SET deleted = TRUE WHERE code = $1 AND deleted = FALSE`
	return r.exec(ctx, query, "failed to delete currency", code)
}

func (r *AccountRepo) exec(ctx context.Context, query, errMsg string, args ...interface{}) error {
	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%s: %w", errMsg, err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return account.ErrNotFound
	}
	return nil
}
