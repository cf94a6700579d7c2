package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/acmepay/transactions/internal/pkg/models"
)

// Mock account repository
type MockAccountRepo struct {
	mock.Mock
}

func (m *MockAccountRepo) ListUsers(ctx context.Context) ([]models.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockAccountRepo) CreateUser(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockAccountRepo) UpdateUserName(ctx context.Context, id, name string) error {
	args := m.Called(ctx, id, name)
	return args.Error(0)
}

func (m *MockAccountRepo) SoftDeleteUser(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockAccountRepo) ListCurrencies(ctx context.Context) ([]models.Currency, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Currency), args.Error(1)
}

func (m *MockAccountRepo) CreateCurrency(ctx context.Context, currency *models.Currency) error {
	args := m.Called(ctx, currency)
	return args.Error(0)
}

func (m *MockAccountRepo) UpdateCurrencyName(ctx context.Context, code, name string) error {
	args := m.Called(ctx, code, name)
	return args.Error(0)
}

func (m *MockAccountRepo) SoftDeleteCurrency(ctx context.Context, code string) error {
	args := m.Called(ctx, code)
	return args.Error(0)
}

func TestCreateUserValidation(t *testing.T) {
	repo := new(MockAccountRepo)
	uc := NewAccountUC(repo)

	err := uc.CreateUser(context.Background(), &models.User{ID: "", Name: "Alice"})
	require.Error(t, err)

	err = uc.CreateUser(context.Background(), &models.User{ID: "user1", Name: ""})
	require.Error(t, err)

	repo.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything)
}

func TestCreateUser(t *testing.T) {
	repo := new(MockAccountRepo)
	uc := NewAccountUC(repo)

	user := &models.User{ID: "user1", Name: "Alice"}
	repo.On("CreateUser", mock.Anything, user).Return(nil)

	require.NoError(t, uc.CreateUser(context.Background(), user))
	repo.AssertExpectations(t)
}

func TestRenameUserRequiresName(t *testing.T) {
	repo := new(MockAccountRepo)
	uc := NewAccountUC(repo)

	err := uc.RenameUser(context.Background(), "user1", "")

	require.Error(t, err)
	repo.AssertNotCalled(t, "UpdateUserName", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateCurrencyNormalizesCode(t *testing.T) {
	repo := new(MockAccountRepo)
	uc := NewAccountUC(repo)

	repo.On("CreateCurrency", mock.Anything, mock.MatchedBy(func(c *models.Currency) bool {
		return c.Code == "USD"
	})).Return(nil)

	err := uc.CreateCurrency(context.Background(), &models.Currency{Code: "usd", Name: "US Dollar"})

	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestCreateCurrencyValidation(t *testing.T) {
	repo := new(MockAccountRepo)
	uc := NewAccountUC(repo)

	err := uc.CreateCurrency(context.Background(), &models.Currency{Code: "US", Name: "US Dollar"})
	require.Error(t, err)

	err = uc.CreateCurrency(context.Background(), &models.Currency{Code: "USD", Name: ""})
	require.Error(t, err)

	repo.AssertNotCalled(t, "CreateCurrency", mock.Anything, mock.Anything)
}

func TestDeleteCurrencyUppercasesCode(t *testing.T) {
	repo := new(MockAccountRepo)
	uc := NewAccountUC(repo)

	repo.On("SoftDeleteCurrency", mock.Anything, "EUR").Return(nil)

	require.NoError(t, uc.DeleteCurrency(context.Background(), "eur"))
	repo.AssertExpectations(t)
}

func TestListUsersPassesThrough(t *testing.T) {
	repo := new(MockAccountRepo)
	uc := NewAccountUC(repo)

	want := []models.User{{ID: "user1", Name: "Alice"}}
	repo.On("ListUsers", mock.Anything).Return(want, nil)

	got, err := uc.ListUsers(context.Background())

	require.NoError(t, err)
	assert.Equal(t, want, got)
}
