package transactionService

import (
	"errors"
	"io"
	"testing"
	"time"

	transactions "github.com/UnimaginableCat/fin-manager-project/internal/api/transactions"
	transactionRepository "github.com/UnimaginableCat/fin-manager-project/internal/api/transactions/repository"
	users "github.com/UnimaginableCat/fin-manager-project/internal/api/users"
	userRepository "github.com/UnimaginableCat/fin-manager-project/internal/api/users/repository"
	"github.com/UnimaginableCat/fin-manager-project/internal/entity"
	"github.com/UnimaginableCat/fin-manager-project/pkg/utils"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

const (
	testUserID        = "a1f0d6c2-43cb-4a2e-8d6a-0a3f1b2c3d4e"
	testTransactionID = "6f1f3f1a-26ea-4f0c-9d3e-2f3f8a2b9c11"
)

type mockTransactionsRepo struct {
	transactions map[string]entity.Transaction
	totals       transactionRepository.PeriodTotals
}

func (m *mockTransactionsRepo) CreateTransaction(ctx context.Context, transaction entity.Transaction) error {
	m.transactions[transaction.ID] = transaction
	return nil
}

func (m *mockTransactionsRepo) GetTransactionByID(ctx context.Context, id string) (entity.Transaction, error) {
	transaction, ok := m.transactions[id]
	if !ok {
		return entity.Transaction{}, transactions.ErrTransactionNotFound
	}
	return transaction, nil
}

func (m *mockTransactionsRepo) GetAllTransactions(ctx context.Context) ([]entity.Transaction, error) {
	list := make([]entity.Transaction, 0, len(m.transactions))
	for _, transaction := range m.transactions {
		list = append(list, transaction)
	}
	return list, nil
}

func (m *mockTransactionsRepo) UpdateTransaction(ctx context.Context, transaction entity.Transaction) error {
	if _, ok := m.transactions[transaction.ID]; !ok {
		return transactions.ErrTransactionNotFound
	}
	m.transactions[transaction.ID] = transaction
	return nil
}

func (m *mockTransactionsRepo) DeleteTransaction(ctx context.Context, id string) error {
	if _, ok := m.transactions[id]; !ok {
		return transactions.ErrTransactionNotFound
	}
	delete(m.transactions, id)
	return nil
}

func (m *mockTransactionsRepo) GetPeriodTotals(ctx context.Context, startDate, endDate time.Time) (transactionRepository.PeriodTotals, error) {
	return m.totals, nil
}

type mockTransactionRepository struct {
	repo *mockTransactionsRepo
}

func (m *mockTransactionRepository) NewClient(tx bool) (transactionRepository.Client, error) {
	return transactionRepository.Client{
		Transactions: m.repo,
		Commit:       func() error { return nil },
		Rollback:     func() error { return nil },
	}, nil
}

type mockUsersRepo struct {
	users map[string]entity.User
}

func (m *mockUsersRepo) CreateUser(ctx context.Context, user entity.User) error {
	m.users[user.ID] = user
	return nil
}

func (m *mockUsersRepo) GetUserByID(ctx context.Context, id string) (entity.User, error) {
	user, ok := m.users[id]
	if !ok {
		return entity.User{}, users.ErrUserNotFound
	}
	return user, nil
}

func (m *mockUsersRepo) GetAllUsers(ctx context.Context) ([]entity.User, error) {
	return nil, nil
}

func (m *mockUsersRepo) UpdateUser(ctx context.Context, user entity.User) error {
	return nil
}

func (m *mockUsersRepo) DeleteUser(ctx context.Context, id string) error {
	return nil
}

func (m *mockUsersRepo) DeleteTransactionsByUserID(ctx context.Context, userID string) error {
	return nil
}

type mockUserRepository struct {
	repo *mockUsersRepo
}

func (m *mockUserRepository) NewClient(tx bool) (userRepository.Client, error) {
	return userRepository.Client{
		Users:    m.repo,
		Commit:   func() error { return nil },
		Rollback: func() error { return nil },
	}, nil
}

func newTestLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func newTestService(t *testing.T) (ITransactionService, *mockTransactionRepository) {
	t.Helper()

	transactionRepo := &mockTransactionRepository{
		repo: &mockTransactionsRepo{
			transactions: map[string]entity.Transaction{
				testTransactionID: {
					ID:              testTransactionID,
					Amount:          decimal.NewFromFloat(120.50),
					Date:            time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC),
					TransactionType: string(entity.TransactionTypeExpense),
					Category:        "groceries",
					UserID:          testUserID,
				},
			},
		},
	}
	userRepo := &mockUserRepository{
		repo: &mockUsersRepo{
			users: map[string]entity.User{
				testUserID: {ID: testUserID, FirstName: "Ada"},
			},
		},
	}

	return New(newTestLogger(), transactionRepo, userRepo, utils.New()), transactionRepo
}

func floatPtr(f float64) *float64 { return &f }
func stringPtr(s string) *string  { return &s }

func TestCreateTransaction(t *testing.T) {
	svc, repo := newTestService(t)

	transaction, err := svc.CreateTransaction(context.Background(), transactions.CreateTransactionRequest{
		User:            testUserID,
		Amount:          floatPtr(42.505),
		TransactionType: "income",
		Category:        "salary",
		Date:            "2025-04-01",
	})
	if err != nil {
		t.Fatalf("CreateTransaction: %v", err)
	}

	if !transaction.Amount.Equal(decimal.NewFromFloat(42.51)) {
		t.Errorf("amount = %s, want 42.51 rounded to two decimals", transaction.Amount)
	}
	if !transaction.Date.Equal(time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("date = %s", transaction.Date)
	}
	if _, ok := repo.repo.transactions[transaction.ID]; !ok {
		t.Error("created transaction was not persisted")
	}
}

func TestCreateTransactionUnknownUser(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.CreateTransaction(context.Background(), transactions.CreateTransactionRequest{
		User:            "8a3615f1-5f9a-42e4-ab1d-1416f93d4412",
		Amount:          floatPtr(10),
		TransactionType: "income",
		Category:        "salary",
		Date:            "2025-04-01",
	})
	if !errors.Is(err, transactions.ErrUserNotFound) {
		t.Fatalf("error = %v, want %v", err, transactions.ErrUserNotFound)
	}
}

func TestCreateTransactionBadDate(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.CreateTransaction(context.Background(), transactions.CreateTransactionRequest{
		User:            testUserID,
		Amount:          floatPtr(10),
		TransactionType: "income",
		Category:        "salary",
		Date:            "01-04-2025",
	})
	if !errors.Is(err, transactions.ErrInvalidDate) {
		t.Fatalf("error = %v, want %v", err, transactions.ErrInvalidDate)
	}
}

func TestUpdateTransactionPartialPatch(t *testing.T) {
	svc, repo := newTestService(t)

	transaction, err := svc.UpdateTransaction(context.Background(), testTransactionID, transactions.UpdateTransactionRequest{
		Category: stringPtr("transport"),
	})
	if err != nil {
		t.Fatalf("UpdateTransaction: %v", err)
	}

	if transaction.Category != "transport" {
		t.Errorf("category = %q, want %q", transaction.Category, "transport")
	}
	if !transaction.Amount.Equal(decimal.NewFromFloat(120.50)) {
		t.Errorf("amount must keep stored value, got %s", transaction.Amount)
	}
	if transaction.TransactionType != string(entity.TransactionTypeExpense) {
		t.Errorf("transaction type must keep stored value, got %q", transaction.TransactionType)
	}
	if transaction.UserID != testUserID {
		t.Errorf("user must keep stored value, got %q", transaction.UserID)
	}

	stored := repo.repo.transactions[testTransactionID]
	if stored.Category != "transport" {
		t.Errorf("stored category = %q", stored.Category)
	}
}

func TestUpdateTransactionOwnerChangeUnknownUser(t *testing.T) {
	svc, repo := newTestService(t)

	_, err := svc.UpdateTransaction(context.Background(), testTransactionID, transactions.UpdateTransactionRequest{
		User: stringPtr("8a3615f1-5f9a-42e4-ab1d-1416f93d4412"),
	})
	if !errors.Is(err, transactions.ErrUserNotFound) {
		t.Fatalf("error = %v, want %v", err, transactions.ErrUserNotFound)
	}

	stored := repo.repo.transactions[testTransactionID]
	if stored.UserID != testUserID {
		t.Errorf("ownership must be unchanged on failure, got %q", stored.UserID)
	}
}

func TestUpdateTransactionNotFound(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.UpdateTransaction(context.Background(), "00000000-0000-0000-0000-000000000000", transactions.UpdateTransactionRequest{
		Category: stringPtr("misc"),
	})
	if !errors.Is(err, transactions.ErrTransactionNotFound) {
		t.Fatalf("error = %v, want %v", err, transactions.ErrTransactionNotFound)
	}
}

func TestDeleteTransactionNotFound(t *testing.T) {
	svc, _ := newTestService(t)

	err := svc.DeleteTransaction(context.Background(), "00000000-0000-0000-0000-000000000000")
	if !errors.Is(err, transactions.ErrTransactionNotFound) {
		t.Fatalf("error = %v, want %v", err, transactions.ErrTransactionNotFound)
	}
}
