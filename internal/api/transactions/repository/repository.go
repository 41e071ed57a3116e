package transactionRepository

import (
	"time"

	"github.com/UnimaginableCat/fin-manager-project/internal/entity"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type SQLExecutor interface {
	sqlx.ExtContext
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	QueryRowxContext(ctx context.Context, query string, args ...interface{}) *sqlx.Row
	Rebind(query string) string
}

func New(db *sqlx.DB, log *logrus.Logger) Repository {
	return &repository{
		DB:  db,
		log: log,
	}
}

type repository struct {
	DB  *sqlx.DB
	log *logrus.Logger
}

type Repository interface {
	NewClient(tx bool) (Client, error)
}

func (r *repository) NewClient(tx bool) (Client, error) {
	var sqlExecutor SQLExecutor
	var commitFunc, rollbackFunc func() error

	sqlExecutor = r.DB

	if tx {
		var err error
		txx, err := r.DB.Beginx()
		if err != nil {
			return Client{}, err
		}

		sqlExecutor = txx
		commitFunc = txx.Commit
		rollbackFunc = txx.Rollback
	} else {
		commitFunc = func() error { return nil }
		rollbackFunc = func() error { return nil }
	}

	return Client{
		Transactions: &transactionsRepository{q: sqlExecutor, log: r.log},
		Commit:       commitFunc,
		Rollback:     rollbackFunc,
	}, nil
}

// PeriodTotals holds the aggregate amounts of a date range, with absent
// matches already coerced to zero by the query.
type PeriodTotals struct {
	TotalIncome  decimal.Decimal `db:"total_income"`
	TotalExpense decimal.Decimal `db:"total_expense"`
}

type Client struct {
	Transactions interface {
		CreateTransaction(ctx context.Context, transaction entity.Transaction) error
		GetTransactionByID(ctx context.Context, id string) (entity.Transaction, error)
		GetAllTransactions(ctx context.Context) ([]entity.Transaction, error)
		UpdateTransaction(ctx context.Context, transaction entity.Transaction) error
		DeleteTransaction(ctx context.Context, id string) error
		GetPeriodTotals(ctx context.Context, startDate, endDate time.Time) (PeriodTotals, error)
	}

	Commit   func() error
	Rollback func() error
}

type transactionsRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}
