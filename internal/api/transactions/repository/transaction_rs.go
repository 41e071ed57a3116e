package transactionRepository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	transactions "github.com/UnimaginableCat/fin-manager-project/internal/api/transactions"
	"github.com/UnimaginableCat/fin-manager-project/internal/entity"
	contextPkg "github.com/UnimaginableCat/fin-manager-project/pkg/context"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

type TransactionDB struct {
	ID              sql.NullString  `db:"id"`
	Amount          decimal.Decimal `db:"amount"`
	Date            time.Time       `db:"date"`
	TransactionType sql.NullString  `db:"transaction_type"`
	Category        sql.NullString  `db:"category"`
	UserID          sql.NullString  `db:"user_id"`
	CreatedAt       time.Time       `db:"created_at"`
	UpdatedAt       time.Time       `db:"updated_at"`
}

func (r *transactionsRepository) CreateTransaction(ctx context.Context, transaction entity.Transaction) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id":               transaction.ID,
		"amount":           transaction.Amount,
		"date":             transaction.Date,
		"transaction_type": transaction.TransactionType,
		"category":         transaction.Category,
		"user_id":          transaction.UserID,
		"created_at":       transaction.CreatedAt,
		"updated_at":       transaction.UpdatedAt,
	}

	query, args, err := sqlx.Named(queryCreateTransaction, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for CreateTransaction")
		return err
	}
	query = r.q.Rebind(query)

	_, err = r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating transaction")
		return err
	}

	return nil
}

func (r *transactionsRepository) GetTransactionByID(ctx context.Context, id string) (entity.Transaction, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var transaction TransactionDB

	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryGetTransactionByID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetTransactionByID named query preparation err")
		return entity.Transaction{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(ctx, query, args...).StructScan(&transaction); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"id":         id,
			}).Warn("GetTransactionByID no rows found")
			return entity.Transaction{}, transactions.ErrTransactionNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetTransactionByID execution err")
		return entity.Transaction{}, err
	}

	return r.makeTransaction(transaction), nil
}

func (r *transactionsRepository) GetAllTransactions(ctx context.Context) ([]entity.Transaction, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var rows []TransactionDB

	query, args, err := sqlx.Named(queryGetAllTransactions, map[string]interface{}{})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetAllTransactions named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(ctx, &rows, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetAllTransactions execution err")
		return nil, err
	}

	transactionList := make([]entity.Transaction, 0, len(rows))
	for _, row := range rows {
		transactionList = append(transactionList, r.makeTransaction(row))
	}

	return transactionList, nil
}

func (r *transactionsRepository) UpdateTransaction(ctx context.Context, transaction entity.Transaction) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id":               transaction.ID,
		"amount":           transaction.Amount,
		"date":             transaction.Date,
		"transaction_type": transaction.TransactionType,
		"category":         transaction.Category,
		"user_id":          transaction.UserID,
		"updated_at":       transaction.UpdatedAt,
	}

	query, args, err := sqlx.Named(queryUpdateTransaction, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateTransaction named query preparation err")
		return err
	}
	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when updating transaction")
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return transactions.ErrTransactionNotFound
	}

	return nil
}

func (r *transactionsRepository) DeleteTransaction(ctx context.Context, id string) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryDeleteTransaction, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteTransaction named query preparation err")
		return err
	}
	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when deleting transaction")
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return transactions.ErrTransactionNotFound
	}

	return nil
}

func (r *transactionsRepository) GetPeriodTotals(ctx context.Context, startDate, endDate time.Time) (PeriodTotals, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var totals PeriodTotals

	argsKV := map[string]interface{}{
		"start_date": startDate,
		"end_date":   endDate,
	}

	query, args, err := sqlx.Named(queryGetPeriodTotals, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetPeriodTotals named query preparation err")
		return PeriodTotals{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(ctx, query, args...).StructScan(&totals); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetPeriodTotals execution err")
		return PeriodTotals{}, err
	}

	return totals, nil
}

func (r *transactionsRepository) makeTransaction(row TransactionDB) entity.Transaction {
	return entity.Transaction{
		ID:              row.ID.String,
		Amount:          row.Amount,
		Date:            row.Date,
		TransactionType: row.TransactionType.String,
		Category:        row.Category.String,
		UserID:          row.UserID.String,
		CreatedAt:       row.CreatedAt,
		UpdatedAt:       row.UpdatedAt,
	}
}
