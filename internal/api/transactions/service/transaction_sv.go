package transactionService

import (
	"errors"
	"time"

	transactions "github.com/UnimaginableCat/fin-manager-project/internal/api/transactions"
	users "github.com/UnimaginableCat/fin-manager-project/internal/api/users"
	"github.com/UnimaginableCat/fin-manager-project/internal/entity"
	contextPkg "github.com/UnimaginableCat/fin-manager-project/pkg/context"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

func (s *transactionService) CreateTransaction(ctx context.Context, req transactions.CreateTransactionRequest) (entity.Transaction, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.transactionRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return entity.Transaction{}, err
	}

	if err := s.resolveUser(ctx, req.User); err != nil {
		return entity.Transaction{}, err
	}

	date, err := time.Parse(transactions.DateFormat, req.Date)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"date":       req.Date,
		}).Warn("Unparsable transaction date")
		return entity.Transaction{}, transactions.ErrInvalidDate
	}

	id, err := s.utils.NewUUID()
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate UUID")
		return entity.Transaction{}, err
	}

	now := time.Now()
	transaction := entity.Transaction{
		ID:              id,
		Amount:          decimal.NewFromFloat(*req.Amount).Round(2),
		Date:            date,
		TransactionType: req.TransactionType,
		Category:        req.Category,
		UserID:          req.User,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := transaction.Validate(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Invalid transaction data")
		return entity.Transaction{}, err
	}

	if err := repo.Transactions.CreateTransaction(ctx, transaction); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create transaction")
		return entity.Transaction{}, transactions.ErrCreateTransaction
	}

	return transaction, nil
}

func (s *transactionService) UpdateTransaction(ctx context.Context, id string, req transactions.UpdateTransactionRequest) (entity.Transaction, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.transactionRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return entity.Transaction{}, err
	}

	transaction, err := repo.Transactions.GetTransactionByID(ctx, id)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
			"error":      err.Error(),
		}).Warn("Failed to get transaction for update")
		return entity.Transaction{}, err
	}

	// Partial patch: only fields present in the request overwrite stored values.
	if req.User != nil {
		if err := s.resolveUser(ctx, *req.User); err != nil {
			return entity.Transaction{}, err
		}
		transaction.UserID = *req.User
	}
	if req.Amount != nil {
		transaction.Amount = decimal.NewFromFloat(*req.Amount).Round(2)
	}
	if req.TransactionType != nil {
		transaction.TransactionType = *req.TransactionType
	}
	if req.Category != nil {
		transaction.Category = *req.Category
	}
	if req.Date != nil {
		date, err := time.Parse(transactions.DateFormat, *req.Date)
		if err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"date":       *req.Date,
			}).Warn("Unparsable transaction date")
			return entity.Transaction{}, transactions.ErrInvalidDate
		}
		transaction.Date = date
	}
	transaction.UpdatedAt = time.Now()

	if err := transaction.Validate(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Invalid transaction data")
		return entity.Transaction{}, err
	}

	if err := repo.Transactions.UpdateTransaction(ctx, transaction); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
			"error":      err.Error(),
		}).Error("Failed to update transaction")
		return entity.Transaction{}, err
	}

	return transaction, nil
}

func (s *transactionService) DeleteTransaction(ctx context.Context, id string) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.transactionRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return err
	}

	if err := repo.Transactions.DeleteTransaction(ctx, id); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
			"error":      err.Error(),
		}).Warn("Failed to delete transaction")
		return err
	}

	return nil
}

func (s *transactionService) GetAllTransactions(ctx context.Context) ([]entity.Transaction, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.transactionRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return nil, err
	}

	transactionList, err := repo.Transactions.GetAllTransactions(ctx)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to get all transactions")
		return nil, err
	}

	return transactionList, nil
}

func (s *transactionService) GetTransactionByID(ctx context.Context, id string) (entity.Transaction, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.transactionRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return entity.Transaction{}, err
	}

	transaction, err := repo.Transactions.GetTransactionByID(ctx, id)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
			"error":      err.Error(),
		}).Warn("Failed to get transaction by ID")
		return entity.Transaction{}, err
	}

	return transaction, nil
}

// resolveUser checks the owning user exists. A missing user is a 400 on the
// transaction surface, not a 404.
func (s *transactionService) resolveUser(ctx context.Context, userID string) error {
	requestID := contextPkg.GetRequestID(ctx)

	userRepo, err := s.userRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create user client")
		return err
	}

	if _, err := userRepo.Users.GetUserByID(ctx, userID); err != nil {
		if errors.Is(err, users.ErrUserNotFound) {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"user_id":    userID,
			}).Warn("Transaction references unknown user")
			return transactions.ErrUserNotFound
		}
		return err
	}

	return nil
}
