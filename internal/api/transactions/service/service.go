package transactionService

import (
	transactions "github.com/UnimaginableCat/fin-manager-project/internal/api/transactions"
	transactionRepository "github.com/UnimaginableCat/fin-manager-project/internal/api/transactions/repository"
	userRepository "github.com/UnimaginableCat/fin-manager-project/internal/api/users/repository"
	"github.com/UnimaginableCat/fin-manager-project/internal/entity"
	"github.com/UnimaginableCat/fin-manager-project/pkg/utils"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type ITransactionService interface {
	CreateTransaction(ctx context.Context, req transactions.CreateTransactionRequest) (entity.Transaction, error)
	UpdateTransaction(ctx context.Context, id string, req transactions.UpdateTransactionRequest) (entity.Transaction, error)
	DeleteTransaction(ctx context.Context, id string) error
	GetAllTransactions(ctx context.Context) ([]entity.Transaction, error)
	GetTransactionByID(ctx context.Context, id string) (entity.Transaction, error)
}

type transactionService struct {
	log                   *logrus.Logger
	transactionRepository transactionRepository.Repository
	userRepository        userRepository.Repository
	utils                 utils.IUtils
}

// New wires the transaction domain. The user repository is injected so a
// create or ownership change always resolves the owning user first.
func New(
	log *logrus.Logger,
	tr transactionRepository.Repository,
	ur userRepository.Repository,
	utils utils.IUtils,
) ITransactionService {
	return &transactionService{
		log:                   log,
		transactionRepository: tr,
		userRepository:        ur,
		utils:                 utils,
	}
}
