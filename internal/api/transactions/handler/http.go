package transactionHandler

import (
	transactionService "github.com/UnimaginableCat/fin-manager-project/internal/api/transactions/service"
	"github.com/UnimaginableCat/fin-manager-project/internal/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type TransactionHandler struct {
	log                *logrus.Logger
	validator          *validator.Validate
	middleware         middleware.Middleware
	transactionService transactionService.ITransactionService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	transactionService transactionService.ITransactionService,
) *TransactionHandler {
	return &TransactionHandler{
		log:                log,
		validator:          validate,
		middleware:         middleware,
		transactionService: transactionService,
	}
}

func (h *TransactionHandler) Start(srv fiber.Router) {
	transaction := srv.Group("/transactions")

	transaction.Get("", h.GetAllTransactions)
	transaction.Post("", h.CreateTransaction)
	transaction.Get("/:id", h.GetTransactionByID)
	transaction.Put("/:id", h.UpdateTransaction)
	transaction.Delete("/:id", h.DeleteTransaction)
}
