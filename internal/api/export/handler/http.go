package exportHandler

import (
	reportService "github.com/UnimaginableCat/fin-manager-project/internal/api/reports/service"
	transactionService "github.com/UnimaginableCat/fin-manager-project/internal/api/transactions/service"
	"github.com/UnimaginableCat/fin-manager-project/internal/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type ExportHandler struct {
	log                *logrus.Logger
	middleware         middleware.Middleware
	transactionService transactionService.ITransactionService
	reportService      reportService.IReportService
}

func New(
	log *logrus.Logger,
	middleware middleware.Middleware,
	transactionService transactionService.ITransactionService,
	reportService reportService.IReportService,
) *ExportHandler {
	return &ExportHandler{
		log:                log,
		middleware:         middleware,
		transactionService: transactionService,
		reportService:      reportService,
	}
}

func (h *ExportHandler) Start(srv fiber.Router) {
	export := srv.Group("/export")

	export.Get("/transactions", h.ExportTransactionsCSV)
	export.Get("/reports", h.ExportReportsCSV)
}
