package reportService

import (
	"time"

	reportRepository "github.com/UnimaginableCat/fin-manager-project/internal/api/reports/repository"
	transactionRepository "github.com/UnimaginableCat/fin-manager-project/internal/api/transactions/repository"
	"github.com/UnimaginableCat/fin-manager-project/internal/entity"
	"github.com/UnimaginableCat/fin-manager-project/pkg/utils"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type IReportService interface {
	CreateReport(ctx context.Context, startDate, endDate time.Time) (entity.TransactionReport, error)
	GetReportByID(ctx context.Context, id string) (entity.TransactionReport, error)
	GetAllReports(ctx context.Context) ([]entity.TransactionReport, error)
}

type reportService struct {
	log                   *logrus.Logger
	reportRepository      reportRepository.Repository
	transactionRepository transactionRepository.Repository
	utils                 utils.IUtils
}

// New wires the report domain. Aggregation reads go straight to the
// transaction repository; the transaction service layer is not involved.
func New(
	log *logrus.Logger,
	rr reportRepository.Repository,
	tr transactionRepository.Repository,
	utils utils.IUtils,
) IReportService {
	return &reportService{
		log:                   log,
		reportRepository:      rr,
		transactionRepository: tr,
		utils:                 utils,
	}
}
