package reportService

import (
	"time"

	reports "github.com/UnimaginableCat/fin-manager-project/internal/api/reports"
	"github.com/UnimaginableCat/fin-manager-project/internal/entity"
	contextPkg "github.com/UnimaginableCat/fin-manager-project/pkg/context"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

func (s *reportService) CreateReport(ctx context.Context, startDate, endDate time.Time) (entity.TransactionReport, error) {
	requestID := contextPkg.GetRequestID(ctx)

	transactionRepo, err := s.transactionRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create transaction client")
		return entity.TransactionReport{}, err
	}

	totals, err := transactionRepo.Transactions.GetPeriodTotals(ctx, startDate, endDate)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to aggregate period totals")
		return entity.TransactionReport{}, err
	}

	id, err := s.utils.NewUUID()
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate UUID")
		return entity.TransactionReport{}, err
	}

	report := entity.TransactionReport{
		ID:           id,
		StartDate:    startDate,
		EndDate:      endDate,
		TotalIncome:  totals.TotalIncome,
		TotalExpense: totals.TotalExpense,
		NetIncome:    totals.TotalIncome.Sub(totals.TotalExpense),
		CreatedAt:    time.Now(),
	}

	repo, err := s.reportRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create report client")
		return entity.TransactionReport{}, err
	}

	if err := repo.Reports.CreateReport(ctx, report); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create report")
		return entity.TransactionReport{}, reports.ErrCreateReport
	}

	return report, nil
}

func (s *reportService) GetReportByID(ctx context.Context, id string) (entity.TransactionReport, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.reportRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return entity.TransactionReport{}, err
	}

	report, err := repo.Reports.GetReportByID(ctx, id)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
			"error":      err.Error(),
		}).Warn("Failed to get report by ID")
		return entity.TransactionReport{}, err
	}

	return report, nil
}

func (s *reportService) GetAllReports(ctx context.Context) ([]entity.TransactionReport, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.reportRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return nil, err
	}

	reportList, err := repo.Reports.GetAllReports(ctx)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to get all reports")
		return nil, err
	}

	return reportList, nil
}
