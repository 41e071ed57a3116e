package reportRepository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	reports "github.com/UnimaginableCat/fin-manager-project/internal/api/reports"
	"github.com/UnimaginableCat/fin-manager-project/internal/entity"
	contextPkg "github.com/UnimaginableCat/fin-manager-project/pkg/context"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

type ReportDB struct {
	ID           sql.NullString  `db:"id"`
	StartDate    time.Time       `db:"start_date"`
	EndDate      time.Time       `db:"end_date"`
	TotalIncome  decimal.Decimal `db:"total_income"`
	TotalExpense decimal.Decimal `db:"total_expense"`
	NetIncome    decimal.Decimal `db:"net_income"`
	CreatedAt    time.Time       `db:"created_at"`
}

func (r *reportsRepository) CreateReport(ctx context.Context, report entity.TransactionReport) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id":            report.ID,
		"start_date":    report.StartDate,
		"end_date":      report.EndDate,
		"total_income":  report.TotalIncome,
		"total_expense": report.TotalExpense,
		"net_income":    report.NetIncome,
		"created_at":    report.CreatedAt,
	}

	query, args, err := sqlx.Named(queryCreateReport, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for CreateReport")
		return err
	}
	query = r.q.Rebind(query)

	_, err = r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating report")
		return err
	}

	return nil
}

func (r *reportsRepository) GetReportByID(ctx context.Context, id string) (entity.TransactionReport, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var report ReportDB

	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryGetReportByID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetReportByID named query preparation err")
		return entity.TransactionReport{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(ctx, query, args...).StructScan(&report); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"id":         id,
			}).Warn("GetReportByID no rows found")
			return entity.TransactionReport{}, reports.ErrReportNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetReportByID execution err")
		return entity.TransactionReport{}, err
	}

	return r.makeReport(report), nil
}

func (r *reportsRepository) GetAllReports(ctx context.Context) ([]entity.TransactionReport, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var rows []ReportDB

	query, args, err := sqlx.Named(queryGetAllReports, map[string]interface{}{})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetAllReports named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(ctx, &rows, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetAllReports execution err")
		return nil, err
	}

	reportList := make([]entity.TransactionReport, 0, len(rows))
	for _, row := range rows {
		reportList = append(reportList, r.makeReport(row))
	}

	return reportList, nil
}

func (r *reportsRepository) makeReport(row ReportDB) entity.TransactionReport {
	return entity.TransactionReport{
		ID:           row.ID.String,
		StartDate:    row.StartDate,
		EndDate:      row.EndDate,
		TotalIncome:  row.TotalIncome,
		TotalExpense: row.TotalExpense,
		NetIncome:    row.NetIncome,
		CreatedAt:    row.CreatedAt,
	}
}
