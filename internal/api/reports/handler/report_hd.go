package reportHandler

import (
	"time"

	reports "github.com/UnimaginableCat/fin-manager-project/internal/api/reports"
	"github.com/UnimaginableCat/fin-manager-project/internal/entity"
	contextPkg "github.com/UnimaginableCat/fin-manager-project/pkg/context"
	"github.com/UnimaginableCat/fin-manager-project/pkg/handlerUtil"
	"github.com/UnimaginableCat/fin-manager-project/pkg/log"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"
)

func (h *ReportHandler) CreateReport(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing create report request")

	var req reports.CreateReportRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	startDate, err := time.Parse(reports.DateFormat, req.StartDate)
	if err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}
	endDate, err := time.Parse(reports.DateFormat, req.EndDate)
	if err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	// Range check happens before the service is ever invoked, so an invalid
	// window never reaches persistence.
	if endDate.Before(startDate) {
		return errHandler.Handle(ctx, requestID, reports.ErrInvalidDateRange, ctx.Path(), "validate_date_range")
	}

	report, err := h.reportService.CreateReport(c, startDate, endDate)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "create_report")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusCreated, makeReportResponse(report))
	}
}

func (h *ReportHandler) GetAllReports(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing get all reports request")

	reportList, err := h.reportService.GetAllReports(c)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_all_reports")
	}

	reportResponses := make([]reports.ReportResponse, 0, len(reportList))
	for _, report := range reportList {
		reportResponses = append(reportResponses, makeReportResponse(report))
	}

	response := reports.ReportListResponse{
		Reports: reportResponses,
		Total:   len(reportResponses),
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, response)
	}
}

func (h *ReportHandler) GetReportByID(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing get report by ID request")

	id := ctx.Params("id")

	report, err := h.reportService.GetReportByID(c, id)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_report")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, makeReportResponse(report))
	}
}

func makeReportResponse(report entity.TransactionReport) reports.ReportResponse {
	return reports.ReportResponse{
		ID:           report.ID,
		StartDate:    report.StartDate.Format(reports.DateFormat),
		EndDate:      report.EndDate.Format(reports.DateFormat),
		TotalIncome:  report.TotalIncome,
		TotalExpense: report.TotalExpense,
		NetIncome:    report.NetIncome,
		CreatedAt:    report.CreatedAt.Format(time.RFC3339),
	}
}
