package exportHandler

import (
	"bytes"
	"encoding/csv"
	"time"

	reports "github.com/UnimaginableCat/fin-manager-project/internal/api/reports"
	transactions "github.com/UnimaginableCat/fin-manager-project/internal/api/transactions"
	contextPkg "github.com/UnimaginableCat/fin-manager-project/pkg/context"
	"github.com/UnimaginableCat/fin-manager-project/pkg/handlerUtil"
	"github.com/UnimaginableCat/fin-manager-project/pkg/log"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"
)

// Column orders are an external contract, including the irregular end_Date
// casing in the reports header.
var (
	transactionCSVHeader = []string{"Id", "amount", "date", "transaction_type", "category", "user_id"}
	reportCSVHeader      = []string{"id", "start_date", "end_Date", "total_income", "total_expense", "net_income"}
)

func (h *ExportHandler) ExportTransactionsCSV(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing export transactions request")

	transactionList, err := h.transactionService.GetAllTransactions(c)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "export_transactions")
	}

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write(transactionCSVHeader); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "write_csv_header")
	}

	for _, transaction := range transactionList {
		record := []string{
			transaction.ID,
			transaction.Amount.StringFixed(2),
			transaction.Date.Format(transactions.DateFormat),
			transaction.TransactionType,
			transaction.Category,
			transaction.UserID,
		}
		if err := writer.Write(record); err != nil {
			return errHandler.Handle(ctx, requestID, err, ctx.Path(), "write_csv_record")
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "flush_csv")
	}

	ctx.Set(fiber.HeaderContentType, "text/csv")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="transactions.csv"`)

	return ctx.Status(fiber.StatusOK).Send(buf.Bytes())
}

func (h *ExportHandler) ExportReportsCSV(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing export reports request")

	reportList, err := h.reportService.GetAllReports(c)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "export_reports")
	}

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write(reportCSVHeader); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "write_csv_header")
	}

	for _, report := range reportList {
		record := []string{
			report.ID,
			report.StartDate.Format(reports.DateFormat),
			report.EndDate.Format(reports.DateFormat),
			report.TotalIncome.StringFixed(2),
			report.TotalExpense.StringFixed(2),
			report.NetIncome.StringFixed(2),
		}
		if err := writer.Write(record); err != nil {
			return errHandler.Handle(ctx, requestID, err, ctx.Path(), "write_csv_record")
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "flush_csv")
	}

	ctx.Set(fiber.HeaderContentType, "text/csv")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="reports.csv"`)

	return ctx.Status(fiber.StatusOK).Send(buf.Bytes())
}
