package reports

import "github.com/shopspring/decimal"

const DateFormat = "2006-01-02"

type CreateReportRequest struct {
	StartDate string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate   string `json:"end_date" validate:"required,datetime=2006-01-02"`
}

type ReportResponse struct {
	ID           string          `json:"id"`
	StartDate    string          `json:"start_date"`
	EndDate      string          `json:"end_date"`
	TotalIncome  decimal.Decimal `json:"total_income"`
	TotalExpense decimal.Decimal `json:"total_expense"`
	NetIncome    decimal.Decimal `json:"net_income"`
	CreatedAt    string          `json:"created_at"`
}

type ReportListResponse struct {
	Reports []ReportResponse `json:"reports"`
	Total   int              `json:"total"`
}
