package reports

import "github.com/UnimaginableCat/fin-manager-project/pkg/response"

var (
	ErrReportNotFound   = response.NewError(404, "report not found")
	ErrInvalidDateRange = response.NewError(400, "end date must not be before start date")
	ErrCreateReport     = response.NewError(500, "failed to create report")
)
