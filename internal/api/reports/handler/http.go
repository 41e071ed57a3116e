package reportHandler

import (
	reportService "github.com/UnimaginableCat/fin-manager-project/internal/api/reports/service"
	"github.com/UnimaginableCat/fin-manager-project/internal/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type ReportHandler struct {
	log           *logrus.Logger
	validator     *validator.Validate
	middleware    middleware.Middleware
	reportService reportService.IReportService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	reportService reportService.IReportService,
) *ReportHandler {
	return &ReportHandler{
		log:           log,
		validator:     validate,
		middleware:    middleware,
		reportService: reportService,
	}
}

func (h *ReportHandler) Start(srv fiber.Router) {
	report := srv.Group("/reports")

	report.Get("", h.GetAllReports)
	report.Post("", h.CreateReport)
	report.Get("/:id", h.GetReportByID)
}
