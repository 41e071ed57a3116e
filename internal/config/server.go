package config

import (
	"fmt"
	"os"

	"github.com/UnimaginableCat/fin-manager-project/database/postgres"
	exportHandler "github.com/UnimaginableCat/fin-manager-project/internal/api/export/handler"
	reportHandler "github.com/UnimaginableCat/fin-manager-project/internal/api/reports/handler"
	reportRepository "github.com/UnimaginableCat/fin-manager-project/internal/api/reports/repository"
	reportService "github.com/UnimaginableCat/fin-manager-project/internal/api/reports/service"
	transactionHandler "github.com/UnimaginableCat/fin-manager-project/internal/api/transactions/handler"
	transactionRepository "github.com/UnimaginableCat/fin-manager-project/internal/api/transactions/repository"
	transactionService "github.com/UnimaginableCat/fin-manager-project/internal/api/transactions/service"
	userHandler "github.com/UnimaginableCat/fin-manager-project/internal/api/users/handler"
	userRepository "github.com/UnimaginableCat/fin-manager-project/internal/api/users/repository"
	userService "github.com/UnimaginableCat/fin-manager-project/internal/api/users/service"
	"github.com/UnimaginableCat/fin-manager-project/internal/middleware"
	"github.com/UnimaginableCat/fin-manager-project/pkg/utils"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type ServerOption func(*Server) error

type Server struct {
	engine     *fiber.App
	db         *sqlx.DB
	log        *logrus.Logger
	middleware middleware.Middleware
	validator  *validator.Validate
	utils      utils.IUtils
	handlers   []handler
}

type handler interface {
	Start(srv fiber.Router)
}

func NewServer(options ...ServerOption) (*Server, error) {
	server := &Server{}

	for _, option := range options {
		if err := option(server); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if server.engine == nil {
		return nil, fmt.Errorf("fiber app is required")
	}
	if server.log == nil {
		return nil, fmt.Errorf("logger is required")
	}

	return server, nil
}

func WithFiber(fiberApp *fiber.App) ServerOption {
	return func(s *Server) error {
		s.engine = fiberApp
		return nil
	}
}

func WithLogger(logger *logrus.Logger) ServerOption {
	return func(s *Server) error {
		s.log = logger
		return nil
	}
}

func WithValidator(validator *validator.Validate) ServerOption {
	return func(s *Server) error {
		s.validator = validator
		return nil
	}
}

func WithDatabase() ServerOption {
	return func(s *Server) error {
		db, err := postgres.New()
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to connect to database: %v", err)
			}
			return fmt.Errorf("failed to create database connection: %w", err)
		}
		s.db = db
		return nil
	}
}

func WithMiddleware() ServerOption {
	return func(s *Server) error {
		if s.log == nil {
			return fmt.Errorf("logger must be initialized before middleware")
		}
		s.middleware = middleware.New(s.log)
		return nil
	}
}

func WithUtils() ServerOption {
	return func(s *Server) error {
		s.utils = utils.New()
		return nil
	}
}

func (s *Server) RegisterHandler() {
	// User Domain
	userRepo := userRepository.New(s.db, s.log)
	userServices := userService.New(s.log, userRepo, s.utils)
	userHandlers := userHandler.New(s.log, s.validator, s.middleware, userServices)

	// Transaction Domain
	transactionRepo := transactionRepository.New(s.db, s.log)
	transactionServices := transactionService.New(s.log, transactionRepo, userRepo, s.utils)
	transactionHandlers := transactionHandler.New(s.log, s.validator, s.middleware, transactionServices)

	// Report Domain
	reportRepo := reportRepository.New(s.db, s.log)
	reportServices := reportService.New(s.log, reportRepo, transactionRepo, s.utils)
	reportHandlers := reportHandler.New(s.log, s.validator, s.middleware, reportServices)

	// CSV Export
	exportHandlers := exportHandler.New(s.log, s.middleware, transactionServices, reportServices)

	s.setupHealthCheck()
	s.handlers = append(s.handlers, userHandlers, transactionHandlers, reportHandlers, exportHandlers)
}

func (s *Server) Run() error {
	s.engine.Use(s.middleware.NewRequestIDMiddleware())
	s.engine.Use(middleware.LoggerConfig())
	s.engine.Use(s.middleware.NewRateLimiter)

	for _, h := range s.handlers {
		h.Start(s.engine)
	}

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "3000"
	}

	return s.engine.Listen(fmt.Sprintf(":%s", port))
}

func (s *Server) setupHealthCheck() {
	s.engine.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{
			"message": "Server is Healthy!",
		})
	})
}
