package userHandler

import (
	userService "github.com/UnimaginableCat/fin-manager-project/internal/api/users/service"
	"github.com/UnimaginableCat/fin-manager-project/internal/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type UserHandler struct {
	log         *logrus.Logger
	validator   *validator.Validate
	middleware  middleware.Middleware
	userService userService.IUserService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	userService userService.IUserService,
) *UserHandler {
	return &UserHandler{
		log:         log,
		validator:   validate,
		middleware:  middleware,
		userService: userService,
	}
}

func (h *UserHandler) Start(srv fiber.Router) {
	user := srv.Group("/users")

	user.Get("", h.GetAllUsers)
	user.Post("", h.CreateUser)
	user.Get("/:id", h.GetUserByID)
	user.Put("/:id", h.UpdateUser)
	user.Delete("/:id", h.DeleteUser)
}
