package userService

import (
	users "github.com/UnimaginableCat/fin-manager-project/internal/api/users"
	userRepository "github.com/UnimaginableCat/fin-manager-project/internal/api/users/repository"
	"github.com/UnimaginableCat/fin-manager-project/internal/entity"
	"github.com/UnimaginableCat/fin-manager-project/pkg/utils"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type IUserService interface {
	CreateUser(ctx context.Context, req users.CreateUserRequest) (entity.User, error)
	UpdateUser(ctx context.Context, id string, req users.UpdateUserRequest) (entity.User, error)
	DeleteUser(ctx context.Context, id string) error
	GetAllUsers(ctx context.Context) ([]entity.User, error)
	GetUserByID(ctx context.Context, id string) (entity.User, error)
}

type userService struct {
	log            *logrus.Logger
	userRepository userRepository.Repository
	utils          utils.IUtils
}

func New(log *logrus.Logger, ur userRepository.Repository, utils utils.IUtils) IUserService {
	return &userService{
		log:            log,
		userRepository: ur,
		utils:          utils,
	}
}
