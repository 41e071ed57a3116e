package userService

import (
	"time"

	users "github.com/UnimaginableCat/fin-manager-project/internal/api/users"
	"github.com/UnimaginableCat/fin-manager-project/internal/entity"
	contextPkg "github.com/UnimaginableCat/fin-manager-project/pkg/context"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

func (s *userService) CreateUser(ctx context.Context, req users.CreateUserRequest) (entity.User, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.userRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return entity.User{}, err
	}

	id, err := s.utils.NewUUID()
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate UUID")
		return entity.User{}, err
	}

	now := time.Now()
	user := entity.User{
		ID:        id,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := repo.Users.CreateUser(ctx, user); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create user")
		return entity.User{}, users.ErrCreateUser
	}

	return user, nil
}

func (s *userService) UpdateUser(ctx context.Context, id string, req users.UpdateUserRequest) (entity.User, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.userRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return entity.User{}, err
	}

	user, err := repo.Users.GetUserByID(ctx, id)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
			"error":      err.Error(),
		}).Warn("Failed to get user for update")
		return entity.User{}, err
	}

	// Partial patch: only fields present in the request overwrite stored values.
	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	user.UpdatedAt = time.Now()

	if err := repo.Users.UpdateUser(ctx, user); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
			"error":      err.Error(),
		}).Error("Failed to update user")
		return entity.User{}, err
	}

	return user, nil
}

func (s *userService) DeleteUser(ctx context.Context, id string) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.userRepository.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return err
	}
	defer func() {
		_ = repo.Rollback()
	}()

	if _, err := repo.Users.GetUserByID(ctx, id); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
			"error":      err.Error(),
		}).Warn("Failed to get user for delete")
		return err
	}

	// Cascade: owned transactions go first, then the user itself, atomically.
	if err := repo.Users.DeleteTransactionsByUserID(ctx, id); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
			"error":      err.Error(),
		}).Error("Failed to delete user transactions")
		return users.ErrDeleteUser
	}

	if err := repo.Users.DeleteUser(ctx, id); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
			"error":      err.Error(),
		}).Error("Failed to delete user")
		return err
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
			"error":      err.Error(),
		}).Error("Failed to commit user delete")
		return users.ErrDeleteUser
	}

	return nil
}

func (s *userService) GetAllUsers(ctx context.Context) ([]entity.User, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.userRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return nil, err
	}

	userList, err := repo.Users.GetAllUsers(ctx)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to get all users")
		return nil, err
	}

	return userList, nil
}

func (s *userService) GetUserByID(ctx context.Context, id string) (entity.User, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.userRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return entity.User{}, err
	}

	user, err := repo.Users.GetUserByID(ctx, id)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
			"error":      err.Error(),
		}).Warn("Failed to get user by ID")
		return entity.User{}, err
	}

	return user, nil
}
