package users

import "github.com/UnimaginableCat/fin-manager-project/pkg/response"

var (
	ErrUserNotFound = response.NewError(404, "user not found")
	ErrCreateUser   = response.NewError(500, "failed to create user")
	ErrUpdateUser   = response.NewError(500, "failed to update user")
	ErrDeleteUser   = response.NewError(500, "failed to delete user")
)
