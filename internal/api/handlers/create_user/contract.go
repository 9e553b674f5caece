package create_user

import (
	"context"

	"github.com/m04kA/SMC-POSService/internal/service/users/models"
)

type UserService interface {
	Create(ctx context.Context, input *models.CreateUserInput) (*models.UserResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
