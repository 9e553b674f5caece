package login

import (
	"context"

	"github.com/m04kA/SMC-POSService/internal/service/users/models"
)

type UserService interface {
	Login(ctx context.Context, username, password string) (*models.LoginResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
