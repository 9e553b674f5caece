package create_user

import "github.com/m04kA/SMC-POSService/internal/service/users/models"

// CreateUserRequest тело запроса на создание пользователя
type CreateUserRequest struct {
	Username string `json:"username" validate:"required,max=100"`
	Password string `json:"password" validate:"required,max=255"`
	Role     string `json:"role" validate:"required,max=50"`
}

// ToServiceInput конвертирует запрос во входные данные сервиса
func (r *CreateUserRequest) ToServiceInput() *models.CreateUserInput {
	return &models.CreateUserInput{
		Username: r.Username,
		Password: r.Password,
		Role:     r.Role,
	}
}
