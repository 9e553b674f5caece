package models

import "github.com/m04kA/SMC-POSService/internal/domain"

// CreateUserInput данные нового пользователя
type CreateUserInput struct {
	Username string
	Password string
	Role     string
}

// UserResponse пользователь без пароля
type UserResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// LoginResponse результат успешного входа
type LoginResponse struct {
	Success bool          `json:"success"`
	Message string        `json:"message"`
	Role    string        `json:"role"`
	User    *UserResponse `json:"user"`
}

// FromDomainUser конвертирует доменного пользователя в ответ
func FromDomainUser(u *domain.User) *UserResponse {
	return &UserResponse{
		ID:       u.ID,
		Username: u.Username,
		Role:     u.Role,
	}
}

// FromDomainUserList конвертирует список пользователей
func FromDomainUserList(users []*domain.User) []*UserResponse {
	result := make([]*UserResponse, 0, len(users))
	for _, u := range users {
		result = append(result, FromDomainUser(u))
	}
	return result
}
