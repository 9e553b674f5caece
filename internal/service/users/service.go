package users

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/m04kA/SMC-POSService/internal/domain"
	userRepo "github.com/m04kA/SMC-POSService/internal/infra/storage/user"
	"github.com/m04kA/SMC-POSService/internal/service/users/models"
)

const loginSuccessMessage = "Вход выполнен успешно"

// Service сервис учётных записей сотрудников.
// Пароли хранятся и сравниваются в открытом виде.
type Service struct {
	userRepo  UserRepository
	txManager TransactionManager
	logger    Logger
}

// NewService создает новый экземпляр сервиса пользователей
func NewService(userRepo UserRepository, txManager TransactionManager, logger Logger) *Service {
	return &Service{
		userRepo:  userRepo,
		txManager: txManager,
		logger:    logger,
	}
}

// Create создает пользователя
func (s *Service) Create(ctx context.Context, input *models.CreateUserInput) (*models.UserResponse, error) {
	username := strings.TrimSpace(input.Username)
	role := strings.TrimSpace(input.Role)
	if username == "" || input.Password == "" || role == "" {
		return nil, fmt.Errorf("%w: username, password and role are required", ErrInvalidInput)
	}
	if utf8.RuneCountInString(username) > domain.MaxUsernameLength ||
		utf8.RuneCountInString(input.Password) > domain.MaxPasswordLength ||
		utf8.RuneCountInString(role) > domain.MaxRoleLength {
		return nil, fmt.Errorf("%w: username, password or role is too long", ErrInvalidInput)
	}

	var created *domain.User
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		var err error
		created, err = s.userRepo.Create(txCtx, &domain.User{
			Username: username,
			Password: input.Password,
			Role:     role,
		})
		return err
	})
	if err != nil {
		if errors.Is(err, userRepo.ErrUsernameTaken) {
			s.logger.Warn("Create: username %s already exists", username)
			return nil, ErrUsernameTaken
		}
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: user id=%d created, role=%s", created.ID, created.Role)
	return models.FromDomainUser(created), nil
}

// List возвращает пользователей без паролей
func (s *Service) List(ctx context.Context) ([]*models.UserResponse, error) {
	var users []*domain.User
	err := s.txManager.DoReadOnly(ctx, func(txCtx context.Context) error {
		var err error
		users, err = s.userRepo.List(txCtx)
		return err
	})
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainUserList(users), nil
}

// Delete удаляет пользователя
func (s *Service) Delete(ctx context.Context, id int64) error {
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		return s.userRepo.Delete(txCtx, id)
	})
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("Delete: user id=%d not found", id)
			return ErrUserNotFound
		}
		s.logger.Error("Delete: repository error for user id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: user id=%d deleted", id)
	return nil
}

// Login проверяет пару логин/пароль
func (s *Service) Login(ctx context.Context, username, password string) (*models.LoginResponse, error) {
	if username == "" || password == "" {
		return nil, fmt.Errorf("%w: missing credentials", ErrInvalidInput)
	}

	var user *domain.User
	err := s.txManager.DoReadOnly(ctx, func(txCtx context.Context) error {
		var err error
		user, err = s.userRepo.GetByCredentials(txCtx, username, password)
		return err
	})
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("Login: invalid credentials for %s", username)
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("Login: repository error: %v", err)
		return nil, fmt.Errorf("%w: Login - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Login: user id=%d logged in", user.ID)
	return &models.LoginResponse{
		Success: true,
		Message: loginSuccessMessage,
		Role:    user.Role,
		User:    models.FromDomainUser(user),
	}, nil
}
