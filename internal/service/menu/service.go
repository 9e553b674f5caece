package menu

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/m04kA/SMC-POSService/internal/domain"
	"github.com/m04kA/SMC-POSService/internal/infra/cache"
	menuRepo "github.com/m04kA/SMC-POSService/internal/infra/storage/menu"
	"github.com/m04kA/SMC-POSService/internal/service/menu/models"
)

// Service сервис каталога меню
type Service struct {
	menuRepo  MenuRepository
	txManager TransactionManager
	cache     Cache
	logger    Logger
}

// NewService создает новый экземпляр сервиса меню
func NewService(menuRepo MenuRepository, txManager TransactionManager, cache Cache, logger Logger) *Service {
	return &Service{
		menuRepo:  menuRepo,
		txManager: txManager,
		cache:     cache,
		logger:    logger,
	}
}

// List возвращает меню без изображений. Список кешируется до изменения меню.
func (s *Service) List(ctx context.Context) ([]*models.MenuItemResponse, error) {
	var cached []*models.MenuItemResponse
	if s.cache.Get(ctx, cache.KeyMenuList, &cached) {
		return cached, nil
	}

	version := s.cache.Version(ctx, cache.KeyMenuList)

	var items []*domain.MenuItem
	err := s.txManager.DoReadOnly(ctx, func(txCtx context.Context) error {
		var err error
		items, err = s.menuRepo.List(txCtx)
		return err
	})
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	result := models.FromDomainMenuItemList(items)
	s.cache.SetIfVersion(ctx, cache.KeyMenuList, version, result)

	s.logger.Info("List: fetched %d menu items", len(result))
	return result, nil
}

// Create добавляет позицию меню
func (s *Service) Create(ctx context.Context, input *models.CreateMenuItemInput) (*models.MenuItemResponse, error) {
	name := strings.TrimSpace(input.Name)
	category := strings.TrimSpace(input.Category)
	if name == "" || category == "" {
		return nil, fmt.Errorf("%w: name and category are required", ErrInvalidInput)
	}
	if utf8.RuneCountInString(name) > domain.MaxMenuNameLength || utf8.RuneCountInString(category) > domain.MaxCategoryLength {
		return nil, fmt.Errorf("%w: name must be at most %d and category at most %d characters",
			ErrInvalidInput, domain.MaxMenuNameLength, domain.MaxCategoryLength)
	}
	if input.Price < 0 || input.Price > domain.MaxAmount {
		return nil, fmt.Errorf("%w: price must be in 0..%.2f", ErrInvalidInput, domain.MaxAmount)
	}

	var created *domain.MenuItem
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		var err error
		created, err = s.menuRepo.Create(txCtx, &domain.MenuItem{
			Name:     name,
			Category: category,
			Price:    input.Price,
			Image:    input.Image,
		})
		return err
	})
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.cache.Delete(ctx, cache.KeyMenuList)

	s.logger.Info("Create: menu item id=%d created (%s)", created.ID, created.Name)
	return models.FromDomainMenuItem(created), nil
}

// GetImage возвращает изображение позиции меню
func (s *Service) GetImage(ctx context.Context, id int64) ([]byte, error) {
	var image []byte
	err := s.txManager.DoReadOnly(ctx, func(txCtx context.Context) error {
		var err error
		image, err = s.menuRepo.GetImage(txCtx, id)
		return err
	})
	if err != nil {
		switch {
		case errors.Is(err, menuRepo.ErrMenuItemNotFound):
			return nil, ErrMenuItemNotFound
		case errors.Is(err, menuRepo.ErrImageNotFound):
			return nil, ErrImageNotFound
		}
		s.logger.Error("GetImage: repository error for menu item id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetImage - repository error: %v", ErrInternal, err)
	}

	return image, nil
}

// Delete удаляет позицию меню и возвращает удалённую запись
func (s *Service) Delete(ctx context.Context, id int64) (*models.MenuItemResponse, error) {
	var deleted *domain.MenuItem
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		var err error
		deleted, err = s.menuRepo.Delete(txCtx, id)
		return err
	})
	if err != nil {
		if errors.Is(err, menuRepo.ErrMenuItemNotFound) {
			s.logger.Warn("Delete: menu item id=%d not found", id)
			return nil, ErrMenuItemNotFound
		}
		s.logger.Error("Delete: repository error for menu item id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.cache.Delete(ctx, cache.KeyMenuList)

	s.logger.Info("Delete: menu item id=%d deleted", id)
	return models.FromDomainMenuItem(deleted), nil
}
