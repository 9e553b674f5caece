package menu

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-POSService/internal/domain"
	"github.com/m04kA/SMC-POSService/internal/infra/cache"
	menuRepo "github.com/m04kA/SMC-POSService/internal/infra/storage/menu"
	"github.com/m04kA/SMC-POSService/internal/service/menu/models"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type mockMenuRepository struct {
	mock.Mock
}

func newMockMenuRepository(t *testing.T) *mockMenuRepository {
	m := &mockMenuRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *mockMenuRepository) List(ctx context.Context) ([]*domain.MenuItem, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]*domain.MenuItem), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockMenuRepository) Create(ctx context.Context, item *domain.MenuItem) (*domain.MenuItem, error) {
	args := m.Called(ctx, item)
	if v := args.Get(0); v != nil {
		return v.(*domain.MenuItem), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockMenuRepository) GetImage(ctx context.Context, id int64) ([]byte, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.([]byte), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockMenuRepository) Delete(ctx context.Context, id int64) (*domain.MenuItem, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*domain.MenuItem), args.Error(1)
	}
	return nil, args.Error(1)
}

type inlineTx struct{}

func (inlineTx) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (inlineTx) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

const menuJSON = `[{"id":1,"name":"Soup","category":"Starters","price":5.5}]`

func TestService_List_CachesResult(t *testing.T) {
	repo := newMockMenuRepository(t)
	client, redisMock := redismock.NewClientMock()
	svc := NewService(repo, inlineTx{}, cache.New(client, time.Minute, nopLogger{}), nopLogger{})

	redisMock.ExpectGet(cache.KeyMenuList).RedisNil()
	redisMock.ExpectGet(cache.VersionKey(cache.KeyMenuList)).RedisNil()
	redisMock.ExpectEval(cache.SetIfVersionScript, []string{cache.KeyMenuList, cache.VersionKey(cache.KeyMenuList)},
		"0", []byte(menuJSON), int64(60000)).SetVal(int64(1))
	redisMock.ExpectGet(cache.KeyMenuList).SetVal(menuJSON)

	repo.On("List", mock.Anything).Return([]*domain.MenuItem{
		{ID: 1, Name: "Soup", Category: "Starters", Price: 5.5},
	}, nil).Once()

	first, err := svc.List(context.Background())
	require.NoError(t, err)
	second, err := svc.List(context.Background())
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.NoError(t, redisMock.ExpectationsWereMet())
}

func TestService_Create_InvalidatesList(t *testing.T) {
	repo := newMockMenuRepository(t)
	client, redisMock := redismock.NewClientMock()
	svc := NewService(repo, inlineTx{}, cache.New(client, time.Minute, nopLogger{}), nopLogger{})

	image := []byte{0x89, 'P', 'N', 'G'}
	repo.On("Create", mock.Anything, &domain.MenuItem{Name: "Soup", Category: "Starters", Price: 5.5, Image: image}).
		Return(&domain.MenuItem{ID: 1, Name: "Soup", Category: "Starters", Price: 5.5}, nil)
	redisMock.ExpectIncr(cache.VersionKey(cache.KeyMenuList)).SetVal(1)
	redisMock.ExpectDel(cache.KeyMenuList).SetVal(1)

	created, err := svc.Create(context.Background(), &models.CreateMenuItemInput{
		Name:     " Soup ",
		Category: "Starters",
		Price:    5.5,
		Image:    image,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
	assert.NoError(t, redisMock.ExpectationsWereMet())
}

func TestService_Create_Validation(t *testing.T) {
	svc := NewService(newMockMenuRepository(t), inlineTx{}, cache.New(nil, 0, nopLogger{}), nopLogger{})

	_, err := svc.Create(context.Background(), &models.CreateMenuItemInput{Name: "", Category: "Drinks"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Create(context.Background(), &models.CreateMenuItemInput{Name: "Tea", Category: "Drinks", Price: -1})
	assert.ErrorIs(t, err, ErrInvalidInput)

	// Границы колонок name VARCHAR(255), category VARCHAR(100), price NUMERIC(10,2)
	_, err = svc.Create(context.Background(), &models.CreateMenuItemInput{Name: strings.Repeat("a", 256), Category: "Drinks"})
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = svc.Create(context.Background(), &models.CreateMenuItemInput{Name: "Tea", Category: strings.Repeat("c", 101)})
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = svc.Create(context.Background(), &models.CreateMenuItemInput{Name: "Tea", Category: "Drinks", Price: 1e9})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_GetImage(t *testing.T) {
	repo := newMockMenuRepository(t)
	svc := NewService(repo, inlineTx{}, cache.New(nil, 0, nopLogger{}), nopLogger{})

	repo.On("GetImage", mock.Anything, int64(1)).Return([]byte("img"), nil)
	repo.On("GetImage", mock.Anything, int64(2)).Return(nil, menuRepo.ErrImageNotFound)
	repo.On("GetImage", mock.Anything, int64(3)).Return(nil, menuRepo.ErrMenuItemNotFound)
	repo.On("GetImage", mock.Anything, int64(4)).Return(nil, menuRepo.ErrScanRow)

	image, err := svc.GetImage(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, []byte("img"), image)

	_, err = svc.GetImage(context.Background(), 2)
	assert.ErrorIs(t, err, ErrImageNotFound)
	_, err = svc.GetImage(context.Background(), 3)
	assert.ErrorIs(t, err, ErrMenuItemNotFound)
	_, err = svc.GetImage(context.Background(), 4)
	assert.ErrorIs(t, err, ErrInternal)
}

func TestService_Delete(t *testing.T) {
	repo := newMockMenuRepository(t)
	client, redisMock := redismock.NewClientMock()
	svc := NewService(repo, inlineTx{}, cache.New(client, time.Minute, nopLogger{}), nopLogger{})

	repo.On("Delete", mock.Anything, int64(1)).Return(&domain.MenuItem{ID: 1, Name: "Soup"}, nil)
	repo.On("Delete", mock.Anything, int64(2)).Return(nil, menuRepo.ErrMenuItemNotFound)
	redisMock.ExpectIncr(cache.VersionKey(cache.KeyMenuList)).SetVal(1)
	redisMock.ExpectDel(cache.KeyMenuList).SetVal(1)

	deleted, err := svc.Delete(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Soup", deleted.Name)

	_, err = svc.Delete(context.Background(), 2)
	assert.ErrorIs(t, err, ErrMenuItemNotFound)
	assert.NoError(t, redisMock.ExpectationsWereMet())
}
