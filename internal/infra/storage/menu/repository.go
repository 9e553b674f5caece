package menu

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-POSService/internal/domain"
	"github.com/m04kA/SMC-POSService/pkg/dbmetrics"
	"github.com/m04kA/SMC-POSService/pkg/psqlbuilder"
)

const tableName = "menu"

// Repository репозиторий меню
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория меню
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// List возвращает позиции меню без изображений
func (r *Repository) List(ctx context.Context) ([]*domain.MenuItem, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "category", "price", "created_at").
		From(tableName).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	items := make([]*domain.MenuItem, 0)
	for rows.Next() {
		var (
			item      domain.MenuItem
			createdAt sql.NullTime
		)
		if err := rows.Scan(&item.ID, &item.Name, &item.Category, &item.Price, &createdAt); err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		item.CreatedAt = createdAt.Time
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows iteration: %v", ErrScanRow, err)
	}

	return items, nil
}

// Create сохраняет позицию меню вместе с изображением
func (r *Repository) Create(ctx context.Context, item *domain.MenuItem) (*domain.MenuItem, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(tableName).
		Columns("name", "category", "price", "image").
		Values(item.Name, item.Category, item.Price, item.Image).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&item.ID, &createdAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}
	item.CreatedAt = createdAt.Time

	return item, nil
}

// GetImage возвращает бинарное изображение позиции
func (r *Repository) GetImage(ctx context.Context, id int64) ([]byte, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("image").
		From(tableName).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetImage - build select query: %v", ErrBuildQuery, err)
	}

	var image []byte
	err = executor.QueryRowContext(ctx, query, args...).Scan(&image)
	if err == sql.ErrNoRows {
		return nil, ErrMenuItemNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetImage - scan image: %v", ErrScanRow, err)
	}
	if len(image) == 0 {
		return nil, ErrImageNotFound
	}

	return image, nil
}

// Delete удаляет позицию меню и возвращает удалённую запись (без изображения)
func (r *Repository) Delete(ctx context.Context, id int64) (*domain.MenuItem, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(tableName).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING id, name, category, price, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	var (
		item      domain.MenuItem
		createdAt sql.NullTime
	)
	err = executor.QueryRowContext(ctx, query, args...).
		Scan(&item.ID, &item.Name, &item.Category, &item.Price, &createdAt)
	if err == sql.ErrNoRows {
		return nil, ErrMenuItemNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Delete - scan menu item: %v", ErrScanRow, err)
	}
	item.CreatedAt = createdAt.Time

	return &item, nil
}
