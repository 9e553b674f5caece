// Package migrator применяет SQL миграции из fs.FS и запоминает применённые
// версии в таблице schema_migrations.
package migrator

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/m04kA/SMC-POSService/pkg/dbmetrics"
	"github.com/m04kA/SMC-POSService/pkg/psqlbuilder"
)

const migrationsTable = "schema_migrations"

var (
	// ErrReadMigrations не удалось прочитать файлы миграций
	ErrReadMigrations = errors.New("migrator: failed to read migrations")

	// ErrApplyMigration не удалось применить миграцию
	ErrApplyMigration = errors.New("migrator: failed to apply migration")
)

// DB соединение, в котором выполняются миграции
type DB interface {
	dbmetrics.DBExecutor
	BeginTx(ctx context.Context, opts *sql.TxOptions) (dbmetrics.TxExecutor, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Migrator применяет миграции
type Migrator struct {
	db     DB
	fsys   fs.FS
	logger Logger
}

// New создает мигратор
func New(db DB, fsys fs.FS, logger Logger) *Migrator {
	return &Migrator{db: db, fsys: fsys, logger: logger}
}

// Up применяет все ещё не применённые миграции, каждую в своей транзакции.
// Возвращает число применённых миграций.
func (m *Migrator) Up(ctx context.Context) (int, error) {
	if _, err := m.db.ExecContext(ctx, fmt.Sprintf(
		"CREATE TABLE IF NOT EXISTS %s (version VARCHAR(255) PRIMARY KEY, applied_at TIMESTAMPTZ NOT NULL DEFAULT NOW())",
		migrationsTable,
	)); err != nil {
		return 0, fmt.Errorf("%w: Up - create %s: %v", ErrApplyMigration, migrationsTable, err)
	}

	files, err := m.files()
	if err != nil {
		return 0, err
	}

	applied, err := m.appliedVersions(ctx)
	if err != nil {
		return 0, err
	}

	count := 0
	for _, file := range files {
		version := strings.TrimSuffix(file, ".sql")
		if applied[version] {
			continue
		}

		if err := m.apply(ctx, file, version); err != nil {
			m.logger.Error("Migrate: failed to apply %s: %v", version, err)
			return count, err
		}
		m.logger.Info("Migrate: applied %s", version)
		count++
	}

	return count, nil
}

func (m *Migrator) files() ([]string, error) {
	names, err := fs.Glob(m.fsys, "*.sql")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadMigrations, err)
	}
	sort.Strings(names)
	return names, nil
}

func (m *Migrator) appliedVersions(ctx context.Context) (map[string]bool, error) {
	query, args, err := psqlbuilder.Select("version").From(migrationsTable).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: appliedVersions - build query: %v", ErrApplyMigration, err)
	}

	rows, err := m.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: appliedVersions - execute query: %v", ErrApplyMigration, err)
	}
	defer rows.Close()

	applied := make(map[string]bool)
	for rows.Next() {
		var version string
		if err := rows.Scan(&version); err != nil {
			return nil, fmt.Errorf("%w: appliedVersions - scan: %v", ErrApplyMigration, err)
		}
		applied[version] = true
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: appliedVersions - rows: %v", ErrApplyMigration, err)
	}

	return applied, nil
}

func (m *Migrator) apply(ctx context.Context, file, version string) (err error) {
	body, err := fs.ReadFile(m.fsys, path.Clean(file))
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrReadMigrations, file, err)
	}

	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %s - begin: %v", ErrApplyMigration, version, err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, string(body)); err != nil {
		return fmt.Errorf("%w: %s - exec: %v", ErrApplyMigration, version, err)
	}

	query, args, err := psqlbuilder.Insert(migrationsTable).Columns("version").Values(version).ToSql()
	if err != nil {
		return fmt.Errorf("%w: %s - build insert: %v", ErrApplyMigration, version, err)
	}
	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %s - record version: %v", ErrApplyMigration, version, err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: %s - commit: %v", ErrApplyMigration, version, err)
	}
	return nil
}
