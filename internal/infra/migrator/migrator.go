package migrator

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
}

// Migrator обёртка над goose
type Migrator struct {
	db     *sql.DB
	logger Logger
}

// New создаёт мигратор для встроенных миграций
func New(db *sql.DB, migrations fs.FS, logger Logger) (*Migrator, error) {
	goose.SetBaseFS(migrations)

	if err := goose.SetDialect("postgres"); err != nil {
		return nil, fmt.Errorf("set goose dialect: %w", err)
	}

	return &Migrator{db: db, logger: logger}, nil
}

// Run применяет все pending миграции
func (m *Migrator) Run(ctx context.Context) error {
	m.logger.Info("Applying database migrations...")

	if err := goose.UpContext(ctx, m.db, "."); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}

	version, err := m.Version(ctx)
	if err != nil {
		return err
	}

	m.logger.Info("Migrations applied, schema version=%d", version)
	return nil
}

// Version показывает текущую версию миграций
func (m *Migrator) Version(ctx context.Context) (int64, error) {
	version, err := goose.GetDBVersionContext(ctx, m.db)
	if err != nil {
		return 0, fmt.Errorf("get version: %w", err)
	}
	return version, nil
}
