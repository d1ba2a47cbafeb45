package migrations

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed sql/*.sql
var migrationsFS embed.FS

const migrationsDir = "sql"

var (
	ErrSetup   = errors.New("migrations: setup failed")
	ErrMigrate = errors.New("migrations: migration failed")
)

// Logger интерфейс логгера, совместимый с goose.Logger
type Logger interface {
	Printf(format string, v ...interface{})
	Fatalf(format string, v ...interface{})
}

// Migrator применяет встроенные в бинарник SQL миграции
type Migrator struct {
	db *sql.DB
}

// New настраивает goose на встроенную файловую систему и диалект postgres
func New(db *sql.DB, log Logger) (*Migrator, error) {
	goose.SetBaseFS(migrationsFS)
	if log != nil {
		goose.SetLogger(log)
	}
	if err := goose.SetDialect("postgres"); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSetup, err)
	}
	return &Migrator{db: db}, nil
}

// Up применяет все неприменённые миграции
func (m *Migrator) Up(ctx context.Context) error {
	if err := goose.UpContext(ctx, m.db, migrationsDir); err != nil {
		return fmt.Errorf("%w: up: %v", ErrMigrate, err)
	}
	return nil
}

// Down откатывает последнюю миграцию
func (m *Migrator) Down(ctx context.Context) error {
	if err := goose.DownContext(ctx, m.db, migrationsDir); err != nil {
		return fmt.Errorf("%w: down: %v", ErrMigrate, err)
	}
	return nil
}

// Status печатает состояние миграций через логгер goose
func (m *Migrator) Status(ctx context.Context) error {
	if err := goose.StatusContext(ctx, m.db, migrationsDir); err != nil {
		return fmt.Errorf("%w: status: %v", ErrMigrate, err)
	}
	return nil
}
