package main

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
	"github.com/spf13/cobra"

	"github.com/m04kA/WeddingSalon-BookingService/internal/config"
	"github.com/m04kA/WeddingSalon-BookingService/pkg/logger"
)

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:          "weddingsalon",
		Short:        "Wedding salon booking service",
		SilenceUsage: true,
		// Без подкоманды запускается HTTP сервер
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), configPath)
		},
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "config.toml", "path to the TOML config file")

	root.AddCommand(
		newServeCmd(&configPath),
		newMigrateCmd(&configPath),
		newSeedCmd(&configPath),
		newHashPasswordCmd(),
	)
	return root
}

// bootstrap загружает конфигурацию и создает логгер
func bootstrap(configPath string) (*config.Config, *logger.Logger, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	log.Info("Configuration loaded from %s", configPath)
	return cfg, log, nil
}

// openPostgres открывает пул соединений и проверяет доступность базы
func openPostgres(cfg config.DatabaseConfig, log *logger.Logger) (*sql.DB, error) {
	db, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)", cfg.Host, cfg.Port, cfg.DBName)
	return db, nil
}
