package database

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/a2sh3r/holdengine/internal/config"
	"github.com/a2sh3r/holdengine/internal/logger"
	"go.uber.org/zap"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// InitDB opens the ledger database and brings its schema up to date.
func InitDB(cfg *config.Config) (*sql.DB, error) {
	if cfg.DatabaseURI == "" {
		return nil, errors.New("database uri is empty")
	}

	db, err := sql.Open("pgx", cfg.DatabaseURI)
	if err != nil {
		return nil, fmt.Errorf("unable to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		closeDB(db)
		return nil, fmt.Errorf("unable to ping database: %w", err)
	}

	if err := runMigrations(cfg.MigrationsPath, cfg.DatabaseURI); err != nil {
		closeDB(db)
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	logger.Log.Info("connected to the ledger database")
	return db, nil
}

func closeDB(db *sql.DB) {
	if err := db.Close(); err != nil {
		logger.Log.Error("failed to close database", zap.Error(err))
	}
}

func runMigrations(source, dsn string) error {
	m, err := migrate.New(source, dsn)
	if err != nil {
		logger.Log.Error("failed to create migrate instance", zap.Error(err))
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}
	defer func(m *migrate.Migrate) {
		srcErr, dbErr := m.Close()
		if srcErr != nil || dbErr != nil {
			logger.Log.Error("failed to close migrate instance", zap.NamedError("source", srcErr), zap.NamedError("database", dbErr))
		}
	}(m)

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	version, dirty, err := m.Version()
	if err == nil {
		logger.Log.Info("migrations completed", zap.Uint("version", version), zap.Bool("dirty", dirty))
	}
	return nil
}
