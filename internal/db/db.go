package db

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/snnyvrz/shelfshare/apps/catalog-web/internal/config"
	"github.com/snnyvrz/shelfshare/apps/catalog-web/internal/repository"
	"github.com/snnyvrz/shelfshare/apps/catalog-web/internal/repository/mongorepo"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const (
	defaultMaxAttempts     = 10
	defaultDelayBetweenTry = 2 * time.Second
)

// Open connects to the store selected by cfg.DatabaseURL, retrying while the
// server comes up, and migrates or indexes it.
func Open(ctx context.Context, cfg *config.Config, log *slog.Logger) (*repository.Store, error) {
	backend, err := cfg.Backend()
	if err != nil {
		return nil, err
	}

	log = log.With("backend", string(backend), "url", cfg.RedactedDatabaseURL())

	var store *repository.Store
	err = withRetry(ctx, log, defaultMaxAttempts, defaultDelayBetweenTry, func() error {
		var openErr error
		store, openErr = open(ctx, cfg, backend)
		return openErr
	})
	if err != nil {
		return nil, err
	}

	log.Info("store connected")
	return store, nil
}

func open(ctx context.Context, cfg *config.Config, backend config.Backend) (*repository.Store, error) {
	switch backend {
	case config.BackendMongo:
		return mongorepo.Open(ctx, cfg.DatabaseURL, cfg.DatabaseName)
	case config.BackendPostgres:
		return openGorm(ctx, postgres.Open(cfg.DatabaseURL), cfg)
	case config.BackendSQLite:
		return openGorm(ctx, sqlite.Open(cfg.SQLitePath()), cfg)
	}
	return nil, fmt.Errorf("unsupported backend %q", backend)
}

func openGorm(ctx context.Context, dialector gorm.Dialector, cfg *config.Config) (*repository.Store, error) {
	logLevel := gormlogger.Warn
	if cfg.IsRelease() {
		logLevel = gormlogger.Error
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, err
	}

	store := repository.NewGormStore(db)

	if err := store.Ping(ctx); err != nil {
		_ = store.Close(ctx)
		return nil, err
	}

	if err := repository.Migrate(db.WithContext(ctx)); err != nil {
		_ = store.Close(ctx)
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return store, nil
}

// withRetry calls fn until it succeeds, attempts run out, or ctx is done.
func withRetry(ctx context.Context, log *slog.Logger, attempts int, delay time.Duration, fn func() error) error {
	var err error

	for attempt := 1; attempt <= attempts; attempt++ {
		if err = fn(); err == nil {
			return nil
		}

		log.Warn("store not ready", "attempt", attempt, "max_attempts", attempts, "error", err)

		if attempt == attempts {
			break
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
	}

	return fmt.Errorf("could not connect to store after %d attempts: %w", attempts, err)
}
