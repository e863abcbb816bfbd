package store

import (
	"context"
	"fmt"

	"lockbox/internal/config"
)

// Open constructs the Store selected by the configuration and wraps it with
// operation metrics.
func Open(ctx context.Context, cfg *config.Config) (Store, error) {
	var (
		s   Store
		err error
	)

	switch cfg.StoreBackend {
	case config.BackendMemory:
		s = NewMemory()
	case config.BackendFile:
		s = NewFile(cfg.StorePath)
	case config.BackendRedis:
		s, err = NewRedis(ctx, cfg.RedisURL)
	case config.BackendSQLite:
		s, err = OpenSQLite(cfg.SQLitePath)
	case config.BackendPostgres:
		s, err = OpenPostgres(cfg.PostgresDSN)
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.StoreBackend)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s store: %w", cfg.StoreBackend, err)
	}

	return Instrumented(s, cfg.StoreBackend), nil
}
