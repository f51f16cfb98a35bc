package bootstrap

import (
	"context"
	"fmt"
	"time"

	"github.com/apexforge/studio-backend/config"
	"github.com/apexforge/studio-backend/internal/storage"
	"github.com/apexforge/studio-backend/internal/storage/memory"
	"github.com/apexforge/studio-backend/internal/storage/postgres"
	"github.com/apexforge/studio-backend/internal/storage/redis"
)

const connectTimeout = 5 * time.Second

// OpenStore connects the backend selected by cfg.Driver.
func OpenStore(ctx context.Context, cfg config.StoreConfig) (storage.Store, error) {
	cctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	switch cfg.Driver {
	case "memory":
		return memory.New(), nil
	case "postgres":
		s, err := postgres.Open(cctx, postgres.Options{
			DSN:      cfg.URL,
			Schema:   cfg.Name,
			MaxConns: cfg.MaxConns,
		})
		if err != nil {
			return nil, fmt.Errorf("postgres store: %w", err)
		}
		return s, nil
	case "redis":
		s, err := redis.Open(cctx, cfg.URL, cfg.Name)
		if err != nil {
			return nil, fmt.Errorf("redis store: %w", err)
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Driver)
	}
}
