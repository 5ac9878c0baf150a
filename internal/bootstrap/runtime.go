// Package bootstrap wires runtime dependencies during process startup.
package bootstrap

import (
	"fmt"

	"ecoconnect/internal/cache"
	"ecoconnect/internal/config"
	"ecoconnect/internal/database"
	"ecoconnect/internal/seed"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Options control runtime initialization behavior.
type Options struct {
	SeedDemo bool
}

// InitRuntime connects to the database and Redis and optionally loads the
// demo dataset. Connect also runs migrations. The Redis client may be nil
// when the server is unreachable; callers treat that as cache-off mode.
func InitRuntime(cfg *config.Config, opts Options) (*gorm.DB, *redis.Client, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("database connection failed: %w", err)
	}

	cache.InitRedis(cfg.RedisURL)
	r := cache.GetClient()

	if opts.SeedDemo {
		if err := seed.Demo(db); err != nil {
			return nil, nil, fmt.Errorf("failed to seed demo data: %w", err)
		}
	}

	return db, r, nil
}
