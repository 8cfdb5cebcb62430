package bootstrap

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/redis/go-redis/v9"

	"github.com/M2-SYNDICATE/Atomichack3.0/config"
	"github.com/M2-SYNDICATE/Atomichack3.0/internal/adapters/filestore"
	"github.com/M2-SYNDICATE/Atomichack3.0/internal/adapters/redisstore"
	"github.com/M2-SYNDICATE/Atomichack3.0/internal/ports"
)

// NewCredentialStore builds the credential store selected by configuration.
func NewCredentialStore(cfg config.StoreConfig) (ports.CredentialStore, error) {
	switch cfg.Backend {
	case config.StoreBackendRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		return redisstore.NewWithPrefix(client, cfg.Redis.KeyPrefix), nil

	case config.StoreBackendFile, "":
		path := cfg.FilePath
		if path == "" {
			dir, err := os.UserConfigDir()
			if err != nil {
				return nil, fmt.Errorf("resolve user config dir: %w", err)
			}
			path = filepath.Join(dir, "docreview", "credentials.json")
		}
		return filestore.New(path), nil

	default:
		return nil, fmt.Errorf("unsupported credential store backend %q", cfg.Backend)
	}
}
