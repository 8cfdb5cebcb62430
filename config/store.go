package config

import (
	"fmt"
	"strings"
)

// StoreBackend selects which credential-store adapter the app uses.
type StoreBackend string

const (
	// StoreBackendFile keeps credentials in a mode-0600 file under the
	// user's config directory. The default.
	StoreBackendFile StoreBackend = "file"

	// StoreBackendRedis keeps credentials in Redis, for shared or
	// kiosk-style deployments.
	StoreBackendRedis StoreBackend = "redis"
)

// UnmarshalText implements encoding.TextUnmarshaler so env parsing
// rejects unknown backends instead of passing them through.
func (b *StoreBackend) UnmarshalText(text []byte) error {
	switch s := StoreBackend(strings.ToLower(strings.TrimSpace(string(text)))); s {
	case StoreBackendFile, StoreBackendRedis:
		*b = s
		return nil
	default:
		return fmt.Errorf("unknown credential store backend %q", string(text))
	}
}

// StoreConfig contains credential storage configuration.
type StoreConfig struct {
	Backend StoreBackend `env:"STORE_BACKEND" envDefault:"file"`

	// FilePath is the credentials file location for the file backend.
	// Empty selects <user config dir>/docreview/credentials.json.
	FilePath string `env:"STORE_FILE_PATH" envDefault:""`

	// Redis connection settings for the redis backend.
	Redis RedisConfig `envPrefix:"STORE_REDIS_"`
}

// RedisConfig contains Redis configuration for the redis credential backend.
type RedisConfig struct {
	Addr     string `env:"ADDR"     envDefault:"localhost:6379"`
	Password string `env:"PASSWORD" envDefault:""`
	DB       int    `env:"DB"       envDefault:"0"`

	// KeyPrefix namespaces credential keys per deployment.
	KeyPrefix string `env:"KEY_PREFIX" envDefault:"docreview:credentials:"`
}

// Sanitize applies guardrails to storage configuration values.
func (s *StoreConfig) Sanitize() {
	if s.Backend == "" {
		s.Backend = StoreBackendFile
	}
	s.FilePath = strings.TrimSpace(s.FilePath)

	s.Redis.Addr = strings.TrimSpace(s.Redis.Addr)
	if s.Redis.Addr == "" {
		s.Redis.Addr = "localhost:6379"
	}
	if s.Redis.KeyPrefix == "" {
		s.Redis.KeyPrefix = "docreview:credentials:"
	}
}
