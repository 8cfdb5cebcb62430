package config

import (
	"testing"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppConfig_Defaults(t *testing.T) {
	var cfg AppConfig
	require.NoError(t, env.Parse(&cfg))
	cfg.Sanitize()

	assert.False(t, cfg.IsDev)
	assert.Equal(t, "http://localhost:8000", cfg.API.BaseURL)
	assert.Equal(t, 120*time.Second, cfg.API.Timeout)
	assert.Equal(t, StoreBackendFile, cfg.Store.Backend)
	assert.Empty(t, cfg.Store.FilePath)
	assert.Equal(t, "localhost:6379", cfg.Store.Redis.Addr)
	assert.Equal(t, "docreview:credentials:", cfg.Store.Redis.KeyPrefix)
}

func TestAppConfig_FromEnv(t *testing.T) {
	t.Setenv("API_BASE_URL", "https://review.example.com/")
	t.Setenv("API_TIMEOUT", "30s")
	t.Setenv("STORE_BACKEND", "redis")
	t.Setenv("STORE_REDIS_ADDR", "redis.internal:6380")
	t.Setenv("STORE_REDIS_DB", "2")

	var cfg AppConfig
	require.NoError(t, env.Parse(&cfg))
	cfg.Sanitize()

	assert.Equal(t, "https://review.example.com", cfg.API.BaseURL, "trailing slash trimmed")
	assert.Equal(t, 30*time.Second, cfg.API.Timeout)
	assert.Equal(t, StoreBackendRedis, cfg.Store.Backend)
	assert.Equal(t, "redis.internal:6380", cfg.Store.Redis.Addr)
	assert.Equal(t, 2, cfg.Store.Redis.DB)
}

func TestAppConfig_RejectsUnknownBackend(t *testing.T) {
	t.Setenv("STORE_BACKEND", "vault")

	var cfg AppConfig
	err := env.Parse(&cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "vault")
}

func TestStoreBackend_UnmarshalText(t *testing.T) {
	cases := []struct {
		in      string
		want    StoreBackend
		wantErr bool
	}{
		{in: "file", want: StoreBackendFile},
		{in: "redis", want: StoreBackendRedis},
		{in: " Redis ", want: StoreBackendRedis},
		{in: "sqlite", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tc := range cases {
		var b StoreBackend
		err := b.UnmarshalText([]byte(tc.in))
		if tc.wantErr {
			assert.Error(t, err, "input %q", tc.in)
			continue
		}
		require.NoError(t, err, "input %q", tc.in)
		assert.Equal(t, tc.want, b, "input %q", tc.in)
	}
}

func TestAPIConfig_SanitizeGuardrails(t *testing.T) {
	cfg := APIConfig{BaseURL: "   ", Timeout: -1}
	cfg.Sanitize()

	assert.Equal(t, "http://localhost:8000", cfg.BaseURL)
	assert.Equal(t, 120*time.Second, cfg.Timeout)
}

func TestAppConfig_DevModeFromNodeEnv(t *testing.T) {
	t.Setenv("NODE_ENV", "development")

	var cfg AppConfig
	require.NoError(t, env.Parse(&cfg))
	cfg.Sanitize()

	assert.True(t, cfg.IsDev)
}
