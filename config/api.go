package config

import (
	"strings"
	"time"
)

// APIConfig contains backend API client configuration.
type APIConfig struct {
	// BaseURL is the root URL of the document review backend.
	BaseURL string `env:"API_BASE_URL" envDefault:"http://localhost:8000"`

	// Timeout bounds a single backend request, document uploads included.
	Timeout time.Duration `env:"API_TIMEOUT" envDefault:"120s"`
}

// Sanitize applies guardrails to API configuration values.
func (a *APIConfig) Sanitize() {
	// Request paths are appended with a leading slash already.
	a.BaseURL = strings.TrimRight(strings.TrimSpace(a.BaseURL), "/")
	if a.BaseURL == "" {
		a.BaseURL = "http://localhost:8000"
	}
	if a.Timeout <= 0 {
		a.Timeout = 120 * time.Second
	}
}
