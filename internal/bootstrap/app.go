// Package bootstrap builds the application object graph: configuration,
// logging, the credential store, the restored session, the API client,
// and the navigation guard.
package bootstrap

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/M2-SYNDICATE/Atomichack3.0/config"
	"github.com/M2-SYNDICATE/Atomichack3.0/internal/apiclient"
	"github.com/M2-SYNDICATE/Atomichack3.0/internal/guard"
	"github.com/M2-SYNDICATE/Atomichack3.0/internal/ports"
	"github.com/M2-SYNDICATE/Atomichack3.0/internal/session"
)

// App holds the wired application components.
type App struct {
	Config  config.AppConfig
	Logger  *slog.Logger
	Store   ports.CredentialStore
	Session *session.Manager
	Client  *apiclient.Client
	Guard   *guard.Guard
}

// NewApp loads configuration and wires every component. The session is
// restored from the credential store before the app is handed out, so
// callers always see settled authentication state.
func NewApp() (*App, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, err
	}
	logger := InitLogger(cfg.IsDev)

	store, err := NewCredentialStore(cfg.Store)
	if err != nil {
		return nil, fmt.Errorf("init credential store: %w", err)
	}

	sess := session.NewManager(store, logger)
	sess.Initialize()

	client := apiclient.New(cfg.API.BaseURL, store, logger,
		apiclient.WithHTTPClient(&http.Client{Timeout: cfg.API.Timeout}))

	return &App{
		Config:  cfg,
		Logger:  logger,
		Store:   store,
		Session: sess,
		Client:  client,
		Guard:   guard.New(sess, logger),
	}, nil
}
