package session

// Package session exposes the authenticated-identity state of the process.
// The Manager is owned by the application root and injected into the guard
// and CLI; there is no package-level singleton.

import (
	"encoding/json"
	"log/slog"
	"time"

	"github.com/M2-SYNDICATE/Atomichack3.0/internal/domain/auth"
	"github.com/M2-SYNDICATE/Atomichack3.0/internal/ports"
)

// Manager holds the current session. Invariant: authenticated is true
// exactly when user is set, enforced at every transition. Not safe for
// concurrent mutation; execution is single-logical-actor.
type Manager struct {
	store  ports.CredentialStore
	logger *slog.Logger
	now    func() time.Time

	user          *auth.UserProfile
	authenticated bool
}

// NewManager creates a session manager over the given credential store.
func NewManager(store ports.CredentialStore, logger *slog.Logger) *Manager {
	return &Manager{
		store:  store,
		logger: logger,
		now:    time.Now,
	}
}

// SetNowFunc overrides the clock. Intended for tests.
func (m *Manager) SetNowFunc(now func() time.Time) { m.now = now }

// Initialize seeds the session from the credential store at process
// start. A present, unexpired token with a readable profile copy restores
// the previous session; anything less resolves to logged out. Never
// leaves the manager authenticated without a user.
func (m *Manager) Initialize() {
	token, ok := m.store.Token()
	if !ok {
		m.Logout()
		return
	}
	if status := auth.InspectToken(token, m.now()); status != auth.TokenValid {
		m.logger.Debug("stored credential unusable", slog.String("status", status.String()))
		m.Logout()
		return
	}

	data, ok := m.store.Profile()
	if !ok {
		m.logger.Warn("stored credential has no profile copy, treating as logged out")
		m.Logout()
		return
	}
	var profile auth.UserProfile
	if err := json.Unmarshal(data, &profile); err != nil {
		m.logger.Warn("stored profile copy unreadable, treating as logged out", slog.Any("error", err))
		m.Logout()
		return
	}

	m.user = &profile
	m.authenticated = true
}

// Login installs the profile as the current user and persists the
// denormalized copy for fast restart.
func (m *Manager) Login(profile auth.UserProfile) error {
	data, err := json.Marshal(profile)
	if err != nil {
		return err
	}
	if err := m.store.SetProfile(data); err != nil {
		return err
	}
	m.user = &profile
	m.authenticated = true
	return nil
}

// Logout clears the session and removes both the profile copy and the
// credential, so the two stores never disagree. Store removal failures
// are logged, not surfaced: the in-memory state is logged out regardless.
func (m *Manager) Logout() {
	m.user = nil
	m.authenticated = false
	if err := m.store.RemoveProfile(); err != nil {
		m.logger.Warn("remove stored profile failed", slog.Any("error", err))
	}
	if err := m.store.RemoveToken(); err != nil {
		m.logger.Warn("remove stored credential failed", slog.Any("error", err))
	}
}

// Authenticated reports whether a user is logged in.
func (m *Manager) Authenticated() bool { return m.authenticated }

// CurrentUser returns the logged-in user's profile, if any.
func (m *Manager) CurrentUser() (auth.UserProfile, bool) {
	if m.user == nil {
		return auth.UserProfile{}, false
	}
	return *m.user, true
}

// CurrentRole returns the logged-in user's role, if any.
func (m *Manager) CurrentRole() (auth.Role, bool) {
	if m.user == nil {
		return "", false
	}
	return m.user.Role, true
}
