package filestore

// Package filestore persists credentials in a single JSON file under the
// application state directory. It is the default store for single-user
// installs, playing the role browser localStorage plays for the web
// front end.

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/M2-SYNDICATE/Atomichack3.0/internal/ports"
)

const fileMode = 0o600

// Store is a file-backed credential store. Operations are synchronous
// read-modify-write over one file; concurrent writers are not a
// designed-for case and the last writer wins.
type Store struct {
	path string
}

var _ ports.CredentialStore = (*Store)(nil)

// payload is the on-disk shape. Profile stays raw so the store does not
// depend on the profile's schema.
type payload struct {
	Token   string          `json:"token,omitempty"`
	Profile json.RawMessage `json:"profile,omitempty"`
}

// New creates a store persisting to the given file path. The parent
// directory is created on first write, not here.
func New(path string) *Store {
	return &Store{path: path}
}

// Token returns the stored credential, if any. Unreadable or corrupt
// state degrades to absent (treated as logged out).
func (s *Store) Token() (string, bool) {
	p, err := s.load()
	if err != nil || p.Token == "" {
		return "", false
	}
	return p.Token, true
}

// SetToken overwrites the stored credential unconditionally.
func (s *Store) SetToken(token string) error {
	return s.update(func(p *payload) { p.Token = token })
}

// RemoveToken deletes the credential. Idempotent.
func (s *Store) RemoveToken() error {
	return s.update(func(p *payload) { p.Token = "" })
}

// Profile returns the denormalized profile copy, if any.
func (s *Store) Profile() ([]byte, bool) {
	p, err := s.load()
	if err != nil || len(p.Profile) == 0 {
		return nil, false
	}
	return p.Profile, true
}

// SetProfile overwrites the denormalized profile copy.
func (s *Store) SetProfile(data []byte) error {
	return s.update(func(p *payload) { p.Profile = json.RawMessage(data) })
}

// RemoveProfile deletes the profile copy. Idempotent.
func (s *Store) RemoveProfile() error {
	return s.update(func(p *payload) { p.Profile = nil })
}

func (s *Store) load() (payload, error) {
	var p payload
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return p, nil
		}
		return p, fmt.Errorf("read credential file: %w", err)
	}
	if err := json.Unmarshal(data, &p); err != nil {
		// Corrupt state file: fail closed, start over empty.
		return payload{}, nil
	}
	return p, nil
}

func (s *Store) update(mutate func(*payload)) error {
	p, err := s.load()
	if err != nil {
		return err
	}
	mutate(&p)

	if p.Token == "" && len(p.Profile) == 0 {
		// Nothing left to keep; removing the file keeps restarts clean.
		if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("remove credential file: %w", err)
		}
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("create state dir: %w", err)
	}
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal credential file: %w", err)
	}
	if err := os.WriteFile(s.path, data, fileMode); err != nil {
		return fmt.Errorf("write credential file: %w", err)
	}
	return nil
}
