package credentials

// Package credentials contains simple hand-written test doubles for the
// credential store port. These are lightweight and suitable for unit
// tests without codegen.

import (
	"errors"

	"github.com/M2-SYNDICATE/Atomichack3.0/internal/ports"
)

// Ensure compile-time conformance to ports.
var _ ports.CredentialStore = (*MemoryStore)(nil)

// MemoryStore is an in-memory credential store. The zero value is empty
// and ready to use. FailWrites makes every mutation return an error, for
// exercising degradation paths.
type MemoryStore struct {
	token      string
	hasToken   bool
	profile    []byte
	FailWrites bool

	// Counters for asserting side effects.
	TokenRemovals   int
	ProfileRemovals int
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore { return &MemoryStore{} }

// Seeded creates a store preloaded with a token and profile copy.
func Seeded(token string, profile []byte) *MemoryStore {
	return &MemoryStore{token: token, hasToken: token != "", profile: profile}
}

var errWriteFailure = errors.New("credential store write failure")

func (s *MemoryStore) Token() (string, bool) {
	if !s.hasToken {
		return "", false
	}
	return s.token, true
}

func (s *MemoryStore) SetToken(token string) error {
	if s.FailWrites {
		return errWriteFailure
	}
	s.token = token
	s.hasToken = true
	return nil
}

func (s *MemoryStore) RemoveToken() error {
	s.TokenRemovals++
	if s.FailWrites {
		return errWriteFailure
	}
	s.token = ""
	s.hasToken = false
	return nil
}

func (s *MemoryStore) Profile() ([]byte, bool) {
	if len(s.profile) == 0 {
		return nil, false
	}
	return s.profile, true
}

func (s *MemoryStore) SetProfile(data []byte) error {
	if s.FailWrites {
		return errWriteFailure
	}
	s.profile = append([]byte(nil), data...)
	return nil
}

func (s *MemoryStore) RemoveProfile() error {
	s.ProfileRemovals++
	if s.FailWrites {
		return errWriteFailure
	}
	s.profile = nil
	return nil
}
