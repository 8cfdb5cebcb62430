package redisstore

// Package redisstore keeps credentials in Redis for shared/kiosk installs
// where several processes on one workstation share a login.

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/M2-SYNDICATE/Atomichack3.0/internal/ports"
)

const (
	tokenKey   = "token"
	profileKey = "profile"
)

// Store is a Redis-backed credential store. Reads that fail (connection
// loss included) degrade to absent, which the rest of the system treats
// as logged out; the next login rewrites the keys.
type Store struct {
	client redis.UniversalClient
	prefix string
}

var _ ports.CredentialStore = (*Store)(nil)

// New creates a Redis credential store with the default key prefix.
func New(client redis.UniversalClient) *Store {
	return NewWithPrefix(client, "docreview:credentials:")
}

// NewWithPrefix creates a Redis credential store with a custom key prefix.
func NewWithPrefix(client redis.UniversalClient, prefix string) *Store {
	return &Store{client: client, prefix: prefix}
}

// Token returns the stored credential, if any.
func (s *Store) Token() (string, bool) {
	return s.get(tokenKey)
}

// SetToken overwrites the stored credential unconditionally.
func (s *Store) SetToken(token string) error {
	return s.set(tokenKey, []byte(token))
}

// RemoveToken deletes the credential. Idempotent.
func (s *Store) RemoveToken() error {
	return s.del(tokenKey)
}

// Profile returns the denormalized profile copy, if any.
func (s *Store) Profile() ([]byte, bool) {
	v, ok := s.get(profileKey)
	if !ok {
		return nil, false
	}
	return []byte(v), true
}

// SetProfile overwrites the denormalized profile copy.
func (s *Store) SetProfile(data []byte) error {
	return s.set(profileKey, data)
}

// RemoveProfile deletes the profile copy. Idempotent.
func (s *Store) RemoveProfile() error {
	return s.del(profileKey)
}

func (s *Store) get(key string) (string, bool) {
	v, err := s.client.Get(context.Background(), s.prefix+key).Result()
	if err != nil {
		return "", false
	}
	if v == "" {
		return "", false
	}
	return v, true
}

func (s *Store) set(key string, value []byte) error {
	if err := s.client.Set(context.Background(), s.prefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

func (s *Store) del(key string) error {
	if err := s.client.Del(context.Background(), s.prefix+key).Err(); err != nil && !errors.Is(err, redis.Nil) {
		return fmt.Errorf("redis del %s: %w", key, err)
	}
	return nil
}
