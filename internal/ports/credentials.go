package ports

// Package ports defines interfaces (hexagonal ports) for the session and
// access-control layer. Implementations live in internal/adapters;
// orchestration in internal/session and internal/apiclient.

// CredentialStore is durable, synchronous key/value persistence of one
// bearer credential plus a denormalized copy of the user profile kept
// alongside it for fast restart. Both values live in the same durable
// scope and are cleared together on logout.
//
// Implementations are not required to be safe for concurrent writers:
// the design has at most one logical actor mutating the store at a time
// (login, logout, or a 401-triggered purge); the last writer wins.
type CredentialStore interface {
	// Token returns the stored credential, if any. No side effects.
	Token() (string, bool)
	// SetToken overwrites the stored credential unconditionally.
	SetToken(token string) error
	// RemoveToken deletes the credential. Idempotent.
	RemoveToken() error

	// Profile returns the denormalized profile copy as raw JSON, if any.
	Profile() ([]byte, bool)
	// SetProfile overwrites the denormalized profile copy.
	SetProfile(data []byte) error
	// RemoveProfile deletes the profile copy. Idempotent.
	RemoveProfile() error
}
