package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/M2-SYNDICATE/Atomichack3.0/internal/ports"
)

// TokenStatus is the outcome of a local expiry inspection of a bearer
// credential. Malformed tokens are a named outcome rather than a swallowed
// parse error so callers can log and test the fail-closed path.
type TokenStatus int

const (
	// TokenValid means the token parsed and its expiry is in the future.
	TokenValid TokenStatus = iota
	// TokenExpired means the token parsed and its expiry has passed.
	TokenExpired
	// TokenMalformed means the token could not be decoded or carries no
	// usable expiry claim. Treated as expired everywhere (fail-closed).
	TokenMalformed
)

func (s TokenStatus) String() string {
	switch s {
	case TokenValid:
		return "valid"
	case TokenExpired:
		return "expired"
	case TokenMalformed:
		return "malformed"
	}
	return "unknown"
}

// tokenParser decodes claims without verifying the signature. Integrity is
// the issuer's job; the client only needs the exp claim for a fast
// pre-check before falling back to a 401-triggered purge.
var tokenParser = jwt.NewParser(jwt.WithoutClaimsValidation())

// InspectToken decodes the token's payload segment and classifies it
// against now. Any decode failure, missing exp, or non-numeric exp yields
// TokenMalformed.
func InspectToken(token string, now time.Time) TokenStatus {
	claims := jwt.MapClaims{}
	if _, _, err := tokenParser.ParseUnverified(token, claims); err != nil {
		return TokenMalformed
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return TokenMalformed
	}
	if exp.Before(now) {
		return TokenExpired
	}
	return TokenValid
}

// IsTokenExpired reports whether the token should be treated as unusable.
// Malformed counts as expired.
func IsTokenExpired(token string, now time.Time) bool {
	return InspectToken(token, now) != TokenValid
}

// Authenticated reports whether the store holds a usable credential:
// present and still valid at now.
func Authenticated(store ports.CredentialStore, now time.Time) bool {
	token, ok := store.Token()
	return ok && InspectToken(token, now) == TokenValid
}
