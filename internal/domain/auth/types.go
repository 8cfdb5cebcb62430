package auth

// Package auth contains domain-level types for identity and sessions.
// It is pure and free of transport/adapter concerns.

import (
	"fmt"
	"strings"
)

// Role represents an application's authorization role.
// Keep string form for easy persistence and JSON payloads.
// Valid values are defined as constants below.
type Role string

const (
	RoleDeveloper      Role = "developer"
	RoleNormController Role = "norm_controller"
	RoleAdmin          Role = "admin"
)

// Roles lists every valid role. Order matters for user-facing listings.
var Roles = []Role{RoleDeveloper, RoleNormController, RoleAdmin}

// Valid reports whether r is one of the closed set of roles.
func (r Role) Valid() bool {
	switch r {
	case RoleDeveloper, RoleNormController, RoleAdmin:
		return true
	}
	return false
}

// UnmarshalText implements encoding.TextUnmarshaler for Role.
func (r *Role) UnmarshalText(text []byte) error {
	v := Role(strings.ToLower(string(text)))
	if !v.Valid() {
		return fmt.Errorf("invalid Role: %q (valid options: developer, norm_controller, admin)", string(text))
	}
	*r = v
	return nil
}

// UserProfile is the authenticated principal as declared by the login
// response. Immutable for the lifetime of a session; replaced wholesale
// on re-login.
type UserProfile struct {
	ID       string `json:"id,omitempty"`
	Login    string `json:"login"`
	FullName string `json:"full_name"`
	Email    string `json:"email,omitempty"`
	Role     Role   `json:"role"`
}

// DisplayName returns the human-facing name: the full name when the
// server provided one, the login otherwise.
func (p UserProfile) DisplayName() string {
	if p.FullName != "" {
		return p.FullName
	}
	return p.Login
}

// DefaultLanding returns the landing path a role is sent to when it has
// nowhere better to go (guest-page bounce, access-map denial).
func (r Role) DefaultLanding() string {
	switch r {
	case RoleNormController:
		return "/history/norm-controller"
	case RoleAdmin:
		return "/admin"
	case RoleDeveloper:
		return "/"
	}
	return "/"
}
