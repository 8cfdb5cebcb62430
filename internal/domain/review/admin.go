package review

import (
	"errors"
	"strings"

	"github.com/M2-SYNDICATE/Atomichack3.0/internal/domain/auth"
)

// UserRecord is one account as listed by the admin panel.
type UserRecord struct {
	ID       int       `json:"id"`
	Login    string    `json:"login"`
	FullName string    `json:"full_name"`
	Role     auth.Role `json:"role"`
}

// UserListing is the admin user list response. The requesting admin is
// excluded server-side.
type UserListing struct {
	Users      []UserRecord `json:"users"`
	TotalCount int          `json:"total_count"`
}

// CreateUserInput is an admin's request to register a new account.
type CreateUserInput struct {
	Login    string    `json:"login"`
	Password string    `json:"password"`
	Role     auth.Role `json:"role"`
	FullName string    `json:"full_name,omitempty"`
}

// Normalize trims whitespace from the textual fields.
func (in *CreateUserInput) Normalize() {
	in.Login = strings.TrimSpace(in.Login)
	in.FullName = strings.TrimSpace(in.FullName)
}

// Validate checks the typed requirements of the input. Business rules
// (login uniqueness and the like) stay server-side.
func (in CreateUserInput) Validate() error {
	if in.Login == "" {
		return errors.New("login is required")
	}
	if in.Password == "" {
		return errors.New("password is required")
	}
	if !in.Role.Valid() {
		return errors.New("role must be one of: developer, norm_controller, admin")
	}
	return nil
}

// CreateUserResult acknowledges a user registration.
type CreateUserResult struct {
	OK       bool      `json:"ok"`
	UserID   int       `json:"user_id"`
	Login    string    `json:"login"`
	Role     auth.Role `json:"role"`
	FullName string    `json:"full_name"`
}

// DaySchedule is a working window within one weekday. A nil DaySchedule
// in the weekly map means a non-working day.
type DaySchedule struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// WorktimeSchedule holds one optional working window per weekday.
type WorktimeSchedule struct {
	Monday    *DaySchedule `json:"monday"`
	Tuesday   *DaySchedule `json:"tuesday"`
	Wednesday *DaySchedule `json:"wednesday"`
	Thursday  *DaySchedule `json:"thursday"`
	Friday    *DaySchedule `json:"friday"`
	Saturday  *DaySchedule `json:"saturday"`
	Sunday    *DaySchedule `json:"sunday"`
}

// WorktimeSettings is the admin-managed work calendar used by the server
// when computing fix/review durations. Holidays is a comma-separated list
// of YYYY-MM-DD dates, kept in wire form.
type WorktimeSettings struct {
	Holidays string           `json:"holidays"`
	Schedule WorktimeSchedule `json:"schedule"`
}
