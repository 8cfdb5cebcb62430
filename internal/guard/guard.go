// Package guard decides, for every navigation target, whether the
// current session may proceed, must be redirected, or must be stopped
// before the app takes over a path it does not own.
package guard

import (
	"log/slog"
	"strings"

	"github.com/M2-SYNDICATE/Atomichack3.0/internal/session"
)

type Action int

const (
	// ActionProceed lets the navigation through unchanged.
	ActionProceed Action = iota
	// ActionRedirect sends the caller to Decision.Target instead.
	ActionRedirect
	// ActionBlock stops in-app handling entirely; the path belongs to
	// the backend or static hosting.
	ActionBlock
)

func (a Action) String() string {
	switch a {
	case ActionProceed:
		return "proceed"
	case ActionRedirect:
		return "redirect"
	case ActionBlock:
		return "block"
	}
	return "unknown"
}

// Decision is the guard's verdict for one navigation attempt.
type Decision struct {
	Action Action
	// Target is the redirect destination when Action is ActionRedirect.
	Target string
	// ReturnTo carries the originally requested path when redirecting
	// an unauthenticated user to the login page, so login can resume
	// the interrupted navigation.
	ReturnTo string
}

// Guard evaluates navigation attempts against the route table and the
// role access map using the current session state.
type Guard struct {
	session *session.Manager
	logger  *slog.Logger
}

func New(sess *session.Manager, logger *slog.Logger) *Guard {
	return &Guard{session: sess, logger: logger}
}

// Evaluate decides what to do with a navigation to path. Checks run in
// a fixed order: out-of-app escapes first, then authentication, then
// the guest-only rule, then role restrictions. Earlier checks win; a
// path failing an earlier check never reaches the later ones.
func (g *Guard) Evaluate(path string) Decision {
	for _, prefix := range EscapePrefixes {
		if strings.HasPrefix(path, prefix) {
			return Decision{Action: ActionBlock}
		}
	}

	route, ok := FindRoute(path)
	if !ok {
		// Unknown paths fall back to the home page.
		return Decision{Action: ActionRedirect, Target: "/"}
	}

	authenticated := g.session.Authenticated()

	if route.RequiresAuth && !authenticated {
		return Decision{Action: ActionRedirect, Target: "/login", ReturnTo: path}
	}

	if route.RequiresGuest && authenticated {
		return Decision{Action: ActionRedirect, Target: g.landing()}
	}

	if route.RequiresAuth {
		role, _ := g.session.CurrentRole()
		if !route.roleAllowed(role) {
			g.logger.Warn("navigation denied for role", "path", path, "role", string(role))
			return Decision{Action: ActionRedirect, Target: g.landing()}
		}
		if prefixes, known := AccessMap[role]; known {
			if !matchAny(path, prefixes) {
				g.logger.Warn("navigation outside role prefixes", "path", path, "role", string(role))
				return Decision{Action: ActionRedirect, Target: g.landing()}
			}
		}
	}

	return Decision{Action: ActionProceed}
}

// landing resolves the redirect target for the current session's role.
func (g *Guard) landing() string {
	role, ok := g.session.CurrentRole()
	if !ok {
		return "/"
	}
	return role.DefaultLanding()
}

func matchAny(path string, prefixes []string) bool {
	for _, prefix := range prefixes {
		if matchPrefix(path, prefix) {
			return true
		}
	}
	return false
}
