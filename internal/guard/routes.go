package guard

import (
	"strings"

	"github.com/M2-SYNDICATE/Atomichack3.0/internal/domain/auth"
)

// Route is the static, compile-time plan for one navigable path.
// AllowedRoles nil means any authenticated role. A route never carries
// both RequiresAuth and RequiresGuest.
type Route struct {
	Pattern       string
	RequiresAuth  bool
	RequiresGuest bool
	AllowedRoles  []auth.Role
}

// Routes is the application route table. Patterns use ":name" for single
// path segments; lookup picks the first matching entry, so static
// patterns are listed before parameterized ones sharing a prefix.
var Routes = []Route{
	{Pattern: "/login", RequiresGuest: true},

	// Developer pages.
	{Pattern: "/", RequiresAuth: true, AllowedRoles: []auth.Role{auth.RoleDeveloper}},
	{Pattern: "/history", RequiresAuth: true, AllowedRoles: []auth.Role{auth.RoleDeveloper}},
	{Pattern: "/process-analysis", RequiresAuth: true, AllowedRoles: []auth.Role{auth.RoleDeveloper}},
	{Pattern: "/statistics-on-comments", RequiresAuth: true, AllowedRoles: []auth.Role{auth.RoleDeveloper}},
	{Pattern: "/result/:id", RequiresAuth: true, AllowedRoles: []auth.Role{auth.RoleDeveloper}},

	// Norm-controller pages.
	{Pattern: "/history/norm-controller", RequiresAuth: true, AllowedRoles: []auth.Role{auth.RoleNormController}},
	{Pattern: "/result/norm-controller/:id", RequiresAuth: true, AllowedRoles: []auth.Role{auth.RoleNormController}},
	{Pattern: "/process-analysis/norm-controller", RequiresAuth: true, AllowedRoles: []auth.Role{auth.RoleNormController}},
	{Pattern: "/statistics-on-comments/norm-controller", RequiresAuth: true, AllowedRoles: []auth.Role{auth.RoleNormController}},
	{Pattern: "/analysis/author/:name", RequiresAuth: true, AllowedRoles: []auth.Role{auth.RoleNormController}},

	// Admin pages.
	{Pattern: "/admin", RequiresAuth: true, AllowedRoles: []auth.Role{auth.RoleAdmin}},
}

// AccessMap is the coarse role to path-prefix allow-list, a secondary
// defense layer independent of per-route AllowedRoles. Every prefix here
// is a reachable route prefix.
var AccessMap = map[auth.Role][]string{
	auth.RoleDeveloper: {
		"/",
		"/history",
		"/process-analysis",
		"/statistics-on-comments",
		"/result",
	},
	auth.RoleNormController: {
		"/history/norm-controller",
		"/result/norm-controller",
		"/process-analysis/norm-controller",
		"/statistics-on-comments/norm-controller",
		"/analysis/author",
	},
	auth.RoleAdmin: {
		"/admin",
	},
}

// EscapePrefixes are out-of-app path prefixes the guard must not route:
// static assets and raw file endpoints served by the backend directly.
var EscapePrefixes = []string{
	"/data/",
	"/download",
	"/download_annotated",
	"/public/",
	"/static/",
}

// FindRoute returns the route plan matching path, if any.
func FindRoute(path string) (Route, bool) {
	for _, route := range Routes {
		if matchPattern(route.Pattern, path) {
			return route, true
		}
	}
	return Route{}, false
}

// matchPattern matches a path against a pattern segment by segment.
// ":name" segments match any single non-empty segment.
func matchPattern(pattern, path string) bool {
	if pattern == path {
		return true
	}
	patternSegs := strings.Split(strings.Trim(pattern, "/"), "/")
	pathSegs := strings.Split(strings.Trim(path, "/"), "/")
	if len(patternSegs) != len(pathSegs) {
		return false
	}
	for i, seg := range patternSegs {
		if strings.HasPrefix(seg, ":") {
			if pathSegs[i] == "" {
				return false
			}
			continue
		}
		if seg != pathSegs[i] {
			return false
		}
	}
	return true
}

// matchPrefix reports whether path falls under prefix at a path-segment
// boundary. The bare "/" prefix covers only the home page itself, not
// the whole tree.
func matchPrefix(path, prefix string) bool {
	if prefix == "/" {
		return path == "/"
	}
	return path == prefix || strings.HasPrefix(path, prefix+"/")
}

// roleAllowed reports whether role is in the route's allow-list. A nil
// list allows any authenticated role.
func (r Route) roleAllowed(role auth.Role) bool {
	if r.AllowedRoles == nil {
		return true
	}
	for _, allowed := range r.AllowedRoles {
		if allowed == role {
			return true
		}
	}
	return false
}
