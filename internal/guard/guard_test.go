package guard

import (
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/M2-SYNDICATE/Atomichack3.0/internal/domain/auth"
	credmocks "github.com/M2-SYNDICATE/Atomichack3.0/internal/mocks/credentials"
	"github.com/M2-SYNDICATE/Atomichack3.0/internal/session"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func guestGuard(t *testing.T) *Guard {
	t.Helper()
	sess := session.NewManager(credmocks.NewMemoryStore(), testLogger())
	sess.Initialize()
	return New(sess, testLogger())
}

func roleGuard(t *testing.T, role auth.Role) *Guard {
	t.Helper()
	sess := session.NewManager(credmocks.NewMemoryStore(), testLogger())
	require.NoError(t, sess.Login(auth.UserProfile{
		Login:    "user",
		FullName: "Test User",
		Role:     role,
	}))
	return New(sess, testLogger())
}

func TestEvaluate_EscapePaths(t *testing.T) {
	g := guestGuard(t)

	for _, path := range []string{
		"/data/reports/7.pdf",
		"/download",
		"/download_annotated",
		"/public/logo.svg",
		"/static/app.js",
	} {
		d := g.Evaluate(path)
		assert.Equal(t, ActionBlock, d.Action, "path %s", path)
	}
}

func TestEvaluate_UnauthenticatedToLogin(t *testing.T) {
	g := guestGuard(t)

	d := g.Evaluate("/history")
	require.Equal(t, ActionRedirect, d.Action)
	assert.Equal(t, "/login", d.Target)
	assert.Equal(t, "/history", d.ReturnTo, "original path must survive the bounce")
}

func TestEvaluate_GuestOnLoginPage(t *testing.T) {
	g := guestGuard(t)

	d := g.Evaluate("/login")
	assert.Equal(t, ActionProceed, d.Action)
}

func TestEvaluate_AuthenticatedOnLoginPage(t *testing.T) {
	cases := []struct {
		role auth.Role
		want string
	}{
		{auth.RoleDeveloper, "/"},
		{auth.RoleNormController, "/history/norm-controller"},
		{auth.RoleAdmin, "/admin"},
	}
	for _, tc := range cases {
		t.Run(string(tc.role), func(t *testing.T) {
			d := roleGuard(t, tc.role).Evaluate("/login")
			require.Equal(t, ActionRedirect, d.Action)
			assert.Equal(t, tc.want, d.Target)
			assert.Empty(t, d.ReturnTo)
		})
	}
}

func TestEvaluate_DeveloperPages(t *testing.T) {
	g := roleGuard(t, auth.RoleDeveloper)

	for _, path := range []string{
		"/",
		"/history",
		"/process-analysis",
		"/statistics-on-comments",
		"/result/17",
	} {
		d := g.Evaluate(path)
		assert.Equal(t, ActionProceed, d.Action, "path %s", path)
	}
}

func TestEvaluate_DeveloperDeniedAdmin(t *testing.T) {
	g := roleGuard(t, auth.RoleDeveloper)

	d := g.Evaluate("/admin")
	require.Equal(t, ActionRedirect, d.Action)
	assert.Equal(t, "/", d.Target)
}

func TestEvaluate_NormControllerPages(t *testing.T) {
	g := roleGuard(t, auth.RoleNormController)

	for _, path := range []string{
		"/history/norm-controller",
		"/result/norm-controller/42",
		"/process-analysis/norm-controller",
		"/statistics-on-comments/norm-controller",
		"/analysis/author/ivanov",
	} {
		d := g.Evaluate(path)
		assert.Equal(t, ActionProceed, d.Action, "path %s", path)
	}
}

func TestEvaluate_NormControllerDeniedDeveloperPages(t *testing.T) {
	g := roleGuard(t, auth.RoleNormController)

	for _, path := range []string{"/", "/history", "/result/7"} {
		d := g.Evaluate(path)
		require.Equal(t, ActionRedirect, d.Action, "path %s", path)
		assert.Equal(t, "/history/norm-controller", d.Target, "path %s", path)
	}
}

func TestEvaluate_AdminScope(t *testing.T) {
	g := roleGuard(t, auth.RoleAdmin)

	assert.Equal(t, ActionProceed, g.Evaluate("/admin").Action)

	d := g.Evaluate("/history")
	require.Equal(t, ActionRedirect, d.Action)
	assert.Equal(t, "/admin", d.Target)
}

func TestEvaluate_DeveloperDeniedNormControllerNamespace(t *testing.T) {
	g := roleGuard(t, auth.RoleDeveloper)

	d := g.Evaluate("/history/norm-controller")
	require.Equal(t, ActionRedirect, d.Action)
	assert.Equal(t, "/", d.Target)
}

func TestEvaluate_UnknownPathGoesHome(t *testing.T) {
	for name, g := range map[string]*Guard{
		"guest":     guestGuard(t),
		"developer": roleGuard(t, auth.RoleDeveloper),
	} {
		d := g.Evaluate("/no-such-page")
		require.Equal(t, ActionRedirect, d.Action, name)
		assert.Equal(t, "/", d.Target, name)
	}
}

func TestRouteTable_Invariants(t *testing.T) {
	for _, route := range Routes {
		assert.False(t, route.RequiresAuth && route.RequiresGuest,
			"route %s cannot require both auth and guest", route.Pattern)
	}

	// Every access-map prefix must correspond to at least one route.
	for role, prefixes := range AccessMap {
		for _, prefix := range prefixes {
			found := false
			for _, route := range Routes {
				if route.Pattern == prefix || strings.HasPrefix(route.Pattern, prefix+"/") || prefix == "/" {
					found = true
					break
				}
			}
			assert.True(t, found, "role %s prefix %s matches no route", role, prefix)
		}
	}
}

func TestFindRoute_StaticBeatsParameterized(t *testing.T) {
	route, ok := FindRoute("/result/norm-controller/5")
	require.True(t, ok)
	assert.Equal(t, "/result/norm-controller/:id", route.Pattern)

	route, ok = FindRoute("/result/5")
	require.True(t, ok)
	assert.Equal(t, "/result/:id", route.Pattern)
}
