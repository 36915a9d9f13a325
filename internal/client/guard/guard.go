// Package guard implements the navigation predicates consulted before
// entering a route: plain authenticated/public checks against the in-memory
// session, and a permission-aware check that re-validates the session
// server-side before resolving deep links.
package guard

import (
	"context"
	"strings"

	"github.com/Gescomph/gescomph-portal/internal/client/models"
	"github.com/Gescomph/gescomph-portal/internal/client/session"
)

// Well-known navigation targets.
const (
	LoginRoute = "auth/login"
	HomeRoute  = "dashboard"
)

// Decision is the outcome of a guard: either the navigation proceeds, or the
// caller must redirect to Redirect instead.
type Decision struct {
	Allowed  bool
	Redirect string
}

func allow() Decision             { return Decision{Allowed: true} }
func redirect(to string) Decision { return Decision{Redirect: to} }

// Authenticated admits navigation only while the store holds an identity.
// Purely synchronous: it relies on startup having completed the session
// restore before the first navigation resolves.
func Authenticated(store *session.Store) Decision {
	if store.Authenticated() {
		return allow()
	}
	return redirect(LoginRoute)
}

// PublicOnly keeps signed-in users away from public-only pages (login,
// registration) by redirecting them to the authenticated landing route.
func PublicOnly(store *session.Store) Decision {
	if store.Authenticated() {
		return redirect(HomeRoute)
	}
	return allow()
}

// identityVerifier re-validates the session server-side. Satisfied by
// auth.Transport; the fresh identity also lands in the session store there.
type identityVerifier interface {
	WhoAmI(ctx context.Context) (*models.User, error)
}

// PermissionMatch gates deep-linked navigation. The session is always
// re-validated against the backend first — presence in memory is not enough
// for a deep link — and the requested route must match the identity's menu
// tree by prefix. Any failure denies with a redirect to login.
func PermissionMatch(ctx context.Context, verifier identityVerifier, route string) Decision {
	u, err := verifier.WhoAmI(ctx)
	if err != nil || u == nil {
		return redirect(LoginRoute)
	}
	if canNavigate(u, route) {
		return allow()
	}
	return redirect(LoginRoute)
}

// canNavigate walks the normalized route segment by segment and reports
// whether any accumulated prefix is a form route in the menu tree. This way
// "security/users/42/edit" is admitted by the "security/users" form.
func canNavigate(u *models.User, route string) bool {
	if len(u.Menu) == 0 {
		return false
	}
	allowed := u.FormRoutes()

	curr := ""
	for _, seg := range strings.Split(NormalizeRoute(route), "/") {
		if seg == "" {
			continue
		}
		if curr == "" {
			curr = seg
		} else {
			curr += "/" + seg
		}
		if _, ok := allowed[curr]; ok {
			return true
		}
	}
	return false
}

// NormalizeRoute strips the query/fragment, trims slashes and collapses
// empty segments so routes compare in one canonical spelling.
func NormalizeRoute(route string) string {
	if i := strings.IndexAny(route, "?#"); i >= 0 {
		route = route[:i]
	}
	parts := strings.Split(route, "/")
	segs := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			segs = append(segs, p)
		}
	}
	return strings.Join(segs, "/")
}
