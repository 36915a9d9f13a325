package guard

import (
	"context"
	"errors"
	"testing"

	"github.com/Gescomph/gescomph-portal/internal/client/models"
	"github.com/Gescomph/gescomph-portal/internal/client/session"
)

func menuUser(routes ...string) *models.User {
	forms := make([]models.MenuForm, len(routes))
	for i, r := range routes {
		forms[i] = models.MenuForm{Route: r}
	}
	return &models.User{
		ID:    1,
		Email: "admin@example.com",
		Menu:  []models.MenuModule{{Name: "Main", Forms: forms}},
	}
}

func TestAuthenticated(t *testing.T) {
	store := session.NewStore()

	if d := Authenticated(store); d.Allowed || d.Redirect != LoginRoute {
		t.Fatalf("signed out: expected redirect to %s, got %+v", LoginRoute, d)
	}

	store.Set(menuUser("dashboard"))
	if d := Authenticated(store); !d.Allowed {
		t.Fatalf("signed in: expected allow, got %+v", d)
	}
}

func TestPublicOnly(t *testing.T) {
	store := session.NewStore()

	if d := PublicOnly(store); !d.Allowed {
		t.Fatalf("signed out: expected allow, got %+v", d)
	}

	store.Set(menuUser("dashboard"))
	if d := PublicOnly(store); d.Allowed || d.Redirect != HomeRoute {
		t.Fatalf("signed in: expected redirect to %s, got %+v", HomeRoute, d)
	}
}

type fakeVerifier struct {
	user *models.User
	err  error
	hits int
}

func (f *fakeVerifier) WhoAmI(ctx context.Context) (*models.User, error) {
	f.hits++
	return f.user, f.err
}

func TestPermissionMatch_AlwaysVerifiesIdentity(t *testing.T) {
	v := &fakeVerifier{user: menuUser("dashboard")}

	PermissionMatch(context.Background(), v, "dashboard")
	PermissionMatch(context.Background(), v, "dashboard")

	if v.hits != 2 {
		t.Fatalf("expected a server check per navigation, got %d", v.hits)
	}
}

func TestPermissionMatch_VerifyFailureRedirects(t *testing.T) {
	v := &fakeVerifier{err: errors.New("401")}

	if d := PermissionMatch(context.Background(), v, "dashboard"); d.Allowed || d.Redirect != LoginRoute {
		t.Fatalf("expected redirect to login, got %+v", d)
	}
}

func TestPermissionMatch_PrefixWalk(t *testing.T) {
	v := &fakeVerifier{user: menuUser("security/users", "contracts")}

	cases := []struct {
		route string
		want  bool
	}{
		{"security/users", true},
		{"security/users/42/edit", true},
		{"/security//users/", true},
		{"contracts?page=2", true},
		{"security", false},
		{"security/roles", false},
		{"", false},
	}
	for _, tc := range cases {
		d := PermissionMatch(context.Background(), v, tc.route)
		if d.Allowed != tc.want {
			t.Errorf("route %q: allowed=%v, want %v", tc.route, d.Allowed, tc.want)
		}
	}
}

func TestPermissionMatch_EmptyMenuDenies(t *testing.T) {
	v := &fakeVerifier{user: &models.User{ID: 2, Email: "x@example.com"}}

	if d := PermissionMatch(context.Background(), v, "dashboard"); d.Allowed {
		t.Fatal("expected deny with empty menu")
	}
}

func TestNormalizeRoute(t *testing.T) {
	cases := map[string]string{
		"/a/b/":                 "a/b",
		"a//b":                  "a/b",
		"a/b?x=1":               "a/b",
		"a/b#frag":              "a/b",
		" a / b ":               "a/b",
		"":                      "",
		"payment/success?ref=9": "payment/success",
	}
	for in, want := range cases {
		if got := NormalizeRoute(in); got != want {
			t.Errorf("NormalizeRoute(%q) = %q, want %q", in, got, want)
		}
	}
}
