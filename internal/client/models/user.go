// Package models defines the DTOs exchanged with the GESCOMPH backend and the
// in-memory identity snapshot used by the session layer.
package models

// User is the authenticated identity snapshot returned by /auth/me.
// It is held exactly once by the session store and replaced wholesale on
// every successful identity fetch.
type User struct {
	ID               int          `json:"id"`
	FullName         string       `json:"fullName"`
	Email            string       `json:"email"`
	Roles            []string     `json:"roles"`
	Menu             []MenuModule `json:"menu"`
	PersonID         int          `json:"personId,omitempty"`
	TwoFactorEnabled bool         `json:"twoFactorEnabled,omitempty"`
}

// MenuModule groups the forms a user may open under one application module.
type MenuModule struct {
	ID    int        `json:"id"`
	Name  string     `json:"name"`
	Forms []MenuForm `json:"forms"`
}

// MenuForm is a navigable form with its route path and allowed operations.
type MenuForm struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Route       string   `json:"route"`
	Permissions []string `json:"permissions,omitempty"`
}

// HasRole reports whether the user carries the given role name.
func (u *User) HasRole(role string) bool {
	for _, r := range u.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// FormRoutes flattens the menu tree into the set of reachable form routes.
func (u *User) FormRoutes() map[string]struct{} {
	routes := make(map[string]struct{})
	for _, m := range u.Menu {
		for _, f := range m.Forms {
			if f.Route != "" {
				routes[f.Route] = struct{}{}
			}
		}
	}
	return routes
}
