// Package authz maps roles to their route group and navigation entries and
// decides whether a role may enter a route group. Pure functions, no state.
package authz

import (
	"strings"

	"github.com/futurexhq/futurex/internal/lms/domain"
)

// NavEntry is one sidebar link: a human label and the route it points at.
type NavEntry struct {
	Label string `json:"label"`
	Path  string `json:"path"`
}

// BasePath returns the route-group prefix owned by a role. Guests own no
// route group; ok is false for them and for anything unknown.
func BasePath(role domain.Role) (base string, ok bool) {
	switch role {
	case domain.RoleStudent:
		return "/student", true
	case domain.RoleTrainer:
		return "/trainer", true
	case domain.RoleAdmin:
		return "/admin", true
	default:
		return "", false
	}
}

// NavigationFor returns the ordered navigation set for a role, or nil for
// roles without one.
func NavigationFor(role domain.Role) []NavEntry {
	base, ok := BasePath(role)
	if !ok {
		return nil
	}

	switch role {
	case domain.RoleStudent:
		return []NavEntry{
			{Label: "Dashboard", Path: base + "/dashboard"},
			{Label: "My Courses", Path: base + "/courses"},
			{Label: "Analytics", Path: base + "/analytics"},
			{Label: "Reviews", Path: base + "/reviews"},
			{Label: "Profile", Path: base + "/profile"},
			{Label: "Payments", Path: base + "/payments"},
		}
	case domain.RoleTrainer:
		return []NavEntry{
			{Label: "Dashboard", Path: base + "/dashboard"},
			{Label: "My Batches", Path: base + "/batches"},
			{Label: "Class History", Path: base + "/history"},
			{Label: "Materials", Path: base + "/materials"},
		}
	case domain.RoleAdmin:
		return []NavEntry{
			{Label: "Dashboard", Path: base + "/dashboard"},
			{Label: "Courses", Path: base + "/manage-courses"},
			{Label: "Users", Path: base + "/users"},
			{Label: "Reviews", Path: base + "/reviews"},
			{Label: "Reports", Path: base + "/reports"},
		}
	default:
		return nil
	}
}

// IsAuthorized reports whether a role may enter the requested route group.
// True iff the requested prefix sits under the role's base path; roles
// without a base path are denied everywhere.
func IsAuthorized(role domain.Role, requestedPathPrefix string) bool {
	base, ok := BasePath(role)
	if !ok {
		return false
	}
	return strings.HasPrefix(requestedPathPrefix, base)
}
