package authz_test

import (
	"testing"

	"github.com/futurexhq/futurex/internal/lms/authz"
	"github.com/futurexhq/futurex/internal/lms/domain"
	"github.com/stretchr/testify/require"
)

func TestBasePath(t *testing.T) {
	t.Parallel()

	cases := []struct {
		role domain.Role
		base string
		ok   bool
	}{
		{domain.RoleStudent, "/student", true},
		{domain.RoleTrainer, "/trainer", true},
		{domain.RoleAdmin, "/admin", true},
		{domain.RoleGuest, "", false},
		{domain.Role("BOGUS"), "", false},
	}

	for _, tc := range cases {
		base, ok := authz.BasePath(tc.role)
		require.Equal(t, tc.base, base, "role %s", tc.role)
		require.Equal(t, tc.ok, ok, "role %s", tc.role)
	}
}

func TestNavigationSets(t *testing.T) {
	t.Parallel()

	t.Run("student", func(t *testing.T) {
		nav := authz.NavigationFor(domain.RoleStudent)
		require.Len(t, nav, 6)
		require.Equal(t, authz.NavEntry{Label: "Dashboard", Path: "/student/dashboard"}, nav[0])
		require.Equal(t, authz.NavEntry{Label: "Payments", Path: "/student/payments"}, nav[5])
	})

	t.Run("trainer", func(t *testing.T) {
		nav := authz.NavigationFor(domain.RoleTrainer)
		require.Len(t, nav, 4)
		require.Equal(t, authz.NavEntry{Label: "Class History", Path: "/trainer/history"}, nav[2])
	})

	t.Run("admin", func(t *testing.T) {
		nav := authz.NavigationFor(domain.RoleAdmin)
		require.Len(t, nav, 5)
		require.Equal(t, authz.NavEntry{Label: "Courses", Path: "/admin/manage-courses"}, nav[1])
	})

	t.Run("guest has none", func(t *testing.T) {
		require.Nil(t, authz.NavigationFor(domain.RoleGuest))
	})
}

func TestIsAuthorized(t *testing.T) {
	t.Parallel()

	t.Run("role owns its route group", func(t *testing.T) {
		require.True(t, authz.IsAuthorized(domain.RoleStudent, "/student"))
		require.True(t, authz.IsAuthorized(domain.RoleStudent, "/student/analytics"))
		require.True(t, authz.IsAuthorized(domain.RoleAdmin, "/admin/users"))
	})

	t.Run("roles never cross route groups", func(t *testing.T) {
		require.False(t, authz.IsAuthorized(domain.RoleStudent, "/admin"))
		require.False(t, authz.IsAuthorized(domain.RoleTrainer, "/student/courses"))
		require.False(t, authz.IsAuthorized(domain.RoleAdmin, "/trainer"))
	})

	t.Run("guests are denied everywhere", func(t *testing.T) {
		require.False(t, authz.IsAuthorized(domain.RoleGuest, "/student"))
		require.False(t, authz.IsAuthorized(domain.RoleGuest, "/trainer"))
		require.False(t, authz.IsAuthorized(domain.RoleGuest, "/admin"))
	})
}
