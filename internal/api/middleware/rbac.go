package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/orangeplan/user-management/internal/api/metrics"
	"github.com/orangeplan/user-management/internal/core/domain"
)

// RBAC enforces role-based access control on the identity resolved by Auth.
// Passing domain.RoleAny admits every authenticated role.
func RBAC(allowedRoles ...domain.Role) echo.MiddlewareFunc {
	allowed := make(map[domain.Role]struct{}, len(allowedRoles))
	wildcard := false
	for _, r := range allowedRoles {
		if r == domain.RoleAny {
			wildcard = true
		}
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get(CtxRoleKey).(string)
			if _, ok := allowed[domain.Role(role)]; !ok && !wildcard {
				metrics.AccessDeniedTotal.WithLabelValues("forbidden").Inc()
				return domain.ErrForbidden
			}
			return next(c)
		}
	}
}

// CurrentUser extracts the identity injected by Auth. The second return is
// false when Auth did not run on this route.
func CurrentUser(c echo.Context) (*domain.User, bool) {
	user, ok := c.Get(CtxUserKey).(*domain.User)
	return user, ok
}
