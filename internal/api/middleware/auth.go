package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/orangeplan/user-management/internal/api/metrics"
	"github.com/orangeplan/user-management/internal/core/domain"
	"github.com/orangeplan/user-management/internal/core/ports"
	"github.com/orangeplan/user-management/internal/core/service"
)

// Context keys set by the Auth middleware.
const (
	CtxUserKey     = "current_user"
	CtxUsernameKey = "username"
	CtxRoleKey     = "role"
)

// Auth resolves the caller's identity from the bearer token and injects it
// into the request context. The identity is re-fetched from the directory on
// every request rather than trusted from the token's embedded role, so role
// changes take effect immediately without re-login.
func Auth(codec *service.TokenCodec, repo ports.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				metrics.AccessDeniedTotal.WithLabelValues("missing_header").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				metrics.AccessDeniedTotal.WithLabelValues("invalid_header").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims, err := codec.Decode(parts[1])
			if err != nil {
				if err == domain.ErrTokenExpired {
					metrics.AccessDeniedTotal.WithLabelValues("token_expired").Inc()
					return domain.ErrTokenExpired
				}
				metrics.AccessDeniedTotal.WithLabelValues("invalid_token").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			sub := service.Subject(claims)
			if sub == "" {
				metrics.AccessDeniedTotal.WithLabelValues("missing_subject").Inc()
				return domain.ErrInvalidCredentials
			}

			user, err := repo.FindByUsername(c.Request().Context(), sub)
			if err != nil {
				metrics.AccessDeniedTotal.WithLabelValues("unknown_subject").Inc()
				return err
			}

			if !user.IsActive {
				metrics.AccessDeniedTotal.WithLabelValues("inactive_user").Inc()
				return domain.ErrInactiveUser
			}

			c.Set(CtxUserKey, user)
			c.Set(CtxUsernameKey, user.Username)
			c.Set(CtxRoleKey, string(user.Role))

			return next(c)
		}
	}
}
