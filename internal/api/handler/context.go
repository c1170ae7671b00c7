package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/orangeplan/user-management/internal/api/middleware"
	"github.com/orangeplan/user-management/internal/core/domain"
)

// currentUser extracts the identity injected by the Auth middleware and
// fast-fails with 401 when it is absent, which means the middleware did not
// run on this route.
func currentUser(c echo.Context) (*domain.User, error) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return user, nil
}
