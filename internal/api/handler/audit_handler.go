package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/orangeplan/user-management/internal/core/ports"
)

const (
	defaultAuditLimit = 50
	maxAuditLimit     = 1000
)

// AuditHandler exposes the auth audit trail to administrators.
type AuditHandler struct {
	reader ports.AuditReader
}

func NewAuditHandler(reader ports.AuditReader) *AuditHandler {
	return &AuditHandler{reader: reader}
}

// Recent returns the most recent auth events, newest first.
//
// @Summary      Recent auth events
// @Tags         audit
// @Produce      json
// @Security     BearerAuth
// @Param        limit  query    int  false  "Maximum number of events (default 50, max 1000)"
// @Success      200    {array}  ports.AuditEvent
// @Failure      403    {object}  map[string]string
// @Router       /audit [get]
func (h *AuditHandler) Recent(c echo.Context) error {
	limit := int64(defaultAuditLimit)
	if raw := c.QueryParam("limit"); raw != "" {
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || n <= 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "limit must be a positive integer")
		}
		limit = n
	}
	if limit > maxAuditLimit {
		limit = maxAuditLimit
	}

	events, err := h.reader.Recent(c.Request().Context(), limit)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, events)
}
