package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/orangeplan/user-management/internal/core/ports"
)

// PlanHandler exposes the profile/tariff-plan reference catalog.
type PlanHandler struct {
	repo ports.PlanRepository
}

func NewPlanHandler(repo ports.PlanRepository) *PlanHandler {
	return &PlanHandler{repo: repo}
}

// ListProfiles returns every subscription profile.
//
// @Summary      List subscription profiles
// @Tags         plans
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Profile
// @Router       /profiles [get]
func (h *PlanHandler) ListProfiles(c echo.Context) error {
	profiles, err := h.repo.ListProfiles(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, profiles)
}

// ListPlans returns every tariff plan.
//
// @Summary      List tariff plans
// @Tags         plans
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.TariffPlan
// @Router       /plans [get]
func (h *PlanHandler) ListPlans(c echo.Context) error {
	plans, err := h.repo.ListPlans(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, plans)
}

// PlansForProfile returns the tariff plans available to one profile.
//
// @Summary      List tariff plans for a profile
// @Tags         plans
// @Produce      json
// @Security     BearerAuth
// @Param        name  path     string  true  "Profile name"
// @Success      200   {array}  domain.TariffPlan
// @Router       /profiles/{name}/plans [get]
func (h *PlanHandler) PlansForProfile(c echo.Context) error {
	plans, err := h.repo.PlansForProfile(c.Request().Context(), c.Param("name"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, plans)
}
