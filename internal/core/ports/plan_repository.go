package ports

import (
	"context"

	"github.com/orangeplan/user-management/internal/core/domain"
)

// PlanRepository defines the interface for the profile/tariff-plan reference
// catalog.
type PlanRepository interface {
	ListProfiles(ctx context.Context) ([]*domain.Profile, error)
	ListPlans(ctx context.Context) ([]*domain.TariffPlan, error)
	PlansForProfile(ctx context.Context, profileName string) ([]*domain.TariffPlan, error)
	// Seed loads the catalog idempotently: existing entries are left in place.
	Seed(ctx context.Context, catalog domain.ProfilePlanCatalog) error
}
