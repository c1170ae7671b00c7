package domain

// Profile is a subscription profile in the reference catalog.
type Profile struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// TariffPlan is a tariff plan in the reference catalog.
type TariffPlan struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ProfilePlanCatalog is the seed payload relating profiles to the tariff
// plans available to them.
type ProfilePlanCatalog struct {
	Profiles []string
	Plans    []string
	// PlansByProfile maps a profile name to the names of its tariff plans.
	PlansByProfile map[string][]string
}
