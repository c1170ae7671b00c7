package main

import "github.com/orangeplan/user-management/internal/core/domain"

// referenceCatalog is the subscription-profile / tariff-plan reference data
// loaded by the -reference flag.
func referenceCatalog() domain.ProfilePlanCatalog {
	return domain.ProfilePlanCatalog{
		Profiles: []string{
			"Postpaid",
			"Postpaid Controlled",
			"Postpaid Corporate",
			"Postpaid Corporate Admin",
			"Postpaid Corporate Zero",
			"Postpaid Corporate Gold",
			"Prepaid",
			"Prepaid Pro1",
			"Prepaid Pro2",
			"Prepaid Pro3",
			"Prepaid Korana",
			"Prepaid Freefiber",
			"Prepaid Aona",
			"Hybrid",
			"Homenet Postpaid",
			"Homenet Prepaid",
			"Ambatovy",
			"Allowa",
			"Allowa Plus",
		},
		Plans: []string{
			"Orange 60 mode à la seconde",
			"Orange 60 mode classique",
			"Orange Max",
			"Orange Mitsitsy",
			"Orange 3G",
			"Orange Net Confort",
			"Intense (Orange Net)",
			"Corporate Admin",
			"Corporate Premium",
			"Corporate VIP",
			"Corporate Gold",
			"Corporate 250SMS",
			"Corporate BASSAN",
			"Corporate +",
			"Corporate 100",
			"Corporate Equilibre",
			"Corporate Intense",
			"Corporate Initial",
			"Corporate Ultra",
			"Corporate IN",
			"Corporate IN+",
			"Corporate Star",
			"Corporate Start",
			"Corporate SNU IN+",
			"Corporate Zero",
			"Corporate SMM New",
			"Forfait Smartphone",
			"Forfait iPhone",
			"Forfait Corporate SMS",
			"Forfait Corporate Voix",
			"Wifiber",
			"Wifiber Pro",
			"Smart",
			"Smart +",
			"Smart Pro2",
			"Smart Pro6",
			"Smart Pro12",
			"Smart Pro25",
			"Smart Pro Ultra",
			"Smart Pro Prodigy",
			"Smart SSE",
			"So Smart",
			"Homenet",
			"Homenet Postpaid",
			"Homenet Prepaid",
			"Hong",
			"IZY",
			"Mitsitsy +",
			"Premium",
			"OPEN",
			"Pack Touriste",
			"Freefiber",
			"Aôonnaaa",
			"Sera Pro",
			"Allowa",
			"Allowa +",
			"Pro V1",
			"Pro V2",
			"Pro V3",
			"CMO Smartphone",
			"CMO Data",
			"CMO SMM Nex",
			"Tandem 0",
		},
		PlansByProfile: map[string][]string{
			"Postpaid Controlled": {
				"Hong", "Corporate Star", "Forfait Smartphone", "Orange 60 mode classique",
				"Orange Max", "Corporate Admin", "Corporate Premium", "Corporate VIP",
				"Corporate 250SMS", "Corporate +", "Corporate BASSAN", "Corporate SMM New",
				"Corporate 100", "Mitsitsy +",
			},
			"Postpaid": {
				"Hong", "Forfait Smartphone", "Orange 60 mode à la seconde", "Orange 60 mode classique",
				"Orange Mitsitsy", "Corporate Admin", "Corporate Premium", "Corporate VIP",
				"Corporate Gold", "Corporate 250SMS", "Forfait iPhone", "Corporate +",
				"Corporate BASSAN", "Corporate SMM New", "Corporate 100", "Intense (Orange Net)",
				"Orange Net Confort", "Orange 3G", "Premium", "Mitsitsy +",
			},
			"Hybrid": {
				"Tandem 0", "CMO Smartphone", "CMO Data", "CMO SMM Nex", "Smart", "Smart +",
				"Smart SSE", "So Smart",
			},
			"Postpaid Corporate Admin": {"Corporate Admin"},
			"Postpaid Corporate Gold":  {"Corporate Gold"},
			"Postpaid Corporate Zero":  {"Corporate Zero"},
			"Postpaid Corporate": {
				"Corporate Equilibre", "Corporate Intense", "Corporate Initial",
				"Corporate Start", "Corporate IN", "Corporate IN+",
				"Smart Pro2", "Smart Pro6", "Smart Pro12", "Smart Pro25", "Smart Pro Ultra",
				"Smart Pro Prodigy", "Corporate SNU IN+", "Wifiber",
			},
			"Homenet Postpaid": {"Homenet Postpaid"},
			"Homenet Prepaid":  {"Homenet"},
			"Ambatovy":         {"Corporate Ultra"},
			"Prepaid":          {"IZY", "OPEN", "Pack Touriste"},
			"Allowa":           {"Allowa"},
			"Allowa Plus":      {"Allowa +"},
			"Prepaid Pro1":     {"Pro V1"},
			"Prepaid Pro2":     {"Pro V2"},
			"Prepaid Pro3":     {"Pro V3"},
			"Prepaid Korana":   {"Sera Pro"},
			"Prepaid Freefiber": {"Freefiber"},
			"Prepaid Aona":     {"Aôonnaaa"},
		},
	}
}
