package catalogs

import "kepler/internal/engine"

// National catalog categories. National lists are smaller than the
// act's, so each country reuses this fixed category set.
const (
	CatNatLicensing engine.Category = "licensing"
	CatNatSafety    engine.Category = "safety"
	CatNatLiability engine.Category = "liability"
	CatNatRegistry  engine.Category = "registry"
)

var nationalWeights = map[engine.Category]float64{
	CatNatLicensing: 0.40,
	CatNatSafety:    0.25,
	CatNatLiability: 0.20,
	CatNatRegistry:  0.15,
}

// National returns the national space-law catalogs keyed by ISO country
// code.
func National() map[string]engine.Catalog {
	return map[string]engine.Catalog{
		"DE": germany(),
		"FR": france(),
		"LU": luxembourg(),
		"NL": netherlands(),
		"AT": austria(),
		"BE": belgium(),
	}
}

func germany() engine.Catalog {
	return engine.Catalog{
		Framework:       "de-space-law",
		Name:            "German Space Activities Law (draft)",
		Version:         "2024",
		CategoryWeights: nationalWeights,
		Requirements: []engine.RequirementDefinition{
			{
				ID: "de-lic-01", Article: "§ 3 RaumfG", Title: "Federal licensing of space activities",
				Description: "Space activities conducted from German territory or by German operators require a federal license.",
				Category:    CatNatLicensing, Severity: engine.SeverityCritical, Effort: engine.EffortHigh,
			},
			{
				ID: "de-lic-02", Article: "§ 5 RaumfG", Title: "Reliability assessment of the operator",
				Description: "License applicants undergo a reliability and competence assessment.",
				Category:    CatNatLicensing, Severity: engine.SeverityMajor, Effort: engine.EffortMedium,
			},
			{
				ID: "de-saf-01", Article: "§ 8 RaumfG", Title: "National debris mitigation obligations",
				Description: "Missions must meet national debris mitigation standards aligned with international guidelines.",
				Category:    CatNatSafety, Severity: engine.SeverityCritical, Effort: engine.EffortMedium,
				Applies: engine.Constraint{OrbitRegimes: []engine.OrbitRegime{engine.OrbitLEO, engine.OrbitSSO, engine.OrbitMEO}},
			},
			{
				ID: "de-saf-02", Article: "§ 9 RaumfG", Title: "Frequency and interference coordination",
				Description: "Operators must coordinate spectrum use with the federal network agency.",
				Category:    CatNatSafety, Severity: engine.SeverityMajor, Effort: engine.EffortLow,
			},
			{
				ID: "de-lia-01", Article: "§ 11 RaumfG", Title: "Mandatory liability cover",
				Description: "Operators must maintain liability cover at the level fixed in the license.",
				Category:    CatNatLiability, Severity: engine.SeverityMajor, Effort: engine.EffortMedium,
			},
			{
				ID: "de-reg-01", Article: "§ 13 RaumfG", Title: "Entry in the national registry",
				Description: "Space objects must be entered in the national registry before launch.",
				Category:    CatNatRegistry, Severity: engine.SeverityMajor, Effort: engine.EffortLow,
			},
		},
	}
}

func france() engine.Catalog {
	return engine.Catalog{
		Framework:       "fr-space-law",
		Name:            "French Space Operations Act (LOS)",
		Version:         "2008-518",
		CategoryWeights: nationalWeights,
		Requirements: []engine.RequirementDefinition{
			{
				ID: "fr-lic-01", Article: "LOS Art. 2", Title: "CNES-reviewed operations authorization",
				Description: "Space operations require prior authorization with technical review by CNES.",
				Category:    CatNatLicensing, Severity: engine.SeverityCritical, Effort: engine.EffortHigh,
			},
			{
				ID: "fr-lic-02", Article: "LOS Art. 5", Title: "Command authority and control continuity",
				Description: "The operator must retain effective command of the space object throughout the operation.",
				Category:    CatNatLicensing, Severity: engine.SeverityMajor, Effort: engine.EffortMedium,
				Applies: engine.Constraint{Maneuverability: []engine.Maneuverability{engine.ManeuverFull, engine.ManeuverLimited}},
			},
			{
				ID: "fr-saf-01", Article: "Technical Regulation Art. 21", Title: "CNES technical regulation conformity",
				Description: "Missions must conform to the CNES technical regulation covering debris, re-entry, and collision risk.",
				Category:    CatNatSafety, Severity: engine.SeverityCritical, Effort: engine.EffortHigh,
			},
			{
				ID: "fr-saf-02", Article: "Technical Regulation Art. 40", Title: "Controlled re-entry casualty threshold",
				Description: "Re-entering objects must meet the casualty risk threshold or perform controlled re-entry.",
				Category:    CatNatSafety, Severity: engine.SeverityMajor, Effort: engine.EffortHigh,
				Applies: engine.Constraint{OrbitRegimes: []engine.OrbitRegime{engine.OrbitLEO, engine.OrbitSSO}},
			},
			{
				ID: "fr-lia-01", Article: "LOS Art. 6", Title: "State-guaranteed liability regime participation",
				Description: "Operators benefit from the state guarantee above the insurance ceiling and must insure up to it.",
				Category:    CatNatLiability, Severity: engine.SeverityMajor, Effort: engine.EffortMedium,
			},
			{
				ID: "fr-reg-01", Article: "LOS Art. 12", Title: "Registration with the national registry",
				Description: "Objects launched under French jurisdiction are entered in the national registry held by CNES.",
				Category:    CatNatRegistry, Severity: engine.SeverityMajor, Effort: engine.EffortLow,
			},
		},
	}
}

func luxembourg() engine.Catalog {
	return engine.Catalog{
		Framework:       "lu-space-law",
		Name:            "Luxembourg Space Activities Law",
		Version:         "2020",
		CategoryWeights: nationalWeights,
		Requirements: []engine.RequirementDefinition{
			{
				ID: "lu-lic-01", Article: "Art. 4", Title: "Ministerial authorization of space activities",
				Description: "Space activities require authorization by the minister responsible for the economy.",
				Category:    CatNatLicensing, Severity: engine.SeverityCritical, Effort: engine.EffortMedium,
			},
			{
				ID: "lu-lic-02", Article: "Art. 7", Title: "Luxembourg establishment requirement",
				Description: "The operator must be a Luxembourg-established entity with central administration in the Grand Duchy.",
				Category:    CatNatLicensing, Severity: engine.SeverityMajor, Effort: engine.EffortMedium,
			},
			{
				ID: "lu-saf-01", Article: "Art. 10", Title: "Risk assessment for authorized activities",
				Description: "Applicants must provide a risk assessment covering operational and orbital risks.",
				Category:    CatNatSafety, Severity: engine.SeverityMajor, Effort: engine.EffortMedium,
			},
			{
				ID: "lu-lia-01", Article: "Art. 12", Title: "Financial guarantee or insurance",
				Description: "An insurance policy or equivalent financial guarantee must cover third-party damage.",
				Category:    CatNatLiability, Severity: engine.SeverityMajor, Effort: engine.EffortMedium,
			},
			{
				ID: "lu-reg-01", Article: "Art. 14", Title: "National registry entry",
				Description: "Authorized space objects are entered in the Luxembourg registry.",
				Category:    CatNatRegistry, Severity: engine.SeverityMinor, Effort: engine.EffortLow,
			},
		},
	}
}

func netherlands() engine.Catalog {
	return engine.Catalog{
		Framework:       "nl-space-law",
		Name:            "Dutch Space Activities Act",
		Version:         "2007",
		CategoryWeights: nationalWeights,
		Requirements: []engine.RequirementDefinition{
			{
				ID: "nl-lic-01", Article: "Art. 3", Title: "License for space activities",
				Description: "Performing space activities from the Netherlands requires a license from the minister of economic affairs.",
				Category:    CatNatLicensing, Severity: engine.SeverityCritical, Effort: engine.EffortMedium,
			},
			{
				ID: "nl-saf-01", Article: "Art. 6", Title: "Conditions on debris prevention",
				Description: "Licenses carry conditions on debris prevention and end-of-life disposal.",
				Category:    CatNatSafety, Severity: engine.SeverityMajor, Effort: engine.EffortMedium,
			},
			{
				ID: "nl-lia-01", Article: "Art. 8", Title: "Insurance obligation",
				Description: "The license holder must insure liability for damage caused by the space activity.",
				Category:    CatNatLiability, Severity: engine.SeverityMajor, Effort: engine.EffortMedium,
			},
			{
				ID: "nl-reg-01", Article: "Art. 11", Title: "Registry notification",
				Description: "Space objects must be notified for entry in the national registry.",
				Category:    CatNatRegistry, Severity: engine.SeverityMinor, Effort: engine.EffortLow,
			},
		},
	}
}

func austria() engine.Catalog {
	return engine.Catalog{
		Framework:       "at-space-law",
		Name:            "Austrian Outer Space Act",
		Version:         "2011",
		CategoryWeights: nationalWeights,
		Requirements: []engine.RequirementDefinition{
			{
				ID: "at-lic-01", Article: "§ 4", Title: "Authorization of space activities",
				Description: "Space activities require authorization by the minister for transport, innovation and technology.",
				Category:    CatNatLicensing, Severity: engine.SeverityCritical, Effort: engine.EffortMedium,
			},
			{
				ID: "at-saf-01", Article: "§ 5", Title: "Debris mitigation condition",
				Description: "Authorization requires provision for the mitigation of space debris in line with international guidelines.",
				Category:    CatNatSafety, Severity: engine.SeverityMajor, Effort: engine.EffortMedium,
			},
			{
				ID: "at-lia-01", Article: "§ 9", Title: "Insurance of at least EUR 60 million",
				Description: "The operator must insure liability for damage to persons and property, with statutory minimum cover.",
				Category:    CatNatLiability, Severity: engine.SeverityMajor, Effort: engine.EffortMedium,
			},
			{
				ID: "at-reg-01", Article: "§ 12", Title: "Entry in the Austrian registry",
				Description: "Space objects are entered in the registry kept by the ministry.",
				Category:    CatNatRegistry, Severity: engine.SeverityMinor, Effort: engine.EffortLow,
			},
		},
	}
}

func belgium() engine.Catalog {
	return engine.Catalog{
		Framework:       "be-space-law",
		Name:            "Belgian Space Activities Law",
		Version:         "2005",
		CategoryWeights: nationalWeights,
		Requirements: []engine.RequirementDefinition{
			{
				ID: "be-lic-01", Article: "Art. 4", Title: "Authorization by the minister for science policy",
				Description: "Activities of launching, flight operations or guidance of space objects require prior authorization.",
				Category:    CatNatLicensing, Severity: engine.SeverityCritical, Effort: engine.EffortMedium,
			},
			{
				ID: "be-saf-01", Article: "Art. 8", Title: "Environmental impact assessment",
				Description: "The authorization file must include an assessment of the activity's environmental impact.",
				Category:    CatNatSafety, Severity: engine.SeverityMajor, Effort: engine.EffortMedium,
			},
			{
				ID: "be-lia-01", Article: "Art. 15", Title: "State recourse and operator cover",
				Description: "The state may claim recourse against the operator; cover obligations are fixed per authorization.",
				Category:    CatNatLiability, Severity: engine.SeverityMajor, Effort: engine.EffortMedium,
			},
			{
				ID: "be-reg-01", Article: "Art. 14", Title: "National registry entry",
				Description: "Space objects are entered in the registry held by the federal science policy office.",
				Category:    CatNatRegistry, Severity: engine.SeverityMinor, Effort: engine.EffortLow,
			},
		},
	}
}
