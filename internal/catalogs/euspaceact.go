package catalogs

import "kepler/internal/engine"

// Category identifiers shared by the act's scoring modules.
const (
	CatAuthorization engine.Category = "authorization"
	CatDebris        engine.Category = "debris"
	CatCyber         engine.Category = "cybersecurity"
	CatInsurance     engine.Category = "insurance"
	CatEnvironmental engine.Category = "environmental"
	CatReporting     engine.Category = "reporting"
)

func boolPtr(b bool) *bool { return &b }

// EUSpaceAct returns the EU Space Act requirement catalog.
func EUSpaceAct() engine.Catalog {
	return engine.Catalog{
		Framework: engine.FrameworkEUSpaceAct,
		Name:      "EU Space Act",
		Version:   "2024-draft",
		CategoryWeights: map[engine.Category]float64{
			CatAuthorization: 0.25,
			CatDebris:        0.25,
			CatCyber:         0.20,
			CatInsurance:     0.10,
			CatEnvironmental: 0.10,
			CatReporting:     0.10,
		},
		Requirements: []engine.RequirementDefinition{
			{
				ID:          "eu-auth-01",
				Article:     "Art. 6",
				Title:       "Prior authorization for space activities",
				Description: "Operators must obtain authorization from the competent national authority before commencing space activities covered by the act.",
				Category:    CatAuthorization,
				Severity:    engine.SeverityCritical,
				Effort:      engine.EffortHigh,
				Evidence:    []string{"Authorization application", "Grant decision"},
				Guidance:    []string{"File with the national authority of the establishment member state."},
			},
			{
				ID:          "eu-auth-02",
				Article:     "Art. 7",
				Title:       "Demonstration of technical capacity",
				Description: "The applicant must demonstrate the technical and operational capacity to conduct the planned activity safely.",
				Category:    CatAuthorization,
				Severity:    engine.SeverityMajor,
				Effort:      engine.EffortMedium,
				Evidence:    []string{"Mission design dossier", "Operations team qualifications"},
			},
			{
				ID:          "eu-auth-03",
				Article:     "Art. 8",
				Title:       "Demonstration of financial capacity",
				Description: "The applicant must show financial resources sufficient to cover the activity through end of life, including disposal.",
				Category:    CatAuthorization,
				Severity:    engine.SeverityMajor,
				Effort:      engine.EffortMedium,
				Evidence:    []string{"Financial statements", "Funding commitments"},
			},
			{
				ID:          "eu-auth-04",
				Article:     "Art. 10",
				Title:       "Third-country operator representation",
				Description: "Operators established outside the Union providing services in the Union must designate an authorized representative in a member state.",
				Category:    CatAuthorization,
				Severity:    engine.SeverityMajor,
				Effort:      engine.EffortLow,
				Applies: engine.Constraint{
					Activities: []engine.ActivityType{engine.ActivityThirdCountryOperator},
				},
			},
			{
				ID:          "eu-auth-05",
				Article:     "Art. 12",
				Title:       "Notification of substantial changes",
				Description: "Substantial changes to an authorized activity must be notified to the authority before implementation.",
				Category:    CatAuthorization,
				Severity:    engine.SeverityMinor,
				Effort:      engine.EffortLow,
			},
			{
				ID:          "eu-auth-06",
				Article:     "Art. 14",
				Title:       "Launch service authorization",
				Description: "Launch operators require a dedicated launch authorization covering vehicle, trajectory, and range safety.",
				Category:    CatAuthorization,
				Severity:    engine.SeverityCritical,
				Effort:      engine.EffortHigh,
				Applies: engine.Constraint{
					Activities: []engine.ActivityType{engine.ActivityLaunchOperator, engine.ActivityLaunchSiteOperator},
				},
			},
			{
				ID:          "eu-deb-01",
				Article:     "Art. 43",
				Title:       "Debris mitigation plan",
				Description: "Every mission must carry a debris mitigation plan consistent with recognized mitigation guidelines, covering collision avoidance, disposal, and fragmentation prevention.",
				Category:    CatDebris,
				Severity:    engine.SeverityCritical,
				Effort:      engine.EffortMedium,
				StandardRef: "ISO 24113",
				Evidence:    []string{"Debris mitigation plan document"},
				Guidance:    []string{"Align the plan with ISO 24113 and IADC guidelines."},
			},
			{
				ID:          "eu-deb-02",
				Article:     "Art. 44",
				Title:       "Post-mission disposal within 5 years",
				Description: "Spacecraft in or crossing LEO must be disposed of within five years of end of mission.",
				Category:    CatDebris,
				Severity:    engine.SeverityCritical,
				Effort:      engine.EffortHigh,
				Applies: engine.Constraint{
					OrbitRegimes: []engine.OrbitRegime{engine.OrbitLEO, engine.OrbitSSO},
				},
			},
			{
				ID:          "eu-deb-03",
				Article:     "Art. 45",
				Title:       "Collision avoidance capability",
				Description: "Constellations of ten or more spacecraft must maintain maneuver capability and a collision avoidance process.",
				Category:    CatDebris,
				Severity:    engine.SeverityCritical,
				Effort:      engine.EffortHigh,
				Applies: engine.Constraint{
					MinSatellites:   10,
					Maneuverability: []engine.Maneuverability{engine.ManeuverFull, engine.ManeuverLimited},
				},
			},
			{
				ID:          "eu-deb-04",
				Article:     "Art. 46",
				Title:       "Passivation at end of mission",
				Description: "Stored energy sources must be depleted or made safe once the spacecraft no longer needs them.",
				Category:    CatDebris,
				Severity:    engine.SeverityMajor,
				Effort:      engine.EffortMedium,
				Applies: engine.Constraint{
					RequiresPropulsion: boolPtr(true),
				},
			},
			{
				ID:          "eu-deb-05",
				Article:     "Art. 47",
				Title:       "Large constellation coordination",
				Description: "Operators of large and mega constellations must coordinate orbital usage and share ephemeris data with other operators.",
				Category:    CatDebris,
				Severity:    engine.SeverityMajor,
				Effort:      engine.EffortMedium,
				Applies: engine.Constraint{
					ConstellationTiers: []engine.ConstellationTier{engine.TierLarge, engine.TierMega},
				},
			},
			{
				ID:          "eu-deb-06",
				Article:     "Art. 48",
				Title:       "Trackability and identification",
				Description: "Spacecraft must be trackable by European space surveillance and registered with unique identifiers.",
				Category:    CatDebris,
				Severity:    engine.SeverityMajor,
				Effort:      engine.EffortLow,
			},
			{
				ID:          "eu-deb-07",
				Article:     "Art. 49",
				Title:       "Graveyard disposal for GEO missions",
				Description: "GEO spacecraft must be re-orbited to a graveyard orbit at end of life per recognized re-orbit altitude formulas.",
				Category:    CatDebris,
				Severity:    engine.SeverityMajor,
				Effort:      engine.EffortMedium,
				Applies: engine.Constraint{
					OrbitRegimes: []engine.OrbitRegime{engine.OrbitGEO},
				},
			},
			{
				ID:          "eu-cyb-01",
				Article:     "Art. 60",
				Title:       "Cybersecurity risk assessment",
				Description: "Operators must perform and maintain a cybersecurity risk assessment covering space, ground, and link segments.",
				Category:    CatCyber,
				Severity:    engine.SeverityCritical,
				Effort:      engine.EffortMedium,
			},
			{
				ID:          "eu-cyb-02",
				Article:     "Art. 61",
				Title:       "Command link protection",
				Description: "Telecommand links must be protected against unauthorized access, including encryption and authentication.",
				Category:    CatCyber,
				Severity:    engine.SeverityCritical,
				Effort:      engine.EffortHigh,
			},
			{
				ID:          "eu-cyb-03",
				Article:     "Art. 62",
				Title:       "Incident notification to authority",
				Description: "Significant cybersecurity incidents affecting space activities must be reported to the competent authority without undue delay.",
				Category:    CatCyber,
				Severity:    engine.SeverityMajor,
				Effort:      engine.EffortLow,
			},
			{
				ID:          "eu-cyb-04",
				Article:     "Art. 63",
				Title:       "Supply chain security for space segments",
				Description: "Procurement of critical spacecraft and ground components must include supply-chain security requirements.",
				Category:    CatCyber,
				Severity:    engine.SeverityMajor,
				Effort:      engine.EffortMedium,
			},
			{
				ID:          "eu-ins-01",
				Article:     "Art. 70",
				Title:       "Third-party liability insurance",
				Description: "Operators must hold third-party liability cover appropriate to the risk profile of the activity.",
				Category:    CatInsurance,
				Severity:    engine.SeverityMajor,
				Effort:      engine.EffortMedium,
				Evidence:    []string{"Insurance certificate"},
			},
			{
				ID:          "eu-ins-02",
				Article:     "Art. 71",
				Title:       "In-orbit collision liability cover",
				Description: "Constellation operators must extend liability cover to in-orbit collision events for the duration of the mission.",
				Category:    CatInsurance,
				Severity:    engine.SeverityMinor,
				Effort:      engine.EffortLow,
				Applies: engine.Constraint{
					ConstellationTiers: []engine.ConstellationTier{engine.TierMedium, engine.TierLarge, engine.TierMega},
				},
			},
			{
				ID:          "eu-env-01",
				Article:     "Art. 80",
				Title:       "Environmental footprint declaration",
				Description: "Operators must declare the environmental footprint of the mission, including launch emissions and re-entry products.",
				Category:    CatEnvironmental,
				Severity:    engine.SeverityMinor,
				Effort:      engine.EffortMedium,
			},
			{
				ID:          "eu-env-02",
				Article:     "Art. 81",
				Title:       "Dark and quiet skies mitigation",
				Description: "Large constellations must assess and mitigate optical brightness and radio interference with astronomy.",
				Category:    CatEnvironmental,
				Severity:    engine.SeverityMinor,
				Effort:      engine.EffortMedium,
				Applies: engine.Constraint{
					ConstellationTiers: []engine.ConstellationTier{engine.TierLarge, engine.TierMega},
				},
			},
			{
				ID:          "eu-env-03",
				Article:     "Art. 82",
				Title:       "Atmospheric re-entry assessment",
				Description: "Missions relying on destructive re-entry must assess casualty risk and demisability.",
				Category:    CatEnvironmental,
				Severity:    engine.SeverityMajor,
				Effort:      engine.EffortMedium,
				Applies: engine.Constraint{
					OrbitRegimes: []engine.OrbitRegime{engine.OrbitLEO, engine.OrbitSSO, engine.OrbitHEO},
				},
			},
			{
				ID:          "eu-rep-01",
				Article:     "Art. 90",
				Title:       "Registration of space objects",
				Description: "Every space object must be entered in the Union register with orbital parameters and ownership data.",
				Category:    CatReporting,
				Severity:    engine.SeverityMajor,
				Effort:      engine.EffortLow,
			},
			{
				ID:          "eu-rep-02",
				Article:     "Art. 91",
				Title:       "Annual compliance report",
				Description: "Authorized operators must submit an annual report on continued compliance with authorization conditions.",
				Category:    CatReporting,
				Severity:    engine.SeverityMinor,
				Effort:      engine.EffortLow,
			},
			{
				ID:          "eu-rep-03",
				Article:     "Art. 92",
				Title:       "Anomaly and fragmentation reporting",
				Description: "On-orbit anomalies, break-ups, and loss of control must be reported to the authority and affected operators.",
				Category:    CatReporting,
				Severity:    engine.SeverityMajor,
				Effort:      engine.EffortLow,
			},
			{
				ID:          "eu-rep-04",
				Article:     "Art. 93",
				Title:       "Maneuver notification for conjunctions",
				Description: "Operators of maneuverable spacecraft must notify planned avoidance maneuvers for high-risk conjunctions.",
				Category:    CatReporting,
				Severity:    engine.SeverityMinor,
				Effort:      engine.EffortLow,
				Applies: engine.Constraint{
					Maneuverability: []engine.Maneuverability{engine.ManeuverFull, engine.ManeuverLimited},
				},
			},
		},
	}
}
