package catalogs

import "kepler/internal/engine"

// NIS2 category identifiers.
const (
	CatGovernance   engine.Category = "governance"
	CatRiskMgmt     engine.Category = "risk-management"
	CatIncident     engine.Category = "incident-handling"
	CatContinuity   engine.Category = "business-continuity"
	CatNIS2Report   engine.Category = "reporting"
)

// NIS2 returns the NIS2-style directive catalog. The ten posture-linked
// requirements map one to one onto the profile's cybersecurity posture
// answers via PostureKey.
func NIS2() engine.Catalog {
	return engine.Catalog{
		Framework: engine.FrameworkNIS2,
		Name:      "NIS2 Directive",
		Version:   "2022/2555",
		CategoryWeights: map[engine.Category]float64{
			CatGovernance: 0.20,
			CatRiskMgmt:   0.30,
			CatIncident:   0.25,
			CatContinuity: 0.15,
			CatNIS2Report: 0.10,
		},
		Requirements: []engine.RequirementDefinition{
			{
				ID:          "nis2-gov-01",
				Article:     "Art. 20",
				Title:       "Management accountability for cybersecurity",
				Description: "Management bodies must approve risk-management measures and oversee their implementation; members are personally accountable.",
				Category:    CatGovernance,
				Severity:    engine.SeverityMajor,
				Effort:      engine.EffortLow,
			},
			{
				ID:          "nis2-gov-02",
				Article:     "Art. 21(2)(a)",
				Title:       "Information security policy",
				Description: "A policy on information system security must be adopted and maintained.",
				Category:    CatGovernance,
				Severity:    engine.SeverityCritical,
				Effort:      engine.EffortLow,
				PostureKey:  "security-policy",
			},
			{
				ID:          "nis2-gov-03",
				Article:     "Art. 21(2)(g)",
				Title:       "Cyber hygiene and security training",
				Description: "Basic cyber hygiene practices and cybersecurity training must be in place for staff.",
				Category:    CatGovernance,
				Severity:    engine.SeverityMinor,
				Effort:      engine.EffortLow,
				PostureKey:  "security-training",
			},
			{
				ID:          "nis2-rsk-01",
				Article:     "Art. 21(2)(a)",
				Title:       "Risk analysis and management process",
				Description: "An all-hazards risk analysis covering network and information systems must be performed and kept current.",
				Category:    CatRiskMgmt,
				Severity:    engine.SeverityCritical,
				Effort:      engine.EffortMedium,
				PostureKey:  "risk-management",
			},
			{
				ID:          "nis2-rsk-02",
				Article:     "Art. 21(2)(d)",
				Title:       "Supply chain security",
				Description: "Security-related aspects of relationships with direct suppliers and service providers must be addressed.",
				Category:    CatRiskMgmt,
				Severity:    engine.SeverityMajor,
				Effort:      engine.EffortMedium,
				PostureKey:  "supply-chain-security",
			},
			{
				ID:          "nis2-rsk-03",
				Article:     "Art. 21(2)(h)",
				Title:       "Cryptography and encryption",
				Description: "Policies and procedures on the use of cryptography and, where appropriate, encryption must be in place.",
				Category:    CatRiskMgmt,
				Severity:    engine.SeverityMajor,
				Effort:      engine.EffortMedium,
				PostureKey:  "encryption",
			},
			{
				ID:          "nis2-rsk-04",
				Article:     "Art. 21(2)(i)",
				Title:       "Access control and asset management",
				Description: "Access control policies and asset management procedures must govern human and machine access.",
				Category:    CatRiskMgmt,
				Severity:    engine.SeverityMajor,
				Effort:      engine.EffortMedium,
				PostureKey:  "access-control",
			},
			{
				ID:          "nis2-rsk-05",
				Article:     "Art. 21(2)(e)",
				Title:       "Vulnerability handling and disclosure",
				Description: "Security in system acquisition and development including vulnerability handling and disclosure must be ensured.",
				Category:    CatRiskMgmt,
				Severity:    engine.SeverityMajor,
				Effort:      engine.EffortMedium,
				PostureKey:  "vulnerability-management",
			},
			{
				ID:          "nis2-rsk-06",
				Article:     "Art. 21(2)(f)",
				Title:       "Effectiveness assessment and testing",
				Description: "Policies and procedures to assess the effectiveness of risk-management measures, including security testing, must exist.",
				Category:    CatRiskMgmt,
				Severity:    engine.SeverityMinor,
				Effort:      engine.EffortMedium,
				PostureKey:  "penetration-testing",
			},
			{
				ID:          "nis2-inc-01",
				Article:     "Art. 21(2)(b)",
				Title:       "Incident handling process",
				Description: "An incident handling process covering detection, response, and recovery must be operational.",
				Category:    CatIncident,
				Severity:    engine.SeverityCritical,
				Effort:      engine.EffortMedium,
				PostureKey:  "incident-response-plan",
			},
			{
				ID:          "nis2-inc-02",
				Article:     "Art. 23",
				Title:       "24-hour early warning of significant incidents",
				Description: "Significant incidents must be notified to the CSIRT or authority within 24 hours, with a full notification within 72 hours.",
				Category:    CatIncident,
				Severity:    engine.SeverityCritical,
				Effort:      engine.EffortLow,
			},
			{
				ID:          "nis2-bcp-01",
				Article:     "Art. 21(2)(c)",
				Title:       "Business continuity and crisis management",
				Description: "Business continuity measures such as backup management, disaster recovery, and crisis management must be maintained.",
				Category:    CatContinuity,
				Severity:    engine.SeverityMajor,
				Effort:      engine.EffortMedium,
				PostureKey:  "business-continuity-plan",
			},
			{
				ID:          "nis2-rep-01",
				Article:     "Art. 27",
				Title:       "Entity registration with the authority",
				Description: "Essential and important entities must register with the competent authority, including sectoral details and contact points.",
				Category:    CatNIS2Report,
				Severity:    engine.SeverityMajor,
				Effort:      engine.EffortLow,
			},
			{
				ID:          "nis2-rep-02",
				Article:     "Art. 32",
				Title:       "Cooperation with supervisory measures",
				Description: "Entities must cooperate with audits, inspections, and information requests from the supervisory authority.",
				Category:    CatNIS2Report,
				Severity:    engine.SeverityMinor,
				Effort:      engine.EffortLow,
			},
		},
	}
}
