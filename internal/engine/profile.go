// Package engine implements the regulatory applicability and scoring
// engine: pure functions from an operator profile plus static requirement
// catalogs to applicable requirements, weighted compliance scores, risk
// levels, gap analysis, cross-framework correlation, and jurisdiction
// rankings. Nothing in this package performs I/O or holds mutable state;
// every function is safe for concurrent use.
package engine

// EntitySize categorizes an operator by organizational size.
type EntitySize string

const (
	SizeMicro  EntitySize = "micro"
	SizeSmall  EntitySize = "small"
	SizeMedium EntitySize = "medium"
	SizeLarge  EntitySize = "large"
)

// ActivityType tags a class of space activity an operator performs.
type ActivityType string

const (
	ActivitySpacecraftOperator   ActivityType = "spacecraft-operator"
	ActivityLaunchOperator       ActivityType = "launch-operator"
	ActivityLaunchSiteOperator   ActivityType = "launch-site-operator"
	ActivityInSpaceServicer      ActivityType = "in-space-servicer"
	ActivityCollisionAvoidance   ActivityType = "collision-avoidance-provider"
	ActivityDataProvider         ActivityType = "data-provider"
	ActivityThirdCountryOperator ActivityType = "third-country-operator"
)

// OrbitRegime identifies the orbital regime of a mission.
type OrbitRegime string

const (
	OrbitLEO      OrbitRegime = "LEO"
	OrbitMEO      OrbitRegime = "MEO"
	OrbitGEO      OrbitRegime = "GEO"
	OrbitHEO      OrbitRegime = "HEO"
	OrbitSSO      OrbitRegime = "SSO"
	OrbitCislunar OrbitRegime = "cislunar"
	OrbitMultiple OrbitRegime = "multiple"
)

// ConstellationTier buckets a fleet by satellite count. It is always
// derived from the count via TierForCount and never stored independently.
type ConstellationTier string

const (
	TierSingle ConstellationTier = "single"
	TierSmall  ConstellationTier = "small"
	TierMedium ConstellationTier = "medium"
	TierLarge  ConstellationTier = "large"
	TierMega   ConstellationTier = "mega"
)

// TierForCount derives the constellation tier from a satellite count.
func TierForCount(satellites int) ConstellationTier {
	switch {
	case satellites >= 1000:
		return TierMega
	case satellites >= 100:
		return TierLarge
	case satellites >= 10:
		return TierMedium
	case satellites >= 2:
		return TierSmall
	default:
		return TierSingle
	}
}

// Maneuverability describes a spacecraft's collision-avoidance capability.
type Maneuverability string

const (
	ManeuverFull    Maneuverability = "full"
	ManeuverLimited Maneuverability = "limited"
	ManeuverNone    Maneuverability = "none"
)

// DeorbitStrategy describes the planned end-of-life disposal approach.
type DeorbitStrategy string

const (
	DeorbitActive     DeorbitStrategy = "active-deorbit"
	DeorbitPassive    DeorbitStrategy = "passive-decay"
	DeorbitGraveyard  DeorbitStrategy = "graveyard-orbit"
	DeorbitContracted DeorbitStrategy = "contracted-removal"
)

// CyberPosture records an operator's answers to the ten cybersecurity
// measure questions used for NIS2-style assessment.
type CyberPosture struct {
	SecurityPolicy          bool `json:"security_policy"`
	RiskManagement          bool `json:"risk_management"`
	IncidentResponsePlan    bool `json:"incident_response_plan"`
	BusinessContinuityPlan  bool `json:"business_continuity_plan"`
	SupplyChainSecurity     bool `json:"supply_chain_security"`
	SecurityTraining        bool `json:"security_training"`
	Encryption              bool `json:"encryption"`
	AccessControl           bool `json:"access_control"`
	VulnerabilityManagement bool `json:"vulnerability_management"`
	PenetrationTesting      bool `json:"penetration_testing"`
}

// Answer returns the answer for a named posture measure and whether the
// name is known. Names match the catalog's posture keys.
func (c CyberPosture) Answer(key string) (value, known bool) {
	switch key {
	case "security-policy":
		return c.SecurityPolicy, true
	case "risk-management":
		return c.RiskManagement, true
	case "incident-response-plan":
		return c.IncidentResponsePlan, true
	case "business-continuity-plan":
		return c.BusinessContinuityPlan, true
	case "supply-chain-security":
		return c.SupplyChainSecurity, true
	case "security-training":
		return c.SecurityTraining, true
	case "encryption":
		return c.Encryption, true
	case "access-control":
		return c.AccessControl, true
	case "vulnerability-management":
		return c.VulnerabilityManagement, true
	case "penetration-testing":
		return c.PenetrationTesting, true
	}
	return false, false
}

// PostureKeys lists the ten posture measure names in fixed order.
var PostureKeys = []string{
	"security-policy",
	"risk-management",
	"incident-response-plan",
	"business-continuity-plan",
	"supply-chain-security",
	"security-training",
	"encryption",
	"access-control",
	"vulnerability-management",
	"penetration-testing",
}

// Preferences captures jurisdiction-selection preferences used by the
// jurisdiction ranker.
type Preferences struct {
	FastProcessing     bool `json:"fast_processing"`
	EnglishRequired    bool `json:"english_required"`
	Startup            bool `json:"startup"`
	InsuranceCoverage  bool `json:"insurance_coverage"`
}

// OperatorProfile is the immutable input describing an organization and
// its mission. All fields are optional unless a framework gate needs
// them; absent enum fields are the zero value.
type OperatorProfile struct {
	EstablishmentCountry string          `json:"establishment_country"`
	EntitySize           EntitySize      `json:"entity_size"`
	Activities           []ActivityType  `json:"activities"`
	Orbit                OrbitRegime     `json:"orbit"`
	AltitudeKm           float64         `json:"altitude_km"`
	SatelliteCount       int             `json:"satellite_count"`
	Maneuverability      Maneuverability `json:"maneuverability"`
	Propulsion           bool            `json:"propulsion"`
	Passivation          bool            `json:"passivation"`
	MissionYears         float64         `json:"mission_years"`
	Deorbit              DeorbitStrategy `json:"deorbit"`
	DefenseOnly          bool            `json:"defense_only"`
	EUMarketService      bool            `json:"eu_market_service"`
	CriticalInfraService bool            `json:"critical_infra_service"`
	Posture              CyberPosture    `json:"posture"`
	Jurisdictions        []string        `json:"jurisdictions"`
	Preferences          Preferences     `json:"preferences"`
}

// ConstellationTier derives the tier from the profile's satellite count.
func (p *OperatorProfile) ConstellationTier() ConstellationTier {
	return TierForCount(p.SatelliteCount)
}

// HasActivity reports whether the profile declares the given activity.
func (p *OperatorProfile) HasActivity(a ActivityType) bool {
	for _, t := range p.Activities {
		if t == a {
			return true
		}
	}
	return false
}

// euMemberStates holds ISO 3166-1 alpha-2 codes of EU member states,
// used by the framework gates to decide domestic establishment.
var euMemberStates = map[string]struct{}{
	"AT": {}, "BE": {}, "BG": {}, "HR": {}, "CY": {}, "CZ": {}, "DK": {},
	"EE": {}, "FI": {}, "FR": {}, "DE": {}, "GR": {}, "HU": {}, "IE": {},
	"IT": {}, "LV": {}, "LT": {}, "LU": {}, "MT": {}, "NL": {}, "PL": {},
	"PT": {}, "RO": {}, "SK": {}, "SI": {}, "ES": {}, "SE": {},
}

// EstablishedInEU reports whether the establishment country is an EU
// member state. "EU" itself is accepted for profiles that only know the
// bloc, not the member state.
func (p *OperatorProfile) EstablishedInEU() bool {
	if p.EstablishmentCountry == "EU" {
		return true
	}
	_, ok := euMemberStates[p.EstablishmentCountry]
	return ok
}
