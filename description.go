package lithoparse

// TokenKind classifies a span of the input against the BS 5930 vocabulary.
type TokenKind int

const (
	TokenUnknown TokenKind = iota
	TokenConsistency
	TokenConsistencyRange
	TokenDensity
	TokenDensityRange
	TokenRockStrength
	TokenSoilType
	TokenRockType
	TokenWeatheringGrade
	TokenRockStructure
	TokenProportion
	TokenAdjective
	TokenColor
	TokenMoistureContent
	TokenPlasticityIndex
	TokenParticleSize
)

var tokenKindNames = []string{
	"unknown", "consistency", "consistency_range", "density", "density_range",
	"rock_strength", "soil_type", "rock_type", "weathering_grade",
	"rock_structure", "proportion", "adjective", "color", "moisture_content",
	"plasticity_index", "particle_size",
}

func (k TokenKind) String() string {
	if int(k) < len(tokenKindNames) {
		return tokenKindNames[k]
	}
	return "unknown"
}

// Token is a typed, positioned span of the input. Text keeps the original
// casing; Start and End are byte offsets into the input string.
type Token struct {
	Kind  TokenKind
	Text  string
	Start int
	End   int
}

// SpellingCorrection records one fuzzy-corrected word, in the order the
// corrections were made during tokenization.
type SpellingCorrection struct {
	Original        string  `json:"original"`
	Corrected       string  `json:"corrected"`
	SimilarityScore float64 `json:"similarity_score"`
}

// SecondaryConstituent is a minor material component: an amount qualifier
// (slightly, moderately, very, or empty for an unqualified adjective) and
// the constituent soil type in lowercase.
type SecondaryConstituent struct {
	Amount   string `json:"amount"`
	SoilType string `json:"soil_type"`
}

// ValueRange is a numeric band with an optional typical value.
// LowerBound <= TypicalValue <= UpperBound holds whenever TypicalValue is set.
type ValueRange struct {
	LowerBound   float64  `json:"lower_bound"`
	UpperBound   float64  `json:"upper_bound"`
	TypicalValue *float64 `json:"typical_value,omitempty"`
}

// Midpoint returns the typical value, or the arithmetic midpoint of the
// bounds when no typical value is recorded.
func (r ValueRange) Midpoint() float64 {
	if r.TypicalValue != nil {
		return *r.TypicalValue
	}
	return (r.LowerBound + r.UpperBound) / 2
}

// StrengthParameters is the quantitative strength guidance attached to a
// description by the strength database.
type StrengthParameters struct {
	ParameterType StrengthParameterType `json:"parameter_type"`
	Range         ValueRange            `json:"range"`
	Confidence    float64               `json:"confidence"`
}

// ConstituentEntry is the proportion guidance for one secondary constituent.
type ConstituentEntry struct {
	SoilType string     `json:"soil_type"`
	Range    ValueRange `json:"range"`
}

// ConstituentGuidance carries proportion ranges (% by mass) for the
// secondary constituents of a description, one entry per constituent.
type ConstituentGuidance struct {
	Constituents []ConstituentEntry `json:"constituents"`
	Confidence   float64            `json:"confidence"`
}

// SoilDescription is the structured form of one parsed description. It is
// created by Parse, mutated in place only by Validate, and immutable
// afterwards. Optional fields are nil pointers or empty strings and are
// omitted from JSON when absent.
type SoilDescription struct {
	RawDescription        string                 `json:"raw_description"`
	MaterialType          MaterialType           `json:"material_type"`
	Consistency           *Consistency           `json:"consistency,omitempty"`
	Density               *Density               `json:"density,omitempty"`
	PrimarySoilType       *SoilType              `json:"primary_soil_type,omitempty"`
	RockStrength          *RockStrength          `json:"rock_strength,omitempty"`
	WeatheringGrade       *WeatheringGrade       `json:"weathering_grade,omitempty"`
	RockStructure         *RockStructure         `json:"rock_structure,omitempty"`
	PrimaryRockType       *RockType              `json:"primary_rock_type,omitempty"`
	SecondaryConstituents []SecondaryConstituent `json:"secondary_constituents,omitempty"`
	Color                 string                 `json:"color,omitempty"`
	MoistureContent       string                 `json:"moisture_content,omitempty"`
	PlasticityIndex       string                 `json:"plasticity_index,omitempty"`
	ParticleSize          string                 `json:"particle_size,omitempty"`
	StrengthParameters    *StrengthParameters    `json:"strength_parameters,omitempty"`
	ConstituentGuidance   *ConstituentGuidance   `json:"constituent_guidance,omitempty"`
	SpellingCorrections   []SpellingCorrection   `json:"spelling_corrections,omitempty"`
	Warnings              []string               `json:"warnings,omitempty"`
	IsValid               bool                   `json:"is_valid"`
	Confidence            float64                `json:"confidence"`

	// validated guards Validate against double application.
	validated bool
}

// Severity grades an anomaly: high > medium > low.
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

func severityRank(s Severity) int {
	switch s {
	case SeverityHigh:
		return 3
	case SeverityMedium:
		return 2
	case SeverityLow:
		return 1
	}
	return 0
}

// AnomalyType classifies a semantic anomaly.
type AnomalyType string

const (
	AnomalyMismatchedStrength    AnomalyType = "mismatched_strength_descriptor"
	AnomalyMissingStrength       AnomalyType = "missing_strength_descriptor"
	AnomalyConflictingProperties AnomalyType = "conflicting_properties"
	AnomalyUnusualConstituents   AnomalyType = "unusual_constituent_combination"
	AnomalyExcessiveConstituents AnomalyType = "excessive_constituents"
	AnomalyDuplicateConstituents AnomalyType = "duplicate_constituents"
	AnomalySpellingCorrection    AnomalyType = "spelling_correction"
)

// Anomaly is one semantically implausible finding about a description.
type Anomaly struct {
	Type        AnomalyType `json:"anomaly_type"`
	Severity    Severity    `json:"severity"`
	Description string      `json:"description"`
	Suggestion  string      `json:"suggestion,omitempty"`
}

// AnomalyResult is the report of a DetectAnomalies pass. It is a fresh value
// per call and is never merged into the SoilDescription it audits.
type AnomalyResult struct {
	Anomalies       []Anomaly `json:"anomalies"`
	HasAnomalies    bool      `json:"has_anomalies"`
	OverallSeverity Severity  `json:"overall_severity,omitempty"`
}
