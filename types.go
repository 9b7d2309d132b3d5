package lithoparse

import "strings"

// MaterialType distinguishes soil from rock material.
type MaterialType int

const (
	MaterialTypeSoil MaterialType = iota
	MaterialTypeRock
)

var materialTypeNames = []string{"soil", "rock"}

func (m MaterialType) String() string {
	if int(m) < len(materialTypeNames) {
		return materialTypeNames[m]
	}
	return "unknown"
}

// Consistency is the qualitative strength scale for cohesive soils.
// Values up to ConsistencyHard form the base scale in increasing order of
// strength; the remaining values are the BS 5930 range descriptors.
type Consistency int

const (
	ConsistencyVerySoft Consistency = iota
	ConsistencySoft
	ConsistencyFirm
	ConsistencyStiff
	ConsistencyVeryStiff
	ConsistencyHard
	ConsistencySoftToFirm
	ConsistencyFirmToStiff
	ConsistencyStiffToVeryStiff
)

var consistencyNames = []string{
	"very soft", "soft", "firm", "stiff", "very stiff", "hard",
	"soft to firm", "firm to stiff", "stiff to very stiff",
}

func (c Consistency) String() string {
	if int(c) < len(consistencyNames) {
		return consistencyNames[c]
	}
	return "unknown"
}

// IsRange reports whether c is one of the range descriptors.
func (c Consistency) IsRange() bool {
	return c >= ConsistencySoftToFirm
}

// Density is the qualitative strength scale for granular soils, in
// increasing order of relative density.
type Density int

const (
	DensityVeryLoose Density = iota
	DensityLoose
	DensityMediumDense
	DensityDense
	DensityVeryDense
)

var densityNames = []string{"very loose", "loose", "medium dense", "dense", "very dense"}

func (d Density) String() string {
	if int(d) < len(densityNames) {
		return densityNames[d]
	}
	return "unknown"
}

// RockStrength is the qualitative strength scale for rock, in increasing
// order of unconfined compressive strength.
type RockStrength int

const (
	RockStrengthVeryWeak RockStrength = iota
	RockStrengthWeak
	RockStrengthModeratelyWeak
	RockStrengthModeratelyStrong
	RockStrengthStrong
	RockStrengthVeryStrong
	RockStrengthExtremelyStrong
)

var rockStrengthNames = []string{
	"very weak", "weak", "moderately weak", "moderately strong",
	"strong", "very strong", "extremely strong",
}

func (r RockStrength) String() string {
	if int(r) < len(rockStrengthNames) {
		return rockStrengthNames[r]
	}
	return "unknown"
}

// SoilType is the primary soil type. Rendered uppercase per BS 5930.
type SoilType int

const (
	SoilTypeClay SoilType = iota
	SoilTypeSilt
	SoilTypeSand
	SoilTypeGravel
	SoilTypePeat
	SoilTypeOrganic
)

var soilTypeNames = []string{"CLAY", "SILT", "SAND", "GRAVEL", "PEAT", "ORGANIC"}

func (s SoilType) String() string {
	if int(s) < len(soilTypeNames) {
		return soilTypeNames[s]
	}
	return "unknown"
}

// IsCohesive reports whether the soil's strength is described by
// consistency rather than density.
func (s SoilType) IsCohesive() bool {
	return s == SoilTypeClay || s == SoilTypeSilt
}

// IsGranular reports whether the soil's strength is described by density.
func (s SoilType) IsGranular() bool {
	return s == SoilTypeSand || s == SoilTypeGravel
}

// RockType is the primary rock type. Rendered uppercase per BS 5930.
type RockType int

const (
	RockTypeLimestone RockType = iota
	RockTypeSandstone
	RockTypeMudstone
	RockTypeShale
	RockTypeGranite
	RockTypeBasalt
	RockTypeChalk
	RockTypeDolomite
	RockTypeQuartzite
	RockTypeSlate
	RockTypeSchist
	RockTypeGneiss
	RockTypeMarble
	RockTypeConglomerate
	RockTypeBreccia
)

var rockTypeNames = []string{
	"LIMESTONE", "SANDSTONE", "MUDSTONE", "SHALE", "GRANITE",
	"BASALT", "CHALK", "DOLOMITE", "QUARTZITE", "SLATE",
	"SCHIST", "GNEISS", "MARBLE", "CONGLOMERATE", "BRECCIA",
}

func (r RockType) String() string {
	if int(r) < len(rockTypeNames) {
		return rockTypeNames[r]
	}
	return "unknown"
}

// WeatheringGrade is the rock weathering scale, fresh to completely
// weathered.
type WeatheringGrade int

const (
	WeatheringGradeFresh WeatheringGrade = iota
	WeatheringGradeSlightly
	WeatheringGradeModerately
	WeatheringGradeHighly
	WeatheringGradeCompletely
)

var weatheringGradeNames = []string{
	"fresh", "slightly weathered", "moderately weathered",
	"highly weathered", "completely weathered",
}

func (w WeatheringGrade) String() string {
	if int(w) < len(weatheringGradeNames) {
		return weatheringGradeNames[w]
	}
	return "unknown"
}

// RockStructure describes the mass structure of a rock unit.
type RockStructure int

const (
	RockStructureMassive RockStructure = iota
	RockStructureBedded
	RockStructureJointed
	RockStructureFractured
	RockStructureFoliated
	RockStructureLaminated
)

var rockStructureNames = []string{"massive", "bedded", "jointed", "fractured", "foliated", "laminated"}

func (r RockStructure) String() string {
	if int(r) < len(rockStructureNames) {
		return rockStructureNames[r]
	}
	return "unknown"
}

// StrengthParameterType identifies which engineering parameter a strength
// range refers to.
type StrengthParameterType int

const (
	StrengthParameterUCS StrengthParameterType = iota
	StrengthParameterUndrainedShear
	StrengthParameterSPTN
	StrengthParameterFrictionAngle
)

var strengthParameterNames = []string{
	"UCS", "undrained shear strength", "SPT N-value", "friction angle",
}

var strengthParameterJSONNames = []string{
	"ucs", "undrained_shear_strength", "spt_n_value", "friction_angle",
}

var strengthParameterUnits = []string{"MPa", "kPa", "blows/300mm", "degrees"}

func (s StrengthParameterType) String() string {
	if int(s) < len(strengthParameterNames) {
		return strengthParameterNames[s]
	}
	return "unknown"
}

// Unit returns the measurement unit for the parameter.
func (s StrengthParameterType) Unit() string {
	if int(s) < len(strengthParameterUnits) {
		return strengthParameterUnits[s]
	}
	return ""
}

func enumFromString[T ~int](names []string, s string) (T, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, n := range names {
		if strings.ToLower(n) == s {
			return T(i), true
		}
	}
	return 0, false
}
