package lithoparse

// strengthBand is one row of a strength table. Bands are indexed by the
// ordinal of their qualitative descriptor; lower bounds strictly increase
// with rank so that a stronger descriptor always dominates a weaker one.
type strengthBand struct {
	lower, upper, typical float64
}

// undrainedShearBands: cohesive soils (clay, silt), kPa, indexed by the
// base Consistency scale.
var undrainedShearBands = []strengthBand{
	{0, 20, 10},     // very soft
	{20, 40, 30},    // soft
	{40, 60, 50},    // firm
	{75, 150, 100},  // stiff
	{150, 300, 200}, // very stiff
	{300, 600, 400}, // hard
}

// consistencyRangeEnds maps a range descriptor to the base descriptors it
// spans. The band is the union of the endpoints' bands.
var consistencyRangeEnds = map[Consistency][2]Consistency{
	ConsistencySoftToFirm:       {ConsistencySoft, ConsistencyFirm},
	ConsistencyFirmToStiff:      {ConsistencyFirm, ConsistencyStiff},
	ConsistencyStiffToVeryStiff: {ConsistencyStiff, ConsistencyVeryStiff},
}

// sptBands: sand, SPT N-value (blows/300mm), indexed by Density.
var sptBands = []strengthBand{
	{0, 4, 2},
	{4, 10, 7},
	{10, 30, 20},
	{30, 50, 40},
	{50, 80, 60},
}

// frictionAngleBands: gravel, effective friction angle (degrees), indexed
// by Density.
var frictionAngleBands = []strengthBand{
	{26, 30, 28},
	{28, 32, 30},
	{30, 36, 33},
	{35, 42, 38},
	{40, 48, 44},
}

// ucsBands: rock, unconfined compressive strength (MPa), indexed by
// RockStrength.
var ucsBands = []strengthBand{
	{0.3, 1.25, 0.6},
	{1.25, 5, 3},
	{5, 12.5, 8},
	{12.5, 50, 25},
	{50, 100, 75},
	{100, 200, 150},
	{200, 400, 300},
}

const (
	strengthConfidenceSingle = 0.90
	strengthConfidenceRange  = 0.75
	strengthConfidenceSPT    = 0.85
	strengthConfidencePhi    = 0.80
	strengthConfidenceUCS    = 0.85
)

func (b strengthBand) parameters(pt StrengthParameterType, confidence float64) *StrengthParameters {
	typical := b.typical
	return &StrengthParameters{
		ParameterType: pt,
		Range: ValueRange{
			LowerBound:   b.lower,
			UpperBound:   b.upper,
			TypicalValue: &typical,
		},
		Confidence: confidence,
	}
}

// lookupStrength returns the strength guidance for a description, or nil
// when the descriptor/material combination is structurally inapplicable:
// soils without a usable descriptor, peat and organic soils, rock without a
// rock strength.
func lookupStrength(d *SoilDescription) *StrengthParameters {
	switch d.MaterialType {
	case MaterialTypeRock:
		if d.RockStrength == nil {
			return nil
		}
		r := *d.RockStrength
		if int(r) >= len(ucsBands) {
			return nil
		}
		return ucsBands[r].parameters(StrengthParameterUCS, strengthConfidenceUCS)

	case MaterialTypeSoil:
		if d.PrimarySoilType == nil {
			return nil
		}
		st := *d.PrimarySoilType
		switch {
		case st.IsCohesive() && d.Consistency != nil:
			return cohesiveStrength(*d.Consistency)
		case st == SoilTypeSand && d.Density != nil:
			return sptBands[*d.Density].parameters(StrengthParameterSPTN, strengthConfidenceSPT)
		case st == SoilTypeGravel && d.Density != nil:
			return frictionAngleBands[*d.Density].parameters(StrengthParameterFrictionAngle, strengthConfidencePhi)
		}
	}
	return nil
}

func cohesiveStrength(c Consistency) *StrengthParameters {
	if !c.IsRange() {
		return undrainedShearBands[c].parameters(StrengthParameterUndrainedShear, strengthConfidenceSingle)
	}

	ends := consistencyRangeEnds[c]
	low := undrainedShearBands[ends[0]]
	high := undrainedShearBands[ends[1]]
	band := strengthBand{
		lower:   low.lower,
		upper:   high.upper,
		typical: (low.lower + high.upper) / 2,
	}
	return band.parameters(StrengthParameterUndrainedShear, strengthConfidenceRange)
}
