package lithoparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCohesiveStrengthBands(t *testing.T) {
	tests := []struct {
		consistency Consistency
		wantLower   float64
		wantUpper   float64
		wantTypical float64
	}{
		{ConsistencyVerySoft, 0, 20, 10},
		{ConsistencySoft, 20, 40, 30},
		{ConsistencyFirm, 40, 60, 50},
		{ConsistencyStiff, 75, 150, 100},
		{ConsistencyVeryStiff, 150, 300, 200},
		{ConsistencyHard, 300, 600, 400},
	}

	for _, tt := range tests {
		t.Run(tt.consistency.String(), func(t *testing.T) {
			st := SoilTypeClay
			c := tt.consistency
			sp := lookupStrength(&SoilDescription{
				MaterialType:    MaterialTypeSoil,
				PrimarySoilType: &st,
				Consistency:     &c,
			})
			require.NotNil(t, sp)
			assert.Equal(t, StrengthParameterUndrainedShear, sp.ParameterType)
			assert.Equal(t, tt.wantLower, sp.Range.LowerBound)
			assert.Equal(t, tt.wantUpper, sp.Range.UpperBound)
			require.NotNil(t, sp.Range.TypicalValue)
			assert.Equal(t, tt.wantTypical, *sp.Range.TypicalValue)
			assert.Equal(t, strengthConfidenceSingle, sp.Confidence)
		})
	}
}

func TestCohesiveStrengthMonotonicity(t *testing.T) {
	// Lower bounds must strictly increase with rank so a stronger descriptor
	// always dominates a weaker one.
	for i := 1; i < len(undrainedShearBands); i++ {
		assert.Greater(t, undrainedShearBands[i].lower, undrainedShearBands[i-1].lower,
			"undrained shear band %d", i)
	}
	for i := 1; i < len(sptBands); i++ {
		assert.Greater(t, sptBands[i].lower, sptBands[i-1].lower, "SPT band %d", i)
	}
	for i := 1; i < len(frictionAngleBands); i++ {
		assert.Greater(t, frictionAngleBands[i].lower, frictionAngleBands[i-1].lower,
			"friction angle band %d", i)
	}
	for i := 1; i < len(ucsBands); i++ {
		assert.Greater(t, ucsBands[i].lower, ucsBands[i-1].lower, "UCS band %d", i)
	}
}

func TestBandInvariants(t *testing.T) {
	check := func(name string, bands []strengthBand) {
		for i, b := range bands {
			assert.Less(t, b.lower, b.upper, "%s band %d bounds", name, i)
			assert.GreaterOrEqual(t, b.typical, b.lower, "%s band %d typical low", name, i)
			assert.LessOrEqual(t, b.typical, b.upper, "%s band %d typical high", name, i)
		}
	}
	check("undrained shear", undrainedShearBands)
	check("SPT", sptBands)
	check("friction angle", frictionAngleBands)
	check("UCS", ucsBands)
}

func TestRangeConsistencySpansEndpoints(t *testing.T) {
	sp := cohesiveStrength(ConsistencyFirmToStiff)
	require.NotNil(t, sp)

	// firm..stiff spans firm's lower bound to stiff's upper bound.
	assert.Equal(t, 40.0, sp.Range.LowerBound)
	assert.Equal(t, 150.0, sp.Range.UpperBound)
	assert.Equal(t, strengthConfidenceRange, sp.Confidence,
		"range descriptors carry less confidence than single values")

	single := cohesiveStrength(ConsistencyFirm)
	assert.Greater(t, single.Confidence, sp.Confidence)
}

func TestSandStrengthUsesSPT(t *testing.T) {
	st := SoilTypeSand
	d := DensityMediumDense
	sp := lookupStrength(&SoilDescription{
		MaterialType:    MaterialTypeSoil,
		PrimarySoilType: &st,
		Density:         &d,
	})
	require.NotNil(t, sp)
	assert.Equal(t, StrengthParameterSPTN, sp.ParameterType)
	assert.Equal(t, 10.0, sp.Range.LowerBound)
	assert.Equal(t, 30.0, sp.Range.UpperBound)
	assert.Equal(t, "blows/300mm", sp.ParameterType.Unit())
}

func TestGravelStrengthUsesFrictionAngle(t *testing.T) {
	st := SoilTypeGravel
	d := DensityDense
	sp := lookupStrength(&SoilDescription{
		MaterialType:    MaterialTypeSoil,
		PrimarySoilType: &st,
		Density:         &d,
	})
	require.NotNil(t, sp)
	assert.Equal(t, StrengthParameterFrictionAngle, sp.ParameterType)
	assert.Equal(t, 35.0, sp.Range.LowerBound)
	assert.Equal(t, 42.0, sp.Range.UpperBound)
	assert.Equal(t, "degrees", sp.ParameterType.Unit())
}

func TestRockStrengthUsesUCS(t *testing.T) {
	rs := RockStrengthStrong
	sp := lookupStrength(&SoilDescription{
		MaterialType: MaterialTypeRock,
		RockStrength: &rs,
	})
	require.NotNil(t, sp)
	assert.Equal(t, StrengthParameterUCS, sp.ParameterType)
	assert.Equal(t, 50.0, sp.Range.LowerBound)
	assert.Equal(t, 100.0, sp.Range.UpperBound)
	assert.Equal(t, "MPa", sp.ParameterType.Unit())
}

func TestStrengthLookupInapplicable(t *testing.T) {
	clay := SoilTypeClay
	peat := SoilTypePeat
	dens := DensityDense

	tests := []struct {
		name string
		desc SoilDescription
	}{
		{"soil without primary type", SoilDescription{MaterialType: MaterialTypeSoil}},
		{"cohesive without consistency", SoilDescription{MaterialType: MaterialTypeSoil, PrimarySoilType: &clay}},
		{"peat has no strength table", SoilDescription{MaterialType: MaterialTypeSoil, PrimarySoilType: &peat, Density: &dens}},
		{"rock without strength", SoilDescription{MaterialType: MaterialTypeRock}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Nil(t, lookupStrength(&tt.desc))
		})
	}
}

func TestValueRangeMidpoint(t *testing.T) {
	typical := 50.0
	withTypical := ValueRange{LowerBound: 40, UpperBound: 60, TypicalValue: &typical}
	assert.Equal(t, 50.0, withTypical.Midpoint())

	without := ValueRange{LowerBound: 40, UpperBound: 60}
	assert.Equal(t, 50.0, without.Midpoint())
}
