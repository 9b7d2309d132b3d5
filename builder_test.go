package lithoparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSoilBuilder(t *testing.T) {
	text := NewSoilBuilder(SoilTypeClay).
		WithConsistency(ConsistencyStiff).
		WithColor("brown").
		WithSecondaryConstituent("slightly", "sand").
		Build()

	assert.Equal(t, "Stiff brown slightly sandy CLAY", text)
}

func TestRockBuilder(t *testing.T) {
	text := NewRockBuilder(RockTypeLimestone).
		WithRockStrength(RockStrengthStrong).
		WithWeathering(WeatheringGradeSlightly).
		WithStructure(RockStructureJointed).
		Build()

	assert.Equal(t, "Strong slightly weathered jointed LIMESTONE", text)
}

func TestBuilderFormats(t *testing.T) {
	b := NewSoilBuilder(SoilTypeClay).
		WithConsistency(ConsistencyFirm).
		WithColor("grey").
		WithMoisture("moist")

	assert.Equal(t, "Firm grey moist CLAY", b.BuildFormat(FormatStandard))
	assert.Equal(t, "Firm CLAY", b.BuildFormat(FormatConcise))
	assert.Equal(t, "Firm, grey, moist CLAY", b.BuildFormat(FormatBS5930))
}

func TestBuilderGranularSoil(t *testing.T) {
	text := NewSoilBuilder(SoilTypeSand).
		WithDensity(DensityMediumDense).
		WithParticleSize("fine to medium").
		Build()

	assert.Equal(t, "Medium dense fine to medium SAND", text)
}

func TestBuildAndParse(t *testing.T) {
	desc := NewSoilBuilder(SoilTypeClay).
		WithConsistency(ConsistencyStiff).
		WithPlasticity("high plasticity").
		BuildAndParse()

	require.NotNil(t, desc)
	assert.True(t, desc.IsValid)
	require.NotNil(t, desc.Consistency)
	assert.Equal(t, ConsistencyStiff, *desc.Consistency)
	assert.Equal(t, "high plasticity", desc.PlasticityIndex)
	require.NotNil(t, desc.StrengthParameters)
	assert.Equal(t, StrengthParameterUndrainedShear, desc.StrengthParameters.ParameterType)
}

func TestBuilderReusable(t *testing.T) {
	b := NewSoilBuilder(SoilTypeClay).WithConsistency(ConsistencyFirm)

	first := b.Build()
	second := b.Build()
	assert.Equal(t, first, second)

	// Building must not leak state into later BuildAndParse calls.
	desc := b.BuildAndParse()
	assert.Equal(t, first, Generate(desc, FormatStandard))
}
