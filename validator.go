package lithoparse

import (
	"fmt"
	"strings"
)

// Validator confidence decay factors, compounded per warning.
const (
	penaltyIncompatibleField = 0.80
	penaltyAbsentDescriptor  = 0.90
)

// Validate enforces the BS 5930 field-compatibility rules on a description
// in place: incompatible descriptor/material combinations append a warning
// and clear IsValid, while missing expected descriptors append a warning
// without invalidating. Each warning decays confidence multiplicatively.
// Parse always validates before returning; calling Validate again is a
// no-op, so validation is idempotent.
func Validate(d *SoilDescription) {
	if d == nil || d.validated {
		return
	}
	d.validated = true

	invalid := false
	factor := 1.0
	warn := func(f float64, format string, args ...any) {
		d.Warnings = append(d.Warnings, fmt.Sprintf(format, args...))
		factor *= f
	}

	if d.MaterialType == MaterialTypeSoil && d.PrimarySoilType != nil {
		st := *d.PrimarySoilType
		switch {
		case st.IsCohesive():
			if d.Density != nil {
				invalid = true
				warn(penaltyIncompatibleField,
					"cohesive soil %s should be described by consistency, not density (%s)",
					st, *d.Density)
			} else if d.Consistency == nil {
				warn(penaltyAbsentDescriptor, "cohesive soil %s has no consistency descriptor", st)
			}
		case st.IsGranular():
			if d.Consistency != nil {
				invalid = true
				warn(penaltyIncompatibleField,
					"granular soil %s should be described by density, not consistency (%s)",
					st, *d.Consistency)
			} else if d.Density == nil {
				warn(penaltyAbsentDescriptor, "granular soil %s has no density descriptor", st)
			}
		}

		if d.PlasticityIndex != "" && !st.IsCohesive() {
			warn(penaltyAbsentDescriptor, "plasticity index (%s) is only applicable to cohesive soils", d.PlasticityIndex)
		}
	}

	if d.MaterialType != MaterialTypeRock {
		if fields := rockOnlyFields(d); len(fields) > 0 {
			invalid = true
			warn(penaltyIncompatibleField, "rock descriptors on soil material: %s", strings.Join(fields, ", "))
		}
	}

	d.IsValid = !invalid
	d.Confidence = clamp01(d.Confidence * factor)
}

func rockOnlyFields(d *SoilDescription) []string {
	var fields []string
	if d.RockStrength != nil {
		fields = append(fields, fmt.Sprintf("rock strength (%s)", *d.RockStrength))
	}
	if d.WeatheringGrade != nil {
		fields = append(fields, fmt.Sprintf("weathering grade (%s)", *d.WeatheringGrade))
	}
	if d.RockStructure != nil {
		fields = append(fields, fmt.Sprintf("rock structure (%s)", *d.RockStructure))
	}
	return fields
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
