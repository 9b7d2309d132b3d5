package lithoparse

import (
	"fmt"
	"strings"
)

// DetectAnomalies runs a read-only semantic audit over a description and
// returns a fresh report. It never mutates the description and its findings
// are advisory: they overlap the validator's rules deliberately, but carry
// severities and suggestions for user-facing diagnostics instead of
// adjusting confidence.
func DetectAnomalies(d *SoilDescription) *AnomalyResult {
	result := &AnomalyResult{}
	if d == nil {
		return result
	}

	add := func(t AnomalyType, sev Severity, description, suggestion string) {
		result.Anomalies = append(result.Anomalies, Anomaly{
			Type:        t,
			Severity:    sev,
			Description: description,
			Suggestion:  suggestion,
		})
	}

	if d.MaterialType == MaterialTypeSoil && d.PrimarySoilType != nil {
		st := *d.PrimarySoilType
		if st.IsCohesive() && d.Density != nil {
			add(AnomalyMismatchedStrength, SeverityHigh,
				fmt.Sprintf("density descriptor %q on cohesive soil %s", *d.Density, st),
				"use a consistency descriptor (very soft .. hard)")
		}
		if st.IsGranular() && d.Consistency != nil {
			add(AnomalyMismatchedStrength, SeverityHigh,
				fmt.Sprintf("consistency descriptor %q on granular soil %s", *d.Consistency, st),
				"use a density descriptor (very loose .. very dense)")
		}
		if st.IsCohesive() && d.Consistency == nil {
			add(AnomalyMissingStrength, SeverityMedium,
				fmt.Sprintf("cohesive soil %s without a consistency descriptor", st), "")
		}
		if st.IsGranular() && d.Density == nil {
			add(AnomalyMissingStrength, SeverityMedium,
				fmt.Sprintf("granular soil %s without a density descriptor", st), "")
		}
	}

	if d.Consistency != nil && d.Density != nil {
		add(AnomalyConflictingProperties, SeverityHigh,
			fmt.Sprintf("both consistency (%s) and density (%s) present", *d.Consistency, *d.Density), "")
	}

	detectConstituentAnomalies(d, add)

	for _, sc := range d.SpellingCorrections {
		add(AnomalySpellingCorrection, SeverityLow,
			fmt.Sprintf("%q was corrected to %q (similarity %.2f)", sc.Original, sc.Corrected, sc.SimilarityScore), "")
	}

	result.HasAnomalies = len(result.Anomalies) > 0
	for _, a := range result.Anomalies {
		if severityRank(a.Severity) > severityRank(result.OverallSeverity) {
			result.OverallSeverity = a.Severity
		}
	}
	return result
}

func detectConstituentAnomalies(d *SoilDescription, add func(AnomalyType, Severity, string, string)) {
	// A "very" qualified constituent that geologically outranks the primary
	// type suggests the description is inverted: "very clayey SAND" is
	// usually a sandy CLAY.
	if d.PrimarySoilType != nil {
		primary := *d.PrimarySoilType
		primaryRank := soilDominance[strings.ToLower(primary.String())]
		for _, sc := range d.SecondaryConstituents {
			if sc.Amount != "very" {
				continue
			}
			if soilDominance[sc.SoilType] > primaryRank {
				suggestion := ""
				if adj, ok := soilTypeAdjectives[primary]; ok {
					suggestion = fmt.Sprintf("consider reclassifying as %s %s", adj, strings.ToUpper(sc.SoilType))
				}
				add(AnomalyUnusualConstituents, SeverityMedium,
					fmt.Sprintf("very %s constituent outranks primary type %s", constituentAdjective(sc.SoilType), primary),
					suggestion)
			}
		}
	}

	if len(d.SecondaryConstituents) > 3 {
		add(AnomalyExcessiveConstituents, SeverityLow,
			fmt.Sprintf("%d secondary constituents; more than 3 is rarely a plausible field description", len(d.SecondaryConstituents)), "")
	}

	seen := make(map[string]string, len(d.SecondaryConstituents))
	for _, sc := range d.SecondaryConstituents {
		if prev, ok := seen[sc.SoilType]; ok && prev != sc.Amount {
			add(AnomalyDuplicateConstituents, SeverityLow,
				fmt.Sprintf("constituent %q appears with conflicting amounts (%q and %q)",
					sc.SoilType, displayAmount(prev), displayAmount(sc.Amount)), "")
		} else {
			seen[sc.SoilType] = sc.Amount
		}
	}
}

func constituentAdjective(soilName string) string {
	for adj, st := range constituentAdjectives {
		if lowercaseSoilName(st) == soilName {
			return adj
		}
	}
	return soilName
}

func displayAmount(amount string) string {
	if amount == "" {
		return "unqualified"
	}
	return amount
}
