package lithoparse

// proportionBands maps an amount qualifier to its percentage-by-mass band.
// The bands are fixed by the qualifier alone; the constituent soil type
// does not shift them. An empty amount is an unqualified adjective such as
// plain "sandy".
var proportionBands = map[string]ValueRange{
	"":           {LowerBound: 12, UpperBound: 30},
	"slightly":   {LowerBound: 5, UpperBound: 12},
	"moderately": {LowerBound: 12, UpperBound: 25},
	"very":       {LowerBound: 25, UpperBound: 45},
}

const (
	constituentConfidenceQualified   = 0.90
	constituentConfidenceUnqualified = 0.70
	constituentConfidenceCrowded     = 0.50
)

// lookupConstituents returns proportion guidance for the description's
// secondary constituents, one entry per constituent in input order. It
// returns nil when there are no constituents or no primary soil type to
// anchor them to. Confidence reflects how well the combination matches
// known co-occurrence patterns: qualified amounts score highest, and more
// than three constituents is an implausible field description.
func lookupConstituents(d *SoilDescription) *ConstituentGuidance {
	if len(d.SecondaryConstituents) == 0 || d.PrimarySoilType == nil {
		return nil
	}

	entries := make([]ConstituentEntry, 0, len(d.SecondaryConstituents))
	unqualified := false
	for _, sc := range d.SecondaryConstituents {
		band, ok := proportionBands[sc.Amount]
		if !ok {
			band = proportionBands[""]
		}
		if sc.Amount == "" {
			unqualified = true
		}
		entries = append(entries, ConstituentEntry{SoilType: sc.SoilType, Range: band})
	}

	confidence := constituentConfidenceQualified
	if unqualified {
		confidence = constituentConfidenceUnqualified
	}
	if len(entries) > 3 {
		confidence = constituentConfidenceCrowded
	}

	return &ConstituentGuidance{Constituents: entries, Confidence: confidence}
}
