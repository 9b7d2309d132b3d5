package lithoparse

import "testing"

func TestProportionBands(t *testing.T) {
	tests := []struct {
		amount    string
		wantLower float64
		wantUpper float64
	}{
		{"slightly", 5, 12},
		{"moderately", 12, 25},
		{"very", 25, 45},
		{"", 12, 30},
	}

	clay := SoilTypeClay
	for _, tt := range tests {
		name := tt.amount
		if name == "" {
			name = "unqualified"
		}
		t.Run(name, func(t *testing.T) {
			g := lookupConstituents(&SoilDescription{
				MaterialType:          MaterialTypeSoil,
				PrimarySoilType:       &clay,
				SecondaryConstituents: []SecondaryConstituent{{Amount: tt.amount, SoilType: "sand"}},
			})
			if g == nil {
				t.Fatal("lookupConstituents returned nil")
			}
			if len(g.Constituents) != 1 {
				t.Fatalf("Constituents = %v, want 1", g.Constituents)
			}
			e := g.Constituents[0]
			if e.SoilType != "sand" {
				t.Errorf("SoilType = %q, want sand", e.SoilType)
			}
			if e.Range.LowerBound != tt.wantLower || e.Range.UpperBound != tt.wantUpper {
				t.Errorf("Range = [%v, %v], want [%v, %v]",
					e.Range.LowerBound, e.Range.UpperBound, tt.wantLower, tt.wantUpper)
			}
		})
	}
}

func TestConstituentConfidence(t *testing.T) {
	clay := SoilTypeClay

	qualified := lookupConstituents(&SoilDescription{
		PrimarySoilType:       &clay,
		SecondaryConstituents: []SecondaryConstituent{{Amount: "slightly", SoilType: "sand"}},
	})
	if qualified.Confidence != constituentConfidenceQualified {
		t.Errorf("qualified confidence = %v, want %v", qualified.Confidence, constituentConfidenceQualified)
	}

	unqualified := lookupConstituents(&SoilDescription{
		PrimarySoilType:       &clay,
		SecondaryConstituents: []SecondaryConstituent{{Amount: "", SoilType: "sand"}},
	})
	if unqualified.Confidence != constituentConfidenceUnqualified {
		t.Errorf("unqualified confidence = %v, want %v", unqualified.Confidence, constituentConfidenceUnqualified)
	}

	crowded := lookupConstituents(&SoilDescription{
		PrimarySoilType: &clay,
		SecondaryConstituents: []SecondaryConstituent{
			{Amount: "slightly", SoilType: "sand"},
			{Amount: "slightly", SoilType: "silt"},
			{Amount: "slightly", SoilType: "gravel"},
			{Amount: "slightly", SoilType: "peat"},
		},
	})
	if crowded.Confidence != constituentConfidenceCrowded {
		t.Errorf("crowded confidence = %v, want %v", crowded.Confidence, constituentConfidenceCrowded)
	}
	if len(crowded.Constituents) != 4 {
		t.Errorf("Constituents = %d entries, want 4", len(crowded.Constituents))
	}
}

func TestConstituentGuidanceAbsent(t *testing.T) {
	clay := SoilTypeClay

	if g := lookupConstituents(&SoilDescription{PrimarySoilType: &clay}); g != nil {
		t.Errorf("guidance without constituents = %v, want nil", g)
	}

	if g := lookupConstituents(&SoilDescription{
		SecondaryConstituents: []SecondaryConstituent{{SoilType: "sand"}},
	}); g != nil {
		t.Errorf("guidance without primary type = %v, want nil", g)
	}
}
