package lithoparse

import "strings"

// Confidence decay factors applied by the extractor. Penalties compound
// multiplicatively so that repeated defects never drive confidence
// negative.
const (
	penaltyUnknownToken    = 0.80
	penaltyCorrection      = 0.95
	penaltyMissingField    = 0.90
	penaltyDefaultMaterial = 0.50

	emptyInputConfidence = 0.05
)

// Parse extracts a structured description from free text. It is a pure
// function of the input and the static vocabulary tables, never fails, and
// always returns a validated description: unparseable fragments lower the
// confidence score instead of raising errors.
func Parse(text string) *SoilDescription {
	desc := &SoilDescription{
		RawDescription: text,
		MaterialType:   MaterialTypeSoil,
		IsValid:        true,
		Confidence:     1.0,
	}

	// 1. Tokenize, fuzzy-correcting unrecognized words.
	tokens, corrections := tokenize(text)
	desc.SpellingCorrections = corrections
	if len(tokens) == 0 {
		desc.Confidence = emptyInputConfidence
		Validate(desc)
		return desc
	}

	// 2. Classify the material from the token kinds present.
	soilEvidence, rockEvidence := countEvidence(tokens)
	if rockEvidence > soilEvidence {
		desc.MaterialType = MaterialTypeRock
	}

	// 3. Assign fields from the token stream.
	unknown := assignFields(desc, tokens)

	// 4. Attach quantitative guidance from the lookup tables.
	desc.StrengthParameters = lookupStrength(desc)
	desc.ConstituentGuidance = lookupConstituents(desc)

	// 5. Score the extraction.
	conf := 1.0
	for i := 0; i < unknown; i++ {
		conf *= penaltyUnknownToken
	}
	for range corrections {
		conf *= penaltyCorrection
	}
	if desc.MaterialType == MaterialTypeSoil && desc.PrimarySoilType != nil {
		st := *desc.PrimarySoilType
		if st.IsCohesive() && desc.Consistency == nil {
			conf *= penaltyMissingField
		}
		if st.IsGranular() && desc.Density == nil {
			conf *= penaltyMissingField
		}
	}
	if soilEvidence == 0 && rockEvidence == 0 {
		conf *= penaltyDefaultMaterial
	}
	desc.Confidence = conf

	// 6. Cross-field validation always runs before the result is returned.
	Validate(desc)
	return desc
}

// countEvidence tallies tokens whose kind can only occur in one material
// grammar. Adjectives, colors and the like are common to both and carry no
// vote.
func countEvidence(tokens []lexToken) (soil, rock int) {
	for _, t := range tokens {
		switch t.Kind {
		case TokenSoilType, TokenConsistency, TokenConsistencyRange, TokenDensity, TokenDensityRange:
			soil++
		case TokenRockType, TokenRockStrength, TokenWeatheringGrade, TokenRockStructure:
			rock++
		}
	}
	return soil, rock
}

// assignFields walks the token stream once, binding the first occurrence of
// each singleton field and pairing proportion qualifiers with the adjective
// immediately following them. Primary types are gated by the resolved
// material; strength descriptors are assigned regardless so the validator
// can flag descriptors on the wrong material. Returns the unknown-token
// count.
func assignFields(desc *SoilDescription, tokens []lexToken) int {
	unknown := 0

	for i, tok := range tokens {
		switch tok.Kind {
		case TokenConsistency, TokenConsistencyRange:
			if desc.Consistency == nil {
				c := Consistency(tok.value)
				desc.Consistency = &c
			}
		case TokenDensity, TokenDensityRange:
			if desc.Density == nil {
				d := Density(tok.value)
				desc.Density = &d
			}
		case TokenSoilType:
			if desc.MaterialType == MaterialTypeSoil && desc.PrimarySoilType == nil {
				st := SoilType(tok.value)
				desc.PrimarySoilType = &st
			}
		case TokenRockType:
			if desc.MaterialType == MaterialTypeRock && desc.PrimaryRockType == nil {
				rt := RockType(tok.value)
				desc.PrimaryRockType = &rt
			}
		case TokenRockStrength:
			if desc.RockStrength == nil {
				rs := RockStrength(tok.value)
				desc.RockStrength = &rs
			}
		case TokenWeatheringGrade:
			if desc.WeatheringGrade == nil {
				wg := WeatheringGrade(tok.value)
				desc.WeatheringGrade = &wg
			}
		case TokenRockStructure:
			if desc.RockStructure == nil {
				rs := RockStructure(tok.value)
				desc.RockStructure = &rs
			}
		case TokenAdjective:
			amount := ""
			if i > 0 && tokens[i-1].Kind == TokenProportion {
				amount = tokens[i-1].canonical
			}
			desc.SecondaryConstituents = append(desc.SecondaryConstituents, SecondaryConstituent{
				Amount:   amount,
				SoilType: lowercaseSoilName(SoilType(tok.value)),
			})
		case TokenProportion:
			// Consumed by the adjective that follows it, if any.
		case TokenColor:
			if desc.Color == "" {
				desc.Color = tok.canonical
			}
		case TokenMoistureContent:
			if desc.MoistureContent == "" {
				desc.MoistureContent = tok.canonical
			}
		case TokenPlasticityIndex:
			if desc.PlasticityIndex == "" {
				desc.PlasticityIndex = tok.canonical
			}
		case TokenParticleSize:
			if desc.ParticleSize == "" {
				desc.ParticleSize = tok.canonical
			}
		case TokenUnknown:
			unknown++
		}
	}
	return unknown
}

// lowercaseSoilName renders a soil type the way constituents record it:
// soilTypeNames is uppercase for primary-type display.
func lowercaseSoilName(st SoilType) string {
	if int(st) < len(soilTypeNames) {
		return strings.ToLower(soilTypeNames[st])
	}
	return "unknown"
}
