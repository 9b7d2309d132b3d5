package lithoparse

import (
	"sort"
	"strings"
)

// vocabEntry maps a normalized vocabulary phrase to its token kind and,
// where the phrase names an enum value, that value's ordinal. Text-valued
// kinds (color, moisture, plasticity, particle size) carry -1.
type vocabEntry struct {
	kind  TokenKind
	value int
}

var (
	// vocabulary is keyed by lowercase phrase. Built once at process start
	// and read-only afterwards.
	vocabulary map[string]vocabEntry

	// maxPhraseWords is the longest phrase in the vocabulary, in words.
	maxPhraseWords int

	// fuzzyCandidates holds the single-word vocabulary terms used as
	// correction targets, sorted for deterministic tie-breaking.
	fuzzyCandidates []string
)

var colorTerms = []string{
	"brown", "grey", "gray", "red", "yellow", "orange", "black", "white",
	"green", "blue", "dark brown", "light brown", "dark grey", "light grey",
	"reddish brown", "yellowish brown", "greenish grey", "bluish grey",
}

var moistureTerms = []string{"dry", "damp", "moist", "wet", "saturated"}

var plasticityTerms = []string{
	"non-plastic", "low plasticity", "intermediate plasticity", "high plasticity",
}

var particleSizeTerms = []string{
	"fine", "medium", "coarse", "fine to medium", "medium to coarse", "fine to coarse",
}

var proportionTerms = []string{"slightly", "moderately", "very"}

// constituentAdjectives maps an adjective to the soil type it implies.
var constituentAdjectives = map[string]SoilType{
	"sandy":    SoilTypeSand,
	"silty":    SoilTypeSilt,
	"clayey":   SoilTypeClay,
	"gravelly": SoilTypeGravel,
	"peaty":    SoilTypePeat,
}

// soilTypeAdjectives is the inverse of constituentAdjectives, used when
// suggesting a reclassified description.
var soilTypeAdjectives = map[SoilType]string{
	SoilTypeSand:   "sandy",
	SoilTypeSilt:   "silty",
	SoilTypeClay:   "clayey",
	SoilTypeGravel: "gravelly",
	SoilTypePeat:   "peaty",
}

// soilDominance ranks soil types by fines dominance for the constituent
// reclassification heuristic: a "very" qualified constituent that outranks
// the primary type suggests the description is inverted.
var soilDominance = map[string]int{
	"clay":    4,
	"silt":    3,
	"sand":    2,
	"gravel":  1,
	"peat":    0,
	"organic": 0,
}

func init() {
	vocabulary = make(map[string]vocabEntry)

	add := func(term string, kind TokenKind, value int) {
		key := strings.ToLower(term)
		vocabulary[key] = vocabEntry{kind: kind, value: value}
		if n := len(strings.Fields(key)); n > maxPhraseWords {
			maxPhraseWords = n
		}
	}

	for i, name := range consistencyNames {
		kind := TokenConsistency
		if Consistency(i).IsRange() {
			kind = TokenConsistencyRange
		}
		add(name, kind, i)
	}
	for i, name := range densityNames {
		add(name, TokenDensity, i)
	}
	for i, name := range rockStrengthNames {
		add(name, TokenRockStrength, i)
	}
	for i, name := range soilTypeNames {
		add(name, TokenSoilType, i)
	}
	for i, name := range rockTypeNames {
		add(name, TokenRockType, i)
	}
	for i, name := range weatheringGradeNames {
		add(name, TokenWeatheringGrade, i)
	}
	for i, name := range rockStructureNames {
		add(name, TokenRockStructure, i)
	}
	for _, name := range proportionTerms {
		add(name, TokenProportion, -1)
	}
	for adj, st := range constituentAdjectives {
		add(adj, TokenAdjective, int(st))
	}
	for _, name := range colorTerms {
		add(name, TokenColor, -1)
	}
	for _, name := range moistureTerms {
		add(name, TokenMoistureContent, -1)
	}
	for _, name := range plasticityTerms {
		add(name, TokenPlasticityIndex, -1)
	}
	for _, name := range particleSizeTerms {
		add(name, TokenParticleSize, -1)
	}

	for term := range vocabulary {
		if !strings.Contains(term, " ") {
			fuzzyCandidates = append(fuzzyCandidates, term)
		}
	}
	sort.Strings(fuzzyCandidates)
}

// VocabularyTerms returns every known vocabulary phrase in lowercase,
// sorted. The slice is a copy; callers may modify it freely.
func VocabularyTerms() []string {
	terms := make([]string, 0, len(vocabulary))
	for term := range vocabulary {
		terms = append(terms, term)
	}
	sort.Strings(terms)
	return terms
}
