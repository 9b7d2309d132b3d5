package lithoparse

import "strings"

// defaultFuzzyThreshold is the minimum similarity ratio for a fuzzy match
// to be accepted. The comparison is inclusive.
const defaultFuzzyThreshold = 0.8

// misspellings is the curated table of field-log typos seen in practice.
// A hit here is authoritative and bypasses the similarity threshold; the
// recorded similarity score is still the true ratio between the pair.
// Every value is a single-word vocabulary term.
var misspellings = map[string]string{
	// soil types
	"clai":    "clay",
	"caly":    "clay",
	"cley":    "clay",
	"klay":    "clay",
	"clya":    "clay",
	"sit":     "silt",
	"slit":    "silt",
	"sillt":   "silt",
	"siltt":   "silt",
	"snad":    "sand",
	"sandd":   "sand",
	"sannd":   "sand",
	"sadn":    "sand",
	"gravle":  "gravel",
	"gravell": "gravel",
	"grvel":   "gravel",
	"garvel":  "gravel",
	"peet":    "peat",
	"paet":    "peat",
	// consistency
	"frim":  "firm",
	"fim":   "firm",
	"firme": "firm",
	"stif":  "stiff",
	"stiif": "stiff",
	"stff":  "stiff",
	"sofft": "soft",
	"soff":  "soft",
	"sotf":  "soft",
	"harde": "hard",
	"hrd":   "hard",
	// density
	"dence":  "dense",
	"densse": "dense",
	"dens":   "dense",
	"lose":   "loose",
	"loos":   "loose",
	"looose": "loose",
	// rock strength
	"waek":   "weak",
	"weeak":  "weak",
	"strog":  "strong",
	"stong":  "strong",
	"storng": "strong",
	// rock types
	"limestome": "limestone",
	"limston":   "limestone",
	"limstone":  "limestone",
	"limesone":  "limestone",
	"sandston":  "sandstone",
	"sanstone":  "sandstone",
	"sandsone":  "sandstone",
	"mudston":   "mudstone",
	"mudstne":   "mudstone",
	"shal":      "shale",
	"granit":    "granite",
	"grannite":  "granite",
	"granitte":  "granite",
	"basal":     "basalt",
	"bassalt":   "basalt",
	"chalke":    "chalk",
	"dolomit":   "dolomite",
	"quartzit":  "quartzite",
	"schists":   "schist",
	"gneis":     "gneiss",
	"marbel":    "marble",
	// structure
	"joined":    "jointed",
	"jointd":    "jointed",
	"fractued":  "fractured",
	"fracured":  "fractured",
	"lamianted": "laminated",
	"masive":    "massive",
	"beded":     "bedded",
	// qualifiers
	"slighly":    "slightly",
	"slightl":    "slightly",
	"sligthly":   "slightly",
	"moderatly":  "moderately",
	"modertly":   "moderately",
	"moderatley": "moderately",
	"vey":        "very",
	"vrey":       "very",
	// adjectives
	"sandey":    "sandy",
	"sandi":     "sandy",
	"siltey":    "silty",
	"sility":    "silty",
	"clayy":     "clayey",
	"clayee":    "clayey",
	"gravely":   "gravelly",
	"gravelley": "gravelly",
	// colors and moisture
	"borwn":     "brown",
	"brwon":     "brown",
	"braun":     "brown",
	"gery":      "grey",
	"gra":       "gray",
	"yelow":     "yellow",
	"organge":   "orange",
	"moistt":    "moist",
	"saturatd":  "saturated",
	"satured":   "saturated",
}

// LevenshteinDistance returns the minimum number of single-rune edits
// (insertions, deletions, substitutions) transforming a into b.
func LevenshteinDistance(a, b string) int {
	ra := []rune(a)
	rb := []rune(b)
	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	prev := make([]int, len(rb)+1)
	cur := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		cur[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			cur[j] = min(prev[j]+1, min(cur[j-1]+1, prev[j-1]+cost))
		}
		prev, cur = cur, prev
	}
	return prev[len(rb)]
}

// SimilarityRatio converts edit distance to a similarity in [0,1]:
// 1 - distance/max(len). Two empty strings are identical.
func SimilarityRatio(a, b string) float64 {
	la := len([]rune(a))
	lb := len([]rune(b))
	longest := la
	if lb > longest {
		longest = lb
	}
	if longest == 0 {
		return 1.0
	}
	return 1.0 - float64(LevenshteinDistance(a, b))/float64(longest)
}

// FuzzyMatch returns the candidate most similar to word, case-insensitively,
// provided its similarity is at least threshold. Ties keep the earlier
// candidate. The returned match preserves the candidate's own casing.
func FuzzyMatch(word string, candidates []string, threshold float64) (string, float64, bool) {
	lower := strings.ToLower(word)

	best := ""
	bestScore := 0.0
	for _, c := range candidates {
		score := SimilarityRatio(lower, strings.ToLower(c))
		if score > bestScore {
			best = c
			bestScore = score
		}
	}
	if best == "" || bestScore < threshold {
		return "", 0, false
	}
	return best, bestScore, true
}

// correctWord resolves a word that failed vocabulary lookup: first through
// the curated misspelling table, then by edit-distance similarity against
// the single-word vocabulary terms.
func correctWord(w string) (string, float64, bool) {
	lower := strings.ToLower(w)
	if canonical, ok := misspellings[lower]; ok {
		return canonical, SimilarityRatio(lower, canonical), true
	}
	return FuzzyMatch(lower, fuzzyCandidates, defaultFuzzyThreshold)
}
