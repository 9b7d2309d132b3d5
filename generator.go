package lithoparse

import (
	"fmt"
	"math/rand"
	"sort"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Format selects the surface form Generate renders.
type Format int

const (
	// FormatStandard is the full canonical phrase: strength descriptor,
	// color, moisture, plasticity or particle size, constituents, then the
	// uppercase primary type.
	FormatStandard Format = iota
	// FormatConcise drops color, moisture, plasticity and particle size.
	FormatConcise
	// FormatVerbose is standard plus the strength-parameter annotation.
	FormatVerbose
	// FormatBS5930 is the standard ordering with BS 5930 comma separation
	// between qualifiers.
	FormatBS5930
)

var formatNames = []string{"standard", "concise", "verbose", "bs5930"}

func (f Format) String() string {
	if int(f) < len(formatNames) {
		return formatNames[f]
	}
	return "unknown"
}

// ParseFormat resolves a format name, case-insensitively.
func ParseFormat(s string) (Format, error) {
	for i, n := range formatNames {
		if strings.EqualFold(s, n) {
			return Format(i), nil
		}
	}
	return 0, fmt.Errorf("unknown format %q (want standard, concise, verbose or bs5930)", s)
}

// Generate renders a structured description back into text. It is
// deterministic and never fails: fields that are absent are simply
// omitted, so even a bare material type produces output.
func Generate(d *SoilDescription, format Format) string {
	if d == nil {
		return ""
	}

	qualifiers, primary := descriptionParts(d, format)

	var phrase string
	switch {
	case len(qualifiers) == 0:
		phrase = primary
	case format == FormatBS5930:
		phrase = strings.Join(qualifiers, ", ") + " " + primary
	default:
		phrase = strings.Join(qualifiers, " ") + " " + primary
	}
	phrase = strings.TrimSpace(phrase)
	phrase = capitalize(phrase)

	if format == FormatVerbose && d.StrengthParameters != nil {
		phrase += " " + strengthAnnotation(d.StrengthParameters)
	}
	return phrase
}

// GenerateLabel returns just the uppercase primary type token.
func GenerateLabel(d *SoilDescription) string {
	if d == nil {
		return ""
	}
	return primaryType(d)
}

// GenerateVariations enumerates one standard-format string per value of the
// qualitative descriptor scale that applies to the description's material:
// consistency for cohesive soils, density for granular soils, rock strength
// for rock. All other fields are held fixed, so the result's length equals
// the scale's cardinality.
func GenerateVariations(d *SoilDescription) []string {
	if d == nil {
		return nil
	}

	switch scale := descriptorScale(d); scale {
	case TokenRockStrength:
		out := make([]string, 0, len(rockStrengthNames))
		for i := range rockStrengthNames {
			v := *d
			rs := RockStrength(i)
			v.RockStrength = &rs
			out = append(out, Generate(&v, FormatStandard))
		}
		return out
	case TokenDensity:
		out := make([]string, 0, len(densityNames))
		for i := range densityNames {
			v := *d
			dn := Density(i)
			v.Density = &dn
			v.Consistency = nil
			out = append(out, Generate(&v, FormatStandard))
		}
		return out
	default:
		out := make([]string, 0, len(consistencyNames))
		for i := range consistencyNames {
			v := *d
			c := Consistency(i)
			v.Consistency = &c
			v.Density = nil
			out = append(out, Generate(&v, FormatStandard))
		}
		return out
	}
}

// GenerateRandom deterministically samples a syntactically valid
// description from the full vocabulary. The seed is the sole source of
// randomness: equal seeds produce equal output.
func GenerateRandom(seed int64) string {
	r := rand.New(rand.NewSource(seed))
	d := &SoilDescription{IsValid: true, Confidence: 1}

	if r.Intn(2) == 0 {
		d.MaterialType = MaterialTypeRock
		rs := RockStrength(r.Intn(len(rockStrengthNames)))
		rt := RockType(r.Intn(len(rockTypeNames)))
		d.RockStrength = &rs
		d.PrimaryRockType = &rt
		if r.Intn(10) < 6 {
			wg := WeatheringGrade(r.Intn(len(weatheringGradeNames)))
			d.WeatheringGrade = &wg
		}
		if r.Intn(2) == 0 {
			st := RockStructure(r.Intn(len(rockStructureNames)))
			d.RockStructure = &st
		}
		if r.Intn(2) == 0 {
			d.Color = colorTerms[r.Intn(len(colorTerms))]
		}
		return Generate(d, FormatStandard)
	}

	d.MaterialType = MaterialTypeSoil
	st := SoilType(r.Intn(int(SoilTypeGravel) + 1)) // clay..gravel carry descriptors
	d.PrimarySoilType = &st
	if st.IsCohesive() {
		c := Consistency(r.Intn(len(consistencyNames)))
		d.Consistency = &c
	} else {
		dn := Density(r.Intn(len(densityNames)))
		d.Density = &dn
	}
	if r.Intn(10) < 7 {
		d.Color = colorTerms[r.Intn(len(colorTerms))]
	}
	if r.Intn(2) == 0 {
		d.MoistureContent = moistureTerms[r.Intn(len(moistureTerms))]
	}
	for n := r.Intn(3); n > 0; n-- {
		adj := randomConstituent(r, st)
		if adj == "" {
			break
		}
		amounts := []string{"", "slightly", "moderately", "very"}
		d.SecondaryConstituents = append(d.SecondaryConstituents, SecondaryConstituent{
			Amount:   amounts[r.Intn(len(amounts))],
			SoilType: adj,
		})
	}
	return Generate(d, FormatStandard)
}

// descriptorScale picks the qualitative scale that varies for a material:
// rock strength for rock, density for granular soils, consistency otherwise.
func descriptorScale(d *SoilDescription) TokenKind {
	if d.MaterialType == MaterialTypeRock {
		return TokenRockStrength
	}
	if d.PrimarySoilType != nil && d.PrimarySoilType.IsGranular() {
		return TokenDensity
	}
	return TokenConsistency
}

func randomConstituent(r *rand.Rand, primary SoilType) string {
	options := make([]string, 0, len(soilTypeAdjectives))
	for st := range soilTypeAdjectives {
		if st != primary {
			options = append(options, lowercaseSoilName(st))
		}
	}
	if len(options) == 0 {
		return ""
	}
	// Map iteration order is random; sort for seed determinism.
	sort.Strings(options)
	return options[r.Intn(len(options))]
}

func descriptionParts(d *SoilDescription, format Format) (qualifiers []string, primary string) {
	if s := strengthDescriptor(d); s != "" {
		qualifiers = append(qualifiers, s)
	}
	if d.MaterialType == MaterialTypeRock {
		if d.WeatheringGrade != nil && *d.WeatheringGrade != WeatheringGradeFresh {
			qualifiers = append(qualifiers, d.WeatheringGrade.String())
		}
		if d.RockStructure != nil {
			qualifiers = append(qualifiers, d.RockStructure.String())
		}
	}
	if format != FormatConcise {
		if d.Color != "" {
			qualifiers = append(qualifiers, d.Color)
		}
		if d.MoistureContent != "" {
			qualifiers = append(qualifiers, d.MoistureContent)
		}
		if d.PlasticityIndex != "" {
			qualifiers = append(qualifiers, d.PlasticityIndex)
		}
		if d.ParticleSize != "" {
			qualifiers = append(qualifiers, d.ParticleSize)
		}
	}
	for _, sc := range d.SecondaryConstituents {
		adj := constituentAdjective(sc.SoilType)
		if sc.Amount != "" {
			qualifiers = append(qualifiers, sc.Amount+" "+adj)
		} else {
			qualifiers = append(qualifiers, adj)
		}
	}
	return qualifiers, primaryType(d)
}

func strengthDescriptor(d *SoilDescription) string {
	switch {
	case d.MaterialType == MaterialTypeRock && d.RockStrength != nil:
		return d.RockStrength.String()
	case d.Consistency != nil:
		return d.Consistency.String()
	case d.Density != nil:
		return d.Density.String()
	}
	return ""
}

func primaryType(d *SoilDescription) string {
	switch {
	case d.PrimarySoilType != nil:
		return d.PrimarySoilType.String()
	case d.PrimaryRockType != nil:
		return d.PrimaryRockType.String()
	}
	return ""
}

func strengthAnnotation(sp *StrengthParameters) string {
	lower := trimFloat(sp.Range.LowerBound)
	upper := trimFloat(sp.Range.UpperBound)
	annotation := fmt.Sprintf("(%s %s-%s %s", sp.ParameterType, lower, upper, sp.ParameterType.Unit())
	if sp.Range.TypicalValue != nil {
		annotation += fmt.Sprintf(", typically %s", trimFloat(*sp.Range.TypicalValue))
	}
	return annotation + ")"
}

func trimFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}
