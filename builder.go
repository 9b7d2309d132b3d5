package lithoparse

// DescriptionBuilder assembles a description fluently, rendering through the
// same generator the library uses everywhere else. Builders are single-use
// and not safe for concurrent mutation.
type DescriptionBuilder struct {
	desc SoilDescription
}

// NewSoilBuilder starts a builder for a soil description with the given
// primary type.
func NewSoilBuilder(soilType SoilType) *DescriptionBuilder {
	b := &DescriptionBuilder{}
	b.desc.MaterialType = MaterialTypeSoil
	b.desc.PrimarySoilType = &soilType
	return b
}

// NewRockBuilder starts a builder for a rock description with the given
// primary type.
func NewRockBuilder(rockType RockType) *DescriptionBuilder {
	b := &DescriptionBuilder{}
	b.desc.MaterialType = MaterialTypeRock
	b.desc.PrimaryRockType = &rockType
	return b
}

// WithConsistency sets the consistency descriptor for cohesive soils.
func (b *DescriptionBuilder) WithConsistency(c Consistency) *DescriptionBuilder {
	b.desc.Consistency = &c
	return b
}

// WithDensity sets the density descriptor for granular soils.
func (b *DescriptionBuilder) WithDensity(d Density) *DescriptionBuilder {
	b.desc.Density = &d
	return b
}

// WithRockStrength sets the rock strength descriptor.
func (b *DescriptionBuilder) WithRockStrength(rs RockStrength) *DescriptionBuilder {
	b.desc.RockStrength = &rs
	return b
}

// WithWeathering sets the weathering grade.
func (b *DescriptionBuilder) WithWeathering(wg WeatheringGrade) *DescriptionBuilder {
	b.desc.WeatheringGrade = &wg
	return b
}

// WithStructure sets the rock structure.
func (b *DescriptionBuilder) WithStructure(rs RockStructure) *DescriptionBuilder {
	b.desc.RockStructure = &rs
	return b
}

// WithSecondaryConstituent adds a secondary constituent. Amount is one of
// "slightly", "moderately", "very" or "" for an unqualified adjective;
// soilType is the lowercase constituent name ("sand", "silt", ...).
func (b *DescriptionBuilder) WithSecondaryConstituent(amount, soilType string) *DescriptionBuilder {
	b.desc.SecondaryConstituents = append(b.desc.SecondaryConstituents, SecondaryConstituent{
		Amount:   amount,
		SoilType: soilType,
	})
	return b
}

// WithColor sets the color descriptor.
func (b *DescriptionBuilder) WithColor(color string) *DescriptionBuilder {
	b.desc.Color = color
	return b
}

// WithMoisture sets the moisture content descriptor.
func (b *DescriptionBuilder) WithMoisture(moisture string) *DescriptionBuilder {
	b.desc.MoistureContent = moisture
	return b
}

// WithPlasticity sets the plasticity descriptor for cohesive soils.
func (b *DescriptionBuilder) WithPlasticity(plasticity string) *DescriptionBuilder {
	b.desc.PlasticityIndex = plasticity
	return b
}

// WithParticleSize sets the particle-size descriptor for granular soils.
func (b *DescriptionBuilder) WithParticleSize(size string) *DescriptionBuilder {
	b.desc.ParticleSize = size
	return b
}

// Build renders the assembled description in standard format.
func (b *DescriptionBuilder) Build() string {
	d := b.desc
	return Generate(&d, FormatStandard)
}

// BuildFormat renders the assembled description in the given format.
func (b *DescriptionBuilder) BuildFormat(format Format) string {
	d := b.desc
	return Generate(&d, format)
}

// BuildAndParse renders the description and runs it back through Parse,
// yielding the fully populated structured form with strength parameters,
// constituent guidance and validation applied.
func (b *DescriptionBuilder) BuildAndParse() *SoilDescription {
	return Parse(b.Build())
}
