package lithoparse

import (
	"encoding/json"
	"fmt"
)

// Enums marshal as their lowercase BS 5930 names rather than ordinals, so
// the JSON form stays stable if scale values are ever reordered.

func marshalEnumName[T ~int](names []string, v T, label string) ([]byte, error) {
	if int(v) < 0 || int(v) >= len(names) {
		return nil, fmt.Errorf("invalid %s value %d", label, int(v))
	}
	return json.Marshal(names[v])
}

func unmarshalEnumName[T ~int](names []string, data []byte, label string, out *T) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%s: %w", label, err)
	}
	v, ok := enumFromString[T](names, s)
	if !ok {
		return fmt.Errorf("unknown %s %q", label, s)
	}
	*out = v
	return nil
}

func (m MaterialType) MarshalJSON() ([]byte, error) {
	return marshalEnumName(materialTypeNames, m, "material type")
}

func (m *MaterialType) UnmarshalJSON(data []byte) error {
	return unmarshalEnumName(materialTypeNames, data, "material type", m)
}

func (c Consistency) MarshalJSON() ([]byte, error) {
	return marshalEnumName(consistencyNames, c, "consistency")
}

func (c *Consistency) UnmarshalJSON(data []byte) error {
	return unmarshalEnumName(consistencyNames, data, "consistency", c)
}

func (d Density) MarshalJSON() ([]byte, error) {
	return marshalEnumName(densityNames, d, "density")
}

func (d *Density) UnmarshalJSON(data []byte) error {
	return unmarshalEnumName(densityNames, data, "density", d)
}

func (r RockStrength) MarshalJSON() ([]byte, error) {
	return marshalEnumName(rockStrengthNames, r, "rock strength")
}

func (r *RockStrength) UnmarshalJSON(data []byte) error {
	return unmarshalEnumName(rockStrengthNames, data, "rock strength", r)
}

func (s SoilType) MarshalJSON() ([]byte, error) {
	return marshalEnumName(soilTypeNames, s, "soil type")
}

func (s *SoilType) UnmarshalJSON(data []byte) error {
	return unmarshalEnumName(soilTypeNames, data, "soil type", s)
}

func (r RockType) MarshalJSON() ([]byte, error) {
	return marshalEnumName(rockTypeNames, r, "rock type")
}

func (r *RockType) UnmarshalJSON(data []byte) error {
	return unmarshalEnumName(rockTypeNames, data, "rock type", r)
}

func (w WeatheringGrade) MarshalJSON() ([]byte, error) {
	return marshalEnumName(weatheringGradeNames, w, "weathering grade")
}

func (w *WeatheringGrade) UnmarshalJSON(data []byte) error {
	return unmarshalEnumName(weatheringGradeNames, data, "weathering grade", w)
}

func (r RockStructure) MarshalJSON() ([]byte, error) {
	return marshalEnumName(rockStructureNames, r, "rock structure")
}

func (r *RockStructure) UnmarshalJSON(data []byte) error {
	return unmarshalEnumName(rockStructureNames, data, "rock structure", r)
}

func (s StrengthParameterType) MarshalJSON() ([]byte, error) {
	return marshalEnumName(strengthParameterJSONNames, s, "strength parameter type")
}

func (s *StrengthParameterType) UnmarshalJSON(data []byte) error {
	return unmarshalEnumName(strengthParameterJSONNames, data, "strength parameter type", s)
}

// ToJSON renders the description as indented JSON.
func (d *SoilDescription) ToJSON() (string, error) {
	out, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal description: %w", err)
	}
	return string(out), nil
}

// FromJSON decodes a description previously produced by ToJSON or assembled
// by hand. The material_type field is mandatory; everything else is
// optional, matching the omitempty encoding.
func FromJSON(data []byte) (*SoilDescription, error) {
	var probe map[string]*json.RawMessage
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("unmarshal description: %w", err)
	}
	if probe["material_type"] == nil {
		return nil, fmt.Errorf("unmarshal description: missing material_type")
	}

	var d SoilDescription
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("unmarshal description: %w", err)
	}
	return &d, nil
}
