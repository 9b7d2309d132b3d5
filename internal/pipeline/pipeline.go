package pipeline

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/lithoparse/lithoparse"
	"github.com/lithoparse/lithoparse/internal/cache"
)

// Pipeline orchestrates parsing, anomaly detection, caching and rendering.
type Pipeline struct {
	cache  cache.Cache
	config *Config
}

// NewPipeline creates a pipeline with the given configuration. A cache
// directory upgrades the memory cache to a layered memory+disk cache.
func NewPipeline(cfg *Config) *Pipeline {
	p := &Pipeline{config: cfg}
	if cfg.Cache.Enabled {
		if cfg.Cache.Dir != "" {
			p.cache = cache.NewLayeredCache(cfg.Cache.TTL, cfg.Cache.CleanupInterval, cfg.Cache.Dir, cfg.Cache.DiskTTL)
		} else {
			p.cache = cache.NewMemoryCache(cfg.Cache.TTL, cfg.Cache.CleanupInterval)
		}
	}
	return p
}

// Result is the complete outcome for one description.
type Result struct {
	Description *lithoparse.SoilDescription `json:"description"`
	Anomalies   *lithoparse.AnomalyResult   `json:"anomalies,omitempty"`
	FromCache   bool                        `json:"-"`
}

// Process parses one description, consulting the cache first. Anomaly
// detection runs on every call when enabled, including cache hits: the
// report is derived, not stored.
func (p *Pipeline) Process(text string) *Result {
	result := &Result{}

	key := cache.Key(text)
	if p.cache != nil {
		if desc, found := p.cache.Get(key); found {
			result.Description = desc
			result.FromCache = true
		}
	}

	if result.Description == nil {
		result.Description = lithoparse.Parse(text)
		if p.cache != nil {
			_ = p.cache.Set(key, result.Description, p.config.Cache.TTL)
		}
	}

	if p.config.Output.Anomalies {
		result.Anomalies = lithoparse.DetectAnomalies(result.Description)
	}
	return result
}

// Render writes a result to w in the given format ("json", "yaml" or
// "text").
func (p *Pipeline) Render(w io.Writer, result *Result, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(result); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		return nil
	case "yaml":
		// Round-trip through JSON so the yaml keys match the json tags.
		raw, err := json.Marshal(result)
		if err != nil {
			return fmt.Errorf("marshal result: %w", err)
		}
		var tree map[string]any
		if err := json.Unmarshal(raw, &tree); err != nil {
			return fmt.Errorf("unmarshal result: %w", err)
		}
		enc := yaml.NewEncoder(w)
		if err := enc.Encode(tree); err != nil {
			_ = enc.Close()
			return fmt.Errorf("encode yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("close yaml encoder: %w", err)
		}
		return nil
	case "text":
		return renderText(w, result)
	}
	return fmt.Errorf("unknown output format %q (want json, yaml or text)", format)
}

func renderText(w io.Writer, result *Result) error {
	d := result.Description
	var b strings.Builder

	fmt.Fprintf(&b, "Description: %s\n", d.RawDescription)
	fmt.Fprintf(&b, "Material:    %s\n", d.MaterialType)
	if d.PrimarySoilType != nil {
		fmt.Fprintf(&b, "Soil type:   %s\n", d.PrimarySoilType)
	}
	if d.PrimaryRockType != nil {
		fmt.Fprintf(&b, "Rock type:   %s\n", d.PrimaryRockType)
	}
	if d.Consistency != nil {
		fmt.Fprintf(&b, "Consistency: %s\n", d.Consistency)
	}
	if d.Density != nil {
		fmt.Fprintf(&b, "Density:     %s\n", d.Density)
	}
	if d.RockStrength != nil {
		fmt.Fprintf(&b, "Strength:    %s\n", d.RockStrength)
	}
	if d.WeatheringGrade != nil {
		fmt.Fprintf(&b, "Weathering:  %s\n", d.WeatheringGrade)
	}
	if d.RockStructure != nil {
		fmt.Fprintf(&b, "Structure:   %s\n", d.RockStructure)
	}
	for _, sc := range d.SecondaryConstituents {
		if sc.Amount != "" {
			fmt.Fprintf(&b, "Constituent: %s %s\n", sc.Amount, sc.SoilType)
		} else {
			fmt.Fprintf(&b, "Constituent: %s\n", sc.SoilType)
		}
	}
	if sp := d.StrengthParameters; sp != nil {
		fmt.Fprintf(&b, "Parameters:  %s %g-%g %s", sp.ParameterType, sp.Range.LowerBound, sp.Range.UpperBound, sp.ParameterType.Unit())
		if sp.Range.TypicalValue != nil {
			fmt.Fprintf(&b, " (typically %g)", *sp.Range.TypicalValue)
		}
		b.WriteByte('\n')
	}
	for _, c := range d.SpellingCorrections {
		fmt.Fprintf(&b, "Corrected:   %q -> %q (%.2f)\n", c.Original, c.Corrected, c.SimilarityScore)
	}
	for _, warning := range d.Warnings {
		fmt.Fprintf(&b, "Warning:     %s\n", warning)
	}
	fmt.Fprintf(&b, "Valid:       %v\n", d.IsValid)
	fmt.Fprintf(&b, "Confidence:  %.2f\n", d.Confidence)

	if result.Anomalies != nil && result.Anomalies.HasAnomalies {
		fmt.Fprintf(&b, "Anomalies:   %d (%s)\n", len(result.Anomalies.Anomalies), result.Anomalies.OverallSeverity)
		for _, a := range result.Anomalies.Anomalies {
			fmt.Fprintf(&b, "  [%s] %s: %s\n", a.Severity, a.Type, a.Description)
			if a.Suggestion != "" {
				fmt.Fprintf(&b, "        suggestion: %s\n", a.Suggestion)
			}
		}
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("write text: %w", err)
	}
	return nil
}
