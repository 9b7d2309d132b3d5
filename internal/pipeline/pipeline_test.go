package pipeline

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/lithoparse/lithoparse"
)

func TestProcessParsesAndCaches(t *testing.T) {
	p := NewPipeline(DefaultConfig())

	first := p.Process("Firm brown CLAY")
	if first.Description == nil {
		t.Fatal("Process returned no description")
	}
	if first.FromCache {
		t.Error("first Process reported a cache hit")
	}

	second := p.Process("Firm brown CLAY")
	if !second.FromCache {
		t.Error("second Process missed the cache")
	}
	if second.Description != first.Description {
		t.Error("cache returned a different description")
	}

	// Normalized variants hit the same entry.
	third := p.Process("firm   brown clay")
	if !third.FromCache {
		t.Error("normalized variant missed the cache")
	}
}

func TestProcessPersistsAcrossPipelines(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Cache.Dir = t.TempDir()

	first := NewPipeline(cfg)
	if r := first.Process("Firm brown CLAY"); r.FromCache {
		t.Fatal("first Process reported a cache hit")
	}

	// A new pipeline over the same cache directory reuses the result.
	second := NewPipeline(cfg)
	r := second.Process("Firm brown CLAY")
	if !r.FromCache {
		t.Error("second pipeline missed the disk cache")
	}
	if r.Description == nil || r.Description.PrimarySoilType == nil {
		t.Fatal("cached result lost its description")
	}
}

func TestProcessCacheDisabled(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Cache.Enabled = false
	p := NewPipeline(cfg)

	p.Process("Firm CLAY")
	if r := p.Process("Firm CLAY"); r.FromCache {
		t.Error("cache hit with caching disabled")
	}
}

func TestProcessAnomalies(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Output.Anomalies = true
	p := NewPipeline(cfg)

	result := p.Process("Dense CLAY")
	if result.Anomalies == nil {
		t.Fatal("no anomaly report with anomalies enabled")
	}
	if !result.Anomalies.HasAnomalies {
		t.Error("Dense CLAY produced no anomalies")
	}

	// Anomalies are derived on cache hits too.
	cached := p.Process("Dense CLAY")
	if !cached.FromCache {
		t.Fatal("expected cache hit")
	}
	if cached.Anomalies == nil || !cached.Anomalies.HasAnomalies {
		t.Error("cache hit lost the anomaly report")
	}
}

func TestRenderJSON(t *testing.T) {
	p := NewPipeline(DefaultConfig())
	result := p.Process("Firm CLAY")

	var buf bytes.Buffer
	if err := p.Render(&buf, result, "json"); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	var tree map[string]any
	if err := json.Unmarshal(buf.Bytes(), &tree); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	desc, ok := tree["description"].(map[string]any)
	if !ok {
		t.Fatalf("no description object in %v", tree)
	}
	if desc["material_type"] != "soil" {
		t.Errorf("material_type = %v, want soil", desc["material_type"])
	}
}

func TestRenderYAML(t *testing.T) {
	p := NewPipeline(DefaultConfig())
	result := p.Process("Firm CLAY")

	var buf bytes.Buffer
	if err := p.Render(&buf, result, "yaml"); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	var tree map[string]any
	if err := yaml.Unmarshal(buf.Bytes(), &tree); err != nil {
		t.Fatalf("output is not valid YAML: %v", err)
	}
	if _, ok := tree["description"]; !ok {
		t.Errorf("no description key in %v", tree)
	}
}

func TestRenderText(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Output.Anomalies = true
	p := NewPipeline(cfg)
	result := p.Process("Dense CLAY")

	var buf bytes.Buffer
	if err := p.Render(&buf, result, "text"); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	out := buf.String()
	for _, want := range []string{"Material:", "soil", "CLAY", "Valid:", "false", "Anomalies:"} {
		if !strings.Contains(out, want) {
			t.Errorf("text output missing %q:\n%s", want, out)
		}
	}
}

func TestRenderUnknownFormat(t *testing.T) {
	p := NewPipeline(DefaultConfig())
	result := p.Process("Firm CLAY")

	var buf bytes.Buffer
	if err := p.Render(&buf, result, "xml"); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Workers <= 0 {
		t.Errorf("Workers = %d, want positive", cfg.Workers)
	}
	if !cfg.Cache.Enabled {
		t.Error("cache disabled by default")
	}
	if cfg.Output.Format != "json" {
		t.Errorf("Format = %q, want json", cfg.Output.Format)
	}
}

func TestProcessIsParseEquivalent(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Cache.Enabled = false
	p := NewPipeline(cfg)

	got := p.Process("Stiff brown slightly sandy CLAY").Description
	want := lithoparse.Parse("Stiff brown slightly sandy CLAY")

	if got.Confidence != want.Confidence || got.IsValid != want.IsValid {
		t.Error("pipeline result diverged from direct Parse")
	}
	if *got.PrimarySoilType != *want.PrimarySoilType {
		t.Error("primary soil type diverged")
	}
}
