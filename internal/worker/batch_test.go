package worker

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/lithoparse/lithoparse"
	"github.com/lithoparse/lithoparse/internal/pipeline"
)

func newTestProcessor() Processor {
	cfg := pipeline.DefaultConfig()
	cfg.Cache.Enabled = false
	return pipeline.NewPipeline(cfg)
}

func TestBatchProcessorOrdering(t *testing.T) {
	inputs := []string{
		"Firm CLAY",
		"Dense SAND",
		"Strong LIMESTONE",
		"Stiff brown slightly sandy CLAY",
		"Weak highly weathered MUDSTONE",
	}

	b := NewBatchProcessor(newTestProcessor(), 4)
	results := b.ProcessDescriptions(context.Background(), inputs)

	if len(results) != len(inputs) {
		t.Fatalf("expected %d results, got %d", len(inputs), len(results))
	}

	for i, r := range results {
		if r.Line != i {
			t.Errorf("results[%d].Line = %d, want %d: ordering lost", i, r.Line, i)
		}
		if r.Text != inputs[i] {
			t.Errorf("results[%d].Text = %q, want %q", i, r.Text, inputs[i])
		}
		if r.Error != nil {
			t.Errorf("results[%d].Error = %v, want nil", i, r.Error)
		}
		if r.Result == nil || r.Result.Description == nil {
			t.Fatalf("results[%d] has no description", i)
		}
	}

	if results[2].Result.Description.MaterialType != lithoparse.MaterialTypeRock {
		t.Errorf("results[2] material = %v, want rock", results[2].Result.Description.MaterialType)
	}
}

func TestBatchProcessorEmpty(t *testing.T) {
	b := NewBatchProcessor(newTestProcessor(), 2)
	results := b.ProcessDescriptions(context.Background(), nil)
	if len(results) != 0 {
		t.Errorf("expected no results, got %d", len(results))
	}
}

func TestReadDescriptionsFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "descriptions.txt")

	content := "Firm CLAY\n" +
		"\n" +
		"# borehole BH-2\n" +
		"  Dense SAND  \n" +
		"Strong LIMESTONE\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	descriptions, err := ReadDescriptionsFromFile(path)
	if err != nil {
		t.Fatalf("ReadDescriptionsFromFile() error = %v", err)
	}

	want := []string{"Firm CLAY", "Dense SAND", "Strong LIMESTONE"}
	if len(descriptions) != len(want) {
		t.Fatalf("descriptions = %v, want %v", descriptions, want)
	}
	for i := range want {
		if descriptions[i] != want[i] {
			t.Errorf("descriptions[%d] = %q, want %q", i, descriptions[i], want[i])
		}
	}
}

func TestReadDescriptionsFromMissingFile(t *testing.T) {
	if _, err := ReadDescriptionsFromFile("/nonexistent/file.txt"); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestProcessFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "descriptions.txt")
	if err := os.WriteFile(path, []byte("Firm CLAY\nDense SAND\n"), 0644); err != nil {
		t.Fatal(err)
	}

	b := NewBatchProcessor(newTestProcessor(), 2)
	results, err := b.ProcessFile(context.Background(), path)
	if err != nil {
		t.Fatalf("ProcessFile() error = %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
}
