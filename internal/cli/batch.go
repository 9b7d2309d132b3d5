package cli

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/spf13/cobra"

	"github.com/lithoparse/lithoparse/internal/pipeline"
	"github.com/lithoparse/lithoparse/internal/worker"
)

var (
	concurrency  int
	outputFile   string
	batchTimeout time.Duration
	// outputFormat, showAnomalies and noCache are defined in parse.go and shared here
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <file>",
	Short: "Parse multiple descriptions from a file in parallel",
	Long: `Batch parses many descriptions concurrently:
- Read descriptions from the input file (one per line, # comments skipped)
- Parse in parallel with a configurable worker count
- Emit results in input order

Example:
  lithoparse batch descriptions.txt
  lithoparse batch descriptions.txt --concurrency 8 --format yaml
  lithoparse batch descriptions.txt --output results.json`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().IntVar(&concurrency, "concurrency", runtime.NumCPU(), "number of concurrent workers")
	batchCmd.Flags().StringVarP(&outputFile, "output", "o", "", "output file (default: stdout)")
	batchCmd.Flags().DurationVar(&batchTimeout, "timeout", 5*time.Minute, "total timeout for batch processing")

	// Inherit flags from parse command
	batchCmd.Flags().StringVarP(&outputFormat, "format", "f", "json", "output format (json, yaml, text)")
	batchCmd.Flags().BoolVar(&showAnomalies, "anomalies", false, "include the anomaly report")
	batchCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the parse cache")
	batchCmd.Flags().StringVar(&cacheDir, "cache-dir", "", "persist parse results to this directory")
}

func runBatch(cmd *cobra.Command, args []string) error {
	file := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), batchTimeout)
	defer cancel()

	cfg := configFromFlags()
	cfg.Workers = concurrency

	p := pipeline.NewPipeline(cfg)
	processor := worker.NewBatchProcessor(p, concurrency)

	if verbose {
		fmt.Fprintf(os.Stderr, "Input file: %s\n", file)
		fmt.Fprintf(os.Stderr, "Workers: %d\n", concurrency)
	}

	results, err := processor.ProcessFile(ctx, file)
	if err != nil {
		return fmt.Errorf("process file: %w", err)
	}

	out := os.Stdout
	if outputFile != "" {
		f, err := os.Create(outputFile)
		if err != nil {
			return fmt.Errorf("create output file: %w", err)
		}
		defer func() { _ = f.Close() }()
		out = f
	}

	failureCount := 0
	invalidCount := 0
	for _, result := range results {
		if result.Error != nil {
			failureCount++
			fmt.Fprintf(os.Stderr, "✗ %s: %v\n", result.Text, result.Error)
			continue
		}
		if !result.Result.Description.IsValid {
			invalidCount++
		}
		if err := p.Render(out, result.Result, cfg.Output.Format); err != nil {
			return fmt.Errorf("render failed: %w", err)
		}
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "\n")
		fmt.Fprintf(os.Stderr, "Total:    %d descriptions\n", len(results))
		fmt.Fprintf(os.Stderr, "Invalid:  %d\n", invalidCount)
		fmt.Fprintf(os.Stderr, "Failures: %d\n", failureCount)
	}

	return nil
}
