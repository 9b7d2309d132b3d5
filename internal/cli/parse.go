package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/lithoparse/lithoparse/internal/pipeline"
)

var (
	outputFormat  string
	showAnomalies bool
	noCache       bool
	cacheDir      string
)

// parseCmd represents the parse command
var parseCmd = &cobra.Command{
	Use:   "parse <description>",
	Short: "Parse a single geological description",
	Long: `Parse extracts a structured record from one BS 5930 description:
- Material classification (soil or rock)
- Strength descriptors and primary type
- Secondary constituents with proportion guidance
- Engineering strength parameters
- Spelling corrections, validation warnings and a confidence score

Example:
  lithoparse parse "Stiff brown slightly sandy CLAY"
  lithoparse parse "Strong LIMESTONE, slightly weathered" --format yaml
  lithoparse parse "Dense CLAY" --anomalies`,
	Args: cobra.MinimumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().StringVarP(&outputFormat, "format", "f", "json", "output format (json, yaml, text)")
	parseCmd.Flags().BoolVar(&showAnomalies, "anomalies", false, "include the anomaly report")
	parseCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the parse cache")
	parseCmd.Flags().StringVar(&cacheDir, "cache-dir", "", "persist parse results to this directory")

	_ = viper.BindPFlag("output.format", parseCmd.Flags().Lookup("format"))
}

func runParse(cmd *cobra.Command, args []string) error {
	description := strings.Join(args, " ")

	cfg := configFromFlags()
	p := pipeline.NewPipeline(cfg)

	if verbose {
		fmt.Fprintf(os.Stderr, "Parsing: %s\n", description)
	}

	result := p.Process(description)

	if verbose {
		fmt.Fprintf(os.Stderr, "Confidence: %.2f\n", result.Description.Confidence)
		fmt.Fprintf(os.Stderr, "Warnings: %d\n", len(result.Description.Warnings))
	}

	if err := p.Render(os.Stdout, result, cfg.Output.Format); err != nil {
		return fmt.Errorf("render failed: %w", err)
	}
	return nil
}

// configFromFlags builds the pipeline configuration from defaults, config
// file values and flags, in increasing priority.
func configFromFlags() *pipeline.Config {
	cfg := pipeline.DefaultConfig()

	if viper.IsSet("workers") {
		cfg.Workers = viper.GetInt("workers")
	}
	if viper.IsSet("cache.enabled") {
		cfg.Cache.Enabled = viper.GetBool("cache.enabled")
	}
	if viper.IsSet("cache.ttl") {
		cfg.Cache.TTL = viper.GetDuration("cache.ttl")
	}
	if viper.IsSet("cache.dir") {
		cfg.Cache.Dir = viper.GetString("cache.dir")
	}
	if viper.IsSet("cache.disk_ttl") {
		cfg.Cache.DiskTTL = viper.GetDuration("cache.disk_ttl")
	}
	if viper.IsSet("output.format") {
		cfg.Output.Format = viper.GetString("output.format")
	}

	if outputFormat != "" {
		cfg.Output.Format = outputFormat
	}
	if cacheDir != "" {
		cfg.Cache.Dir = cacheDir
	}
	cfg.Output.Verbose = verbose
	cfg.Output.Anomalies = showAnomalies
	if noCache {
		cfg.Cache.Enabled = false
	}
	return cfg
}
