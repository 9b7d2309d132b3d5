package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/lithoparse/lithoparse"
)

var (
	genFormat     string
	genVariations bool
	genSeed       int64
)

// generateCmd represents the generate command
var generateCmd = &cobra.Command{
	Use:   "generate [json-file]",
	Short: "Generate description text from a structured record",
	Long: `Generate renders a structured description (as produced by parse) back
into canonical BS 5930 text. The input is a JSON file, or stdin when the
argument is "-" or omitted.

With --variations, every value of the applicable strength scale is
enumerated instead of a single rendering. With --random, a random but
syntactically valid description is generated from --seed and no input is
read.

Example:
  lithoparse parse "stiff clay" | lithoparse generate -
  lithoparse generate record.json --format bs5930
  lithoparse generate record.json --variations
  lithoparse generate --random --seed 42`,
	Args: cobra.MaximumNArgs(1),
	RunE: runGenerate,
}

var genRandom bool

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringVarP(&genFormat, "format", "f", "standard", "rendering format (standard, concise, verbose, bs5930)")
	generateCmd.Flags().BoolVar(&genVariations, "variations", false, "enumerate all strength-scale variations")
	generateCmd.Flags().BoolVar(&genRandom, "random", false, "generate a random valid description")
	generateCmd.Flags().Int64Var(&genSeed, "seed", 0, "seed for --random")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	if genRandom {
		fmt.Println(lithoparse.GenerateRandom(genSeed))
		return nil
	}

	data, err := readGenerateInput(args)
	if err != nil {
		return err
	}

	desc, err := decodeDescription(data)
	if err != nil {
		return fmt.Errorf("decode description: %w", err)
	}

	if genVariations {
		for _, v := range lithoparse.GenerateVariations(desc) {
			fmt.Println(v)
		}
		return nil
	}

	format, err := lithoparse.ParseFormat(genFormat)
	if err != nil {
		return err
	}
	fmt.Println(lithoparse.Generate(desc, format))
	return nil
}

// decodeDescription accepts either a bare description or the wrapped form
// that parse emits, so parse output pipes straight into generate.
func decodeDescription(data []byte) (*lithoparse.SoilDescription, error) {
	desc, err := lithoparse.FromJSON(data)
	if err == nil {
		return desc, nil
	}

	var wrapper struct {
		Description json.RawMessage `json:"description"`
	}
	if jsonErr := json.Unmarshal(data, &wrapper); jsonErr == nil && len(wrapper.Description) > 0 {
		return lithoparse.FromJSON(wrapper.Description)
	}
	return nil, err
}

func readGenerateInput(args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return nil, fmt.Errorf("read input file: %w", err)
	}
	return data, nil
}
