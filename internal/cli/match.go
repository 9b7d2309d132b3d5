package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lithoparse/lithoparse"
)

var (
	matchThreshold float64
	matchList      bool
)

// matchCmd represents the match command
var matchCmd = &cobra.Command{
	Use:   "match <word>",
	Short: "Fuzzy-match a word against the BS 5930 vocabulary",
	Long: `Match finds the closest vocabulary term for a possibly misspelled word
and reports the similarity score. Useful for checking which corrections
the parser would apply.

Example:
  lithoparse match clai
  lithoparse match sandstome --threshold 0.7
  lithoparse match --list`,
	Args: cobra.MaximumNArgs(1),
	RunE: runMatch,
}

func init() {
	rootCmd.AddCommand(matchCmd)

	matchCmd.Flags().Float64Var(&matchThreshold, "threshold", 0.8, "minimum similarity ratio to accept")
	matchCmd.Flags().BoolVar(&matchList, "list", false, "list every known vocabulary term")
}

func runMatch(cmd *cobra.Command, args []string) error {
	if matchList {
		for _, term := range lithoparse.VocabularyTerms() {
			fmt.Println(term)
		}
		return nil
	}

	if len(args) == 0 {
		return fmt.Errorf("a word is required unless --list is given")
	}
	word := args[0]

	match, score, ok := lithoparse.FuzzyMatch(word, lithoparse.VocabularyTerms(), matchThreshold)
	if !ok {
		return fmt.Errorf("no vocabulary term within %.2f of %q", matchThreshold, word)
	}

	fmt.Printf("%s -> %s (similarity %.2f)\n", word, match, score)
	return nil
}
