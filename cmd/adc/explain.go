package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"adc/internal/analysis"
	"adc/internal/detect"
)

var explainFormat string

var explainCmd = &cobra.Command{
	Use:   "explain <analysis-file|->",
	Short: "Synthesize a decision narrative for a change",
	Long: `Generate a decision context and suggested rationale for a change.

The narrative picks the single dominant fact by priority: pattern
adoption, then project-wide scope, then breaking changes, then a
structural default. It can be run independently of 'adc detect'.

Examples:
  adc explain change.json
  adc explain change.yaml --format=human`,
	Args: cobra.ExactArgs(1),
	Run:  runExplain,
}

func init() {
	explainCmd.Flags().StringVar(&explainFormat, "format", "json", "Output format (json, human)")
	rootCmd.AddCommand(explainCmd)
}

func runExplain(cmd *cobra.Command, args []string) {
	input, inputFormat, err := openAnalysisInput(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	a, err := analysis.Decode(input, inputFormat)
	_ = input.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading analysis: %v\n", err)
		os.Exit(1)
	}

	if err := a.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	narrative := detect.Explain(a)

	response := &ExplainResponseCLI{
		Narrative: NarrativeCLI{
			DecisionContext:       narrative.DecisionContext,
			SuggestedRationale:    narrative.SuggestedRationale,
			SuggestedAlternatives: narrative.SuggestedAlternatives,
		},
	}

	output, err := FormatResponse(response, OutputFormat(explainFormat))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error formatting output: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(output)
}
