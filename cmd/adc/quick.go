package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"adc/internal/analysis"
	"adc/internal/detect"
)

var quickFormat string

var quickCmd = &cobra.Command{
	Use:   "quick <analysis-file|->",
	Short: "Fast-path check on partial analysis data",
	Long: `Run the cheap unweighted classifier on possibly incomplete data.

Any single satisfied criterion yields a positive verdict; missing fields
never trigger. Useful while the full analysis pipeline is still running.
Exits 0 when likely architectural, 1 otherwise.

Examples:
  adc quick partial.json
  early-change-facts | adc quick -`,
	Args: cobra.ExactArgs(1),
	Run:  runQuick,
}

func init() {
	quickCmd.Flags().StringVar(&quickFormat, "format", "json", "Output format (json, human)")
	rootCmd.AddCommand(quickCmd)
}

func runQuick(cmd *cobra.Command, args []string) {
	input, inputFormat, err := openAnalysisInput(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	partial, err := analysis.DecodePartial(input, inputFormat)
	_ = input.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading analysis: %v\n", err)
		os.Exit(1)
	}

	likely := detect.IsLikelyArchitectural(partial)

	output, err := FormatResponse(&QuickResponseCLI{LikelyArchitectural: likely}, OutputFormat(quickFormat))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error formatting output: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(output)

	if !likely {
		os.Exit(1)
	}
}
