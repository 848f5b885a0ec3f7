package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"adc/internal/analysis"
	"adc/internal/detect"
	"adc/internal/store"
)

var (
	detectFormat string
	detectRecord bool
	detectTitle  string
)

var detectCmd = &cobra.Command{
	Use:   "detect <analysis-file|->",
	Short: "Decide whether a change is an architectural decision",
	Long: `Score a change analysis against the weighted decision criteria.

Reads a ChangeAnalysis record (JSON or YAML) produced by an upstream
analysis pipeline, validates it, and reports the verdict, confidence,
per-criterion reasons, and a recommendation: record, skip, or
use_project_decision.

With --record, a 'record' recommendation is persisted to the decision
store together with the synthesized context and rationale.

Examples:
  adc detect change.json
  adc detect change.yaml --format=human
  git-change-facts | adc detect -
  adc detect change.json --record --title="Adopt event sourcing"`,
	Args: cobra.ExactArgs(1),
	Run:  runDetect,
}

func init() {
	detectCmd.Flags().StringVar(&detectFormat, "format", "json", "Output format (json, human)")
	detectCmd.Flags().BoolVar(&detectRecord, "record", false, "Persist a 'record' verdict to the decision store")
	detectCmd.Flags().StringVar(&detectTitle, "title", "", "Title for the recorded decision (defaults to the decision context)")
	rootCmd.AddCommand(detectCmd)
}

func runDetect(cmd *cobra.Command, args []string) {
	start := time.Now()
	logger := newLogger(detectFormat)

	repoRoot := mustGetRepoRoot()
	cfg := loadConfigOrDefault(repoRoot, logger)

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

	scorer := newScorer(cfg)
	verdict := scorer.Score(a)

	response := &DetectResponseCLI{
		IsArchitectural: verdict.IsArchitectural,
		Confidence:      verdict.Confidence,
		Reasons:         verdict.Reasons,
		Recommendation:  string(verdict.Recommendation),
	}

	if verdict.Recommendation == detect.RecommendRecord {
		narrative := detect.Explain(a)
		response.Narrative = &NarrativeCLI{
			DecisionContext:       narrative.DecisionContext,
			SuggestedRationale:    narrative.SuggestedRationale,
			SuggestedAlternatives: narrative.SuggestedAlternatives,
		}

		if detectRecord {
			s := mustGetStore(repoRoot, logger)
			defer func() { _ = s.Close() }()

			decision, err := s.Record(store.RecordInput{
				Title:          detectTitle,
				Context:        narrative.DecisionContext,
				Rationale:      narrative.SuggestedRationale,
				Confidence:     verdict.Confidence,
				Reasons:        verdict.Reasons,
				Recommendation: string(verdict.Recommendation),
			})
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error recording decision: %v\n", err)
				os.Exit(1)
			}
			response.RecordedID = decision.ID
		}
	} else if detectRecord {
		logger.Warn("Verdict is not 'record', nothing persisted", map[string]interface{}{
			"recommendation": verdict.Recommendation,
		})
	}

	output, err := FormatResponse(response, OutputFormat(detectFormat))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error formatting output: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(output)

	logger.Debug("Detection completed", map[string]interface{}{
		"recommendation": verdict.Recommendation,
		"confidence":     verdict.Confidence,
		"duration":       time.Since(start).Milliseconds(),
	})
}
