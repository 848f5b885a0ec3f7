package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"adc/internal/store"
)

var (
	decisionsStatus string
	decisionsSearch string
	decisionsLimit  int
	decisionsFormat string
)

var decisionsCmd = &cobra.Command{
	Use:   "decisions",
	Short: "Query recorded architectural decisions",
	Long: `List Architectural Decision Records (ADRs) from the decision store.

Decisions are created by 'adc detect --record' when the verdict is
'record'. Use 'show' to display a single decision.

Examples:
  adc decisions
  adc decisions --status=proposed
  adc decisions --search="event sourcing"
  adc decisions show 4f3c2b1a-...`,
	Run: runDecisionsList,
}

var decisionsShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a single recorded decision",
	Args:  cobra.ExactArgs(1),
	Run:   runDecisionsShow,
}

func init() {
	decisionsCmd.Flags().StringVar(&decisionsStatus, "status", "", "Filter by status (proposed, accepted, deprecated, superseded)")
	decisionsCmd.Flags().StringVar(&decisionsSearch, "search", "", "Search in title, context, and rationale")
	decisionsCmd.Flags().IntVar(&decisionsLimit, "limit", 50, "Maximum decisions to return")
	decisionsCmd.Flags().StringVar(&decisionsFormat, "format", "human", "Output format (json, human)")

	decisionsShowCmd.Flags().StringVar(&decisionsFormat, "format", "human", "Output format (json, human)")

	decisionsCmd.AddCommand(decisionsShowCmd)
	rootCmd.AddCommand(decisionsCmd)
}

func runDecisionsList(cmd *cobra.Command, args []string) {
	start := time.Now()
	logger := newLogger(decisionsFormat)

	repoRoot := mustGetRepoRoot()
	s := mustGetStore(repoRoot, logger)
	defer func() { _ = s.Close() }()

	decisions, err := s.List(store.ListOptions{
		Status: decisionsStatus,
		Search: decisionsSearch,
		Limit:  decisionsLimit,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error listing decisions: %v\n", err)
		os.Exit(1)
	}

	response := &DecisionsResponseCLI{
		Total:     len(decisions),
		Decisions: make([]DecisionCLI, 0, len(decisions)),
	}
	for _, d := range decisions {
		response.Decisions = append(response.Decisions, convertDecision(&d))
	}

	output, err := FormatResponse(response, OutputFormat(decisionsFormat))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error formatting output: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(output)

	logger.Debug("Decisions query completed", map[string]interface{}{
		"returned": len(decisions),
		"duration": time.Since(start).Milliseconds(),
	})
}

func runDecisionsShow(cmd *cobra.Command, args []string) {
	logger := newLogger(decisionsFormat)

	repoRoot := mustGetRepoRoot()
	s := mustGetStore(repoRoot, logger)
	defer func() { _ = s.Close() }()

	decision, err := s.Get(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cli := convertDecision(decision)
	response := &DecisionsResponseCLI{Total: 1, Decisions: []DecisionCLI{cli}}

	output, err := FormatResponse(response, OutputFormat(decisionsFormat))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error formatting output: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(output)
}

func convertDecision(d *store.Decision) DecisionCLI {
	return DecisionCLI{
		ID:             d.ID,
		Title:          d.Title,
		Context:        d.Context,
		Rationale:      d.Rationale,
		Confidence:     d.Confidence,
		Reasons:        d.Reasons,
		Recommendation: d.Recommendation,
		Status:         d.Status,
		CreatedAt:      d.CreatedAt.Format(time.RFC3339),
	}
}
