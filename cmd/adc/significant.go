package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var significantFormat string

var significantCmd = &cobra.Command{
	Use:   "significant <path>...",
	Short: "Check paths for architectural significance",
	Long: `Check file paths against the significant-path indicator catalog.

A path matches when it contains or ends with a known indicator: build and
dependency manifests, language entry points, architecture documentation,
or core/infrastructure directories. Repo-specific indicators can be added
via POLICY.toml. Matching is case-sensitive; supply forward-slash paths.

Examples:
  adc significant services/billing/package.json
  adc significant src/core/router.ts docs/adr/0004-queues.md`,
	Args: cobra.MinimumNArgs(1),
	Run:  runSignificant,
}

func init() {
	significantCmd.Flags().StringVar(&significantFormat, "format", "json", "Output format (json, human)")
	rootCmd.AddCommand(significantCmd)
}

func runSignificant(cmd *cobra.Command, args []string) {
	logger := newLogger(significantFormat)
	repoRoot := mustGetRepoRoot()

	matcher := newMatcher(repoRoot, logger)

	response := &SignificantResponseCLI{
		Paths: make([]PathVerdictCLI, 0, len(args)),
	}
	for _, path := range args {
		response.Paths = append(response.Paths, PathVerdictCLI{
			Path:        path,
			Significant: matcher.IsArchitecturallySignificant(path),
		})
	}

	output, err := FormatResponse(response, OutputFormat(significantFormat))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error formatting output: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(output)
}
