package main

import (
	"github.com/spf13/cobra"

	"adc/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "adc",
	Short: "ADC - Architectural Decision Classifier",
	Long: `ADC (Architectural Decision Classifier) decides whether a proposed code
change constitutes an architectural decision worth formally recording, and
synthesizes a draft justification for it. It consumes change-analysis facts
produced by an upstream diff/static-analysis pipeline and keeps recorded
decisions in a repo-local store.`,
	Version: version.Version,
}

func init() {
	rootCmd.SetVersionTemplate("ADC version {{.Version}}\n")
}
