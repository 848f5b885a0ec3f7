package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/zstd"
	"github.com/spf13/cobra"

	"adc/internal/store"
)

var (
	exportOut      string
	exportCompress bool
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export recorded decisions",
	Long: `Export all recorded decisions as a JSON document.

Writes to stdout by default. With --compress the output is
zstd-compressed; combine with --out to produce an archive file.

Examples:
  adc export
  adc export --out=decisions.json
  adc export --compress --out=decisions.json.zst`,
	Run: runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportOut, "out", "", "Output file (default: stdout)")
	exportCmd.Flags().BoolVar(&exportCompress, "compress", false, "Compress output with zstd")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) {
	logger := newLogger("json")

	repoRoot := mustGetRepoRoot()
	s := mustGetStore(repoRoot, logger)
	defer func() { _ = s.Close() }()

	decisions, err := s.List(store.ListOptions{Limit: 100000})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error listing decisions: %v\n", err)
		os.Exit(1)
	}

	var out io.Writer = os.Stdout
	if exportOut != "" {
		file, err := os.Create(exportOut)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating output file: %v\n", err)
			os.Exit(1)
		}
		defer func() { _ = file.Close() }()
		out = file
	}

	if exportCompress {
		zw, err := zstd.NewWriter(out)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating compressor: %v\n", err)
			os.Exit(1)
		}
		defer func() { _ = zw.Close() }()
		out = zw
	}

	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(decisions); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding decisions: %v\n", err)
		os.Exit(1)
	}

	logger.Debug("Export completed", map[string]interface{}{
		"decisions":  len(decisions),
		"compressed": exportCompress,
	})
}
