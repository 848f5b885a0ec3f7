package analysis

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Input formats accepted by the loaders.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Load reads a ChangeAnalysis from a JSON or YAML file produced by the
// upstream analysis pipeline. The format is derived from the file
// extension; anything that is not .yaml/.yml is treated as JSON.
func Load(path string) (*ChangeAnalysis, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open analysis file: %w", err)
	}
	defer func() { _ = file.Close() }()

	return Decode(file, FormatForPath(path))
}

// Decode reads a ChangeAnalysis from r in the given format.
func Decode(r io.Reader, format string) (*ChangeAnalysis, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read analysis input: %w", err)
	}

	var a ChangeAnalysis
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &a); err != nil {
			return nil, fmt.Errorf("failed to parse YAML analysis: %w", err)
		}
	case FormatJSON:
		if err := json.Unmarshal(data, &a); err != nil {
			return nil, fmt.Errorf("failed to parse JSON analysis: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported analysis format: %s", format)
	}

	return &a, nil
}

// DecodePartial reads a PartialChangeAnalysis from r in the given format.
// Missing fields stay unset; the fast-path classifier treats them as
// non-triggering.
func DecodePartial(r io.Reader, format string) (*PartialChangeAnalysis, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read analysis input: %w", err)
	}

	var p PartialChangeAnalysis
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &p); err != nil {
			return nil, fmt.Errorf("failed to parse YAML analysis: %w", err)
		}
	case FormatJSON:
		if err := json.Unmarshal(data, &p); err != nil {
			return nil, fmt.Errorf("failed to parse JSON analysis: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported analysis format: %s", format)
	}

	return &p, nil
}

// FormatForPath derives the input format from a file extension.
func FormatForPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}
