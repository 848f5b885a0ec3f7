package config

import (
	"fmt"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// PolicyFileName is the default filename for repo-local detection policy.
const PolicyFileName = "POLICY.toml"

// PolicyFile carries reviewed, repo-specific detection policy that is
// versioned alongside the code, unlike .adc/config.json which is local
// machine state. Policy overrides win over config values.
type PolicyFile struct {
	// Version is the schema version
	Version int `toml:"version"`

	// Detection overrides the decision thresholds
	Detection PolicyDetection `toml:"detection"`

	// Paths extends the significant-path indicator catalog
	Paths PolicyPaths `toml:"paths"`
}

// PolicyDetection overrides decision thresholds. Nil means "keep the
// configured value".
type PolicyDetection struct {
	RecordThreshold *float64 `toml:"record_threshold,omitempty"`
	DeferThreshold  *float64 `toml:"defer_threshold,omitempty"`
}

// PolicyPaths extends the path-significance catalog
type PolicyPaths struct {
	// SignificantIndicators are extra substring/suffix indicators for
	// architecturally significant paths in this repository
	SignificantIndicators []string `toml:"significant_indicators,omitempty"`
}

// LoadPolicy parses POLICY.toml from the repo root. Returns nil without
// error when no policy file exists.
func LoadPolicy(repoRoot string) (*PolicyFile, error) {
	policyPath := filepath.Join(repoRoot, PolicyFileName)

	data, err := os.ReadFile(policyPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", PolicyFileName, err)
	}

	var policy PolicyFile
	if err := toml.Unmarshal(data, &policy); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", PolicyFileName, err)
	}

	if policy.Version != 1 {
		return nil, &ConfigError{Field: "version", Message: fmt.Sprintf("unsupported policy version %d", policy.Version)}
	}

	return &policy, nil
}

// ApplyPolicy merges policy overrides into the configuration.
// A nil policy leaves the configuration untouched.
func (c *Config) ApplyPolicy(p *PolicyFile) {
	if p == nil {
		return
	}
	if p.Detection.RecordThreshold != nil {
		c.Detection.RecordThreshold = *p.Detection.RecordThreshold
	}
	if p.Detection.DeferThreshold != nil {
		c.Detection.DeferThreshold = *p.Detection.DeferThreshold
	}
}
