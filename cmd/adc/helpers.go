package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"adc/internal/analysis"
	"adc/internal/config"
	"adc/internal/detect"
	"adc/internal/logging"
	"adc/internal/store"
)

var (
	storeOnce   sync.Once
	sharedStore *store.Store
	storeErr    error
)

// getStore returns a shared decision store, lazily opened on first use.
func getStore(repoRoot string, logger *logging.Logger) (*store.Store, error) {
	storeOnce.Do(func() {
		cfg := loadConfigOrDefault(repoRoot, logger)

		dbPath := cfg.Store.Path
		if !filepath.IsAbs(dbPath) {
			dbPath = filepath.Join(repoRoot, dbPath)
		}

		s, err := store.Open(dbPath, logger)
		if err != nil {
			storeErr = fmt.Errorf("failed to open decision store: %w", err)
			return
		}
		sharedStore = s
	})

	return sharedStore, storeErr
}

// mustGetStore returns the shared decision store or exits on error.
func mustGetStore(repoRoot string, logger *logging.Logger) *store.Store {
	s, err := getStore(repoRoot, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing store: %v\n", err)
		os.Exit(1)
	}
	return s
}

// getRepoRoot returns the repository root directory.
func getRepoRoot() (string, error) {
	return os.Getwd()
}

// mustGetRepoRoot returns the repository root or exits on error.
func mustGetRepoRoot() string {
	repoRoot, err := getRepoRoot()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return repoRoot
}

// loadConfigOrDefault loads .adc/config.json with POLICY.toml overrides
// applied, falling back to defaults on load failure.
func loadConfigOrDefault(repoRoot string, logger *logging.Logger) *config.Config {
	cfg, err := config.LoadConfig(repoRoot)
	if err != nil {
		logger.Warn("Failed to load config, using defaults", map[string]interface{}{
			"error": err.Error(),
		})
		cfg = config.DefaultConfig()
	}

	policy, err := config.LoadPolicy(repoRoot)
	if err != nil {
		logger.Warn("Failed to load policy, ignoring it", map[string]interface{}{
			"error": err.Error(),
		})
		policy = nil
	}
	cfg.ApplyPolicy(policy)

	return cfg
}

// newScorer builds a Scorer from the effective configuration.
func newScorer(cfg *config.Config) *detect.Scorer {
	return detect.NewScorerWithThresholds(cfg.Detection.RecordThreshold, cfg.Detection.DeferThreshold)
}

// newMatcher builds a path matcher with any policy-supplied indicators.
func newMatcher(repoRoot string, logger *logging.Logger) *detect.Matcher {
	policy, err := config.LoadPolicy(repoRoot)
	if err != nil {
		logger.Warn("Failed to load policy, ignoring it", map[string]interface{}{
			"error": err.Error(),
		})
		return detect.NewMatcher()
	}
	if policy == nil {
		return detect.NewMatcher()
	}
	return detect.NewMatcherExtra(policy.Paths.SignificantIndicators)
}

// newLogger creates a logger with the specified format.
func newLogger(format string) *logging.Logger {
	logFormat := logging.HumanFormat
	if format == "json" {
		logFormat = logging.JSONFormat
	}
	return logging.NewLogger(logging.Config{
		Format: logFormat,
		Level:  logging.LevelFromEnv(logging.InfoLevel),
	})
}

// openAnalysisInput resolves a command argument to a reader and input
// format. "-" reads from stdin as JSON.
func openAnalysisInput(arg string) (io.ReadCloser, string, error) {
	if arg == "-" {
		return io.NopCloser(os.Stdin), analysis.FormatJSON, nil
	}

	file, err := os.Open(arg)
	if err != nil {
		return nil, "", fmt.Errorf("failed to open analysis file: %w", err)
	}
	return file, analysis.FormatForPath(arg), nil
}
