package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Version != 1 {
		t.Errorf("version = %d, want 1", cfg.Version)
	}
	if cfg.Detection.RecordThreshold != 0.4 {
		t.Errorf("recordThreshold = %v, want 0.4", cfg.Detection.RecordThreshold)
	}
	if cfg.Detection.DeferThreshold != 0.2 {
		t.Errorf("deferThreshold = %v, want 0.2", cfg.Detection.DeferThreshold)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate, got %v", err)
	}
}

func TestLoadConfigMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.Detection.RecordThreshold != 0.4 {
		t.Errorf("recordThreshold = %v, want default 0.4", cfg.Detection.RecordThreshold)
	}
}

func TestConfigSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()

	cfg := DefaultConfig()
	cfg.Detection.RecordThreshold = 0.5
	cfg.Store.Path = "custom/decisions.db"

	if err := cfg.Save(dir); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := LoadConfig(dir)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if loaded.Detection.RecordThreshold != 0.5 {
		t.Errorf("recordThreshold = %v, want 0.5", loaded.Detection.RecordThreshold)
	}
	if loaded.Store.Path != "custom/decisions.db" {
		t.Errorf("store path = %q, want custom/decisions.db", loaded.Store.Path)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"defaults are valid", func(c *Config) {}, false},
		{"unsupported version", func(c *Config) { c.Version = 9 }, true},
		{"record threshold above one", func(c *Config) { c.Detection.RecordThreshold = 1.5 }, true},
		{"record threshold zero", func(c *Config) { c.Detection.RecordThreshold = 0 }, true},
		{"defer threshold above record", func(c *Config) { c.Detection.DeferThreshold = 0.9 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadPolicy(t *testing.T) {
	dir := t.TempDir()

	policy := `
version = 1

[detection]
record_threshold = 0.5

[paths]
significant_indicators = ["terraform/", "schema.graphql"]
`
	if err := os.WriteFile(filepath.Join(dir, PolicyFileName), []byte(policy), 0644); err != nil {
		t.Fatal(err)
	}

	loaded, err := LoadPolicy(dir)
	if err != nil {
		t.Fatalf("LoadPolicy() error = %v", err)
	}
	if loaded == nil {
		t.Fatal("expected policy, got nil")
	}

	if loaded.Detection.RecordThreshold == nil || *loaded.Detection.RecordThreshold != 0.5 {
		t.Errorf("record_threshold = %v, want 0.5", loaded.Detection.RecordThreshold)
	}
	if loaded.Detection.DeferThreshold != nil {
		t.Errorf("defer_threshold = %v, want unset", loaded.Detection.DeferThreshold)
	}
	if len(loaded.Paths.SignificantIndicators) != 2 {
		t.Errorf("significant_indicators = %v, want 2 entries", loaded.Paths.SignificantIndicators)
	}
}

func TestLoadPolicyAbsent(t *testing.T) {
	policy, err := LoadPolicy(t.TempDir())
	if err != nil {
		t.Fatalf("LoadPolicy() error = %v", err)
	}
	if policy != nil {
		t.Errorf("expected nil policy, got %+v", policy)
	}
}

func TestLoadPolicyRejectsUnsupportedVersion(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, PolicyFileName), []byte("version = 2\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadPolicy(dir); err == nil {
		t.Error("expected error for unsupported policy version")
	}
}

func TestApplyPolicy(t *testing.T) {
	record := 0.55
	cfg := DefaultConfig()

	cfg.ApplyPolicy(&PolicyFile{
		Version:   1,
		Detection: PolicyDetection{RecordThreshold: &record},
	})

	if cfg.Detection.RecordThreshold != 0.55 {
		t.Errorf("recordThreshold = %v, want 0.55", cfg.Detection.RecordThreshold)
	}
	if cfg.Detection.DeferThreshold != 0.2 {
		t.Errorf("deferThreshold = %v, want untouched 0.2", cfg.Detection.DeferThreshold)
	}

	// nil policy leaves everything untouched
	cfg.ApplyPolicy(nil)
	if cfg.Detection.RecordThreshold != 0.55 {
		t.Errorf("recordThreshold changed by nil policy")
	}
}
