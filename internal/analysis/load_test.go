package analysis

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDecodeJSON(t *testing.T) {
	input := `{
		"affectedFiles": ["a.go", "b.go", "c.go"],
		"affectedConcepts": ["routing"],
		"scope": "project",
		"patternChanges": ["adapter"],
		"dependentsCount": 6,
		"breakingChanges": true,
		"configurationChanges": false
	}`

	a, err := Decode(strings.NewReader(input), FormatJSON)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	if len(a.AffectedFiles) != 3 {
		t.Errorf("affectedFiles = %v, want 3 entries", a.AffectedFiles)
	}
	if a.Scope != ScopeProject {
		t.Errorf("scope = %s, want project", a.Scope)
	}
	if a.DependentsCount != 6 {
		t.Errorf("dependentsCount = %d, want 6", a.DependentsCount)
	}
	if !a.BreakingChanges {
		t.Error("breakingChanges = false, want true")
	}
}

func TestDecodeYAML(t *testing.T) {
	input := `
affectedFiles:
  - a.go
  - b.go
affectedConcepts: []
scope: module
patternChanges: []
dependentsCount: 0
breakingChanges: false
configurationChanges: true
`

	a, err := Decode(strings.NewReader(input), FormatYAML)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	if len(a.AffectedFiles) != 2 {
		t.Errorf("affectedFiles = %v, want 2 entries", a.AffectedFiles)
	}
	if a.Scope != ScopeModule {
		t.Errorf("scope = %s, want module", a.Scope)
	}
	if !a.ConfigurationChanges {
		t.Error("configurationChanges = false, want true")
	}
}

func TestDecodeRejectsMalformedInput(t *testing.T) {
	if _, err := Decode(strings.NewReader("{not json"), FormatJSON); err == nil {
		t.Error("expected error for malformed JSON")
	}
	if _, err := Decode(strings.NewReader("ok"), "xml"); err == nil {
		t.Error("expected error for unsupported format")
	}
}

func TestDecodePartialMissingFields(t *testing.T) {
	p, err := DecodePartial(strings.NewReader(`{"scope": "project"}`), FormatJSON)
	if err != nil {
		t.Fatalf("DecodePartial() error = %v", err)
	}

	if p.Scope != ScopeProject {
		t.Errorf("scope = %s, want project", p.Scope)
	}
	if p.AffectedFiles != nil {
		t.Errorf("affectedFiles = %v, want nil", p.AffectedFiles)
	}
	if p.DependentsCount != nil {
		t.Errorf("dependentsCount = %v, want nil", p.DependentsCount)
	}
	if p.BreakingChanges != nil {
		t.Errorf("breakingChanges = %v, want nil", p.BreakingChanges)
	}
}

func TestLoadDetectsFormatFromExtension(t *testing.T) {
	dir := t.TempDir()

	jsonPath := filepath.Join(dir, "change.json")
	if err := os.WriteFile(jsonPath, []byte(`{"scope": "file"}`), 0644); err != nil {
		t.Fatal(err)
	}

	yamlPath := filepath.Join(dir, "change.yaml")
	if err := os.WriteFile(yamlPath, []byte("scope: module\n"), 0644); err != nil {
		t.Fatal(err)
	}

	fromJSON, err := Load(jsonPath)
	if err != nil {
		t.Fatalf("Load(json) error = %v", err)
	}
	if fromJSON.Scope != ScopeFile {
		t.Errorf("scope = %s, want file", fromJSON.Scope)
	}

	fromYAML, err := Load(yamlPath)
	if err != nil {
		t.Fatalf("Load(yaml) error = %v", err)
	}
	if fromYAML.Scope != ScopeModule {
		t.Errorf("scope = %s, want module", fromYAML.Scope)
	}
}

func TestFormatForPath(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"change.yaml", FormatYAML},
		{"change.yml", FormatYAML},
		{"CHANGE.YAML", FormatYAML},
		{"change.json", FormatJSON},
		{"change", FormatJSON},
	}

	for _, tt := range tests {
		if got := FormatForPath(tt.path); got != tt.want {
			t.Errorf("FormatForPath(%q) = %s, want %s", tt.path, got, tt.want)
		}
	}
}
