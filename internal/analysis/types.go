package analysis

// Scope classifies the blast radius of a change.
type Scope string

const (
	// ScopeFile means the change is contained in a single file
	ScopeFile Scope = "file"
	// ScopeModule means the change spans a module
	ScopeModule Scope = "module"
	// ScopeProject means the change is project-wide
	ScopeProject Scope = "project"
)

// ChangeAnalysis holds the pre-computed facts about a proposed change.
// The facts are produced by an upstream diff/static-analysis pipeline;
// this package never inspects code itself. All fields are read-only
// inputs for the detection core.
type ChangeAnalysis struct {
	// AffectedFiles are the repo-relative paths touched by the change
	AffectedFiles []string `json:"affectedFiles" yaml:"affectedFiles"`

	// AffectedConcepts are the distinct semantic concepts touched
	AffectedConcepts []string `json:"affectedConcepts" yaml:"affectedConcepts"`

	// Scope is the blast radius classification (file, module, project)
	Scope Scope `json:"scope" yaml:"scope"`

	// PatternChanges names the design-pattern changes introduced
	PatternChanges []string `json:"patternChanges" yaml:"patternChanges"`

	// DependentsCount is the number of files depending on the changed code
	DependentsCount int `json:"dependentsCount" yaml:"dependentsCount"`

	// BreakingChanges reports whether the change breaks a public contract
	BreakingChanges bool `json:"breakingChanges" yaml:"breakingChanges"`

	// ConfigurationChanges reports whether the change alters project configuration
	ConfigurationChanges bool `json:"configurationChanges" yaml:"configurationChanges"`
}

// PartialChangeAnalysis mirrors ChangeAnalysis but every field may be
// absent. It is the input to the fast-path classifier, which runs while
// a fuller analysis is still being assembled. Nil slices, an empty
// Scope, and nil pointers all mean "not computed yet".
type PartialChangeAnalysis struct {
	AffectedFiles    []string `json:"affectedFiles,omitempty" yaml:"affectedFiles,omitempty"`
	AffectedConcepts []string `json:"affectedConcepts,omitempty" yaml:"affectedConcepts,omitempty"`
	Scope            Scope    `json:"scope,omitempty" yaml:"scope,omitempty"`
	PatternChanges   []string `json:"patternChanges,omitempty" yaml:"patternChanges,omitempty"`
	DependentsCount  *int     `json:"dependentsCount,omitempty" yaml:"dependentsCount,omitempty"`
	BreakingChanges  *bool    `json:"breakingChanges,omitempty" yaml:"breakingChanges,omitempty"`
}
