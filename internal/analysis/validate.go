package analysis

import "fmt"

// ValidationError describes a malformed field in a ChangeAnalysis.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return "invalid change analysis: field '" + e.Field + "': " + e.Message
}

// Validate checks that the analysis is well-formed. Malformed inputs are
// a contract violation by the upstream pipeline and must be rejected at
// the boundary; the detection core assumes a validated record and never
// coerces bad values itself. Empty sequences are valid.
func (a *ChangeAnalysis) Validate() error {
	if a.DependentsCount < 0 {
		return &ValidationError{
			Field:   "dependentsCount",
			Message: fmt.Sprintf("must be non-negative, got %d", a.DependentsCount),
		}
	}

	switch a.Scope {
	case ScopeFile, ScopeModule, ScopeProject:
	default:
		return &ValidationError{
			Field:   "scope",
			Message: fmt.Sprintf("must be one of file, module, project; got %q", a.Scope),
		}
	}

	return nil
}
