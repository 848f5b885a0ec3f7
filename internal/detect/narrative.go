package detect

import (
	"fmt"
	"strings"

	"adc/internal/analysis"
)

// Explain synthesizes a decision context and rationale from the same
// facts the scorer consumes. Unlike scoring, the branches are a priority
// chain and exactly one fires: pattern adoption dominates the narrative,
// then project-wide scope, then breaking changes, then a structural
// default. Explain is pure and can be called independently of Score,
// though callers typically invoke it only for a record recommendation.
func Explain(a *analysis.ChangeAnalysis) Narrative {
	n := Narrative{
		// Always initialized, never nil: extension point for callers
		// that attach considered alternatives before persisting.
		SuggestedAlternatives: map[string]string{},
	}

	switch {
	case len(a.PatternChanges) > 0:
		n.DecisionContext = fmt.Sprintf("Adopted %s pattern(s)", strings.Join(a.PatternChanges, ", "))
		n.SuggestedRationale = fmt.Sprintf("Pattern detected across %d files", len(a.AffectedFiles))

	case a.Scope == analysis.ScopeProject:
		n.DecisionContext = fmt.Sprintf("Project-wide change affecting %d files", len(a.AffectedFiles))
		n.SuggestedRationale = fmt.Sprintf("Change touches %d semantic concepts across the project", len(a.AffectedConcepts))

	case a.BreakingChanges:
		n.DecisionContext = "Breaking change introduced"
		n.SuggestedRationale = fmt.Sprintf("%d dependent files are affected by the contract change", a.DependentsCount)

	default:
		n.DecisionContext = fmt.Sprintf("Structural change affecting %d files", len(a.AffectedFiles))
		n.SuggestedRationale = fmt.Sprintf("Change spans %d semantic concepts", len(a.AffectedConcepts))
	}

	return n
}
