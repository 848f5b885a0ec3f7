package detect

import (
	"fmt"

	"adc/internal/analysis"
)

// Default thresholds on the raw (unclamped) confidence sum.
const (
	// DefaultRecordThreshold is the minimum raw sum for an architectural verdict
	DefaultRecordThreshold = 0.4
	// DefaultDeferThreshold is the minimum raw sum to defer to an existing
	// project-level decision instead of skipping outright
	DefaultDeferThreshold = 0.2
)

// Criterion weights. All weights are non-negative, so clamping the
// reported confidence never changes a threshold decision.
const (
	weightFileImpact    = 0.30
	weightConceptImpact = 0.25
	weightProjectScope  = 0.30
	weightModuleScope   = 0.15
	weightDependents    = 0.20
	weightPatternChange = 0.25
	weightBreaking      = 0.20
	weightConfiguration = 0.15
)

// Criterion trigger cutoffs.
const (
	fileImpactMin    = 3
	conceptImpactMin = 10
	dependentsMin    = 5
)

// scopeSignal is the contribution of a scope value to the score. The two
// scope criteria are mutually exclusive, which the enum-keyed lookup
// makes structurally obvious: a scope has exactly one entry or none.
type scopeSignal struct {
	weight float64
	reason string
}

var scopeSignals = map[analysis.Scope]scopeSignal{
	analysis.ScopeProject: {weightProjectScope, "Project-wide scope detected"},
	analysis.ScopeModule:  {weightModuleScope, "Module-wide scope detected"},
}

// criterion is one row of the scoring table: evaluate returns the weight
// contributed and the reason string when the criterion triggers.
type criterion struct {
	name     string
	evaluate func(a *analysis.ChangeAnalysis) (float64, string, bool)
}

// criteria is the scoring table, evaluated in fixed order. Keeping the
// table declarative keeps every weight independently testable and
// tunable, and guarantees one reason per triggered criterion.
var criteria = []criterion{
	{
		name: "file-impact",
		evaluate: func(a *analysis.ChangeAnalysis) (float64, string, bool) {
			if len(a.AffectedFiles) < fileImpactMin {
				return 0, "", false
			}
			return weightFileImpact, fmt.Sprintf("Affects %d files", len(a.AffectedFiles)), true
		},
	},
	{
		name: "concept-impact",
		evaluate: func(a *analysis.ChangeAnalysis) (float64, string, bool) {
			if len(a.AffectedConcepts) < conceptImpactMin {
				return 0, "", false
			}
			return weightConceptImpact, fmt.Sprintf("Affects %d semantic concepts", len(a.AffectedConcepts)), true
		},
	},
	{
		name: "scope",
		evaluate: func(a *analysis.ChangeAnalysis) (float64, string, bool) {
			sig, ok := scopeSignals[a.Scope]
			if !ok {
				return 0, "", false
			}
			return sig.weight, sig.reason, true
		},
	},
	{
		name: "dependents",
		evaluate: func(a *analysis.ChangeAnalysis) (float64, string, bool) {
			if a.DependentsCount < dependentsMin {
				return 0, "", false
			}
			return weightDependents, fmt.Sprintf("Affects %d dependent files", a.DependentsCount), true
		},
	},
	{
		name: "pattern-changes",
		evaluate: func(a *analysis.ChangeAnalysis) (float64, string, bool) {
			if len(a.PatternChanges) == 0 {
				return 0, "", false
			}
			return weightPatternChange, fmt.Sprintf("Introduces %d pattern changes", len(a.PatternChanges)), true
		},
	},
	{
		name: "breaking-changes",
		evaluate: func(a *analysis.ChangeAnalysis) (float64, string, bool) {
			if !a.BreakingChanges {
				return 0, "", false
			}
			return weightBreaking, "Contains breaking changes", true
		},
	},
	{
		name: "configuration-changes",
		evaluate: func(a *analysis.ChangeAnalysis) (float64, string, bool) {
			if !a.ConfigurationChanges {
				return 0, "", false
			}
			return weightConfiguration, "Modifies project configuration", true
		},
	},
}

// Scorer maps a ChangeAnalysis to a DecisionCriteria verdict using the
// additive criterion table. Scoring is deterministic, total, and free of
// side effects; a Scorer is safe for concurrent use.
type Scorer struct {
	recordThreshold float64
	deferThreshold  float64
}

// NewScorer creates a Scorer with the default thresholds.
func NewScorer() *Scorer {
	return NewScorerWithThresholds(DefaultRecordThreshold, DefaultDeferThreshold)
}

// NewScorerWithThresholds creates a Scorer with tuned thresholds.
// Out-of-range values fall back to the defaults.
func NewScorerWithThresholds(record, deferTo float64) *Scorer {
	if record <= 0 || record > 1 {
		record = DefaultRecordThreshold
	}
	if deferTo <= 0 || deferTo >= record {
		deferTo = DefaultDeferThreshold
	}
	return &Scorer{
		recordThreshold: record,
		deferThreshold:  deferTo,
	}
}

// Score evaluates every criterion in table order and derives the verdict.
// Thresholds compare against the unclamped raw sum; only the reported
// Confidence is clamped to 1.0. Several criteria can co-trigger, so the
// raw sum may exceed 1.0.
func (s *Scorer) Score(a *analysis.ChangeAnalysis) DecisionCriteria {
	raw := 0.0
	reasons := make([]string, 0, len(criteria))

	for _, c := range criteria {
		weight, reason, triggered := c.evaluate(a)
		if !triggered {
			continue
		}
		raw += weight
		reasons = append(reasons, reason)
	}

	confidence := raw
	if confidence > 1.0 {
		confidence = 1.0
	}

	isArchitectural := raw >= s.recordThreshold

	recommendation := RecommendSkip
	switch {
	case isArchitectural:
		recommendation = RecommendRecord
	case raw >= s.deferThreshold:
		recommendation = RecommendUseProjectDecision
	}

	return DecisionCriteria{
		IsArchitectural: isArchitectural,
		Confidence:      confidence,
		Reasons:         reasons,
		Recommendation:  recommendation,
	}
}
