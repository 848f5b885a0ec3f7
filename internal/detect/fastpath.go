package detect

import "adc/internal/analysis"

// IsLikelyArchitectural is the fast-path classifier: a relaxed OR over
// the scoring criteria, without weighting. A single satisfied criterion
// suffices. It accepts partial analysis data gathered while the full
// pipeline is still running; absent fields never trigger and never
// panic. Use Scorer.Score for the authoritative weighted verdict.
func IsLikelyArchitectural(p *analysis.PartialChangeAnalysis) bool {
	if p == nil {
		return false
	}

	if len(p.AffectedFiles) >= fileImpactMin {
		return true
	}
	if len(p.AffectedConcepts) >= conceptImpactMin {
		return true
	}
	if p.Scope == analysis.ScopeProject {
		return true
	}
	if p.DependentsCount != nil && *p.DependentsCount >= dependentsMin {
		return true
	}
	if len(p.PatternChanges) > 0 {
		return true
	}
	if p.BreakingChanges != nil && *p.BreakingChanges {
		return true
	}

	return false
}
