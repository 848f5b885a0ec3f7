// Package detect decides whether a proposed code change constitutes an
// architectural decision worth recording, and synthesizes a draft
// justification for it.
//
// The package consumes a pre-computed analysis.ChangeAnalysis record;
// it never inspects code itself. Every entry point is a pure function
// of its input: no I/O, no hidden state, safe for concurrent callers.
//
// Basic usage:
//
//	scorer := detect.NewScorer()
//	verdict := scorer.Score(&analysis.ChangeAnalysis{
//	    AffectedFiles: []string{"a.go", "b.go", "c.go"},
//	    Scope:         analysis.ScopeProject,
//	})
//
//	if verdict.Recommendation == detect.RecommendRecord {
//	    narrative := detect.Explain(a)
//	    // persist narrative.DecisionContext / narrative.SuggestedRationale
//	}
//
// Scoring:
//
// Seven weighted criteria are evaluated in fixed order, each contributing
// an additive weight and one reason string when triggered:
//
//   - 3+ affected files (0.30)
//   - 10+ affected semantic concepts (0.25)
//   - project-wide scope (0.30) or module-wide scope (0.15), exclusive
//   - 5+ dependent files (0.20)
//   - named pattern changes (0.25)
//   - breaking changes (0.20)
//   - configuration changes (0.15)
//
// The raw sum may exceed 1.0 when several criteria co-trigger; thresholds
// compare the raw sum, and only the reported confidence is clamped. With
// the default thresholds a raw sum >= 0.4 yields an architectural verdict
// and a record recommendation, >= 0.2 defers to an existing project-level
// decision, and anything below skips.
//
// IsLikelyArchitectural is a cheaper unweighted OR over the same criteria
// for partial analysis data, and Matcher flags architecturally significant
// file paths (manifests, entry points, architecture docs, core directories)
// without any analysis record at all.
package detect
