package detect

// Recommendation is the action directive derived from the confidence score.
type Recommendation string

const (
	// RecommendRecord means the change should be recorded as an ADR
	RecommendRecord Recommendation = "record"
	// RecommendSkip means the change is not worth recording
	RecommendSkip Recommendation = "skip"
	// RecommendUseProjectDecision means an existing project-level decision
	// likely already covers the change
	RecommendUseProjectDecision Recommendation = "use_project_decision"
)

// DecisionCriteria is the scorer's verdict for a single change analysis.
type DecisionCriteria struct {
	// IsArchitectural is the final verdict
	IsArchitectural bool `json:"isArchitectural"`

	// Confidence is the aggregated score, clamped to [0,1]. The verdict
	// and recommendation are derived from the unclamped sum.
	Confidence float64 `json:"confidence"`

	// Reasons are human-readable justifications, one per triggered
	// criterion, in criterion-evaluation order
	Reasons []string `json:"reasons"`

	// Recommendation is the derived action guidance
	Recommendation Recommendation `json:"recommendation"`
}

// Narrative is the synthesized justification for a decision.
type Narrative struct {
	// DecisionContext summarizes what kind of change was made
	DecisionContext string `json:"decisionContext"`

	// SuggestedRationale is a draft rationale citing the dominant fact
	SuggestedRationale string `json:"suggestedRationale"`

	// SuggestedAlternatives maps alternative names to descriptions.
	// Currently always empty; kept as an extension point for callers
	// that enrich the narrative with considered alternatives.
	SuggestedAlternatives map[string]string `json:"suggestedAlternatives"`
}
