package main

import (
	"encoding/json"
	"fmt"
	"strings"
)

// OutputFormat represents the output format type
type OutputFormat string

const (
	FormatJSON  OutputFormat = "json"
	FormatHuman OutputFormat = "human"
)

// FormatResponse formats a response according to the specified format
func FormatResponse(resp interface{}, format OutputFormat) (string, error) {
	switch format {
	case FormatJSON:
		return formatJSON(resp)
	case FormatHuman:
		return formatHuman(resp)
	default:
		return "", fmt.Errorf("unsupported format: %s", format)
	}
}

// formatJSON formats the response as JSON
func formatJSON(resp interface{}) (string, error) {
	data, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal JSON: %w", err)
	}
	return string(data), nil
}

// formatHuman formats the response in human-readable format
func formatHuman(resp interface{}) (string, error) {
	switch v := resp.(type) {
	case *DetectResponseCLI:
		return formatDetectHuman(v)
	case *QuickResponseCLI:
		return formatQuickHuman(v)
	case *ExplainResponseCLI:
		return formatExplainHuman(v)
	case *SignificantResponseCLI:
		return formatSignificantHuman(v)
	case *DecisionsResponseCLI:
		return formatDecisionsHuman(v)
	default:
		// For unknown types, fall back to JSON
		return formatJSON(resp)
	}
}

// DetectResponseCLI contains the full detection verdict for CLI output
type DetectResponseCLI struct {
	IsArchitectural bool          `json:"isArchitectural"`
	Confidence      float64       `json:"confidence"`
	Reasons         []string      `json:"reasons"`
	Recommendation  string        `json:"recommendation"`
	Narrative       *NarrativeCLI `json:"narrative,omitempty"`
	RecordedID      string        `json:"recordedId,omitempty"`
}

// NarrativeCLI contains the synthesized justification for CLI output
type NarrativeCLI struct {
	DecisionContext       string            `json:"decisionContext"`
	SuggestedRationale    string            `json:"suggestedRationale"`
	SuggestedAlternatives map[string]string `json:"suggestedAlternatives"`
}

// QuickResponseCLI contains the fast-path verdict for CLI output
type QuickResponseCLI struct {
	LikelyArchitectural bool `json:"likelyArchitectural"`
}

// ExplainResponseCLI contains the narrative for CLI output
type ExplainResponseCLI struct {
	Narrative NarrativeCLI `json:"narrative"`
}

// SignificantResponseCLI contains path significance verdicts for CLI output
type SignificantResponseCLI struct {
	Paths []PathVerdictCLI `json:"paths"`
}

// PathVerdictCLI is the significance verdict for a single path
type PathVerdictCLI struct {
	Path        string `json:"path"`
	Significant bool   `json:"significant"`
}

// DecisionsResponseCLI contains stored decisions for CLI output
type DecisionsResponseCLI struct {
	Total     int           `json:"total"`
	Decisions []DecisionCLI `json:"decisions"`
}

// DecisionCLI is a stored decision for CLI output
type DecisionCLI struct {
	ID             string   `json:"id"`
	Title          string   `json:"title"`
	Context        string   `json:"context"`
	Rationale      string   `json:"rationale"`
	Confidence     float64  `json:"confidence"`
	Reasons        []string `json:"reasons"`
	Recommendation string   `json:"recommendation"`
	Status         string   `json:"status"`
	CreatedAt      string   `json:"createdAt"`
}

func formatDetectHuman(resp *DetectResponseCLI) (string, error) {
	var b strings.Builder

	b.WriteString("Architectural Decision Detection\n")
	b.WriteString(strings.Repeat("=", 60) + "\n\n")

	verdictIcon := "✗"
	verdictText := "Not architectural"
	if resp.IsArchitectural {
		verdictIcon = "✓"
		verdictText = "Architectural decision detected"
	}
	b.WriteString(fmt.Sprintf("%s %s\n", verdictIcon, verdictText))
	b.WriteString(fmt.Sprintf("Confidence: %.2f\n", resp.Confidence))
	b.WriteString(fmt.Sprintf("Recommendation: %s\n\n", resp.Recommendation))

	if len(resp.Reasons) > 0 {
		b.WriteString("Reasons:\n")
		for _, reason := range resp.Reasons {
			b.WriteString(fmt.Sprintf("  - %s\n", reason))
		}
		b.WriteString("\n")
	}

	if resp.Narrative != nil {
		b.WriteString("Suggested Record:\n")
		b.WriteString(fmt.Sprintf("  Context: %s\n", resp.Narrative.DecisionContext))
		b.WriteString(fmt.Sprintf("  Rationale: %s\n", resp.Narrative.SuggestedRationale))
	}

	if resp.RecordedID != "" {
		b.WriteString(fmt.Sprintf("\nDecision %s recorded.\n", resp.RecordedID))
	}

	return b.String(), nil
}

func formatQuickHuman(resp *QuickResponseCLI) (string, error) {
	if resp.LikelyArchitectural {
		return "✓ Likely architectural (run 'adc detect' for the weighted verdict)", nil
	}
	return "✗ Unlikely to be architectural", nil
}

func formatExplainHuman(resp *ExplainResponseCLI) (string, error) {
	var b strings.Builder

	b.WriteString("Decision Narrative\n")
	b.WriteString(strings.Repeat("=", 60) + "\n\n")
	b.WriteString(fmt.Sprintf("Context: %s\n", resp.Narrative.DecisionContext))
	b.WriteString(fmt.Sprintf("Rationale: %s\n", resp.Narrative.SuggestedRationale))

	if len(resp.Narrative.SuggestedAlternatives) > 0 {
		b.WriteString("\nAlternatives:\n")
		for name, desc := range resp.Narrative.SuggestedAlternatives {
			b.WriteString(fmt.Sprintf("  %s: %s\n", name, desc))
		}
	}

	return b.String(), nil
}

func formatSignificantHuman(resp *SignificantResponseCLI) (string, error) {
	var b strings.Builder

	for _, p := range resp.Paths {
		icon := "✗"
		if p.Significant {
			icon = "✓"
		}
		b.WriteString(fmt.Sprintf("%s %s\n", icon, p.Path))
	}

	return strings.TrimRight(b.String(), "\n"), nil
}

func formatDecisionsHuman(resp *DecisionsResponseCLI) (string, error) {
	var b strings.Builder

	b.WriteString("Architectural Decisions\n")
	b.WriteString(strings.Repeat("=", 60) + "\n\n")
	b.WriteString(fmt.Sprintf("Total: %d\n\n", resp.Total))

	for i, d := range resp.Decisions {
		b.WriteString(fmt.Sprintf("%d. %s [%s]\n", i+1, d.Title, d.Status))
		b.WriteString(fmt.Sprintf("   ID: %s\n", d.ID))
		b.WriteString(fmt.Sprintf("   Confidence: %.2f\n", d.Confidence))
		b.WriteString(fmt.Sprintf("   Context: %s\n", d.Context))
		b.WriteString(fmt.Sprintf("   Rationale: %s\n", d.Rationale))
		b.WriteString(fmt.Sprintf("   Created: %s\n\n", d.CreatedAt))
	}

	return b.String(), nil
}
