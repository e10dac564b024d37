package usecase

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"event-explainer-service/internal/analysis/core/domain"
)

// completionAnalysis mirrors the JSON shape the prompt asks the model for.
type completionAnalysis struct {
	EventType           string   `json:"event_type"`
	Summary             string   `json:"summary"`
	RootCause           string   `json:"root_cause"`
	CustomerImpactLevel string   `json:"customer_impact_level"`
	RecommendedActions  []string `json:"recommended_actions"`
}

// ParseResult makes the parse-or-fallback branch explicit: Fallback is true
// when the reply could not be interpreted and default values were substituted.
type ParseResult struct {
	Analysis domain.Analysis
	Fallback bool
}

var fenceRe = regexp.MustCompile("```[a-zA-Z]*\n?|```")

// parseCompletion coerces the model's raw text reply into an analysis.
// The reported event type is always the inbound one, whatever the model said.
// This never fails: an unparseable reply yields the fallback analysis.
func parseCompletion(raw, eventType string) ParseResult {
	var wire completionAnalysis
	if err := json.Unmarshal([]byte(extractJSON(raw)), &wire); err != nil {
		return ParseResult{Analysis: fallbackAnalysis(eventType), Fallback: true}
	}

	actions := wire.RecommendedActions
	if actions == nil {
		actions = []string{}
	}

	return ParseResult{
		Analysis: domain.Analysis{
			EventType:           eventType,
			Summary:             wire.Summary,
			RootCause:           wire.RootCause,
			CustomerImpactLevel: domain.NormalizeImpactLevel(wire.CustomerImpactLevel),
			RecommendedActions:  actions,
		},
	}
}

// extractJSON strips markdown code fences and surrounding prose so the JSON
// body the model was asked for can be unmarshalled even when it disobeys.
func extractJSON(text string) string {
	cleaned := strings.TrimSpace(fenceRe.ReplaceAllString(text, ""))

	if start := strings.Index(cleaned, "{"); start >= 0 {
		if end := strings.LastIndex(cleaned, "}"); end > start {
			return cleaned[start : end+1]
		}
	}

	return cleaned
}

func fallbackAnalysis(eventType string) domain.Analysis {
	return domain.Analysis{
		EventType:           eventType,
		Summary:             fmt.Sprintf("Received event %s. Automated analysis unavailable.", eventType),
		RootCause:           "unknown",
		CustomerImpactLevel: domain.ImpactMedium,
		RecommendedActions:  []string{},
	}
}
