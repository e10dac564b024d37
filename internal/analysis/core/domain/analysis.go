package domain

import "strings"

// ImpactLevel is the coarse severity assigned to an event for triage.
type ImpactLevel string

const (
	ImpactLow    ImpactLevel = "low"
	ImpactMedium ImpactLevel = "medium"
	ImpactHigh   ImpactLevel = "high"
)

// NormalizeImpactLevel lowercases the raw value and coerces anything outside
// low/medium/high to medium.
func NormalizeImpactLevel(raw string) ImpactLevel {
	switch ImpactLevel(strings.ToLower(strings.TrimSpace(raw))) {
	case ImpactLow:
		return ImpactLow
	case ImpactMedium:
		return ImpactMedium
	case ImpactHigh:
		return ImpactHigh
	default:
		return ImpactMedium
	}
}

// Event is an inbound webhook notification from the payment provider.
type Event struct {
	Type string
	Data map[string]any
}

// Analysis is the structured explanation produced for a single event.
type Analysis struct {
	EventType           string
	Summary             string
	RootCause           string
	CustomerImpactLevel ImpactLevel
	RecommendedActions  []string
}
