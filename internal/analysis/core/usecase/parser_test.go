package usecase

import (
	"testing"

	"event-explainer-service/internal/analysis/core/domain"
)

func TestParseCompletion_EventTypeAlwaysEchoed(t *testing.T) {
	res := parseCompletion(`{"event_type":"something.else","summary":"s","root_cause":"r","customer_impact_level":"low","recommended_actions":["a"]}`, "invoice.upcoming")

	if res.Fallback {
		t.Fatalf("expected parsed result, got fallback")
	}
	if res.Analysis.EventType != "invoice.upcoming" {
		t.Fatalf("expected inbound event type, got %s", res.Analysis.EventType)
	}
}

func TestParseCompletion_NullActionsBecomeEmptySlice(t *testing.T) {
	res := parseCompletion(`{"summary":"s","root_cause":"r","customer_impact_level":"low","recommended_actions":null}`, "evt")

	if res.Fallback {
		t.Fatalf("expected parsed result, got fallback")
	}
	if res.Analysis.RecommendedActions == nil {
		t.Fatalf("expected non-nil actions slice")
	}
	if len(res.Analysis.RecommendedActions) != 0 {
		t.Fatalf("expected empty actions, got %v", res.Analysis.RecommendedActions)
	}
}

func TestParseCompletion_GarbageYieldsFallback(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"plain_prose", "the payment failed, sorry"},
		{"truncated_json", `{"summary": "incomp`},
		{"wrong_field_type", `{"summary":"s","recommended_actions":"not a list"}`},
		{"empty", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := parseCompletion(tt.raw, "charge.dispute.created")
			if !res.Fallback {
				t.Fatalf("expected fallback for %q", tt.raw)
			}
			if res.Analysis.RootCause != "unknown" {
				t.Fatalf("expected root_cause=unknown, got %s", res.Analysis.RootCause)
			}
			if res.Analysis.CustomerImpactLevel != domain.ImpactMedium {
				t.Fatalf("expected impact=medium, got %s", res.Analysis.CustomerImpactLevel)
			}
		})
	}
}

func TestExtractJSON_ToleratesFencesAndProse(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"bare", `{"a":1}`, `{"a":1}`},
		{"fenced", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"prose_around", `Sure! Here it is: {"a":1} Hope that helps.`, `{"a":1}`},
		{"fence_and_prose", "Result:\n```\n{\"a\":1}\n```\ndone", `{"a":1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := extractJSON(tt.raw); got != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, got)
			}
		})
	}
}
