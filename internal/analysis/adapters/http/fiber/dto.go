package fiber

// ExplainEventRequest represents an inbound webhook event
// @Description Webhook event DTO
type ExplainEventRequest struct {
	Type string         `json:"type"`
	Data map[string]any `json:"data"`
}

type AnalysisResponse struct {
	EventType           string   `json:"event_type"`
	Summary             string   `json:"summary"`
	RootCause           string   `json:"root_cause"`
	CustomerImpactLevel string   `json:"customer_impact_level"`
	RecommendedActions  []string `json:"recommended_actions"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_event"`
	Message string `json:"message" example:"event field 'type' is required"`
}
