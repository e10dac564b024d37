package usecase

import (
	"encoding/json"
	"fmt"

	"event-explainer-service/internal/analysis/core/domain"
	"event-explainer-service/internal/analysis/core/ports"
)

const systemPrompt = `You are an expert Stripe technical consultant and business analyst. Your goal is to parse raw JSON webhook events and translate them into clear, actionable insights for a non-technical stakeholder.

RULES:
1. Output valid JSON ONLY. No markdown, no commentary.
2. Be concise but specific. Avoid generic advice like 'check logs'.
3. Derive impact level conservatively: failures/disputes are HIGH, warnings/upcoming invoices are LOW/MEDIUM.
4. 'root_cause' should explain the technical reason (e.g., 'Insufficient funds', 'Expired card').`

const userPromptTemplate = `Analyze the following Stripe webhook event.

Event Type: %s

Raw Payload:
%s

OUTPUT INSTRUCTIONS:
1. 'summary': Provide a 1-sentence executive summary of what happened.
2. 'root_cause': Extract the specific failure code or reason if present (e.g., 'generic_decline', 'insufficient_funds'). If success, state "Successful transaction".
3. 'customer_impact_level':
   - HIGH: Payment failed, dispute created, subscription canceled unexpectedly.
   - MEDIUM: Payment dispute won, subscription updated.
   - LOW: Payout paid, invoice created, payment succeeded.
4. 'recommended_actions':
   - Propose 2-3 specific steps.
   - Example 1: "Contact customer [email/ID] to update payment method."
   - Example 2: "Review dispute evidence for charge [ID]."

Output STRICT JSON matching this schema:
{
  "event_type": "%s",
  "summary": "...",
  "root_cause": "...",
  "customer_impact_level": "low | medium | high",
  "recommended_actions": ["..."]
}`

// buildCompletionRequest embeds the event type and a pretty-printed
// serialization of the event into the instruction pair sent upstream.
func buildCompletionRequest(e domain.Event) (ports.CompletionRequest, error) {
	payload, err := json.MarshalIndent(map[string]any{
		"type": e.Type,
		"data": e.Data,
	}, "", "  ")
	if err != nil {
		return ports.CompletionRequest{}, fmt.Errorf("marshal event payload: %w", err)
	}

	return ports.CompletionRequest{
		System: systemPrompt,
		User:   fmt.Sprintf(userPromptTemplate, e.Type, payload, e.Type),
	}, nil
}
