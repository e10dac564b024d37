package usecase

import (
	"context"
	"errors"
	"fmt"

	"event-explainer-service/internal/analysis/core/domain"
	"event-explainer-service/internal/analysis/core/ports"
	"event-explainer-service/internal/metrics"
)

var (
	ErrMissingEventType    = errors.New("event field 'type' is required")
	ErrMissingEventData    = errors.New("event field 'data' is required")
	ErrUpstreamUnavailable = errors.New("upstream analysis call failed")
)

type ExplainEventInput struct {
	EventType string
	Data      map[string]any
}

type ExplainEventUseCase struct {
	completer ports.CompletionPort
}

func NewExplainEventUseCase(completer ports.CompletionPort) *ExplainEventUseCase {
	return &ExplainEventUseCase{completer: completer}
}

// Execute validates the inbound event, forwards it to the completion port and
// coerces the reply into a domain.Analysis. An unparseable reply is absorbed
// by the fallback analysis; only validation and upstream failures are errors.
func (uc *ExplainEventUseCase) Execute(ctx context.Context, in ExplainEventInput) (*domain.Analysis, error) {

	if err := validateInput(in); err != nil {
		return nil, err
	}

	event := domain.Event{Type: in.EventType, Data: in.Data}

	req, err := buildCompletionRequest(event)
	if err != nil {
		return nil, err
	}

	raw, err := uc.completer.Complete(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}

	result := parseCompletion(raw, event.Type)
	if result.Fallback {
		metrics.AnalysisFallbacks.Inc()
	}

	analysis := result.Analysis
	return &analysis, nil
}

func validateInput(in ExplainEventInput) error {

	if in.EventType == "" {
		return ErrMissingEventType
	}

	// An empty data object is fine; an absent one is not.
	if in.Data == nil {
		return ErrMissingEventData
	}

	return nil
}
