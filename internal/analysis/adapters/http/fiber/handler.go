package fiber

import (
	"context"
	"errors"
	"net/http"

	"event-explainer-service/internal/analysis/core/domain"
	"event-explainer-service/internal/analysis/core/usecase"
	"event-explainer-service/internal/metrics"

	"github.com/gofiber/fiber/v2"
)

type ExplainEventUseCase interface {
	Execute(ctx context.Context, in usecase.ExplainEventInput) (*domain.Analysis, error)
}

type AnalysisHandler struct {
	explainUC ExplainEventUseCase
}

func NewAnalysisHandler(explainUC ExplainEventUseCase) *AnalysisHandler {
	return &AnalysisHandler{explainUC: explainUC}
}

// ExplainEvent godoc
// @Summary Explain a webhook event
// @Description Forwards a payment-provider webhook event to the analysis model and returns a structured explanation
// @Tags Analysis
// @Accept json
// @Produce json
// @Param request body ExplainEventRequest true "Webhook event payload"
// @Success 200 {object} AnalysisResponse
// @Failure 400 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /explain_event [post]
func (h *AnalysisHandler) ExplainEvent(c *fiber.Ctx) error {
	var req ExplainEventRequest

	if err := c.BodyParser(&req); err != nil {
		metrics.ExplainRequests.WithLabelValues("invalid_json").Inc()
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid_json",
		})
	}

	input := usecase.ExplainEventInput{
		EventType: req.Type,
		Data:      req.Data,
	}

	res, err := h.explainUC.Execute(c.UserContext(), input)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrMissingEventType),
			errors.Is(err, usecase.ErrMissingEventData):
			metrics.ExplainRequests.WithLabelValues("invalid_event").Inc()
			return c.Status(http.StatusUnprocessableEntity).JSON(ErrorResponse{
				Error:   "invalid_event",
				Message: err.Error(),
			})
		case errors.Is(err, usecase.ErrUpstreamUnavailable):
			metrics.ExplainRequests.WithLabelValues("upstream_error").Inc()
			return c.Status(http.StatusBadGateway).JSON(ErrorResponse{
				Error:   "upstream_unavailable",
				Message: "event analysis call failed",
			})
		default:
			metrics.ExplainRequests.WithLabelValues("internal_error").Inc()
			return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
				Error: "internal_server_error",
			})
		}
	}

	resp := AnalysisResponse{
		EventType:           res.EventType,
		Summary:             res.Summary,
		RootCause:           res.RootCause,
		CustomerImpactLevel: string(res.CustomerImpactLevel),
		RecommendedActions:  make([]string, 0, len(res.RecommendedActions)),
	}
	resp.RecommendedActions = append(resp.RecommendedActions, res.RecommendedActions...)

	metrics.ExplainRequests.WithLabelValues("ok").Inc()
	return c.Status(http.StatusOK).JSON(resp)
}

// Healthz godoc
// @Summary Liveness probe
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /healthz [get]
func (h *AnalysisHandler) Healthz(c *fiber.Ctx) error {
	return c.Status(http.StatusOK).JSON(fiber.Map{
		"status": "ok",
	})
}
