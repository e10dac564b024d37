package ports

import "context"

type CompletionRequest struct {
	System string
	User   string
}

// CompletionPort is the outbound port to the LLM provider.
// Complete returns the model's raw text reply; any transport failure or
// non-success provider status surfaces as an error.
type CompletionPort interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}
