package llm

import (
	"context"

	"career-advisor/pkg/models"
)

// Provider defines the interface for LLM providers
type Provider interface {
	// Complete sends a single-turn request and returns the model's text reply verbatim
	Complete(ctx context.Context, req models.CompletionRequest) (string, error)

	// IsHealthy checks if the LLM provider is healthy and available
	IsHealthy(ctx context.Context) error

	// GetProviderName returns the name of the LLM provider
	GetProviderName() string
}
