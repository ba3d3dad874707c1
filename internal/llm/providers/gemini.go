package providers

import (
	"context"
	"fmt"
	"strings"
	"time"

	"google.golang.org/genai"

	"career-advisor/internal/config"
	"career-advisor/internal/logging"
	"career-advisor/pkg/models"
)

// GeminiProvider implements the LLM provider interface using Google Gemini
type GeminiProvider struct {
	client *genai.Client
	config *config.Config
	logger logging.Logger
}

// NewGeminiProvider creates a new Gemini provider instance
func NewGeminiProvider(cfg *config.Config) (*GeminiProvider, error) {
	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey: cfg.LLM.APIKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiProvider{
		client: client,
		config: cfg,
		logger: logging.GetGlobalLogger(),
	}, nil
}

// Complete sends a single-turn request to Gemini and returns the text reply
func (gp *GeminiProvider) Complete(ctx context.Context, req models.CompletionRequest) (string, error) {
	startTime := time.Now()

	gp.logger.Debug("Sending completion request to Gemini", map[string]interface{}{
		"prompt_length": len(req.Prompt),
		"provider":      "gemini",
	})

	genaiConfig := &genai.GenerateContentConfig{}

	if req.System != "" {
		genaiConfig.SystemInstruction = genai.NewContentFromText(req.System, genai.RoleUser)
	}

	if maxTokens := gp.maxTokens(req); maxTokens > 0 {
		genaiConfig.MaxOutputTokens = int32(maxTokens)
	}

	if temperature := gp.temperature(req); temperature > 0 {
		genaiConfig.Temperature = genai.Ptr(temperature)
	}

	result, err := gp.client.Models.GenerateContent(ctx, gp.config.LLM.Model, genai.Text(req.Prompt), genaiConfig)
	if err != nil {
		return "", fmt.Errorf("failed to call Gemini API: %w", err)
	}

	text := strings.TrimSpace(result.Text())
	if text == "" {
		return "", fmt.Errorf("no text content in Gemini response")
	}

	gp.logger.Debug("Completion received from Gemini", map[string]interface{}{
		"response_length": len(text),
		"processing_time": time.Since(startTime),
		"provider":        "gemini",
	})

	return text, nil
}

// IsHealthy checks if the Gemini provider is healthy and available
func (gp *GeminiProvider) IsHealthy(ctx context.Context) error {
	if gp.config.LLM.APIKey == "" {
		return fmt.Errorf("Gemini API key not configured - set LLM_API_KEY environment variable")
	}

	// Model lookup is the cheapest request that exercises the API key
	_, err := gp.client.Models.Get(ctx, gp.config.LLM.Model, &genai.GetModelConfig{})
	if err != nil {
		return fmt.Errorf("Gemini API health check failed: %w", err)
	}

	return nil
}

// GetProviderName returns the name of the LLM provider
func (gp *GeminiProvider) GetProviderName() string {
	return "gemini"
}

func (gp *GeminiProvider) maxTokens(req models.CompletionRequest) int {
	if req.MaxTokens > 0 {
		return req.MaxTokens
	}
	return gp.config.LLM.MaxTokens
}

func (gp *GeminiProvider) temperature(req models.CompletionRequest) float32 {
	if req.Temperature > 0 {
		return req.Temperature
	}
	return gp.config.LLM.Temperature
}
