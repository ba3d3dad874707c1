package llm

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"career-advisor/internal/config"
	"career-advisor/pkg/models"
	"career-advisor/pkg/utils"
)

func newTestConfig(provider string) *config.Config {
	cfg := &config.Config{}
	cfg.LLM.Provider = provider
	cfg.LLM.Model = "claude-sonnet-4-20250514"
	cfg.LLM.MaxTokens = 2000
	return cfg
}

func TestFactoryCreatesClaudeProvider(t *testing.T) {
	factory := NewFactory(newTestConfig("claude"))

	provider, err := factory.CreateProvider()
	if err != nil {
		t.Fatalf("CreateProvider failed: %v", err)
	}

	if provider.GetProviderName() != "claude" {
		t.Errorf("Expected provider name claude, got %s", provider.GetProviderName())
	}
}

func TestFactoryRejectsUnknownProvider(t *testing.T) {
	factory := NewFactory(newTestConfig("openai"))

	_, err := factory.CreateProvider()
	if err == nil {
		t.Fatal("Expected error for unsupported provider")
	}
	if !strings.Contains(err.Error(), "unsupported LLM provider") {
		t.Errorf("Unexpected error message: %v", err)
	}
}

func TestSupportedProviders(t *testing.T) {
	factory := NewFactory(newTestConfig("claude"))

	providers := factory.GetSupportedProviders()
	want := map[string]bool{"claude": false, "gemini": false}
	for _, p := range providers {
		if _, ok := want[p]; !ok {
			t.Errorf("Unexpected provider in list: %s", p)
		}
		want[p] = true
	}
	for p, seen := range want {
		if !seen {
			t.Errorf("Provider %s missing from supported list", p)
		}
	}
}

func TestManagerCompleteBeforeStart(t *testing.T) {
	manager := NewManager(newTestConfig("claude"))

	_, err := manager.Complete(context.Background(), models.CompletionRequest{Prompt: "hi"})
	if err == nil {
		t.Fatal("Expected error when manager has not been started")
	}
	if !strings.Contains(err.Error(), "not started") {
		t.Errorf("Unexpected error message: %v", err)
	}
}

func TestManagerDefaultsBeforeStart(t *testing.T) {
	manager := NewManager(newTestConfig("claude"))

	if manager.IsHealthy() {
		t.Error("Manager must not report healthy before Start")
	}
	if got := manager.GetProviderName(); got != "none" {
		t.Errorf("Expected provider name none before Start, got %s", got)
	}
	if err := manager.CheckHealth(context.Background()); err == nil {
		t.Error("CheckHealth must fail before Start")
	}
}

func TestManagerStartsWithoutAPIKey(t *testing.T) {
	// An empty key fails the claude health check before any network call,
	// so the whole lifecycle is exercised offline.
	cfg := newTestConfig("claude")
	cfg.LLM.Timeout = time.Second

	manager := NewManager(cfg)
	if err := manager.Start(); err != nil {
		t.Fatalf("Start must succeed without an API key, got: %v", err)
	}

	if manager.IsHealthy() {
		t.Error("Manager must not report healthy without an API key")
	}
	if got := manager.GetProviderName(); got != "claude" {
		t.Errorf("Expected provider name claude after Start, got %s", got)
	}

	_, err := manager.Complete(context.Background(), models.CompletionRequest{Prompt: "hi"})
	if err == nil {
		t.Fatal("Expected Complete to fail while the provider is unavailable")
	}

	var customErr *utils.CustomError
	if !errors.As(err, &customErr) {
		t.Fatalf("Expected a CustomError, got %T", err)
	}
	if customErr.Code != http.StatusServiceUnavailable {
		t.Errorf("Expected 503 while the provider is unavailable, got %d", customErr.Code)
	}
}

func TestManagerStartRejectsUnknownProvider(t *testing.T) {
	manager := NewManager(newTestConfig("openai"))

	if err := manager.Start(); err == nil {
		t.Fatal("Expected Start to fail for unsupported provider")
	}
}
