package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// scrubEnv blanks every variable loadFromEnv reads so a developer's shell
// (an exported ANTHROPIC_API_KEY in particular) cannot leak into the tests.
// t.Setenv restores the originals afterwards.
func scrubEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{
		"PORT", "HOST",
		"LLM_PROVIDER", "LLM_API_KEY", "ANTHROPIC_API_KEY", "GEMINI_API_KEY",
		"LLM_MODEL", "LLM_MAX_TOKENS", "LLM_TIMEOUT",
		"ADVISOR_REQUEST_TIMEOUT", "ADVISOR_RATE_LIMIT", "ADVISOR_RATE_BURST",
		"LOG_LEVEL", "LOG_FORMAT", "LOG_FILE",
	} {
		t.Setenv(name, "")
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	scrubEnv(t)

	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("Expected default port 8080, got %d", cfg.Server.Port)
	}
	if cfg.LLM.Provider != "claude" {
		t.Errorf("Expected default provider claude, got %s", cfg.LLM.Provider)
	}
	if cfg.LLM.MaxTokens != 2000 {
		t.Errorf("Expected default max tokens 2000, got %d", cfg.LLM.MaxTokens)
	}
	if cfg.Advisor.RequestTimeout != 300*time.Second {
		t.Errorf("Expected default request timeout 300s, got %s", cfg.Advisor.RequestTimeout)
	}
	if cfg.Server.MaxBodyBytes != 1<<20 {
		t.Errorf("Expected default body cap 1MB, got %d", cfg.Server.MaxBodyBytes)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Expected default log level info, got %s", cfg.Logging.Level)
	}
}

func TestLoadConfigFromYAML(t *testing.T) {
	content := `
server:
  port: 9191
  host: "127.0.0.1"
llm:
  provider: gemini
  model: gemini-1.5-flash
  max_tokens: 1024
logging:
  level: debug
`
	scrubEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Server.Port != 9191 {
		t.Errorf("Expected port 9191, got %d", cfg.Server.Port)
	}
	if cfg.LLM.Provider != "gemini" {
		t.Errorf("Expected provider gemini, got %s", cfg.LLM.Provider)
	}
	if cfg.LLM.Model != "gemini-1.5-flash" {
		t.Errorf("Expected model gemini-1.5-flash, got %s", cfg.LLM.Model)
	}
	if cfg.LLM.MaxTokens != 1024 {
		t.Errorf("Expected max tokens 1024, got %d", cfg.LLM.MaxTokens)
	}
	// Unset values keep their defaults
	if cfg.LLM.Timeout != 120*time.Second {
		t.Errorf("Expected default LLM timeout, got %s", cfg.LLM.Timeout)
	}
}

func TestLoadConfigExpandsEnvVars(t *testing.T) {
	scrubEnv(t)
	t.Setenv("TEST_ADVISOR_KEY", "secret-key-123")

	content := `
llm:
  api_key: ${TEST_ADVISOR_KEY}
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.LLM.APIKey != "secret-key-123" {
		t.Errorf("Expected api key expanded from environment, got %q", cfg.LLM.APIKey)
	}
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	scrubEnv(t)
	t.Setenv("PORT", "9999")
	t.Setenv("HOST", "localhost")
	t.Setenv("LLM_PROVIDER", "gemini")
	t.Setenv("LLM_MODEL", "gemini-2.0-flash")
	t.Setenv("LLM_API_KEY", "env-key")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Server.Port != 9999 {
		t.Errorf("Expected PORT override 9999, got %d", cfg.Server.Port)
	}
	if cfg.Server.Host != "localhost" {
		t.Errorf("Expected HOST override, got %s", cfg.Server.Host)
	}
	if cfg.LLM.Provider != "gemini" {
		t.Errorf("Expected LLM_PROVIDER override, got %s", cfg.LLM.Provider)
	}
	if cfg.LLM.Model != "gemini-2.0-flash" {
		t.Errorf("Expected LLM_MODEL override, got %s", cfg.LLM.Model)
	}
	if cfg.LLM.APIKey != "env-key" {
		t.Errorf("Expected LLM_API_KEY override, got %q", cfg.LLM.APIKey)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Expected LOG_LEVEL override, got %s", cfg.Logging.Level)
	}
}

func TestProviderAPIKeyFallbacks(t *testing.T) {
	tests := []struct {
		name    string
		envVar  string
		wantKey string
	}{
		{"anthropic key", "ANTHROPIC_API_KEY", "anthropic-key"},
		{"gemini key", "GEMINI_API_KEY", "gemini-key"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scrubEnv(t)
			t.Setenv(tt.envVar, tt.wantKey)

			cfg, err := LoadConfig("")
			if err != nil {
				t.Fatalf("LoadConfig failed: %v", err)
			}

			if cfg.LLM.APIKey != tt.wantKey {
				t.Errorf("Expected %s fallback %q, got %q", tt.envVar, tt.wantKey, cfg.LLM.APIKey)
			}
		})
	}
}

func TestExpandEnvVarsLeavesUnknownUntouched(t *testing.T) {
	got := expandEnvVars("key: ${DEFINITELY_NOT_SET_VAR_42}")
	if got != "key: ${DEFINITELY_NOT_SET_VAR_42}" {
		t.Errorf("Unset variables should be left as-is, got %q", got)
	}
}
