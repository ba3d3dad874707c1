package models

// CompletionRequest is a single-turn prompt sent to a hosted model. System
// carries the fixed role instructions; Prompt carries the task text.
type CompletionRequest struct {
	System      string  `json:"system,omitempty"`
	Prompt      string  `json:"prompt"`
	MaxTokens   int     `json:"max_tokens,omitempty"`
	Temperature float32 `json:"temperature,omitempty"`
}
