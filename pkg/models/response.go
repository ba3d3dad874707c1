package models

import "time"

// SkillsAnalysisResponse represents the response from a skills analysis request
type SkillsAnalysisResponse struct {
	Analysis       string        `json:"analysis"`
	ProcessingTime time.Duration `json:"processing_time"`
	RequestID      string        `json:"request_id"`
}

// CareerMatchesResponse represents the response from a career matching request
type CareerMatchesResponse struct {
	Matches        string        `json:"matches"`
	ProcessingTime time.Duration `json:"processing_time"`
	RequestID      string        `json:"request_id"`
}

// LearningPathResponse represents the response from a learning path request
type LearningPathResponse struct {
	LearningPath   string        `json:"learning_path"`
	TargetCareer   string        `json:"target_career"`
	ProcessingTime time.Duration `json:"processing_time"`
	RequestID      string        `json:"request_id"`
}

// IndustryResearchResponse represents the response from an industry research request
type IndustryResearchResponse struct {
	Industry       string        `json:"industry"`
	Research       string        `json:"research"`
	ProcessingTime time.Duration `json:"processing_time"`
	RequestID      string        `json:"request_id"`
}

// ComprehensiveAdviceResponse bundles the outputs of the fixed three-call
// advice sequence.
type ComprehensiveAdviceResponse struct {
	SkillsAnalysis string        `json:"skills_analysis"`
	CareerMatches  string        `json:"career_matches"`
	ActionPlan     string        `json:"action_plan"`
	ProcessingTime time.Duration `json:"processing_time"`
	RequestID      string        `json:"request_id"`
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Version   string            `json:"version"`
	Uptime    time.Duration     `json:"uptime"`
	Checks    map[string]string `json:"checks,omitempty"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error     string    `json:"error"`
	Message   string    `json:"message"`
	RequestID string    `json:"request_id"`
	Timestamp time.Time `json:"timestamp"`
}
