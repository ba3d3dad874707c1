package advisor

import (
	"context"
	"errors"
	"fmt"

	"career-advisor/internal/config"
	"career-advisor/internal/logging"
	"career-advisor/pkg/models"
	"career-advisor/pkg/utils"
)

// Completer is the slice of the LLM manager the advisor depends on
type Completer interface {
	Complete(ctx context.Context, req models.CompletionRequest) (string, error)
}

// Advisor dispatches profile-bearing prompts to the configured model, one
// role-specific system prompt per call. It holds no state between calls.
type Advisor struct {
	config *config.Config
	llm    Completer
	logger logging.Logger
}

// ComprehensiveAdvice bundles the outputs of the fixed three-call sequence
type ComprehensiveAdvice struct {
	SkillsAnalysis string
	CareerMatches  string
	ActionPlan     string
}

// New creates an Advisor backed by the given completer
func New(cfg *config.Config, completer Completer) *Advisor {
	return &Advisor{
		config: cfg,
		llm:    completer,
		logger: logging.GetGlobalLogger(),
	}
}

// ask sends one single-turn request under the role's system prompt
func (a *Advisor) ask(ctx context.Context, role AgentRole, prompt string) (string, error) {
	a.logger.Debug("Dispatching agent request", map[string]interface{}{
		"role":          string(role),
		"prompt_length": len(prompt),
	})

	reply, err := a.llm.Complete(ctx, models.CompletionRequest{
		System:      role.SystemPrompt(),
		Prompt:      prompt,
		MaxTokens:   a.config.LLM.MaxTokens,
		Temperature: a.config.LLM.Temperature,
	})
	if err != nil {
		return "", wrapLLMError(fmt.Sprintf("%s agent", role), err)
	}

	return reply, nil
}

// wrapLLMError tags a model failure as a 502 unless the underlying error
// already carries a status code, such as the manager's 503 availability gate.
func wrapLLMError(scope string, err error) error {
	var customErr *utils.CustomError
	if errors.As(err, &customErr) {
		return err
	}
	return utils.NewLLMError(fmt.Sprintf("%s: %v", scope, err))
}

// AnalyzeSkills asks the skills analyzer for skill development recommendations
func (a *Advisor) AnalyzeSkills(ctx context.Context, profile models.StudentProfile) (string, error) {
	prompt := ProfileContext(profile) + "\n\n" + skillsAnalysisQuery
	return a.ask(ctx, RoleSkillsAnalyzer, prompt)
}

// MatchCareers asks the career matcher for 3-5 suitable career paths
func (a *Advisor) MatchCareers(ctx context.Context, profile models.StudentProfile) (string, error) {
	prompt := ProfileContext(profile) + "\n\n" + careerMatchesQuery
	return a.ask(ctx, RoleCareerMatcher, prompt)
}

// LearningPath asks the learning pathfinder for a roadmap towards the target career
func (a *Advisor) LearningPath(ctx context.Context, profile models.StudentProfile, targetCareer string) (string, error) {
	query := fmt.Sprintf(learningPathQueryFormat, targetCareer)
	prompt := ProfileContext(profile) + "\n\n" + query
	return a.ask(ctx, RoleLearningPathfinder, prompt)
}

// ResearchIndustry asks the industry researcher about an industry. No profile
// is involved; the prompt is instruction-only.
func (a *Advisor) ResearchIndustry(ctx context.Context, industry string) (string, error) {
	prompt := fmt.Sprintf(industryResearchQueryFormat, industry)
	return a.ask(ctx, RoleIndustryResearcher, prompt)
}

// GetComprehensiveAdvice runs the fixed sequence: skills analysis, then career
// matching, then a coordinator synthesis whose prompt embeds both outputs and
// the profile block. A failure in any leg aborts the whole operation.
func (a *Advisor) GetComprehensiveAdvice(ctx context.Context, profile models.StudentProfile) (*ComprehensiveAdvice, error) {
	skillsAnalysis, err := a.AnalyzeSkills(ctx, profile)
	if err != nil {
		return nil, err
	}

	careerMatches, err := a.MatchCareers(ctx, profile)
	if err != nil {
		return nil, err
	}

	coordinatorQuery := fmt.Sprintf(coordinatorQueryFormat, skillsAnalysis, careerMatches, ProfileContext(profile))

	actionPlan, err := a.ask(ctx, RoleCoordinator, coordinatorQuery)
	if err != nil {
		return nil, err
	}

	return &ComprehensiveAdvice{
		SkillsAnalysis: skillsAnalysis,
		CareerMatches:  careerMatches,
		ActionPlan:     actionPlan,
	}, nil
}

// QuickAdvice runs the single combined prompt behind the form UI
func (a *Advisor) QuickAdvice(ctx context.Context, req models.QuickAdviceRequest) (string, error) {
	prompt := fmt.Sprintf(quickAdviceFormat,
		req.Name,
		req.EducationLevel,
		req.Interests,
		req.Skills,
		req.Goal,
	)

	reply, err := a.llm.Complete(ctx, models.CompletionRequest{
		Prompt:      prompt,
		MaxTokens:   a.config.LLM.MaxTokens,
		Temperature: a.config.LLM.Temperature,
	})
	if err != nil {
		return "", wrapLLMError("quick advice", err)
	}

	return reply, nil
}
