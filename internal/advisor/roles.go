package advisor

// AgentRole identifies one of the fixed role-specific system prompts
type AgentRole string

const (
	RoleCoordinator        AgentRole = "coordinator"
	RoleSkillsAnalyzer     AgentRole = "skills_analyzer"
	RoleCareerMatcher      AgentRole = "career_matcher"
	RoleLearningPathfinder AgentRole = "learning_pathfinder"
	RoleIndustryResearcher AgentRole = "industry_researcher"
)

// AllRoles lists every agent role in the catalogue
func AllRoles() []AgentRole {
	return []AgentRole{
		RoleCoordinator,
		RoleSkillsAnalyzer,
		RoleCareerMatcher,
		RoleLearningPathfinder,
		RoleIndustryResearcher,
	}
}

// SystemPrompt returns the fixed system prompt for the role
func (r AgentRole) SystemPrompt() string {
	switch r {
	case RoleCoordinator:
		return coordinatorSystemPrompt
	case RoleSkillsAnalyzer:
		return skillsAnalyzerSystemPrompt
	case RoleCareerMatcher:
		return careerMatcherSystemPrompt
	case RoleLearningPathfinder:
		return learningPathfinderSystemPrompt
	case RoleIndustryResearcher:
		return industryResearcherSystemPrompt
	default:
		return ""
	}
}

// Valid reports whether the role is part of the catalogue
func (r AgentRole) Valid() bool {
	return r.SystemPrompt() != ""
}
