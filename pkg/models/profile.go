package models

// StudentProfile is the intake record shared by every advice operation.
// List fields are rendered comma-separated when the profile is serialized
// into a prompt context block.
type StudentProfile struct {
	Name           string   `json:"name" validate:"required"`
	EducationLevel string   `json:"education_level" validate:"required"`
	Major          string   `json:"major"`
	Skills         []string `json:"skills"`
	Interests      []string `json:"interests"`
	CareerGoals    string   `json:"career_goals"`
	Experience     []string `json:"experience"`
}
