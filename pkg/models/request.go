package models

// LearningPathRequest represents the request payload for generating a
// learning roadmap towards a specific career.
type LearningPathRequest struct {
	Profile      StudentProfile `json:"profile" validate:"required"`
	TargetCareer string         `json:"target_career" validate:"required"`
}

// QuickAdviceRequest carries the fields of the simple advice form UI. The
// form keeps skills and interests as free text, unlike the JSON API.
type QuickAdviceRequest struct {
	Name           string `json:"name" form:"name" validate:"required"`
	EducationLevel string `json:"education_level" form:"education_level" validate:"required"`
	Interests      string `json:"interests" form:"interests"`
	Skills         string `json:"skills" form:"skills"`
	Goal           string `json:"goal" form:"goal"`
}
