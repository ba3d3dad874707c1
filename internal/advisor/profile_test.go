package advisor

import (
	"strings"
	"testing"

	"career-advisor/pkg/models"
)

func TestProfileContext(t *testing.T) {
	profile := models.StudentProfile{
		Name:           "Alex Johnson",
		EducationLevel: "Bachelor's (3rd year)",
		Major:          "Computer Science",
		Skills:         []string{"Python", "JavaScript", "Data Structures"},
		Interests:      []string{"AI/ML", "Problem Solving"},
		CareerGoals:    "Work in AI/ML",
		Experience:     []string{"Internship at local startup", "Personal coding projects"},
	}

	got := ProfileContext(profile)

	want := `Student Profile:
- Name: Alex Johnson
- Education: Bachelor's (3rd year) in Computer Science
- Skills: Python, JavaScript, Data Structures
- Interests: AI/ML, Problem Solving
- Career Goals: Work in AI/ML
- Experience: Internship at local startup, Personal coding projects`

	if got != want {
		t.Errorf("ProfileContext mismatch\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestProfileContextEmptyLists(t *testing.T) {
	profile := models.StudentProfile{
		Name:           "Sam",
		EducationLevel: "Diploma",
	}

	got := ProfileContext(profile)

	// Empty list fields render as empty strings after the label
	for _, line := range []string{"- Skills: \n", "- Interests: \n"} {
		if !strings.Contains(got, line) {
			t.Errorf("Expected %q in rendered profile:\n%s", line, got)
		}
	}
}
