package advisor

import (
	"fmt"
	"strings"

	"career-advisor/pkg/models"
)

// ProfileContext renders a student profile into the labelled text block that
// every profile-bearing prompt embeds. List fields are joined with ", ".
func ProfileContext(profile models.StudentProfile) string {
	return fmt.Sprintf(`Student Profile:
- Name: %s
- Education: %s in %s
- Skills: %s
- Interests: %s
- Career Goals: %s
- Experience: %s`,
		profile.Name,
		profile.EducationLevel,
		profile.Major,
		strings.Join(profile.Skills, ", "),
		strings.Join(profile.Interests, ", "),
		profile.CareerGoals,
		strings.Join(profile.Experience, ", "),
	)
}
