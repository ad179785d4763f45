package recommend

import (
	"strings"

	"github.com/lawrencedcodes/pathways/internal/catalog"
)

// UserSkill is one self-reported skill record with a proficiency level from
// 1 to 5.
type UserSkill struct {
	SkillName        string `json:"skill_name"`
	ProficiencyLevel int    `json:"proficiency_level"`
	IsStrength       bool   `json:"is_strength"`
	IsInterest       bool   `json:"is_interest"`
}

// SkillMatch scores how well a user's skill records cover a career's required
// skills, as a 0-100 value. Each required skill scores proficiency/5 x 100,
// plus a 10-point bonus when the user marked it as a strength and another 10
// when marked as an interest, capped at 100. A missing required skill scores
// 0. Careers with no required skills score a neutral 50.
func SkillMatch(skills []UserSkill, attrs catalog.CareerAttributes) float64 {
	if len(attrs.RequiredSkills) == 0 {
		return 50.0
	}

	var total float64
	for _, required := range attrs.RequiredSkills {
		skill, ok := findSkill(skills, required)
		if !ok {
			continue // missing skill contributes 0
		}

		score := float64(skill.ProficiencyLevel) / 5.0 * 100
		if skill.IsStrength {
			score += 10
		}
		if skill.IsInterest {
			score += 10
		}
		total += min(score, 100)
	}
	return total / float64(len(attrs.RequiredSkills))
}

func findSkill(skills []UserSkill, name string) (UserSkill, bool) {
	for _, s := range skills {
		if strings.EqualFold(s.SkillName, name) {
			return s, true
		}
	}
	return UserSkill{}, false
}
