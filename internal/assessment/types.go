// Package assessment defines assessment answer records and the per-answer
// scoring rules of the career match engine.
package assessment

import "strings"

// Category groups assessment questions that share a weight in the final match
// score.
type Category string

const (
	CategoryInterest   Category = "interest"
	CategorySkill      Category = "skill"
	CategoryWorkStyle  Category = "work_style"
	CategoryTechAccess Category = "tech_access"
	CategoryBackground Category = "background"
)

// Categories lists every known category in weight-declaration order.
func Categories() []Category {
	return []Category{
		CategoryInterest,
		CategorySkill,
		CategoryWorkStyle,
		CategoryTechAccess,
		CategoryBackground,
	}
}

// AnswerRecord is one submitted assessment answer. Multi-select answers carry
// their selections as a comma-separated value. Records are immutable once
// submitted.
type AnswerRecord struct {
	QuestionID string `json:"question_id"`
	Value      string `json:"value"`
}

// CategoryOf derives an answer's category from the question-ID prefix
// convention (interest_*, skill_*, work_*, tech_*, background_*). The second
// return value is false for unrecognized prefixes; such answers are ignored by
// the aggregator so they cannot skew any category average.
func CategoryOf(questionID string) (Category, bool) {
	switch {
	case strings.HasPrefix(questionID, "interest_"):
		return CategoryInterest, true
	case strings.HasPrefix(questionID, "skill_"):
		return CategorySkill, true
	case strings.HasPrefix(questionID, "work_"):
		return CategoryWorkStyle, true
	case strings.HasPrefix(questionID, "tech_"):
		return CategoryTechAccess, true
	case strings.HasPrefix(questionID, "background_"):
		return CategoryBackground, true
	}
	return "", false
}

// splitSelections splits a multi-select answer value into trimmed tokens.
func splitSelections(value string) []string {
	parts := strings.Split(value, ",")
	tokens := make([]string, 0, len(parts))
	for _, p := range parts {
		tokens = append(tokens, strings.TrimSpace(p))
	}
	return tokens
}
