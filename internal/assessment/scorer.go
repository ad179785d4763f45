package assessment

import (
	"strings"

	"github.com/lawrencedcodes/pathways/internal/catalog"
)

// NeutralScore is the fallback for any answer the engine cannot classify. It
// keeps unscored dimensions from penalizing or inflating a category average.
const NeutralScore = 0.5

// Role is the semantic role of an assessment question. Scoring dispatches on
// roles rather than raw question IDs so new question types are registered
// additions, not edits to a monolithic conditional.
type Role string

const (
	RoleActivityPreference  Role = "activity_preference"
	RoleProjectPreference   Role = "project_preference"
	RoleTechnologyCuriosity Role = "technology_curiosity"
	RoleProblemSolving      Role = "problem_solving"
	RoleLearningComfort     Role = "learning_comfort"
	RoleStrengthAreas       Role = "strength_areas"
	RoleWorkEnvironment     Role = "work_environment"
	RoleCollaborationStyle  Role = "collaboration_style"
	RoleJobPriorities       Role = "job_priorities"
	RoleComputerAccess      Role = "computer_access"
	RoleInternetConnection  Role = "internet_connection"
	RoleTimeAvailability    Role = "time_availability"
)

// ruleFunc maps one answer value to a sub-score in [0, 1] for a career.
type ruleFunc func(attrs catalog.CareerAttributes, value string) float64

// questionRoles binds the question bank's IDs to their semantic roles.
var questionRoles = map[string]Role{
	"interest_1": RoleActivityPreference,
	"interest_2": RoleProjectPreference,
	"interest_3": RoleTechnologyCuriosity,
	"skill_1":    RoleProblemSolving,
	"skill_2":    RoleLearningComfort,
	"skill_3":    RoleStrengthAreas,
	"work_1":     RoleWorkEnvironment,
	"work_2":     RoleCollaborationStyle,
	"work_3":     RoleJobPriorities,
	"tech_1":     RoleComputerAccess,
	"tech_2":     RoleInternetConnection,
	"tech_3":     RoleTimeAvailability,
}

// rules is the scoring rule registry, one entry per question role.
var rules = map[Role]ruleFunc{
	RoleActivityPreference:  scoreActivityPreference,
	RoleProjectPreference:   scoreProjectPreference,
	RoleTechnologyCuriosity: scoreTechnologyCuriosity,
	RoleProblemSolving:      scoreProblemSolving,
	RoleLearningComfort:     scoreLearningComfort,
	RoleStrengthAreas:       scoreStrengthAreas,
	RoleWorkEnvironment:     scoreWorkEnvironment,
	RoleCollaborationStyle:  scoreCollaborationStyle,
	RoleJobPriorities:       scoreJobPriorities,
	RoleComputerAccess:      scoreComputerAccess,
	RoleInternetConnection:  scoreInternetConnection,
	RoleTimeAvailability:    scoreTimeAvailability,
}

// RoleOf returns the semantic role of a question ID.
func RoleOf(questionID string) (Role, bool) {
	role, ok := questionRoles[questionID]
	return role, ok
}

// Score maps one answer to a sub-score in [0, 1] for the given career
// attributes. Answers whose question cannot be classified score NeutralScore;
// that is a documented fallback, never an error.
func Score(attrs catalog.CareerAttributes, answer AnswerRecord) float64 {
	role, ok := questionRoles[answer.QuestionID]
	if !ok {
		return NeutralScore
	}
	rule, ok := rules[role]
	if !ok {
		return NeutralScore
	}
	return rule(attrs, answer.Value)
}

func scoreActivityPreference(attrs catalog.CareerAttributes, value string) float64 {
	title := strings.ToLower(attrs.Title)
	switch value {
	case "Designing user interfaces and visual elements":
		return attrs.VisualOrientation
	case "Solving complex logical problems":
		return attrs.LogicalOrientation
	case "Analyzing data and finding patterns":
		if strings.Contains(title, "data") {
			return 0.9
		}
		return 0.5
	case "Building and fixing things":
		if strings.Contains(title, "developer") {
			return 0.8
		}
		return 0.5
	case "Teaching or explaining concepts to others":
		return 0.5 // Neutral for most tech careers
	}
	return NeutralScore
}

func scoreProjectPreference(attrs catalog.CareerAttributes, value string) float64 {
	match := func(keywords ...string) float64 {
		for _, pt := range attrs.ProjectTypes {
			for _, kw := range keywords {
				if strings.Contains(pt, kw) {
					return 0.9
				}
			}
		}
		return 0.4
	}

	switch value {
	case "Websites and mobile applications":
		return match("website", "mobile")
	case "Data analysis and visualization":
		return match("data", "visualization")
	case "Cybersecurity and system protection":
		return match("security")
	case "Artificial intelligence and machine learning":
		return match("machine learning", "ai")
	case "Game development":
		return match("game")
	}
	return NeutralScore
}

func scoreTechnologyCuriosity(attrs catalog.CareerAttributes, value string) float64 {
	selected := splitSelections(value)

	matches := 0
	for _, sel := range selected {
		sel = strings.ToLower(sel)
		for _, tech := range attrs.Technologies {
			if strings.Contains(strings.ToLower(tech), sel) {
				matches++
				break
			}
		}
	}

	// A selection of three relevant technologies is a full match; selecting
	// more never dilutes the score.
	denom := min(len(selected), 3)
	if denom < 1 {
		denom = 1
	}
	return min(1.0, float64(matches)/float64(denom))
}

func scoreProblemSolving(attrs catalog.CareerAttributes, value string) float64 {
	lc := attrs.LearningCurve
	switch value {
	case "Very strong - I enjoy complex problems":
		return pick(lc >= 0.7, 0.9, 0.6)
	case "Strong - I can usually find solutions":
		return pick(lc >= 0.5 && lc <= 0.8, 0.9, 0.6)
	case "Average - I can solve problems with some guidance":
		return pick(lc <= 0.6, 0.8, 0.5)
	case "Developing - I find problem-solving challenging":
		return pick(lc <= 0.5, 0.7, 0.3)
	case "Not sure":
		return 0.5
	}
	return NeutralScore
}

func scoreLearningComfort(attrs catalog.CareerAttributes, value string) float64 {
	lc := attrs.LearningCurve
	switch value {
	case "Very comfortable - I enjoy learning new tech":
		return pick(lc >= 0.7, 0.9, 0.7)
	case "Comfortable - I can adapt to new tech with some effort":
		return pick(lc >= 0.5 && lc <= 0.8, 0.9, 0.6)
	case "Neutral - It depends on the technology":
		return pick(lc <= 0.7, 0.8, 0.5)
	case "Somewhat uncomfortable - I prefer familiar tools":
		return pick(lc <= 0.6, 0.7, 0.3)
	case "Very uncomfortable - I find new tech intimidating":
		return pick(lc <= 0.5, 0.6, 0.2)
	}
	return NeutralScore
}

func scoreStrengthAreas(attrs catalog.CareerAttributes, value string) float64 {
	selected := splitSelections(value)
	if len(selected) == 0 {
		return NeutralScore
	}

	var total float64
	for _, strength := range selected {
		switch strength {
		case "Attention to detail", "Organization":
			total += attrs.DetailOrientation
		case "Creative thinking":
			total += attrs.Creativity
		case "Logical reasoning":
			total += attrs.LogicalOrientation
		case "Communication", "Teamwork":
			total += attrs.Collaboration
		case "Persistence":
			total += attrs.LearningCurve
		case "Self-motivation":
			total += attrs.IndependentWork
		default:
			total += NeutralScore
		}
	}
	return total / float64(len(selected))
}

func scoreWorkEnvironment(attrs catalog.CareerAttributes, value string) float64 {
	rf := attrs.RemoteFriendly
	switch value {
	case "Office-based with a team":
		return pick(rf <= 0.7, 0.8, 0.5)
	case "Remote work from home":
		return pick(rf >= 0.8, 0.9, 0.4)
	case "Hybrid (mix of remote and office)":
		return pick(rf >= 0.6, 0.8, 0.5)
	case "Flexible co-working spaces":
		return pick(rf >= 0.7, 0.8, 0.6)
	case "No strong preference":
		return 0.7
	}
	return NeutralScore
}

func scoreCollaborationStyle(attrs catalog.CareerAttributes, value string) float64 {
	switch value {
	case "Independently, figuring things out on my own":
		return pick(attrs.IndependentWork >= 0.7, 0.9, 0.5)
	case "Collaboratively, discussing with others":
		return pick(attrs.Collaboration >= 0.7, 0.9, 0.5)
	case "Research-based, looking up solutions":
		return pick(attrs.IndependentWork >= 0.6, 0.8, 0.6)
	case "Structured approach with clear guidelines":
		return attrs.DetailOrientation
	case "Mix of approaches depending on the problem":
		return pick((attrs.Collaboration+attrs.IndependentWork)/2 >= 0.6, 0.8, 0.6)
	}
	return NeutralScore
}

func scoreJobPriorities(attrs catalog.CareerAttributes, value string) float64 {
	selected := make(map[string]bool)
	for _, p := range splitSelections(value) {
		selected[p] = true
	}

	title := strings.ToLower(attrs.Title)
	has := func(substrs ...string) bool {
		for _, s := range substrs {
			if strings.Contains(title, s) {
				return true
			}
		}
		return false
	}

	score := 0.5
	if selected["Work-life balance"] && has("developer", "designer") {
		score += 0.1
	}
	if selected["High salary potential"] && has("data", "security") {
		score += 0.1
	}
	if selected["Creative freedom"] && has("designer", "frontend") {
		score += 0.1
	}
	if selected["Clear advancement path"] && has("developer", "engineer") {
		score += 0.1
	}
	if selected["Making a positive impact"] && has("data", "ai") {
		score += 0.1
	}
	if selected["Continuous learning"] {
		score += 0.1 // Good for all tech careers
	}
	if selected["Job security"] && has("security", "data") {
		score += 0.1
	}
	return min(1.0, score)
}

func scoreComputerAccess(attrs catalog.CareerAttributes, value string) float64 {
	tr := attrs.TechRequirements
	switch value {
	case "Modern desktop or laptop (less than 3 years old)":
		return 1.0 // Suitable for all careers
	case "Older desktop or laptop (3+ years old)":
		return pick(tr == catalog.TechHigh, 0.6, 0.8)
	case "Tablet device only":
		return byTier(tr, 0.3, 0.5, 0.7)
	case "Smartphone only":
		return byTier(tr, 0.1, 0.3, 0.5)
	case "Limited or shared computer access":
		return byTier(tr, 0.4, 0.6, 0.7)
	case "No regular computer access":
		return 0.2 // Challenging for any tech career
	}
	return NeutralScore
}

func scoreInternetConnection(attrs catalog.CareerAttributes, value string) float64 {
	tr := attrs.TechRequirements

	var base float64
	switch value {
	case "High-speed reliable connection":
		base = 1.0
	case "Moderate speed, generally reliable":
		base = pick(tr == catalog.TechHigh, 0.8, 0.9)
	case "Slow but functional":
		base = byTier(tr, 0.6, 0.7, 0.8)
	case "Unreliable or limited data":
		base = byTier(tr, 0.4, 0.5, 0.6)
	case "Public access only (library, cafe, etc.)":
		base = byTier(tr, 0.3, 0.4, 0.5)
	case "No regular internet access":
		base = 0.2
	default:
		base = NeutralScore
	}

	// Connectivity weighs heavier on remote-friendly careers: up to ±10%
	// adjustment centered at remote_friendly = 0.5.
	return base * (1 - (attrs.RemoteFriendly-0.5)*0.2)
}

func scoreTimeAvailability(attrs catalog.CareerAttributes, value string) float64 {
	lc := attrs.LearningCurve
	switch value {
	case "20+ hours":
		return 1.0
	case "10-20 hours":
		return pick(lc >= 0.8, 0.8, 0.9)
	case "5-10 hours":
		return byCurve(lc, 0.6, 0.8, 0.9)
	case "1-5 hours":
		return byCurve(lc, 0.4, 0.6, 0.7)
	case "Less than 1 hour":
		return pick(lc >= 0.7, 0.2, 0.4)
	case "Irregular schedule":
		return 0.6 // Workable for most careers but not ideal
	}
	return NeutralScore
}

func pick(cond bool, yes, no float64) float64 {
	if cond {
		return yes
	}
	return no
}

// byTier selects a score by tech-requirement tier: high, moderate, low.
func byTier(tr catalog.TechRequirement, high, moderate, low float64) float64 {
	switch tr {
	case catalog.TechHigh:
		return high
	case catalog.TechModerate:
		return moderate
	default:
		return low
	}
}

// byCurve selects a score by learning-curve band: >=0.8, >=0.6, below.
func byCurve(lc, steep, medium, gentle float64) float64 {
	switch {
	case lc >= 0.8:
		return steep
	case lc >= 0.6:
		return medium
	default:
		return gentle
	}
}
