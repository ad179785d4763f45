package recommend_test

import (
	"math"
	"testing"

	"github.com/lawrencedcodes/pathways/internal/assessment"
	"github.com/lawrencedcodes/pathways/internal/catalog"
	"github.com/lawrencedcodes/pathways/internal/recommend"
)

func newEngine() *recommend.Engine {
	return recommend.NewEngine(recommend.EngineConfig{Catalog: catalog.New()})
}

func TestCategoryWeights_SumToOne(t *testing.T) {
	var sum float64
	for _, w := range recommend.CategoryWeights() {
		sum += w
	}
	if sum != 1.0 {
		t.Errorf("category weights sum = %v, want exactly 1.0", sum)
	}
}

func TestCategoryScores_PartitionsByPrefix(t *testing.T) {
	e := newEngine()
	attrs := catalog.New().AttributesFor("Frontend Developer")

	answers := []assessment.AnswerRecord{
		{QuestionID: "interest_1", Value: "Designing user interfaces and visual elements"}, // 0.8
		{QuestionID: "interest_2", Value: "Websites and mobile applications"},              // 0.9
		{QuestionID: "work_1", Value: "Remote work from home"},                             // 0.9
	}

	scores := e.CategoryScores(attrs, answers)

	if got := scores[assessment.CategoryInterest]; math.Abs(got-0.85) > 1e-9 {
		t.Errorf("interest score = %v, want 0.85", got)
	}
	if got := scores[assessment.CategoryWorkStyle]; math.Abs(got-0.9) > 1e-9 {
		t.Errorf("work_style score = %v, want 0.9", got)
	}
	for _, cat := range []assessment.Category{assessment.CategorySkill, assessment.CategoryTechAccess, assessment.CategoryBackground} {
		if scores[cat] != 0 {
			t.Errorf("%s score = %v, want 0 for an unanswered category", cat, scores[cat])
		}
	}
}

func TestCategoryScores_IgnoresUnknownPrefixes(t *testing.T) {
	e := newEngine()
	attrs := catalog.New().AttributesFor("Frontend Developer")

	answers := []assessment.AnswerRecord{
		{QuestionID: "interest_1", Value: "Designing user interfaces and visual elements"}, // 0.8
		{QuestionID: "bogus_1", Value: "this answer belongs to no category"},
	}

	scores := e.CategoryScores(attrs, answers)
	if got := scores[assessment.CategoryInterest]; math.Abs(got-0.8) > 1e-9 {
		t.Errorf("interest score = %v, want 0.8 (unknown-prefix answer must not dilute it)", got)
	}
}

// A single interest answer against Frontend Developer (visual_orientation 0.8)
// yields 0.8 x 0.35 x 100 = 28: unanswered categories keep their full weight
// and contribute zero, by design.
func TestMatchPercentage_WeightsAreNotRenormalized(t *testing.T) {
	e := newEngine()
	attrs := catalog.New().AttributesFor("Frontend Developer")

	pct := e.MatchPercentage(attrs, []assessment.AnswerRecord{
		{QuestionID: "interest_1", Value: "Designing user interfaces and visual elements"},
	})
	if pct != 28 {
		t.Errorf("MatchPercentage = %v, want 28", pct)
	}
}

func TestMatchPercentage_Bounds(t *testing.T) {
	e := newEngine()
	cat := catalog.New()

	answerSets := [][]assessment.AnswerRecord{
		nil,
		{},
		{{QuestionID: "interest_1", Value: "Designing user interfaces and visual elements"}},
		fullAssessment(),
		{{QuestionID: "unknown_1", Value: "x"}, {QuestionID: "tech_1", Value: "No regular computer access"}},
	}

	for _, title := range append(cat.Titles(), "Unknown Career") {
		attrs := cat.AttributesFor(title)
		for _, answers := range answerSets {
			pct := e.MatchPercentage(attrs, answers)
			if pct < 0 || pct > 100 {
				t.Errorf("MatchPercentage(%q) = %v, out of [0, 100]", title, pct)
			}
		}
	}
}

func TestMatchPercentage_EmptyAnswersIsZero(t *testing.T) {
	e := newEngine()
	attrs := catalog.New().AttributesFor("Backend Developer")

	if pct := e.MatchPercentage(attrs, nil); pct != 0 {
		t.Errorf("MatchPercentage with no answers = %v, want 0", pct)
	}
}

func TestRecommend_FiltersAndSorts(t *testing.T) {
	e := newEngine()
	careers := []recommend.Career{
		{ID: 1, Title: "Frontend Developer"},
		{ID: 2, Title: "Backend Developer"},
		{ID: 3, Title: "Data Scientist"},
		{ID: 4, Title: "UX Designer"},
		{ID: 5, Title: "Cybersecurity Specialist"},
	}

	recs := e.Recommend(7, fullAssessment(), careers)

	if len(recs) == 0 {
		t.Fatal("Recommend() returned no recommendations for a full assessment")
	}
	for i, rec := range recs {
		if rec.MatchPercentage < 50 {
			t.Errorf("rec[%d] match = %v, below the 50%% threshold", i, rec.MatchPercentage)
		}
		if rec.UserID != 7 {
			t.Errorf("rec[%d] user = %d, want 7", i, rec.UserID)
		}
		if i > 0 && recs[i-1].MatchPercentage < rec.MatchPercentage {
			t.Errorf("recommendations not sorted: %v before %v", recs[i-1].MatchPercentage, rec.MatchPercentage)
		}
		if rec.Explanation == "" {
			t.Errorf("rec[%d] has no explanation", i)
		}
		if rec.CreatedAt.IsZero() {
			t.Errorf("rec[%d] has no creation time", i)
		}
	}
}

func TestRecommend_TiesKeepInsertionOrder(t *testing.T) {
	// Two unknown titles share the neutral attribute set, so they tie exactly.
	// A permissive threshold keeps both in the result.
	e := recommend.NewEngine(recommend.EngineConfig{Catalog: catalog.New(), MatchThreshold: 1})
	careers := []recommend.Career{
		{ID: 10, Title: "Cloud Engineer"},
		{ID: 11, Title: "Platform Engineer"},
	}

	recs := e.Recommend(1, fullAssessment(), careers)

	if len(recs) != 2 {
		t.Fatalf("Recommend() = %d recs, want 2", len(recs))
	}
	if recs[0].MatchPercentage != recs[1].MatchPercentage {
		t.Fatalf("expected a tie, got %v and %v", recs[0].MatchPercentage, recs[1].MatchPercentage)
	}
	if recs[0].CareerID != 10 || recs[1].CareerID != 11 {
		t.Errorf("tie order = [%d, %d], want insertion order [10, 11]", recs[0].CareerID, recs[1].CareerID)
	}
}

func TestRecommend_EmptyInputs(t *testing.T) {
	e := newEngine()

	if recs := e.Recommend(1, fullAssessment(), nil); len(recs) != 0 {
		t.Errorf("Recommend with no careers = %d recs, want 0", len(recs))
	}

	// No answers: every category scores 0, every career falls below threshold.
	careers := []recommend.Career{{ID: 1, Title: "Frontend Developer"}}
	if recs := e.Recommend(1, nil, careers); len(recs) != 0 {
		t.Errorf("Recommend with no answers = %d recs, want 0", len(recs))
	}
}

// fullAssessment answers every question favorably for broad tech careers.
func fullAssessment() []assessment.AnswerRecord {
	return []assessment.AnswerRecord{
		{QuestionID: "interest_1", Value: "Designing user interfaces and visual elements"},
		{QuestionID: "interest_2", Value: "Websites and mobile applications"},
		{QuestionID: "interest_3", Value: "html,css,javascript"},
		{QuestionID: "skill_1", Value: "Strong - I can usually find solutions"},
		{QuestionID: "skill_2", Value: "Very comfortable - I enjoy learning new tech"},
		{QuestionID: "skill_3", Value: "Creative thinking,Attention to detail"},
		{QuestionID: "work_1", Value: "Remote work from home"},
		{QuestionID: "work_2", Value: "Mix of approaches depending on the problem"},
		{QuestionID: "work_3", Value: "Continuous learning,Work-life balance"},
		{QuestionID: "tech_1", Value: "Modern desktop or laptop (less than 3 years old)"},
		{QuestionID: "tech_2", Value: "High-speed reliable connection"},
		{QuestionID: "tech_3", Value: "10-20 hours"},
	}
}
