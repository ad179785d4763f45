// Package recommend turns assessment answers into a ranked list of career
// recommendations. The engine is a pure, synchronous computation: it reads an
// immutable snapshot of answers and career records and produces new
// recommendation values, so it is safe to invoke concurrently for different
// users.
package recommend

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/lawrencedcodes/pathways/internal/assessment"
	"github.com/lawrencedcodes/pathways/internal/catalog"
)

// defaultMatchThreshold is the minimum match percentage a career must reach to
// be recommended.
const defaultMatchThreshold = 50.0

// categoryWeights combines per-category scores into one match percentage.
// The weights must sum to exactly 1.0.
var categoryWeights = map[assessment.Category]float64{
	assessment.CategoryInterest:   0.35, // Interest & passion exploration
	assessment.CategorySkill:      0.25, // Skill & strength assessment
	assessment.CategoryWorkStyle:  0.20, // Work style & preferences
	assessment.CategoryTechAccess: 0.10, // Technological access
	assessment.CategoryBackground: 0.10, // Educational & professional background
}

// CategoryWeights returns a copy of the fixed category weight table.
func CategoryWeights() map[assessment.Category]float64 {
	weights := make(map[assessment.Category]float64, len(categoryWeights))
	for c, w := range categoryWeights {
		weights[c] = w
	}
	return weights
}

// Career is a career path record as the persistence layer hands it to the
// engine.
type Career struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
}

// Recommendation is one ranked user/career match.
type Recommendation struct {
	ID              int64     `json:"id,omitempty"`
	UserID          int64     `json:"user_id"`
	CareerID        int64     `json:"career_id"`
	CareerTitle     string    `json:"career_title"`
	MatchPercentage float64   `json:"match_percentage"`
	Explanation     string    `json:"explanation,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

// EngineConfig holds dependencies for the recommendation engine.
type EngineConfig struct {
	Catalog        *catalog.Catalog
	MatchThreshold float64 // minimum match percentage to recommend (default 50)
}

// Engine computes match percentages and ranked recommendations.
type Engine struct {
	catalog   *catalog.Catalog
	threshold float64
}

// NewEngine creates a recommendation engine.
func NewEngine(cfg EngineConfig) *Engine {
	cat := cfg.Catalog
	if cat == nil {
		cat = catalog.New()
	}
	threshold := cfg.MatchThreshold
	if threshold == 0 {
		threshold = defaultMatchThreshold
	}
	return &Engine{
		catalog:   cat,
		threshold: threshold,
	}
}

// CategoryScores averages per-answer sub-scores within each category. Every
// known category appears in the result; a category with no answers scores 0.
// Answers whose question-ID prefix matches no category are ignored entirely so
// they cannot skew any average.
func (e *Engine) CategoryScores(attrs catalog.CareerAttributes, answers []assessment.AnswerRecord) map[assessment.Category]float64 {
	totals := make(map[assessment.Category]float64, len(categoryWeights))
	counts := make(map[assessment.Category]int, len(categoryWeights))

	for _, answer := range answers {
		cat, ok := assessment.CategoryOf(answer.QuestionID)
		if !ok {
			continue
		}
		totals[cat] += assessment.Score(attrs, answer)
		counts[cat]++
	}

	scores := make(map[assessment.Category]float64, len(categoryWeights))
	for cat := range categoryWeights {
		if counts[cat] > 0 {
			scores[cat] = totals[cat] / float64(counts[cat])
		} else {
			scores[cat] = 0
		}
	}
	return scores
}

// MatchPercentage combines category scores into a single 0-100 match value.
// An unanswered category contributes 0 through its full weight; weights are
// deliberately not renormalized over answered categories.
func (e *Engine) MatchPercentage(attrs catalog.CareerAttributes, answers []assessment.AnswerRecord) float64 {
	return matchFromScores(e.CategoryScores(attrs, answers))
}

func matchFromScores(scores map[assessment.Category]float64) float64 {
	var total float64
	for cat, weight := range categoryWeights {
		total += scores[cat] * weight
	}
	return math.Round(total * 100)
}

// Recommend scores every career for the user, keeps those at or above the
// match threshold and returns them sorted by match percentage, highest first.
// Ties keep career insertion order. Empty inputs produce an empty list, never
// an error.
func (e *Engine) Recommend(userID int64, answers []assessment.AnswerRecord, careers []Career) []Recommendation {
	now := time.Now()

	recs := make([]Recommendation, 0, len(careers))
	for _, career := range careers {
		attrs := e.catalog.AttributesFor(career.Title)
		scores := e.CategoryScores(attrs, answers)
		pct := matchFromScores(scores)
		if pct < e.threshold {
			continue
		}
		recs = append(recs, Recommendation{
			UserID:          userID,
			CareerID:        career.ID,
			CareerTitle:     career.Title,
			MatchPercentage: pct,
			Explanation:     explain(career.Title, scores),
			CreatedAt:       now,
		})
	}

	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].MatchPercentage > recs[j].MatchPercentage
	})
	return recs
}

var categoryLabels = map[assessment.Category]string{
	assessment.CategoryInterest:   "interests",
	assessment.CategorySkill:      "skills",
	assessment.CategoryWorkStyle:  "work style",
	assessment.CategoryTechAccess: "technology access",
	assessment.CategoryBackground: "background",
}

// explain builds a short human-readable summary naming the user's two
// strongest categories for this career.
func explain(careerTitle string, scores map[assessment.Category]float64) string {
	type catScore struct {
		cat   assessment.Category
		score float64
	}
	ranked := make([]catScore, 0, len(scores))
	for cat, score := range scores {
		ranked = append(ranked, catScore{cat, score})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].score != ranked[j].score {
			return ranked[i].score > ranked[j].score
		}
		return categoryWeights[ranked[i].cat] > categoryWeights[ranked[j].cat]
	})

	top := make([]string, 0, 2)
	for _, cs := range ranked {
		if cs.score <= 0 || len(top) == 2 {
			break
		}
		top = append(top, categoryLabels[cs.cat])
	}
	if len(top) == 0 {
		return fmt.Sprintf("Limited assessment data available for %s.", careerTitle)
	}
	return fmt.Sprintf("Your %s align well with a career as a %s.", strings.Join(top, " and "), careerTitle)
}
