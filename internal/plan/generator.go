package plan

import (
	"fmt"
	"math"
	"time"
)

// planDuration is the fixed learning plan length. Due dates divide it evenly
// across the milestone count.
const planDuration = 365 * 24 * time.Hour

// GeneratorConfig holds dependencies for the plan generator.
type GeneratorConfig struct {
	Now func() time.Time // clock override for tests (default time.Now)
}

// Generator builds learning plans from recommended careers.
type Generator struct {
	now func() time.Time
}

// NewGenerator creates a learning plan generator.
func NewGenerator(cfg GeneratorConfig) *Generator {
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	return &Generator{now: now}
}

// Generate builds a one-year learning plan for a recommended career. The
// milestone sequence is the fundamentals bookend, the career family's middle
// milestones and the professional-development bookend; due dates divide the
// plan duration evenly across milestones. Everything starts uncompleted.
func (g *Generator) Generate(userID, careerID int64, careerTitle string) LearningPlan {
	start := g.now()

	templates := milestonesFor(careerTitle)
	daysPerMilestone := 365 / len(templates)

	milestones := make([]Milestone, 0, len(templates))
	due := start
	for i, tmpl := range templates {
		due = due.AddDate(0, 0, daysPerMilestone)

		tasks := make([]Task, 0, len(tmpl.tasks))
		for j, tt := range tmpl.tasks {
			tasks = append(tasks, Task{
				Title:       tt.title,
				Description: tt.description,
				OrderIndex:  j + 1,
				Completed:   false,
			})
		}

		milestones = append(milestones, Milestone{
			Title:       tmpl.title,
			Description: tmpl.description,
			OrderIndex:  i + 1,
			DueDate:     due,
			Completed:   false,
			Tasks:       tasks,
		})
	}

	return LearningPlan{
		UserID:      userID,
		CareerID:    careerID,
		CareerTitle: careerTitle,
		Title:       fmt.Sprintf("1-Year %s Learning Path", careerTitle),
		Description: fmt.Sprintf("A personalized learning plan to help you become a %s within one year.", careerTitle),
		StartDate:   start,
		EndDate:     start.Add(planDuration),
		Milestones:  milestones,
		CreatedAt:   start,
	}
}

// UpdateProgress recomputes the plan's derived summary fields from current
// task completion state: each milestone's Completed flag and the plan-level
// ProgressPercentage. It never touches task flags and is idempotent.
func UpdateProgress(p *LearningPlan) {
	totalTasks := 0
	completedTasks := 0

	for i := range p.Milestones {
		m := &p.Milestones[i]
		allDone := true
		for _, task := range m.Tasks {
			totalTasks++
			if task.Completed {
				completedTasks++
			} else {
				allDone = false
			}
		}
		m.Completed = allDone
	}

	if totalTasks == 0 {
		p.ProgressPercentage = 0
		return
	}
	p.ProgressPercentage = int(math.Round(float64(completedTasks) / float64(totalTasks) * 100))
}
