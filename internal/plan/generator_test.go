package plan_test

import (
	"testing"
	"time"

	"github.com/lawrencedcodes/pathways/internal/plan"
)

var testStart = time.Date(2025, time.March, 1, 9, 0, 0, 0, time.UTC)

func newTestGenerator() *plan.Generator {
	return plan.NewGenerator(plan.GeneratorConfig{
		Now: func() time.Time { return testStart },
	})
}

func TestGenerate_PlanShape(t *testing.T) {
	gen := newTestGenerator()

	p := gen.Generate(7, 101, "Frontend Developer")

	if p.UserID != 7 {
		t.Errorf("UserID = %d, want 7", p.UserID)
	}
	if p.CareerID != 101 {
		t.Errorf("CareerID = %d, want 101", p.CareerID)
	}
	if p.Title != "1-Year Frontend Developer Learning Path" {
		t.Errorf("Title = %q", p.Title)
	}
	if p.Description != "A personalized learning plan to help you become a Frontend Developer within one year." {
		t.Errorf("Description = %q", p.Description)
	}
	if got := p.EndDate.Sub(p.StartDate); got != 365*24*time.Hour {
		t.Errorf("plan duration = %v, want 365 days", got)
	}
	if p.ProgressPercentage != 0 {
		t.Errorf("ProgressPercentage = %d, want 0", p.ProgressPercentage)
	}
}

func TestGenerate_MilestoneBookends(t *testing.T) {
	gen := newTestGenerator()

	titles := []string{
		"Frontend Developer",
		"Backend Developer",
		"Data Scientist",
		"UX Designer",
		"Cybersecurity Specialist",
		"Quantum Researcher", // no family keyword, generic track
	}
	for _, title := range titles {
		t.Run(title, func(t *testing.T) {
			p := gen.Generate(1, 1, title)

			if len(p.Milestones) != 5 {
				t.Fatalf("got %d milestones, want 5", len(p.Milestones))
			}
			if p.Milestones[0].Title != "Technology Fundamentals" {
				t.Errorf("first milestone = %q, want Technology Fundamentals", p.Milestones[0].Title)
			}
			if last := p.Milestones[4].Title; last != "Professional Development & Job Readiness" {
				t.Errorf("last milestone = %q, want Professional Development & Job Readiness", last)
			}
			for i, m := range p.Milestones {
				if m.OrderIndex != i+1 {
					t.Errorf("milestone %d OrderIndex = %d, want %d", i, m.OrderIndex, i+1)
				}
				if m.Completed {
					t.Errorf("milestone %q starts completed", m.Title)
				}
				if len(m.Tasks) != 4 {
					t.Errorf("milestone %q has %d tasks, want 4", m.Title, len(m.Tasks))
				}
				for j, task := range m.Tasks {
					if task.OrderIndex != j+1 {
						t.Errorf("task %d in %q OrderIndex = %d, want %d", j, m.Title, task.OrderIndex, j+1)
					}
					if task.Completed {
						t.Errorf("task %q starts completed", task.Title)
					}
				}
			}
		})
	}
}

func TestGenerate_DueDatesEvenlySpaced(t *testing.T) {
	gen := newTestGenerator()

	p := gen.Generate(1, 1, "Backend Developer")

	// 365 days over 5 milestones is 73 days per milestone.
	for i, m := range p.Milestones {
		want := testStart.AddDate(0, 0, 73*(i+1))
		if !m.DueDate.Equal(want) {
			t.Errorf("milestone %d due %v, want %v", i+1, m.DueDate, want)
		}
	}
}

func TestGenerate_FrontendTrackContent(t *testing.T) {
	gen := newTestGenerator()

	p := gen.Generate(1, 1, "Frontend Developer")

	wantMiddles := []string{
		"Web Development Fundamentals",
		"CSS Frameworks & Responsive Design",
		"JavaScript & Frontend Frameworks",
	}
	for i, want := range wantMiddles {
		if got := p.Milestones[i+1].Title; got != want {
			t.Errorf("milestone %d = %q, want %q", i+2, got, want)
		}
	}
}

func TestFamilyOf(t *testing.T) {
	tests := []struct {
		title string
		want  plan.Family
	}{
		{"Frontend Developer", plan.FamilyFrontend},
		{"Web Developer", plan.FamilyFrontend},
		{"Backend Developer", plan.FamilyBackend},
		{"Full Stack Developer", plan.FamilyBackend},
		{"Data Scientist", plan.FamilyData},
		{"Business Analyst", plan.FamilyData},
		{"UX Designer", plan.FamilyUX},
		{"Graphic Designer", plan.FamilyUX},
		{"Cybersecurity Specialist", plan.FamilySecurity},
		{"Security Engineer", plan.FamilySecurity},
		{"DevOps Engineer", plan.FamilyGeneric},
		{"", plan.FamilyGeneric},
	}
	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			if got := plan.FamilyOf(tt.title); got != tt.want {
				t.Errorf("FamilyOf(%q) = %q, want %q", tt.title, got, tt.want)
			}
		})
	}
}

func TestUpdateProgress(t *testing.T) {
	p := plan.LearningPlan{
		Milestones: []plan.Milestone{
			{Tasks: []plan.Task{{Completed: true}, {Completed: true}}},
			{Tasks: []plan.Task{{Completed: true}, {Completed: false}}},
		},
	}

	plan.UpdateProgress(&p)

	if p.ProgressPercentage != 75 {
		t.Errorf("ProgressPercentage = %d, want 75", p.ProgressPercentage)
	}
	if !p.Milestones[0].Completed {
		t.Error("milestone with all tasks done should be completed")
	}
	if p.Milestones[1].Completed {
		t.Error("milestone with an open task should not be completed")
	}

	// Recomputing from the same state must not change anything.
	plan.UpdateProgress(&p)
	if p.ProgressPercentage != 75 {
		t.Errorf("ProgressPercentage after recompute = %d, want 75", p.ProgressPercentage)
	}
}

func TestUpdateProgress_Rounds(t *testing.T) {
	p := plan.LearningPlan{
		Milestones: []plan.Milestone{
			{Tasks: []plan.Task{{Completed: true}, {}, {}}},
		},
	}

	plan.UpdateProgress(&p)

	// 1 of 3 tasks is 33.33..., rounded to 33.
	if p.ProgressPercentage != 33 {
		t.Errorf("ProgressPercentage = %d, want 33", p.ProgressPercentage)
	}

	p.Milestones[0].Tasks[1].Completed = true
	plan.UpdateProgress(&p)
	// 2 of 3 is 66.66..., rounded to 67.
	if p.ProgressPercentage != 67 {
		t.Errorf("ProgressPercentage = %d, want 67", p.ProgressPercentage)
	}
}

func TestUpdateProgress_NoTasks(t *testing.T) {
	p := plan.LearningPlan{ProgressPercentage: 40}

	plan.UpdateProgress(&p)

	if p.ProgressPercentage != 0 {
		t.Errorf("ProgressPercentage = %d, want 0 for a plan with no tasks", p.ProgressPercentage)
	}
}

func TestUpdateProgress_EmptyMilestoneIsComplete(t *testing.T) {
	p := plan.LearningPlan{
		Milestones: []plan.Milestone{
			{Tasks: nil},
			{Tasks: []plan.Task{{Completed: true}}},
		},
	}

	plan.UpdateProgress(&p)

	if !p.Milestones[0].Completed {
		t.Error("milestone with no tasks should count as completed")
	}
	if p.ProgressPercentage != 100 {
		t.Errorf("ProgressPercentage = %d, want 100", p.ProgressPercentage)
	}
}
