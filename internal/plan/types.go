// Package plan generates one-year learning plans from career recommendations
// and recomputes plan progress from task completion state.
package plan

import "time"

// LearningPlan is a generated one-year learning path for a user and career.
type LearningPlan struct {
	ID                 int64       `json:"id,omitempty"`
	UserID             int64       `json:"user_id"`
	CareerID           int64       `json:"career_id"`
	CareerTitle        string      `json:"career_title"`
	Title              string      `json:"title"`
	Description        string      `json:"description"`
	StartDate          time.Time   `json:"start_date"`
	EndDate            time.Time   `json:"end_date"`
	ProgressPercentage int         `json:"progress_percentage"`
	Milestones         []Milestone `json:"milestones"`
	CreatedAt          time.Time   `json:"created_at"`
}

// Milestone is one ordered stage of a learning plan. Completed is a derived
// summary: it is true exactly when every task in the milestone is completed.
type Milestone struct {
	ID          int64     `json:"id,omitempty"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	OrderIndex  int       `json:"order_index"` // 1-based within the plan
	DueDate     time.Time `json:"due_date"`
	Completed   bool      `json:"completed"`
	Tasks       []Task    `json:"tasks"`
}

// Task is one unit of work inside a milestone. Completion is driven by user
// action and treated as one-way by this package.
type Task struct {
	ID          int64  `json:"id,omitempty"`
	Title       string `json:"title"`
	Description string `json:"description"`
	OrderIndex  int    `json:"order_index"` // 1-based within the milestone
	Completed   bool   `json:"completed"`
}
