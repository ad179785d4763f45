package plan

import (
	"fmt"
	"sort"
	"sync"
)

// Store persists learning plans. Implementations assign IDs to plans,
// milestones and tasks on create.
type Store interface {
	// CreatePlan persists a new plan and returns it with IDs assigned.
	CreatePlan(p LearningPlan) (LearningPlan, error)
	// GetPlan returns a plan by ID.
	GetPlan(planID int64) (LearningPlan, error)
	// ListForUser returns the user's plans, newest first.
	ListForUser(userID int64) ([]LearningPlan, error)
	// CompleteTask marks a task completed, recomputes the plan's derived
	// progress fields and returns the updated plan. Completion is one-way:
	// completing an already-completed task is a no-op.
	CompleteTask(planID, taskID int64) (LearningPlan, error)
}

// ErrPlanNotFound is returned when a plan ID does not exist.
var ErrPlanNotFound = fmt.Errorf("learning plan not found")

// ErrTaskNotFound is returned when a task ID does not exist in the plan.
var ErrTaskNotFound = fmt.Errorf("task not found in plan")

// MemoryStore is an in-memory Store for tests and single-node deployments.
type MemoryStore struct {
	mu     sync.RWMutex
	plans  map[int64]LearningPlan
	nextID int64
}

// NewMemoryStore creates an empty in-memory plan store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{plans: make(map[int64]LearningPlan)}
}

func (s *MemoryStore) CreatePlan(p LearningPlan) (LearningPlan, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	p.ID = s.nextID
	for i := range p.Milestones {
		s.nextID++
		p.Milestones[i].ID = s.nextID
		for j := range p.Milestones[i].Tasks {
			s.nextID++
			p.Milestones[i].Tasks[j].ID = s.nextID
		}
	}
	UpdateProgress(&p)

	s.plans[p.ID] = clonePlan(p)
	return p, nil
}

func (s *MemoryStore) GetPlan(planID int64) (LearningPlan, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.plans[planID]
	if !ok {
		return LearningPlan{}, ErrPlanNotFound
	}
	return clonePlan(p), nil
}

func (s *MemoryStore) ListForUser(userID int64) ([]LearningPlan, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var plans []LearningPlan
	for _, p := range s.plans {
		if p.UserID == userID {
			plans = append(plans, clonePlan(p))
		}
	}
	sort.Slice(plans, func(i, j int) bool {
		if !plans[i].CreatedAt.Equal(plans[j].CreatedAt) {
			return plans[i].CreatedAt.After(plans[j].CreatedAt)
		}
		return plans[i].ID > plans[j].ID
	})
	return plans, nil
}

func (s *MemoryStore) CompleteTask(planID, taskID int64) (LearningPlan, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.plans[planID]
	if !ok {
		return LearningPlan{}, ErrPlanNotFound
	}
	p = clonePlan(p)

	found := false
	for i := range p.Milestones {
		for j := range p.Milestones[i].Tasks {
			if p.Milestones[i].Tasks[j].ID == taskID {
				p.Milestones[i].Tasks[j].Completed = true
				found = true
			}
		}
	}
	if !found {
		return LearningPlan{}, ErrTaskNotFound
	}

	UpdateProgress(&p)
	s.plans[p.ID] = clonePlan(p)
	return p, nil
}

func clonePlan(p LearningPlan) LearningPlan {
	milestones := make([]Milestone, len(p.Milestones))
	copy(milestones, p.Milestones)
	for i := range milestones {
		tasks := make([]Task, len(milestones[i].Tasks))
		copy(tasks, milestones[i].Tasks)
		milestones[i].Tasks = tasks
	}
	p.Milestones = milestones
	return p
}
