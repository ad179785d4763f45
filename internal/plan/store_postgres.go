package plan

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const dbTimeout = 5 * time.Second

// PostgresStore persists learning plans in PostgreSQL across the
// learning_plans, plan_milestones and plan_tasks tables.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a plan store backed by the given pool.
func NewPostgresStore(pool *pgxpool.Pool) (*PostgresStore, error) {
	if pool == nil {
		return nil, fmt.Errorf("postgres plan store: nil pool")
	}
	return &PostgresStore{pool: pool}, nil
}

func (s *PostgresStore) CreatePlan(p LearningPlan) (LearningPlan, error) {
	ctx, cancel := context.WithTimeout(context.Background(), dbTimeout)
	defer cancel()

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return LearningPlan{}, fmt.Errorf("begin create plan: %w", err)
	}
	defer tx.Rollback(ctx)

	UpdateProgress(&p)

	err = tx.QueryRow(ctx,
		`INSERT INTO learning_plans (user_id, career_id, career_title, title, description, start_date, end_date, progress_percentage, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING id`,
		p.UserID, p.CareerID, p.CareerTitle, p.Title, p.Description, p.StartDate, p.EndDate, p.ProgressPercentage, p.CreatedAt,
	).Scan(&p.ID)
	if err != nil {
		return LearningPlan{}, fmt.Errorf("insert plan: %w", err)
	}

	for i := range p.Milestones {
		m := &p.Milestones[i]
		err = tx.QueryRow(ctx,
			`INSERT INTO plan_milestones (plan_id, title, description, order_index, due_date, completed)
			 VALUES ($1, $2, $3, $4, $5, $6)
			 RETURNING id`,
			p.ID, m.Title, m.Description, m.OrderIndex, m.DueDate, m.Completed,
		).Scan(&m.ID)
		if err != nil {
			return LearningPlan{}, fmt.Errorf("insert milestone: %w", err)
		}

		for j := range m.Tasks {
			task := &m.Tasks[j]
			err = tx.QueryRow(ctx,
				`INSERT INTO plan_tasks (milestone_id, title, description, order_index, completed)
				 VALUES ($1, $2, $3, $4, $5)
				 RETURNING id`,
				m.ID, task.Title, task.Description, task.OrderIndex, task.Completed,
			).Scan(&task.ID)
			if err != nil {
				return LearningPlan{}, fmt.Errorf("insert task: %w", err)
			}
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return LearningPlan{}, fmt.Errorf("commit create plan: %w", err)
	}
	return p, nil
}

func (s *PostgresStore) GetPlan(planID int64) (LearningPlan, error) {
	ctx, cancel := context.WithTimeout(context.Background(), dbTimeout)
	defer cancel()

	return s.getPlan(ctx, planID)
}

func (s *PostgresStore) getPlan(ctx context.Context, planID int64) (LearningPlan, error) {
	var p LearningPlan
	err := s.pool.QueryRow(ctx,
		`SELECT id, user_id, career_id, career_title, title, description, start_date, end_date, progress_percentage, created_at
		 FROM learning_plans WHERE id = $1`,
		planID,
	).Scan(&p.ID, &p.UserID, &p.CareerID, &p.CareerTitle, &p.Title, &p.Description, &p.StartDate, &p.EndDate, &p.ProgressPercentage, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return LearningPlan{}, ErrPlanNotFound
		}
		return LearningPlan{}, fmt.Errorf("select plan: %w", err)
	}

	milestones, err := s.loadMilestones(ctx, p.ID)
	if err != nil {
		return LearningPlan{}, err
	}
	p.Milestones = milestones
	return p, nil
}

func (s *PostgresStore) loadMilestones(ctx context.Context, planID int64) ([]Milestone, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, title, description, order_index, due_date, completed
		 FROM plan_milestones WHERE plan_id = $1 ORDER BY order_index`,
		planID,
	)
	if err != nil {
		return nil, fmt.Errorf("select milestones: %w", err)
	}
	defer rows.Close()

	var milestones []Milestone
	for rows.Next() {
		var m Milestone
		if err := rows.Scan(&m.ID, &m.Title, &m.Description, &m.OrderIndex, &m.DueDate, &m.Completed); err != nil {
			return nil, fmt.Errorf("scan milestone: %w", err)
		}
		milestones = append(milestones, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate milestones: %w", err)
	}

	for i := range milestones {
		tasks, err := s.loadTasks(ctx, milestones[i].ID)
		if err != nil {
			return nil, err
		}
		milestones[i].Tasks = tasks
	}
	return milestones, nil
}

func (s *PostgresStore) loadTasks(ctx context.Context, milestoneID int64) ([]Task, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, title, description, order_index, completed
		 FROM plan_tasks WHERE milestone_id = $1 ORDER BY order_index`,
		milestoneID,
	)
	if err != nil {
		return nil, fmt.Errorf("select tasks: %w", err)
	}
	defer rows.Close()

	var tasks []Task
	for rows.Next() {
		var task Task
		if err := rows.Scan(&task.ID, &task.Title, &task.Description, &task.OrderIndex, &task.Completed); err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tasks: %w", err)
	}
	return tasks, nil
}

func (s *PostgresStore) ListForUser(userID int64) ([]LearningPlan, error) {
	ctx, cancel := context.WithTimeout(context.Background(), dbTimeout)
	defer cancel()

	rows, err := s.pool.Query(ctx,
		`SELECT id FROM learning_plans WHERE user_id = $1 ORDER BY created_at DESC, id DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("select plans: %w", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan plan id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate plans: %w", err)
	}

	plans := make([]LearningPlan, 0, len(ids))
	for _, id := range ids {
		p, err := s.getPlan(ctx, id)
		if err != nil {
			return nil, err
		}
		plans = append(plans, p)
	}
	sort.SliceStable(plans, func(i, j int) bool {
		if !plans[i].CreatedAt.Equal(plans[j].CreatedAt) {
			return plans[i].CreatedAt.After(plans[j].CreatedAt)
		}
		return plans[i].ID > plans[j].ID
	})
	return plans, nil
}

func (s *PostgresStore) CompleteTask(planID, taskID int64) (LearningPlan, error) {
	ctx, cancel := context.WithTimeout(context.Background(), dbTimeout)
	defer cancel()

	tag, err := s.pool.Exec(ctx,
		`UPDATE plan_tasks SET completed = TRUE
		 WHERE id = $1 AND milestone_id IN (SELECT id FROM plan_milestones WHERE plan_id = $2)`,
		taskID, planID,
	)
	if err != nil {
		return LearningPlan{}, fmt.Errorf("complete task: %w", err)
	}
	if tag.RowsAffected() == 0 {
		if _, err := s.getPlan(ctx, planID); err != nil {
			return LearningPlan{}, err
		}
		return LearningPlan{}, ErrTaskNotFound
	}

	p, err := s.getPlan(ctx, planID)
	if err != nil {
		return LearningPlan{}, err
	}
	UpdateProgress(&p)

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return LearningPlan{}, fmt.Errorf("begin progress update: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx,
		`UPDATE learning_plans SET progress_percentage = $1 WHERE id = $2`,
		p.ProgressPercentage, p.ID,
	); err != nil {
		return LearningPlan{}, fmt.Errorf("update plan progress: %w", err)
	}
	for _, m := range p.Milestones {
		if _, err := tx.Exec(ctx,
			`UPDATE plan_milestones SET completed = $1 WHERE id = $2`,
			m.Completed, m.ID,
		); err != nil {
			return LearningPlan{}, fmt.Errorf("update milestone progress: %w", err)
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return LearningPlan{}, fmt.Errorf("commit progress update: %w", err)
	}
	return p, nil
}
