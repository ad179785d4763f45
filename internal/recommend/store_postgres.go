package recommend

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

const dbTimeout = 5 * time.Second

// PostgresStore is a PostgreSQL-backed Store implementation.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a PostgreSQL-backed recommendation store.
func NewPostgresStore(pool *pgxpool.Pool) (*PostgresStore, error) {
	if pool == nil {
		return nil, fmt.Errorf("pool is nil")
	}
	return &PostgresStore{pool: pool}, nil
}

// ReplaceForUser swaps the user's recommendation set inside one transaction so
// readers never observe a mixed set.
func (s *PostgresStore) ReplaceForUser(userID int64, recs []Recommendation) ([]Recommendation, error) {
	ctx, cancel := context.WithTimeout(context.Background(), dbTimeout)
	defer cancel()

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin replace: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx,
		`DELETE FROM career_recommendations WHERE user_id = $1`,
		userID,
	); err != nil {
		return nil, fmt.Errorf("delete previous recommendations: %w", err)
	}

	stored := make([]Recommendation, 0, len(recs))
	for _, rec := range recs {
		if rec.UserID != userID {
			return nil, fmt.Errorf("recommendation user %d does not match %d", rec.UserID, userID)
		}
		createdAt := rec.CreatedAt
		if createdAt.IsZero() {
			createdAt = time.Now()
		}

		err := tx.QueryRow(ctx,
			`INSERT INTO career_recommendations
			   (user_id, career_id, career_title, match_percentage, explanation, created_at)
			 VALUES ($1, $2, $3, $4, $5, $6)
			 RETURNING id`,
			rec.UserID, rec.CareerID, rec.CareerTitle, rec.MatchPercentage, rec.Explanation, createdAt,
		).Scan(&rec.ID)
		if err != nil {
			return nil, fmt.Errorf("insert recommendation: %w", err)
		}
		rec.CreatedAt = createdAt
		stored = append(stored, rec)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit replace: %w", err)
	}
	return stored, nil
}

func (s *PostgresStore) ListForUser(userID int64) ([]Recommendation, error) {
	ctx, cancel := context.WithTimeout(context.Background(), dbTimeout)
	defer cancel()

	rows, err := s.pool.Query(ctx,
		`SELECT id, user_id, career_id, career_title, match_percentage, explanation, created_at
		 FROM career_recommendations
		 WHERE user_id = $1
		 ORDER BY match_percentage DESC, id ASC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("query recommendations: %w", err)
	}
	defer rows.Close()

	var recs []Recommendation
	for rows.Next() {
		var rec Recommendation
		if err := rows.Scan(
			&rec.ID, &rec.UserID, &rec.CareerID, &rec.CareerTitle,
			&rec.MatchPercentage, &rec.Explanation, &rec.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan recommendation: %w", err)
		}
		recs = append(recs, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read recommendations: %w", err)
	}
	return recs, nil
}
