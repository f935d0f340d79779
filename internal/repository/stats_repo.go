package repository

import (
	"context"

	"tasktracker/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type StatsRepository struct {
	db *pgxpool.Pool
}

func NewStatsRepository(db *pgxpool.Pool) *StatsRepository {
	return &StatsRepository{db: db}
}

// Get computes the task summary from four independent counts. There is no
// shared snapshot: under concurrent writes the counts may not add up for a
// single response.
func (r *StatsRepository) Get(ctx context.Context) (*domain.Stats, error) {
	var s domain.Stats

	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM tasks`).Scan(&s.Total); err != nil {
		return nil, err
	}
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM tasks WHERE completed = TRUE`).Scan(&s.Completed); err != nil {
		return nil, err
	}
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM tasks WHERE completed = FALSE`).Scan(&s.Active); err != nil {
		return nil, err
	}
	if err := r.db.QueryRow(ctx, `
		SELECT COUNT(*) FROM tasks
		WHERE completed = FALSE AND due_date IS NOT NULL AND due_date < CURRENT_DATE
	`).Scan(&s.Overdue); err != nil {
		return nil, err
	}

	return &s, nil
}
