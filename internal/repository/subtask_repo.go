package repository

import (
	"context"
	"errors"

	"tasktracker/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type SubtaskRepository struct {
	db *pgxpool.Pool
}

func NewSubtaskRepository(db *pgxpool.Pool) *SubtaskRepository {
	return &SubtaskRepository{db: db}
}

// ToggleCompleted flips a subtask's completed flag and returns the new
// value. Same read-then-write pattern as the task toggle, with the same
// last-write-wins race under concurrency.
func (r *SubtaskRepository) ToggleCompleted(ctx context.Context, id int64) (bool, error) {
	var completed bool
	err := r.db.QueryRow(ctx, `SELECT completed FROM subtasks WHERE id = $1`, id).Scan(&completed)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, domain.ErrSubtaskNotFound
		}
		return false, err
	}

	_, err = r.db.Exec(ctx, `UPDATE subtasks SET completed = $2 WHERE id = $1`, id, !completed)
	if err != nil {
		return false, err
	}
	return !completed, nil
}
