package repository

import (
	"context"
	"errors"
	"time"

	"tasktracker/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type TaskRepository struct {
	db *pgxpool.Pool
}

func NewTaskRepository(db *pgxpool.Pool) *TaskRepository {
	return &TaskRepository{db: db}
}

const taskColumns = `id, title, description, priority, due_date, completed, created_at, updated_at`

// List returns all tasks newest first, each enriched with its tags and
// subtasks. Children are fetched per task; table sizes here are small and
// this is not a hot path.
func (r *TaskRepository) List(ctx context.Context) ([]*domain.Task, error) {
	rows, err := r.db.Query(ctx, `SELECT `+taskColumns+` FROM tasks ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := []*domain.Task{}
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, t := range tasks {
		if err := r.loadChildren(ctx, t); err != nil {
			return nil, err
		}
	}
	return tasks, nil
}

// GetByID returns one enriched task or domain.ErrTaskNotFound.
func (r *TaskRepository) GetByID(ctx context.Context, id int64) (*domain.Task, error) {
	row := r.db.QueryRow(ctx, `SELECT `+taskColumns+` FROM tasks WHERE id = $1`, id)
	t, err := scanTask(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTaskNotFound
		}
		return nil, err
	}
	if err := r.loadChildren(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

// Create inserts a task with its tags and subtasks in one transaction.
// Validation runs before any store access; any failure mid-transaction
// rolls back the whole creation.
func (r *TaskRepository) Create(ctx context.Context, input domain.TaskInput) (*domain.Task, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var id int64
	err = tx.QueryRow(ctx, `
		INSERT INTO tasks (title, description, priority, due_date)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, input.Title, input.Description, input.EffectivePriority(), input.DueDate.TimePtr()).Scan(&id)
	if err != nil {
		return nil, err
	}

	if err := insertTags(ctx, tx, id, input.Tags); err != nil {
		return nil, err
	}
	if err := insertSubtasks(ctx, tx, id, input.Subtasks); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	return r.GetByID(ctx, id)
}

// Update rewrites the task's scalar fields and replaces the full tag and
// subtask sets in one transaction. Absent optional fields reset to their
// defaults; there is no merge and no incremental child add/remove.
func (r *TaskRepository) Update(ctx context.Context, id int64, input domain.TaskInput) (*domain.Task, error) {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var updated int64
	err = tx.QueryRow(ctx, `
		UPDATE tasks
		SET title = $2, description = $3, priority = $4, due_date = $5, completed = $6, updated_at = NOW()
		WHERE id = $1
		RETURNING id
	`, id, input.Title, input.Description, input.EffectivePriority(), input.DueDate.TimePtr(), input.Completed).Scan(&updated)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTaskNotFound
		}
		return nil, err
	}

	if _, err := tx.Exec(ctx, `DELETE FROM tags WHERE task_id = $1`, id); err != nil {
		return nil, err
	}
	if err := insertTags(ctx, tx, id, input.Tags); err != nil {
		return nil, err
	}

	if _, err := tx.Exec(ctx, `DELETE FROM subtasks WHERE task_id = $1`, id); err != nil {
		return nil, err
	}
	if err := insertSubtasks(ctx, tx, id, input.Subtasks); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	return r.GetByID(ctx, id)
}

// ToggleCompleted flips the completed flag and returns the new value.
// Read-then-write: concurrent toggles of the same row race and the last
// write wins.
func (r *TaskRepository) ToggleCompleted(ctx context.Context, id int64) (bool, error) {
	var completed bool
	err := r.db.QueryRow(ctx, `SELECT completed FROM tasks WHERE id = $1`, id).Scan(&completed)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, domain.ErrTaskNotFound
		}
		return false, err
	}

	_, err = r.db.Exec(ctx, `UPDATE tasks SET completed = $2, updated_at = NOW() WHERE id = $1`, id, !completed)
	if err != nil {
		return false, err
	}
	return !completed, nil
}

// Delete removes the task; the store cascades tag and subtask removal.
func (r *TaskRepository) Delete(ctx context.Context, id int64) error {
	ct, err := r.db.Exec(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}

func (r *TaskRepository) loadChildren(ctx context.Context, t *domain.Task) error {
	tags, err := r.loadTags(ctx, t.ID)
	if err != nil {
		return err
	}
	t.Tags = tags

	subtasks, err := r.loadSubtasks(ctx, t.ID)
	if err != nil {
		return err
	}
	t.Subtasks = subtasks
	return nil
}

func (r *TaskRepository) loadTags(ctx context.Context, taskID int64) ([]string, error) {
	rows, err := r.db.Query(ctx, `SELECT tag_name FROM tags WHERE task_id = $1`, taskID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tags := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		tags = append(tags, name)
	}
	return tags, rows.Err()
}

func (r *TaskRepository) loadSubtasks(ctx context.Context, taskID int64) ([]domain.Subtask, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, task_id, text, completed, created_at
		FROM subtasks
		WHERE task_id = $1
		ORDER BY id
	`, taskID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	subtasks := []domain.Subtask{}
	for rows.Next() {
		var s domain.Subtask
		if err := rows.Scan(&s.ID, &s.TaskID, &s.Text, &s.Completed, &s.CreatedAt); err != nil {
			return nil, err
		}
		subtasks = append(subtasks, s)
	}
	return subtasks, rows.Err()
}

func insertTags(ctx context.Context, tx pgx.Tx, taskID int64, tags []string) error {
	for _, name := range tags {
		if _, err := tx.Exec(ctx, `INSERT INTO tags (task_id, tag_name) VALUES ($1, $2)`, taskID, name); err != nil {
			return err
		}
	}
	return nil
}

func insertSubtasks(ctx context.Context, tx pgx.Tx, taskID int64, subtasks []domain.SubtaskInput) error {
	for _, s := range subtasks {
		if _, err := tx.Exec(ctx, `INSERT INTO subtasks (task_id, text, completed) VALUES ($1, $2, $3)`, taskID, s.Text, s.Completed); err != nil {
			return err
		}
	}
	return nil
}

func scanTask(row pgx.Row) (*domain.Task, error) {
	var t domain.Task
	var description *string
	var due *time.Time

	if err := row.Scan(&t.ID, &t.Title, &description, &t.Priority, &due, &t.Completed, &t.CreatedAt, &t.UpdatedAt); err != nil {
		return nil, err
	}

	t.Description = description
	t.DueDate = domain.NewDate(due)
	return &t, nil
}
