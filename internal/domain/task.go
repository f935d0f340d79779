package domain

import (
	"encoding/json"
	"strings"
	"time"
)

// Task is a tracked unit of work, enriched with its full tag and subtask
// sets when returned to clients.
type Task struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	Priority    Priority  `json:"priority"`
	DueDate     *Date     `json:"due_date"`
	Completed   bool      `json:"completed"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	Tags        []string  `json:"tags"`
	Subtasks    []Subtask `json:"subtasks"`
}

// Subtask is an ordered checklist item belonging to a task.
// task_id and created_at stay server-side; clients see {id, text, completed}.
type Subtask struct {
	ID        int64     `json:"id"`
	TaskID    int64     `json:"-"`
	Text      string    `json:"text"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"-"`
}

// TaskInput carries the client-supplied fields for create and update.
// Absent optional fields fall back to their defaults on write, they are
// never merged with the stored row.
type TaskInput struct {
	Title       string         `json:"title"`
	Description *string        `json:"description"`
	Priority    *Priority      `json:"priority"`
	DueDate     *Date          `json:"due_date"`
	Completed   bool           `json:"completed"`
	Tags        []string       `json:"tags"`
	Subtasks    []SubtaskInput `json:"subtasks"`
}

// Validate rejects input that must never reach the store.
func (in *TaskInput) Validate() error {
	if strings.TrimSpace(in.Title) == "" {
		return ErrEmptyTitle
	}
	return nil
}

// EffectivePriority applies the medium default for absent priority.
func (in *TaskInput) EffectivePriority() Priority {
	if in.Priority == nil {
		return PriorityMedium
	}
	return *in.Priority
}

// SubtaskInput accepts either a bare string ("buy milk") or an object
// ({"text": "buy milk", "completed": true}). The string form defaults
// completed to false.
type SubtaskInput struct {
	Text      string
	Completed bool
}

func (s *SubtaskInput) UnmarshalJSON(b []byte) error {
	var text string
	if err := json.Unmarshal(b, &text); err == nil {
		s.Text = text
		s.Completed = false
		return nil
	}

	var obj struct {
		Text      string `json:"text"`
		Completed bool   `json:"completed"`
	}
	if err := json.Unmarshal(b, &obj); err != nil {
		return err
	}
	s.Text = obj.Text
	s.Completed = obj.Completed
	return nil
}
