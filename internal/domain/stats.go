package domain

// Stats is the task summary. The four counts come from independent queries
// with no shared snapshot, so under concurrent writes they may be mutually
// inconsistent for a single response.
type Stats struct {
	Total     int64 `json:"total"`
	Completed int64 `json:"completed"`
	Active    int64 `json:"active"`
	Overdue   int64 `json:"overdue"`
}
