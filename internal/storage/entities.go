package storage

import "time"

type Task struct {
	ID               string
	Title            string
	Description      string
	Status           string
	Priority         string
	Category         string
	Tags             []string
	DueAt            *time.Time
	EstimatedMinutes int
	ActualMinutes    int
	CreatedAt        time.Time
	CompletedAt      *time.Time
}

type Session struct {
	ID          string
	Kind        string
	Minutes     int
	TaskID      string
	Notes       string
	CompletedAt time.Time
}

type TaskListFilter struct {
	Status   string
	Category string
	Limit    int
	Offset   int
}

type SessionListFilter struct {
	Kind   string
	TaskID string
	Since  *time.Time
	Limit  int
	Offset int
}
