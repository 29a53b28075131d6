package model

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrInvalidStatus   = errors.New("model: invalid task status")
	ErrInvalidPriority = errors.New("model: invalid task priority")
)

type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in-progress"
	StatusCompleted  Status = "completed"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted:
		return true
	default:
		return false
	}
}

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	default:
		return false
	}
}

// DefaultCategory is assigned to tasks whose category is missing or blank.
const DefaultCategory = "other"

type Task struct {
	ID               string
	Title            string
	Description      string
	Status           Status
	Priority         Priority
	Category         string
	Tags             []string
	DueAt            *time.Time
	EstimatedMinutes int
	ActualMinutes    int
	CreatedAt        time.Time
	CompletedAt      *time.Time
}

func (t Task) Validate() error {
	if strings.TrimSpace(t.ID) == "" {
		return errors.New("model: task id is required")
	}
	if strings.TrimSpace(t.Title) == "" {
		return errors.New("model: task title is required")
	}
	if !t.Status.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, t.Status)
	}
	if !t.Priority.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidPriority, t.Priority)
	}
	if t.CreatedAt.IsZero() {
		return errors.New("model: task created_at is required")
	}
	if t.Status == StatusCompleted && t.CompletedAt == nil {
		return errors.New("model: completed_at is required when task status is completed")
	}
	if t.Status != StatusCompleted && t.CompletedAt != nil {
		return errors.New("model: completed_at must be nil when task status is not completed")
	}
	return nil
}

// Normalize repairs records coming from imports or older schema versions
// instead of rejecting them: unknown priority falls back to medium, a blank
// category becomes DefaultCategory, and negative durations are zeroed.
func (t Task) Normalize() Task {
	if !t.Priority.IsValid() {
		t.Priority = PriorityMedium
	}
	if !t.Status.IsValid() {
		t.Status = StatusPending
	}
	if strings.TrimSpace(t.Category) == "" {
		t.Category = DefaultCategory
	}
	if t.EstimatedMinutes < 0 {
		t.EstimatedMinutes = 0
	}
	if t.ActualMinutes < 0 {
		t.ActualMinutes = 0
	}
	return t
}

// Overdue reports whether the task has a due time in the past and is not
// completed yet.
func (t Task) Overdue(now time.Time) bool {
	return t.DueAt != nil && t.DueAt.Before(now) && t.Status != StatusCompleted
}

// DueToday reports whether the task is due on now's UTC calendar day.
func (t Task) DueToday(now time.Time) bool {
	if t.DueAt == nil {
		return false
	}
	y1, m1, d1 := t.DueAt.UTC().Date()
	y2, m2, d2 := now.UTC().Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
