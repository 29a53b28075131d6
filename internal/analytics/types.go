package analytics

import (
	"errors"
	"time"

	"github.com/mdrakibgolder/AI-Enhanced-Productivity-Tools/internal/model"
)

// ErrInvalidWindow is returned when a caller asks for a non-positive
// trailing window. Bad window sizes are a boundary contract violation,
// unlike messy task data, which is repaired by defaulting instead.
var ErrInvalidWindow = errors.New("analytics: window must be positive")

// All calendar-day bucketing in this package (streaks, daily buckets,
// due-today checks) uses UTC day boundaries so results do not depend on
// the host time zone.

// ScoredTask is a decorated copy of a task; the underlying task is never
// mutated.
type ScoredTask struct {
	Task  model.Task
	Score int
}

// DailyBucket is one calendar day of activity. Day is midnight UTC.
type DailyBucket struct {
	Day            time.Time
	FocusMinutes   int
	TasksCompleted int
}

type TaskStats struct {
	Total      int
	Completed  int
	InProgress int
	Pending    int
	Overdue    int
}

type TodayStats struct {
	FocusSessions  int
	FocusMinutes   int
	TasksCompleted int
}

type CategoryCount struct {
	Category string
	Count    int
}

type CategoryTime struct {
	Category string
	Minutes  int
}

type ProductiveHour struct {
	Hour    int
	Minutes int
	Label   string
}

type Trend struct {
	TotalCompleted int
	AvgDaily       float64
	BestDay        DailyBucket
}

type Suggestion struct {
	Type        string
	Icon        string
	Title       string
	Message     string
	ActionLabel string
	TaskIDs     []string
}

type Insight struct {
	Type    string
	Icon    string
	Title   string
	Message string
}

// Snapshot is the full set of derived aggregates, recomputed fresh on
// every request from the current task and session lists.
type Snapshot struct {
	TaskStats            TaskStats
	DailyBuckets         []DailyBucket
	CategoryDistribution []CategoryCount
	HourlyDistribution   [24]int
	Streak               int
	ProductivityScore    int
}

// Dashboard is the shape the dashboard view renders.
type Dashboard struct {
	TaskStats            TaskStats
	TodayStats           TodayStats
	WeeklyData           []DailyBucket
	ProductivityScore    int
	CategoryDistribution []CategoryCount
	Streak               int
	LongestStreak        int
}

// dayOf collapses a timestamp to its UTC calendar day.
func dayOf(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

func sameDay(a, b time.Time) bool {
	return dayOf(a).Equal(dayOf(b))
}
