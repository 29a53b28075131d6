package analytics

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/mdrakibgolder/AI-Enhanced-Productivity-Tools/internal/model"
)

const (
	basePriorityHigh    = 30
	basePriorityMedium  = 20
	basePriorityLow     = 10
	basePriorityUnknown = 15
)

// PriorityScore rates a task's urgency in [0,100]. Scoring is total over
// any input: an unrecognized priority falls back to a middle base tier
// instead of failing.
func PriorityScore(t model.Task, now time.Time) int {
	score := 0

	switch t.Priority {
	case model.PriorityHigh:
		score += basePriorityHigh
	case model.PriorityMedium:
		score += basePriorityMedium
	case model.PriorityLow:
		score += basePriorityLow
	default:
		score += basePriorityUnknown
	}

	if t.DueAt != nil {
		daysUntil := t.DueAt.Sub(now).Hours() / 24
		switch {
		case daysUntil < 0:
			score += 40
		case daysUntil < 1:
			score += 35
		case daysUntil < 3:
			score += 25
		case daysUntil < 7:
			score += 15
		default:
			score += 5
		}
	}

	if t.EstimatedMinutes > 0 {
		if t.EstimatedMinutes <= 30 {
			score += 10
		} else if t.EstimatedMinutes >= 120 {
			score += 5
		}
	}

	if t.Category == "work" {
		score += 5
	}

	if score > 100 {
		score = 100
	}
	return score
}

// ScoreTasks decorates every task with its priority score and returns the
// list sorted by score descending. The sort is stable so equal-score tasks
// keep their input order.
func ScoreTasks(tasks []model.Task, now time.Time) []ScoredTask {
	scored := make([]ScoredTask, 0, len(tasks))
	for _, t := range tasks {
		scored = append(scored, ScoredTask{Task: t, Score: PriorityScore(t, now)})
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	return scored
}

// PriorityReason explains in one line why a task ranks where it does.
// Due-date proximity wins over priority tier, which wins over task size.
func PriorityReason(t model.Task, now time.Time) string {
	if t.DueAt != nil {
		daysUntil := int(math.Ceil(t.DueAt.Sub(now).Hours() / 24))
		switch {
		case daysUntil < 0:
			return "Overdue - needs immediate attention"
		case daysUntil == 0:
			return "Due today"
		case daysUntil == 1:
			return "Due tomorrow"
		case daysUntil <= 3:
			return fmt.Sprintf("Due in %d days", daysUntil)
		}
	}
	if t.Priority == model.PriorityHigh {
		return "High priority task"
	}
	if t.EstimatedMinutes > 0 && t.EstimatedMinutes <= 30 {
		return "Quick win - build momentum"
	}
	return "Scheduled task"
}
