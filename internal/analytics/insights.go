package analytics

import (
	"fmt"
	"math"
	"time"

	"github.com/mdrakibgolder/AI-Enhanced-Productivity-Tools/internal/model"
)

// Suggestions derives actionable hints from the current task list. Rules
// are evaluated independently; every applicable rule fires, and the output
// order fixes display priority.
func Suggestions(tasks []model.Task, now time.Time) []Suggestion {
	var out []Suggestion

	var overdue, quickWins, highWaiting, dueToday []string
	recentlyCompleted := 0
	hourAgo := now.Add(-time.Hour)

	for _, t := range tasks {
		if t.Status != model.StatusCompleted {
			if t.Overdue(now) {
				overdue = append(overdue, t.ID)
			}
			if t.Status == model.StatusPending && t.EstimatedMinutes > 0 && t.EstimatedMinutes <= 30 {
				quickWins = append(quickWins, t.ID)
			}
			if t.Status == model.StatusPending && t.Priority == model.PriorityHigh {
				highWaiting = append(highWaiting, t.ID)
			}
			if t.DueToday(now) {
				dueToday = append(dueToday, t.ID)
			}
		}
		if t.CompletedAt != nil && t.CompletedAt.After(hourAgo) {
			recentlyCompleted++
		}
	}

	if len(overdue) > 0 {
		out = append(out, Suggestion{
			Type:        "warning",
			Icon:        "⚠️",
			Title:       "Overdue Tasks Alert",
			Message:     fmt.Sprintf("You have %d overdue task(s). Consider rescheduling or prioritizing them.", len(overdue)),
			ActionLabel: "View overdue tasks",
			TaskIDs:     overdue,
		})
	}
	if len(quickWins) > 0 {
		out = append(out, Suggestion{
			Type:        "tip",
			Icon:        "⚡",
			Title:       "Quick Wins Available",
			Message:     fmt.Sprintf("%d task(s) can be completed in 30 minutes or less. Great for building momentum!", len(quickWins)),
			ActionLabel: "Start a quick task",
			TaskIDs:     quickWins,
		})
	}
	if len(highWaiting) > 0 {
		out = append(out, Suggestion{
			Type:        "priority",
			Icon:        "🔥",
			Title:       "High Priority Tasks Waiting",
			Message:     fmt.Sprintf("%d high-priority task(s) haven't been started yet.", len(highWaiting)),
			ActionLabel: "Focus on priorities",
			TaskIDs:     highWaiting,
		})
	}
	if len(dueToday) > 0 {
		out = append(out, Suggestion{
			Type:        "info",
			Icon:        "📅",
			Title:       "Due Today",
			Message:     fmt.Sprintf("%d task(s) are due today. Stay focused!", len(dueToday)),
			ActionLabel: "View today's tasks",
			TaskIDs:     dueToday,
		})
	}
	if recentlyCompleted >= 3 {
		out = append(out, Suggestion{
			Type:        "success",
			Icon:        "🎉",
			Title:       "Great Progress!",
			Message:     fmt.Sprintf("You've completed %d tasks recently. Consider taking a short break!", recentlyCompleted),
			ActionLabel: "Start break timer",
		})
	}
	return out
}

// Insights reads the aggregates: streak bands, weekly focus volume, and
// overall completion rate.
func Insights(streak int, weeklyFocusMinutes int, tasks []model.Task) []Insight {
	var out []Insight

	if streak >= 7 {
		out = append(out, Insight{
			Type:    "achievement",
			Icon:    "🔥",
			Title:   "Amazing Streak!",
			Message: fmt.Sprintf("You're on a %d-day streak! Keep it going!", streak),
		})
	} else if streak >= 3 {
		out = append(out, Insight{
			Type:    "progress",
			Icon:    "📈",
			Title:   "Building Momentum",
			Message: fmt.Sprintf("%d days in a row! You're building great habits.", streak),
		})
	}

	if weeklyFocusMinutes >= 120 {
		out = append(out, Insight{
			Type:    "success",
			Icon:    "🎯",
			Title:   "Deep Focus Achieved",
			Message: fmt.Sprintf("%d hours of focused work this week!", int(math.Round(float64(weeklyFocusMinutes)/60))),
		})
	}

	rate := CompletionRate(tasks)
	if rate >= 80 {
		out = append(out, Insight{
			Type:    "success",
			Icon:    "⭐",
			Title:   "High Achiever!",
			Message: fmt.Sprintf("%d%% task completion rate. Outstanding!", int(math.Round(rate))),
		})
	} else if rate >= 50 {
		out = append(out, Insight{
			Type:    "info",
			Icon:    "💪",
			Title:   "Good Progress",
			Message: fmt.Sprintf("%d%% completion rate. Keep pushing!", int(math.Round(rate))),
		})
	}
	return out
}

// CompletionRate is completed/total as a percentage in [0,100]. Zero tasks
// means exactly 0, never a division error.
func CompletionRate(tasks []model.Task) float64 {
	if len(tasks) == 0 {
		return 0
	}
	completed := 0
	for _, t := range tasks {
		if t.Status == model.StatusCompleted {
			completed++
		}
	}
	return float64(completed) / float64(len(tasks)) * 100
}

// ProductivityScore blends focus time, completions, and streak into a
// 0-100 score on a base of 50. Each term is individually capped so no
// single habit dominates.
func ProductivityScore(focusMinutes, tasksCompleted, streak int) int {
	score := 50.0
	score += math.Min(20, float64(focusMinutes)/60*2)
	score += math.Min(20, float64(tasksCompleted)*2)
	score += math.Min(10, float64(streak))
	return int(math.Round(math.Min(100, score)))
}
