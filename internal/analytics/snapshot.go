package analytics

import (
	"time"

	"github.com/mdrakibgolder/AI-Enhanced-Productivity-Tools/internal/model"
)

// WeeklyWindow is the bucket count for the dashboard's weekly series.
const WeeklyWindow = 7

// ComputeSnapshot recomputes every derived aggregate from scratch for the
// given trailing window. Nothing is cached; determinism over identical
// input is the only contract.
func ComputeSnapshot(tasks []model.Task, sessions []model.Session, window int, now time.Time) (Snapshot, error) {
	buckets, err := DailyBuckets(tasks, sessions, window, now)
	if err != nil {
		return Snapshot{}, err
	}

	today := ComputeTodayStats(tasks, sessions, now)
	streak := Streak(sessions, now)

	return Snapshot{
		TaskStats:            ComputeTaskStats(tasks, now),
		DailyBuckets:         buckets,
		CategoryDistribution: CategoryCounts(tasks),
		HourlyDistribution:   HourlyDistribution(sessions),
		Streak:               streak,
		ProductivityScore:    ProductivityScore(today.FocusMinutes, today.TasksCompleted, streak),
	}, nil
}

// ComputeDashboard builds the dashboard object: status counts, today's
// activity, the weekly series, and both streak figures.
func ComputeDashboard(tasks []model.Task, sessions []model.Session, now time.Time) Dashboard {
	weekly, _ := DailyBuckets(tasks, sessions, WeeklyWindow, now)
	today := ComputeTodayStats(tasks, sessions, now)
	streak := Streak(sessions, now)

	return Dashboard{
		TaskStats:            ComputeTaskStats(tasks, now),
		TodayStats:           today,
		WeeklyData:           weekly,
		ProductivityScore:    ProductivityScore(today.FocusMinutes, today.TasksCompleted, streak),
		CategoryDistribution: CategoryCounts(tasks),
		Streak:               streak,
		LongestStreak:        LongestStreak(sessions),
	}
}

// WeeklyFocusMinutes sums focus minutes over the trailing week, feeding
// the deep-focus insight rule.
func WeeklyFocusMinutes(sessions []model.Session, now time.Time) int {
	weekAgo := now.Add(-WeeklyWindow * 24 * time.Hour)
	total := 0
	for _, s := range sessions {
		if s.Kind == model.SessionFocus && s.CompletedAt.After(weekAgo) {
			total += s.Minutes
		}
	}
	return total
}
