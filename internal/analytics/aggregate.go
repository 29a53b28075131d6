package analytics

import (
	"fmt"
	"sort"
	"time"

	"github.com/mdrakibgolder/AI-Enhanced-Productivity-Tools/internal/model"
)

// DailyBuckets produces window daily buckets ending at now's day, oldest
// first. Focus minutes come from focus sessions completed on the bucket
// day; task counts from tasks completed on the bucket day. A non-positive
// window is a caller error.
func DailyBuckets(tasks []model.Task, sessions []model.Session, window int, now time.Time) ([]DailyBucket, error) {
	if window <= 0 {
		return nil, ErrInvalidWindow
	}

	buckets := make([]DailyBucket, window)
	today := dayOf(now)
	index := make(map[time.Time]int, window)
	for i := 0; i < window; i++ {
		day := today.AddDate(0, 0, i-window+1)
		buckets[i] = DailyBucket{Day: day}
		index[day] = i
	}

	for _, s := range sessions {
		if s.Kind != model.SessionFocus {
			continue
		}
		if i, ok := index[dayOf(s.CompletedAt)]; ok {
			buckets[i].FocusMinutes += s.Minutes
		}
	}
	for _, t := range tasks {
		if t.CompletedAt == nil {
			continue
		}
		if i, ok := index[dayOf(*t.CompletedAt)]; ok {
			buckets[i].TasksCompleted++
		}
	}
	return buckets, nil
}

// ComputeTaskStats counts tasks by status plus how many are overdue.
func ComputeTaskStats(tasks []model.Task, now time.Time) TaskStats {
	stats := TaskStats{Total: len(tasks)}
	for _, t := range tasks {
		switch t.Status {
		case model.StatusCompleted:
			stats.Completed++
		case model.StatusInProgress:
			stats.InProgress++
		case model.StatusPending:
			stats.Pending++
		}
		if t.Overdue(now) {
			stats.Overdue++
		}
	}
	return stats
}

// ComputeTodayStats summarizes today's focus sessions and completions.
func ComputeTodayStats(tasks []model.Task, sessions []model.Session, now time.Time) TodayStats {
	stats := TodayStats{}
	for _, s := range sessions {
		if s.Kind != model.SessionFocus || !sameDay(s.CompletedAt, now) {
			continue
		}
		stats.FocusSessions++
		stats.FocusMinutes += s.Minutes
	}
	for _, t := range tasks {
		if t.CompletedAt != nil && sameDay(*t.CompletedAt, now) {
			stats.TasksCompleted++
		}
	}
	return stats
}

// CategoryCounts groups all tasks by category. Output is sorted by count
// descending, category ascending, so the distribution is deterministic.
func CategoryCounts(tasks []model.Task) []CategoryCount {
	counts := make(map[string]int)
	for _, t := range tasks {
		cat := t.Category
		if cat == "" {
			cat = model.DefaultCategory
		}
		counts[cat]++
	}

	out := make([]CategoryCount, 0, len(counts))
	for cat, n := range counts {
		out = append(out, CategoryCount{Category: cat, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Category < out[j].Category
	})
	return out
}

// CategoryMinutes totals actual minutes spent per category. Tasks with no
// recorded time are excluded. Same ordering rule as CategoryCounts.
func CategoryMinutes(tasks []model.Task) []CategoryTime {
	minutes := make(map[string]int)
	for _, t := range tasks {
		if t.ActualMinutes <= 0 {
			continue
		}
		cat := t.Category
		if cat == "" {
			cat = model.DefaultCategory
		}
		minutes[cat] += t.ActualMinutes
	}

	out := make([]CategoryTime, 0, len(minutes))
	for cat, m := range minutes {
		out = append(out, CategoryTime{Category: cat, Minutes: m})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Minutes != out[j].Minutes {
			return out[i].Minutes > out[j].Minutes
		}
		return out[i].Category < out[j].Category
	})
	return out
}

// HourlyDistribution sums session minutes into 24 hour-of-day buckets
// keyed by the UTC hour of completion. All session kinds count; the
// histogram shows when the user works, not just focus volume.
func HourlyDistribution(sessions []model.Session) [24]int {
	var hist [24]int
	for _, s := range sessions {
		hist[s.CompletedAt.UTC().Hour()] += s.Minutes
	}
	return hist
}

// ProductiveHours ranks the top 3 hours by minutes descending, hour
// ascending on ties.
func ProductiveHours(hist [24]int) []ProductiveHour {
	hours := make([]ProductiveHour, 0, len(hist))
	for h, m := range hist {
		hours = append(hours, ProductiveHour{
			Hour:    h,
			Minutes: m,
			Label:   hourLabel(h),
		})
	}
	sort.SliceStable(hours, func(i, j int) bool {
		return hours[i].Minutes > hours[j].Minutes
	})
	if len(hours) > 3 {
		hours = hours[:3]
	}
	return hours
}

func hourLabel(h int) string {
	return fmt.Sprintf("%d:00 - %d:00", h, h+1)
}
