package analytics

import (
	"errors"
	"testing"
	"time"

	"github.com/mdrakibgolder/AI-Enhanced-Productivity-Tools/internal/model"
)

func TestCompletionTrendSingleSpike(t *testing.T) {
	now := time.Date(2026, 8, 10, 12, 0, 0, 0, time.UTC)
	spikeDay := now.AddDate(0, 0, -4)

	var tasks []model.Task
	for i := 0; i < 5; i++ {
		doneAt := spikeDay
		tasks = append(tasks, model.Task{
			ID:          "t" + string(rune('a'+i)),
			Status:      model.StatusCompleted,
			CompletedAt: &doneAt,
		})
	}

	trend, err := TrendFor(tasks, DefaultTrendWindow, now)
	if err != nil {
		t.Fatalf("trend: %v", err)
	}
	if trend.TotalCompleted != 5 {
		t.Fatalf("total completed: got %d, want 5", trend.TotalCompleted)
	}
	if trend.AvgDaily != 0.2 {
		t.Fatalf("avg daily: got %v, want 0.2", trend.AvgDaily)
	}
	if trend.BestDay.TasksCompleted != 5 || !trend.BestDay.Day.Equal(dayOf(spikeDay)) {
		t.Fatalf("unexpected best day: %+v", trend.BestDay)
	}
}

func TestCompletionTrendAllZero(t *testing.T) {
	now := time.Date(2026, 8, 10, 12, 0, 0, 0, time.UTC)
	trend, err := TrendFor(nil, 30, now)
	if err != nil {
		t.Fatalf("trend: %v", err)
	}
	if trend.TotalCompleted != 0 || trend.AvgDaily != 0 {
		t.Fatalf("expected zero trend, got %+v", trend)
	}
	// All-zero window falls back to the first (oldest) bucket.
	wantDay := dayOf(now).AddDate(0, 0, -29)
	if !trend.BestDay.Day.Equal(wantDay) {
		t.Fatalf("best day: got %v, want %v", trend.BestDay.Day, wantDay)
	}
}

func TestCompletionTrendBestDayEarliestTie(t *testing.T) {
	now := time.Date(2026, 8, 10, 12, 0, 0, 0, time.UTC)
	early := now.AddDate(0, 0, -10)
	late := now.AddDate(0, 0, -2)
	tasks := []model.Task{
		{ID: "t1", Status: model.StatusCompleted, CompletedAt: &early},
		{ID: "t2", Status: model.StatusCompleted, CompletedAt: &late},
	}
	trend, err := TrendFor(tasks, 30, now)
	if err != nil {
		t.Fatalf("trend: %v", err)
	}
	if !trend.BestDay.Day.Equal(dayOf(early)) {
		t.Fatalf("tie must keep the earliest day, got %v", trend.BestDay.Day)
	}
}

func TestTrendForInvalidWindow(t *testing.T) {
	now := time.Date(2026, 8, 10, 12, 0, 0, 0, time.UTC)
	if _, err := TrendFor(nil, 0, now); !errors.Is(err, ErrInvalidWindow) {
		t.Fatalf("expected ErrInvalidWindow, got %v", err)
	}
}

func TestCompletionTrendEmptyBuckets(t *testing.T) {
	trend := CompletionTrend(nil)
	if trend.TotalCompleted != 0 || trend.AvgDaily != 0 {
		t.Fatalf("expected zero trend for empty input, got %+v", trend)
	}
}
