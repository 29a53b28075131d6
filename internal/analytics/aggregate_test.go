package analytics

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/mdrakibgolder/AI-Enhanced-Productivity-Tools/internal/model"
)

var aggNow = time.Date(2026, 8, 10, 15, 30, 0, 0, time.UTC)

func TestDailyBucketsInvalidWindow(t *testing.T) {
	if _, err := DailyBuckets(nil, nil, 0, aggNow); !errors.Is(err, ErrInvalidWindow) {
		t.Fatalf("window 0: expected ErrInvalidWindow, got %v", err)
	}
	if _, err := DailyBuckets(nil, nil, -7, aggNow); !errors.Is(err, ErrInvalidWindow) {
		t.Fatalf("window -7: expected ErrInvalidWindow, got %v", err)
	}
}

func TestDailyBucketsOrderAndContent(t *testing.T) {
	yesterday := aggNow.AddDate(0, 0, -1)
	doneAt := aggNow.Add(-time.Hour)
	tasks := []model.Task{
		{ID: "t1", Status: model.StatusCompleted, CompletedAt: &doneAt},
	}
	sessions := []model.Session{
		{ID: "s1", Kind: model.SessionFocus, Minutes: 25, CompletedAt: aggNow},
		{ID: "s2", Kind: model.SessionFocus, Minutes: 50, CompletedAt: yesterday},
		{ID: "s3", Kind: model.SessionShortBreak, Minutes: 5, CompletedAt: aggNow},
	}

	buckets, err := DailyBuckets(tasks, sessions, 3, aggNow)
	if err != nil {
		t.Fatalf("daily buckets: %v", err)
	}
	want := []DailyBucket{
		{Day: time.Date(2026, 8, 8, 0, 0, 0, 0, time.UTC)},
		{Day: time.Date(2026, 8, 9, 0, 0, 0, 0, time.UTC), FocusMinutes: 50},
		{Day: time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC), FocusMinutes: 25, TasksCompleted: 1},
	}
	if diff := cmp.Diff(want, buckets); diff != "" {
		t.Fatalf("bucket mismatch (-want +got):\n%s", diff)
	}
}

func TestDailyBucketsConserveFocusMinutes(t *testing.T) {
	sessions := []model.Session{
		{ID: "s1", Kind: model.SessionFocus, Minutes: 25, CompletedAt: aggNow},
		{ID: "s2", Kind: model.SessionFocus, Minutes: 15, CompletedAt: aggNow.Add(-2 * time.Hour)},
		{ID: "s3", Kind: model.SessionFocus, Minutes: 40, CompletedAt: aggNow.AddDate(0, 0, -3)},
		{ID: "s4", Kind: model.SessionFocus, Minutes: 30, CompletedAt: aggNow.AddDate(0, 0, -6)},
	}
	buckets, err := DailyBuckets(nil, sessions, 7, aggNow)
	if err != nil {
		t.Fatalf("daily buckets: %v", err)
	}

	bucketTotal := 0
	for _, b := range buckets {
		bucketTotal += b.FocusMinutes
	}
	sessionTotal := 0
	for _, s := range sessions {
		sessionTotal += s.Minutes
	}
	if bucketTotal != sessionTotal {
		t.Fatalf("bucket total %d != session total %d", bucketTotal, sessionTotal)
	}
}

func TestComputeTaskStats(t *testing.T) {
	past := aggNow.Add(-time.Hour)
	doneAt := aggNow.Add(-time.Hour)
	tasks := []model.Task{
		{ID: "t1", Status: model.StatusPending},
		{ID: "t2", Status: model.StatusPending, DueAt: &past},
		{ID: "t3", Status: model.StatusInProgress},
		{ID: "t4", Status: model.StatusCompleted, CompletedAt: &doneAt},
	}
	got := ComputeTaskStats(tasks, aggNow)
	want := TaskStats{Total: 4, Completed: 1, InProgress: 1, Pending: 2, Overdue: 1}
	if got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestComputeTodayStats(t *testing.T) {
	doneToday := aggNow.Add(-30 * time.Minute)
	doneYesterday := aggNow.AddDate(0, 0, -1)
	tasks := []model.Task{
		{ID: "t1", Status: model.StatusCompleted, CompletedAt: &doneToday},
		{ID: "t2", Status: model.StatusCompleted, CompletedAt: &doneYesterday},
	}
	sessions := []model.Session{
		{ID: "s1", Kind: model.SessionFocus, Minutes: 25, CompletedAt: aggNow.Add(-time.Hour)},
		{ID: "s2", Kind: model.SessionFocus, Minutes: 25, CompletedAt: aggNow.Add(-2 * time.Hour)},
		{ID: "s3", Kind: model.SessionFocus, Minutes: 25, CompletedAt: doneYesterday},
		{ID: "s4", Kind: model.SessionShortBreak, Minutes: 5, CompletedAt: aggNow},
	}
	got := ComputeTodayStats(tasks, sessions, aggNow)
	want := TodayStats{FocusSessions: 2, FocusMinutes: 50, TasksCompleted: 1}
	if got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestCategoryCountsOrdering(t *testing.T) {
	tasks := []model.Task{
		{ID: "t1", Category: "work"},
		{ID: "t2", Category: "work"},
		{ID: "t3", Category: "health"},
		{ID: "t4", Category: "finance"},
		{ID: "t5"},
	}
	got := CategoryCounts(tasks)
	want := []CategoryCount{
		{Category: "work", Count: 2},
		{Category: "finance", Count: 1},
		{Category: "health", Count: 1},
		{Category: "other", Count: 1},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("category counts (-want +got):\n%s", diff)
	}
}

func TestCategoryMinutesSkipsUntimedTasks(t *testing.T) {
	tasks := []model.Task{
		{ID: "t1", Category: "work", ActualMinutes: 90},
		{ID: "t2", Category: "work", ActualMinutes: 30},
		{ID: "t3", Category: "learning", ActualMinutes: 60},
		{ID: "t4", Category: "health"},
	}
	got := CategoryMinutes(tasks)
	want := []CategoryTime{
		{Category: "work", Minutes: 120},
		{Category: "learning", Minutes: 60},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("category minutes (-want +got):\n%s", diff)
	}
}

func TestHourlyDistributionAndProductiveHours(t *testing.T) {
	at := func(hour int) time.Time {
		return time.Date(2026, 8, 10, hour, 15, 0, 0, time.UTC)
	}
	sessions := []model.Session{
		{ID: "s1", Kind: model.SessionFocus, Minutes: 50, CompletedAt: at(9)},
		{ID: "s2", Kind: model.SessionFocus, Minutes: 25, CompletedAt: at(9)},
		{ID: "s3", Kind: model.SessionFocus, Minutes: 25, CompletedAt: at(14)},
		{ID: "s4", Kind: model.SessionShortBreak, Minutes: 25, CompletedAt: at(16)},
	}
	hist := HourlyDistribution(sessions)
	if hist[9] != 75 || hist[14] != 25 || hist[16] != 25 {
		t.Fatalf("unexpected histogram: 9h=%d 14h=%d 16h=%d", hist[9], hist[14], hist[16])
	}

	top := ProductiveHours(hist)
	if len(top) != 3 {
		t.Fatalf("expected 3 productive hours, got %d", len(top))
	}
	if top[0].Hour != 9 || top[0].Minutes != 75 {
		t.Fatalf("unexpected top hour: %+v", top[0])
	}
	// 14h and 16h tie on minutes; lower hour wins.
	if top[1].Hour != 14 || top[2].Hour != 16 {
		t.Fatalf("unexpected tie-break: %+v", top)
	}
	if top[0].Label != "9:00 - 10:00" {
		t.Fatalf("unexpected label: %q", top[0].Label)
	}
}
