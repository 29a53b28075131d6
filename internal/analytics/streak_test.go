package analytics

import (
	"testing"
	"time"

	"github.com/mdrakibgolder/AI-Enhanced-Productivity-Tools/internal/model"
)

func focusOn(day time.Time) model.Session {
	return model.Session{
		ID:          "sess-" + day.Format("2006-01-02"),
		Kind:        model.SessionFocus,
		Minutes:     25,
		CompletedAt: day,
	}
}

func TestStreakEmptySessions(t *testing.T) {
	now := time.Date(2026, 8, 10, 12, 0, 0, 0, time.UTC)
	if got := Streak(nil, now); got != 0 {
		t.Fatalf("got %d, want 0", got)
	}
}

func TestStreakThreeConsecutiveDays(t *testing.T) {
	now := time.Date(2026, 8, 10, 12, 0, 0, 0, time.UTC)
	sessions := []model.Session{
		focusOn(now),
		focusOn(now.AddDate(0, 0, -1)),
		focusOn(now.AddDate(0, 0, -2)),
		// Day -3 missing, day -4 present: must not count.
		focusOn(now.AddDate(0, 0, -4)),
	}
	if got := Streak(sessions, now); got != 3 {
		t.Fatalf("got %d, want 3", got)
	}
}

func TestStreakTodayOnly(t *testing.T) {
	now := time.Date(2026, 8, 10, 12, 0, 0, 0, time.UTC)
	sessions := []model.Session{
		focusOn(now),
		focusOn(now.AddDate(0, 0, -5)),
	}
	if got := Streak(sessions, now); got != 1 {
		t.Fatalf("got %d, want 1", got)
	}
}

func TestStreakNoSessionYetToday(t *testing.T) {
	// A run unbroken through yesterday still counts before today's first
	// session.
	now := time.Date(2026, 8, 10, 9, 0, 0, 0, time.UTC)
	sessions := []model.Session{
		focusOn(now.AddDate(0, 0, -1)),
		focusOn(now.AddDate(0, 0, -2)),
	}
	if got := Streak(sessions, now); got != 2 {
		t.Fatalf("got %d, want 2", got)
	}
}

func TestStreakNeverShrinksWhenTodayAdded(t *testing.T) {
	now := time.Date(2026, 8, 10, 12, 0, 0, 0, time.UTC)
	sessions := []model.Session{
		focusOn(now.AddDate(0, 0, -1)),
		focusOn(now.AddDate(0, 0, -2)),
	}
	before := Streak(sessions, now)
	after := Streak(append(sessions, focusOn(now)), now)
	if after < before {
		t.Fatalf("streak shrank from %d to %d after adding today", before, after)
	}
}

func TestStreakIgnoresBreakSessions(t *testing.T) {
	now := time.Date(2026, 8, 10, 12, 0, 0, 0, time.UTC)
	sessions := []model.Session{
		{ID: "b1", Kind: model.SessionShortBreak, Minutes: 5, CompletedAt: now},
		{ID: "b2", Kind: model.SessionLongBreak, Minutes: 15, CompletedAt: now.AddDate(0, 0, -1)},
	}
	if got := Streak(sessions, now); got != 0 {
		t.Fatalf("got %d, want 0 (breaks must not count)", got)
	}
}

func TestLongestStreak(t *testing.T) {
	now := time.Date(2026, 8, 10, 12, 0, 0, 0, time.UTC)
	sessions := []model.Session{
		// Current run: 2 days.
		focusOn(now),
		focusOn(now.AddDate(0, 0, -1)),
		// Older run: 4 days.
		focusOn(now.AddDate(0, 0, -10)),
		focusOn(now.AddDate(0, 0, -11)),
		focusOn(now.AddDate(0, 0, -12)),
		focusOn(now.AddDate(0, 0, -13)),
	}
	if got := LongestStreak(sessions); got != 4 {
		t.Fatalf("got %d, want 4", got)
	}
	if got := LongestStreak(nil); got != 0 {
		t.Fatalf("empty history: got %d, want 0", got)
	}
}
