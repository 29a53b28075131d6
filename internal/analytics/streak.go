package analytics

import (
	"time"

	"github.com/mdrakibgolder/AI-Enhanced-Productivity-Tools/internal/model"
)

// focusDays collapses focus-session timestamps to a set of distinct UTC
// calendar days.
func focusDays(sessions []model.Session) map[time.Time]bool {
	days := make(map[time.Time]bool)
	for _, s := range sessions {
		if s.Kind != model.SessionFocus {
			continue
		}
		days[dayOf(s.CompletedAt)] = true
	}
	return days
}

// Streak counts consecutive UTC calendar days with at least one focus
// session, ending at now's day. A day with no session yet today does not
// break a run that is unbroken through yesterday; the run simply has not
// grown yet. Zero sessions means streak 0.
func Streak(sessions []model.Session, now time.Time) int {
	days := focusDays(sessions)
	if len(days) == 0 {
		return 0
	}

	day := dayOf(now)
	if !days[day] {
		day = day.AddDate(0, 0, -1)
	}

	streak := 0
	for days[day] {
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak
}

// LongestStreak returns the longest run of consecutive focus days anywhere
// in the history, not just the run ending today.
func LongestStreak(sessions []model.Session) int {
	days := focusDays(sessions)

	longest := 0
	for day := range days {
		// Only start counting at the beginning of a run.
		if days[day.AddDate(0, 0, -1)] {
			continue
		}
		length := 0
		for d := day; days[d]; d = d.AddDate(0, 0, 1) {
			length++
		}
		if length > longest {
			longest = length
		}
	}
	return longest
}
