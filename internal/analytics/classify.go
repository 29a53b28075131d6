package analytics

import "strings"

// Keyword tables for auto-classifying new tasks from their text. Matching
// is plain substring search over the lowercased title and description.
var categoryKeywords = map[string][]string{
	"work":     {"meeting", "project", "client", "deadline", "report", "presentation", "email", "call", "review", "proposal"},
	"personal": {"doctor", "dentist", "gym", "shopping", "family", "friends", "birthday", "appointment", "home"},
	"learning": {"learn", "study", "course", "tutorial", "read", "book", "practice", "skill", "training"},
	"health":   {"exercise", "workout", "meditation", "sleep", "diet", "health", "fitness", "run", "yoga"},
	"finance":  {"budget", "payment", "bill", "tax", "invest", "savings", "expense", "bank", "money"},
}

// tagPatterns is ordered so suggested tags come out deterministically.
var tagPatterns = []struct {
	tag      string
	patterns []string
}{
	{"urgent", []string{"urgent", "asap", "immediately", "critical"}},
	{"meeting", []string{"meeting", "call", "discussion", "sync"}},
	{"review", []string{"review", "check", "approve", "feedback"}},
	{"creative", []string{"design", "create", "write", "develop"}},
	{"admin", []string{"schedule", "organize", "file", "update"}},
	{"research", []string{"research", "analyze", "study", "investigate"}},
}

// SuggestCategory picks the category whose keyword list matches the task
// text most often. No match means the default bucket. Ties keep the first
// category to reach the winning count, checked in a fixed order.
func SuggestCategory(title, description string) string {
	text := strings.ToLower(title + " " + description)

	best := "other"
	maxMatches := 0
	for _, cat := range []string{"work", "personal", "learning", "health", "finance"} {
		matches := 0
		for _, kw := range categoryKeywords[cat] {
			if strings.Contains(text, kw) {
				matches++
			}
		}
		if matches > maxMatches {
			maxMatches = matches
			best = cat
		}
	}
	return best
}

// SuggestTags proposes up to three tags from the task text.
func SuggestTags(title, description string) []string {
	text := strings.ToLower(title + " " + description)

	var tags []string
	for _, tp := range tagPatterns {
		for _, p := range tp.patterns {
			if strings.Contains(text, p) {
				tags = append(tags, tp.tag)
				break
			}
		}
		if len(tags) == 3 {
			break
		}
	}
	return tags
}

// EstimateMinutes guesses a duration from task text, shortest pattern
// class first.
func EstimateMinutes(title, description string) int {
	text := strings.ToLower(title + " " + description)

	classes := []struct {
		minutes  int
		patterns []string
	}{
		{15, []string{"email", "call", "reply", "quick", "check", "review briefly"}},
		{45, []string{"write", "prepare", "organize", "update", "create draft"}},
		{90, []string{"meeting", "presentation", "report", "analysis", "project"}},
		{120, []string{"complete", "finish", "develop", "implement", "design"}},
	}
	for _, c := range classes {
		for _, p := range c.patterns {
			if strings.Contains(text, p) {
				return c.minutes
			}
		}
	}
	return 30
}
