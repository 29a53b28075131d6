package analytics

import (
	"math/rand"
	"time"

	"github.com/mdrakibgolder/AI-Enhanced-Productivity-Tools/internal/model"
)

// Greeting pools keyed by time-of-day band. Selection is randomized, so
// tests check membership rather than exact text.
var (
	morningGreetings = []string{
		"Good morning! Ready to be productive? ☀️",
		"Morning! Let's make today count. ☀️",
		"Good morning! Start with your hardest task. 🌄",
	}
	afternoonGreetings = []string{
		"Good afternoon! Keep up the great work! 💪",
		"Afternoon! Still plenty of time to make progress. 💪",
		"Good afternoon! A short break now pays off later. ☕",
	}
	eveningGreetings = []string{
		"Good evening! Time to wrap up strong! 🌅",
		"Evening! Finish one more small task and call it a day. 🌅",
		"Good evening! Review what you got done today. 📝",
	}
	lateNightGreetings = []string{
		"Working late? Remember to rest well! 🌙",
		"Late night session? Keep it short and sleep well. 🌙",
		"Night owl mode. Pick one task, then rest. 🌙",
	}
)

var motivationalQuotes = []string{
	"The secret of getting ahead is getting started. - Mark Twain",
	"Focus on being productive instead of busy. - Tim Ferriss",
	"The way to get started is to quit talking and begin doing. - Walt Disney",
	"Your time is limited, don't waste it living someone else's life. - Steve Jobs",
	"The only way to do great work is to love what you do. - Steve Jobs",
	"Success is not final, failure is not fatal: it is the courage to continue. - Winston Churchill",
	"Believe you can and you're halfway there. - Theodore Roosevelt",
	"It does not matter how slowly you go as long as you do not stop. - Confucius",
}

var productivityTips = []string{
	"Try the 2-minute rule: If a task takes less than 2 minutes, do it now!",
	"Break large tasks into smaller, manageable chunks",
	"Use time-blocking to dedicate specific hours to deep work",
	"Take regular breaks - your brain needs rest to stay productive",
	"Start with your most challenging task when your energy is highest",
	"Minimize distractions by turning off notifications during focus time",
	"Review your goals at the start of each day",
	"Celebrate small wins to maintain motivation",
	"Use the Pomodoro Technique: 25 minutes focus, 5 minutes break",
	"Keep your workspace clean and organized",
}

// quickTaskPlaceholders fills the end-of-day block when no task fits it.
var quickTaskPlaceholders = []string{"Clear inbox", "Quick responses", "Small tasks"}

type PlanSummary struct {
	TotalPending int
	HighPriority int
	DueToday     int
}

type PlanItem struct {
	ID               string
	Title            string
	Priority         model.Priority
	EstimatedMinutes int
	Reason           string
}

type FocusBlock struct {
	Time        string
	Type        string
	Tasks       []string
	Description string
}

type Plan struct {
	Greeting         string
	Quote            string
	Summary          PlanSummary
	RecommendedOrder []PlanItem
	FocusBlocks      []FocusBlock
	Tip              string
}

// BuildPlan composes the daily plan: greeting and quote from the pools,
// the top five tasks by priority score with a one-line reason each, and
// three fixed focus blocks. The random source is injected so tests can be
// deterministic; a nil rng falls back to a time-seeded one.
func BuildPlan(tasks []model.Task, now time.Time, rng *rand.Rand) Plan {
	if rng == nil {
		rng = rand.New(rand.NewSource(now.UnixNano()))
	}

	var pending []model.Task
	for _, t := range tasks {
		if t.Status != model.StatusCompleted {
			pending = append(pending, t)
		}
	}
	scored := ScoreTasks(pending, now)

	summary := PlanSummary{TotalPending: len(pending)}
	for _, t := range pending {
		if t.Priority == model.PriorityHigh {
			summary.HighPriority++
		}
		if t.DueToday(now) {
			summary.DueToday++
		}
	}

	top := scored
	if len(top) > 5 {
		top = top[:5]
	}
	order := make([]PlanItem, 0, len(top))
	for _, st := range top {
		order = append(order, PlanItem{
			ID:               st.Task.ID,
			Title:            st.Task.Title,
			Priority:         st.Task.Priority,
			EstimatedMinutes: st.Task.EstimatedMinutes,
			Reason:           PriorityReason(st.Task, now),
		})
	}

	return Plan{
		Greeting:         Greeting(now, rng),
		Quote:            pick(motivationalQuotes, rng),
		Summary:          summary,
		RecommendedOrder: order,
		FocusBlocks:      FocusBlocks(scored),
		Tip:              pick(productivityTips, rng),
	}
}

// Greeting picks from the pool for now's hour band: morning [0,12),
// afternoon [12,17), evening [17,21), late night otherwise. Hours use UTC
// like every other time computation here.
func Greeting(now time.Time, rng *rand.Rand) string {
	hour := now.UTC().Hour()
	switch {
	case hour < 12:
		return pick(morningGreetings, rng)
	case hour < 17:
		return pick(afternoonGreetings, rng)
	case hour < 21:
		return pick(eveningGreetings, rng)
	default:
		return pick(lateNightGreetings, rng)
	}
}

// FocusBlocks lays the highest-scored tasks into three fixed day slots.
// All three blocks are always emitted; empty morning and afternoon slots
// render as open time, and the quick-tasks slot falls back to placeholder
// entries.
func FocusBlocks(scored []ScoredTask) []FocusBlock {
	var high, medium []string
	for _, st := range scored {
		switch st.Task.Priority {
		case model.PriorityHigh:
			if len(high) < 2 {
				high = append(high, st.Task.Title)
			}
		case model.PriorityMedium:
			if len(medium) < 2 {
				medium = append(medium, st.Task.Title)
			}
		}
	}

	return []FocusBlock{
		{
			Time:        "9:00 AM - 11:00 AM",
			Type:        "Deep Work",
			Tasks:       high,
			Description: "Best time for challenging tasks - your energy is highest",
		},
		{
			Time:        "2:00 PM - 4:00 PM",
			Type:        "Focused Work",
			Tasks:       medium,
			Description: "Good time for important but less demanding tasks",
		},
		{
			Time:        "4:00 PM - 5:00 PM",
			Type:        "Quick Tasks",
			Tasks:       append([]string(nil), quickTaskPlaceholders...),
			Description: "End the day with easy wins",
		},
	}
}

func pick(pool []string, rng *rand.Rand) string {
	return pool[rng.Intn(len(pool))]
}
