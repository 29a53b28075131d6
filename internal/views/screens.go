package views

import (
	"fmt"
	"strings"
)

type TaskItemData struct {
	ID        string
	Title     string
	Priority  string
	Category  string
	Status    string
	Score     int
	DueLabel  string
	Estimated int
}

type TasksPanelData struct {
	QuickAddView string
	Items        []TaskItemData
	SelectedID   string
}

type PlanItemData struct {
	Title  string
	Reason string
}

type FocusBlockData struct {
	Time        string
	Type        string
	Tasks       []string
	Description string
}

type PlanPanelData struct {
	Greeting     string
	Quote        string
	TotalPending int
	HighPriority int
	DueToday     int
	Items        []PlanItemData
	Blocks       []FocusBlockData
	Tip          string
	Enriched     bool
	Loading      bool
}

type FocusPanelData struct {
	TaskTitle          string
	Phase              string
	Timer              string
	ProgressView       string
	ProgressPct        int
	CompletedPomodoros int
	Running            bool
}

type WeeklyRowData struct {
	Day            string
	FocusMinutes   int
	TasksCompleted int
}

type CategoryRowData struct {
	Name    string
	Count   int
	Minutes int
}

type ProductiveHourRowData struct {
	Label   string
	Minutes int
}

type TrendRowData struct {
	TotalCompleted int
	AvgDaily       float64
	BestDay        string
}

type DashboardPanelData struct {
	Total             int
	Completed         int
	InProgress        int
	Pending           int
	Overdue           int
	FocusSessions     int
	FocusMinutes      int
	CompletedToday    int
	ProductivityScore int
	Streak            int
	LongestStreak     int
	Weekly            []WeeklyRowData
	Categories        []CategoryRowData
	ProductiveHours   []ProductiveHourRowData
	Trend             TrendRowData
}

type InsightItemData struct {
	Icon    string
	Title   string
	Message string
}

type InsightsPanelData struct {
	Suggestions []InsightItemData
	Insights    []InsightItemData
	Enriched    bool
}

type HelpPanelData struct {
	CurrentView string
	Bindings    []string
	HelpView    string
}

func RenderTasksPanel(data TasksPanelData) string {
	var b strings.Builder
	b.WriteString("tasks:\n")
	b.WriteString(data.QuickAddView + "\n")
	b.WriteString("actions: [enter]add [j/k]move [d]done [s]focus [tab]view\n")
	if len(data.Items) == 0 {
		b.WriteString("(no tasks, add one above)")
		return strings.TrimSpace(b.String())
	}
	for _, item := range data.Items {
		cursor := " "
		if data.SelectedID == item.ID {
			cursor = ">"
		}
		b.WriteString(fmt.Sprintf("%s %s %3d %s", cursor, priorityBadge(item), item.Score, item.Title))
		if item.Category != "" {
			b.WriteString(" #" + item.Category)
		}
		if item.DueLabel != "" {
			b.WriteString(" due:" + item.DueLabel)
		}
		if item.Estimated > 0 {
			b.WriteString(fmt.Sprintf(" ~%dm", item.Estimated))
		}
		if item.Status == "in-progress" {
			b.WriteString(" *")
		}
		b.WriteString("\n")
	}
	return strings.TrimSpace(b.String())
}

func RenderPlanPanel(data PlanPanelData) string {
	var b strings.Builder
	b.WriteString("plan:\n")
	if data.Loading {
		b.WriteString("(enriching plan...)\n")
	}
	b.WriteString(data.Greeting + "\n")
	b.WriteString(fmt.Sprintf("pending: %d | high: %d | due today: %d\n",
		data.TotalPending, data.HighPriority, data.DueToday))

	b.WriteString("\nrecommended order:\n")
	if len(data.Items) == 0 {
		b.WriteString("  (nothing pending)\n")
	}
	for i, item := range data.Items {
		b.WriteString(fmt.Sprintf("%d. %s - %s\n", i+1, item.Title, item.Reason))
	}

	b.WriteString("\nfocus blocks:\n")
	for _, block := range data.Blocks {
		b.WriteString(fmt.Sprintf("%s [%s]\n", block.Time, block.Type))
		if len(block.Tasks) == 0 {
			b.WriteString("  (open)\n")
			continue
		}
		for _, task := range block.Tasks {
			b.WriteString("  - " + task + "\n")
		}
	}

	b.WriteString("\nquote: " + data.Quote + "\n")
	b.WriteString("tip: " + data.Tip + "\n")
	if data.Enriched {
		b.WriteString("(ai-enriched)")
	}
	return strings.TrimSpace(b.String())
}

func RenderFocusPanel(data FocusPanelData) string {
	var b strings.Builder
	b.WriteString("focus:\n")
	if data.TaskTitle != "" {
		b.WriteString(fmt.Sprintf("task: %s\n", data.TaskTitle))
	} else {
		b.WriteString("task: (none selected)\n")
	}
	b.WriteString(fmt.Sprintf("phase: %s\n", strings.ToUpper(data.Phase)))
	b.WriteString(fmt.Sprintf("timer: %s\n", data.Timer))
	b.WriteString(fmt.Sprintf("progress: %s %d%%\n", data.ProgressView, data.ProgressPct))
	b.WriteString(fmt.Sprintf("pomodoros completed: %d\n", data.CompletedPomodoros))
	b.WriteString("actions: [space]start/pause [r]reset\n")
	if !data.Running && data.Timer == "00:00" {
		b.WriteString("prompt: phase complete, press [space] for the next one")
	}
	return strings.TrimSpace(b.String())
}

func RenderDashboardPanel(data DashboardPanelData) string {
	var b strings.Builder
	b.WriteString("dashboard:\n")
	b.WriteString(fmt.Sprintf("tasks: %d total | %d done | %d active | %d pending | %d overdue\n",
		data.Total, data.Completed, data.InProgress, data.Pending, data.Overdue))
	b.WriteString(fmt.Sprintf("today: %d sessions | %dm focus | %d completed\n",
		data.FocusSessions, data.FocusMinutes, data.CompletedToday))
	b.WriteString(fmt.Sprintf("score: %d | streak: %d day(s) | best: %d\n",
		data.ProductivityScore, data.Streak, data.LongestStreak))

	b.WriteString("\nweek:\n")
	for _, row := range data.Weekly {
		b.WriteString(fmt.Sprintf("%s %s %dm / %d done\n", row.Day, focusBar(row.FocusMinutes), row.FocusMinutes, row.TasksCompleted))
	}

	if len(data.Categories) > 0 {
		b.WriteString("\ncategories:\n")
		for _, row := range data.Categories {
			if row.Minutes > 0 {
				b.WriteString(fmt.Sprintf("  %s: %d task(s), %dm tracked\n", row.Name, row.Count, row.Minutes))
				continue
			}
			b.WriteString(fmt.Sprintf("  %s: %d task(s)\n", row.Name, row.Count))
		}
	}

	if len(data.ProductiveHours) > 0 {
		b.WriteString("\nproductive hours:\n")
		for _, row := range data.ProductiveHours {
			b.WriteString(fmt.Sprintf("  %s (%dm)\n", row.Label, row.Minutes))
		}
	}

	b.WriteString(fmt.Sprintf("\n30-day trend: %d completed | %.1f/day | best %s",
		data.Trend.TotalCompleted, data.Trend.AvgDaily, data.Trend.BestDay))
	return strings.TrimSpace(b.String())
}

func RenderInsightsPanel(data InsightsPanelData) string {
	var b strings.Builder
	b.WriteString("insights:\n")

	b.WriteString("\nsuggestions:\n")
	if len(data.Suggestions) == 0 {
		b.WriteString("  (all clear)\n")
	}
	for _, item := range data.Suggestions {
		b.WriteString(fmt.Sprintf("%s %s - %s\n", item.Icon, item.Title, item.Message))
	}

	b.WriteString("\nhighlights:\n")
	if len(data.Insights) == 0 {
		b.WriteString("  (keep working, highlights show up here)\n")
	}
	for _, item := range data.Insights {
		b.WriteString(fmt.Sprintf("%s %s - %s\n", item.Icon, item.Title, item.Message))
	}

	if data.Enriched {
		b.WriteString("(ai-enriched)")
	}
	return strings.TrimSpace(b.String())
}

func RenderCommandPalette(active bool, input string) string {
	if !active {
		return ""
	}
	return fmt.Sprintf("command: /%s", input)
}

func RenderNotification(level string, body string) string {
	if strings.TrimSpace(body) == "" {
		return ""
	}
	return fmt.Sprintf("\nnotification: [%s] %s", strings.ToUpper(level), body)
}

func RenderHelpPanel(data HelpPanelData) string {
	bindings := strings.Join(data.Bindings, "\n")
	if rendered := RenderMarkdown(bindings); rendered != "" {
		bindings = rendered
	}
	return fmt.Sprintf("help:\nglobal:\n%s view:\n%s\n%s",
		strings.ToLower(data.CurrentView),
		bindings,
		data.HelpView,
	)
}

func priorityBadge(item TaskItemData) string {
	if item.Priority == "high" {
		return "[RED]"
	}
	if item.Priority == "medium" {
		return "[YELLOW]"
	}
	return "[GREEN]"
}

func focusBar(minutes int) string {
	width := minutes / 15
	if width > 16 {
		width = 16
	}
	return "[" + strings.Repeat("#", width) + strings.Repeat(".", 16-width) + "]"
}
