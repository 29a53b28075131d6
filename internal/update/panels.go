package update

import (
	"time"

	"github.com/mdrakibgolder/AI-Enhanced-Productivity-Tools/internal/analytics"
	"github.com/mdrakibgolder/AI-Enhanced-Productivity-Tools/internal/pomodoro"
	"github.com/mdrakibgolder/AI-Enhanced-Productivity-Tools/internal/views"
)

func (m Model) renderTasksPanel() string {
	now := time.Now().UTC()
	items := make([]views.TaskItemData, 0, len(m.Tasks))
	for _, t := range m.Tasks {
		items = append(items, views.TaskItemData{
			ID:        t.ID,
			Title:     t.Title,
			Priority:  string(t.Priority),
			Category:  t.Category,
			Status:    string(t.Status),
			Score:     analytics.PriorityScore(t, now),
			DueLabel:  dueLabel(t.DueAt, now),
			Estimated: t.EstimatedMinutes,
		})
	}
	quickAdd := "press [a] to add a task"
	if m.Capturing {
		quickAdd = m.quickAddInput.View()
	}
	return views.RenderTasksPanel(views.TasksPanelData{
		QuickAddView: quickAdd,
		Items:        items,
		SelectedID:   m.SelectedTaskID,
	})
}

func (m Model) renderPlanPanel() string {
	plan := m.Plan.Plan
	items := make([]views.PlanItemData, 0, len(plan.RecommendedOrder))
	for _, it := range plan.RecommendedOrder {
		items = append(items, views.PlanItemData{Title: it.Title, Reason: it.Reason})
	}
	blocks := make([]views.FocusBlockData, 0, len(plan.FocusBlocks))
	for _, b := range plan.FocusBlocks {
		blocks = append(blocks, views.FocusBlockData{
			Time:        b.Time,
			Type:        b.Type,
			Tasks:       b.Tasks,
			Description: b.Description,
		})
	}
	greeting := plan.Greeting
	if m.PlanLoading {
		greeting = m.planSpinner.View() + " " + greeting
	}
	return views.RenderPlanPanel(views.PlanPanelData{
		Greeting:     greeting,
		Quote:        plan.Quote,
		TotalPending: plan.Summary.TotalPending,
		HighPriority: plan.Summary.HighPriority,
		DueToday:     plan.Summary.DueToday,
		Items:        items,
		Blocks:       blocks,
		Tip:          plan.Tip,
		Enriched:     m.Plan.Enriched,
		Loading:      m.PlanLoading,
	})
}

func (m Model) renderFocusPanel() string {
	total := m.Machine.PhaseMinutes() * 60
	pct := 0
	ratio := 0.0
	if total > 0 {
		ratio = float64(total-m.Focus.RemainingSec) / float64(total)
		pct = int(ratio * 100)
	}
	return views.RenderFocusPanel(views.FocusPanelData{
		TaskTitle:          m.Focus.TaskTitle,
		Phase:              phaseLabel(m.Machine.Phase()),
		Timer:              formatDuration(m.Focus.RemainingSec),
		ProgressView:       m.focusProgress.ViewAs(ratio),
		ProgressPct:        pct,
		CompletedPomodoros: m.Machine.CompletedFocus(),
		Running:            m.Focus.Running,
	})
}

func (m Model) renderDashboardPanel() string {
	d := m.Dashboard
	weekly := make([]views.WeeklyRowData, 0, len(d.WeeklyData))
	for _, b := range d.WeeklyData {
		weekly = append(weekly, views.WeeklyRowData{
			Day:            b.Day.Format("Mon 01-02"),
			FocusMinutes:   b.FocusMinutes,
			TasksCompleted: b.TasksCompleted,
		})
	}
	minutesByCategory := make(map[string]int)
	for _, c := range analytics.CategoryMinutes(m.Tasks) {
		minutesByCategory[c.Category] = c.Minutes
	}
	categories := make([]views.CategoryRowData, 0, len(d.CategoryDistribution))
	for _, c := range d.CategoryDistribution {
		categories = append(categories, views.CategoryRowData{
			Name:    c.Category,
			Count:   c.Count,
			Minutes: minutesByCategory[c.Category],
		})
	}

	now := time.Now().UTC()
	hours := make([]views.ProductiveHourRowData, 0, 3)
	for _, h := range analytics.ProductiveHours(analytics.HourlyDistribution(m.Sessions)) {
		hours = append(hours, views.ProductiveHourRowData{Label: h.Label, Minutes: h.Minutes})
	}
	trendRow := views.TrendRowData{}
	if trend, err := analytics.TrendFor(m.Tasks, analytics.DefaultTrendWindow, now); err == nil {
		trendRow = views.TrendRowData{
			TotalCompleted: trend.TotalCompleted,
			AvgDaily:       trend.AvgDaily,
			BestDay:        trend.BestDay.Day.Format("2006-01-02"),
		}
	}

	return views.RenderDashboardPanel(views.DashboardPanelData{
		Total:             d.TaskStats.Total,
		Completed:         d.TaskStats.Completed,
		InProgress:        d.TaskStats.InProgress,
		Pending:           d.TaskStats.Pending,
		Overdue:           d.TaskStats.Overdue,
		FocusSessions:     d.TodayStats.FocusSessions,
		FocusMinutes:      d.TodayStats.FocusMinutes,
		CompletedToday:    d.TodayStats.TasksCompleted,
		ProductivityScore: d.ProductivityScore,
		Streak:            d.Streak,
		LongestStreak:     d.LongestStreak,
		Weekly:            weekly,
		Categories:        categories,
		ProductiveHours:   hours,
		Trend:             trendRow,
	})
}

func (m Model) renderInsightsPanel() string {
	suggestions := make([]views.InsightItemData, 0, len(m.Suggestions.Suggestions))
	for _, s := range m.Suggestions.Suggestions {
		suggestions = append(suggestions, views.InsightItemData{Icon: s.Icon, Title: s.Title, Message: s.Message})
	}
	insights := make([]views.InsightItemData, 0, len(m.Insights))
	for _, i := range m.Insights {
		insights = append(insights, views.InsightItemData{Icon: i.Icon, Title: i.Title, Message: i.Message})
	}
	return views.RenderInsightsPanel(views.InsightsPanelData{
		Suggestions: suggestions,
		Insights:    insights,
		Enriched:    m.Suggestions.Enriched,
	})
}

func phaseLabel(p pomodoro.Phase) string {
	switch p {
	case pomodoro.PhaseShortBreak:
		return "short break"
	case pomodoro.PhaseLongBreak:
		return "long break"
	default:
		return "focus"
	}
}

func dueLabel(due *time.Time, now time.Time) string {
	if due == nil {
		return ""
	}
	d := due.UTC()
	if d.Year() == now.Year() && d.YearDay() == now.YearDay() {
		return "today"
	}
	return d.Format("01-02")
}
