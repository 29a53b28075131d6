package update

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mdrakibgolder/AI-Enhanced-Productivity-Tools/internal/analytics"
	"github.com/mdrakibgolder/AI-Enhanced-Productivity-Tools/internal/enrich"
	"github.com/mdrakibgolder/AI-Enhanced-Productivity-Tools/internal/model"
	"github.com/mdrakibgolder/AI-Enhanced-Productivity-Tools/internal/reminder"
	"github.com/mdrakibgolder/AI-Enhanced-Productivity-Tools/internal/storage"
)

const repoTimeout = 5 * time.Second

func toModelTask(in storage.Task) model.Task {
	return model.Task{
		ID:               in.ID,
		Title:            in.Title,
		Description:      in.Description,
		Status:           model.Status(in.Status),
		Priority:         model.Priority(in.Priority),
		Category:         in.Category,
		Tags:             in.Tags,
		DueAt:            in.DueAt,
		EstimatedMinutes: in.EstimatedMinutes,
		ActualMinutes:    in.ActualMinutes,
		CreatedAt:        in.CreatedAt,
		CompletedAt:      in.CompletedAt,
	}.Normalize()
}

func toStorageTask(in model.Task) storage.Task {
	return storage.Task{
		ID:               in.ID,
		Title:            in.Title,
		Description:      in.Description,
		Status:           string(in.Status),
		Priority:         string(in.Priority),
		Category:         in.Category,
		Tags:             in.Tags,
		DueAt:            in.DueAt,
		EstimatedMinutes: in.EstimatedMinutes,
		ActualMinutes:    in.ActualMinutes,
		CreatedAt:        in.CreatedAt,
		CompletedAt:      in.CompletedAt,
	}
}

func toModelSession(in storage.Session) model.Session {
	return model.Session{
		ID:          in.ID,
		Kind:        model.SessionKind(in.Kind),
		Minutes:     in.Minutes,
		TaskID:      in.TaskID,
		Notes:       in.Notes,
		CompletedAt: in.CompletedAt,
	}
}

func toStorageSession(in model.Session) storage.Session {
	return storage.Session{
		ID:          in.ID,
		Kind:        string(in.Kind),
		Minutes:     in.Minutes,
		TaskID:      in.TaskID,
		Notes:       in.Notes,
		CompletedAt: in.CompletedAt,
	}
}

// loadDataCmd reads everything back from the repository. Rows that were
// written by older versions come back normalized rather than rejected.
func loadDataCmd(repo storage.Repository) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), repoTimeout)
		defer cancel()

		rawTasks, err := repo.ListTasks(ctx, storage.TaskListFilter{})
		if err != nil {
			return AppErrorMsg{Err: err}
		}
		rawSessions, err := repo.ListSessions(ctx, storage.SessionListFilter{})
		if err != nil {
			return AppErrorMsg{Err: err}
		}

		tasks := make([]model.Task, 0, len(rawTasks))
		for _, t := range rawTasks {
			tasks = append(tasks, toModelTask(t))
		}
		sessions := make([]model.Session, 0, len(rawSessions))
		for _, s := range rawSessions {
			sessions = append(sessions, toModelSession(s))
		}
		return DataLoadedMsg{Tasks: tasks, Sessions: sessions}
	}
}

// enrichPlanCmd runs the optional AI pass over an already-built plan.
// The fallback is computed in the update loop so it stays deterministic;
// only the narrative rewrite happens off-thread.
func enrichPlanCmd(enricher *enrich.Enricher, fallback analytics.Plan) tea.Cmd {
	return func() tea.Msg {
		if enricher == nil {
			return PlanReadyMsg{Result: enrich.PlanResult{Plan: fallback}}
		}
		ctx, cancel := context.WithTimeout(context.Background(), 35*time.Second)
		defer cancel()
		return PlanReadyMsg{Result: enricher.EnrichPlan(ctx, fallback)}
	}
}

func enrichSuggestionsCmd(enricher *enrich.Enricher, tasks []model.Task, fallback []analytics.Suggestion) tea.Cmd {
	return func() tea.Msg {
		if enricher == nil {
			return SuggestionsReadyMsg{Result: enrich.SuggestionsResult{Suggestions: fallback}}
		}
		ctx, cancel := context.WithTimeout(context.Background(), 35*time.Second)
		defer cancel()
		return SuggestionsReadyMsg{Result: enricher.EnrichSuggestions(ctx, tasks, fallback)}
	}
}

func waitDueAlertCmd(ch <-chan reminder.DueAlert) tea.Cmd {
	return func() tea.Msg {
		alert, ok := <-ch
		if !ok {
			return nil
		}
		return DueAlertMsg{Alert: alert}
	}
}

// recompute refreshes every derived aggregate from the in-memory task
// and session lists.
func (m *Model) recompute(now time.Time) {
	m.Dashboard = analytics.ComputeDashboard(m.Tasks, m.Sessions, now)
	m.Insights = analytics.Insights(m.Dashboard.Streak, analytics.WeeklyFocusMinutes(m.Sessions, now), m.Tasks)
	if !m.Suggestions.Enriched {
		m.Suggestions = enrich.SuggestionsResult{Suggestions: analytics.Suggestions(m.Tasks, now)}
	}
	if !m.Plan.Enriched {
		m.Plan = enrich.PlanResult{Plan: analytics.BuildPlan(m.Tasks, now, m.rng)}
	}
	m.clampCursor()
}

func (m *Model) clampCursor() {
	if m.Cursor >= len(m.Tasks) {
		m.Cursor = len(m.Tasks) - 1
	}
	if m.Cursor < 0 {
		m.Cursor = 0
	}
	if len(m.Tasks) == 0 {
		m.SelectedTaskID = ""
		return
	}
	m.SelectedTaskID = m.Tasks[m.Cursor].ID
}

func (m Model) currentTask() (model.Task, bool) {
	if len(m.Tasks) == 0 || m.Cursor < 0 || m.Cursor >= len(m.Tasks) {
		return model.Task{}, false
	}
	return m.Tasks[m.Cursor], true
}

func (m *Model) taskByID(id string) (int, bool) {
	for i := range m.Tasks {
		if m.Tasks[i].ID == id {
			return i, true
		}
	}
	return -1, false
}
