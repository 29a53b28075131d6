package update

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/mdrakibgolder/AI-Enhanced-Productivity-Tools/internal/analytics"
	"github.com/mdrakibgolder/AI-Enhanced-Productivity-Tools/internal/commands"
	"github.com/mdrakibgolder/AI-Enhanced-Productivity-Tools/internal/model"
	"github.com/mdrakibgolder/AI-Enhanced-Productivity-Tools/internal/reminder"
)

func (m Model) handleTasksKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if m.Capturing {
		return m.handleQuickAddKey(msg)
	}

	switch msg.String() {
	case "a":
		m.Capturing = true
		m.quickAddInput.SetValue("")
		m.quickAddInput.Focus()
		m.Status = StatusBar{Text: "quick add: type a title, enter to save, esc to cancel"}
		return m, nil
	case "j", "down":
		if m.Cursor < len(m.Tasks)-1 {
			m.Cursor++
		}
		m.clampCursor()
		return m, nil
	case "k", "up":
		if m.Cursor > 0 {
			m.Cursor--
		}
		m.clampCursor()
		return m, nil
	case "d":
		task, ok := m.currentTask()
		if !ok {
			m.Status = StatusBar{Text: "no task selected", IsError: true}
			return m, nil
		}
		return m.completeTask(task.ID, time.Now().UTC())
	case "s":
		task, ok := m.currentTask()
		if !ok {
			m.Status = StatusBar{Text: "no task selected", IsError: true}
			return m, nil
		}
		return m.startTask(task.ID, time.Now().UTC())
	}
	return m, nil
}

func (m Model) handleQuickAddKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.Capturing = false
		m.quickAddInput.SetValue("")
		m.quickAddInput.Blur()
		m.Status = StatusBar{Text: "quick add cancelled"}
		return m, nil
	case "enter":
		raw := strings.TrimSpace(m.quickAddInput.Value())
		m.Capturing = false
		m.quickAddInput.SetValue("")
		m.quickAddInput.Blur()
		if raw == "" {
			m.Status = StatusBar{Text: "quick add needs a title", IsError: true}
			return m, nil
		}
		cmd, err := commands.Parse("add " + raw)
		if err != nil {
			m.Status = StatusBar{Text: err.Error(), IsError: true}
			return m, nil
		}
		return m.addTask(*cmd.Add, time.Now().UTC())
	}
	if msg.Type == tea.KeyRunes {
		m.quickAddInput.SetValue(m.quickAddInput.Value() + string(msg.Runes))
		return m, nil
	}
	var cmd tea.Cmd
	m.quickAddInput, cmd = m.quickAddInput.Update(msg)
	return m, cmd
}

// addTask turns palette/quick-add arguments into a persisted task.
// Omitted fields are filled by the keyword classifier rather than left
// blank.
func (m Model) addTask(args commands.AddArgs, now time.Time) (Model, tea.Cmd) {
	task := model.Task{
		ID:               uuid.NewString(),
		Title:            args.Title,
		Priority:         model.Priority(args.Priority),
		Category:         args.Category,
		EstimatedMinutes: args.EstimatedMinutes,
		CreatedAt:        now,
	}
	if task.Category == "" {
		task.Category = analytics.SuggestCategory(task.Title, task.Description)
	}
	task.Tags = analytics.SuggestTags(task.Title, task.Description)
	if task.EstimatedMinutes == 0 {
		task.EstimatedMinutes = analytics.EstimateMinutes(task.Title, task.Description)
	}
	if args.Due != "" {
		due, err := parseDueSpec(args.Due, now)
		if err != nil {
			m.Status = StatusBar{Text: err.Error(), IsError: true}
			return m, nil
		}
		task.DueAt = &due
	}
	task = task.Normalize()

	if m.Repo != nil {
		ctx, cancel := context.WithTimeout(context.Background(), repoTimeout)
		defer cancel()
		if err := m.Repo.CreateTask(ctx, toStorageTask(task)); err != nil {
			m.Status = StatusBar{Text: err.Error(), IsError: true}
			m.LastError = err
			return m, nil
		}
	}
	if m.Reminder != nil && task.DueAt != nil {
		_ = m.Reminder.Schedule(reminder.DueAlert{TaskID: task.ID, Title: task.Title, DueAt: *task.DueAt})
	}

	m.Tasks = append([]model.Task{task}, m.Tasks...)
	m.Cursor = 0
	m.Plan.Enriched = false
	m.Suggestions.Enriched = false
	m.recompute(now)
	m.Status = StatusBar{Text: fmt.Sprintf("added: %s", task.Title)}
	m.Log.Info("task added", logTaskFields(task)...)
	return m, nil
}

func (m Model) completeTask(id string, now time.Time) (Model, tea.Cmd) {
	idx, ok := m.taskByID(id)
	if !ok {
		m.Status = StatusBar{Text: fmt.Sprintf("task not found: %s", id), IsError: true}
		return m, nil
	}
	task := m.Tasks[idx]
	if task.Status == model.StatusCompleted {
		m.Status = StatusBar{Text: "task already completed"}
		return m, nil
	}
	task.Status = model.StatusCompleted
	completedAt := now
	task.CompletedAt = &completedAt
	if task.ActualMinutes == 0 {
		task.ActualMinutes = m.focusMinutesFor(task.ID)
	}

	if m.Repo != nil {
		ctx, cancel := context.WithTimeout(context.Background(), repoTimeout)
		defer cancel()
		if err := m.Repo.UpdateTask(ctx, toStorageTask(task)); err != nil {
			m.Status = StatusBar{Text: err.Error(), IsError: true}
			m.LastError = err
			return m, nil
		}
	}
	if m.Reminder != nil {
		m.Reminder.Cancel(task.ID)
	}

	m.Tasks[idx] = task
	m.Plan.Enriched = false
	m.Suggestions.Enriched = false
	m.recompute(now)
	m.Status = StatusBar{Text: fmt.Sprintf("completed: %s", task.Title)}
	m.Log.Info("task completed", logTaskFields(task)...)
	return m, nil
}

// startTask marks a task in-progress and points the pomodoro countdown
// at it. The countdown starts immediately; any previous one goes stale.
func (m Model) startTask(id string, now time.Time) (Model, tea.Cmd) {
	idx, ok := m.taskByID(id)
	if !ok {
		m.Status = StatusBar{Text: fmt.Sprintf("task not found: %s", id), IsError: true}
		return m, nil
	}
	task := m.Tasks[idx]
	if task.Status == model.StatusCompleted {
		m.Status = StatusBar{Text: "task already completed", IsError: true}
		return m, nil
	}
	if task.Status != model.StatusInProgress {
		task.Status = model.StatusInProgress
		if m.Repo != nil {
			ctx, cancel := context.WithTimeout(context.Background(), repoTimeout)
			defer cancel()
			if err := m.Repo.UpdateTask(ctx, toStorageTask(task)); err != nil {
				m.Status = StatusBar{Text: err.Error(), IsError: true}
				m.LastError = err
				return m, nil
			}
		}
		m.Tasks[idx] = task
	}

	m.CurrentView = ViewFocus
	m.Machine.Reset()
	m.Focus.TaskID = task.ID
	m.Focus.TaskTitle = task.Title
	m.Focus.RemainingSec = m.Machine.PhaseMinutes() * 60
	m.Focus.Running = true
	m.Focus.TickSeq++
	m.recompute(now)
	m.Status = StatusBar{Text: fmt.Sprintf("focus started: %s", task.Title)}
	return m, focusTickCmd(m.Focus.TickSeq)
}

// resolveTarget maps a palette target to a task id: a 1-based list
// position, an id or id prefix, or a case-insensitive title fragment.
// Empty means the selected task.
func (m Model) resolveTarget(target string) (string, error) {
	trimmed := strings.TrimSpace(target)
	if trimmed == "" {
		task, ok := m.currentTask()
		if !ok {
			return "", fmt.Errorf("no task selected")
		}
		return task.ID, nil
	}
	if n, err := strconv.Atoi(trimmed); err == nil {
		if n < 1 || n > len(m.Tasks) {
			return "", fmt.Errorf("no task at position %d", n)
		}
		return m.Tasks[n-1].ID, nil
	}
	for _, t := range m.Tasks {
		if t.ID == trimmed || strings.HasPrefix(t.ID, trimmed) {
			return t.ID, nil
		}
	}
	lower := strings.ToLower(trimmed)
	for _, t := range m.Tasks {
		if strings.Contains(strings.ToLower(t.Title), lower) {
			return t.ID, nil
		}
	}
	return "", fmt.Errorf("no task matches %q", target)
}

func (m Model) focusMinutesFor(taskID string) int {
	total := 0
	for _, s := range m.Sessions {
		if s.TaskID == taskID && s.Kind == model.SessionFocus {
			total += s.Minutes
		}
	}
	return total
}

// parseDueSpec accepts "today", "tomorrow", or YYYY-MM-DD. Relative
// days land at the end of the UTC day so a task added in the morning is
// not instantly overdue.
func parseDueSpec(spec string, now time.Time) (time.Time, error) {
	day := now.UTC()
	switch strings.ToLower(strings.TrimSpace(spec)) {
	case "today":
		return endOfDay(day), nil
	case "tomorrow":
		return endOfDay(day.AddDate(0, 0, 1)), nil
	}
	parsed, err := time.Parse("2006-01-02", spec)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid due date %q (want today, tomorrow, or YYYY-MM-DD)", spec)
	}
	return endOfDay(parsed), nil
}

func endOfDay(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 23, 59, 0, 0, time.UTC)
}
