package update

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mdrakibgolder/AI-Enhanced-Productivity-Tools/internal/model"
	"github.com/mdrakibgolder/AI-Enhanced-Productivity-Tools/internal/reminder"
	"github.com/mdrakibgolder/AI-Enhanced-Productivity-Tools/internal/storage"
)

type fakeRepo struct {
	tasks    map[string]storage.Task
	order    []string
	sessions []storage.Session
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{tasks: make(map[string]storage.Task)}
}

func (r *fakeRepo) CreateTask(_ context.Context, in storage.Task) error {
	r.tasks[in.ID] = in
	r.order = append(r.order, in.ID)
	return nil
}

func (r *fakeRepo) GetTask(_ context.Context, id string) (storage.Task, error) {
	t, ok := r.tasks[id]
	if !ok {
		return storage.Task{}, storage.ErrNotFound
	}
	return t, nil
}

func (r *fakeRepo) UpdateTask(_ context.Context, in storage.Task) error {
	if _, ok := r.tasks[in.ID]; !ok {
		return storage.ErrNotFound
	}
	r.tasks[in.ID] = in
	return nil
}

func (r *fakeRepo) DeleteTask(_ context.Context, id string) error {
	if _, ok := r.tasks[id]; !ok {
		return storage.ErrNotFound
	}
	delete(r.tasks, id)
	return nil
}

func (r *fakeRepo) ListTasks(_ context.Context, _ storage.TaskListFilter) ([]storage.Task, error) {
	out := make([]storage.Task, 0, len(r.order))
	for _, id := range r.order {
		if t, ok := r.tasks[id]; ok {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *fakeRepo) CreateSession(_ context.Context, in storage.Session) error {
	r.sessions = append(r.sessions, in)
	return nil
}

func (r *fakeRepo) ListSessions(_ context.Context, _ storage.SessionListFilter) ([]storage.Session, error) {
	return append([]storage.Session(nil), r.sessions...), nil
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func seedTask(id, title string) model.Task {
	return model.Task{
		ID:        id,
		Title:     title,
		Status:    model.StatusPending,
		Priority:  model.PriorityMedium,
		Category:  "work",
		CreatedAt: time.Now().UTC().Add(-time.Hour),
	}
}

func TestNewModelDefaults(t *testing.T) {
	m := NewModel()
	if m.CurrentView != ViewTasks {
		t.Fatalf("expected default view %q, got %q", ViewTasks, m.CurrentView)
	}
	if m.Keys.Quit != "q" {
		t.Fatalf("expected quit key q, got %q", m.Keys.Quit)
	}
	if m.Focus.RemainingSec != 25*60 {
		t.Fatalf("expected default focus countdown 1500s, got %d", m.Focus.RemainingSec)
	}
}

func TestUpdateKeySwitchesView(t *testing.T) {
	m := NewModel()
	updated, _ := m.Update(keyRunes("2"))
	next := updated.(Model)
	if next.CurrentView != ViewPlan {
		t.Fatalf("expected plan view, got %q", next.CurrentView)
	}

	updated, _ = next.Update(keyRunes("4"))
	next = updated.(Model)
	if next.CurrentView != ViewDashboard {
		t.Fatalf("expected dashboard view, got %q", next.CurrentView)
	}
}

func TestUpdateSwitchViewMsg(t *testing.T) {
	m := NewModel()
	updated, _ := m.Update(SwitchViewMsg{View: ViewInsights})
	next := updated.(Model)
	if next.CurrentView != ViewInsights {
		t.Fatalf("expected insights view, got %q", next.CurrentView)
	}

	updated, _ = next.Update(SwitchViewMsg{View: View("Unknown")})
	next = updated.(Model)
	if next.CurrentView != ViewInsights {
		t.Fatalf("expected view unchanged for unknown view, got %q", next.CurrentView)
	}
}

func TestUpdateStatusAndError(t *testing.T) {
	m := NewModel()
	updated, _ := m.Update(SetStatusMsg{Text: "ready"})
	next := updated.(Model)
	if next.Status.Text != "ready" || next.Status.IsError {
		t.Fatalf("unexpected status: %+v", next.Status)
	}

	updated, _ = next.Update(AppErrorMsg{Err: errors.New("boom")})
	next = updated.(Model)
	if next.LastError == nil || next.LastError.Error() != "boom" {
		t.Fatalf("expected last error boom, got: %v", next.LastError)
	}
	if !next.Status.IsError || next.Status.Text != "boom" {
		t.Fatalf("unexpected error status: %+v", next.Status)
	}

	updated, _ = next.Update(ClearStatusMsg{})
	next = updated.(Model)
	if next.Status.Text != "" || next.Status.IsError {
		t.Fatalf("expected cleared status, got: %+v", next.Status)
	}
}

func TestUpdateQuitKey(t *testing.T) {
	m := NewModel()
	updated, cmd := m.Update(keyRunes("q"))
	next := updated.(Model)
	if !next.Quitting {
		t.Fatal("expected quitting flag true")
	}
	if cmd == nil {
		t.Fatal("expected quit command")
	}
}

func TestQuickAddCreatesAndPersistsTask(t *testing.T) {
	repo := newFakeRepo()
	m := NewModelWithDeps(Deps{Repo: repo, Seed: 1})

	updated, _ := m.Update(keyRunes("a"))
	next := updated.(Model)
	if !next.Capturing {
		t.Fatal("expected capture mode after a")
	}

	updated, _ = next.Update(keyRunes("pay rent pri:high"))
	next = updated.(Model)
	updated, _ = next.Update(tea.KeyMsg{Type: tea.KeyEnter})
	next = updated.(Model)

	if next.Capturing {
		t.Fatal("expected capture mode off after enter")
	}
	if len(next.Tasks) != 1 {
		t.Fatalf("expected 1 task, got %d", len(next.Tasks))
	}
	task := next.Tasks[0]
	if task.Title != "pay rent" {
		t.Fatalf("unexpected title: %q", task.Title)
	}
	if task.Priority != model.PriorityHigh {
		t.Fatalf("expected high priority, got %q", task.Priority)
	}
	if task.Category == "" || task.EstimatedMinutes == 0 {
		t.Fatalf("expected classifier defaults, got category=%q est=%d", task.Category, task.EstimatedMinutes)
	}
	if len(repo.tasks) != 1 {
		t.Fatalf("expected task persisted, repo has %d", len(repo.tasks))
	}
}

func TestCompleteTaskUpdatesRepo(t *testing.T) {
	repo := newFakeRepo()
	task := seedTask("t-1", "ship report")
	if err := repo.CreateTask(t.Context(), toStorageTask(task)); err != nil {
		t.Fatalf("seed task: %v", err)
	}

	m := NewModelWithDeps(Deps{Repo: repo, Reminder: reminder.NewEngine(1), Seed: 1})
	m.Tasks = []model.Task{task}
	m.clampCursor()

	updated, _ := m.Update(keyRunes("d"))
	next := updated.(Model)

	if next.Tasks[0].Status != model.StatusCompleted {
		t.Fatalf("expected completed status, got %q", next.Tasks[0].Status)
	}
	if next.Tasks[0].CompletedAt == nil {
		t.Fatal("expected completedAt set")
	}
	stored := repo.tasks["t-1"]
	if stored.Status != string(model.StatusCompleted) {
		t.Fatalf("expected repo status completed, got %q", stored.Status)
	}
	if next.Dashboard.TaskStats.Completed != 1 {
		t.Fatalf("expected dashboard recompute, got %+v", next.Dashboard.TaskStats)
	}
}

func TestStartTaskSwitchesToFocus(t *testing.T) {
	repo := newFakeRepo()
	task := seedTask("t-1", "write docs")
	if err := repo.CreateTask(t.Context(), toStorageTask(task)); err != nil {
		t.Fatalf("seed task: %v", err)
	}

	m := NewModelWithDeps(Deps{Repo: repo, Seed: 1})
	m.Tasks = []model.Task{task}
	m.clampCursor()

	updated, cmd := m.Update(keyRunes("s"))
	next := updated.(Model)

	if next.CurrentView != ViewFocus {
		t.Fatalf("expected focus view, got %q", next.CurrentView)
	}
	if !next.Focus.Running || next.Focus.TaskID != "t-1" {
		t.Fatalf("unexpected focus state: %+v", next.Focus)
	}
	if cmd == nil {
		t.Fatal("expected tick cmd on start")
	}
	if next.Tasks[0].Status != model.StatusInProgress {
		t.Fatalf("expected in-progress status, got %q", next.Tasks[0].Status)
	}
}

func TestFocusTickIgnoresStaleSequence(t *testing.T) {
	m := NewModel()
	m.Focus.Running = true
	m.Focus.RemainingSec = 10
	m.Focus.TickSeq = 2

	updated, cmd := m.Update(FocusTickMsg{Seq: 1})
	next := updated.(Model)
	if next.Focus.RemainingSec != 10 {
		t.Fatalf("stale tick changed timer: %d", next.Focus.RemainingSec)
	}
	if cmd != nil {
		t.Fatal("stale tick must not rearm")
	}

	updated, cmd = next.Update(FocusTickMsg{Seq: 2})
	next = updated.(Model)
	if next.Focus.RemainingSec != 9 {
		t.Fatalf("expected remaining 9, got %d", next.Focus.RemainingSec)
	}
	if cmd == nil {
		t.Fatal("expected rearm cmd for live tick")
	}
}

func TestFocusCompletionPersistsSession(t *testing.T) {
	repo := newFakeRepo()
	m := NewModelWithDeps(Deps{Repo: repo, Seed: 1})
	m.Focus.TaskID = "t-1"
	m.Focus.Running = true
	m.Focus.RemainingSec = 1
	m.Focus.TickSeq = 1

	updated, _ := m.Update(FocusTickMsg{Seq: 1})
	next := updated.(Model)

	if next.Focus.Running {
		t.Fatal("expected timer stopped after phase completion")
	}
	if len(next.Sessions) != 1 || next.Sessions[0].Kind != model.SessionFocus {
		t.Fatalf("expected one focus session, got %#v", next.Sessions)
	}
	if len(repo.sessions) != 1 {
		t.Fatalf("expected session persisted, repo has %d", len(repo.sessions))
	}
	if !strings.Contains(next.Status.Text, "break") {
		t.Fatalf("expected break prompt, got %q", next.Status.Text)
	}
	if next.Focus.RemainingSec != next.Machine.PhaseMinutes()*60 {
		t.Fatalf("expected countdown reset for break, got %d", next.Focus.RemainingSec)
	}
}

func TestPaletteAddCommand(t *testing.T) {
	repo := newFakeRepo()
	m := NewModelWithDeps(Deps{Repo: repo, Seed: 1})

	updated, _ := m.Update(keyRunes("/"))
	next := updated.(Model)
	if !next.Palette.Active {
		t.Fatal("expected palette active")
	}

	updated, _ = next.Update(keyRunes("add call dentist cat:health"))
	next = updated.(Model)
	updated, _ = next.Update(tea.KeyMsg{Type: tea.KeyEnter})
	next = updated.(Model)

	if next.Palette.Active {
		t.Fatal("expected palette closed after execute")
	}
	if len(next.Tasks) != 1 || next.Tasks[0].Title != "call dentist" {
		t.Fatalf("unexpected tasks: %#v", next.Tasks)
	}
	if next.Tasks[0].Category != "health" {
		t.Fatalf("expected health category, got %q", next.Tasks[0].Category)
	}
	if next.Status.IsError {
		t.Fatalf("unexpected error status: %+v", next.Status)
	}
}

func TestPaletteShowCommand(t *testing.T) {
	m := NewModel()
	updated, _ := m.Update(keyRunes("/"))
	next := updated.(Model)
	updated, _ = next.Update(keyRunes("show dashboard"))
	next = updated.(Model)
	updated, _ = next.Update(tea.KeyMsg{Type: tea.KeyEnter})
	next = updated.(Model)

	if next.CurrentView != ViewDashboard {
		t.Fatalf("expected dashboard view, got %q", next.CurrentView)
	}
}

func TestPaletteUnknownCommand(t *testing.T) {
	m := NewModel()
	updated, _ := m.Update(keyRunes("/"))
	next := updated.(Model)
	updated, _ = next.Update(keyRunes("frobnicate"))
	next = updated.(Model)
	updated, _ = next.Update(tea.KeyMsg{Type: tea.KeyEnter})
	next = updated.(Model)

	if !next.Status.IsError {
		t.Fatalf("expected error status, got %+v", next.Status)
	}
}

func TestDataLoadedRecomputesAggregates(t *testing.T) {
	m := NewModelWithDeps(Deps{Seed: 1})
	now := time.Now().UTC()
	completedAt := now.Add(-time.Hour)
	tasks := []model.Task{
		seedTask("t-1", "open task"),
		{
			ID: "t-2", Title: "done task", Status: model.StatusCompleted,
			Priority: model.PriorityLow, Category: "work",
			CreatedAt: now.Add(-2 * time.Hour), CompletedAt: &completedAt,
		},
	}
	sessions := []model.Session{
		{ID: "s-1", Kind: model.SessionFocus, Minutes: 25, CompletedAt: now.Add(-time.Hour)},
	}

	updated, cmd := m.Update(DataLoadedMsg{Tasks: tasks, Sessions: sessions})
	next := updated.(Model)

	if next.Dashboard.TaskStats.Total != 2 || next.Dashboard.TaskStats.Completed != 1 {
		t.Fatalf("unexpected task stats: %+v", next.Dashboard.TaskStats)
	}
	if next.Plan.Plan.Greeting == "" {
		t.Fatal("expected plan built on data load")
	}
	if next.Dashboard.Streak != 1 {
		t.Fatalf("expected streak 1, got %d", next.Dashboard.Streak)
	}
	if cmd == nil {
		t.Fatal("expected enrichment cmds after data load")
	}
}

func TestDueAlertSetsStatusAndRearms(t *testing.T) {
	engine := reminder.NewEngine(1)
	m := NewModelWithDeps(Deps{Reminder: engine, Seed: 1})

	updated, cmd := m.Update(DueAlertMsg{Alert: reminder.DueAlert{TaskID: "t-1", Title: "ship report", DueAt: time.Now().UTC()}})
	next := updated.(Model)

	if !strings.Contains(next.Status.Text, "ship report") {
		t.Fatalf("expected alert title in status, got %q", next.Status.Text)
	}
	if cmd == nil {
		t.Fatal("expected listener rearm cmd")
	}
}

func TestViewContainsCoreState(t *testing.T) {
	m := NewModel()
	m.SelectedTaskID = "task-42"
	m.Status = StatusBar{Text: "all good"}
	out := m.View()
	if !strings.Contains(out, "view: Tasks") {
		t.Fatalf("expected view text in output: %q", out)
	}
	if !strings.Contains(out, "selected: task-42") {
		t.Fatalf("expected selected task in output: %q", out)
	}
	if !strings.Contains(out, "status: all good") {
		t.Fatalf("expected status in output: %q", out)
	}
}

func TestResolveTarget(t *testing.T) {
	m := NewModel()
	m.Tasks = []model.Task{
		seedTask("abc-123", "Write the report"),
		seedTask("def-456", "Call dentist"),
	}
	m.clampCursor()

	if id, err := m.resolveTarget(""); err != nil || id != "abc-123" {
		t.Fatalf("selected fallback failed: id=%q err=%v", id, err)
	}
	if id, err := m.resolveTarget("2"); err != nil || id != "def-456" {
		t.Fatalf("positional lookup failed: id=%q err=%v", id, err)
	}
	if id, err := m.resolveTarget("def"); err != nil || id != "def-456" {
		t.Fatalf("id prefix lookup failed: id=%q err=%v", id, err)
	}
	if id, err := m.resolveTarget("dentist"); err != nil || id != "def-456" {
		t.Fatalf("title lookup failed: id=%q err=%v", id, err)
	}
	if _, err := m.resolveTarget("nope-xyz"); err == nil {
		t.Fatal("expected error for unknown target")
	}
}
