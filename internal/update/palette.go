package update

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mdrakibgolder/AI-Enhanced-Productivity-Tools/internal/commands"
)

func (m Model) handlePaletteKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.Palette.Active = false
		m.Palette.Input = ""
		m.commandInput.SetValue("")
		m.commandInput.Blur()
		m.Status = StatusBar{Text: "command palette closed"}
		return m, nil
	case "enter":
		m.Palette.Input = m.commandInput.Value()
		return m.executePaletteCommand()
	}
	if msg.Type == tea.KeyRunes {
		m.commandInput.SetValue(m.commandInput.Value() + string(msg.Runes))
		m.Palette.Input = m.commandInput.Value()
		return m, nil
	}
	var cmd tea.Cmd
	m.commandInput, cmd = m.commandInput.Update(msg)
	m.Palette.Input = m.commandInput.Value()
	return m, cmd
}

func (m Model) executePaletteCommand() (Model, tea.Cmd) {
	raw := strings.TrimSpace(m.Palette.Input)
	m.Palette.Active = false
	m.Palette.Input = ""
	m.commandInput.SetValue("")
	m.commandInput.Blur()

	cmd, err := commands.Parse(raw)
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return m, nil
	}

	now := time.Now().UTC()
	var followUp tea.Cmd
	res, err := commands.Execute(cmd, commands.Handlers{
		Add: func(a commands.AddArgs) (commands.Result, error) {
			next, c := m.addTask(a, now)
			m, followUp = next, c
			if m.Status.IsError {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: m.Status.Text}
			}
			return commands.Result{Message: m.Status.Text}, nil
		},
		Done: func(d commands.DoneArgs) (commands.Result, error) {
			id, err := m.resolveTarget(d.Target)
			if err != nil {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: err.Error()}
			}
			next, c := m.completeTask(id, now)
			m, followUp = next, c
			if m.Status.IsError {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: m.Status.Text}
			}
			return commands.Result{Message: m.Status.Text}, nil
		},
		Start: func(s commands.StartArgs) (commands.Result, error) {
			id, err := m.resolveTarget(s.Target)
			if err != nil {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: err.Error()}
			}
			next, c := m.startTask(id, now)
			m, followUp = next, c
			if m.Status.IsError {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: m.Status.Text}
			}
			return commands.Result{Message: m.Status.Text}, nil
		},
		Refresh: func() (commands.Result, error) {
			next, c := m.refresh(now)
			m, followUp = next, c
			return commands.Result{Message: "refreshing"}, nil
		},
		Show: func(s commands.ShowArgs) (commands.Result, error) {
			view, ok := viewForSubject(s.Subject)
			if !ok {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: fmt.Sprintf("unknown view: %s", s.Subject)}
			}
			m.CurrentView = view
			return commands.Result{Message: fmt.Sprintf("showing %s", strings.ToLower(string(view)))}, nil
		},
	})
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		m.Log.Warn("palette command failed: " + err.Error())
		return m, followUp
	}
	m.Status = StatusBar{Text: res.Message}
	return m, followUp
}

// refresh reloads from the repository when one is attached and re-runs
// the enrichment pass on the rebuilt plan and suggestions.
func (m Model) refresh(now time.Time) (Model, tea.Cmd) {
	m.Plan.Enriched = false
	m.Suggestions.Enriched = false
	if m.Repo != nil {
		m.PlanLoading = m.Enricher != nil
		return m, tea.Batch(loadDataCmd(m.Repo), m.planSpinner.Tick)
	}
	m.recompute(now)
	m.PlanLoading = m.Enricher != nil
	return m, tea.Batch(
		enrichPlanCmd(m.Enricher, m.Plan.Plan),
		enrichSuggestionsCmd(m.Enricher, m.Tasks, m.Suggestions.Suggestions),
		m.planSpinner.Tick,
	)
}

func viewForSubject(subject string) (View, bool) {
	switch strings.ToLower(strings.TrimSpace(subject)) {
	case "tasks":
		return ViewTasks, true
	case "plan":
		return ViewPlan, true
	case "focus":
		return ViewFocus, true
	case "dashboard":
		return ViewDashboard, true
	case "insights":
		return ViewInsights, true
	default:
		return "", false
	}
}
