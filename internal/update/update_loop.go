package update

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mdrakibgolder/AI-Enhanced-Productivity-Tools/internal/views"
)

func (m Model) Init() tea.Cmd {
	var cmds []tea.Cmd
	if m.Repo != nil {
		cmds = append(cmds, loadDataCmd(m.Repo))
	}
	if m.Reminder != nil {
		cmds = append(cmds, waitDueAlertCmd(m.Reminder.C()))
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.KeyMsg:
		if m.Palette.Active {
			if typed.String() == m.Keys.Help {
				m.HelpVisible = !m.HelpVisible
				return m, nil
			}
			return m.handlePaletteKey(typed)
		}

		keyStr := typed.String()
		if m.Capturing && m.CurrentView == ViewTasks && keyStr != "ctrl+c" {
			return m.handleTasksKey(typed)
		}

		switch keyStr {
		case "/":
			m.Palette.Active = true
			m.Palette.Input = ""
			m.commandInput.Focus()
			m.commandInput.SetValue("")
			m.Status = StatusBar{Text: "command palette active"}
			return m, nil
		case m.Keys.Tasks:
			m.CurrentView = ViewTasks
			return m, nil
		case m.Keys.Plan:
			m.CurrentView = ViewPlan
			return m, nil
		case m.Keys.Focus:
			m.CurrentView = ViewFocus
			return m, nil
		case m.Keys.Dashboard:
			m.CurrentView = ViewDashboard
			return m, nil
		case m.Keys.Insights:
			m.CurrentView = ViewInsights
			return m, nil
		case m.Keys.Help:
			m.HelpVisible = !m.HelpVisible
			return m, nil
		case "ctrl+c", m.Keys.Quit:
			m.Quitting = true
			return m, tea.Quit
		}

		switch m.CurrentView {
		case ViewTasks:
			return m.handleTasksKey(typed)
		case ViewFocus:
			return m.handleFocusKey(typed)
		}
		return m, nil

	case spinner.TickMsg:
		if m.PlanLoading {
			var cmd tea.Cmd
			m.planSpinner, cmd = m.planSpinner.Update(typed)
			return m, cmd
		}
		return m, nil

	case SwitchViewMsg:
		if isKnownView(typed.View) {
			m.CurrentView = typed.View
		}
		return m, nil

	case SetStatusMsg:
		m.Status = StatusBar{Text: typed.Text, IsError: typed.IsError}
		return m, nil

	case ClearStatusMsg:
		m.Status = StatusBar{}
		return m, nil

	case AppErrorMsg:
		m.LastError = typed.Err
		if typed.Err != nil {
			m.Status = StatusBar{Text: typed.Err.Error(), IsError: true}
			m.Log.Warn("app error: " + typed.Err.Error())
		}
		return m, nil

	case DataLoadedMsg:
		m.Tasks = typed.Tasks
		m.Sessions = typed.Sessions
		m.Plan.Enriched = false
		m.Suggestions.Enriched = false
		m.recompute(time.Now().UTC())
		m.PlanLoading = m.Enricher != nil
		return m, tea.Batch(
			enrichPlanCmd(m.Enricher, m.Plan.Plan),
			enrichSuggestionsCmd(m.Enricher, m.Tasks, m.Suggestions.Suggestions),
			m.planSpinner.Tick,
		)

	case PlanReadyMsg:
		m.Plan = typed.Result
		m.PlanLoading = false
		if typed.Result.Enriched {
			m.Status = StatusBar{Text: "plan enriched"}
		}
		return m, nil

	case SuggestionsReadyMsg:
		m.Suggestions = typed.Result
		return m, nil

	case FocusTickMsg:
		return m.onFocusTick(typed)

	case DueAlertMsg:
		m.Status = StatusBar{Text: fmt.Sprintf("due now: %s", typed.Alert.Title), IsError: true}
		m.Log.Info("due alert fired: " + typed.Alert.TaskID)
		if m.Reminder != nil {
			return m, waitDueAlertCmd(m.Reminder.C())
		}
		return m, nil
	}

	return m, nil
}

func (m Model) View() string {
	status := ""
	if m.Status.Text != "" {
		if m.Status.IsError {
			status = fmt.Sprintf("status: error: %s", m.Status.Text)
		} else {
			status = fmt.Sprintf("status: %s", m.Status.Text)
		}
	}

	mainPane := ""
	sidePane := ""
	switch m.CurrentView {
	case ViewTasks:
		mainPane = m.renderTasksPanel()
		sidePane = m.renderPlanPanel()
	case ViewPlan:
		mainPane = m.renderPlanPanel()
		sidePane = m.renderInsightsPanel()
	case ViewFocus:
		mainPane = m.renderFocusPanel()
		sidePane = m.renderTasksPanel()
	case ViewDashboard:
		mainPane = m.renderDashboardPanel()
		sidePane = m.renderInsightsPanel()
	case ViewInsights:
		mainPane = m.renderInsightsPanel()
		sidePane = m.renderDashboardPanel()
	}
	sidePane = strings.TrimSpace(strings.Join([]string{
		sidePane,
		views.RenderCommandPalette(m.Palette.Active, m.Palette.Input),
		m.renderHelpIfVisible(),
	}, "\n"))

	return views.RenderApp(views.AppData{
		Header:     fmt.Sprintf("productivity | view: %s | selected: %s", m.CurrentView, m.SelectedTaskID),
		MainPane:   mainPane,
		SidePane:   sidePane,
		StatusLine: status,
		Footer: fmt.Sprintf("keys: %s tasks | %s plan | %s focus | %s dash | %s insights | / cmd | %s help | %s quit",
			m.Keys.Tasks, m.Keys.Plan, m.Keys.Focus, m.Keys.Dashboard, m.Keys.Insights, m.Keys.Help, m.Keys.Quit),
	})
}

func isKnownView(v View) bool {
	switch v {
	case ViewTasks, ViewPlan, ViewFocus, ViewDashboard, ViewInsights:
		return true
	default:
		return false
	}
}
