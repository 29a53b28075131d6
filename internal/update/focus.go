package update

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mdrakibgolder/AI-Enhanced-Productivity-Tools/internal/pomodoro"
)

func (m Model) handleFocusKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case " ":
		if m.Focus.Running {
			m.Focus.Running = false
			m.Status = StatusBar{Text: "focus paused"}
			return m, nil
		}
		if m.Focus.RemainingSec <= 0 {
			return m.completePhase(time.Now().UTC())
		}
		m.Focus.Running = true
		m.Focus.TickSeq++
		m.Status = StatusBar{Text: "focus running"}
		return m, focusTickCmd(m.Focus.TickSeq)
	case "r":
		m.Focus.Running = false
		m.Focus.TickSeq++
		m.Machine.Reset()
		m.Focus.RemainingSec = m.Machine.PhaseMinutes() * 60
		m.Status = StatusBar{Text: "focus reset"}
		return m, nil
	case "n":
		return m.completePhase(time.Now().UTC())
	}
	return m, nil
}

func (m Model) onFocusTick(msg FocusTickMsg) (tea.Model, tea.Cmd) {
	// A stale sequence means a newer countdown replaced this one.
	if msg.Seq != m.Focus.TickSeq || !m.Focus.Running {
		return m, nil
	}
	if m.Focus.RemainingSec > 0 {
		m.Focus.RemainingSec--
	}
	if m.Focus.RemainingSec == 0 {
		return m.completePhase(time.Now().UTC())
	}
	return m, focusTickCmd(m.Focus.TickSeq)
}

// completePhase advances the pomodoro machine. A finished focus phase
// yields a session record that is persisted and folded into the
// aggregates; breaks just roll the machine forward.
func (m Model) completePhase(now time.Time) (Model, tea.Cmd) {
	wasFocus := m.Machine.Phase() == pomodoro.PhaseFocus
	session := m.Machine.Complete(m.Focus.TaskID, now)

	m.Focus.Running = false
	m.Focus.TickSeq++
	m.Focus.RemainingSec = m.Machine.PhaseMinutes() * 60

	if session != nil {
		if m.Repo != nil {
			ctx, cancel := context.WithTimeout(context.Background(), repoTimeout)
			defer cancel()
			if err := m.Repo.CreateSession(ctx, toStorageSession(*session)); err != nil {
				m.Status = StatusBar{Text: err.Error(), IsError: true}
				m.LastError = err
				return m, nil
			}
		}
		m.Sessions = append(m.Sessions, *session)
		m.recompute(now)
	}

	switch {
	case wasFocus && m.Machine.Phase() == pomodoro.PhaseLongBreak:
		m.Status = StatusBar{Text: "focus complete, long break earned"}
	case wasFocus:
		m.Status = StatusBar{Text: "focus complete, short break next"}
	default:
		m.Status = StatusBar{Text: "break over, back to focus"}
	}
	return m, nil
}

func focusTickCmd(seq int) tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg { return FocusTickMsg{Seq: seq} })
}
