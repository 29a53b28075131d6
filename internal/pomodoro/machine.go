package pomodoro

import (
	"time"

	"github.com/google/uuid"
	"github.com/mdrakibgolder/AI-Enhanced-Productivity-Tools/internal/model"
)

type Phase string

const (
	PhaseFocus      Phase = "focus"
	PhaseShortBreak Phase = "short_break"
	PhaseLongBreak  Phase = "long_break"
)

type Settings struct {
	FocusMinutes            int
	ShortBreakMinutes       int
	LongBreakMinutes        int
	SessionsBeforeLongBreak int
}

func DefaultSettings() Settings {
	return Settings{
		FocusMinutes:            25,
		ShortBreakMinutes:       5,
		LongBreakMinutes:        15,
		SessionsBeforeLongBreak: 4,
	}
}

func (s Settings) normalized() Settings {
	def := DefaultSettings()
	if s.FocusMinutes <= 0 {
		s.FocusMinutes = def.FocusMinutes
	}
	if s.ShortBreakMinutes <= 0 {
		s.ShortBreakMinutes = def.ShortBreakMinutes
	}
	if s.LongBreakMinutes <= 0 {
		s.LongBreakMinutes = def.LongBreakMinutes
	}
	if s.SessionsBeforeLongBreak <= 0 {
		s.SessionsBeforeLongBreak = def.SessionsBeforeLongBreak
	}
	return s
}

// Machine is the interval cycle: focus alternates with short breaks, and
// every Nth completed focus earns a long break instead. Breaks always lead
// back to focus. Only a completed focus interval produces a session
// record; breaks leave no trace in history.
type Machine struct {
	settings       Settings
	phase          Phase
	completedFocus int
}

func NewMachine(settings Settings) *Machine {
	return &Machine{
		settings: settings.normalized(),
		phase:    PhaseFocus,
	}
}

func (m *Machine) Phase() Phase { return m.phase }

func (m *Machine) CompletedFocus() int { return m.completedFocus }

// PhaseDuration is how long the current phase runs.
func (m *Machine) PhaseDuration() time.Duration {
	return time.Duration(m.PhaseMinutes()) * time.Minute
}

func (m *Machine) PhaseMinutes() int {
	switch m.phase {
	case PhaseShortBreak:
		return m.settings.ShortBreakMinutes
	case PhaseLongBreak:
		return m.settings.LongBreakMinutes
	default:
		return m.settings.FocusMinutes
	}
}

// Complete finishes the current phase and advances to the next one. When
// the finished phase was focus, it returns the session record to persist;
// for breaks the record is nil.
func (m *Machine) Complete(taskID string, now time.Time) *model.Session {
	if m.phase != PhaseFocus {
		m.phase = PhaseFocus
		return nil
	}

	m.completedFocus++
	if m.completedFocus%m.settings.SessionsBeforeLongBreak == 0 {
		m.phase = PhaseLongBreak
	} else {
		m.phase = PhaseShortBreak
	}
	return &model.Session{
		ID:          uuid.NewString(),
		Kind:        model.SessionFocus,
		Minutes:     m.settings.FocusMinutes,
		TaskID:      taskID,
		CompletedAt: now,
	}
}

// Reset abandons the current phase and returns to focus without emitting
// anything. The long-break cadence is kept.
func (m *Machine) Reset() {
	m.phase = PhaseFocus
}
