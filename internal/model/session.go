package model

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var ErrInvalidSessionKind = errors.New("model: invalid session kind")

type SessionKind string

const (
	SessionFocus      SessionKind = "focus"
	SessionShortBreak SessionKind = "short_break"
	SessionLongBreak  SessionKind = "long_break"
)

func (k SessionKind) IsValid() bool {
	switch k {
	case SessionFocus, SessionShortBreak, SessionLongBreak:
		return true
	default:
		return false
	}
}

// Session is one completed timer interval. Only focus sessions count toward
// streaks and focus-minute totals; break kinds are kept for history.
type Session struct {
	ID          string
	Kind        SessionKind
	Minutes     int
	TaskID      string
	Notes       string
	CompletedAt time.Time
}

func (s Session) Validate() error {
	if strings.TrimSpace(s.ID) == "" {
		return errors.New("model: session id is required")
	}
	if !s.Kind.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidSessionKind, s.Kind)
	}
	if s.Minutes < 0 {
		return errors.New("model: session minutes must not be negative")
	}
	if s.CompletedAt.IsZero() {
		return errors.New("model: session completed_at is required")
	}
	return nil
}
