package calendar

import (
	"time"

	"fieldcal/models"
)

// ViewMode is the active calendar granularity.
type ViewMode string

const (
	ModeMonth ViewMode = "month"
	ModeWeek  ViewMode = "week"
	ModeDay   ViewMode = "day"
)

func (m ViewMode) Valid() bool {
	return m == ModeMonth || m == ModeWeek || m == ModeDay
}

// Direction is a navigation step.
type Direction string

const (
	DirPrev  Direction = "prev"
	DirNext  Direction = "next"
	DirToday Direction = "today"
)

// Session is the per-user calendar state: the viewed anchor, the pending
// creation anchor chosen by clicking a cell, and the team filter.
type Session struct {
	ID            string       `json:"id"`
	Mode          ViewMode     `json:"mode"`
	Anchor        string       `json:"anchor"`
	PendingAnchor string       `json:"pendingAnchor,omitempty"`
	Filter        *FilterState `json:"filter"`
	CreatedAt     time.Time    `json:"createdAt"`
	UpdatedAt     time.Time    `json:"updatedAt"`
}

// AnchorDate parses the session anchor.
func (s *Session) AnchorDate() (time.Time, error) {
	return ParseDate(s.Anchor)
}

// Shift moves the anchor one unit of the active mode: a calendar month, a
// week or a day.
func (s *Session) Shift(steps int) error {
	anchor, err := s.AnchorDate()
	if err != nil {
		return err
	}
	switch s.Mode {
	case ModeMonth:
		anchor = addMonths(anchor, steps)
	case ModeWeek:
		anchor = anchor.AddDate(0, 0, 7*steps)
	case ModeDay:
		anchor = anchor.AddDate(0, 0, steps)
	default:
		return ErrInvalidMode
	}
	s.Anchor = FormatDate(anchor)
	return nil
}

// Navigate applies a direction; today resets the anchor to the given date.
func (s *Session) Navigate(dir Direction, today time.Time) error {
	switch dir {
	case DirPrev:
		return s.Shift(-1)
	case DirNext:
		return s.Shift(1)
	case DirToday:
		s.Anchor = FormatDate(DateOf(today))
		return nil
	}
	return ErrInvalidDirection
}

// SelectDate records where a new entry should be created. The viewed anchor
// does not move.
func (s *Session) SelectDate(date string) error {
	if _, err := ParseDate(date); err != nil {
		return err
	}
	s.PendingAnchor = date
	return nil
}

// SessionSummary is the session with the filter panel flattened for display.
type SessionSummary struct {
	*Session
	Contractors []ContractorFilter           `json:"contractors"`
	Kinds       map[models.ScheduleKind]bool `json:"kinds"`
}

func Summarize(s *Session) SessionSummary {
	return SessionSummary{
		Session:     s,
		Contractors: s.Filter.Contractors(),
		Kinds: map[models.ScheduleKind]bool{
			models.KindConstruction: s.Filter.KindVisible(models.KindConstruction),
			models.KindSurvey:       s.Filter.KindVisible(models.KindSurvey),
		},
	}
}
