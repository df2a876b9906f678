package calendar

import (
	"context"
	"errors"
	"fmt"
	"time"

	directoryRepo "fieldcal/database/repository/directory"
	exclusionRepo "fieldcal/database/repository/exclusion"
	scheduleRepo "fieldcal/database/repository/schedule"
	"fieldcal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultCalendarService implements CalendarService. Entries are read fresh
// from the repositories on every view; nothing is cached here.
type DefaultCalendarService struct {
	Schedules  scheduleRepo.ScheduleRepository
	Exclusions exclusionRepo.ExclusionRepository
	Directory  directoryRepo.TeamDirectory
	Sessions   SessionStore
	Logger     *zap.Logger
	Location   *time.Location
	Now        func() time.Time
}

func (s *DefaultCalendarService) now() time.Time {
	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	if s.Location != nil {
		return now().In(s.Location)
	}
	return now()
}

func (s *DefaultCalendarService) today() time.Time {
	return DateOf(s.now())
}

func (s *DefaultCalendarService) logger() *zap.Logger {
	if s.Logger == nil {
		return zap.NewNop()
	}
	return s.Logger
}

func (s *DefaultCalendarService) loadDirectory(ctx context.Context) ([]models.Contractor, []models.Team, error) {
	contractors, err := s.Directory.GetContractors(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load contractors: %w", err)
	}
	teams, err := s.Directory.GetTeams(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load teams: %w", err)
	}
	return contractors, teams, nil
}

// StartSession loads the directory once and opens a new session. An empty
// anchor means today.
func (s *DefaultCalendarService) StartSession(ctx context.Context, mode ViewMode, anchor string) (*Session, error) {
	if mode == "" {
		mode = ModeMonth
	}
	if !mode.Valid() {
		return nil, ErrInvalidMode
	}
	if anchor == "" {
		anchor = FormatDate(s.today())
	} else if _, err := ParseDate(anchor); err != nil {
		return nil, err
	}

	contractors, teams, err := s.loadDirectory(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	sess := &Session{
		ID:        uuid.New().String(),
		Mode:      mode,
		Anchor:    anchor,
		Filter:    NewFilterStateFromDirectory(contractors, teams),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.Sessions.Save(ctx, sess); err != nil {
		return nil, err
	}
	s.logger().Info("calendar session started",
		zap.String("sessionID", sess.ID),
		zap.String("mode", string(mode)),
		zap.Int("teams", len(sess.Filter.Teams)))
	return sess, nil
}

func (s *DefaultCalendarService) GetSession(ctx context.Context, sessionID string) (*Session, error) {
	return s.Sessions.Get(ctx, sessionID)
}

// mutate loads a session, applies fn and saves it back.
func (s *DefaultCalendarService) mutate(ctx context.Context, sessionID string, fn func(*Session) error) (*Session, error) {
	sess, err := s.Sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := fn(sess); err != nil {
		return nil, err
	}
	sess.UpdatedAt = s.now()
	if err := s.Sessions.Save(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

func (s *DefaultCalendarService) ReloadDirectory(ctx context.Context, sessionID string) (*Session, error) {
	contractors, teams, err := s.loadDirectory(ctx)
	if err != nil {
		return nil, err
	}
	return s.mutate(ctx, sessionID, func(sess *Session) error {
		sess.Filter.Reload(contractors, teams)
		return nil
	})
}

func (s *DefaultCalendarService) ToggleAll(ctx context.Context, sessionID string, visible bool) (*Session, error) {
	return s.mutate(ctx, sessionID, func(sess *Session) error {
		sess.Filter.ToggleAll(visible)
		return nil
	})
}

func (s *DefaultCalendarService) ToggleContractor(ctx context.Context, sessionID, contractorID string, visible bool) (*Session, error) {
	return s.mutate(ctx, sessionID, func(sess *Session) error {
		if !sess.Filter.ToggleContractor(contractorID, visible) {
			return ErrUnknownContractor
		}
		return nil
	})
}

func (s *DefaultCalendarService) ToggleTeam(ctx context.Context, sessionID, teamID string, visible bool) (*Session, error) {
	return s.mutate(ctx, sessionID, func(sess *Session) error {
		if !sess.Filter.ToggleTeam(teamID, visible) {
			return ErrUnknownTeam
		}
		return nil
	})
}

func (s *DefaultCalendarService) SetKindVisible(ctx context.Context, sessionID string, kind models.ScheduleKind, visible bool) (*Session, error) {
	if !kind.Valid() {
		return nil, newValidationError("kind", fmt.Sprintf("unknown schedule kind %q", kind))
	}
	return s.mutate(ctx, sessionID, func(sess *Session) error {
		sess.Filter.SetKindVisible(kind, visible)
		return nil
	})
}

func (s *DefaultCalendarService) SetMode(ctx context.Context, sessionID string, mode ViewMode) (*Session, error) {
	if !mode.Valid() {
		return nil, ErrInvalidMode
	}
	return s.mutate(ctx, sessionID, func(sess *Session) error {
		sess.Mode = mode
		return nil
	})
}

func (s *DefaultCalendarService) Navigate(ctx context.Context, sessionID string, dir Direction) (*Session, error) {
	return s.mutate(ctx, sessionID, func(sess *Session) error {
		return sess.Navigate(dir, s.today())
	})
}

func (s *DefaultCalendarService) SelectDate(ctx context.Context, sessionID, date string) (*Session, error) {
	return s.mutate(ctx, sessionID, func(sess *Session) error {
		return sess.SelectDate(date)
	})
}

// entriesBetween reads schedules and exclusions for an inclusive date range.
func (s *DefaultCalendarService) entriesBetween(ctx context.Context, from, to time.Time) ([]models.ScheduleEntry, []models.ExclusionEntry, error) {
	f, t := FormatDate(from), FormatDate(to)
	schedules, err := s.Schedules.GetByDateRange(ctx, f, t)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read schedules: %w", err)
	}
	exclusions, err := s.Exclusions.GetByDateRange(ctx, f, t)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read exclusions: %w", err)
	}
	return schedules, exclusions, nil
}

func (s *DefaultCalendarService) sessionAnchor(ctx context.Context, sessionID string) (*Session, time.Time, error) {
	sess, err := s.Sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, time.Time{}, err
	}
	anchor, err := sess.AnchorDate()
	if err != nil {
		return nil, time.Time{}, err
	}
	return sess, anchor, nil
}

// SessionView is the view matching a session's current mode. Exactly one of
// Month, Week and Day is set.
type SessionView struct {
	Mode  ViewMode          `json:"mode"`
	Month *models.MonthView `json:"month,omitempty"`
	Week  *models.WeekView  `json:"week,omitempty"`
	Day   *models.DayView   `json:"day,omitempty"`
}

// View loads the session once and composes whichever granularity it is on.
func (s *DefaultCalendarService) View(ctx context.Context, sessionID string) (*SessionView, error) {
	sess, anchor, err := s.sessionAnchor(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	out := &SessionView{Mode: sess.Mode}
	switch sess.Mode {
	case ModeWeek:
		out.Week, err = s.weekView(ctx, sess, anchor)
	case ModeDay:
		out.Day, err = s.dayView(ctx, sess, anchor)
	default:
		out.Mode = ModeMonth
		out.Month, err = s.monthView(ctx, sess, anchor)
	}
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *DefaultCalendarService) MonthView(ctx context.Context, sessionID string) (*models.MonthView, error) {
	sess, anchor, err := s.sessionAnchor(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return s.monthView(ctx, sess, anchor)
}

func (s *DefaultCalendarService) WeekView(ctx context.Context, sessionID string) (*models.WeekView, error) {
	sess, anchor, err := s.sessionAnchor(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return s.weekView(ctx, sess, anchor)
}

func (s *DefaultCalendarService) DayView(ctx context.Context, sessionID string) (*models.DayView, error) {
	sess, anchor, err := s.sessionAnchor(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return s.dayView(ctx, sess, anchor)
}

func (s *DefaultCalendarService) monthView(ctx context.Context, sess *Session, anchor time.Time) (*models.MonthView, error) {
	first := time.Date(anchor.Year(), anchor.Month(), 1, 0, 0, 0, 0, time.UTC)
	start := WeekStart(first)
	schedules, exclusions, err := s.entriesBetween(ctx, start, start.AddDate(0, 0, monthCells-1))
	if err != nil {
		return nil, err
	}
	view := NewComposer(sess.Filter, s.today()).Month(anchor, schedules, exclusions)
	return &view, nil
}

func (s *DefaultCalendarService) weekView(ctx context.Context, sess *Session, anchor time.Time) (*models.WeekView, error) {
	start := WeekStart(anchor)
	schedules, exclusions, err := s.entriesBetween(ctx, start, start.AddDate(0, 0, 6))
	if err != nil {
		return nil, err
	}
	view := NewComposer(sess.Filter, s.today()).Week(anchor, schedules, exclusions)
	return &view, nil
}

func (s *DefaultCalendarService) dayView(ctx context.Context, sess *Session, anchor time.Time) (*models.DayView, error) {
	schedules, exclusions, err := s.entriesBetween(ctx, anchor, anchor)
	if err != nil {
		return nil, err
	}
	view := NewComposer(sess.Filter, s.today()).Day(anchor, schedules, exclusions)
	return &view, nil
}

// ListSchedules returns every entry, or only a date range when both bounds are set.
func (s *DefaultCalendarService) ListSchedules(ctx context.Context, from, to string) ([]models.ScheduleEntry, error) {
	if from == "" || to == "" {
		return s.Schedules.GetAll(ctx)
	}
	if _, err := ParseDate(from); err != nil {
		return nil, err
	}
	if _, err := ParseDate(to); err != nil {
		return nil, err
	}
	return s.Schedules.GetByDateRange(ctx, from, to)
}

func (s *DefaultCalendarService) CreateSchedule(ctx context.Context, input models.ScheduleInput) (*models.ScheduleEntry, error) {
	if err := ValidateScheduleInput(&input); err != nil {
		return nil, err
	}
	entry := &models.ScheduleEntry{ID: uuid.New().String()}
	applyInput(entry, input)
	if err := s.Schedules.Add(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to create schedule: %w", err)
	}
	s.logger().Info("schedule created", zap.String("id", entry.ID), zap.String("date", entry.AssignedDate))
	return entry, nil
}

func (s *DefaultCalendarService) UpdateSchedule(ctx context.Context, id string, input models.ScheduleInput) (*models.ScheduleEntry, error) {
	if err := ValidateScheduleInput(&input); err != nil {
		return nil, err
	}
	entry, err := s.Schedules.GetByID(ctx, id)
	if errors.Is(err, scheduleRepo.ErrNotFound) {
		return nil, ErrScheduleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load schedule: %w", err)
	}
	applyInput(entry, input)
	if err := s.Schedules.Update(ctx, entry); err != nil {
		if errors.Is(err, scheduleRepo.ErrNotFound) {
			return nil, ErrScheduleNotFound
		}
		return nil, fmt.Errorf("failed to update schedule: %w", err)
	}
	s.logger().Info("schedule updated", zap.String("id", entry.ID))
	return entry, nil
}

func (s *DefaultCalendarService) DeleteSchedule(ctx context.Context, id string) error {
	err := s.Schedules.Delete(ctx, id)
	if errors.Is(err, scheduleRepo.ErrNotFound) {
		return ErrScheduleNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to delete schedule: %w", err)
	}
	s.logger().Info("schedule deleted", zap.String("id", id))
	return nil
}
