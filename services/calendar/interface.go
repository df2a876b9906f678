package calendar

import (
	"context"

	"fieldcal/models"
)

// CalendarService drives calendar sessions and composes their views.
type CalendarService interface {
	StartSession(ctx context.Context, mode ViewMode, anchor string) (*Session, error)
	GetSession(ctx context.Context, sessionID string) (*Session, error)
	ReloadDirectory(ctx context.Context, sessionID string) (*Session, error)

	ToggleAll(ctx context.Context, sessionID string, visible bool) (*Session, error)
	ToggleContractor(ctx context.Context, sessionID, contractorID string, visible bool) (*Session, error)
	ToggleTeam(ctx context.Context, sessionID, teamID string, visible bool) (*Session, error)
	SetKindVisible(ctx context.Context, sessionID string, kind models.ScheduleKind, visible bool) (*Session, error)

	SetMode(ctx context.Context, sessionID string, mode ViewMode) (*Session, error)
	Navigate(ctx context.Context, sessionID string, dir Direction) (*Session, error)
	SelectDate(ctx context.Context, sessionID, date string) (*Session, error)

	View(ctx context.Context, sessionID string) (*SessionView, error)
	MonthView(ctx context.Context, sessionID string) (*models.MonthView, error)
	WeekView(ctx context.Context, sessionID string) (*models.WeekView, error)
	DayView(ctx context.Context, sessionID string) (*models.DayView, error)

	ListSchedules(ctx context.Context, from, to string) ([]models.ScheduleEntry, error)
	CreateSchedule(ctx context.Context, input models.ScheduleInput) (*models.ScheduleEntry, error)
	UpdateSchedule(ctx context.Context, id string, input models.ScheduleInput) (*models.ScheduleEntry, error)
	DeleteSchedule(ctx context.Context, id string) error
}
