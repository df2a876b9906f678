// File: fieldcal/handlers/bundle.go
package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Health
	HealthHandler gin.HandlerFunc

	// Calendar session endpoints
	StartSessionHandler    gin.HandlerFunc
	GetSessionHandler      gin.HandlerFunc
	ViewHandler            gin.HandlerFunc
	MonthHandler           gin.HandlerFunc
	WeekHandler            gin.HandlerFunc
	DayHandler             gin.HandlerFunc
	NavigateHandler        gin.HandlerFunc
	SetModeHandler         gin.HandlerFunc
	SelectDateHandler      gin.HandlerFunc
	ReloadDirectoryHandler gin.HandlerFunc

	// Filter endpoints
	ToggleAllHandler        gin.HandlerFunc
	ToggleContractorHandler gin.HandlerFunc
	ToggleTeamHandler       gin.HandlerFunc
	ToggleKindHandler       gin.HandlerFunc

	// Schedule endpoints
	ListSchedulesHandler  gin.HandlerFunc
	CreateScheduleHandler gin.HandlerFunc
	UpdateScheduleHandler gin.HandlerFunc
	DeleteScheduleHandler gin.HandlerFunc
}

// NewHandlerBundle wires the calendar and schedule handlers into a bundle.
func NewHandlerBundle(cal *CalendarHandler, sched *ScheduleHandler, health *HealthHandler) *HandlerBundle {
	return &HandlerBundle{
		HealthHandler: health.Check,

		StartSessionHandler:    cal.StartSessionHandler,
		GetSessionHandler:      cal.GetSessionHandler,
		ViewHandler:            cal.ViewHandler,
		MonthHandler:           cal.MonthHandler,
		WeekHandler:            cal.WeekHandler,
		DayHandler:             cal.DayHandler,
		NavigateHandler:        cal.NavigateHandler,
		SetModeHandler:         cal.SetModeHandler,
		SelectDateHandler:      cal.SelectDateHandler,
		ReloadDirectoryHandler: cal.ReloadDirectoryHandler,

		ToggleAllHandler:        cal.ToggleAllHandler,
		ToggleContractorHandler: cal.ToggleContractorHandler,
		ToggleTeamHandler:       cal.ToggleTeamHandler,
		ToggleKindHandler:       cal.ToggleKindHandler,

		ListSchedulesHandler:  sched.ListSchedulesHandler,
		CreateScheduleHandler: sched.CreateScheduleHandler,
		UpdateScheduleHandler: sched.UpdateScheduleHandler,
		DeleteScheduleHandler: sched.DeleteScheduleHandler,
	}
}
