package routes

import (
	"time"

	"fieldcal/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterCalendarRoutes registers calendar session endpoints.
func RegisterCalendarRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/calendar/sessions")
	{
		api.POST("", hb.StartSessionHandler)
		api.GET("/:sessionID", hb.GetSessionHandler)

		// Views
		api.GET("/:sessionID/view", hb.ViewHandler)
		api.GET("/:sessionID/month", hb.MonthHandler)
		api.GET("/:sessionID/week", hb.WeekHandler)
		api.GET("/:sessionID/day", hb.DayHandler)

		// Navigation
		api.POST("/:sessionID/navigate", hb.NavigateHandler)
		api.PUT("/:sessionID/mode", hb.SetModeHandler)
		api.PUT("/:sessionID/select", hb.SelectDateHandler)
		api.POST("/:sessionID/reload", hb.ReloadDirectoryHandler)

		filter := api.Group("/:sessionID/filter")
		filter.PUT("/all", hb.ToggleAllHandler)
		filter.PUT("/contractor", hb.ToggleContractorHandler)
		filter.PUT("/team", hb.ToggleTeamHandler)
		filter.PUT("/kind", hb.ToggleKindHandler)
	}
}

// RegisterScheduleRoutes registers schedule CRUD endpoints.
func RegisterScheduleRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/schedules")
	{
		api.GET("", hb.ListSchedulesHandler)
		api.POST("", hb.CreateScheduleHandler)
		api.PUT("/:scheduleID", hb.UpdateScheduleHandler)
		api.DELETE("/:scheduleID", hb.DeleteScheduleHandler)
	}
}

// RegisterHealthRoute registers a health check endpoint.
func RegisterHealthRoute(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/health", hb.HealthHandler)
}

// RegisterRoutes registers all API routes.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r, hb)
	RegisterCalendarRoutes(r, hb)
	RegisterScheduleRoutes(r, hb)
}
