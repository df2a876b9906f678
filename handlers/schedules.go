package handlers

import (
	"net/http"

	"fieldcal/models"
	"fieldcal/services/calendar"

	"github.com/gin-gonic/gin"
)

// ScheduleHandler exposes the schedule repository through the calendar service.
type ScheduleHandler struct {
	Service calendar.CalendarService
}

func NewScheduleHandler(svc calendar.CalendarService) *ScheduleHandler {
	return &ScheduleHandler{Service: svc}
}

func (h *ScheduleHandler) ListSchedulesHandler(c *gin.Context) {
	schedules, err := h.Service.ListSchedules(c.Request.Context(), c.Query("from"), c.Query("to"))
	if err != nil {
		writeServiceError(c, "Failed to fetch schedules", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"schedules": schedules})
}

func (h *ScheduleHandler) CreateScheduleHandler(c *gin.Context) {
	var input models.ScheduleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}
	entry, err := h.Service.CreateSchedule(c.Request.Context(), input)
	if err != nil {
		writeServiceError(c, "Failed to create schedule", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"schedule": entry})
}

func (h *ScheduleHandler) UpdateScheduleHandler(c *gin.Context) {
	id := c.Param("scheduleID")
	var input models.ScheduleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}
	entry, err := h.Service.UpdateSchedule(c.Request.Context(), id, input)
	if err != nil {
		writeServiceError(c, "Failed to update schedule", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"schedule": entry})
}

func (h *ScheduleHandler) DeleteScheduleHandler(c *gin.Context) {
	if err := h.Service.DeleteSchedule(c.Request.Context(), c.Param("scheduleID")); err != nil {
		writeServiceError(c, "Failed to delete schedule", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Schedule deleted successfully"})
}
