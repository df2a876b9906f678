package handlers

import (
	"net/http"

	"fieldcal/models"
	"fieldcal/services/calendar"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CalendarHandler serves calendar sessions and their views.
type CalendarHandler struct {
	Service calendar.CalendarService
}

func NewCalendarHandler(svc calendar.CalendarService) *CalendarHandler {
	return &CalendarHandler{Service: svc}
}

func (h *CalendarHandler) StartSessionHandler(c *gin.Context) {
	var body struct {
		Mode   calendar.ViewMode `json:"mode"`
		Anchor string            `json:"anchor"`
	}
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
			return
		}
	}

	sess, err := h.Service.StartSession(c.Request.Context(), body.Mode, body.Anchor)
	if err != nil {
		writeServiceError(c, "Failed to start calendar session", err)
		return
	}
	getLogger(c).Debug("session started", zap.String("sessionID", sess.ID))
	c.JSON(http.StatusCreated, gin.H{"session": calendar.Summarize(sess)})
}

func (h *CalendarHandler) GetSessionHandler(c *gin.Context) {
	sess, err := h.Service.GetSession(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		writeServiceError(c, "Failed to fetch calendar session", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": calendar.Summarize(sess)})
}

// ViewHandler renders whichever granularity the session is on.
func (h *CalendarHandler) ViewHandler(c *gin.Context) {
	view, err := h.Service.View(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		writeServiceError(c, "Failed to build calendar view", err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *CalendarHandler) MonthHandler(c *gin.Context) {
	view, err := h.Service.MonthView(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		writeServiceError(c, "Failed to build month view", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"mode": calendar.ModeMonth, "month": view})
}

func (h *CalendarHandler) WeekHandler(c *gin.Context) {
	view, err := h.Service.WeekView(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		writeServiceError(c, "Failed to build week view", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"mode": calendar.ModeWeek, "week": view})
}

func (h *CalendarHandler) DayHandler(c *gin.Context) {
	view, err := h.Service.DayView(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		writeServiceError(c, "Failed to build day view", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"mode": calendar.ModeDay, "day": view})
}

func (h *CalendarHandler) NavigateHandler(c *gin.Context) {
	var body struct {
		Direction calendar.Direction `json:"direction" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing or invalid direction in request body"})
		return
	}
	h.respondSession(c, "Failed to navigate", func() (*calendar.Session, error) {
		return h.Service.Navigate(c.Request.Context(), c.Param("sessionID"), body.Direction)
	})
}

func (h *CalendarHandler) SetModeHandler(c *gin.Context) {
	var body struct {
		Mode calendar.ViewMode `json:"mode" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing or invalid mode in request body"})
		return
	}
	h.respondSession(c, "Failed to change view mode", func() (*calendar.Session, error) {
		return h.Service.SetMode(c.Request.Context(), c.Param("sessionID"), body.Mode)
	})
}

func (h *CalendarHandler) SelectDateHandler(c *gin.Context) {
	var body struct {
		Date string `json:"date" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing or invalid date in request body"})
		return
	}
	h.respondSession(c, "Failed to select date", func() (*calendar.Session, error) {
		return h.Service.SelectDate(c.Request.Context(), c.Param("sessionID"), body.Date)
	})
}

func (h *CalendarHandler) ReloadDirectoryHandler(c *gin.Context) {
	h.respondSession(c, "Failed to reload team directory", func() (*calendar.Session, error) {
		return h.Service.ReloadDirectory(c.Request.Context(), c.Param("sessionID"))
	})
}

// toggleBody is shared by the filter endpoints; Visible is a pointer so a
// missing flag is rejected rather than read as false.
type toggleBody struct {
	ID      string              `json:"id"`
	Kind    models.ScheduleKind `json:"kind"`
	Visible *bool               `json:"visible" binding:"required"`
}

func bindToggle(c *gin.Context, needID bool) (*toggleBody, bool) {
	var body toggleBody
	if err := c.ShouldBindJSON(&body); err != nil || (needID && body.ID == "") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid filter payload"})
		return nil, false
	}
	return &body, true
}

func (h *CalendarHandler) ToggleAllHandler(c *gin.Context) {
	body, ok := bindToggle(c, false)
	if !ok {
		return
	}
	h.respondSession(c, "Failed to update filter", func() (*calendar.Session, error) {
		return h.Service.ToggleAll(c.Request.Context(), c.Param("sessionID"), *body.Visible)
	})
}

func (h *CalendarHandler) ToggleContractorHandler(c *gin.Context) {
	body, ok := bindToggle(c, true)
	if !ok {
		return
	}
	h.respondSession(c, "Failed to update filter", func() (*calendar.Session, error) {
		return h.Service.ToggleContractor(c.Request.Context(), c.Param("sessionID"), body.ID, *body.Visible)
	})
}

func (h *CalendarHandler) ToggleTeamHandler(c *gin.Context) {
	body, ok := bindToggle(c, true)
	if !ok {
		return
	}
	h.respondSession(c, "Failed to update filter", func() (*calendar.Session, error) {
		return h.Service.ToggleTeam(c.Request.Context(), c.Param("sessionID"), body.ID, *body.Visible)
	})
}

func (h *CalendarHandler) ToggleKindHandler(c *gin.Context) {
	body, ok := bindToggle(c, false)
	if !ok {
		return
	}
	h.respondSession(c, "Failed to update filter", func() (*calendar.Session, error) {
		return h.Service.SetKindVisible(c.Request.Context(), c.Param("sessionID"), body.Kind, *body.Visible)
	})
}

func (h *CalendarHandler) respondSession(c *gin.Context, message string, fn func() (*calendar.Session, error)) {
	sess, err := fn()
	if err != nil {
		writeServiceError(c, message, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": calendar.Summarize(sess)})
}
