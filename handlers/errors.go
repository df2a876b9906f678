package handlers

import (
	"errors"
	"net/http"

	"fieldcal/services/calendar"
	"fieldcal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// writeServiceError maps calendar errors onto HTTP statuses.
func writeServiceError(c *gin.Context, message string, err error) {
	var verr *calendar.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, utils.ErrorResponse{Message: message, Details: verr.Error()})
	case errors.Is(err, calendar.ErrSessionNotFound), errors.Is(err, calendar.ErrScheduleNotFound):
		c.JSON(http.StatusNotFound, utils.ErrorResponse{Message: message, Details: err.Error()})
	case errors.Is(err, calendar.ErrInvalidDate),
		errors.Is(err, calendar.ErrInvalidMode),
		errors.Is(err, calendar.ErrInvalidDirection),
		errors.Is(err, calendar.ErrUnknownTeam),
		errors.Is(err, calendar.ErrUnknownContractor):
		c.JSON(http.StatusBadRequest, utils.ErrorResponse{Message: message, Details: err.Error()})
	default:
		getLogger(c).Error(message, zap.Error(err))
		c.JSON(http.StatusInternalServerError, utils.ErrorResponse{Message: message, Details: err.Error()})
	}
}
