package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/finpoint/finpoint/internal/domain/errors"
	"github.com/finpoint/finpoint/internal/server/http/dto"
)

// CheckInHandler manages daily check-in endpoints.
type CheckInHandler struct {
	facade CheckInFacade
}

// NewCheckInHandler constructs CheckInHandler.
func NewCheckInHandler(facade CheckInFacade) *CheckInHandler {
	return &CheckInHandler{facade: facade}
}

// Status handles GET /api/user/checkin.
func (h *CheckInHandler) Status(c *gin.Context) {
	userID := CurrentUserID(c)
	summary, err := h.facade.CheckInStatus(c.Request.Context(), userID, time.Now())
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, dto.StreakResponse{Streak: summary.Streak, CheckedInToday: summary.CheckedInToday})
}

// CheckIn handles POST /api/user/checkin.
func (h *CheckInHandler) CheckIn(c *gin.Context) {
	userID := CurrentUserID(c)
	record, err := h.facade.CheckIn(c.Request.Context(), userID, time.Now())
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrAlreadyCheckedIn):
			c.Status(http.StatusConflict)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusOK, dto.CheckInResponse{Day: formatDay(record.Day), Points: record.Points})
}
