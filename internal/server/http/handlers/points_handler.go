package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/finpoint/finpoint/internal/domain/errors"
	"github.com/finpoint/finpoint/internal/server/http/dto"
)

// PointsHandler manages points ledger endpoints.
type PointsHandler struct {
	facade PointsFacade
}

// NewPointsHandler constructs PointsHandler.
func NewPointsHandler(facade PointsFacade) *PointsHandler {
	return &PointsHandler{facade: facade}
}

// History handles GET /api/user/points/history.
func (h *PointsHandler) History(c *gin.Context) {
	userID := CurrentUserID(c)
	entries, err := h.facade.PointsHistory(c.Request.Context(), userID)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	if len(entries) == 0 {
		c.Status(http.StatusNoContent)
		return
	}

	resp := make([]dto.PointEntryResponse, 0, len(entries))
	for _, e := range entries {
		resp = append(resp, dto.PointEntryResponse{
			Source:     string(e.Source),
			Direction:  string(e.Direction),
			Points:     e.Points,
			RequestID:  e.RequestID,
			RecordedAt: e.RecordedAt,
		})
	}
	c.JSON(http.StatusOK, resp)
}

// CompleteAdTask handles POST /api/user/points/ad-task.
func (h *PointsHandler) CompleteAdTask(c *gin.Context) {
	userID := CurrentUserID(c)
	var req dto.AdTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	points, err := h.facade.CompleteAdTask(c.Request.Context(), userID, req.Token)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrAdTaskInvalid):
			c.Status(http.StatusUnprocessableEntity)
		case errors.Is(err, domainErrors.ErrAdTaskNotCompleted):
			c.Status(http.StatusConflict)
		case errors.Is(err, domainErrors.ErrAlreadyExists):
			c.Status(http.StatusConflict)
		case errors.Is(err, domainErrors.ErrNotFound):
			c.Status(http.StatusNotFound)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusOK, dto.AdTaskResponse{Points: points})
}

// PurchaseSubscription handles POST /api/user/points/subscription.
func (h *PointsHandler) PurchaseSubscription(c *gin.Context) {
	userID := CurrentUserID(c)
	var req dto.SubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	err := h.facade.PurchaseSubscription(c.Request.Context(), userID, req.Plan, req.Points)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrInvalidAmount):
			c.Status(http.StatusUnprocessableEntity)
		case errors.Is(err, domainErrors.ErrInsufficientPoints):
			c.Status(http.StatusPaymentRequired)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.Status(http.StatusOK)
}
