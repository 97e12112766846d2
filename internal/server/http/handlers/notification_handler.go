package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/finpoint/finpoint/internal/domain/errors"
	"github.com/finpoint/finpoint/internal/server/http/dto"
)

// NotificationHandler manages the user inbox endpoints.
type NotificationHandler struct {
	facade NotificationFacade
}

// NewNotificationHandler constructs NotificationHandler.
func NewNotificationHandler(facade NotificationFacade) *NotificationHandler {
	return &NotificationHandler{facade: facade}
}

// List handles GET /api/user/notifications.
func (h *NotificationHandler) List(c *gin.Context) {
	userID := CurrentUserID(c)
	notifications, err := h.facade.Notifications(c.Request.Context(), userID)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	if len(notifications) == 0 {
		c.Status(http.StatusNoContent)
		return
	}

	resp := make([]dto.NotificationResponse, 0, len(notifications))
	for _, n := range notifications {
		resp = append(resp, dto.NotificationResponse{
			ID:          n.ID,
			Title:       n.Title,
			Description: n.Description,
			Read:        n.Read,
			Link:        n.Link,
			CreatedAt:   n.CreatedAt,
		})
	}
	c.JSON(http.StatusOK, resp)
}

// MarkRead handles POST /api/user/notifications/:id/read.
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	userID := CurrentUserID(c)
	notificationID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	if err := h.facade.MarkNotificationRead(c.Request.Context(), userID, notificationID); err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrNotFound):
			c.Status(http.StatusNotFound)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.Status(http.StatusOK)
}
