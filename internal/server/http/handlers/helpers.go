package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/finpoint/finpoint/internal/server/http/middleware"
)

const dayLayout = "2006-01-02"

// CurrentUserID extracts authenticated user identifier from context.
func CurrentUserID(c *gin.Context) int64 {
	val, ok := c.Get(middleware.UserIDContextKey)
	if !ok {
		return 0
	}
	id, _ := val.(int64)
	return id
}

// parseDay parses a calendar date; an empty value means today.
func parseDay(value string) (time.Time, error) {
	if value == "" {
		return time.Now().UTC(), nil
	}
	return time.Parse(dayLayout, value)
}

func formatDay(t time.Time) string {
	return t.Format(dayLayout)
}
