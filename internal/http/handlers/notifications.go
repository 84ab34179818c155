package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Iqrapath/IQRAPATH-MVP-sub007/internal/http/middleware"
	"github.com/Iqrapath/IQRAPATH-MVP-sub007/internal/repositories"
)

// GET /api/notifications?unread=true
func ListNotifications(c *gin.Context) {
	actor := middleware.GetActor(c)
	unreadOnly := c.Query("unread") == "true"

	list, err := repositories.NotificationRepository{}.ListByUser(int64(actor.UserID), unreadOnly)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"notifications": list})
}

// POST /api/notifications/:id/read
func MarkNotificationRead(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	actor := middleware.GetActor(c)

	if err := (repositories.NotificationRepository{}).MarkRead(id, int64(actor.UserID)); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "marked read"})
}
