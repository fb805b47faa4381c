package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nanjundeshwara/stores-backend/internal/i18n"
	"github.com/nanjundeshwara/stores-backend/internal/services"
)

// NotificationHandler handles in-app notification HTTP requests
type NotificationHandler struct {
	notificationService services.NotificationService
	catalog             *i18n.Catalog
}

// NewNotificationHandler creates a new NotificationHandler
func NewNotificationHandler(notificationService services.NotificationService, catalog *i18n.Catalog) *NotificationHandler {
	return &NotificationHandler{
		notificationService: notificationService,
		catalog:             catalog,
	}
}

// GetNotifications handles GET /notifications/:userId
func (h *NotificationHandler) GetNotifications(c *gin.Context) {
	userID, err := parseUserID(c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid userId"})
		return
	}

	notifications, err := h.notificationService.GetNotifications(c.Request.Context(), userID)
	if err != nil {
		respondError(c, h.catalog, err)
		return
	}
	c.JSON(http.StatusOK, notifications)
}
