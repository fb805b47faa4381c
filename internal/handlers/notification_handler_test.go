package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/nanjundeshwara/stores-backend/internal/i18n"
	"github.com/nanjundeshwara/stores-backend/internal/middleware"
	"github.com/nanjundeshwara/stores-backend/internal/models"
	"github.com/stretchr/testify/require"
)

func TestGetNotificationsHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	service := &stubNotificationService{
		list: func(_ context.Context, userID int64) ([]*models.Notification, error) {
			require.Equal(t, int64(1), userID)
			return []*models.Notification{
				{UserID: 1, Message: "Welcome to Nanjundeshwara Stores, Ravi!", CreatedAt: time.Now()},
			}, nil
		},
	}
	handler := NewNotificationHandler(service, i18n.NewCatalog(nil))
	router := gin.New()
	router.Use(middleware.LanguageMiddleware())
	router.GET("/notifications/:userId", handler.GetNotifications)

	w := doJSON(t, router, http.MethodGet, "/notifications/1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp []models.Notification
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	require.Contains(t, resp[0].Message, "Ravi")

	w = doJSON(t, router, http.MethodGet, "/notifications/abc", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
}
