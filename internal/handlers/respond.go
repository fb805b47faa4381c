package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nanjundeshwara/stores-backend/internal/i18n"
	"github.com/nanjundeshwara/stores-backend/internal/middleware"
	"github.com/nanjundeshwara/stores-backend/internal/services"
)

// respondError maps a service error onto its HTTP status with a localized
// message. Anything else is an internal error.
func respondError(c *gin.Context, catalog *i18n.Catalog, err error) {
	var svcErr *services.Error
	if errors.As(err, &svcErr) {
		c.JSON(svcErr.Status, gin.H{"error": catalog.Render(c.Request.Context(), svcErr.Key, middleware.Lang(c), nil)})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}

// message renders a success-envelope message in the request language.
func message(c *gin.Context, catalog *i18n.Catalog, key i18n.Key) string {
	return catalog.Render(c.Request.Context(), key, middleware.Lang(c), nil)
}
