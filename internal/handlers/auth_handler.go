package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nanjundeshwara/stores-backend/internal/i18n"
	"github.com/nanjundeshwara/stores-backend/internal/models"
	"github.com/nanjundeshwara/stores-backend/internal/services"
)

// AuthHandler handles login requests
type AuthHandler struct {
	authService services.AuthService
	catalog     *i18n.Catalog
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService services.AuthService, catalog *i18n.Catalog) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		catalog:     catalog,
	}
}

// Login handles POST /login
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.authService.Login(c.Request.Context(), &req)
	if err != nil {
		respondError(c, h.catalog, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
