package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/nanjundeshwara/stores-backend/internal/i18n"
	"github.com/nanjundeshwara/stores-backend/internal/middleware"
	"github.com/nanjundeshwara/stores-backend/internal/models"
	"github.com/nanjundeshwara/stores-backend/internal/services"
)

// UserHandler handles customer-related HTTP requests
type UserHandler struct {
	userService services.UserService
	catalog     *i18n.Catalog
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userService services.UserService, catalog *i18n.Catalog) *UserHandler {
	return &UserHandler{
		userService: userService,
		catalog:     catalog,
	}
}

type addUserRequest struct {
	UserID   int64  `json:"userId" binding:"required"`
	Name     string `json:"name" binding:"required"`
	Village  string `json:"village"`
	Category string `json:"category"`
	Phone    string `json:"phone"`
	Language string `json:"language"`
}

// AddUser handles POST /add_user
func (h *UserHandler) AddUser(c *gin.Context) {
	var req addUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user := &models.User{
		ID:       req.UserID,
		Name:     req.Name,
		Village:  req.Village,
		Category: req.Category,
		Phone:    req.Phone,
		Language: req.Language,
	}
	created, err := h.userService.CreateUser(c.Request.Context(), user, middleware.Lang(c))
	if err != nil {
		respondError(c, h.catalog, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": message(c, h.catalog, i18n.KeyUserAdded),
		"user":    created,
	})
}

// FindUser handles GET /find_user?userId=
func (h *UserHandler) FindUser(c *gin.Context) {
	userID, err := parseUserID(c.Query("userId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid userId"})
		return
	}

	user, err := h.userService.GetUser(c.Request.Context(), userID)
	if err != nil {
		respondError(c, h.catalog, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// FindAllUsers handles GET /find_all_users
func (h *UserHandler) FindAllUsers(c *gin.Context) {
	users, err := h.userService.GetAllUsers(c.Request.Context())
	if err != nil {
		respondError(c, h.catalog, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// DeletedUsers handles GET /deleted_users
func (h *UserHandler) DeletedUsers(c *gin.Context) {
	users, err := h.userService.GetDeletedUsers(c.Request.Context())
	if err != nil {
		respondError(c, h.catalog, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// SearchUsers handles GET /search_users?name=&category=&village=
func (h *UserHandler) SearchUsers(c *gin.Context) {
	users, err := h.userService.SearchUsers(c.Request.Context(), c.Query("name"), c.Query("category"), c.Query("village"))
	if err != nil {
		respondError(c, h.catalog, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// SearchByVillage handles GET /search_by_village?village=
func (h *UserHandler) SearchByVillage(c *gin.Context) {
	village := c.Query("village")
	if village == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "village is required"})
		return
	}

	users, err := h.userService.SearchByVillage(c.Request.Context(), village)
	if err != nil {
		respondError(c, h.catalog, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// GetAllVillages handles GET /get_all_villages
func (h *UserHandler) GetAllVillages(c *gin.Context) {
	villages, err := h.userService.GetAllVillages(c.Request.Context())
	if err != nil {
		respondError(c, h.catalog, err)
		return
	}
	c.JSON(http.StatusOK, villages)
}

// DeleteUser handles DELETE /delete_user/:userId (move to trash)
func (h *UserHandler) DeleteUser(c *gin.Context) {
	userID, err := parseUserID(c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid userId"})
		return
	}

	if err := h.userService.SoftDeleteUser(c.Request.Context(), userID); err != nil {
		respondError(c, h.catalog, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": message(c, h.catalog, i18n.KeyUserMovedToTrash)})
}

// RestoreUser handles PUT /restore_user/:userId
func (h *UserHandler) RestoreUser(c *gin.Context) {
	userID, err := parseUserID(c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid userId"})
		return
	}

	user, err := h.userService.RestoreUser(c.Request.Context(), userID)
	if err != nil {
		respondError(c, h.catalog, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": message(c, h.catalog, i18n.KeyUserRestored),
		"user":    user,
	})
}

// PermanentDeleteUser handles DELETE /permanent_delete_user/:userId
func (h *UserHandler) PermanentDeleteUser(c *gin.Context) {
	userID, err := parseUserID(c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid userId"})
		return
	}

	if err := h.userService.PermanentDeleteUser(c.Request.Context(), userID); err != nil {
		respondError(c, h.catalog, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": message(c, h.catalog, i18n.KeyUserPermanentlyDeleted)})
}

type updateLanguageRequest struct {
	UserID   int64  `json:"userId" binding:"required"`
	Language string `json:"language" binding:"required"`
}

// UpdateLanguage handles POST /update_language
func (h *UserHandler) UpdateLanguage(c *gin.Context) {
	var req updateLanguageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.userService.UpdateLanguage(c.Request.Context(), req.UserID, req.Language); err != nil {
		respondError(c, h.catalog, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": message(c, h.catalog, i18n.KeyLanguageUpdated)})
}

type registerDeviceRequest struct {
	UserID      int64  `json:"userId" binding:"required"`
	DeviceToken string `json:"deviceToken" binding:"required"`
}

// RegisterDevice handles POST /register_device
func (h *UserHandler) RegisterDevice(c *gin.Context) {
	var req registerDeviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.userService.RegisterDevice(c.Request.Context(), req.UserID, req.DeviceToken); err != nil {
		respondError(c, h.catalog, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": message(c, h.catalog, i18n.KeyDeviceRegistered)})
}

// InactiveCustomers handles GET /inactive_customers
func (h *UserHandler) InactiveCustomers(c *gin.Context) {
	inactive, err := h.userService.InactiveCustomers(c.Request.Context())
	if err != nil {
		respondError(c, h.catalog, err)
		return
	}
	c.JSON(http.StatusOK, inactive)
}

func parseUserID(raw string) (int64, error) {
	return strconv.ParseInt(raw, 10, 64)
}
