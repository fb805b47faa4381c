package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/nanjundeshwara/stores-backend/internal/config"
	"github.com/nanjundeshwara/stores-backend/internal/handlers"
	"github.com/nanjundeshwara/stores-backend/internal/middleware"
)

// HandlerDependencies bundles the handlers the router wires up
type HandlerDependencies struct {
	AuthHandler         *handlers.AuthHandler
	UserHandler         *handlers.UserHandler
	PaymentHandler      *handlers.PaymentHandler
	NotificationHandler *handlers.NotificationHandler
	TranslationHandler  *handlers.TranslationHandler
}

// SetupRouter sets up the router. Paths are flat to stay compatible with the
// existing store frontend.
func SetupRouter(cfg *config.Config, deps HandlerDependencies) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	// Add middleware
	router.Use(middleware.CORSMiddleware(cfg))
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.LanguageMiddleware())

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	})

	// Auth
	router.POST("/login", deps.AuthHandler.Login)

	// Customers
	router.POST("/add_user", deps.UserHandler.AddUser)
	router.GET("/find_user", deps.UserHandler.FindUser)
	router.GET("/find_all_users", deps.UserHandler.FindAllUsers)
	router.GET("/deleted_users", deps.UserHandler.DeletedUsers)
	router.GET("/search_users", deps.UserHandler.SearchUsers)
	router.GET("/search_by_village", deps.UserHandler.SearchByVillage)
	router.GET("/get_all_villages", deps.UserHandler.GetAllVillages)
	router.GET("/inactive_customers", deps.UserHandler.InactiveCustomers)
	router.DELETE("/delete_user/:userId", deps.UserHandler.DeleteUser)
	router.DELETE("/permanent_delete_user/:userId", deps.UserHandler.PermanentDeleteUser)
	router.PUT("/restore_user/:userId", deps.UserHandler.RestoreUser)
	router.POST("/update_language", deps.UserHandler.UpdateLanguage)
	router.POST("/register_device", deps.UserHandler.RegisterDevice)

	// Payments
	router.POST("/add_payments", deps.PaymentHandler.AddPayment)
	router.POST("/request_payment", deps.PaymentHandler.RequestPayment)
	router.POST("/approve_payment", deps.PaymentHandler.ApprovePayment)
	router.POST("/reject_payment", deps.PaymentHandler.RejectPayment)
	router.GET("/find_payments", deps.PaymentHandler.FindPayments)
	router.GET("/view_payments_by_month", deps.PaymentHandler.ViewPaymentsByMonth)
	router.GET("/pending_transactions", deps.PaymentHandler.PendingTransactions)
	router.GET("/check_payment_status", deps.PaymentHandler.CheckPaymentStatus)
	router.GET("/total_amount_paid", deps.PaymentHandler.TotalAmountPaid)

	// Notifications
	router.GET("/notifications/:userId", deps.NotificationHandler.GetNotifications)

	// Translation passthroughs
	router.POST("/translate", deps.TranslationHandler.Translate)
	router.POST("/translate-batch", deps.TranslationHandler.TranslateBatch)
	router.POST("/translate-object", deps.TranslationHandler.TranslateObject)
	router.GET("/languages", deps.TranslationHandler.Languages)

	return router
}
