package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nanjundeshwara/stores-backend/internal/i18n"
	"github.com/nanjundeshwara/stores-backend/internal/middleware"
	"github.com/nanjundeshwara/stores-backend/internal/services"
)

// PaymentHandler handles ledger and payment-request HTTP requests
type PaymentHandler struct {
	paymentService services.PaymentService
	catalog        *i18n.Catalog
}

// NewPaymentHandler creates a new PaymentHandler
func NewPaymentHandler(paymentService services.PaymentService, catalog *i18n.Catalog) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
		catalog:        catalog,
	}
}

type addPaymentRequest struct {
	UserID int64   `json:"userId" binding:"required"`
	Month  string  `json:"month" binding:"required"`
	Amount float64 `json:"amount" binding:"required"`
}

// AddPayment handles POST /add_payments
func (h *PaymentHandler) AddPayment(c *gin.Context) {
	var req addPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	payment, err := h.paymentService.RecordPayment(c.Request.Context(), req.UserID, req.Month, req.Amount)
	if err != nil {
		respondError(c, h.catalog, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": message(c, h.catalog, i18n.KeyPaymentAdded),
		"payment": payment,
	})
}

type requestPaymentRequest struct {
	UserID        int64   `json:"userId" binding:"required"`
	Month         string  `json:"month" binding:"required"`
	Amount        float64 `json:"amount" binding:"required"`
	TransactionID string  `json:"transactionId" binding:"required"`
}

// RequestPayment handles POST /request_payment
func (h *PaymentHandler) RequestPayment(c *gin.Context) {
	var req requestPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	transaction, err := h.paymentService.RequestPayment(
		c.Request.Context(), req.UserID, req.Month, req.Amount, req.TransactionID, middleware.Lang(c))
	if err != nil {
		respondError(c, h.catalog, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":     message(c, h.catalog, i18n.KeyPaymentRequestSubmitted),
		"transaction": transaction,
	})
}

type decideRequest struct {
	TransactionID string `json:"transactionId" binding:"required"`
}

// ApprovePayment handles POST /approve_payment
func (h *PaymentHandler) ApprovePayment(c *gin.Context) {
	var req decideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	payment, err := h.paymentService.ApprovePayment(c.Request.Context(), req.TransactionID)
	if err != nil {
		respondError(c, h.catalog, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": message(c, h.catalog, i18n.KeyPaymentApproved),
		"payment": payment,
	})
}

// RejectPayment handles POST /reject_payment
func (h *PaymentHandler) RejectPayment(c *gin.Context) {
	var req decideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	transaction, err := h.paymentService.RejectPayment(c.Request.Context(), req.TransactionID)
	if err != nil {
		respondError(c, h.catalog, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":     message(c, h.catalog, i18n.KeyPaymentRejected),
		"transaction": transaction,
	})
}

// FindPayments handles GET /find_payments?userId=&month=
func (h *PaymentHandler) FindPayments(c *gin.Context) {
	userID, err := parseUserID(c.Query("userId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid userId"})
		return
	}

	payments, err := h.paymentService.FindPayments(c.Request.Context(), userID, c.Query("month"))
	if err != nil {
		respondError(c, h.catalog, err)
		return
	}
	c.JSON(http.StatusOK, payments)
}

// ViewPaymentsByMonth handles GET /view_payments_by_month?month=
func (h *PaymentHandler) ViewPaymentsByMonth(c *gin.Context) {
	month := c.Query("month")
	if month == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "month is required"})
		return
	}

	report, err := h.paymentService.PaymentsByMonth(c.Request.Context(), month)
	if err != nil {
		respondError(c, h.catalog, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// PendingTransactions handles GET /pending_transactions
func (h *PaymentHandler) PendingTransactions(c *gin.Context) {
	transactions, err := h.paymentService.PendingTransactions(c.Request.Context())
	if err != nil {
		respondError(c, h.catalog, err)
		return
	}
	c.JSON(http.StatusOK, transactions)
}

// CheckPaymentStatus handles GET /check_payment_status?userId=&month=
func (h *PaymentHandler) CheckPaymentStatus(c *gin.Context) {
	userID, err := parseUserID(c.Query("userId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid userId"})
		return
	}
	month := c.Query("month")
	if month == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "month is required"})
		return
	}

	status, err := h.paymentService.CheckPaymentStatus(c.Request.Context(), userID, month)
	if err != nil {
		respondError(c, h.catalog, err)
		return
	}
	c.JSON(http.StatusOK, status)
}

// TotalAmountPaid handles GET /total_amount_paid?userId=
func (h *PaymentHandler) TotalAmountPaid(c *gin.Context) {
	userID, err := parseUserID(c.Query("userId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid userId"})
		return
	}

	total, err := h.paymentService.TotalAmountPaid(c.Request.Context(), userID)
	if err != nil {
		respondError(c, h.catalog, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"userId": userID, "totalAmount": total})
}
