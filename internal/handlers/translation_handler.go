package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nanjundeshwara/stores-backend/internal/i18n"
	"github.com/nanjundeshwara/stores-backend/pkg/translate"
)

// TranslationHandler exposes the translation client directly so the frontend
// can localize its own content.
type TranslationHandler struct {
	client *translate.Client
}

// NewTranslationHandler creates a new TranslationHandler
func NewTranslationHandler(client *translate.Client) *TranslationHandler {
	return &TranslationHandler{client: client}
}

type translateRequest struct {
	Text       string `json:"text" binding:"required"`
	TargetLang string `json:"targetLang" binding:"required"`
	SourceLang string `json:"sourceLang"`
}

// Translate handles POST /translate
func (h *TranslationHandler) Translate(c *gin.Context) {
	var req translateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Text and target language are required"})
		return
	}
	if req.SourceLang == "" {
		req.SourceLang = i18n.DefaultLang
	}

	translated := h.client.Translate(c.Request.Context(), req.Text, req.SourceLang, req.TargetLang)
	c.JSON(http.StatusOK, gin.H{"translatedText": translated})
}

type translateBatchRequest struct {
	Texts      []string `json:"texts" binding:"required"`
	TargetLang string   `json:"targetLang" binding:"required"`
	SourceLang string   `json:"sourceLang"`
}

// TranslateBatch handles POST /translate-batch
func (h *TranslationHandler) TranslateBatch(c *gin.Context) {
	var req translateBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Array of texts and target language are required"})
		return
	}
	if req.SourceLang == "" {
		req.SourceLang = i18n.DefaultLang
	}

	translated := h.client.TranslateBatch(c.Request.Context(), req.Texts, req.SourceLang, req.TargetLang)
	c.JSON(http.StatusOK, gin.H{"translatedTexts": translated})
}

type translateObjectRequest struct {
	Object     map[string]interface{} `json:"object" binding:"required"`
	TargetLang string                 `json:"targetLang" binding:"required"`
	SourceLang string                 `json:"sourceLang"`
}

// TranslateObject handles POST /translate-object
func (h *TranslationHandler) TranslateObject(c *gin.Context) {
	var req translateObjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Object and target language are required"})
		return
	}
	if req.SourceLang == "" {
		req.SourceLang = i18n.DefaultLang
	}

	translated := h.client.TranslateObject(c.Request.Context(), req.Object, req.SourceLang, req.TargetLang)
	c.JSON(http.StatusOK, gin.H{"translatedObject": translated})
}

// Languages handles GET /languages
func (h *TranslationHandler) Languages(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"languages": i18n.SupportedLanguages()})
}
