package middleware

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/nanjundeshwara/stores-backend/internal/config"
	"github.com/nanjundeshwara/stores-backend/internal/i18n"
	"golang.org/x/exp/slog"
)

// LangKey is the gin context key holding the resolved request language.
const LangKey = "lang"

// CORSMiddleware is a middleware for CORS
func CORSMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", strings.Join(cfg.Server.AllowedOrigins, ","))
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, Accept-Language, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

// RequestIDMiddleware is a middleware for adding a request ID to the context
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = time.Now().Format("20060102150405") + "-" + c.ClientIP()
		}
		c.Set("RequestID", requestID)
		c.Writer.Header().Set("X-Request-ID", requestID)
		c.Next()
	}
}

// LoggerMiddleware logs every request with its status and latency
func LoggerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		requestID, _ := c.Get("RequestID")
		slog.Info("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency", time.Since(start).String(),
			"requestId", requestID,
		)
	}
}

// LanguageMiddleware resolves the request language: the lang query parameter
// wins, then the Accept-Language header's primary subtag, then English.
func LanguageMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := c.Query("lang")
		if lang == "" {
			lang = primarySubtag(c.GetHeader("Accept-Language"))
		}
		if lang == "" {
			lang = i18n.DefaultLang
		}
		c.Set(LangKey, lang)
		c.Next()
	}
}

// Lang returns the language resolved by LanguageMiddleware, defaulting to
// English when the middleware did not run.
func Lang(c *gin.Context) string {
	if lang := c.GetString(LangKey); lang != "" {
		return lang
	}
	return i18n.DefaultLang
}

// primarySubtag extracts "ta" from headers like "ta-IN,ta;q=0.9,en;q=0.8".
func primarySubtag(header string) string {
	if header == "" {
		return ""
	}
	first := strings.TrimSpace(strings.SplitN(header, ",", 2)[0])
	first = strings.SplitN(first, ";", 2)[0]
	first = strings.SplitN(first, "-", 2)[0]
	return strings.ToLower(strings.TrimSpace(first))
}
