package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func langRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(LanguageMiddleware())
	router.GET("/probe", func(c *gin.Context) {
		c.String(http.StatusOK, Lang(c))
	})
	return router
}

func TestLanguageMiddleware(t *testing.T) {
	router := langRouter()

	cases := []struct {
		name   string
		url    string
		header string
		want   string
	}{
		{name: "query wins", url: "/probe?lang=ta", header: "kn-IN,kn;q=0.9", want: "ta"},
		{name: "header primary subtag", url: "/probe", header: "te-IN,te;q=0.9,en;q=0.8", want: "te"},
		{name: "bare header", url: "/probe", header: "hi", want: "hi"},
		{name: "default english", url: "/probe", header: "", want: "en"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tc.url, nil)
			if tc.header != "" {
				req.Header.Set("Accept-Language", tc.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			require.Equal(t, http.StatusOK, w.Code)
			require.Equal(t, tc.want, w.Body.String())
		})
	}
}

func TestPrimarySubtag(t *testing.T) {
	require.Equal(t, "ta", primarySubtag("ta-IN,ta;q=0.9,en;q=0.8"))
	require.Equal(t, "en", primarySubtag("EN-US"))
	require.Equal(t, "", primarySubtag(""))
}

func TestRequestIDMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequestIDMiddleware())
	router.GET("/probe", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("X-Request-ID", "fixed-id")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, "fixed-id", w.Header().Get("X-Request-ID"))

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/probe", nil))
	require.NotEmpty(t, w.Header().Get("X-Request-ID"))
}
