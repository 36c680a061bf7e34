package middleware

import (
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"quoterelay/internal/config"
)

func newCORSRouter(reached *bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID())
	r.Use(CORSMiddleware(regexp.MustCompile(config.DefaultAllowedOriginPattern)))
	r.GET("/hubspot-deal-get", func(c *gin.Context) {
		*reached = true
		c.JSON(http.StatusOK, []string{})
	})
	return r
}

func TestCORSMiddleware(t *testing.T) {
	tests := []struct {
		name        string
		origin      string
		wantStatus  int
		wantReached bool
		wantAllow   string
	}{
		{"no origin", "", http.StatusOK, true, ""},
		{"lan http", "http://192.168.1.20", http.StatusOK, true, "http://192.168.1.20"},
		{"lan https with port", "https://192.168.10.5:3000", http.StatusOK, true, "https://192.168.10.5:3000"},
		{"foreign host", "http://evil.example.com", http.StatusForbidden, false, ""},
		{"other private range", "http://10.0.0.1", http.StatusForbidden, false, ""},
		{"lan prefix trick", "http://192.168.1.20.evil.com", http.StatusForbidden, false, ""},
		{"trailing path", "http://192.168.1.20/", http.StatusForbidden, false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reached := false
			r := newCORSRouter(&reached)

			req := httptest.NewRequest(http.MethodGet, "/hubspot-deal-get?jobNumber=1", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantReached, reached)
			assert.Equal(t, tt.wantAllow, w.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}

func TestCORSMiddleware_Preflight(t *testing.T) {
	reached := false
	r := newCORSRouter(&reached)

	req := httptest.NewRequest(http.MethodOptions, "/hubspot-deal-get", nil)
	req.Header.Set("Origin", "http://192.168.0.7:8080")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.False(t, reached)
	assert.Equal(t, "http://192.168.0.7:8080", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), "PATCH")
}

func TestRequestID(t *testing.T) {
	reached := false
	r := newCORSRouter(&reached)

	req := httptest.NewRequest(http.MethodGet, "/hubspot-deal-get", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Regexp(t, `^[0-9a-f]{16}$`, w.Header().Get(RequestIDHeader))

	req = httptest.NewRequest(http.MethodGet, "/hubspot-deal-get", nil)
	req.Header.Set(RequestIDHeader, "client-abc.1")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "client-abc.1", w.Header().Get(RequestIDHeader))

	req = httptest.NewRequest(http.MethodGet, "/hubspot-deal-get", nil)
	req.Header.Set(RequestIDHeader, "bad id with spaces")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.NotEqual(t, "bad id with spaces", w.Header().Get(RequestIDHeader))
}
