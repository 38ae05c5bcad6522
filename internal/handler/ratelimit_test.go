package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestRateLimitBlocksBurst(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.POST("/contact", RateLimit(1, 1), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	send := func() int {
		req := httptest.NewRequest(http.MethodPost, "/contact", nil)
		req.RemoteAddr = "203.0.113.7:1234"
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	if code := send(); code != http.StatusOK {
		t.Fatalf("first request should pass, got %d", code)
	}
	if code := send(); code != http.StatusTooManyRequests {
		t.Fatalf("second request should be limited, got %d", code)
	}
}

func TestRateLimitIsPerClient(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.POST("/contact", RateLimit(1, 1), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	send := func(addr string) int {
		req := httptest.NewRequest(http.MethodPost, "/contact", nil)
		req.RemoteAddr = addr
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	if code := send("203.0.113.7:1234"); code != http.StatusOK {
		t.Fatalf("first client should pass, got %d", code)
	}
	if code := send("198.51.100.9:4321"); code != http.StatusOK {
		t.Fatalf("second client should pass, got %d", code)
	}
}
