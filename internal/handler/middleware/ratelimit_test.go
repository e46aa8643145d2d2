//go:build unit

package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"webhooknest/internal/handler/middleware"
	"webhooknest/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newRateLimitedRouter(cfg config.IngestConfig) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	limiter := middleware.NewRateLimiter(cfg)
	router.POST("/receive/:slug", limiter.Middleware(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})
	return router
}

func post(router *gin.Engine, remoteAddr string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/receive/aB3xY9_k2Lm0", nil)
	req.RemoteAddr = remoteAddr
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRateLimiter(t *testing.T) {
	t.Run("バースト分を超えると429", func(t *testing.T) {
		router := newRateLimitedRouter(config.IngestConfig{RatePerSecond: 1, RateBurst: 3})

		for i := range 3 {
			w := post(router, "10.0.0.1:1234")
			assert.Equal(t, http.StatusOK, w.Code, "request %d should pass", i+1)
		}

		w := post(router, "10.0.0.1:1234")
		assert.Equal(t, http.StatusTooManyRequests, w.Code)
		assert.Contains(t, w.Body.String(), "Too many requests")
	})

	t.Run("クライアントIP毎に独立したバケット", func(t *testing.T) {
		router := newRateLimitedRouter(config.IngestConfig{RatePerSecond: 1, RateBurst: 1})

		assert.Equal(t, http.StatusOK, post(router, "10.0.0.1:1234").Code)
		assert.Equal(t, http.StatusTooManyRequests, post(router, "10.0.0.1:1234").Code)

		// 別IPは別のバケットなので通る
		assert.Equal(t, http.StatusOK, post(router, "10.0.0.2:1234").Code)
	})

	t.Run("レート0は無制限", func(t *testing.T) {
		router := newRateLimitedRouter(config.IngestConfig{RatePerSecond: 0, RateBurst: 0})

		for range 50 {
			assert.Equal(t, http.StatusOK, post(router, "10.0.0.1:1234").Code)
		}
	})
}
