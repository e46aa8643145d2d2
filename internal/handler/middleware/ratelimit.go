package middleware

import (
	"net/http"
	"sync"

	"webhooknest/internal/handler/httperr"
	"webhooknest/internal/pkg/config"
	"webhooknest/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

var errRateLimited = errs.New("rate limited")

// RateLimiter applies a per-client-IP token bucket to the public
// receive route. A zero rate disables limiting entirely.
type RateLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	rps      rate.Limit
	burst    int
}

func NewRateLimiter(cfg config.IngestConfig) *RateLimiter {
	return &RateLimiter{
		limiters: make(map[string]*rate.Limiter),
		rps:      rate.Limit(cfg.RatePerSecond),
		burst:    cfg.RateBurst,
	}
}

func (r *RateLimiter) limiterFor(clientIP string) *rate.Limiter {
	r.mu.Lock()
	defer r.mu.Unlock()

	l, ok := r.limiters[clientIP]
	if !ok {
		l = rate.NewLimiter(r.rps, r.burst)
		r.limiters[clientIP] = l
	}
	return l
}

func (r *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if r.rps <= 0 {
			c.Next()
			return
		}

		if !r.limiterFor(c.ClientIP()).Allow() {
			httperr.AbortWithError(c, http.StatusTooManyRequests, errRateLimited, "Too many requests", nil)
			return
		}
		c.Next()
	}
}
