package restapi

import (
	"net/http"
	"sync"
	"time"

	"witnet_addresses/internal/pkg/metrics"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"
)

// ClientRateLimiter keeps one token bucket per client IP. Buckets of idle clients
// expire from the cache.
type ClientRateLimiter struct {
	limiters *cache.Cache
	limit    rate.Limit
	burst    int
	mu       sync.Mutex
}

// NewClientRateLimiter creates a limiter allowing rps requests per second with the given burst.
func NewClientRateLimiter(rps float64, burst int, idle time.Duration) *ClientRateLimiter {
	if burst < 1 {
		burst = 1
	}
	return &ClientRateLimiter{
		limiters: cache.New(idle, 2*idle),
		limit:    rate.Limit(rps),
		burst:    burst,
	}
}

// Allow reports whether a request from client may proceed now.
func (l *ClientRateLimiter) Allow(client string) bool {
	return l.limiterFor(client).Allow()
}

func (l *ClientRateLimiter) limiterFor(client string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	if v, ok := l.limiters.Get(client); ok {
		// Touch so active clients keep their bucket.
		l.limiters.SetDefault(client, v)
		return v.(*rate.Limiter)
	}
	limiter := rate.NewLimiter(l.limit, l.burst)
	l.limiters.SetDefault(client, limiter)
	return limiter
}

// Middleware rejects requests over the limit with 429.
func (l *ClientRateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !l.Allow(c.ClientIP()) {
			metrics.RateLimitedTotal.Inc()
			c.AbortWithStatusJSON(http.StatusTooManyRequests, APIError{Error: "rate limit exceeded"})
			return
		}
		c.Next()
	}
}
